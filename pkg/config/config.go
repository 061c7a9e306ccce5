// Package config loads the optional .eventease config file. Nothing in
// it is required; the zero config runs the planner with defaults.
package config

import (
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/yuvraj-makani/event-ease/pkg/templates"
)

// Config carries the presentation knobs and any user-defined templates.
type Config struct {
	// Currency is the symbol prefixed to displayed amounts.
	Currency string
	// TypingDelay is how long the chat view pretends to type before a
	// reply appears. Cosmetic only; replies are computed immediately.
	TypingDelay time.Duration
	// ExtraTemplates are merged under the built-in catalog.
	ExtraTemplates templates.Catalog
}

type templateFile struct {
	Tasks []struct {
		Title       string `mapstructure:"title"`
		Description string `mapstructure:"description"`
	} `mapstructure:"tasks"`
	Budgets []struct {
		Category string  `mapstructure:"category"`
		Amount   float64 `mapstructure:"amount"`
	} `mapstructure:"budgets"`
	Tips string `mapstructure:"tips"`
}

// Load reads .eventease.yaml from the working directory or the home
// directory. A missing file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("currency", "₹")
	v.SetDefault("typing_delay_ms", 1000)
	v.SetConfigName(".eventease")
	v.SetEnvPrefix("EVENTEASE")
	v.AutomaticEnv()

	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{
		Currency:    v.GetString("currency"),
		TypingDelay: time.Duration(v.GetInt("typing_delay_ms")) * time.Millisecond,
	}

	var raw map[string]templateFile
	if err := v.UnmarshalKey("templates", &raw); err != nil {
		return nil, err
	}
	if len(raw) > 0 {
		cfg.ExtraTemplates = make(templates.Catalog, len(raw))
		for name, tf := range raw {
			def := templates.Definition{Tips: tf.Tips}
			for _, t := range tf.Tasks {
				def.Tasks = append(def.Tasks, templates.TaskSeed{Title: t.Title, Description: t.Description})
			}
			for _, b := range tf.Budgets {
				def.Budgets = append(def.Budgets, templates.BudgetSeed{Category: b.Category, Amount: b.Amount})
			}
			cfg.ExtraTemplates[name] = def
		}
	}

	return cfg, nil
}
