// Package venues exposes the static venue directory. The list is
// read-only reference data; nothing in the planner mutates it.
package venues

// Venue is one bookable location.
type Venue struct {
	ID       string
	Name     string
	Type     string
	Rating   float64
	Price    string
	Location string
}

// All returns the venue directory.
func All() []Venue {
	return []Venue{
		{ID: "1", Name: "The Grand Ballroom", Type: "Banquet Hall", Rating: 4.8, Price: "₹50,000+", Location: "Green Park, Delhi"},
		{ID: "2", Name: "Skyline Rooftop", Type: "Rooftop Lounge", Rating: 4.5, Price: "₹35,000+", Location: "Hauz Khas, Delhi"},
		{ID: "3", Name: "Royal Garden Retreat", Type: "Lawn & Garden", Rating: 4.9, Price: "₹70,000+", Location: "Gurgaon"},
		{ID: "4", Name: "The Urban Bistro", Type: "Restaurant", Rating: 4.2, Price: "₹20,000+", Location: "Connaught Place, Delhi"},
	}
}
