package store

import (
	"sync"

	"github.com/yuvraj-makani/event-ease/pkg/event"
)

// records groups everything one event owns. The whole bundle lives and
// dies with the event.
type records struct {
	event    *event.Event
	tasks    []*event.Task
	guests   []*event.Guest
	budgets  []*event.Budget
	expenses []*event.Expense
}

// Memory is the in-memory Store. A single mutex serializes all mutation,
// so seeding and cascade deletes are atomic even under a multi-threaded
// host. Reads hand out copies; callers mutate a copy and save it back.
type Memory struct {
	mu    sync.Mutex
	owned map[string]*records
	order []string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{owned: make(map[string]*records)}
}

var _ Store = (*Memory)(nil)

func (m *Memory) SaveEvent(e *event.Event, tasks []*event.Task, budgets []*event.Budget) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *e
	r, ok := m.owned[cp.ID]
	if !ok {
		r = &records{}
		m.owned[cp.ID] = r
		m.order = append(m.order, cp.ID)
	}
	r.event = &cp
	for _, t := range tasks {
		tc := *t
		r.tasks = append(r.tasks, &tc)
	}
	for _, b := range budgets {
		bc := *b
		r.budgets = append(r.budgets, &bc)
	}
	return nil
}

func (m *Memory) Event(id string) (*event.Event, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.owned[id]
	if !ok {
		return nil, false
	}
	cp := *r.event
	return &cp, true
}

func (m *Memory) Events() []*event.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*event.Event, 0, len(m.order))
	for _, id := range m.order {
		cp := *m.owned[id].event
		out = append(out, &cp)
	}
	return out
}

func (m *Memory) DeleteEvent(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.owned[id]; !ok {
		return
	}
	delete(m.owned, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

func (m *Memory) SaveTask(t *event.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.owned[t.EventID]
	if !ok {
		return ErrNoEvent
	}
	cp := *t
	for i, existing := range r.tasks {
		if existing.ID == cp.ID {
			r.tasks[i] = &cp
			return nil
		}
	}
	r.tasks = append(r.tasks, &cp)
	return nil
}

func (m *Memory) Tasks(eventID string) []*event.Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.owned[eventID]
	if !ok {
		return nil
	}
	out := make([]*event.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		cp := *t
		out = append(out, &cp)
	}
	return out
}

func (m *Memory) Task(eventID, id string) (*event.Task, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.owned[eventID]
	if !ok {
		return nil, false
	}
	for _, t := range r.tasks {
		if t.ID == id {
			cp := *t
			return &cp, true
		}
	}
	return nil, false
}

func (m *Memory) DeleteTask(eventID, id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.owned[eventID]
	if !ok {
		return
	}
	for i, t := range r.tasks {
		if t.ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return
		}
	}
}

func (m *Memory) SaveGuest(g *event.Guest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.owned[g.EventID]
	if !ok {
		return ErrNoEvent
	}
	cp := *g
	for i, existing := range r.guests {
		if existing.ID == cp.ID {
			r.guests[i] = &cp
			return nil
		}
	}
	r.guests = append(r.guests, &cp)
	return nil
}

func (m *Memory) Guests(eventID string) []*event.Guest {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.owned[eventID]
	if !ok {
		return nil
	}
	out := make([]*event.Guest, 0, len(r.guests))
	for _, g := range r.guests {
		cp := *g
		out = append(out, &cp)
	}
	return out
}

func (m *Memory) Guest(eventID, id string) (*event.Guest, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.owned[eventID]
	if !ok {
		return nil, false
	}
	for _, g := range r.guests {
		if g.ID == id {
			cp := *g
			return &cp, true
		}
	}
	return nil, false
}

func (m *Memory) DeleteGuest(eventID, id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.owned[eventID]
	if !ok {
		return
	}
	for i, g := range r.guests {
		if g.ID == id {
			r.guests = append(r.guests[:i], r.guests[i+1:]...)
			return
		}
	}
}

func (m *Memory) SaveBudget(b *event.Budget) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.owned[b.EventID]
	if !ok {
		return ErrNoEvent
	}
	cp := *b
	for i, existing := range r.budgets {
		if existing.ID == cp.ID {
			r.budgets[i] = &cp
			return nil
		}
	}
	r.budgets = append(r.budgets, &cp)
	return nil
}

func (m *Memory) Budgets(eventID string) []*event.Budget {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.owned[eventID]
	if !ok {
		return nil
	}
	out := make([]*event.Budget, 0, len(r.budgets))
	for _, b := range r.budgets {
		cp := *b
		out = append(out, &cp)
	}
	return out
}

func (m *Memory) DeleteBudget(eventID, id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.owned[eventID]
	if !ok {
		return
	}
	for i, b := range r.budgets {
		if b.ID == id {
			r.budgets = append(r.budgets[:i], r.budgets[i+1:]...)
			return
		}
	}
}

func (m *Memory) SaveExpense(x *event.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.owned[x.EventID]
	if !ok {
		return ErrNoEvent
	}
	cp := *x
	for i, existing := range r.expenses {
		if existing.ID == cp.ID {
			r.expenses[i] = &cp
			return nil
		}
	}
	r.expenses = append(r.expenses, &cp)
	return nil
}

func (m *Memory) Expenses(eventID string) []*event.Expense {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.owned[eventID]
	if !ok {
		return nil
	}
	out := make([]*event.Expense, 0, len(r.expenses))
	for _, x := range r.expenses {
		cp := *x
		out = append(out, &cp)
	}
	return out
}
