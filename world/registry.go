package world

import "github.com/pthm-cable/trough/feed"

// ItemRegistry interns raw item names to dense IDs and back. IDs are stable
// for the life of the registry; names are never removed.
type ItemRegistry struct {
	names  []string
	byName map[string]feed.ItemID
}

// NewItemRegistry creates an empty registry.
func NewItemRegistry() *ItemRegistry {
	return &ItemRegistry{byName: make(map[string]feed.ItemID)}
}

// Intern returns the ID for name, assigning the next dense ID on first use.
func (r *ItemRegistry) Intern(name string) feed.ItemID {
	if id, ok := r.byName[name]; ok {
		return id
	}
	id := feed.ItemID(len(r.names))
	r.names = append(r.names, name)
	r.byName[name] = id
	return id
}

// ID looks up an already-interned name.
func (r *ItemRegistry) ID(name string) (feed.ItemID, bool) {
	id, ok := r.byName[name]
	return id, ok
}

// Name is the reverse lookup.
func (r *ItemRegistry) Name(id feed.ItemID) (string, bool) {
	if int(id) >= len(r.names) {
		return "", false
	}
	return r.names[int(id)], true
}

// Len returns the number of interned names.
func (r *ItemRegistry) Len() int { return len(r.names) }
