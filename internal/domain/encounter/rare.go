package encounter

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Very rare encounter ids
const (
	MarieCeleste = iota
	CaptainAhab
	CaptainConrad
	CaptainHuie
	BottleOld
	BottleGood
)

// ErrRareEncounterExists is returned when an id is registered twice
var ErrRareEncounterExists = errors.New("rare encounter already registered")

// RareEncounter describes a very rare encounter. Trigger rules are not part
// of the catalogue; callers register the encounters they support and decide
// themselves when to look one up.
type RareEncounter struct {
	ID       int
	Name     string
	Category Category
	Type     Type
}

// RareCatalog is a registry of very rare encounters keyed by id
type RareCatalog struct {
	mu      sync.RWMutex
	entries map[int]RareEncounter
}

func NewRareCatalog() *RareCatalog {
	return &RareCatalog{entries: make(map[int]RareEncounter)}
}

// DefaultRareCatalog registers the three famous captains, the only rare
// encounters with a known opponent loadout.
func DefaultRareCatalog() *RareCatalog {
	c := NewRareCatalog()
	for _, e := range []RareEncounter{
		{ID: CaptainAhab, Name: "Captain Ahab", Category: Famous, Type: FamousCaptain},
		{ID: CaptainConrad, Name: "Captain Conrad", Category: Famous, Type: FamousCaptain},
		{ID: CaptainHuie, Name: "Captain Huie", Category: Famous, Type: FamousCaptain},
	} {
		_ = c.Register(e)
	}
	return c
}

func (c *RareCatalog) Register(e RareEncounter) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[e.ID]; ok {
		return fmt.Errorf("%w: %d", ErrRareEncounterExists, e.ID)
	}
	c.entries[e.ID] = e
	return nil
}

func (c *RareCatalog) Lookup(id int) (RareEncounter, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[id]
	return e, ok
}

// All returns the registered encounters ordered by id
func (c *RareCatalog) All() []RareEncounter {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]RareEncounter, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
