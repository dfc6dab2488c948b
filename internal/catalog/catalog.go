// Package catalog holds the authoritative, read-only registry of screening
// instruments.
//
// A Catalog is built once (from the built-in definitions or a catalog file)
// and passed by pointer to everything that needs it. Nothing mutates a
// Catalog after construction, so it is safe to share.
package catalog

import (
	"fmt"

	"github.com/harrison/screener/internal/models"
)

// Catalog is an immutable, ordered set of instruments.
type Catalog struct {
	instruments []models.Instrument
	byID        map[string]int
}

// New validates the instruments and builds a Catalog preserving their order.
// The instruments are copied; later changes to the argument have no effect.
func New(instruments []models.Instrument) (*Catalog, error) {
	c := &Catalog{
		instruments: make([]models.Instrument, 0, len(instruments)),
		byID:        make(map[string]int, len(instruments)),
	}

	for i := range instruments {
		in := cloneInstrument(instruments[i])
		if err := in.Validate(); err != nil {
			return nil, fmt.Errorf("invalid catalog: %w", err)
		}
		if _, dup := c.byID[in.ID]; dup {
			return nil, fmt.Errorf("invalid catalog: duplicate instrument id %q", in.ID)
		}
		if in.Stats.Questions == 0 {
			in.Stats.Questions = len(in.Questions)
		}
		c.byID[in.ID] = len(c.instruments)
		c.instruments = append(c.instruments, in)
	}

	if len(c.instruments) == 0 {
		return nil, fmt.Errorf("invalid catalog: no instruments defined")
	}
	return c, nil
}

// Get returns the instrument with the given id or a *models.NotFoundError.
// The returned value must be treated as read-only.
func (c *Catalog) Get(id string) (*models.Instrument, error) {
	idx, ok := c.byID[id]
	if !ok {
		return nil, models.NewNotFoundError("instrument", id)
	}
	return &c.instruments[idx], nil
}

// Has reports whether id is in the catalog.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// List returns browsing summaries in catalog order. Each call returns a fresh slice.
func (c *Catalog) List() []models.Summary {
	out := make([]models.Summary, 0, len(c.instruments))
	for i := range c.instruments {
		out = append(out, c.instruments[i].Summary())
	}
	return out
}

// IDs returns the instrument ids in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.instruments))
	for i := range c.instruments {
		ids = append(ids, c.instruments[i].ID)
	}
	return ids
}

// Instruments returns deep copies of every instrument in catalog order.
func (c *Catalog) Instruments() []models.Instrument {
	out := make([]models.Instrument, 0, len(c.instruments))
	for i := range c.instruments {
		out = append(out, cloneInstrument(c.instruments[i]))
	}
	return out
}

// Len returns the number of instruments.
func (c *Catalog) Len() int {
	return len(c.instruments)
}

func cloneInstrument(in models.Instrument) models.Instrument {
	out := in
	out.Questions = make([]models.Question, len(in.Questions))
	for i, q := range in.Questions {
		out.Questions[i] = q
		out.Questions[i].Options = append([]models.Option(nil), q.Options...)
	}
	return out
}
