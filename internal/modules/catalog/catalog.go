package catalog

import "guesthub/internal/domain"

// Catalog is an immutable, ordered set of room types.
type Catalog struct {
	order []string
	byID  map[string]domain.RoomType
}

func New(types ...domain.RoomType) Catalog {
	c := Catalog{
		order: make([]string, 0, len(types)),
		byID:  make(map[string]domain.RoomType, len(types)),
	}
	for _, rt := range types {
		if _, dup := c.byID[rt.ID]; dup {
			continue
		}
		c.order = append(c.order, rt.ID)
		c.byID[rt.ID] = rt
	}
	return c
}

// DefaultCatalog is the room list the guest booking form offers.
func DefaultCatalog() Catalog {
	return New(
		domain.RoomType{ID: "deluxe", Name: "Deluxe Room", PricePerNight: 1999},
		domain.RoomType{ID: "executive", Name: "Executive Suite", PricePerNight: 3499},
		domain.RoomType{ID: "presidential", Name: "Presidential Suite", PricePerNight: 5999},
	)
}

func (c Catalog) Lookup(id string) (domain.RoomType, bool) {
	rt, ok := c.byID[id]
	return rt, ok
}

func (c Catalog) All() []domain.RoomType {
	out := make([]domain.RoomType, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

func (c Catalog) Len() int { return len(c.order) }
