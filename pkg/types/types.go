package types

// Dataset is the entire persisted state of a facility: owner info plus the
// item and rack lists. It is loaded and saved only as a whole document;
// there is no per-entity persistence.
type Dataset struct {
	Company   string  `json:"company"`
	Warehouse string  `json:"warehouse"`
	Items     []*Item `json:"items"`
	Racks     []*Rack `json:"racks"`
}

// Item is a sparepart record. Items are provisioned out-of-band; this API
// never creates or deletes them.
type Item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`

	// RackID references a Rack's ID. It may point at a rack that does not
	// exist; lookups degrade to "rack unknown" instead of failing.
	RackID string `json:"rackId"`
}

// Rack is a storage rack marker on the facility map.
type Rack struct {
	// ID is derived as "R-" + Code when the rack is created through the
	// admin API. Immutable once created.
	ID string `json:"id"`

	// Code is the rack's short label, stored upper-cased. It is the natural
	// key for upserts and unique within a dataset.
	Code string `json:"code"`

	// X and Y are coordinates in the map asset's own coordinate space.
	// No bounds are enforced.
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RackByID returns the rack with the given ID, or nil if no rack matches.
func (d *Dataset) RackByID(id string) *Rack {
	for _, r := range d.Racks {
		if r.ID == id {
			return r
		}
	}
	return nil
}
