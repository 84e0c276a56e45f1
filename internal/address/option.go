package address

import "strings"

type OptionType string

const (
	OptionDistrict OptionType = "district"
	OptionCity     OptionType = "city"
)

// Option is a flattened, selectable projection of one catalog node. Options
// are regenerated from the catalog per request and never mutated.
type Option struct {
	Type         OptionType `json:"type"`
	DistrictID   string     `json:"district_id"`
	DistrictName string     `json:"district_name"`
	CityID       string     `json:"city_id,omitempty"`
	CityName     string     `json:"city_name,omitempty"`
}

// Label is the display text the visibility filter matches against.
func (o Option) Label() string {
	if o.Type == OptionCity {
		return o.CityName
	}
	return o.DistrictName
}

// Options flattens the catalog into one district node followed by its city
// nodes, per district, in catalog order.
func (c *Catalog) Options() []Option {
	opts := make([]Option, 0, len(c.districts)*4)
	for _, d := range c.districts {
		opts = append(opts, Option{
			Type:         OptionDistrict,
			DistrictID:   d.ID,
			DistrictName: d.Name,
		})
		for _, city := range d.Cities {
			opts = append(opts, Option{
				Type:         OptionCity,
				DistrictID:   d.ID,
				DistrictName: d.Name,
				CityID:       city.ID,
				CityName:     city.Name,
			})
		}
	}
	return opts
}

// Visible decides whether an option shows for the given search query and
// selection state. A non-empty query searches every node by label and
// bypasses the hierarchy; otherwise an expanded district narrows the list to
// itself plus its own cities, and browse mode shows districts only.
func Visible(o Option, query string, s State) bool {
	if query != "" {
		return strings.Contains(strings.ToLower(o.Label()), strings.ToLower(query))
	}
	if s.ExpandedDistrict != "" {
		// The expanded district itself and its own cities; everything else hides.
		return o.DistrictID == s.ExpandedDistrict
	}
	return o.Type == OptionDistrict
}

// VisibleOptions applies Visible over the whole flattened catalog.
func (c *Catalog) VisibleOptions(query string, s State) []Option {
	var out []Option
	for _, o := range c.Options() {
		if Visible(o, query, s) {
			out = append(out, o)
		}
	}
	return out
}
