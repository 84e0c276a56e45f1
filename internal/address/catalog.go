package address

import (
	"fmt"

	"github.com/spf13/viper"
)

// District is one top-level entry of the delivery area catalog together
// with its deliverable cities, in display order.
type District struct {
	ID     string `mapstructure:"id" json:"id"`
	Name   string `mapstructure:"name" json:"name"`
	Cities []City `mapstructure:"cities" json:"cities"`
}

type City struct {
	ID   string `mapstructure:"id" json:"id"`
	Name string `mapstructure:"name" json:"name"`
}

// Catalog is the immutable two-level delivery area catalog. It is built once
// at startup and only read afterwards.
type Catalog struct {
	districts []District
	byID      map[string]int
}

func NewCatalog(districts []District) (*Catalog, error) {
	byID := make(map[string]int, len(districts))
	for i, d := range districts {
		if d.ID == "" || d.Name == "" {
			return nil, fmt.Errorf("district %d: id and name are required", i)
		}
		if _, dup := byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate district id %q", d.ID)
		}
		cityIDs := make(map[string]struct{}, len(d.Cities))
		for _, c := range d.Cities {
			if c.ID == "" || c.Name == "" {
				return nil, fmt.Errorf("district %q: city id and name are required", d.ID)
			}
			if _, dup := cityIDs[c.ID]; dup {
				return nil, fmt.Errorf("district %q: duplicate city id %q", d.ID, c.ID)
			}
			cityIDs[c.ID] = struct{}{}
		}
		byID[d.ID] = i
	}
	return &Catalog{districts: districts, byID: byID}, nil
}

// LoadCatalog reads a catalog override file (TOML, `districts` key). An empty
// path falls back to the built-in catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read address catalog: %w", err)
	}

	var districts []District
	if err := v.UnmarshalKey("districts", &districts); err != nil {
		return nil, fmt.Errorf("failed to parse address catalog: %w", err)
	}
	return NewCatalog(districts)
}

func (c *Catalog) Districts() []District {
	return c.districts
}

func (c *Catalog) District(id string) (District, bool) {
	i, ok := c.byID[id]
	if !ok {
		return District{}, false
	}
	return c.districts[i], true
}

func (c *Catalog) CityIn(districtID, cityID string) (City, bool) {
	d, ok := c.District(districtID)
	if !ok {
		return City{}, false
	}
	for _, city := range d.Cities {
		if city.ID == cityID {
			return city, true
		}
	}
	return City{}, false
}

// DefaultCatalog returns the built-in delivery area catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog([]District{
		{ID: "dhaka", Name: "Dhaka", Cities: []City{
			{ID: "mirpur", Name: "Mirpur"},
			{ID: "uttara", Name: "Uttara"},
			{ID: "dhanmondi", Name: "Dhanmondi"},
			{ID: "mohammadpur", Name: "Mohammadpur"},
			{ID: "gulshan", Name: "Gulshan"},
			{ID: "banani", Name: "Banani"},
			{ID: "badda", Name: "Badda"},
			{ID: "motijheel", Name: "Motijheel"},
			{ID: "demra", Name: "Demra"},
			{ID: "savar", Name: "Savar"},
			{ID: "savar-epz", Name: "Savar EPZ"},
			{ID: "keraniganj", Name: "Keraniganj"},
			{ID: "south-keraniganj", Name: "South Keraniganj"},
		}},
		{ID: "gazipur", Name: "Gazipur", Cities: []City{
			{ID: "tongi", Name: "Tongi"},
			{ID: "gazipur-sadar", Name: "Gazipur Sadar"},
			{ID: "sreepur", Name: "Sreepur"},
			{ID: "kaliakair", Name: "Kaliakair"},
		}},
		{ID: "narayanganj", Name: "Narayanganj", Cities: []City{
			{ID: "narayanganj-sadar", Name: "Narayanganj Sadar"},
			{ID: "fatullah", Name: "Fatullah"},
			{ID: "siddhirganj", Name: "Siddhirganj"},
		}},
		{ID: "chattogram", Name: "Chattogram", Cities: []City{
			{ID: "agrabad", Name: "Agrabad"},
			{ID: "pahartali", Name: "Pahartali"},
			{ID: "halishahar", Name: "Halishahar"},
		}},
		{ID: "sylhet", Name: "Sylhet", Cities: []City{
			{ID: "sylhet-sadar", Name: "Sylhet Sadar"},
			{ID: "zindabazar", Name: "Zindabazar"},
		}},
		{ID: "rajshahi", Name: "Rajshahi", Cities: []City{
			{ID: "rajshahi-sadar", Name: "Rajshahi Sadar"},
			{ID: "shaheb-bazar", Name: "Shaheb Bazar"},
		}},
		{ID: "khulna", Name: "Khulna", Cities: []City{
			{ID: "khulna-sadar", Name: "Khulna Sadar"},
			{ID: "sonadanga", Name: "Sonadanga"},
		}},
	})
	if err != nil {
		// The built-in data is validated by tests; a failure here is a bug.
		panic(err)
	}
	return c
}
