package address

import "fmt"

// Phase is the coarse view of a selection: browsing the district list,
// drilled into one district, or committed to a district/city pair.
type Phase string

const (
	PhaseBrowsing  Phase = "browsing"
	PhaseExpanded  Phase = "expanded"
	PhaseCommitted Phase = "committed"
)

// State is the drill-down selection state. ExpandedDistrict is transient UI
// state and may differ from SelectedDistrict; a set SelectedCity always has a
// matching SelectedDistrict because city commits go through SelectCity.
type State struct {
	SelectedDistrict string `json:"selected_district"`
	SelectedCity     string `json:"selected_city"`
	ExpandedDistrict string `json:"expanded_district"`
	MenuOpen         bool   `json:"menu_open"`
}

func (s State) Phase() Phase {
	switch {
	case s.SelectedCity != "":
		return PhaseCommitted
	case s.ExpandedDistrict != "":
		return PhaseExpanded
	default:
		return PhaseBrowsing
	}
}

// SelectDistrict records a district pick: any committed city is discarded,
// the district's city list toggles open or shut, and the menu stays open so
// a city can be picked next.
func SelectDistrict(s State, districtID string) State {
	next := State{
		SelectedDistrict: districtID,
		MenuOpen:         true,
	}
	if s.ExpandedDistrict != districtID {
		next.ExpandedDistrict = districtID
	}
	return next
}

// SelectCity commits a district/city pair and closes the menu.
func SelectCity(s State, districtID, cityID string) State {
	return State{
		SelectedDistrict: districtID,
		SelectedCity:     cityID,
		MenuOpen:         false,
	}
}

// Clear drops the whole selection.
func Clear(State) State {
	return State{}
}

// Reduce applies the ordered pick list a multi-select widget reports. Only
// the final element carries intent; earlier elements are an artifact of the
// widget's multi-select mechanics and are dropped.
func Reduce(s State, picks []Option) State {
	if len(picks) == 0 {
		return Clear(s)
	}
	last := picks[len(picks)-1]
	if last.Type == OptionCity {
		return SelectCity(s, last.DistrictID, last.CityID)
	}
	return SelectDistrict(s, last.DistrictID)
}

// Token renders the committed selection for display: "District → City" when
// committed, the bare district when only a district is picked, empty
// otherwise. The token is rebuilt from state each time and is never itself a
// selectable option.
func Token(s State, c *Catalog) string {
	if s.SelectedDistrict == "" {
		return ""
	}
	d, ok := c.District(s.SelectedDistrict)
	if !ok {
		return ""
	}
	if s.SelectedCity != "" {
		if city, ok := c.CityIn(s.SelectedDistrict, s.SelectedCity); ok {
			return fmt.Sprintf("%s → %s", d.Name, city.Name)
		}
	}
	return d.Name
}
