package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func districtOpt(id, name string) Option {
	return Option{Type: OptionDistrict, DistrictID: id, DistrictName: name}
}

func cityOpt(did, dname, cid, cname string) Option {
	return Option{Type: OptionCity, DistrictID: did, DistrictName: dname, CityID: cid, CityName: cname}
}

func TestSelectDistrictExpandsAndKeepsMenuOpen(t *testing.T) {
	s := SelectDistrict(State{}, "dhaka")

	assert.Equal(t, "dhaka", s.SelectedDistrict)
	assert.Empty(t, s.SelectedCity)
	assert.Equal(t, "dhaka", s.ExpandedDistrict)
	assert.True(t, s.MenuOpen)
	assert.Equal(t, PhaseExpanded, s.Phase())
}

func TestReselectingExpandedDistrictCollapses(t *testing.T) {
	s := SelectDistrict(State{}, "dhaka")
	s = SelectDistrict(s, "dhaka")

	assert.Equal(t, "dhaka", s.SelectedDistrict, "selected district survives collapse")
	assert.Empty(t, s.SelectedCity)
	assert.Empty(t, s.ExpandedDistrict, "expansion toggles shut")
	assert.True(t, s.MenuOpen)
	assert.Equal(t, PhaseBrowsing, s.Phase())
}

func TestSwitchingDistrictsMovesExpansion(t *testing.T) {
	s := SelectDistrict(State{}, "dhaka")
	s = SelectDistrict(s, "gazipur")

	assert.Equal(t, "gazipur", s.SelectedDistrict)
	assert.Equal(t, "gazipur", s.ExpandedDistrict)
}

func TestSelectCityCommitsAndClosesMenu(t *testing.T) {
	s := SelectDistrict(State{}, "dhaka")
	s = SelectCity(s, "dhaka", "mirpur")

	assert.Equal(t, "dhaka", s.SelectedDistrict)
	assert.Equal(t, "mirpur", s.SelectedCity)
	assert.Empty(t, s.ExpandedDistrict)
	assert.False(t, s.MenuOpen)
	assert.Equal(t, PhaseCommitted, s.Phase())
}

func TestDistrictPickAfterCommitDropsCity(t *testing.T) {
	s := SelectCity(State{}, "dhaka", "mirpur")
	s = SelectDistrict(s, "gazipur")

	assert.Equal(t, "gazipur", s.SelectedDistrict)
	assert.Empty(t, s.SelectedCity)
}

func TestClear(t *testing.T) {
	s := SelectCity(State{}, "dhaka", "mirpur")
	assert.Equal(t, State{}, Clear(s))
}

func TestReduceUsesOnlyLastPick(t *testing.T) {
	picks := []Option{
		districtOpt("dhaka", "Dhaka"),
		districtOpt("gazipur", "Gazipur"),
		cityOpt("gazipur", "Gazipur", "tongi", "Tongi"),
	}
	s := Reduce(State{}, picks)

	assert.Equal(t, "gazipur", s.SelectedDistrict)
	assert.Equal(t, "tongi", s.SelectedCity)
	assert.False(t, s.MenuOpen)
}

func TestReduceEmptyClears(t *testing.T) {
	s := SelectCity(State{}, "dhaka", "mirpur")
	assert.Equal(t, State{}, Reduce(s, nil))
}

// A committed city always carries its district, whatever event order led
// there.
func TestCityNeverCommittedWithoutDistrict(t *testing.T) {
	catalog := DefaultCatalog()
	sequences := [][]Option{
		{cityOpt("dhaka", "Dhaka", "demra", "Demra")},
		{districtOpt("gazipur", "Gazipur"), cityOpt("dhaka", "Dhaka", "savar", "Savar")},
		{districtOpt("dhaka", "Dhaka")},
		nil,
	}
	s := State{}
	for _, picks := range sequences {
		s = Reduce(s, picks)
		if s.SelectedCity != "" {
			require.NotEmpty(t, s.SelectedDistrict)
			_, ok := catalog.CityIn(s.SelectedDistrict, s.SelectedCity)
			require.True(t, ok, "committed pair must exist in catalog")
		}
	}
}

func TestToken(t *testing.T) {
	catalog := DefaultCatalog()

	assert.Empty(t, Token(State{}, catalog))
	assert.Equal(t, "Dhaka", Token(State{SelectedDistrict: "dhaka"}, catalog))
	assert.Equal(t, "Dhaka → Mirpur",
		Token(State{SelectedDistrict: "dhaka", SelectedCity: "mirpur"}, catalog))
	assert.Empty(t, Token(State{SelectedDistrict: "nowhere"}, catalog))
}
