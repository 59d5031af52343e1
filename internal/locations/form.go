package locations

import (
	"errors"

	"github.com/dmitrijs2005/greenpath/internal/common"
)

// Defaults applied to empty saved fields when a form is opened.
const (
	DefaultCountry = "India"
	DefaultState   = "Karnataka"
)

// ErrParentUnset is returned when a state or city is picked while its parent
// level is still empty; the control is inert in that case.
var ErrParentUnset = errors.New("parent level not selected")

// Selection is a country/state/city triple as stored on a profile.
type Selection struct {
	Country string
	State   string
	City    string
}

// Form tracks a cascading location selection against the last persisted
// baseline.
//
// Opening the form from a saved profile is not a change, so it never clears
// anything. Only Set* calls are user-driven: picking a country different from
// the recorded one clears state and city, picking a state different from the
// recorded one clears city. When the profile has no recorded value for a
// level, the previous selection on the form is the reference instead.
type Form struct {
	baseline Selection
	current  Selection
}

// NewForm opens a form on the saved selection, filling empty country/state
// with the defaults.
func NewForm(saved Selection) *Form {
	current := saved
	if current.Country == "" {
		current.Country = DefaultCountry
	}
	if current.State == "" {
		current.State = DefaultState
	}
	return &Form{baseline: saved, current: current}
}

// Selection returns the current values.
func (f *Form) Selection() Selection {
	return f.current
}

// Baseline returns the persisted values the form was opened with.
func (f *Form) Baseline() Selection {
	return f.baseline
}

// SetCountry records a user-driven country change.
func (f *Form) SetCountry(country string) {
	ref := f.baseline.Country
	if ref == "" {
		ref = f.current.Country
	}
	f.current.Country = country
	if country != ref {
		f.current.State = ""
		f.current.City = ""
	}
}

// SetState records a user-driven state change.
func (f *Form) SetState(state string) error {
	if !f.StateEnabled() {
		return ErrParentUnset
	}
	ref := f.baseline.State
	if ref == "" {
		ref = f.current.State
	}
	f.current.State = state
	if state != ref {
		f.current.City = ""
	}
	return nil
}

// SetCity records a user-driven city change.
func (f *Form) SetCity(city string) error {
	if !f.CityEnabled() {
		return ErrParentUnset
	}
	f.current.City = city
	return nil
}

func (f *Form) StateEnabled() bool { return f.current.Country != "" }
func (f *Form) CityEnabled() bool  { return f.current.State != "" }

func (f *Form) AvailableStates() []string { return States(f.current.Country) }
func (f *Form) AvailableCities() []string { return Cities(f.current.State) }

// Validate checks that every level is set and is a child of its parent.
// The returned error, if any, is a *common.ValidationError.
func (f *Form) Validate() error {
	ve := &common.ValidationError{}
	sel := f.current

	switch {
	case sel.Country == "":
		ve.Add("country", "Please select a country.")
	case len(States(sel.Country)) == 0:
		ve.Add("country", "Please select a valid country.")
	}

	switch {
	case sel.State == "":
		ve.Add("state", "Please select a state.")
	case !IsState(sel.Country, sel.State):
		ve.Add("state", "Please select a valid state.")
	}

	switch {
	case sel.City == "":
		ve.Add("city", "Please select a city.")
	case !IsCity(sel.State, sel.City):
		ve.Add("city", "Please select a valid city.")
	}

	return ve.OrNil()
}
