// Package models defines the client-side records persisted by GreenPath.
package models

import "github.com/dmitrijs2005/greenpath/internal/locations"

// LivingType is the kind of dwelling used to tailor advice.
type LivingType string

const (
	LivingFlat   LivingType = "Flat"
	LivingHouse  LivingType = "House"
	LivingGround LivingType = "Ground"
)

// DefaultLivingType pre-selects the living type on forms for profiles that
// have none yet.
const DefaultLivingType = LivingHouse

// LivingTypes lists the valid values in display order.
var LivingTypes = []LivingType{LivingFlat, LivingHouse, LivingGround}

// Valid reports whether t is one of LivingTypes.
func (t LivingType) Valid() bool {
	for _, v := range LivingTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Label is the human-readable description of t.
func (t LivingType) Label() string {
	switch t {
	case LivingFlat:
		return "Flat / Apartment"
	case LivingHouse:
		return "Independent House"
	case LivingGround:
		return "Ground / Farm Land"
	default:
		return string(t)
	}
}

// UserProfile is the durable user record. It is stored both in the users
// collection and, for the signed-in user, as the current-user pointer.
//
// Password is kept in plaintext; this is a demo credential only.
type UserProfile struct {
	ID          string     `json:"uid"`
	Email       string     `json:"email"`
	DisplayName string     `json:"displayName"`
	Password    string     `json:"password,omitempty"`
	Country     string     `json:"country,omitempty"`
	State       string     `json:"state,omitempty"`
	City        string     `json:"city,omitempty"`
	LivingType  LivingType `json:"livingType,omitempty"`
}

// Clone returns a copy of p, or nil for a nil p.
func (p *UserProfile) Clone() *UserProfile {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// Location returns the profile's country/state/city.
func (p *UserProfile) Location() locations.Selection {
	return locations.Selection{Country: p.Country, State: p.State, City: p.City}
}

// SetupComplete reports whether the profile has a city, which every
// dashboard view needs.
func (p *UserProfile) SetupComplete() bool {
	return p != nil && p.City != ""
}

// ProfileUpdate is a partial update. Nil fields keep the prior value.
// Identity fields (ID, Email) and the credential are not updatable.
type ProfileUpdate struct {
	DisplayName *string
	Country     *string
	State       *string
	City        *string
	LivingType  *LivingType
}

// LocationUpdate builds an update that sets all location fields and the
// living type.
func LocationUpdate(sel locations.Selection, lt LivingType) ProfileUpdate {
	return ProfileUpdate{
		Country:    &sel.Country,
		State:      &sel.State,
		City:       &sel.City,
		LivingType: &lt,
	}
}

// Merge returns a copy of p with the non-nil fields of u applied.
func (p UserProfile) Merge(u ProfileUpdate) UserProfile {
	if u.DisplayName != nil {
		p.DisplayName = *u.DisplayName
	}
	if u.Country != nil {
		p.Country = *u.Country
	}
	if u.State != nil {
		p.State = *u.State
	}
	if u.City != nil {
		p.City = *u.City
	}
	if u.LivingType != nil {
		p.LivingType = *u.LivingType
	}
	return p
}
