package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/greenpath/internal/client/models"
	"github.com/dmitrijs2005/greenpath/internal/client/session"
	"github.com/dmitrijs2005/greenpath/internal/common"
	"github.com/dmitrijs2005/greenpath/internal/locations"
	"github.com/dmitrijs2005/greenpath/internal/logging"
)

// LocationForm is the location/setup form: the cascading location selection
// plus the living type.
type LocationForm struct {
	*locations.Form
	LivingType models.LivingType
}

// Validate checks the location cascade and the living type together.
func (f *LocationForm) Validate() error {
	ve := &common.ValidationError{}
	if err := f.Form.Validate(); err != nil {
		var locErr *common.ValidationError
		if !errors.As(err, &locErr) {
			return err
		}
		for field, msg := range locErr.Fields {
			ve.Add(field, msg)
		}
	}
	if !f.LivingType.Valid() {
		ve.Add("livingType", "Please select your living type.")
	}
	return ve.OrNil()
}

// ProfileService edits the signed-in user's location and living type.
//
// Setup is the first-time flow for users without a city; UpdateLocation is
// the later edit. Both validate, then persist and update the session inside
// one paced operation.
type ProfileService interface {
	NewLocationForm(ctx context.Context) (*LocationForm, error)
	NeedsSetup(ctx context.Context) (bool, error)
	Setup(ctx context.Context, form *LocationForm) (*models.UserProfile, error)
	UpdateLocation(ctx context.Context, form *LocationForm) (*models.UserProfile, error)
}

type profileService struct {
	store   ProfileStore
	session *session.Context
	pacer   Pacer
	log     logging.Logger
}

func NewProfileService(store ProfileStore, sess *session.Context, pacer Pacer, log logging.Logger) ProfileService {
	return &profileService{store: store, session: sess, pacer: pacer, log: log}
}

// NewLocationForm opens a form on the active user's saved values.
func (s *profileService) NewLocationForm(ctx context.Context) (*LocationForm, error) {
	user, ok := s.session.User()
	if !ok {
		return nil, common.ErrNoActiveUser
	}

	lt := user.LivingType
	if lt == "" {
		lt = models.DefaultLivingType
	}
	return &LocationForm{Form: locations.NewForm(user.Location()), LivingType: lt}, nil
}

// NeedsSetup reports whether the active user has yet to pick a city.
func (s *profileService) NeedsSetup(ctx context.Context) (bool, error) {
	user, ok := s.session.User()
	if !ok {
		return false, common.ErrNoActiveUser
	}
	return !user.SetupComplete(), nil
}

func (s *profileService) Setup(ctx context.Context, form *LocationForm) (*models.UserProfile, error) {
	p, err := s.save(ctx, form)
	if err != nil {
		return nil, fmt.Errorf("setup: %w", err)
	}
	s.log.Info(ctx, "profile setup completed", "email", p.Email, "city", p.City)
	return p, nil
}

func (s *profileService) UpdateLocation(ctx context.Context, form *LocationForm) (*models.UserProfile, error) {
	p, err := s.save(ctx, form)
	if err != nil {
		return nil, fmt.Errorf("update location: %w", err)
	}
	s.log.Info(ctx, "location updated", "email", p.Email, "city", p.City)
	return p, nil
}

func (s *profileService) save(ctx context.Context, form *LocationForm) (*models.UserProfile, error) {
	if _, ok := s.session.User(); !ok {
		return nil, common.ErrNoActiveUser
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}

	update := models.LocationUpdate(form.Selection(), form.LivingType)

	var saved *models.UserProfile
	err := s.pacer.Do(ctx, func(ctx context.Context) error {
		p, err := s.store.Save(ctx, update)
		if err != nil {
			return err
		}
		s.session.SetUser(p)
		saved = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved.Clone(), nil
}
