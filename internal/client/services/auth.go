package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/greenpath/internal/client/models"
	"github.com/dmitrijs2005/greenpath/internal/client/session"
	"github.com/dmitrijs2005/greenpath/internal/logging"
	"github.com/google/uuid"
)

// ProfileStore is the persistence the services need. profile.Store
// implements it.
type ProfileStore interface {
	Save(ctx context.Context, u models.ProfileUpdate) (*models.UserProfile, error)
	FindByCredentials(ctx context.Context, email, password string) (*models.UserProfile, error)
	Register(ctx context.Context, p models.UserProfile) error
	Activate(ctx context.Context, p models.UserProfile) error
	Clear(ctx context.Context) error
}

// SignUpForm is the input of AuthService.SignUp.
type SignUpForm struct {
	DisplayName string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"min=6"`
}

// LoginForm is the input of AuthService.Login.
type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

var signUpMessages = map[string]string{
	"name.required":  "Name is required",
	"email.required": "Invalid email address",
	"email.email":    "Invalid email address",
	"password.min":   "Password must be at least 6 characters",
}

var loginMessages = map[string]string{
	"email.required":    "Invalid email address",
	"email.email":       "Invalid email address",
	"password.required": "Password is required",
}

// AuthService signs users up, in and out.
//
// SignUp and Login persist first and then update the session, both inside
// the paced operation. A login miss is always common.ErrInvalidCredentials,
// whether the email or the password was wrong.
type AuthService interface {
	SignUp(ctx context.Context, form SignUpForm) (*models.UserProfile, error)
	Login(ctx context.Context, form LoginForm) (*models.UserProfile, error)
	Logout(ctx context.Context) error
}

type authService struct {
	store   ProfileStore
	session *session.Context
	pacer   Pacer
	log     logging.Logger
}

// NewAuthService returns an AuthService over store and sess.
func NewAuthService(store ProfileStore, sess *session.Context, pacer Pacer, log logging.Logger) AuthService {
	return &authService{store: store, session: sess, pacer: pacer, log: log}
}

func (a *authService) SignUp(ctx context.Context, form SignUpForm) (*models.UserProfile, error) {
	if err := validateForm(form, signUpMessages); err != nil {
		return nil, err
	}

	p := models.UserProfile{
		ID:          "user_" + uuid.NewString(),
		Email:       form.Email,
		DisplayName: form.DisplayName,
		Password:    form.Password,
	}

	err := a.pacer.Do(ctx, func(ctx context.Context) error {
		if err := a.store.Register(ctx, p); err != nil {
			return err
		}
		a.session.SetUser(&p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}

	a.log.Info(ctx, "user signed up", "uid", p.ID, "email", p.Email)
	return p.Clone(), nil
}

func (a *authService) Login(ctx context.Context, form LoginForm) (*models.UserProfile, error) {
	if err := validateForm(form, loginMessages); err != nil {
		return nil, err
	}

	var found *models.UserProfile
	err := a.pacer.Do(ctx, func(ctx context.Context) error {
		p, err := a.store.FindByCredentials(ctx, form.Email, form.Password)
		if err != nil {
			return err
		}
		if err := a.store.Activate(ctx, *p); err != nil {
			return err
		}
		a.session.SetUser(p)
		found = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	a.log.Info(ctx, "user logged in", "email", found.Email)
	return found.Clone(), nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	a.session.SetUser(nil)
	a.log.Info(ctx, "user logged out")
	return nil
}
