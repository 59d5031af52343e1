package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/greenpath/internal/common"
	"github.com/dmitrijs2005/greenpath/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUp_RegistersAndSignsIn(t *testing.T) {
	f := newFixture(t)
	svc := NewAuthService(f.store, f.session, f.pacer, logging.Discard())
	ctx := context.Background()

	p, err := svc.SignUp(ctx, SignUpForm{DisplayName: "Asha", Email: "asha@example.org", Password: "secret1"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(p.ID, "user_"))
	assert.Equal(t, "asha@example.org", p.Email)
	assert.Equal(t, 1, f.pacer.calls)

	u, ok := f.session.User()
	require.True(t, ok)
	assert.Equal(t, p, u)

	persisted, err := f.store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, p, persisted)
}

func TestSignUp_UniqueIDs(t *testing.T) {
	f := newFixture(t)
	svc := NewAuthService(f.store, f.session, f.pacer, logging.Discard())
	ctx := context.Background()

	a, err := svc.SignUp(ctx, SignUpForm{DisplayName: "A", Email: "a@example.org", Password: "secret1"})
	require.NoError(t, err)
	b, err := svc.SignUp(ctx, SignUpForm{DisplayName: "B", Email: "b@example.org", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestSignUp_Validation(t *testing.T) {
	f := newFixture(t)
	svc := NewAuthService(f.store, f.session, f.pacer, logging.Discard())

	_, err := svc.SignUp(context.Background(), SignUpForm{Email: "not-an-email", Password: "12345"})
	require.ErrorIs(t, err, common.ErrValidation)

	var ve *common.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, map[string]string{
		"name":     "Name is required",
		"email":    "Invalid email address",
		"password": "Password must be at least 6 characters",
	}, ve.Fields)
	assert.Zero(t, f.pacer.calls, "invalid input never reaches the store")
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	f := newFixture(t)
	f.signIn(t, asha)
	f.session.SetUser(nil)
	svc := NewAuthService(f.store, f.session, f.pacer, logging.Discard())

	_, err := svc.SignUp(context.Background(), SignUpForm{DisplayName: "Other", Email: asha.Email, Password: "another"})
	require.ErrorIs(t, err, common.ErrEmailAlreadyExists)

	_, ok := f.session.User()
	assert.False(t, ok, "failed sign up leaves the session alone")
}

func TestLogin_Success(t *testing.T) {
	f := newFixture(t)
	f.signIn(t, asha)
	require.NoError(t, f.store.Clear(context.Background()))
	f.session.SetUser(nil)
	svc := NewAuthService(f.store, f.session, f.pacer, logging.Discard())

	p, err := svc.Login(context.Background(), LoginForm{Email: asha.Email, Password: asha.Password})
	require.NoError(t, err)
	assert.Equal(t, &asha, p)

	u, ok := f.session.User()
	require.True(t, ok)
	assert.Equal(t, asha.City, u.City)

	persisted, err := f.store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &asha, persisted)
}

func TestLogin_WrongPasswordAndUnknownEmailLookTheSame(t *testing.T) {
	f := newFixture(t)
	f.signIn(t, asha)
	svc := NewAuthService(f.store, f.session, f.pacer, logging.Discard())

	_, errPw := svc.Login(context.Background(), LoginForm{Email: asha.Email, Password: "wrong!"})
	_, errEmail := svc.Login(context.Background(), LoginForm{Email: "nobody@example.org", Password: asha.Password})

	require.ErrorIs(t, errPw, common.ErrInvalidCredentials)
	require.ErrorIs(t, errEmail, common.ErrInvalidCredentials)
	assert.Equal(t, errPw.Error(), errEmail.Error())
}

func TestLogin_Validation(t *testing.T) {
	f := newFixture(t)
	svc := NewAuthService(f.store, f.session, f.pacer, logging.Discard())

	_, err := svc.Login(context.Background(), LoginForm{Email: "asha@example.org"})
	var ve *common.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, map[string]string{"password": "Password is required"}, ve.Fields)
}

func TestLogout(t *testing.T) {
	f := newFixture(t)
	f.signIn(t, asha)
	svc := NewAuthService(f.store, f.session, f.pacer, logging.Discard())

	require.NoError(t, svc.Logout(context.Background()))

	_, ok := f.session.User()
	assert.False(t, ok)
	p, err := f.store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, p)

	_, err = f.store.FindByCredentials(context.Background(), asha.Email, asha.Password)
	require.NoError(t, err, "the account survives logout")
}
