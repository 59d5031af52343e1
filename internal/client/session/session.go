// Package session holds the process-wide active user and its readiness flag.
package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/greenpath/internal/client/models"
	"github.com/dmitrijs2005/greenpath/internal/logging"
)

// Loader reads the persisted active profile. profile.Store satisfies it.
type Loader interface {
	Load(ctx context.Context) (*models.UserProfile, error)
}

// Context is the in-memory session. The zero value is not usable; build one
// with New.
//
// Init performs the single initialization pass. Until it completes, Ready
// reports false and User reports no user. SetUser only changes memory;
// callers persist through the store first.
type Context struct {
	loader Loader
	log    logging.Logger

	once sync.Once
	done chan struct{}

	mu    sync.RWMutex
	user  *models.UserProfile
	ready bool
}

// New returns a Context that loads the active profile from loader on Init.
func New(loader Loader, log logging.Logger) *Context {
	return &Context{
		loader: loader,
		log:    log,
		done:   make(chan struct{}),
	}
}

// Init loads the active profile once per Context. Later calls return
// immediately. A load failure leaves the session logged out.
func (c *Context) Init(ctx context.Context) {
	c.once.Do(func() {
		user, err := c.loader.Load(ctx)
		if err != nil {
			c.log.Warn(ctx, "session init: could not load active profile", "error", err)
			user = nil
		}

		c.mu.Lock()
		c.user = user.Clone()
		c.ready = true
		c.mu.Unlock()

		close(c.done)
		if user != nil {
			c.log.Debug(ctx, "session restored", "email", user.Email)
		}
	})
}

// Ready reports whether Init has completed.
func (c *Context) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ready
}

// Done is closed once Init has completed.
func (c *Context) Done() <-chan struct{} {
	return c.done
}

// Wait blocks until Init has completed or ctx is done.
func (c *Context) Wait(ctx context.Context) error {
	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// User returns a copy of the active user. ok is false before Init completes
// and when nobody is signed in.
func (c *Context) User() (*models.UserProfile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.ready || c.user == nil {
		return nil, false
	}
	return c.user.Clone(), true
}

// SetUser replaces the in-memory active user; nil signs out.
func (c *Context) SetUser(u *models.UserProfile) {
	c.mu.Lock()
	c.user = u.Clone()
	c.mu.Unlock()
}
