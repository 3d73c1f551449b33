package session

import (
	"context"
	"log"
	"sync"

	"suuq-storefront/authapi"
	"suuq-storefront/models"
)

// Status is the authentication state of the current visitor.
type Status string

const (
	StatusLoading   Status = "loading"
	StatusLoggedIn  Status = "loggedIn"
	StatusLoggedOut Status = "loggedOut"
)

// AuthService is the slice of the auth client the controller needs.
type AuthService interface {
	Status(ctx context.Context) (*authapi.StatusResponse, error)
	Logout(ctx context.Context) error
}

// Controller tracks whether the visitor is authenticated and exposes the
// current identity to everything that gates behavior on it. It starts in
// StatusLoading and settles into loggedIn/loggedOut after the one initial
// status check; after that it only moves between loggedIn and loggedOut.
//
// Auth failures are never fatal: every failed remote call degrades to the
// logged-out view, and no method returns an error to its caller.
type Controller struct {
	mu          sync.Mutex
	status      Status
	user        *models.Identity
	auth        AuthService
	checked     bool
	checking    bool
	subscribers []func()
}

// NewController creates a controller in the loading state.
func NewController(auth AuthService) *Controller {
	return &Controller{
		status: StatusLoading,
		auth:   auth,
	}
}

// Status returns the current authentication status.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// CurrentUser returns the logged-in identity, or nil when there is none.
func (c *Controller) CurrentUser() *models.Identity {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user
}

// Subscribe registers fn to be called synchronously after every state
// change.
func (c *Controller) Subscribe(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}

func (c *Controller) notify() {
	c.mu.Lock()
	subs := make([]func(), len(c.subscribers))
	copy(subs, c.subscribers)
	c.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

func (c *Controller) set(status Status, user *models.Identity) {
	c.mu.Lock()
	c.status = status
	c.user = user
	c.checked = true
	c.mu.Unlock()
	c.notify()
}

// CheckStatus performs the one initial status check against the auth
// service. A response carrying isLoggedIn with a valid identity moves to
// loggedIn; every other outcome (explicit not-authenticated, transport
// error, malformed payload, missing identity) moves to loggedOut. Repeat
// calls after the first resolution are no-ops.
func (c *Controller) CheckStatus(ctx context.Context) {
	c.mu.Lock()
	if c.checked || c.checking {
		c.mu.Unlock()
		return
	}
	c.checking = true
	c.mu.Unlock()

	status, err := c.auth.Status(ctx)
	if err != nil {
		// Assume logged out on error
		log.Printf("Auth status check failed: %v", err)
		c.set(StatusLoggedOut, nil)
		return
	}

	if status.IsLoggedIn && status.User.Valid() {
		c.set(StatusLoggedIn, status.User)
		return
	}
	c.set(StatusLoggedOut, nil)
}

// HandleAuthSuccess reports a freshly authenticated or updated identity
// from a login, signup or profile-update flow. A payload without a valid
// identity is treated as an authentication failure and reverts to logged
// out rather than trusting partial data.
func (c *Controller) HandleAuthSuccess(user *models.Identity) {
	if !user.Valid() {
		log.Printf("Auth success handler received invalid user data")
		c.set(StatusLoggedOut, nil)
		return
	}
	c.set(StatusLoggedIn, user)
}

// HandleLogout notifies the auth service best-effort, then unconditionally
// moves to logged out. A failed remote logout never blocks the transition.
func (c *Controller) HandleLogout(ctx context.Context) {
	if err := c.auth.Logout(ctx); err != nil {
		log.Printf("Logout API call failed: %v", err)
	}
	c.set(StatusLoggedOut, nil)
}
