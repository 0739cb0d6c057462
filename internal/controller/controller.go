// Package controller owns the single signed-in-user slot. Auth and payment
// flows never touch the slot directly; they hand results back through the
// On* methods, which persist the record and publish the outcome banner.
package controller

import (
	"fmt"
	"log"
	"sync"
	"time"

	"hollmovies-web-be/internal/models"
	"hollmovies-web-be/internal/session"

	"github.com/google/uuid"
)

// Notification lifetimes, matching the frontend timings.
const (
	welcomeDuration = 4 * time.Second
	logoutDuration  = 3 * time.Second
	vipDuration     = 6 * time.Second
)

// Identity applied when a guest completes checkout without ever signing in.
const (
	guestName  = "HOLLMOVIES USER"
	guestEmail = "guest@hollmovies4u.com"
)

type App struct {
	mu    sync.Mutex
	store *session.Store
	user  *models.User

	note    *models.Notification
	noteGen int
}

// New restores the previous session, if any, from the store.
func New(store *session.Store) *App {
	return &App{
		store: store,
		user:  store.Load(),
	}
}

func (a *App) CurrentUser() *models.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.user == nil {
		return nil
	}
	u := *a.user
	return &u
}

func (a *App) IsVIP() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.user != nil && a.user.Role == models.RoleVIP
}

// OnAuthSuccess installs and persists the freshly authenticated user.
func (a *App) OnAuthSuccess(u models.User) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.user = &u
	a.persist()
	a.notify(fmt.Sprintf("WELCOME BACK, %s!", u.Name), "info", welcomeDuration)
}

// OnLogout clears the session. Logging out when nobody is signed in is a
// no-op: no store write, no banner.
func (a *App) OnLogout() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.user == nil {
		return
	}
	a.user = nil
	if err := a.store.Clear(); err != nil {
		log.Printf("[Controller] Failed to clear session: %v", err)
	}
	a.notify("LOGGED OUT SUCCESSFULLY", "info", logoutDuration)
}

// OnPaymentSuccess promotes the current user to VIP and persists the
// upgraded record. With no session present it synthesizes a guest account
// first, so checkout doubles as account creation. Re-running on an
// already-VIP user keeps the record unchanged except for a fresh banner.
func (a *App) OnPaymentSuccess() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.user == nil {
		a.user = &models.User{
			ID:    "user_" + uuid.NewString(),
			Name:  guestName,
			Email: guestEmail,
		}
	}
	a.user.Role = models.RoleVIP
	a.persist()
	a.notify("VIP STATUS ACTIVATED! ENJOY PREMIUM ACCESS.", "success", vipDuration)
}

// Notification returns the currently visible banner, or nil once it has
// expired.
func (a *App) Notification() *models.Notification {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.note == nil {
		return nil
	}
	n := *a.note
	return &n
}

// persist writes the current user through to the store. Must be called with
// the lock held, before any caller-visible state is considered final.
func (a *App) persist() {
	if err := a.store.Save(*a.user); err != nil {
		log.Printf("[Controller] Failed to persist session: %v", err)
	}
}

// notify replaces any visible banner; the newest one always wins, there is
// no queue. Must be called with the lock held.
func (a *App) notify(message, kind string, d time.Duration) {
	a.noteGen++
	gen := a.noteGen
	a.note = &models.Notification{Message: message, Kind: kind}
	time.AfterFunc(d, func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		if a.noteGen == gen {
			a.note = nil
		}
	})
}
