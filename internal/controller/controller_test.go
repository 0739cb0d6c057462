package controller

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"hollmovies-web-be/internal/db"
	"hollmovies-web-be/internal/models"
	"hollmovies-web-be/internal/payment"
	"hollmovies-web-be/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *session.Store {
	t.Helper()
	conn, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, db.Migrate(conn))
	return session.New(conn)
}

func TestFreshSessionHasNoUser(t *testing.T) {
	app := New(newTestStore(t))
	assert.Nil(t, app.CurrentUser())
	assert.False(t, app.IsVIP())
	assert.Nil(t, app.Notification())
}

func TestAuthSuccessPersistsAndNotifies(t *testing.T) {
	store := newTestStore(t)
	app := New(store)

	app.OnAuthSuccess(models.User{ID: "u1", Name: "Hitesh Singh", Email: "h@example.com", Role: models.RoleUser})

	u := app.CurrentUser()
	require.NotNil(t, u)
	assert.Equal(t, "u1", u.ID)

	persisted := store.Load()
	require.NotNil(t, persisted)
	assert.Equal(t, *u, *persisted)

	note := app.Notification()
	require.NotNil(t, note)
	assert.Equal(t, "WELCOME BACK, Hitesh Singh!", note.Message)
	assert.Equal(t, "info", note.Kind)
}

func TestControllerRestoresSessionAtStartup(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(models.User{ID: "u1", Role: models.RoleVIP}))

	app := New(store)
	assert.True(t, app.IsVIP())
}

func TestLogoutClearsAndIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	app := New(store)

	app.OnAuthSuccess(models.User{ID: "u1", Name: "Hitesh Singh"})
	app.OnLogout()

	assert.Nil(t, app.CurrentUser())
	assert.Nil(t, store.Load())
	note := app.Notification()
	require.NotNil(t, note)
	assert.Equal(t, "LOGGED OUT SUCCESSFULLY", note.Message)

	// Logging out while logged out is a no-op: no banner replaces nothing.
	app2 := New(newTestStore(t))
	app2.OnLogout()
	assert.Nil(t, app2.Notification())
}

func TestPaymentSuccessUpgradesExistingUser(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(models.User{ID: "u1", Name: "Hitesh Singh", Email: "h@example.com", Role: models.RoleUser}))

	app := New(store)
	require.False(t, app.IsVIP())

	app.OnPaymentSuccess()

	assert.True(t, app.IsVIP())
	u := app.CurrentUser()
	require.NotNil(t, u)
	// Only the role changed; identity survives the upgrade.
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, "Hitesh Singh", u.Name)

	persisted := store.Load()
	require.NotNil(t, persisted)
	assert.Equal(t, models.RoleVIP, persisted.Role)
}

func TestPaymentSuccessSynthesizesGuest(t *testing.T) {
	store := newTestStore(t)
	app := New(store)

	app.OnPaymentSuccess()

	u := app.CurrentUser()
	require.NotNil(t, u)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "HOLLMOVIES USER", u.Name)
	assert.Equal(t, "guest@hollmovies4u.com", u.Email)
	assert.Equal(t, models.RoleVIP, u.Role)
	require.NotNil(t, store.Load())
}

func TestPaymentSuccessIdempotentOnVIP(t *testing.T) {
	store := newTestStore(t)
	app := New(store)

	app.OnPaymentSuccess()
	first := app.CurrentUser()

	app.OnPaymentSuccess()
	second := app.CurrentUser()

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, models.RoleVIP, second.Role)
	// The re-affirmation still shows a banner.
	note := app.Notification()
	require.NotNil(t, note)
	assert.Equal(t, "success", note.Kind)
}

func TestNewNotificationSupersedesOld(t *testing.T) {
	app := New(newTestStore(t))

	app.OnAuthSuccess(models.User{ID: "u1", Name: "Hitesh Singh"})
	app.OnLogout()

	note := app.Notification()
	require.NotNil(t, note)
	assert.Equal(t, "LOGGED OUT SUCCESSFULLY", note.Message)
}

// Full checkout path, fresh visitor: open wizard, pick a plan, submit the
// reference, wait out verification, end up a persisted VIP.
func TestGuestCheckoutEndToEnd(t *testing.T) {
	store := newTestStore(t)
	app := New(store)

	flow := payment.NewFlow(func(plan string) { app.OnPaymentSuccess() })
	flow.SetVerifyDelay(10 * time.Millisecond)

	flow.Open()
	require.NoError(t, flow.SelectPlan("PLATINUM VIP"))
	require.NoError(t, flow.StartVerification("UPI123456789"))

	require.Eventually(t, app.IsVIP, time.Second, time.Millisecond)

	u := app.CurrentUser()
	require.NotNil(t, u)
	assert.Equal(t, models.RoleVIP, u.Role)

	persisted := store.Load()
	require.NotNil(t, persisted)
	assert.Equal(t, *u, *persisted)

	// By the time the wizard resets, the upgrade has already been persisted.
	require.Eventually(t, func() bool { return flow.Step() == payment.StepSelection }, time.Second, time.Millisecond)
	assert.True(t, app.IsVIP())
}

// Stored user-role session upgrading through the flow keeps its identity.
func TestStoredUserUpgradeEndToEnd(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(models.User{ID: "u1", Name: "Hitesh Singh", Email: "h@example.com", Role: models.RoleUser}))

	app := New(store)
	require.False(t, app.IsVIP())

	flow := payment.NewFlow(func(plan string) { app.OnPaymentSuccess() })
	flow.SetVerifyDelay(10 * time.Millisecond)
	require.NoError(t, flow.SelectPlan("PRO MONTHLY"))
	require.NoError(t, flow.StartVerification("UPI123456789"))

	require.Eventually(t, app.IsVIP, time.Second, time.Millisecond)

	persisted := store.Load()
	require.NotNil(t, persisted)
	assert.Equal(t, "u1", persisted.ID)
	assert.Equal(t, models.RoleVIP, persisted.Role)
}
