package auth

import (
	"database/sql"
	"path/filepath"
	"testing"

	"hollmovies-web-be/internal/db"
	"hollmovies-web-be/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	conn, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, db.Migrate(conn))
	return NewService(conn)
}

func signUpForm() models.AuthForm {
	return models.AuthForm{Name: "Hitesh Singh", Email: "hitesh@example.com", Password: "secret123"}
}

func TestSignUpCreatesUserRole(t *testing.T) {
	svc := newTestService(t)

	u, err := svc.Submit(signUpForm(), SignUp)
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "Hitesh Singh", u.Name)
	// Sign-up never grants VIP; that only comes from the payment flow.
	assert.Equal(t, models.RoleUser, u.Role)
}

func TestSignUpRejectsMissingFields(t *testing.T) {
	svc := newTestService(t)

	form := signUpForm()
	form.Name = "   "
	_, err := svc.Submit(form, SignUp)
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestSignUpRejectsDuplicateEmail(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Submit(signUpForm(), SignUp)
	require.NoError(t, err)

	_, err = svc.Submit(signUpForm(), SignUp)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignInVerifiesCredentials(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Submit(signUpForm(), SignUp)
	require.NoError(t, err)

	u, err := svc.Submit(models.AuthForm{Email: "hitesh@example.com", Password: "secret123"}, SignIn)
	require.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)
	assert.Equal(t, created.Role, u.Role)
}

func TestSignInRejectsWrongPassword(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Submit(signUpForm(), SignUp)
	require.NoError(t, err)

	_, err = svc.Submit(models.AuthForm{Email: "hitesh@example.com", Password: "wrong"}, SignIn)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignInRejectsUnknownEmail(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Submit(models.AuthForm{Email: "nobody@example.com", Password: "secret123"}, SignIn)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSetRolePersists(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Submit(signUpForm(), SignUp)
	require.NoError(t, err)
	require.NoError(t, svc.SetRole("hitesh@example.com", models.RoleVIP))

	u, err := svc.Submit(models.AuthForm{Email: "hitesh@example.com", Password: "secret123"}, SignIn)
	require.NoError(t, err)
	assert.Equal(t, models.RoleVIP, u.Role)
}

func TestTokenRoundTrip(t *testing.T) {
	u := models.User{ID: "u1", Name: "Hitesh Singh", Email: "hitesh@example.com", Role: models.RoleVIP}

	token, err := GenerateToken(u)
	require.NoError(t, err)

	got, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, u, *got)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}
