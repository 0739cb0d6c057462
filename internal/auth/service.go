package auth

import (
	"database/sql"
	"errors"
	"os"
	"strings"
	"time"

	"hollmovies-web-be/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var SecretKey = secretKey()

func secretKey() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("super-secret-key-change-this-in-prod")
}

type Mode int

const (
	SignIn Mode = iota
	SignUp
)

var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("an account with this email already exists")
)

type Service struct {
	db *sql.DB
}

func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// Submit runs one auth interaction. SignUp creates a user-role account
// (VIP is earned through the payment flow, never at sign-up); SignIn
// verifies stored credentials. Both reject on bad input instead of the
// always-succeed behavior the original frontend mocked.
func (s *Service) Submit(form models.AuthForm, mode Mode) (*models.User, error) {
	form.Email = strings.TrimSpace(form.Email)
	form.Name = strings.TrimSpace(form.Name)

	switch mode {
	case SignUp:
		return s.register(form)
	default:
		return s.login(form)
	}
}

func (s *Service) register(form models.AuthForm) (*models.User, error) {
	if form.Name == "" || form.Email == "" || form.Password == "" {
		return nil, ErrMissingFields
	}

	var exists bool
	err := s.db.QueryRow("SELECT exists(SELECT 1 FROM users WHERE email=?)", form.Email).Scan(&exists)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := models.User{
		ID:    uuid.NewString(),
		Name:  form.Name,
		Email: form.Email,
		Role:  models.RoleUser,
	}
	_, err = s.db.Exec(
		"INSERT INTO users(id, name, email, password, role) VALUES(?, ?, ?, ?, ?)",
		u.ID, u.Name, u.Email, string(hashed), u.Role,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Service) login(form models.AuthForm) (*models.User, error) {
	if form.Email == "" || form.Password == "" {
		return nil, ErrMissingFields
	}

	var u models.User
	var storedPassword string
	err := s.db.QueryRow(
		"SELECT id, name, email, password, role FROM users WHERE email=?",
		form.Email,
	).Scan(&u.ID, &u.Name, &u.Email, &storedPassword, &u.Role)
	if err == sql.ErrNoRows {
		return nil, ErrInvalidCredentials
	} else if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedPassword), []byte(form.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}

// SetRole updates the stored role for the account with the given email, if
// one exists. Payment promotions go through here so a later sign-in sees
// the upgraded role too, not only the persisted session record.
func (s *Service) SetRole(email, role string) error {
	_, err := s.db.Exec("UPDATE users SET role=? WHERE email=?", role, email)
	return err
}

// GenerateToken signs the JWT the frontend presents on role-gated
// endpoints.
func GenerateToken(u models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   u.ID,
		"email": u.Email,
		"name":  u.Name,
		"role":  u.Role,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(SecretKey)
}

// ParseToken validates a bearer token and reconstructs the user identity
// carried in its claims.
func ParseToken(tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return SecretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	u := models.User{}
	if v, ok := claims["sub"].(string); ok {
		u.ID = v
	}
	if v, ok := claims["email"].(string); ok {
		u.Email = v
	}
	if v, ok := claims["name"].(string); ok {
		u.Name = v
	}
	if v, ok := claims["role"].(string); ok {
		u.Role = v
	}
	if u.Email == "" {
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}
