package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ShareFrame/profile-screen-service/dynamodb"
	"github.com/ShareFrame/profile-screen-service/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	// ErrAuthUnavailable wraps failures to reach the account store, as
	// opposed to a wrong password.
	ErrAuthUnavailable = errors.New("account store unavailable")
)

type Options struct {
	Secret     string
	Issuer     string
	SessionTTL time.Duration
}

type Service struct {
	store dynamodb.AccountStore
	opts  Options
	now   func() time.Time
}

func NewService(store dynamodb.AccountStore, opts Options) *Service {
	return &Service{store: store, opts: opts, now: time.Now}
}

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// SignIn verifies email and password and opens a new session.
func (s *Service) SignIn(ctx context.Context, email, password string) (string, error) {
	account, err := s.store.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, dynamodb.ErrAccountNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("%w: %v", ErrAuthUnavailable, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := s.now()
	session := models.Session{
		SessionID: uuid.NewString(),
		UserID:    account.UserID,
		ExpiresAt: now.Add(s.opts.SessionTTL).Unix(),
	}
	if err := s.store.PutSession(ctx, session); err != nil {
		return "", fmt.Errorf("failed to open session: %w", err)
	}

	claims := sessionClaims{
		Email: account.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.UserID,
			ID:        session.SessionID,
			Issuer:    s.opts.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(time.Unix(session.ExpiresAt, 0)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.opts.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id":    account.UserID,
		"session_id": session.SessionID,
	}).Info("User signed in")

	return token, nil
}

// Authenticate turns a session token into the Identity every profile
// operation is given.
func (s *Service) Authenticate(ctx context.Context, token string) (models.Identity, error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.opts.Secret), nil
	}, jwt.WithIssuer(s.opts.Issuer), jwt.WithExpirationRequired(), jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		return models.Identity{}, ErrInvalidToken
	}

	if claims.Subject == "" || claims.ID == "" {
		return models.Identity{}, ErrInvalidToken
	}

	session, err := s.store.GetSession(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, dynamodb.ErrSessionNotFound) {
			return models.Identity{}, ErrInvalidToken
		}
		return models.Identity{}, fmt.Errorf("%w: %v", ErrAuthUnavailable, err)
	}
	if session.UserID != claims.Subject {
		return models.Identity{}, ErrInvalidToken
	}

	// Other sessions of a deleted account outlive DeleteIdentity.
	if _, err := s.store.GetAccount(ctx, claims.Subject); err != nil {
		if errors.Is(err, dynamodb.ErrAccountNotFound) {
			return models.Identity{}, ErrInvalidToken
		}
		return models.Identity{}, fmt.Errorf("%w: %v", ErrAuthUnavailable, err)
	}

	return models.Identity{
		UserID:    claims.Subject,
		Email:     claims.Email,
		SessionID: claims.ID,
	}, nil
}

// Reauthenticate checks password against the live account, not the session.
func (s *Service) Reauthenticate(ctx context.Context, identity models.Identity, password string) error {
	account, err := s.store.GetAccount(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, dynamodb.ErrAccountNotFound) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("%w: %v", ErrAuthUnavailable, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}

	return nil
}

func (s *Service) DeleteIdentity(ctx context.Context, identity models.Identity) error {
	if err := s.store.DeleteAccount(ctx, identity.UserID); err != nil {
		return err
	}

	if err := s.store.DeleteSession(ctx, identity.SessionID); err != nil {
		logrus.WithError(err).WithField("user_id", identity.UserID).Warn("Account deleted but session row remains")
	}

	logrus.WithField("user_id", identity.UserID).Info("Account identity deleted")
	return nil
}

func (s *Service) SignOut(ctx context.Context, identity models.Identity) error {
	if err := s.store.DeleteSession(ctx, identity.SessionID); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":    identity.UserID,
		"session_id": identity.SessionID,
	}).Info("User signed out")
	return nil
}
