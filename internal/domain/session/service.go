package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/exp/slog"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrNoSecret     = errors.New("jwt secret is empty")
)

// Claims полезная нагрузка токена администратора
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// AdminID идентификатор администратора из sub
func (c *Claims) AdminID() string {
	return c.Subject
}

type Servicer interface {
	Create(ctx context.Context, adminID, email string) (string, time.Time, error)
	Validate(ctx context.Context, token string) (*Claims, error)
}

// Service выпускает и проверяет HS256 токены. Состояние на сервере не хранится.
type Service struct {
	secret []byte
	ttl    time.Duration
	log    *slog.Logger
	now    func() time.Time
}

func NewService(secret string, ttl time.Duration, log *slog.Logger) (*Service, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		log:    log.With("component", "session_service"),
		now:    time.Now,
	}, nil
}

func (s *Service) Create(_ context.Context, adminID, email string) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return token, expiresAt, nil
}

func (s *Service) Validate(_ context.Context, token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		s.log.Debug("token rejected", "error", err)
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
