package infrastructure

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	apperrors "library-service/internal/errors"
)

// Claims is the payload of both token kinds: the user identity plus
// the role the middleware authorizes against.
type Claims struct {
	UserId string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies the self-contained access and refresh
// credentials. Access and refresh tokens use separate secrets so one
// can never stand in for the other.
type JWTService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewJWTService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *JWTService {
	return &JWTService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (j *JWTService) GenerateAccessToken(userId uuid.UUID, role string) (string, error) {
	return j.sign(userId, role, j.accessTTL, j.accessSecret)
}

func (j *JWTService) GenerateRefreshToken(userId uuid.UUID, role string) (string, error) {
	return j.sign(userId, role, j.refreshTTL, j.refreshSecret)
}

func (j *JWTService) sign(userId uuid.UUID, role string, ttl time.Duration, secret []byte) (string, error) {
	now := time.Now()
	claims := Claims{
		UserId: userId.String(),
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func (j *JWTService) VerifyAccessToken(tokenString string) (*Claims, error) {
	return j.verify(tokenString, j.accessSecret)
}

func (j *JWTService) VerifyRefreshToken(tokenString string) (*Claims, error) {
	return j.verify(tokenString, j.refreshSecret)
}

func (j *JWTService) verify(tokenString string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, apperrors.Unauthenticated("invalid or expired token").WithCause(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.Unauthenticated("invalid or expired token")
	}

	if _, err := uuid.Parse(claims.UserId); err != nil {
		return nil, apperrors.Unauthenticated("invalid token subject").WithCause(err)
	}

	return claims, nil
}

// RemainingLife reports how long until the claims expire; revocation
// entries live exactly that long.
func (c *Claims) RemainingLife() time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	return time.Until(c.ExpiresAt.Time)
}
