package jwt

import (
	"Inventory-API/domain"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type (
	JWTService interface {
		GenerateToken(phoneNumber string) (string, error)
		VerifyToken(claimedIdentity string, token string) error
	}

	userClaims struct {
		PhoneNumber string `json:"phone_number"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		expiry    time.Duration
	}
)

const tokenExpiry = 2 * time.Hour

func NewJWTService(secretKey string) JWTService {
	return &jwtService{
		secretKey: secretKey,
		expiry:    tokenExpiry,
	}
}

func (j *jwtService) GenerateToken(phoneNumber string) (string, error) {
	claims := userClaims{
		phoneNumber,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseKey(t *jwt.Token) (any, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, domain.ErrTokenInvalid
	}
	return []byte(j.secretKey), nil
}

// VerifyToken checks structure and signature first, then expiry, then the
// subject match. An identity mismatch is only reported on an otherwise
// valid, unexpired token.
func (j *jwtService) VerifyToken(claimedIdentity string, token string) error {
	if token == "" {
		return domain.ErrTokenNotFound
	}

	parsed, err := jwt.ParseWithClaims(token, &userClaims{}, j.parseKey)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.ErrTokenExpired
		}
		return domain.ErrTokenInvalid
	}
	if !parsed.Valid {
		return domain.ErrTokenInvalid
	}

	claims := parsed.Claims.(*userClaims)
	if claims.PhoneNumber != claimedIdentity {
		return domain.ErrTokenMismatch
	}
	return nil
}
