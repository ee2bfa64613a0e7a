package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

var TimeNow = time.Now
var ErrTokenNotValid error = errors.New("token is not valid")
var ErrTokenExpired error = errors.New("token expired")

// Auth method claim values. Tokens issued from a wallet-signature login carry
// AuthMethodWallet; tokens minted on behalf of the external identity provider
// carry AuthMethodProvider. Both grant equivalent access once verified.
const (
	AuthMethodWallet   = "wallet"
	AuthMethodProvider = "provider"
)

type TokenInfo struct {
	Subject    string
	Email      string
	AuthMethod string
	Expiration time.Duration
}

type JWTService struct {
	secret []byte
}

func NewJWTService(jwtSecret []byte) *JWTService {
	return &JWTService{
		secret: jwtSecret,
	}
}

func (gen *JWTService) Generate(data TokenInfo) *jwt.Token {
	now := TimeNow()
	claims := jwt.MapClaims{
		"sub":         data.Subject,
		"email":       data.Email,
		"auth_method": data.AuthMethod,
		"iat":         now.Unix(),
		"exp":         now.Add(data.Expiration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token
}

func (gen *JWTService) Sign(token *jwt.Token) (string, error) {
	tokenStr, err := token.SignedString(gen.secret)
	if err != nil {
		return "", fmt.Errorf("get signing string: %w", err)
	}
	return tokenStr, nil
}

// Validate parses and verifies a signed token. It fails closed: a malformed,
// mis-signed or expired token always yields an error, never partial claims.
func (gen *JWTService) Validate(token string) (jwt.MapClaims, error) {
	jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return gen.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("jwt parse: %w: %w", err, ErrTokenNotValid)
	}

	if !jwtToken.Valid {
		return nil, ErrTokenNotValid
	}

	claims, ok := jwtToken.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("jwt claims type assertion failed")
	}

	expVal, ok := claims["exp"].(float64)
	if !ok {
		return nil, ErrTokenNotValid
	}
	if int64(expVal) < TimeNow().Unix() {
		return nil, fmt.Errorf("token expired at %v: %w", time.Unix(int64(expVal), 0), ErrTokenExpired)
	}

	return claims, nil
}
