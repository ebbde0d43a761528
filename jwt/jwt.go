package jwt

import (
	"fmt"
	"time"

	"Ecommerce/config"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens stay valid for seven days.
const TokenLifetime = 7 * 24 * time.Hour

// GenerateToken signs a token carrying the user id.
func GenerateToken(userID uint) (string, error) {
	secret, err := config.JWTSecret()
	if err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"_id": userID,
		"exp": time.Now().Add(TokenLifetime).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// VerifyToken validates the signature and expiry and returns the user id.
func VerifyToken(tokenString string) (uint, error) {
	secret, err := config.JWTSecret()
	if err != nil {
		return 0, err
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, err
	}

	if !token.Valid {
		return 0, jwt.ErrTokenSignatureInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, jwt.ErrTokenInvalidClaims
	}

	id, ok := claims["_id"].(float64)
	if !ok {
		return 0, jwt.ErrTokenInvalidClaims
	}

	return uint(id), nil
}
