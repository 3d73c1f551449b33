package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ClientClaims identify one storefront client instance to the gateway.
type ClientClaims struct {
	ClientID string `json:"client_id"`
	jwt.RegisteredClaims
}

func getClientTokenSecret() string {
	secret := os.Getenv("CLIENT_TOKEN_SECRET")
	if secret == "" {
		panic("FATAL: CLIENT_TOKEN_SECRET environment variable is not set. Refusing to start with an insecure configuration.")
	}
	return secret
}

// GenerateClientToken mints a signed token carrying a fresh client id. The
// gateway sets it as a cookie and requires it on mutating requests.
func GenerateClientToken() (string, error) {
	secret := getClientTokenSecret()

	claims := ClientClaims{
		ClientID: uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "suuq-storefront",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ValidateClientToken(tokenString string) (*ClientClaims, error) {
	secret := getClientTokenSecret()

	token, err := jwt.ParseWithClaims(tokenString, &ClientClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*ClientClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}
