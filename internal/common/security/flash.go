package security

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const FlashCookieName = "flash"

const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashWarning = "warning"
	FlashInfo    = "info"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

var TokenAuth *jwtauth.JWTAuth

// InitSigner keys the flash cookie signer with the session secret.
func InitSigner(secret []byte) {
	TokenAuth = jwtauth.New("HS256", secret, nil)
}

func EncodeFlashes(flashes []Flash, ttl time.Duration) (string, error) {
	payload, err := json.Marshal(flashes)
	if err != nil {
		return "", err
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"flashes": string(payload),
		"jti":     uuid.NewString(),
		"exp":     now.Add(ttl).Unix(),
		"iat":     now.Unix(),
	}
	_, tokenString, err := TokenAuth.Encode(claims)
	return tokenString, err
}

func FlashesFromClaims(claims jwt.MapClaims) ([]Flash, error) {
	raw, ok := claims["flashes"].(string)
	if !ok {
		return nil, errors.New("flashes claim is missing or not a string")
	}
	var flashes []Flash
	if err := json.Unmarshal([]byte(raw), &flashes); err != nil {
		return nil, err
	}
	return flashes, nil
}

// FlashFromCookie is a token finder for jwtauth.Verify.
func FlashFromCookie(r *http.Request) string {
	cookie, err := r.Cookie(FlashCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
