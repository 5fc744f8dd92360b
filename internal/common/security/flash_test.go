package security

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
)

func decode(t *testing.T, tokenString string) ([]Flash, error) {
	t.Helper()
	token, err := jwtauth.VerifyToken(TokenAuth, tokenString)
	if err != nil {
		return nil, err
	}
	claims, err := token.AsMap(context.Background())
	if err != nil {
		t.Fatalf("AsMap: %v", err)
	}
	return FlashesFromClaims(claims)
}

func TestEncodeFlashesRoundTrip(t *testing.T) {
	InitSigner([]byte("test-secret"))
	in := []Flash{
		{Category: FlashSuccess, Message: `Coding question "Two Sum" assigned successfully!`},
		{Category: FlashWarning, Message: "You are already a member of this group!"},
	}
	tok, err := EncodeFlashes(in, time.Minute)
	if err != nil {
		t.Fatalf("EncodeFlashes: %v", err)
	}
	out, err := decode(t, tok)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("got %d flashes, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("flash %d = %+v, want %+v", i, out[i], in[i])
		}
	}
}

func TestFlashTokenRejectedWithOtherSecret(t *testing.T) {
	InitSigner([]byte("first"))
	tok, err := EncodeFlashes([]Flash{{Category: FlashInfo, Message: "hi"}}, time.Minute)
	if err != nil {
		t.Fatalf("EncodeFlashes: %v", err)
	}
	InitSigner([]byte("second"))
	if _, err := decode(t, tok); err == nil {
		t.Fatal("expected verification failure with a different secret")
	}
}

func TestExpiredFlashToken(t *testing.T) {
	InitSigner([]byte("test-secret"))
	tok, err := EncodeFlashes([]Flash{{Category: FlashInfo, Message: "stale"}}, -time.Hour)
	if err != nil {
		t.Fatalf("EncodeFlashes: %v", err)
	}
	if _, err := decode(t, tok); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestFlashFromCookie(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	if got := FlashFromCookie(r); got != "" {
		t.Errorf("no cookie: got %q", got)
	}
	r.AddCookie(&http.Cookie{Name: FlashCookieName, Value: "abc"})
	if got := FlashFromCookie(r); got != "abc" {
		t.Errorf("got %q, want abc", got)
	}
}
