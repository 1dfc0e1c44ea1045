package jwt

import (
	"testing"
	"time"
)

func TestSignParseRoundTrip(t *testing.T) {
	token, err := Sign(1, "admin", "sess-123", time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 1 || claims.Username != "admin" || claims.SessionID != "sess-123" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	token, err := Sign(1, "admin", "sess-123", -time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := Parse(token); err == nil {
		t.Fatal("expired token accepted")
	}
}

func TestParseRejectsTampering(t *testing.T) {
	token, err := Sign(1, "admin", "sess-123", time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	tampered := token[:len(token)-2] + "xx"
	if _, err := Parse(tampered); err == nil {
		t.Fatal("tampered token accepted")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse("not-a-token"); err == nil {
		t.Fatal("garbage accepted")
	}
}
