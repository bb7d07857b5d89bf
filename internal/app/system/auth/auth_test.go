package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/eventhub/internal/app/system/auth"
	"github.com/dalemusser/eventhub/internal/domain/models"
)

func TestTokenRoundTrip(t *testing.T) {
	m := auth.NewTokenManager("secret", time.Hour)

	token, expires, err := m.Issue("user1", "a@x.com", models.RoleUser)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if until := time.Until(expires); until < 59*time.Minute || until > 61*time.Minute {
		t.Errorf("expiry %v not about an hour out", until)
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if claims.UserID != "user1" || claims.Email != "a@x.com" || claims.Role != models.RoleUser {
		t.Errorf("claims = %+v", claims)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	token, _, err := auth.NewTokenManager("secret-a", time.Hour).Issue("u", "a@x.com", models.RoleUser)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := auth.NewTokenManager("secret-b", time.Hour).Verify(token); err == nil {
		t.Error("token signed with a different secret must not verify")
	}
}

func TestVerify_Expired(t *testing.T) {
	m := auth.NewTokenManager("secret", time.Hour)
	token, _, err := m.Issue("u", "a@x.com", models.RoleUser)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	m.SetClock(func() time.Time { return time.Now().Add(2 * time.Hour) })
	if _, err := m.Verify(token); err == nil {
		t.Error("expired token must not verify")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !auth.CheckPassword(hash, "secret1") {
		t.Error("correct password rejected")
	}
	if auth.CheckPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth(t *testing.T) {
	m := auth.NewTokenManager("secret", time.Hour)
	handler := m.RequireAuth(okHandler())

	// Missing token.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", rec.Code)
	}

	// Garbage token.
	rec = httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad token: status = %d, want 400", rec.Code)
	}

	// Valid token reaches the handler with claims attached.
	token, _, err := m.Issue("u1", "a@x.com", models.RoleUser)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	var got *auth.Claims
	capture := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = auth.CurrentClaims(r)
		w.WriteHeader(http.StatusOK)
	}))
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	capture.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("valid token: status = %d, want 200", rec.Code)
	}
	if got == nil || got.UserID != "u1" {
		t.Errorf("claims not attached: %+v", got)
	}
}

func TestRequireAdmin(t *testing.T) {
	m := auth.NewTokenManager("secret", time.Hour)
	handler := m.RequireAdmin(okHandler())

	userToken, _, err := m.Issue("u1", "a@x.com", models.RoleUser)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("user role: status = %d, want 403", rec.Code)
	}

	adminToken, _, err := m.Issue("a1", "boss@x.com", models.RoleAdmin)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("admin role: status = %d, want 200", rec.Code)
	}
}
