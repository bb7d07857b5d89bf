package authapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/eventhub/internal/app/features/authapi"
	"github.com/dalemusser/eventhub/internal/app/system/auth"
	"github.com/dalemusser/eventhub/internal/domain/models"
	"github.com/dalemusser/eventhub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const testAdminCode = "LETMEIN"

func newTestHandler(t *testing.T) (*authapi.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	h := authapi.NewHandler(db, tokens, testAdminCode, zap.NewNop())
	return h, db
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response was not JSON: %v\n%s", err, rec.Body.String())
	}
	return body
}

func TestRegister(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewJSONRequest("POST", "/api/auth/register",
		`{"name":"Alice","username":"alice","email":"alice@example.com","password":"secret1"}`)
	rec := httptest.NewRecorder()
	h.ServeRegister(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	user, _ := body["user"].(map[string]any)
	if user == nil {
		t.Fatal("response missing user object")
	}
	if user["role"] != models.RoleUser {
		t.Errorf("role = %v, want user", user["role"])
	}
	if _, leaked := user["password"]; leaked {
		t.Error("password must never appear in responses")
	}
}

func TestRegister_MissingFields(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewJSONRequest("POST", "/api/auth/register",
		`{"name":"Alice","email":"alice@example.com"}`)
	rec := httptest.NewRecorder()
	h.ServeRegister(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestRegister_Duplicates(t *testing.T) {
	h, _ := newTestHandler(t)

	first := testutil.NewJSONRequest("POST", "/api/auth/register",
		`{"name":"Alice","username":"alice","email":"alice@example.com","password":"secret1"}`)
	rec := httptest.NewRecorder()
	h.ServeRegister(rec, first)
	if rec.Code != http.StatusCreated {
		t.Fatalf("seed register failed: %d", rec.Code)
	}

	dupUsername := testutil.NewJSONRequest("POST", "/api/auth/register",
		`{"name":"Alice 2","username":"alice","email":"other@example.com","password":"secret1"}`)
	rec = httptest.NewRecorder()
	h.ServeRegister(rec, dupUsername)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("duplicate username: status = %d, want 400", rec.Code)
	}
	if msg := decodeBody(t, rec)["message"]; msg != "Username already exists" {
		t.Errorf("message = %v", msg)
	}

	dupEmail := testutil.NewJSONRequest("POST", "/api/auth/register",
		`{"name":"Alice 2","username":"alice2","email":"alice@example.com","password":"secret1"}`)
	rec = httptest.NewRecorder()
	h.ServeRegister(rec, dupEmail)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("duplicate email: status = %d, want 400", rec.Code)
	}
}

func TestAdminRegister(t *testing.T) {
	h, _ := newTestHandler(t)

	wrongCode := testutil.NewJSONRequest("POST", "/api/auth/admin-register",
		`{"name":"Boss","username":"boss","email":"boss@example.com","password":"secret1","adminCode":"nope"}`)
	rec := httptest.NewRecorder()
	h.ServeAdminRegister(rec, wrongCode)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("wrong admin code: status = %d, want 400", rec.Code)
	}

	goodCode := testutil.NewJSONRequest("POST", "/api/auth/admin-register",
		`{"name":"Boss","username":"boss","email":"boss@example.com","password":"secret1","adminCode":"`+testAdminCode+`"}`)
	rec = httptest.NewRecorder()
	h.ServeAdminRegister(rec, goodCode)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	user, _ := decodeBody(t, rec)["user"].(map[string]any)
	if user["role"] != models.RoleAdmin {
		t.Errorf("role = %v, want admin", user["role"])
	}
}

func TestLogin(t *testing.T) {
	h, _ := newTestHandler(t)

	reg := testutil.NewJSONRequest("POST", "/api/auth/register",
		`{"name":"Alice","username":"alice","email":"alice@example.com","password":"secret1"}`)
	rec := httptest.NewRecorder()
	h.ServeRegister(rec, reg)
	if rec.Code != http.StatusCreated {
		t.Fatalf("seed register failed: %d", rec.Code)
	}

	login := testutil.NewJSONRequest("POST", "/api/auth/login",
		`{"email":"alice@example.com","password":"secret1"}`)
	rec = httptest.NewRecorder()
	h.ServeLogin(rec, login)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("response missing token")
	}
	claims, err := h.Tokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token failed verification: %v", err)
	}
	if claims.Email != "alice@example.com" || claims.Role != models.RoleUser {
		t.Errorf("claims = %q/%q", claims.Email, claims.Role)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	h, _ := newTestHandler(t)

	reg := testutil.NewJSONRequest("POST", "/api/auth/register",
		`{"name":"Alice","username":"alice","email":"alice@example.com","password":"secret1"}`)
	h.ServeRegister(httptest.NewRecorder(), reg)

	// Wrong password and unknown email look identical to the caller.
	for _, payload := range []string{
		`{"email":"alice@example.com","password":"wrong"}`,
		`{"email":"nobody@example.com","password":"secret1"}`,
	} {
		rec := httptest.NewRecorder()
		h.ServeLogin(rec, testutil.NewJSONRequest("POST", "/api/auth/login", payload))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400 for %s", rec.Code, payload)
		}
		if msg := decodeBody(t, rec)["message"]; msg != "Invalid email or password" {
			t.Errorf("message = %v", msg)
		}
	}
}

func TestLogin_RoleScoped(t *testing.T) {
	h, _ := newTestHandler(t)

	reg := testutil.NewJSONRequest("POST", "/api/auth/admin-register",
		`{"name":"Boss","username":"boss","email":"boss@example.com","password":"secret1","adminCode":"`+testAdminCode+`"}`)
	h.ServeAdminRegister(httptest.NewRecorder(), reg)

	// An admin account cannot log in through the user endpoint.
	rec := httptest.NewRecorder()
	h.ServeLogin(rec, testutil.NewJSONRequest("POST", "/api/auth/login",
		`{"email":"boss@example.com","password":"secret1"}`))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("user login with admin account: status = %d, want 400", rec.Code)
	}

	// But it can through the admin endpoint.
	rec = httptest.NewRecorder()
	h.ServeAdminLogin(rec, testutil.NewJSONRequest("POST", "/api/auth/admin-login",
		`{"email":"boss@example.com","password":"secret1"}`))
	if rec.Code != http.StatusOK {
		t.Errorf("admin login: status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
}

func TestUpdateProfile(t *testing.T) {
	h, db := newTestHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	alice := fixtures.CreateUser(ctx, "Alice", "alice", "alice@example.com", "hash", models.RoleUser)
	fixtures.CreateUser(ctx, "Bob", "bob", "bob@example.com", "hash", models.RoleUser)

	claims := &auth.Claims{UserID: alice.ID.Hex(), Email: alice.Email, Role: alice.Role}

	req := testutil.NewAuthenticatedRequest("PUT", "/api/auth/profile",
		`{"name":"Alice B","username":"aliceb","email":"alice@example.com"}`, claims)
	rec := httptest.NewRecorder()
	h.ServeUpdateProfile(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	user, _ := decodeBody(t, rec)["user"].(map[string]any)
	if user["username"] != "aliceb" {
		t.Errorf("username = %v, want aliceb", user["username"])
	}

	// Taking bob's username is rejected.
	req = testutil.NewAuthenticatedRequest("PUT", "/api/auth/profile",
		`{"name":"Alice B","username":"bob","email":"alice@example.com"}`, claims)
	rec = httptest.NewRecorder()
	h.ServeUpdateProfile(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestUpdateProfile_Unauthenticated(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewJSONRequest("PUT", "/api/auth/profile",
		`{"name":"X","username":"x","email":"x@example.com"}`)
	rec := httptest.NewRecorder()
	h.ServeUpdateProfile(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestChangePassword(t *testing.T) {
	h, _ := newTestHandler(t)

	reg := testutil.NewJSONRequest("POST", "/api/auth/register",
		`{"name":"Alice","username":"alice","email":"alice@example.com","password":"secret1"}`)
	rec := httptest.NewRecorder()
	h.ServeRegister(rec, reg)
	if rec.Code != http.StatusCreated {
		t.Fatalf("seed register failed: %d", rec.Code)
	}
	user, _ := decodeBody(t, rec)["user"].(map[string]any)
	claims := &auth.Claims{UserID: user["id"].(string), Email: "alice@example.com", Role: models.RoleUser}

	// Wrong current password.
	rec = httptest.NewRecorder()
	h.ServeChangePassword(rec, testutil.NewAuthenticatedRequest("PUT", "/api/auth/change-password",
		`{"currentPassword":"wrong","newPassword":"newsecret"}`, claims))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("wrong current password: status = %d, want 400", rec.Code)
	}

	// Too-short new password.
	rec = httptest.NewRecorder()
	h.ServeChangePassword(rec, testutil.NewAuthenticatedRequest("PUT", "/api/auth/change-password",
		`{"currentPassword":"secret1","newPassword":"abc"}`, claims))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("short new password: status = %d, want 400", rec.Code)
	}

	// Successful change, after which only the new password logs in.
	rec = httptest.NewRecorder()
	h.ServeChangePassword(rec, testutil.NewAuthenticatedRequest("PUT", "/api/auth/change-password",
		`{"currentPassword":"secret1","newPassword":"newsecret"}`, claims))
	if rec.Code != http.StatusOK {
		t.Fatalf("change password: status = %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	h.ServeLogin(rec, testutil.NewJSONRequest("POST", "/api/auth/login",
		`{"email":"alice@example.com","password":"secret1"}`))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("old password still works: status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeLogin(rec, testutil.NewJSONRequest("POST", "/api/auth/login",
		`{"email":"alice@example.com","password":"newsecret"}`))
	if rec.Code != http.StatusOK {
		t.Errorf("new password rejected: status = %d: %s", rec.Code, rec.Body.String())
	}
}

func TestProfile(t *testing.T) {
	h, db := newTestHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	alice := fixtures.CreateUser(ctx, "Alice", "alice", "alice@example.com", "hash", models.RoleUser)
	claims := &auth.Claims{UserID: alice.ID.Hex(), Email: alice.Email, Role: alice.Role}

	rec := httptest.NewRecorder()
	h.ServeProfile(rec, testutil.NewAuthenticatedRequest("GET", "/api/profile", "", claims))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["email"] != "alice@example.com" {
		t.Errorf("email = %v", body["email"])
	}
	if _, leaked := body["password"]; leaked {
		t.Error("password must never appear in responses")
	}
}
