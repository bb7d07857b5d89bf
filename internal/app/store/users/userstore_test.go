package userstore_test

import (
	"testing"

	userstore "github.com/dalemusser/eventhub/internal/app/store/users"
	"github.com/dalemusser/eventhub/internal/domain/models"
	"github.com/dalemusser/eventhub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.User{
		Name:     "  Alice  ",
		Username: " alice ",
		Email:    " Alice@Example.COM ",
		Password: "hash",
		Role:     models.RoleUser,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.Email != "alice@example.com" {
		t.Errorf("email not normalized: %q", created.Email)
	}
	if created.Username != "alice" {
		t.Errorf("username not normalized: %q", created.Username)
	}
	if created.Name != "Alice" {
		t.Errorf("name not trimmed: %q", created.Name)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}

	loaded, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if loaded.Email != created.Email {
		t.Errorf("round trip mismatch: %q != %q", loaded.Email, created.Email)
	}
}

func TestStore_Create_BadRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.User{
		Name:     "Alice",
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hash",
		Role:     "superuser",
	})
	if err == nil {
		t.Fatal("expected an error for an unknown role")
	}
}

func TestStore_Create_Duplicates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	seed := models.User{
		Name:     "Alice",
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hash",
		Role:     models.RoleUser,
	}
	if _, err := store.Create(ctx, seed); err != nil {
		t.Fatalf("seed Create failed: %v", err)
	}

	dupUsername := seed
	dupUsername.Email = "other@example.com"
	if _, err := store.Create(ctx, dupUsername); err != userstore.ErrDuplicateUsername {
		t.Errorf("expected ErrDuplicateUsername, got %v", err)
	}

	dupEmail := seed
	dupEmail.Username = "alice2"
	dupEmail.Email = "ALICE@example.com"
	if _, err := store.Create(ctx, dupEmail); err != userstore.ErrDuplicateEmail {
		t.Errorf("expected ErrDuplicateEmail for case-variant email, got %v", err)
	}
}

func TestStore_GetByEmailAndRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateUser(ctx, "Alice", "alice", "alice@example.com", "hash", models.RoleUser)
	fixtures.CreateAdmin(ctx, "Boss", "boss", "boss@example.com", "hash")

	u, err := store.GetByEmailAndRole(ctx, "ALICE@example.com", models.RoleUser)
	if err != nil {
		t.Fatalf("GetByEmailAndRole failed: %v", err)
	}
	if u.Username != "alice" {
		t.Errorf("got %q, want alice", u.Username)
	}

	// Credentials are role-scoped: the same email under the wrong role
	// does not resolve.
	if _, err := store.GetByEmailAndRole(ctx, "alice@example.com", models.RoleAdmin); err != mongo.ErrNoDocuments {
		t.Errorf("expected ErrNoDocuments for role mismatch, got %v", err)
	}
}

func TestStore_UpdateProfile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	alice := fixtures.CreateUser(ctx, "Alice", "alice", "alice@example.com", "hash", models.RoleUser)
	fixtures.CreateUser(ctx, "Bob", "bob", "bob@example.com", "hash", models.RoleUser)

	// Keeping your own username/email is allowed.
	updated, err := store.UpdateProfile(ctx, alice.ID, userstore.ProfileUpdate{
		Name:     "Alice B",
		Username: "alice",
		Email:    "alice@example.com",
	})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if updated.Name != "Alice B" {
		t.Errorf("name not updated: %q", updated.Name)
	}

	// Taking another user's username or email is not.
	if _, err := store.UpdateProfile(ctx, alice.ID, userstore.ProfileUpdate{
		Name: "Alice", Username: "bob", Email: "alice@example.com",
	}); err != userstore.ErrDuplicateUsername {
		t.Errorf("expected ErrDuplicateUsername, got %v", err)
	}
	if _, err := store.UpdateProfile(ctx, alice.ID, userstore.ProfileUpdate{
		Name: "Alice", Username: "alice", Email: "bob@example.com",
	}); err != userstore.ErrDuplicateEmail {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestStore_UpdatePassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	alice := fixtures.CreateUser(ctx, "Alice", "alice", "alice@example.com", "oldhash", models.RoleUser)

	if err := store.UpdatePassword(ctx, alice.ID, "newhash"); err != nil {
		t.Fatalf("UpdatePassword failed: %v", err)
	}

	loaded, err := store.GetByID(ctx, alice.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if loaded.Password != "newhash" {
		t.Errorf("password hash not updated: %q", loaded.Password)
	}
}
