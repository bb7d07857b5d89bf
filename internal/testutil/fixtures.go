package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/eventhub/internal/app/system/normalize"
	"github.com/dalemusser/eventhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a user with the given identity and role. The stored
// password field holds passwordHash verbatim (hash it first if the test
// exercises login).
func (f *Fixtures) CreateUser(ctx context.Context, name, username, email, passwordHash, role string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	u := models.User{
		ID:        primitive.NewObjectID(),
		Name:      normalize.Name(name),
		Username:  normalize.Username(username),
		Email:     normalize.Email(email),
		Password:  passwordHash,
		Role:      role,
		Approved:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateAdmin inserts an admin user.
func (f *Fixtures) CreateAdmin(ctx context.Context, name, username, email, passwordHash string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, name, username, email, passwordHash, models.RoleAdmin)
}

// CreateEvent inserts an event with no creator.
func (f *Fixtures) CreateEvent(ctx context.Context, name, date, category string, maxParticipants int) models.Event {
	f.t.Helper()
	return f.insertEvent(ctx, name, date, category, maxParticipants, nil)
}

// CreateEventWithCreator inserts an event owned by the given admin identity.
func (f *Fixtures) CreateEventWithCreator(ctx context.Context, name, date, category string, creator models.Creator) models.Event {
	f.t.Helper()
	return f.insertEvent(ctx, name, date, category, 0, &creator)
}

func (f *Fixtures) insertEvent(ctx context.Context, name, date, category string, maxParticipants int, creator *models.Creator) models.Event {
	f.t.Helper()

	now := time.Now().UTC()
	e := models.Event{
		ID:              primitive.NewObjectID(),
		Name:            name,
		Date:            date,
		Category:        category,
		Description:     "Test event description",
		MaxParticipants: maxParticipants,
		CreatedBy:       creator,
		Attendees:       []models.Attendee{},
		RSVPs:           []models.RSVP{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if _, err := f.db.Collection("events").InsertOne(ctx, e); err != nil {
		f.t.Fatalf("failed to create test event: %v", err)
	}
	return e
}

// Attendee builds a valid attendee entry for registration tests.
func Attendee(userID, name, email string) models.Attendee {
	return models.Attendee{
		UserID:      userID,
		Name:        name,
		Email:       email,
		Phone:       "5550100",
		CollegeName: "Test College",
		Year:        "1st Year",
		Branch:      "CS",
	}
}
