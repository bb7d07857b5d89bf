package eventstore

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/dalemusser/eventhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("events")}
}

var (
	// ErrNotFound is returned when an event id does not resolve.
	ErrNotFound = errors.New("event not found")
	// ErrEventEnded is returned when registering for an event whose date
	// is before today.
	ErrEventEnded = errors.New("event has already ended")
	// ErrEventFull is returned when the attendee list is at capacity.
	ErrEventFull = errors.New("event is full")
	// ErrAlreadyRegistered is returned when the attendee identity already
	// appears on the event.
	ErrAlreadyRegistered = errors.New("already registered for this event")
	// ErrNotOwner is returned when a delete is attempted by an admin that
	// did not create the event.
	ErrNotOwner = errors.New("event belongs to a different admin")
	// ErrMissingIdentity is returned by lookups that require at least one
	// of (id, email).
	ErrMissingIdentity = errors.New("an id or email is required")
)

// Create inserts a new event with server-assigned id and timestamps.
// Attendee and RSVP lists start empty (never nil, so responses serialize
// as [] rather than null).
func (s *Store) Create(ctx context.Context, e models.Event) (models.Event, error) {
	e.ID = primitive.NewObjectID()
	if e.Attendees == nil {
		e.Attendees = []models.Attendee{}
	}
	if e.RSVPs == nil {
		e.RSVPs = []models.RSVP{}
	}
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, e); err != nil {
		return models.Event{}, err
	}
	return e, nil
}

// GetByID loads an event, returning ErrNotFound if the id does not resolve.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	var e models.Event
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// SearchFilter constrains Search. Empty fields mean "no constraint".
type SearchFilter struct {
	Query    string // case-insensitive contains on name, description, or location
	Category string // exact match
}

// Search returns events matching the filter, ordered ascending by date.
func (s *Store) Search(ctx context.Context, f SearchFilter) ([]models.Event, error) {
	filter := bson.M{}
	if f.Query != "" {
		pattern := regexp.QuoteMeta(f.Query)
		rx := primitive.Regex{Pattern: pattern, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": rx},
			bson.M{"description": rx},
			bson.M{"location": rx},
		}
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	return s.find(ctx, filter, opts)
}

// Register appends an attendee after the date / capacity / duplicate
// gates, in that order, and returns the updated event.
//
// The capacity check is read-then-write: two simultaneous registrations
// near capacity can both pass it before either write lands. The storage
// layer serializes the writes, so the list stays well-formed; the count
// can exceed the cap by one under that race.
func (s *Store) Register(ctx context.Context, id primitive.ObjectID, a models.Attendee) (*models.Event, error) {
	e, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if endedBefore(e.Date, time.Now()) {
		return nil, ErrEventEnded
	}
	if e.MaxParticipants > 0 && len(e.Attendees) >= e.MaxParticipants {
		return nil, ErrEventFull
	}
	for _, existing := range e.Attendees {
		if models.MatchesIdentity(existing.UserID, existing.Email, a.UserID, a.Email) {
			return nil, ErrAlreadyRegistered
		}
	}

	a.RegisteredAt = time.Now()
	update := bson.M{
		"$push": bson.M{"attendees": a},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	if _, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return nil, err
	}

	e.Attendees = append(e.Attendees, a)
	return e, nil
}

// UpsertRSVP records a response intent. A prior RSVP from the same
// identity (matching user id or email) is replaced in place, keeping its
// position in the list; otherwise the entry is appended. Empty status
// defaults to "yes"; other values are stored verbatim.
func (s *Store) UpsertRSVP(ctx context.Context, id primitive.ObjectID, r models.RSVP) (*models.Event, error) {
	e, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if r.Status == "" {
		r.Status = models.RSVPYes
	}
	r.RespondedAt = time.Now()

	replaced := false
	for i, existing := range e.RSVPs {
		if models.MatchesIdentity(existing.UserID, existing.Email, r.UserID, r.Email) {
			if r.UserID == "" {
				r.UserID = existing.UserID
			}
			e.RSVPs[i] = r
			replaced = true
			break
		}
	}
	if !replaced {
		e.RSVPs = append(e.RSVPs, r)
	}

	update := bson.M{"$set": bson.M{"rsvps": e.RSVPs, "updated_at": time.Now()}}
	if _, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return nil, err
	}
	return e, nil
}

// ListByAttendee returns events where an attendee entry matches the given
// user id or email, ordered ascending by date. At least one identifier is
// required.
func (s *Store) ListByAttendee(ctx context.Context, userID, email string) ([]models.Event, error) {
	if userID == "" && email == "" {
		return nil, ErrMissingIdentity
	}
	filter := bson.M{}
	if userID != "" {
		filter["attendees.user_id"] = userID
	}
	if email != "" {
		filter["attendees.email"] = email
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	return s.find(ctx, filter, opts)
}

// ListByCreator returns events created by the given admin (matched by
// creator id or email), newest first. At least one identifier is required.
func (s *Store) ListByCreator(ctx context.Context, adminID, adminEmail string) ([]models.Event, error) {
	if adminID == "" && adminEmail == "" {
		return nil, ErrMissingIdentity
	}
	filter := bson.M{}
	if adminID != "" {
		filter["created_by.admin_id"] = adminID
	}
	if adminEmail != "" {
		filter["created_by.admin_email"] = adminEmail
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return s.find(ctx, filter, opts)
}

// Delete removes an event, but only when the supplied admin identity
// matches the event's recorded creator. Events without a creator cannot
// be deleted.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID, adminID, adminEmail string) error {
	if adminID == "" && adminEmail == "" {
		return ErrMissingIdentity
	}
	e, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !ownedBy(e.CreatedBy, adminID, adminEmail) {
		return ErrNotOwner
	}
	_, err = s.c.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func ownedBy(c *models.Creator, adminID, adminEmail string) bool {
	if c == nil {
		return false
	}
	if adminID != "" && c.AdminID == adminID {
		return true
	}
	if adminEmail != "" && c.AdminEmail == adminEmail {
		return true
	}
	return false
}

func (s *Store) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Event, error) {
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	events := []models.Event{}
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// dateLayouts are the encodings accepted for an event's calendar date.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"01/02/2006",
}

// endedBefore reports whether the event date falls strictly before the
// current calendar day. Both sides are normalized to midnight, so the
// time of day never matters. Unparseable dates are treated as not ended.
func endedBefore(date string, now time.Time) bool {
	var eventDay time.Time
	parsed := false
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			eventDay = t
			parsed = true
			break
		}
	}
	if !parsed {
		return false
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	eventDay = time.Date(eventDay.Year(), eventDay.Month(), eventDay.Day(), 0, 0, 0, 0, time.UTC)
	return eventDay.Before(today)
}
