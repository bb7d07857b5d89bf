// internal/domain/models/event.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event is a discoverable event with its registrations embedded.
//
// Attendees and RSVPs live on the event document itself; there is no
// separate collection for them. User identity inside those lists is a
// loose copy (string id and/or email), not a foreign key.
type Event struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Date            string             `bson:"date" json:"date"` // calendar date, e.g. "2025-11-01"
	Time            string             `bson:"time,omitempty" json:"time,omitempty"`
	Category        string             `bson:"category" json:"category"`
	Location        string             `bson:"location,omitempty" json:"location,omitempty"`
	Description     string             `bson:"description" json:"description"`
	MaxParticipants int                `bson:"max_participants,omitempty" json:"maxParticipants,omitempty"`

	CreatedBy *Creator   `bson:"created_by,omitempty" json:"createdBy,omitempty"`
	Attendees []Attendee `bson:"attendees" json:"attendees"`
	RSVPs     []RSVP     `bson:"rsvps" json:"rsvps"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Creator identifies the admin that owns an event. Events created without
// admin context carry no creator and cannot pass the ownership check on
// delete.
type Creator struct {
	AdminID    string `bson:"admin_id,omitempty" json:"adminId,omitempty"`
	AdminEmail string `bson:"admin_email,omitempty" json:"adminEmail,omitempty"`
	AdminName  string `bson:"admin_name,omitempty" json:"adminName,omitempty"`
}

// Attendee is a confirmed registration embedded in an Event.
type Attendee struct {
	UserID       string    `bson:"user_id,omitempty" json:"userId,omitempty"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone" json:"phone"`
	CollegeName  string    `bson:"college_name" json:"collegeName"`
	Year         string    `bson:"year" json:"year"`
	Branch       string    `bson:"branch" json:"branch"`
	Experience   string    `bson:"experience,omitempty" json:"experience,omitempty"`
	Expectations string    `bson:"expectations,omitempty" json:"expectations,omitempty"`
	RegisteredAt time.Time `bson:"registered_at" json:"registeredAt"`
}

// RSVP statuses. Unknown values are stored verbatim; the enum is a
// convention, not a constraint.
const (
	RSVPYes   = "yes"
	RSVPNo    = "no"
	RSVPMaybe = "maybe"
)

// RSVP is a response-intent record embedded in an Event, distinct from a
// confirmed registration. A repeat RSVP from the same identity replaces
// the earlier entry in place.
type RSVP struct {
	UserID      string    `bson:"user_id,omitempty" json:"userId,omitempty"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	Status      string    `bson:"status" json:"status"`
	RespondedAt time.Time `bson:"responded_at" json:"respondedAt"`
}

// MatchesIdentity reports whether an embedded identity (userID, email)
// matches the given one. An empty userID never matches; email is always
// compared. This permissive OR rule is the duplicate-detection contract
// for both attendees and RSVPs.
func MatchesIdentity(haveUserID, haveEmail, userID, email string) bool {
	if userID != "" && haveUserID == userID {
		return true
	}
	return haveEmail == email
}
