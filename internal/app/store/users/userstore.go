package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/eventhub/internal/app/system/normalize"
	"github.com/dalemusser/eventhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

var (
	// ErrDuplicateUsername is returned when the username is already taken.
	ErrDuplicateUsername = errors.New("a user with this username already exists")
	// ErrDuplicateEmail is returned when the email is already taken.
	ErrDuplicateEmail = errors.New("a user with this email already exists")

	errBadRole = errors.New(`role must be "user"|"admin"`)
)

// Create inserts a new user after normalizing & validating fields.
// Username and email uniqueness is checked up front so the caller gets a
// specific error; the unique indexes remain the backstop for races.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = primitive.NewObjectID()
	u.Name = normalize.Name(u.Name)
	u.Username = normalize.Username(u.Username)
	u.Email = normalize.Email(u.Email)

	switch u.Role {
	case models.RoleUser, models.RoleAdmin:
		// ok
	default:
		return models.User{}, errBadRole
	}

	if taken, err := s.usernameExists(ctx, u.Username, nil); err != nil {
		return models.User{}, err
	} else if taken {
		return models.User{}, ErrDuplicateUsername
	}
	if taken, err := s.emailExists(ctx, u.Email, nil); err != nil {
		return models.User{}, err
	} else if taken {
		return models.User{}, ErrDuplicateEmail
	}

	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// GetByID loads a user by ObjectID. Returns mongo.ErrNoDocuments if absent.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmailAndRole looks up a user by case-insensitive email, constrained
// to the given role. Login uses this so that user and admin credentials
// stay role-scoped. Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmailAndRole(ctx context.Context, email, role string) (*models.User, error) {
	var u models.User
	filter := bson.M{"email": normalize.Email(email), "role": role}
	if err := s.c.FindOne(ctx, filter).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ProfileUpdate holds the self-service editable fields.
type ProfileUpdate struct {
	Name     string
	Username string
	Email    string
}

// UpdateProfile updates name/username/email after re-checking uniqueness
// against other users, and returns the updated document.
func (s *Store) UpdateProfile(ctx context.Context, id primitive.ObjectID, upd ProfileUpdate) (*models.User, error) {
	username := normalize.Username(upd.Username)
	email := normalize.Email(upd.Email)

	if taken, err := s.usernameExists(ctx, username, &id); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrDuplicateUsername
	}
	if taken, err := s.emailExists(ctx, email, &id); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrDuplicateEmail
	}

	set := bson.M{
		"name":       normalize.Name(upd.Name),
		"username":   username,
		"email":      email,
		"updated_at": time.Now(),
	}

	var u models.User
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&u)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return &u, nil
}

// UpdatePassword stores a new password hash for the user.
func (s *Store) UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string) error {
	_, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"password": hash, "updated_at": time.Now()}},
	)
	return err
}

// usernameExists checks whether a username is taken, optionally excluding
// one user (for self-service profile updates).
func (s *Store) usernameExists(ctx context.Context, username string, exclude *primitive.ObjectID) (bool, error) {
	filter := bson.M{"username": username}
	if exclude != nil {
		filter["_id"] = bson.M{"$ne": *exclude}
	}
	err := s.c.FindOne(ctx, filter).Err()
	if err == nil {
		return true, nil
	}
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return false, err
}

func (s *Store) emailExists(ctx context.Context, email string, exclude *primitive.ObjectID) (bool, error) {
	filter := bson.M{"email": email}
	if exclude != nil {
		filter["_id"] = bson.M{"$ne": *exclude}
	}
	err := s.c.FindOne(ctx, filter).Err()
	if err == nil {
		return true, nil
	}
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return false, err
}
