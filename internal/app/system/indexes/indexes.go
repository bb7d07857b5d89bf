// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
Errors are aggregated so every problem is visible and startup can fail
fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureEvents(ctx, db); err != nil {
		problems = append(problems, "events: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	var errs []string

	for _, m := range models {
		var name string
		unique := false
		if m.Options != nil {
			if m.Options.Name != nil {
				name = *m.Options.Name
			}
			if m.Options.Unique != nil {
				unique = *m.Options.Unique
			}
		}

		start := time.Now()
		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			// IndexOptionsConflict means an equivalent index already exists
			// under another name; that is fine for our purposes.
			if strings.Contains(err.Error(), "IndexOptionsConflict") {
				zap.L().Info("reusing existing index",
					zap.String("collection", coll.Name()),
					zap.String("keys", keySig(m.Keys.(bson.D))))
				continue
			}
			errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), name, err))
			continue
		}
		zap.L().Info("index ensured",
			zap.String("collection", coll.Name()),
			zap.String("name", name),
			zap.String("keys", keySig(m.Keys.(bson.D))),
			zap.Bool("unique", unique),
			zap.String("took", time.Since(start).String()))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("users")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Username and email must each be unique across all users,
		// regardless of role.
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_users_username"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_users_email"),
		},
		// Login is a lookup by (email, role).
		{
			Keys:    bson.D{{Key: "email", Value: 1}, {Key: "role", Value: 1}},
			Options: options.Index().SetName("idx_users_email_role"),
		},
	})
}

func ensureEvents(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("events")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Browse/search listings sort ascending by date.
		{
			Keys:    bson.D{{Key: "date", Value: 1}},
			Options: options.Index().SetName("idx_events_date"),
		},
		{
			Keys:    bson.D{{Key: "category", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("idx_events_category_date"),
		},
		// Per-admin dashboards filter by creator, newest first.
		{
			Keys:    bson.D{{Key: "created_by.admin_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_events_creatorid_created"),
		},
		{
			Keys:    bson.D{{Key: "created_by.admin_email", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_events_creatoremail_created"),
		},
		// "My registrations" looks events up by embedded attendee identity.
		{
			Keys:    bson.D{{Key: "attendees.user_id", Value: 1}},
			Options: options.Index().SetName("idx_events_attendee_user"),
		},
		{
			Keys:    bson.D{{Key: "attendees.email", Value: 1}},
			Options: options.Index().SetName("idx_events_attendee_email"),
		},
	})
}
