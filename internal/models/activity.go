package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	ActivityDbName  = "promohub"
	ActivityColName = "checkin_activity"
)

const (
	ActionCheckIn     = "check_in"
	ActionUndoCheckIn = "undo_check_in"
	ActionReject      = "reject"
	ActionUnreject    = "unreject"
)

// ActivityEntry is one door decision. The embedded guest map only holds the
// latest state of each guest, so the audit trail lives here instead.
type ActivityEntry struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventID string             `bson:"event_id" json:"event_id"`
	GuestID string             `bson:"guest_id" json:"guest_id"`
	Action  string             `bson:"action" json:"action"`
	Actor   string             `bson:"actor" json:"actor"`
	Note    string             `bson:"note,omitempty" json:"note,omitempty"`
	At      time.Time          `bson:"at" json:"at"`
}

type ActivityRepo interface {
	RecordActivity(ctx context.Context, entry *ActivityEntry) error
	ListEventActivity(ctx context.Context, eventID string, limit int64) ([]*ActivityEntry, error)
}

func (mdb *MongodbRepo) RecordActivity(ctx context.Context, entry *ActivityEntry) error {
	col, err := mdb.GetCollection(ctx, ActivityDbName, ActivityColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.At.IsZero() {
		entry.At = time.Now()
	}

	if _, err := col.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("error recording activity: %v", err)
	}

	return nil
}

func (mdb *MongodbRepo) ListEventActivity(ctx context.Context, eventID string, limit int64) ([]*ActivityEntry, error) {
	col, err := mdb.GetCollection(ctx, ActivityDbName, ActivityColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "at", Value: -1}}).
		SetLimit(limit)

	cursor, err := col.Find(ctx, bson.M{"event_id": eventID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing activity: %v", err)
	}
	defer cursor.Close(ctx)

	var entries []*ActivityEntry
	for cursor.Next(ctx) {
		var entry ActivityEntry
		if err := cursor.Decode(&entry); err != nil {
			return nil, fmt.Errorf("error decoding activity entry: %v", err)
		}
		entries = append(entries, &entry)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return entries, nil
}
