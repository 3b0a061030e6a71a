package meetingrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stokvelmanager/whatsapp-bot/internal/adapters/mongodb"
	"github.com/stokvelmanager/whatsapp-bot/internal/domain"
	"github.com/stokvelmanager/whatsapp-bot/internal/ports/out/meetingrepo"
)

type record struct {
	ID           string     `bson:"_id"`
	GroupID      string     `bson:"group_id"`
	Title        string     `bson:"title,omitempty"`
	Date         *time.Time `bson:"date,omitempty"`
	LocationName string     `bson:"location_name,omitempty"`
	VirtualLink  string     `bson:"virtual_link,omitempty"`
	CreatedAt    time.Time  `bson:"created_at"`
}

// Repo is a MongoDB implementation of meetingrepo.Repository.
type Repo struct {
	col *mongo.Collection
}

func NewRepo(db *mongodb.DB) *Repo {
	return &Repo{col: db.Collection("meetings")}
}

func (r *Repo) Create(ctx context.Context, m domain.Meeting) error {
	_, err := r.col.InsertOne(ctx, toRecord(m))
	if mongo.IsDuplicateKeyError(err) {
		return meetingrepo.ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("insert meeting: %w", err)
	}
	return nil
}

func (r *Repo) NextAfter(ctx context.Context, groupID domain.GroupID, t time.Time) (domain.Meeting, error) {
	filter := bson.M{
		"group_id": string(groupID),
		"date":     bson.M{"$gte": t.UTC()},
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}})

	var rec record
	err := r.col.FindOne(ctx, filter, opts).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Meeting{}, meetingrepo.ErrNotFound
	}
	if err != nil {
		return domain.Meeting{}, fmt.Errorf("find next meeting: %w", err)
	}
	return toDomain(rec), nil
}

func toRecord(m domain.Meeting) record {
	rec := record{
		ID:           string(m.ID),
		GroupID:      string(m.GroupID),
		Title:        m.Title,
		LocationName: m.LocationName,
		VirtualLink:  m.VirtualLink,
		CreatedAt:    m.CreatedAt.UTC(),
	}
	if !m.Date.IsZero() {
		d := m.Date.UTC()
		rec.Date = &d
	}
	return rec
}

func toDomain(rec record) domain.Meeting {
	m := domain.Meeting{
		ID:           domain.MeetingID(rec.ID),
		GroupID:      domain.GroupID(rec.GroupID),
		Title:        rec.Title,
		LocationName: rec.LocationName,
		VirtualLink:  rec.VirtualLink,
		CreatedAt:    rec.CreatedAt,
	}
	if rec.Date != nil {
		m.Date = *rec.Date
	}
	return m
}
