package grouprepo

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
	"github.com/stokvelmanager/whatsapp-bot/internal/ports/out/grouprepo"
)

type record struct {
	ID                 string    `bson:"_id"`
	Name               string    `bson:"name"`
	MemberCount        int       `bson:"member_count"`
	ContributionAmount float64   `bson:"contribution_amount"`
	TotalCollected     float64   `bson:"total_collected"`
	CreatedAt          time.Time `bson:"created_at"`
}

// Repo is a MongoDB implementation of grouprepo.Repository.
type Repo struct {
	col *mongo.Collection
}

func NewRepo(db *mongodb.DB) *Repo {
	return &Repo{col: db.Collection("groups")}
}

func (r *Repo) Create(ctx context.Context, g domain.Group) error {
	_, err := r.col.InsertOne(ctx, toRecord(g))
	if mongo.IsDuplicateKeyError(err) {
		return grouprepo.ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("insert group: %w", err)
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.GroupID) (domain.Group, error) {
	var rec record
	err := r.col.FindOne(ctx, bson.M{"_id": string(id)}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Group{}, grouprepo.ErrNotFound
	}
	if err != nil {
		return domain.Group{}, fmt.Errorf("find group: %w", err)
	}
	return toDomain(rec), nil
}

func (r *Repo) List(ctx context.Context) ([]domain.Group, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	var recs []record
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("decode groups: %w", err)
	}
	out := make([]domain.Group, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toDomain(rec))
	}
	return out, nil
}

func toRecord(g domain.Group) record {
	return record{
		ID:                 string(g.ID),
		Name:               g.Name,
		MemberCount:        g.MemberCount,
		ContributionAmount: g.ContributionAmount,
		TotalCollected:     g.TotalCollected,
		CreatedAt:          g.CreatedAt.UTC(),
	}
}

func toDomain(rec record) domain.Group {
	return domain.Group{
		ID:                 domain.GroupID(rec.ID),
		Name:               rec.Name,
		MemberCount:        rec.MemberCount,
		ContributionAmount: rec.ContributionAmount,
		TotalCollected:     rec.TotalCollected,
		CreatedAt:          rec.CreatedAt,
	}
}
