package contribrepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stokvelmanager/whatsapp-bot/internal/adapters/mongodb"
	"github.com/stokvelmanager/whatsapp-bot/internal/domain"
	"github.com/stokvelmanager/whatsapp-bot/internal/ports/out/contribrepo"
)

type record struct {
	ID         string     `bson:"_id"`
	GroupID    string     `bson:"group_id"`
	MemberID   string     `bson:"member_id"`
	MemberName string     `bson:"member_name,omitempty"`
	Amount     float64    `bson:"amount"`
	Status     string     `bson:"status"`
	DueDate    time.Time  `bson:"due_date"`
	PaidDate   *time.Time `bson:"paid_date,omitempty"`
	CreatedAt  time.Time  `bson:"created_at"`
}

// Repo is a MongoDB implementation of contribrepo.Repository.
type Repo struct {
	col *mongo.Collection
}

func NewRepo(db *mongodb.DB) *Repo {
	return &Repo{col: db.Collection("contributions")}
}

func (r *Repo) Create(ctx context.Context, c domain.Contribution) error {
	_, err := r.col.InsertOne(ctx, toRecord(c))
	if mongo.IsDuplicateKeyError(err) {
		return contribrepo.ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("insert contribution: %w", err)
	}
	return nil
}

func (r *Repo) CountPaidSince(ctx context.Context, groupID domain.GroupID, since time.Time) (int, error) {
	filter := bson.M{
		"group_id":  string(groupID),
		"status":    string(domain.ContributionPaid),
		"paid_date": bson.M{"$gte": since.UTC()},
	}
	n, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count paid contributions: %w", err)
	}
	return int(n), nil
}

func (r *Repo) ListRecentByMember(ctx context.Context, groupID domain.GroupID, memberID domain.MemberID, limit int) ([]domain.Contribution, error) {
	filter := bson.M{"group_id": string(groupID), "member_id": string(memberID)}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(int64(limit))
	}
	return r.find(ctx, filter, opts)
}

func (r *Repo) ListPendingDueBetween(ctx context.Context, groupID domain.GroupID, start, end time.Time) ([]domain.Contribution, error) {
	filter := bson.M{
		"group_id": string(groupID),
		"status":   string(domain.ContributionPending),
		"due_date": bson.M{"$gte": start.UTC(), "$lt": end.UTC()},
	}
	opts := options.Find().SetSort(bson.D{{Key: "due_date", Value: 1}, {Key: "_id", Value: 1}})
	return r.find(ctx, filter, opts)
}

func (r *Repo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.Contribution, error) {
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list contributions: %w", err)
	}
	var recs []record
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("decode contributions: %w", err)
	}
	out := make([]domain.Contribution, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toDomain(rec))
	}
	return out, nil
}

func toRecord(c domain.Contribution) record {
	rec := record{
		ID:         string(c.ID),
		GroupID:    string(c.GroupID),
		MemberID:   string(c.MemberID),
		MemberName: c.MemberName,
		Amount:     c.Amount,
		Status:     string(c.Status),
		DueDate:    c.DueDate.UTC(),
		CreatedAt:  c.CreatedAt.UTC(),
	}
	if !c.PaidDate.IsZero() {
		paid := c.PaidDate.UTC()
		rec.PaidDate = &paid
	}
	return rec
}

func toDomain(rec record) domain.Contribution {
	c := domain.Contribution{
		ID:         domain.ContributionID(rec.ID),
		GroupID:    domain.GroupID(rec.GroupID),
		MemberID:   domain.MemberID(rec.MemberID),
		MemberName: rec.MemberName,
		Amount:     rec.Amount,
		Status:     domain.ContributionStatus(rec.Status),
		DueDate:    rec.DueDate,
		CreatedAt:  rec.CreatedAt,
	}
	if rec.PaidDate != nil {
		c.PaidDate = *rec.PaidDate
	}
	return c
}
