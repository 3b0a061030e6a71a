package payoutrepo

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
	"github.com/stokvelmanager/whatsapp-bot/internal/ports/out/payoutrepo"
)

type record struct {
	ID            string     `bson:"_id"`
	GroupID       string     `bson:"group_id"`
	RecipientName string     `bson:"recipient_name"`
	Amount        float64    `bson:"amount"`
	PayoutDate    *time.Time `bson:"payout_date,omitempty"`
	Status        string     `bson:"status"`
}

// Repo is a MongoDB implementation of payoutrepo.Repository.
type Repo struct {
	col *mongo.Collection
}

func NewRepo(db *mongodb.DB) *Repo {
	return &Repo{col: db.Collection("payouts")}
}

func (r *Repo) Create(ctx context.Context, p domain.Payout) error {
	_, err := r.col.InsertOne(ctx, toRecord(p))
	if mongo.IsDuplicateKeyError(err) {
		return payoutrepo.ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("insert payout: %w", err)
	}
	return nil
}

func (r *Repo) NextScheduled(ctx context.Context, groupID domain.GroupID) (domain.Payout, error) {
	filter := bson.M{
		"group_id": string(groupID),
		"status":   string(domain.PayoutScheduled),
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "payout_date", Value: 1}, {Key: "_id", Value: 1}})

	var rec record
	err := r.col.FindOne(ctx, filter, opts).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Payout{}, payoutrepo.ErrNotFound
	}
	if err != nil {
		return domain.Payout{}, fmt.Errorf("find next payout: %w", err)
	}
	return toDomain(rec), nil
}

func toRecord(p domain.Payout) record {
	rec := record{
		ID:            string(p.ID),
		GroupID:       string(p.GroupID),
		RecipientName: p.RecipientName,
		Amount:        p.Amount,
		Status:        string(p.Status),
	}
	if !p.PayoutDate.IsZero() {
		d := p.PayoutDate.UTC()
		rec.PayoutDate = &d
	}
	return rec
}

func toDomain(rec record) domain.Payout {
	p := domain.Payout{
		ID:            domain.PayoutID(rec.ID),
		GroupID:       domain.GroupID(rec.GroupID),
		RecipientName: rec.RecipientName,
		Amount:        rec.Amount,
		Status:        domain.PayoutStatus(rec.Status),
	}
	if rec.PayoutDate != nil {
		p.PayoutDate = *rec.PayoutDate
	}
	return p
}
