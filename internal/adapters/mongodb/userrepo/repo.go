package userrepo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stokvelmanager/whatsapp-bot/internal/adapters/mongodb"
	"github.com/stokvelmanager/whatsapp-bot/internal/domain"
	"github.com/stokvelmanager/whatsapp-bot/internal/ports/out/userrepo"
)

type record struct {
	ID       string   `bson:"_id"`
	Phone    string   `bson:"phone"`
	GroupIDs []string `bson:"group_ids"`
}

// Repo is a MongoDB implementation of userrepo.Repository.
type Repo struct {
	col *mongo.Collection
}

func NewRepo(db *mongodb.DB) *Repo {
	return &Repo{col: db.Collection("users")}
}

func (r *Repo) Create(ctx context.Context, u domain.User) error {
	// Phone uniqueness is also enforced by a unique index in deployments;
	// the pre-check keeps the contract without requiring one.
	err := r.col.FindOne(ctx, bson.M{"phone": u.Phone}).Err()
	if err == nil {
		return userrepo.ErrAlreadyExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("check user phone: %w", err)
	}

	_, err = r.col.InsertOne(ctx, toRecord(u))
	if mongo.IsDuplicateKeyError(err) {
		return userrepo.ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *Repo) GetByPhone(ctx context.Context, phone string) (domain.User, error) {
	var rec record
	err := r.col.FindOne(ctx, bson.M{"phone": phone}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.User{}, userrepo.ErrNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("find user: %w", err)
	}
	return toDomain(rec), nil
}

func toRecord(u domain.User) record {
	ids := make([]string, 0, len(u.GroupIDs))
	for _, id := range u.GroupIDs {
		ids = append(ids, string(id))
	}
	return record{ID: string(u.ID), Phone: u.Phone, GroupIDs: ids}
}

func toDomain(rec record) domain.User {
	ids := make([]domain.GroupID, 0, len(rec.GroupIDs))
	for _, id := range rec.GroupIDs {
		ids = append(ids, domain.GroupID(id))
	}
	return domain.User{ID: domain.UserID(rec.ID), Phone: rec.Phone, GroupIDs: ids}
}
