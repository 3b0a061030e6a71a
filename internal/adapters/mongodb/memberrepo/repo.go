package memberrepo

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
	"github.com/stokvelmanager/whatsapp-bot/internal/ports/out/memberrepo"
)

type record struct {
	ID        string    `bson:"_id"`
	GroupID   string    `bson:"group_id"`
	Name      string    `bson:"name"`
	Phone     string    `bson:"phone"`
	Role      string    `bson:"role"`
	Status    string    `bson:"status"`
	CreatedAt time.Time `bson:"created_at"`
}

// Repo is a MongoDB implementation of memberrepo.Repository.
type Repo struct {
	col *mongo.Collection
}

func NewRepo(db *mongodb.DB) *Repo {
	return &Repo{col: db.Collection("members")}
}

func (r *Repo) Create(ctx context.Context, m domain.Member) error {
	_, err := r.col.InsertOne(ctx, toRecord(m))
	if mongo.IsDuplicateKeyError(err) {
		return memberrepo.ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("insert member: %w", err)
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, groupID domain.GroupID, id domain.MemberID) (domain.Member, error) {
	return r.findOne(ctx, bson.M{"_id": string(id), "group_id": string(groupID)})
}

func (r *Repo) GetByPhone(ctx context.Context, groupID domain.GroupID, phone string) (domain.Member, error) {
	return r.findOne(ctx, bson.M{"group_id": string(groupID), "phone": phone})
}

func (r *Repo) ListActive(ctx context.Context, groupID domain.GroupID) ([]domain.Member, error) {
	filter := bson.M{"group_id": string(groupID), "status": string(domain.MemberStatusActive)}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	var recs []record
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("decode members: %w", err)
	}
	out := make([]domain.Member, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toDomain(rec))
	}
	return out, nil
}

func (r *Repo) findOne(ctx context.Context, filter bson.M) (domain.Member, error) {
	var rec record
	err := r.col.FindOne(ctx, filter).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Member{}, memberrepo.ErrNotFound
	}
	if err != nil {
		return domain.Member{}, fmt.Errorf("find member: %w", err)
	}
	return toDomain(rec), nil
}

func toRecord(m domain.Member) record {
	return record{
		ID:        string(m.ID),
		GroupID:   string(m.GroupID),
		Name:      m.Name,
		Phone:     m.Phone,
		Role:      string(m.Role),
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt.UTC(),
	}
}

func toDomain(rec record) domain.Member {
	return domain.Member{
		ID:        domain.MemberID(rec.ID),
		GroupID:   domain.GroupID(rec.GroupID),
		Name:      rec.Name,
		Phone:     rec.Phone,
		Role:      domain.MemberRole(rec.Role),
		Status:    domain.MemberStatus(rec.Status),
		CreatedAt: rec.CreatedAt,
	}
}
