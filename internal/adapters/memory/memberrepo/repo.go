package memberrepo

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/stokvelmanager/whatsapp-bot/internal/domain"
	"github.com/stokvelmanager/whatsapp-bot/internal/ports/out/memberrepo"
)

// Repo is an in-memory implementation of memberrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu      sync.RWMutex
	byGroup map[domain.GroupID]map[domain.MemberID]domain.Member
}

func NewRepo() *Repo {
	return &Repo{byGroup: make(map[domain.GroupID]map[domain.MemberID]domain.Member)}
}

func (r *Repo) Create(ctx context.Context, m domain.Member) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	group, ok := r.byGroup[m.GroupID]
	if !ok {
		group = make(map[domain.MemberID]domain.Member)
		r.byGroup[m.GroupID] = group
	}
	if _, ok := group[m.ID]; ok {
		return memberrepo.ErrAlreadyExists
	}
	group[m.ID] = m
	return nil
}

func (r *Repo) GetByID(ctx context.Context, groupID domain.GroupID, id domain.MemberID) (domain.Member, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byGroup[groupID][id]
	if !ok {
		return domain.Member{}, memberrepo.ErrNotFound
	}
	return m, nil
}

func (r *Repo) GetByPhone(ctx context.Context, groupID domain.GroupID, phone string) (domain.Member, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.byGroup[groupID] {
		if m.Phone == phone {
			return m, nil
		}
	}
	return domain.Member{}, memberrepo.ErrNotFound
}

func (r *Repo) ListActive(ctx context.Context, groupID domain.GroupID) ([]domain.Member, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Member, 0)
	for _, m := range r.byGroup[groupID] {
		if m.Status != domain.MemberStatusActive {
			continue
		}
		out = append(out, m)
	}
	sortMembersByName(out)
	return out, nil
}

func sortMembersByName(ms []domain.Member) {
	sort.Slice(ms, func(i, j int) bool {
		ni := strings.ToLower(ms[i].Name)
		nj := strings.ToLower(ms[j].Name)
		if ni == nj {
			return ms[i].ID < ms[j].ID
		}
		return ni < nj
	})
}
