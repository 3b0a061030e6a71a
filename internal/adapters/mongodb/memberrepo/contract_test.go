package memberrepo

import (
	"testing"

	"github.com/stokvelmanager/whatsapp-bot/internal/adapters/contracttest"
	"github.com/stokvelmanager/whatsapp-bot/internal/adapters/mongodb/testutil"
	memberrepoport "github.com/stokvelmanager/whatsapp-bot/internal/ports/out/memberrepo"
)

func TestContract_MemberRepo(t *testing.T) {
	contracttest.RunMemberRepo(t, func(t *testing.T) (memberrepoport.Repository, contracttest.CleanupFunc) {
		db, cleanup := testutil.NewTestDB(t)
		return NewRepo(db), cleanup
	})
}
