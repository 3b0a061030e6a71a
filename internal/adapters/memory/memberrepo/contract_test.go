package memberrepo

import (
	"testing"

	"github.com/stokvelmanager/whatsapp-bot/internal/adapters/contracttest"
	memberrepoport "github.com/stokvelmanager/whatsapp-bot/internal/ports/out/memberrepo"
)

func TestContract_MemberRepo(t *testing.T) {
	t.Parallel()

	contracttest.RunMemberRepo(t, func(t *testing.T) (memberrepoport.Repository, contracttest.CleanupFunc) {
		return NewRepo(), nil
	})
}
