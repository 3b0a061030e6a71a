package grouprepo

import (
	"testing"

	"github.com/stokvelmanager/whatsapp-bot/internal/adapters/contracttest"
	grouprepoport "github.com/stokvelmanager/whatsapp-bot/internal/ports/out/grouprepo"
)

func TestContract_GroupRepo(t *testing.T) {
	t.Parallel()

	contracttest.RunGroupRepo(t, func(t *testing.T) (grouprepoport.Repository, contracttest.CleanupFunc) {
		return NewRepo(), nil
	})
}
