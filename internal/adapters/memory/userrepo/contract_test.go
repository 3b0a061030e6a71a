package userrepo

import (
	"testing"

	"github.com/stokvelmanager/whatsapp-bot/internal/adapters/contracttest"
	userrepoport "github.com/stokvelmanager/whatsapp-bot/internal/ports/out/userrepo"
)

func TestContract_UserRepo(t *testing.T) {
	t.Parallel()

	contracttest.RunUserRepo(t, func(t *testing.T) (userrepoport.Repository, contracttest.CleanupFunc) {
		return NewRepo(), nil
	})
}
