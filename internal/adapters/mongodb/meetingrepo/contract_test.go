package meetingrepo

import (
	"testing"

	"github.com/stokvelmanager/whatsapp-bot/internal/adapters/contracttest"
	"github.com/stokvelmanager/whatsapp-bot/internal/adapters/mongodb/testutil"
	meetingrepoport "github.com/stokvelmanager/whatsapp-bot/internal/ports/out/meetingrepo"
)

func TestContract_MeetingRepo(t *testing.T) {
	contracttest.RunMeetingRepo(t, func(t *testing.T) (meetingrepoport.Repository, contracttest.CleanupFunc) {
		db, cleanup := testutil.NewTestDB(t)
		return NewRepo(db), cleanup
	})
}
