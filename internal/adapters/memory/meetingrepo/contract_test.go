package meetingrepo

import (
	"testing"

	"github.com/stokvelmanager/whatsapp-bot/internal/adapters/contracttest"
	meetingrepoport "github.com/stokvelmanager/whatsapp-bot/internal/ports/out/meetingrepo"
)

func TestContract_MeetingRepo(t *testing.T) {
	t.Parallel()

	contracttest.RunMeetingRepo(t, func(t *testing.T) (meetingrepoport.Repository, contracttest.CleanupFunc) {
		return NewRepo(), nil
	})
}
