// Package notify fans group notifications out to member phones and reacts
// to ledger state-change events.
package notify

import (
	"context"
	"log/slog"
	"sync"

	"github.com/stokvelmanager/whatsapp-bot/internal/ports/out/gateway"
)

// SendOutcome records the result of one recipient's send.
type SendOutcome struct {
	Phone string
	Err   error
}

// Dispatcher broadcasts one message body to many recipients. Every send is
// attempted regardless of other recipients' failures.
type Dispatcher struct {
	gw  gateway.Gateway
	log *slog.Logger
}

func NewDispatcher(gw gateway.Gateway, log *slog.Logger) *Dispatcher {
	return &Dispatcher{gw: gw, log: log}
}

// Broadcast sends body to every phone concurrently and waits for all sends
// to settle. It returns one outcome per recipient, in input order, and never
// an error: partial failure is an operational concern, not a caller concern.
func (d *Dispatcher) Broadcast(ctx context.Context, phones []string, body string) []SendOutcome {
	if len(phones) == 0 {
		return nil
	}

	outcomes := make([]SendOutcome, len(phones))
	var wg sync.WaitGroup
	for i, phone := range phones {
		wg.Add(1)
		go func(i int, phone string) {
			defer wg.Done()
			outcomes[i] = SendOutcome{Phone: phone, Err: d.gw.SendText(ctx, phone, body)}
		}(i, phone)
	}
	wg.Wait()

	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			d.log.Warn("broadcast send failed", "phone", o.Phone, "err", o.Err)
		}
	}
	if failed > 0 {
		d.log.Warn("broadcast completed with failures", "total", len(phones), "failed", failed)
	} else {
		d.log.Debug("broadcast completed", "total", len(phones))
	}
	return outcomes
}
