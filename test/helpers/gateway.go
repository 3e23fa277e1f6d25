package helpers

import (
	"errors"
	"fmt"
	"sync"

	"localink_backend/internal/payments"
)

// FakeGateway records payment intents in memory. Set FailNext to make the
// next CreateIntent call return an error.
type FakeGateway struct {
	mu       sync.Mutex
	calls    int
	FailNext bool
	LastReq  *payments.IntentRequest
}

func NewFakeGateway() *FakeGateway {
	return &FakeGateway{}
}

func (g *FakeGateway) CreateIntent(req payments.IntentRequest) (*payments.Intent, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.FailNext {
		g.FailNext = false
		return nil, errors.New("gateway unavailable")
	}

	g.calls++
	r := req
	g.LastReq = &r

	id := fmt.Sprintf("pi_test_%d", g.calls)
	return &payments.Intent{
		ID:           id,
		ClientSecret: id + "_secret",
	}, nil
}

func (g *FakeGateway) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}
