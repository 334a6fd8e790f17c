package execution

import (
	"context"
	"sync"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/domain"
)

type gateCtxKey struct{}

type programCtxKey string

// Gate admits one ledger call at a time. The outermost program entry
// acquires it and holds it until the call completes; program calls
// nested inside an executing call run under the already held gate.
type Gate struct {
	mu sync.Mutex
}

func NewGate() *Gate {
	return &Gate{}
}

// Guard is the call-scoped guard of one program. Entering the same
// program again while one of its calls is still executing is a
// reentrant call and fails with domain.ErrReentrantCall instead of
// deadlocking or observing state mid-transition.
type Guard struct {
	program string
	gate    *Gate
}

func NewGuard(program string, gate *Gate) *Guard {
	return &Guard{
		program: program,
		gate:    gate,
	}
}

func (g *Guard) Run(c ctx.Ctx, run func(ctx.Ctx) error) error {
	if entered, _ := c.Value(programCtxKey(g.program)).(bool); entered {
		return domain.ErrReentrantCall
	}

	c = ctx.Ctx{
		Context: context.WithValue(c, programCtxKey(g.program), true),
		Logger:  c.Logger,
	}

	if held, _ := c.Value(gateCtxKey{}).(bool); held {
		return run(c)
	}

	g.gate.mu.Lock()
	defer g.gate.mu.Unlock()

	return run(ctx.Ctx{
		Context: context.WithValue(c, gateCtxKey{}, true),
		Logger:  c.Logger,
	})
}
