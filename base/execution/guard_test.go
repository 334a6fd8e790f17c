package execution

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/domain"
)

type testsuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestRejectsReentrantCall() {
	gate := NewGate()
	guard := NewGuard("marketplace", gate)

	err := guard.Run(ctx.Background(), func(c ctx.Ctx) error {
		return guard.Run(c, func(ctx.Ctx) error {
			ts.Fail("nested call should not run")
			return nil
		})
	})
	ts.Equal(domain.ErrReentrantCall, err)
}

func (ts *testsuite) TestNestedProgramRunsUnderHeldGate() {
	gate := NewGate()
	outer := NewGuard("marketplace", gate)
	inner := NewGuard("bank", gate)

	called := false
	err := outer.Run(ctx.Background(), func(c ctx.Ctx) error {
		return inner.Run(c, func(ctx.Ctx) error {
			called = true
			return nil
		})
	})
	ts.NoError(err)
	ts.True(called)
}

func (ts *testsuite) TestNestedProgramStillGuardsItself() {
	gate := NewGate()
	outer := NewGuard("marketplace", gate)
	inner := NewGuard("bank", gate)

	err := outer.Run(ctx.Background(), func(c ctx.Ctx) error {
		return inner.Run(c, func(c ctx.Ctx) error {
			return inner.Run(c, func(ctx.Ctx) error {
				ts.Fail("nested call should not run")
				return nil
			})
		})
	})
	ts.Equal(domain.ErrReentrantCall, err)
}

func (ts *testsuite) TestSerializesCalls() {
	gate := NewGate()
	guard := NewGuard("marketplace", gate)

	value := 0
	wg := sync.WaitGroup{}
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			guard.Run(ctx.Background(), func(ctx.Ctx) error {
				v := value
				time.Sleep(time.Millisecond)
				value = v + 1
				return nil
			})
		}()
	}
	wg.Wait()
	ts.Equal(32, value)
}

func (ts *testsuite) TestGateReleasedAfterError() {
	gate := NewGate()
	guard := NewGuard("marketplace", gate)

	_ = guard.Run(ctx.Background(), func(ctx.Ctx) error {
		return domain.ErrInvalidState
	})

	called := false
	err := guard.Run(ctx.Background(), func(ctx.Ctx) error {
		called = true
		return nil
	})
	ts.NoError(err)
	ts.True(called)
}
