package ctx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type testsuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestWithValue() {
	bg := Background()
	ctx := WithValue(bg, "program", "bank")
	ts.Equal("bank", ctx.Value("program"))
	ts.Nil(bg.Value("program"))
}

func (ts *testsuite) TestWithValues() {
	bg := Background()
	ctx := WithValues(bg, map[string]interface{}{
		"requestId": "r-1",
		"caller":    "0xabc",
	})
	ts.Equal("r-1", ctx.Value("requestId"))
	ts.Equal("0xabc", ctx.Value("caller"))
}

func (ts *testsuite) TestWithCancel() {
	bg := Background()
	ctx, cancel := WithCancel(bg)
	defer cancel()

	doneBefore := func(ctx context.Context, d time.Duration) bool {
		select {
		case <-ctx.Done():
			return true
		case <-time.After(d):
			return false
		}
	}

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	ts.True(doneBefore(ctx, 100*time.Millisecond))
}

func (ts *testsuite) TestWithTimeout() {
	bg := Background()
	ctx, cancel := WithTimeout(bg, 10*time.Millisecond)
	defer cancel()

	select {
	case <-ctx.Done():
	case <-time.After(100 * time.Millisecond):
		ts.Fail("context not done before timeout")
	}
	ts.Equal(context.DeadlineExceeded, ctx.Err())
}
