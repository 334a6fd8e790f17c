package feed

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/event"
	eventMocks "github.com/mintora/goledger/domain/event/mocks"
	"github.com/mintora/goledger/domain/mocks"
	queryMocks "github.com/mintora/goledger/service/query/mocks"
)

type stubHandler struct {
	err  error
	seen [][]*event.Event
}

func (h *stubHandler) ProcessEvents(_ bCtx.Ctx, events []*event.Event) error {
	if h.err != nil {
		return h.err
	}
	h.seen = append(h.seen, events)
	return nil
}

func passthroughMongo() *queryMocks.Mongo {
	q := new(queryMocks.Mongo)
	q.On("RunWithTransaction", mock.Anything, mock.Anything).Return(func(c bCtx.Ctx, run func(bCtx.Ctx) error) error {
		return run(c)
	})
	return q
}

func TestFollower_setupFeedState(t *testing.T) {
	name := "notifier"

	t.Run("exists in repo", func(t *testing.T) {
		req := require.New(t)
		ctx := bCtx.Background()
		feedStateUseCase := new(mocks.FeedStateUseCase)
		f := &Follower{
			name:             name,
			feedStateUseCase: feedStateUseCase,
		}

		state := &domain.FeedState{Name: name, Tag: domain.DefaultTag, LastSeqProcessed: 20}
		feedStateUseCase.On("Get", mock.Anything, state.ToId()).Return(state, nil)

		got, err := f.setupFeedState(ctx)
		req.NoError(err)
		req.Equal(state, got)
	})

	t.Run("replays from the beginning", func(t *testing.T) {
		req := require.New(t)
		ctx := bCtx.Background()
		feedStateUseCase := new(mocks.FeedStateUseCase)
		f := &Follower{
			name:             name,
			feedStateUseCase: feedStateUseCase,
		}

		state := &domain.FeedState{Name: name, Tag: domain.DefaultTag, LastSeqProcessed: 0}
		feedStateUseCase.On("Get", mock.Anything, state.ToId()).Return(nil, domain.ErrNotFound)
		feedStateUseCase.On("Store", mock.Anything, state).Return(nil)

		got, err := f.setupFeedState(ctx)
		req.NoError(err)
		req.Equal(state, got)
		feedStateUseCase.AssertExpectations(t)
	})

	t.Run("starts at the tail", func(t *testing.T) {
		req := require.New(t)
		ctx := bCtx.Background()
		feedStateUseCase := new(mocks.FeedStateUseCase)
		eventUseCase := new(eventMocks.UseCase)
		f := &Follower{
			name:             name,
			eventUseCase:     eventUseCase,
			feedStateUseCase: feedStateUseCase,
			startFromTail:    true,
		}

		state := &domain.FeedState{Name: name, Tag: domain.DefaultTag, LastSeqProcessed: 42}
		feedStateUseCase.On("Get", mock.Anything, state.ToId()).Return(nil, domain.ErrNotFound)
		eventUseCase.On("LatestSeq", mock.Anything).Return(int64(42), nil)
		feedStateUseCase.On("Store", mock.Anything, state).Return(nil)

		got, err := f.setupFeedState(ctx)
		req.NoError(err)
		req.Equal(state, got)
		feedStateUseCase.AssertExpectations(t)
	})
}

func TestFollower_fetchBatch(t *testing.T) {
	name := "notifier"

	newFollower := func(h Handler, eventUseCase event.UseCase, feedStateUseCase domain.FeedStateUseCase) *Follower {
		f, err := NewFollower(&FollowerCfg{
			Name:             name,
			Mongo:            passthroughMongo(),
			EventUseCase:     eventUseCase,
			FeedStateUseCase: feedStateUseCase,
			Handler:          h,
		})
		require.NoError(t, err)
		f.feedState = &domain.FeedState{Name: name, Tag: domain.DefaultTag, LastSeqProcessed: 10}
		return f
	}

	t.Run("advances the cursor past the batch", func(t *testing.T) {
		req := require.New(t)
		ctx := bCtx.Background()
		handler := &stubHandler{}
		eventUseCase := new(eventMocks.UseCase)
		feedStateUseCase := new(mocks.FeedStateUseCase)
		f := newFollower(handler, eventUseCase, feedStateUseCase)

		events := []*event.Event{
			{Seq: 11, Type: event.TypeBought},
			{Seq: 12, Type: event.TypeClaimed},
		}
		eventUseCase.On("FindAll", mock.Anything, mock.Anything, mock.Anything).Return(events, nil)
		feedStateUseCase.On("Update", mock.Anything, &domain.FeedState{
			Name:             name,
			Tag:              domain.DefaultTag,
			LastSeqProcessed: 12,
		}).Return(nil)

		n, err := f.fetchBatch(ctx)
		req.NoError(err)
		req.Equal(2, n)
		req.Len(handler.seen, 1)
		req.Equal(events, handler.seen[0])
		req.Equal(int64(12), f.feedState.LastSeqProcessed)
		feedStateUseCase.AssertExpectations(t)
	})

	t.Run("idle feed leaves the cursor alone", func(t *testing.T) {
		req := require.New(t)
		ctx := bCtx.Background()
		handler := &stubHandler{}
		eventUseCase := new(eventMocks.UseCase)
		feedStateUseCase := new(mocks.FeedStateUseCase)
		f := newFollower(handler, eventUseCase, feedStateUseCase)

		eventUseCase.On("FindAll", mock.Anything, mock.Anything, mock.Anything).Return([]*event.Event{}, nil)

		n, err := f.fetchBatch(ctx)
		req.NoError(err)
		req.Equal(0, n)
		req.Empty(handler.seen)
		feedStateUseCase.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("handler failure holds the cursor back", func(t *testing.T) {
		req := require.New(t)
		ctx := bCtx.Background()
		handler := &stubHandler{err: domain.ErrInternalServerError}
		eventUseCase := new(eventMocks.UseCase)
		feedStateUseCase := new(mocks.FeedStateUseCase)
		f := newFollower(handler, eventUseCase, feedStateUseCase)

		eventUseCase.On("FindAll", mock.Anything, mock.Anything, mock.Anything).Return([]*event.Event{{Seq: 11}}, nil)

		_, err := f.fetchBatch(ctx)
		req.Error(err)
		feedStateUseCase.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestNewFollower(t *testing.T) {
	req := require.New(t)

	_, err := NewFollower(&FollowerCfg{})
	req.Error(err)

	f, err := NewFollower(&FollowerCfg{Name: "notifier"})
	req.NoError(err)
	req.Equal(DefaultPollInterval, f.pollInterval)
	req.Equal(DefaultBatchSize, f.batchSize)
}
