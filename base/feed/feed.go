package feed

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/log"
	"github.com/mintora/goledger/base/metrics"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/event"
	"github.com/mintora/goledger/service/query"
)

var metOnce sync.Once
var met metrics.Service

// Handler consumes one batch of feed events. Batches arrive in seq
// order; a crash between handling and the cursor update replays the
// batch, so handlers must tolerate seeing an event twice.
type Handler interface {
	ProcessEvents(bCtx.Ctx, []*event.Event) error
}

const DefaultPollInterval = 10 * time.Second
const DefaultBatchSize = int32(256)

type FollowerCfg struct {
	// Name keys the durable cursor, one per consumer.
	Name             string
	Mongo            query.Mongo
	EventUseCase     event.UseCase
	FeedStateUseCase domain.FeedStateUseCase
	Handler          Handler
	ErrorCh          chan<- error

	// StartFromTail seeds a missing cursor at the current end of the
	// log instead of replaying the whole history.
	StartFromTail bool
	PollInterval  time.Duration
	BatchSize     int32
}

type Follower struct {
	name             string
	q                query.Mongo
	eventUseCase     event.UseCase
	feedStateUseCase domain.FeedStateUseCase
	handler          Handler
	errorCh          chan<- error
	startFromTail    bool
	pollInterval     time.Duration
	batchSize        int32
	feedState        *domain.FeedState
	stoppedCh        chan interface{}
}

func NewFollower(cfg *FollowerCfg) (*Follower, error) {
	metOnce.Do(func() {
		met = metrics.New("feed")
	})
	if cfg.Name == "" {
		return nil, errors.New("config error: Name is required")
	}
	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Follower{
		name:             cfg.Name,
		q:                cfg.Mongo,
		eventUseCase:     cfg.EventUseCase,
		feedStateUseCase: cfg.FeedStateUseCase,
		handler:          cfg.Handler,
		errorCh:          cfg.ErrorCh,
		startFromTail:    cfg.StartFromTail,
		pollInterval:     pollInterval,
		batchSize:        batchSize,
		stoppedCh:        make(chan interface{}),
	}, nil
}

func (f *Follower) Start(ctx bCtx.Ctx) {
	go func() {
		defer close(f.stoppedCh)
		if err := f.loop(ctx); err != nil {
			f.errorCh <- err
		}
	}()
}

func (f *Follower) Wait() {
	<-f.stoppedCh
}

func (f *Follower) loop(ctx bCtx.Ctx) error {
	state, err := f.setupFeedState(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("setupFeedState failed")
		return err
	}
	f.feedState = state

	// catch up before steady polling
	if err := f.fastFetch(ctx); err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"name": f.name,
		}).Error("fastFetch failed")
		return err
	}

	ticker := time.NewTicker(f.pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := f.fetchBatch(ctx); err != nil {
				ctx.WithField("err", err).Error("f.fetchBatch failed")
				return err
			}
		}
	}
}

func (f *Follower) fastFetch(ctx bCtx.Ctx) error {
	ctx.Info(fmt.Sprintf("fast fetch %s from seq=%d", f.name, f.feedState.LastSeqProcessed))
	for {
		n, err := f.fetchBatch(ctx)
		if err != nil {
			return err
		}
		if n < int(f.batchSize) {
			return nil
		}
	}
}

func (f *Follower) setupFeedState(ctx bCtx.Ctx) (*domain.FeedState, error) {
	id := &domain.FeedStateId{
		Name: f.name,
		Tag:  domain.DefaultTag,
	}
	state, err := f.feedStateUseCase.Get(ctx, id)
	if err == nil {
		return state, nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		startSeq := int64(0)
		if f.startFromTail {
			startSeq, err = f.eventUseCase.LatestSeq(ctx)
			if err != nil {
				ctx.WithFields(log.Fields{
					"name": f.name,
					"err":  err,
				}).Error("eventUseCase.LatestSeq failed")
				return nil, err
			}
		}
		state := &domain.FeedState{
			Name:             f.name,
			Tag:              domain.DefaultTag,
			LastSeqProcessed: startSeq,
		}
		if err := f.feedStateUseCase.Store(ctx, state); err != nil {
			ctx.WithFields(log.Fields{
				"name": f.name,
				"err":  err,
			}).Error("failed to store feed state")
			return nil, err
		}
		ctx.WithFields(log.Fields{
			"name":     f.name,
			"startSeq": startSeq,
		}).Info("created feed state")
		return state, nil
	}
	// repo error
	return nil, err
}

func (f *Follower) fetchBatch(ctx bCtx.Ctx) (int, error) {
	events, err := f.eventUseCase.FindAll(
		ctx,
		event.WithSeqGT(f.feedState.LastSeqProcessed),
		event.WithPagination(0, f.batchSize),
	)
	if err != nil {
		ctx.WithField("err", err).Error("eventUseCase.FindAll failed")
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	if err := f.processEvents(ctx, events); err != nil {
		ctx.WithField("err", err).Error("f.processEvents failed")
		return 0, err
	}
	ctx.Info(fmt.Sprintf("process events name=%s n=%d last=%d", f.name, len(events), f.feedState.LastSeqProcessed))
	met.BumpAvg("lastSeq", float64(f.feedState.LastSeqProcessed), "name", f.name)
	return len(events), nil
}

func (f *Follower) processEvents(ctx bCtx.Ctx, events []*event.Event) error {
	run := func(c bCtx.Ctx) error {
		if err := f.handler.ProcessEvents(c, events); err != nil {
			return xerrors.Errorf("failed to process events: %w", err)
		}
		f.feedState.LastSeqProcessed = events[len(events)-1].Seq
		if err := f.feedStateUseCase.Update(c, f.feedState); err != nil {
			return xerrors.Errorf("failed to store feed state: %w", err)
		}
		return nil
	}

	return f.q.RunWithTransaction(ctx, run)
}
