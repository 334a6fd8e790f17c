package usecase

import (
	"time"

	bCtx "github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/domain"
)

type feedStateUseCase struct {
	feedStateRepo domain.FeedStateRepo
	ctxTimeout    time.Duration
}

func NewFeedStateUseCase(r domain.FeedStateRepo, ctxTimeout time.Duration) domain.FeedStateUseCase {
	return &feedStateUseCase{
		feedStateRepo: r,
		ctxTimeout:    ctxTimeout,
	}
}

func (u *feedStateUseCase) Get(c bCtx.Ctx, id *domain.FeedStateId) (*domain.FeedState, error) {
	ctx, cancel := bCtx.WithTimeout(c, u.ctxTimeout)
	defer cancel()
	return u.feedStateRepo.Get(ctx, id)
}

func (u *feedStateUseCase) Update(c bCtx.Ctx, state *domain.FeedState) error {
	ctx, cancel := bCtx.WithTimeout(c, u.ctxTimeout)
	defer cancel()
	return u.feedStateRepo.Update(ctx, state)
}

func (u *feedStateUseCase) Store(c bCtx.Ctx, state *domain.FeedState) error {
	ctx, cancel := bCtx.WithTimeout(c, u.ctxTimeout)
	defer cancel()
	return u.feedStateRepo.Store(ctx, state)
}
