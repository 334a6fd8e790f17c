package domain

import (
	"github.com/mintora/goledger/base/ctx"
)

const DefaultTag = "default"

// FeedState is the durable cursor of one event feed consumer. Name
// identifies the consumer, LastSeqProcessed the last event sequence
// it has fully handled.
type FeedState struct {
	Name             string `bson:"name"`
	Tag              string `bson:"tag"`
	LastSeqProcessed int64  `bson:"lastSeqProcessed"`
}

func (s *FeedState) ToId() *FeedStateId {
	return &FeedStateId{
		Name: s.Name,
		Tag:  s.Tag,
	}
}

type FeedStateId struct {
	Name string `bson:"name"`
	Tag  string `bson:"tag"`
}

type FeedStateRepo interface {
	Get(ctx.Ctx, *FeedStateId) (*FeedState, error)
	Update(ctx.Ctx, *FeedState) error
	Store(ctx.Ctx, *FeedState) error
}

type FeedStateUseCase interface {
	Get(ctx.Ctx, *FeedStateId) (*FeedState, error)
	Update(ctx.Ctx, *FeedState) error
	Store(ctx.Ctx, *FeedState) error
}
