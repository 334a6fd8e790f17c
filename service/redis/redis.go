package redis

import (
	"errors"
	"time"

	"github.com/mintora/goledger/base/ctx"
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis key not found")
)

// Service wraps the redis commands used by this repo. Values are raw bytes;
// GetStruct/SetStruct marshal through JSON.
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, ks ...string) (int, error)
	Exists(context ctx.Ctx, key string) (bool, error)
	TTL(context ctx.Ctx, key string) (int, error)
	Incr(context ctx.Ctx, key string) (int64, error)
	Incrby(context ctx.Ctx, key string, val int) (int64, error)
	GetStruct(context ctx.Ctx, key string, val interface{}) error
	SetStruct(context ctx.Ctx, key string, val interface{}, expire time.Duration) error
}
