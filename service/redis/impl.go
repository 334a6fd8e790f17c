package redis

import (
	"encoding/json"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/metrics"
	"github.com/mintora/goledger/domain/keys"
)

const (
	// retTTLNoKey is the return value of TTL when the key does not exist
	retTTLNoKey = -2
)

type redImpl struct {
	name string
	met  metrics.Service
	pool *redis.Pool
}

// New wraps a redigo pool into a Service
func New(name string, metrics metrics.Service, pool *redis.Pool) Service {
	return &redImpl{
		name: name,
		met:  metrics,
		pool: pool,
	}
}

func (r *redImpl) getConn() (redis.Conn, error) {
	defer r.met.BumpTime("getconn.time", "cluster", r.name).End()

	conn := r.pool.Get()
	if err := conn.Err(); err != nil {
		r.met.BumpSum("getConn.err", 1, "cluster", r.name, "reason", err.Error())
		return nil, err
	}
	return conn, nil
}

func (r *redImpl) connDo(context ctx.Ctx, commandName string, args ...interface{}) (interface{}, error) {
	conn, err := r.getConn()
	if err != nil {
		return nil, err
	}

	reply, err := conn.Do(commandName, args...)

	// Closing conn explicitly asap improves redigo's performance,
	// bacause longer an connection is hold and not closed, the
	// pool need to handle more connections at the same time and
	// getConn time might burst.
	if err := conn.Close(); err != nil {
		r.met.BumpSum("conn.Close.err", 1, "cluster", r.name)
	}
	return reply, err
}

func (r *redImpl) Get(context ctx.Ctx, key string) ([]byte, error) {
	defer r.met.BumpTime("time", "func", "get", "cluster", r.name, "prefix", keys.GetPrefix(key)).End()

	val, err := redis.Bytes(r.connDo(context, "GET", key))
	if err == redis.ErrNil {
		r.met.BumpSum("get.miss", 1, "cluster", r.name, "prefix", keys.GetPrefix(key))
		return nil, ErrNotFound
	} else if err != nil {
		context.WithField("err", err).WithField("key", key).Error("GET failed")
		return nil, err
	}
	return val, nil
}

func (r *redImpl) Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error {
	defer r.met.BumpTime("time", "func", "set", "cluster", r.name, "prefix", keys.GetPrefix(key)).End()

	seconds := int(expire / time.Second)
	var err error
	if seconds <= 0 {
		_, err = r.connDo(context, "SET", key, val)
	} else {
		_, err = r.connDo(context, "SET", key, val, "EX", seconds)
	}
	if err != nil {
		context.WithField("err", err).WithField("key", key).Error("SET failed")
		return err
	}
	return nil
}

func (r *redImpl) Del(context ctx.Ctx, ks ...string) (int, error) {
	if len(ks) == 0 {
		return 0, nil
	}
	defer r.met.BumpTime("time", "func", "del", "cluster", r.name, "prefix", keys.GetPrefix(ks[0])).End()

	args := make([]interface{}, 0, len(ks))
	for _, k := range ks {
		args = append(args, k)
	}
	count, err := redis.Int(r.connDo(context, "DEL", args...))
	if err != nil {
		context.WithField("err", err).Error("DEL failed")
		return 0, err
	}
	return count, nil
}

func (r *redImpl) Exists(context ctx.Ctx, key string) (bool, error) {
	defer r.met.BumpTime("time", "func", "exists", "cluster", r.name, "prefix", keys.GetPrefix(key)).End()

	res, err := redis.Int(r.connDo(context, "EXISTS", key))
	if err != nil {
		context.WithField("err", err).WithField("key", key).Error("EXISTS failed")
		return false, err
	}
	return res == 1, nil
}

// TTL returns remaining ttl in seconds. ErrNotFound is returned when the key
// does not exist; a key without expire returns -1 as redis does.
func (r *redImpl) TTL(context ctx.Ctx, key string) (int, error) {
	defer r.met.BumpTime("time", "func", "ttl", "cluster", r.name, "prefix", keys.GetPrefix(key)).End()

	ttl, err := redis.Int(r.connDo(context, "TTL", key))
	if err != nil {
		context.WithField("err", err).WithField("key", key).Error("TTL failed")
		return 0, err
	}
	if ttl == retTTLNoKey {
		return 0, ErrNotFound
	}
	return ttl, nil
}

func (r *redImpl) Incr(context ctx.Ctx, key string) (int64, error) {
	defer r.met.BumpTime("time", "func", "incr", "cluster", r.name, "prefix", keys.GetPrefix(key)).End()

	res, err := redis.Int64(r.connDo(context, "INCR", key))
	if err != nil {
		context.WithField("err", err).WithField("key", key).Error("INCR failed")
		return 0, err
	}
	return res, nil
}

func (r *redImpl) Incrby(context ctx.Ctx, key string, val int) (int64, error) {
	defer r.met.BumpTime("time", "func", "incrby", "cluster", r.name, "prefix", keys.GetPrefix(key)).End()

	res, err := redis.Int64(r.connDo(context, "INCRBY", key, val))
	if err != nil {
		context.WithField("err", err).WithField("key", key).Error("INCRBY failed")
		return 0, err
	}
	return res, nil
}

func (r *redImpl) GetStruct(context ctx.Ctx, key string, val interface{}) error {
	raw, err := r.Get(context, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, val); err != nil {
		context.WithField("err", err).WithField("key", key).Error("json.Unmarshal failed")
		return err
	}
	return nil
}

func (r *redImpl) SetStruct(context ctx.Ctx, key string, val interface{}, expire time.Duration) error {
	raw, err := json.Marshal(val)
	if err != nil {
		context.WithField("err", err).WithField("key", key).Error("json.Marshal failed")
		return err
	}
	return r.Set(context, key, raw, expire)
}
