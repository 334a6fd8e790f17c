package pricefmt

import (
	"math/big"
	"sync"

	"github.com/shopspring/decimal"

	bCtx "github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/log"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/bank"
	"github.com/mintora/goledger/domain/fungible"
)

type FormatterCfg struct {
	Tokens fungible.TokenRepo
}

type impl struct {
	tokens fungible.TokenRepo

	// mutex protected members
	mutex         sync.Mutex
	decimalsCache map[domain.Address]int32
}

func NewFormatter(cfg *FormatterCfg) Formatter {
	return &impl{
		tokens:        cfg.Tokens,
		decimalsCache: make(map[domain.Address]int32),
	}
}

func (f *impl) getDecimals(ctx bCtx.Ctx, token domain.Address) (int32, error) {
	if token.IsZero() {
		return bank.NativeDecimals, nil
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()
	if d, ok := f.decimalsCache[token.ToLower()]; ok {
		return d, nil
	}
	t, err := f.tokens.FindOne(ctx, token)
	if err != nil {
		ctx.WithFields(log.Fields{
			"token": token,
			"err":   err,
		}).Error("tokens.FindOne failed")
		return 0, err
	}
	f.decimalsCache[token.ToLower()] = t.Decimals
	return t.Decimals, nil
}

func (f *impl) Display(ctx bCtx.Ctx, token domain.Address, value *big.Int) (decimal.Decimal, error) {
	d, err := f.getDecimals(ctx, token)
	if err != nil {
		ctx.WithFields(log.Fields{
			"token": token,
			"err":   err,
		}).Error("getDecimals failed")
		return decimal.Zero, err
	}
	return decimal.NewFromBigInt(value, -d), nil
}

func (f *impl) DisplayString(ctx bCtx.Ctx, token domain.Address, value *big.Int) (string, error) {
	d, err := f.Display(ctx, token, value)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}
