package usecase

import (
	"math/big"
	"time"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/execution"
	"github.com/mintora/goledger/base/log"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/bank"
	"github.com/mintora/goledger/service/query"
)

type BankUseCaseCfg struct {
	BankRepo bank.Repo
	Q        query.Mongo
	Guard    *execution.Guard
	Minter   domain.Address
}

type impl struct {
	repo   bank.Repo
	q      query.Mongo
	guard  *execution.Guard
	minter domain.Address
}

// New creates bank usecase
func New(cfg *BankUseCaseCfg) bank.UseCase {
	return &impl{
		repo:   cfg.BankRepo,
		q:      cfg.Q,
		guard:  cfg.Guard,
		minter: cfg.Minter,
	}
}

func (im *impl) BalanceOf(c ctx.Ctx, address domain.Address) (*big.Int, error) {
	account, err := im.repo.FindOne(c, address)
	if err == domain.ErrNotFound {
		return new(big.Int), nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("repo.FindOne failed")
		return nil, err
	}
	return account.BalanceBig()
}

func (im *impl) Mint(c ctx.Ctx, caller domain.Address, to domain.Address, amount *big.Int) error {
	return im.guard.Run(c, func(c ctx.Ctx) error {
		if !caller.Equals(im.minter) {
			return domain.ErrUnauthorized
		}
		if amount == nil || amount.Sign() <= 0 {
			return domain.ErrInvalidInput
		}
		return im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
			return im.credit(c, to, amount)
		})
	})
}

func (im *impl) Transfer(c ctx.Ctx, from domain.Address, to domain.Address, amount *big.Int) error {
	return im.guard.Run(c, func(c ctx.Ctx) error {
		if amount == nil || amount.Sign() <= 0 {
			return domain.ErrInvalidInput
		}
		return im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
			if err := im.debit(c, from, amount); err != nil {
				return err
			}
			return im.credit(c, to, amount)
		})
	})
}

func (im *impl) credit(c ctx.Ctx, address domain.Address, amount *big.Int) error {
	balance := new(big.Int)
	account, err := im.repo.FindOne(c, address)
	if err == nil {
		if balance, err = account.BalanceBig(); err != nil {
			c.WithFields(log.Fields{
				"address": address,
				"err":     err,
			}).Error("account.BalanceBig failed")
			return err
		}
	} else if err != domain.ErrNotFound {
		c.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("repo.FindOne failed")
		return err
	}

	now := time.Now()
	return im.repo.Upsert(c, &bank.Account{
		Address:   address,
		Balance:   balance.Add(balance, amount).String(),
		UpdatedAt: &now,
	})
}

func (im *impl) debit(c ctx.Ctx, address domain.Address, amount *big.Int) error {
	account, err := im.repo.FindOne(c, address)
	if err == domain.ErrNotFound {
		return domain.ErrInsufficientBalance
	} else if err != nil {
		c.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("repo.FindOne failed")
		return err
	}

	balance, err := account.BalanceBig()
	if err != nil {
		c.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("account.BalanceBig failed")
		return err
	}
	if balance.Cmp(amount) < 0 {
		return domain.ErrInsufficientBalance
	}

	now := time.Now()
	return im.repo.Upsert(c, &bank.Account{
		Address:   address,
		Balance:   balance.Sub(balance, amount).String(),
		UpdatedAt: &now,
	})
}
