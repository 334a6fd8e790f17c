package usecase

import (
	"math/big"
	"time"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/execution"
	"github.com/mintora/goledger/base/log"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/fungible"
	"github.com/mintora/goledger/service/query"
)

type FungibleUseCaseCfg struct {
	TokenRepo     fungible.TokenRepo
	BalanceRepo   fungible.BalanceRepo
	AllowanceRepo fungible.AllowanceRepo
	Q             query.Mongo
	Guard         *execution.Guard
}

type impl struct {
	tokens     fungible.TokenRepo
	balances   fungible.BalanceRepo
	allowances fungible.AllowanceRepo
	q          query.Mongo
	guard      *execution.Guard
}

// New creates fungible token usecase
func New(cfg *FungibleUseCaseCfg) fungible.UseCase {
	return &impl{
		tokens:     cfg.TokenRepo,
		balances:   cfg.BalanceRepo,
		allowances: cfg.AllowanceRepo,
		q:          cfg.Q,
		guard:      cfg.Guard,
	}
}

func (im *impl) Create(c ctx.Ctx, token *fungible.Token, initialSupply *big.Int) (*fungible.Token, error) {
	err := im.guard.Run(c, func(c ctx.Ctx) error {
		if token.Address.IsZero() || token.Decimals < 0 {
			return domain.ErrInvalidInput
		}
		if token.TaxBps < 0 || token.TaxBps > 10000 {
			return domain.ErrInvalidInput
		}
		if token.TaxBps > 0 && token.TaxSink.IsZero() {
			return domain.ErrInvalidInput
		}
		if initialSupply == nil || initialSupply.Sign() < 0 {
			return domain.ErrInvalidInput
		}
		return im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
			now := time.Now()
			token.LowerCase()
			token.TotalSupply = initialSupply.String()
			token.CreatedAt = &now
			if err := im.tokens.Insert(c, token); err != nil {
				c.WithFields(log.Fields{
					"address": token.Address,
					"err":     err,
				}).Error("tokens.Insert failed")
				return err
			}
			if initialSupply.Sign() > 0 {
				return im.credit(c, token.Address, token.Creator, initialSupply)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return token, nil
}

func (im *impl) Mint(c ctx.Ctx, caller domain.Address, token domain.Address, to domain.Address, amount *big.Int) error {
	return im.guard.Run(c, func(c ctx.Ctx) error {
		if to.IsZero() || amount == nil || amount.Sign() <= 0 {
			return domain.ErrInvalidInput
		}
		return im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
			t, err := im.tokens.FindOne(c, token)
			if err != nil {
				c.WithFields(log.Fields{
					"token": token,
					"err":   err,
				}).Error("tokens.FindOne failed")
				return err
			}
			if !caller.Equals(t.Creator) {
				return domain.ErrUnauthorized
			}

			supply, err := domain.ParseAmount(t.TotalSupply)
			if err != nil {
				c.WithFields(log.Fields{
					"totalSupply": t.TotalSupply,
					"err":         err,
				}).Error("domain.ParseAmount failed")
				return err
			}
			total := supply.Add(supply, amount).String()
			if err := im.tokens.Patch(c, t.Address, fungible.TokenPatchable{TotalSupply: &total}); err != nil {
				return err
			}
			return im.credit(c, t.Address, to, amount)
		})
	})
}

func (im *impl) Get(c ctx.Ctx, address domain.Address) (*fungible.Token, error) {
	return im.tokens.FindOne(c, address)
}

func (im *impl) FindAll(c ctx.Ctx, opts ...fungible.FindAllOptionsFunc) ([]*fungible.Token, error) {
	return im.tokens.FindAll(c, opts...)
}

func (im *impl) BalanceOf(c ctx.Ctx, token domain.Address, owner domain.Address) (*big.Int, error) {
	balance, err := im.balances.FindOne(c, fungible.BalanceId{Token: token, Owner: owner})
	if err == domain.ErrNotFound {
		return new(big.Int), nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"token": token,
			"owner": owner,
			"err":   err,
		}).Error("balances.FindOne failed")
		return nil, err
	}
	return balance.BalanceBig()
}

func (im *impl) Allowance(c ctx.Ctx, token domain.Address, owner domain.Address, spender domain.Address) (*big.Int, error) {
	allowance, err := im.allowances.FindOne(c, fungible.AllowanceId{Token: token, Owner: owner, Spender: spender})
	if err == domain.ErrNotFound {
		return new(big.Int), nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"token":   token,
			"owner":   owner,
			"spender": spender,
			"err":     err,
		}).Error("allowances.FindOne failed")
		return nil, err
	}
	return domain.ParseAmount(allowance.Amount)
}

func (im *impl) Approve(c ctx.Ctx, owner domain.Address, token domain.Address, spender domain.Address, amount *big.Int) error {
	return im.guard.Run(c, func(c ctx.Ctx) error {
		if amount == nil || amount.Sign() < 0 {
			return domain.ErrInvalidInput
		}
		if _, err := im.tokens.FindOne(c, token); err != nil {
			c.WithFields(log.Fields{
				"token": token,
				"err":   err,
			}).Error("tokens.FindOne failed")
			return err
		}
		now := time.Now()
		return im.allowances.Upsert(c, &fungible.Allowance{
			Token:     token,
			Owner:     owner,
			Spender:   spender,
			Amount:    amount.String(),
			UpdatedAt: &now,
		})
	})
}

func (im *impl) Transfer(c ctx.Ctx, token domain.Address, from domain.Address, to domain.Address, amount *big.Int) error {
	return im.guard.Run(c, func(c ctx.Ctx) error {
		if amount == nil || amount.Sign() <= 0 {
			return domain.ErrInvalidInput
		}
		return im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
			t, err := im.tokens.FindOne(c, token)
			if err != nil {
				c.WithFields(log.Fields{
					"token": token,
					"err":   err,
				}).Error("tokens.FindOne failed")
				return err
			}
			return im.move(c, t, from, to, amount)
		})
	})
}

func (im *impl) TransferFrom(c ctx.Ctx, spender domain.Address, token domain.Address, from domain.Address, to domain.Address, amount *big.Int) error {
	return im.guard.Run(c, func(c ctx.Ctx) error {
		if amount == nil || amount.Sign() <= 0 {
			return domain.ErrInvalidInput
		}
		return im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
			t, err := im.tokens.FindOne(c, token)
			if err != nil {
				c.WithFields(log.Fields{
					"token": token,
					"err":   err,
				}).Error("tokens.FindOne failed")
				return err
			}
			if !spender.Equals(from) {
				if err := im.spendAllowance(c, t.Address, from, spender, amount); err != nil {
					return err
				}
			}
			return im.move(c, t, from, to, amount)
		})
	})
}

// move debits the sender, diverts the tax share to the sink and
// credits the remainder to the recipient.
func (im *impl) move(c ctx.Ctx, t *fungible.Token, from domain.Address, to domain.Address, amount *big.Int) error {
	if err := im.debit(c, t.Address, from, amount); err != nil {
		return err
	}
	tax := taxOf(t, amount)
	if tax.Sign() > 0 {
		if err := im.credit(c, t.Address, t.TaxSink, tax); err != nil {
			return err
		}
	}
	return im.credit(c, t.Address, to, new(big.Int).Sub(amount, tax))
}

func taxOf(t *fungible.Token, amount *big.Int) *big.Int {
	if t.TaxBps == 0 {
		return new(big.Int)
	}
	tax := new(big.Int).Mul(amount, big.NewInt(t.TaxBps))
	return tax.Div(tax, big.NewInt(10000))
}

func (im *impl) spendAllowance(c ctx.Ctx, token domain.Address, owner domain.Address, spender domain.Address, amount *big.Int) error {
	allowance, err := im.allowances.FindOne(c, fungible.AllowanceId{Token: token, Owner: owner, Spender: spender})
	if err == domain.ErrNotFound {
		return domain.ErrInsufficientAllowance
	} else if err != nil {
		c.WithFields(log.Fields{
			"token":   token,
			"owner":   owner,
			"spender": spender,
			"err":     err,
		}).Error("allowances.FindOne failed")
		return err
	}

	granted, err := domain.ParseAmount(allowance.Amount)
	if err != nil {
		c.WithFields(log.Fields{
			"amount": allowance.Amount,
			"err":    err,
		}).Error("domain.ParseAmount failed")
		return err
	}
	if granted.Cmp(amount) < 0 {
		return domain.ErrInsufficientAllowance
	}

	now := time.Now()
	allowance.Amount = granted.Sub(granted, amount).String()
	allowance.UpdatedAt = &now
	return im.allowances.Upsert(c, allowance)
}

func (im *impl) credit(c ctx.Ctx, token domain.Address, owner domain.Address, amount *big.Int) error {
	current := new(big.Int)
	balance, err := im.balances.FindOne(c, fungible.BalanceId{Token: token, Owner: owner})
	if err == nil {
		if current, err = balance.BalanceBig(); err != nil {
			c.WithFields(log.Fields{
				"token": token,
				"owner": owner,
				"err":   err,
			}).Error("balance.BalanceBig failed")
			return err
		}
	} else if err != domain.ErrNotFound {
		c.WithFields(log.Fields{
			"token": token,
			"owner": owner,
			"err":   err,
		}).Error("balances.FindOne failed")
		return err
	}

	now := time.Now()
	return im.balances.Upsert(c, &fungible.Balance{
		Token:     token,
		Owner:     owner,
		Balance:   current.Add(current, amount).String(),
		UpdatedAt: &now,
	})
}

func (im *impl) debit(c ctx.Ctx, token domain.Address, owner domain.Address, amount *big.Int) error {
	balance, err := im.balances.FindOne(c, fungible.BalanceId{Token: token, Owner: owner})
	if err == domain.ErrNotFound {
		return domain.ErrInsufficientBalance
	} else if err != nil {
		c.WithFields(log.Fields{
			"token": token,
			"owner": owner,
			"err":   err,
		}).Error("balances.FindOne failed")
		return err
	}

	current, err := balance.BalanceBig()
	if err != nil {
		c.WithFields(log.Fields{
			"token": token,
			"owner": owner,
			"err":   err,
		}).Error("balance.BalanceBig failed")
		return err
	}
	if current.Cmp(amount) < 0 {
		return domain.ErrInsufficientBalance
	}

	now := time.Now()
	return im.balances.Upsert(c, &fungible.Balance{
		Token:     token,
		Owner:     owner,
		Balance:   current.Sub(current, amount).String(),
		UpdatedAt: &now,
	})
}
