package usecase

import (
	"time"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/execution"
	"github.com/mintora/goledger/base/log"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/nft"
	"github.com/mintora/goledger/service/query"
)

type NftUseCaseCfg struct {
	ClassRepo    nft.ClassRepo
	ItemRepo     nft.ItemRepo
	HoldingRepo  nft.HoldingRepo
	ApprovalRepo nft.ApprovalRepo
	Q            query.Mongo
	Guard        *execution.Guard
}

type impl struct {
	classes   nft.ClassRepo
	items     nft.ItemRepo
	holdings  nft.HoldingRepo
	approvals nft.ApprovalRepo
	q         query.Mongo
	guard     *execution.Guard
}

// New creates nft usecase
func New(cfg *NftUseCaseCfg) nft.UseCase {
	return &impl{
		classes:   cfg.ClassRepo,
		items:     cfg.ItemRepo,
		holdings:  cfg.HoldingRepo,
		approvals: cfg.ApprovalRepo,
		q:         cfg.Q,
		guard:     cfg.Guard,
	}
}

func (im *impl) CreateClass(c ctx.Ctx, class *nft.Class) (*nft.Class, error) {
	err := im.guard.Run(c, func(c ctx.Ctx) error {
		if class.Address.IsZero() || class.Creator.IsZero() {
			return domain.ErrInvalidInput
		}
		if !nft.ValidKind(class.Kind) {
			return domain.ErrInvalidInput
		}
		now := time.Now()
		class.LowerCase()
		class.CreatedAt = &now
		return im.classes.Insert(c, class)
	})
	if err != nil {
		return nil, err
	}
	return class, nil
}

func (im *impl) GetClass(c ctx.Ctx, contract domain.Address) (*nft.Class, error) {
	return im.classes.FindOne(c, contract)
}

func (im *impl) FindClasses(c ctx.Ctx, offset int32, limit int32) ([]*nft.Class, error) {
	return im.classes.FindAll(c, offset, limit)
}

func (im *impl) Mint(c ctx.Ctx, caller domain.Address, contract domain.Address, to domain.Address, tokenId domain.TokenId, amount int64, tokenUri string) error {
	return im.guard.Run(c, func(c ctx.Ctx) error {
		if to.IsZero() || amount <= 0 {
			return domain.ErrInvalidInput
		}
		return im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
			class, err := im.classes.FindOne(c, contract)
			if err != nil {
				c.WithFields(log.Fields{
					"contract": contract,
					"err":      err,
				}).Error("classes.FindOne failed")
				return err
			}
			if !caller.Equals(class.Creator) {
				return domain.ErrUnauthorized
			}

			switch class.Kind {
			case nft.KindSingle:
				if amount != 1 {
					return domain.ErrInvalidInput
				}
				now := time.Now()
				return im.items.Insert(c, &nft.Item{
					Contract: class.Address,
					TokenId:  tokenId,
					Owner:    to,
					TokenUri: tokenUri,
					MintedAt: &now,
				})
			case nft.KindMulti:
				_, err := im.holdings.Increment(c, nft.HoldingId{Contract: class.Address, TokenId: tokenId, Owner: to}, amount)
				return err
			default:
				return domain.ErrInvalidInput
			}
		})
	})
}

func (im *impl) OwnerOf(c ctx.Ctx, contract domain.Address, tokenId domain.TokenId) (domain.Address, error) {
	item, err := im.items.FindOne(c, nft.ItemId{Contract: contract, TokenId: tokenId})
	if err != nil {
		return "", err
	}
	return item.Owner, nil
}

func (im *impl) BalanceOf(c ctx.Ctx, contract domain.Address, tokenId domain.TokenId, owner domain.Address) (int64, error) {
	class, err := im.classes.FindOne(c, contract)
	if err != nil {
		c.WithFields(log.Fields{
			"contract": contract,
			"err":      err,
		}).Error("classes.FindOne failed")
		return 0, err
	}

	switch class.Kind {
	case nft.KindSingle:
		item, err := im.items.FindOne(c, nft.ItemId{Contract: contract, TokenId: tokenId})
		if err == domain.ErrNotFound {
			return 0, nil
		} else if err != nil {
			return 0, err
		}
		if item.Owner.Equals(owner) {
			return 1, nil
		}
		return 0, nil
	default:
		holding, err := im.holdings.FindOne(c, nft.HoldingId{Contract: contract, TokenId: tokenId, Owner: owner})
		if err == domain.ErrNotFound {
			return 0, nil
		} else if err != nil {
			return 0, err
		}
		return holding.Balance, nil
	}
}

func (im *impl) FindItems(c ctx.Ctx, opts ...nft.ItemFindAllOptionsFunc) ([]*nft.Item, error) {
	return im.items.FindAll(c, opts...)
}

func (im *impl) FindHoldings(c ctx.Ctx, opts ...nft.HoldingFindAllOptionsFunc) ([]*nft.Holding, error) {
	return im.holdings.FindAll(c, opts...)
}

func (im *impl) SetApprovalForAll(c ctx.Ctx, owner domain.Address, contract domain.Address, operator domain.Address, approved bool) error {
	return im.guard.Run(c, func(c ctx.Ctx) error {
		if operator.IsZero() || operator.Equals(owner) {
			return domain.ErrInvalidInput
		}
		if _, err := im.classes.FindOne(c, contract); err != nil {
			c.WithFields(log.Fields{
				"contract": contract,
				"err":      err,
			}).Error("classes.FindOne failed")
			return err
		}
		now := time.Now()
		return im.approvals.Upsert(c, &nft.Approval{
			Contract:  contract,
			Owner:     owner,
			Operator:  operator,
			Approved:  approved,
			UpdatedAt: &now,
		})
	})
}

func (im *impl) IsApprovedForAll(c ctx.Ctx, contract domain.Address, owner domain.Address, operator domain.Address) (bool, error) {
	approval, err := im.approvals.FindOne(c, nft.ApprovalId{Contract: contract, Owner: owner, Operator: operator})
	if err == domain.ErrNotFound {
		return false, nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"contract": contract,
			"owner":    owner,
			"operator": operator,
			"err":      err,
		}).Error("approvals.FindOne failed")
		return false, err
	}
	return approval.Approved, nil
}

func (im *impl) TransferSingle(c ctx.Ctx, operator domain.Address, contract domain.Address, from domain.Address, to domain.Address, tokenId domain.TokenId) error {
	return im.guard.Run(c, func(c ctx.Ctx) error {
		if to.IsZero() {
			return domain.ErrInvalidInput
		}
		return im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
			class, err := im.classes.FindOne(c, contract)
			if err != nil {
				c.WithFields(log.Fields{
					"contract": contract,
					"err":      err,
				}).Error("classes.FindOne failed")
				return err
			}
			if class.Kind != nft.KindSingle {
				return domain.ErrInvalidInput
			}

			item, err := im.items.FindOne(c, nft.ItemId{Contract: contract, TokenId: tokenId})
			if err != nil {
				c.WithFields(log.Fields{
					"contract": contract,
					"tokenId":  tokenId,
					"err":      err,
				}).Error("items.FindOne failed")
				return err
			}
			if !item.Owner.Equals(from) {
				return domain.ErrInvalidState
			}

			if err := im.requireOperator(c, contract, from, operator); err != nil {
				return err
			}

			now := time.Now()
			owner := to.ToLower()
			return im.items.Update(c, item.ToId(), nft.ItemPatchable{
				Owner:     &owner,
				UpdatedAt: &now,
			})
		})
	})
}

func (im *impl) TransferUnits(c ctx.Ctx, operator domain.Address, contract domain.Address, from domain.Address, to domain.Address, tokenId domain.TokenId, amount int64) error {
	return im.guard.Run(c, func(c ctx.Ctx) error {
		if to.IsZero() || amount <= 0 {
			return domain.ErrInvalidInput
		}
		return im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
			class, err := im.classes.FindOne(c, contract)
			if err != nil {
				c.WithFields(log.Fields{
					"contract": contract,
					"err":      err,
				}).Error("classes.FindOne failed")
				return err
			}
			if class.Kind != nft.KindMulti {
				return domain.ErrInvalidInput
			}

			if err := im.requireOperator(c, contract, from, operator); err != nil {
				return err
			}

			holding, err := im.holdings.FindOne(c, nft.HoldingId{Contract: contract, TokenId: tokenId, Owner: from})
			if err == domain.ErrNotFound {
				return domain.ErrInsufficientBalance
			} else if err != nil {
				c.WithFields(log.Fields{
					"contract": contract,
					"tokenId":  tokenId,
					"owner":    from,
					"err":      err,
				}).Error("holdings.FindOne failed")
				return err
			}
			if holding.Balance < amount {
				return domain.ErrInsufficientBalance
			}

			if _, err := im.holdings.Increment(c, holding.ToId(), -amount); err != nil {
				return err
			}
			_, err = im.holdings.Increment(c, nft.HoldingId{Contract: contract, TokenId: tokenId, Owner: to}, amount)
			return err
		})
	})
}

// requireOperator allows the holder or an operator the holder has
// approved for the class.
func (im *impl) requireOperator(c ctx.Ctx, contract domain.Address, owner domain.Address, operator domain.Address) error {
	if operator.Equals(owner) {
		return nil
	}
	approved, err := im.IsApprovedForAll(c, contract, owner, operator)
	if err != nil {
		return err
	}
	if !approved {
		return domain.ErrUnauthorized
	}
	return nil
}
