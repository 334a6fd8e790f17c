package usecase

import (
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/execution"
	"github.com/mintora/goledger/base/log"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/bank"
	"github.com/mintora/goledger/domain/escrow"
	"github.com/mintora/goledger/domain/event"
	"github.com/mintora/goledger/domain/fungible"
	"github.com/mintora/goledger/service/query"
)

type EscrowUseCaseCfg struct {
	SwapRepo        escrow.SwapRepo
	BankUseCase     bank.UseCase
	FungibleUseCase fungible.UseCase
	EventUseCase    event.UseCase
	Q               query.Mongo
	Guard           *execution.Guard
	// Program is the custody principal holding the maker side of every
	// open swap.
	Program domain.Address
}

type impl struct {
	swaps    escrow.SwapRepo
	bank     bank.UseCase
	fungible fungible.UseCase
	events   event.UseCase
	q        query.Mongo
	guard    *execution.Guard
	program  domain.Address
}

// New creates escrow usecase
func New(cfg *EscrowUseCaseCfg) escrow.UseCase {
	return &impl{
		swaps:    cfg.SwapRepo,
		bank:     cfg.BankUseCase,
		fungible: cfg.FungibleUseCase,
		events:   cfg.EventUseCase,
		q:        cfg.Q,
		guard:    cfg.Guard,
		program:  cfg.Program.ToLower(),
	}
}

func (im *impl) Create(c ctx.Ctx, maker domain.Address, makerToken domain.Address, makerAmount *big.Int, takerToken domain.Address, takerAmount *big.Int, taker domain.Address, attachedValue *big.Int) (*escrow.Swap, error) {
	var swap *escrow.Swap
	err := im.guard.Run(c, func(c ctx.Ctx) error {
		if makerAmount == nil || makerAmount.Sign() <= 0 {
			return domain.ErrInvalidInput
		}
		if takerAmount == nil || takerAmount.Sign() <= 0 {
			return domain.ErrInvalidInput
		}
		return im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
			now := time.Now()
			swap = &escrow.Swap{
				SwapId:      uuid.New().String(),
				Maker:       maker,
				MakerToken:  makerToken,
				MakerAmount: makerAmount.String(),
				TakerToken:  takerToken,
				TakerAmount: takerAmount.String(),
				Taker:       taker,
				Status:      escrow.StatusOpen,
				CreatedAt:   &now,
			}
			if err := im.swaps.Insert(c, swap); err != nil {
				return err
			}

			if err := im.payIn(c, makerToken, maker, makerAmount, attachedValue); err != nil {
				return err
			}

			_, err := im.events.Emit(c, &event.Event{
				Type:    event.TypeSwapCreated,
				SwapId:  swap.SwapId,
				Account: maker,
				Amount:  makerAmount.String(),
			})
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return swap, nil
}

func (im *impl) Execute(c ctx.Ctx, caller domain.Address, swapId string, attachedValue *big.Int) error {
	return im.guard.Run(c, func(c ctx.Ctx) error {
		return im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
			swap, err := im.findSwap(c, swapId)
			if err != nil {
				return err
			}
			if swap.Status != escrow.StatusOpen {
				return domain.ErrInvalidState
			}
			if !swap.Taker.IsZero() && !caller.Equals(swap.Taker) {
				return domain.ErrUnauthorized
			}

			makerAmount, err := domain.ParseAmount(swap.MakerAmount)
			if err != nil {
				c.WithFields(log.Fields{
					"makerAmount": swap.MakerAmount,
					"err":         err,
				}).Error("domain.ParseAmount failed")
				return err
			}
			takerAmount, err := domain.ParseAmount(swap.TakerAmount)
			if err != nil {
				c.WithFields(log.Fields{
					"takerAmount": swap.TakerAmount,
					"err":         err,
				}).Error("domain.ParseAmount failed")
				return err
			}

			// the swap is closed before any value moves
			now := time.Now()
			status := escrow.StatusExecuted
			executedBy := caller.ToLower()
			if err := im.swaps.Update(c, swapId, escrow.SwapPatchable{
				Status:     &status,
				ExecutedBy: &executedBy,
				ClosedAt:   &now,
			}); err != nil {
				return err
			}

			if err := im.payIn(c, swap.TakerToken, caller, takerAmount, attachedValue); err != nil {
				return err
			}
			if err := im.payOut(c, swap.TakerToken, swap.Maker, takerAmount); err != nil {
				return err
			}
			if err := im.payOut(c, swap.MakerToken, caller, makerAmount); err != nil {
				return err
			}

			_, err = im.events.Emit(c, &event.Event{
				Type:    event.TypeSwapExecuted,
				SwapId:  swapId,
				Account: caller,
			})
			return err
		})
	})
}

func (im *impl) Cancel(c ctx.Ctx, caller domain.Address, swapId string) error {
	return im.guard.Run(c, func(c ctx.Ctx) error {
		return im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
			swap, err := im.findSwap(c, swapId)
			if err != nil {
				return err
			}
			if !caller.Equals(swap.Maker) {
				return domain.ErrUnauthorized
			}
			if swap.Status != escrow.StatusOpen {
				return domain.ErrInvalidState
			}

			makerAmount, err := domain.ParseAmount(swap.MakerAmount)
			if err != nil {
				c.WithFields(log.Fields{
					"makerAmount": swap.MakerAmount,
					"err":         err,
				}).Error("domain.ParseAmount failed")
				return err
			}

			now := time.Now()
			status := escrow.StatusCancelled
			if err := im.swaps.Update(c, swapId, escrow.SwapPatchable{
				Status:   &status,
				ClosedAt: &now,
			}); err != nil {
				return err
			}

			if err := im.payOut(c, swap.MakerToken, swap.Maker, makerAmount); err != nil {
				return err
			}

			_, err = im.events.Emit(c, &event.Event{
				Type:    event.TypeSwapCancelled,
				SwapId:  swapId,
				Account: caller,
			})
			return err
		})
	})
}

func (im *impl) Get(c ctx.Ctx, swapId string) (*escrow.Swap, error) {
	return im.swaps.FindOne(c, swapId)
}

func (im *impl) FindAll(c ctx.Ctx, opts ...escrow.FindAllOptionsFunc) ([]*escrow.Swap, error) {
	return im.swaps.FindAll(c, opts...)
}

func (im *impl) findSwap(c ctx.Ctx, swapId string) (*escrow.Swap, error) {
	swap, err := im.swaps.FindOne(c, swapId)
	if err == domain.ErrNotFound {
		return nil, err
	} else if err != nil {
		c.WithFields(log.Fields{
			"swapId": swapId,
			"err":    err,
		}).Error("swaps.FindOne failed")
		return nil, err
	}
	return swap, nil
}

// payIn collects amount from the payer into escrow custody. Native
// payments must attach the amount exactly, token payments must attach
// nothing and are pulled from the payer's allowance.
func (im *impl) payIn(c ctx.Ctx, token domain.Address, from domain.Address, amount *big.Int, attachedValue *big.Int) error {
	if token.IsZero() {
		if attachedValue == nil || attachedValue.Cmp(amount) != 0 {
			return domain.ErrInsufficientPayment
		}
		return im.bank.Transfer(c, from, im.program, amount)
	}
	if attachedValue != nil && attachedValue.Sign() != 0 {
		return domain.ErrInvalidInput
	}
	return im.fungible.TransferFrom(c, im.program, token, from, im.program, amount)
}

func (im *impl) payOut(c ctx.Ctx, token domain.Address, to domain.Address, amount *big.Int) error {
	if amount.Sign() == 0 {
		return nil
	}
	if token.IsZero() {
		return im.bank.Transfer(c, im.program, to, amount)
	}
	return im.fungible.Transfer(c, token, im.program, to, amount)
}
