package usecase

import (
	"math/big"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/marketplace"
)

// feeOf computes a basis-point share of amount, rounding down.
func feeOf(amount *big.Int, bps int64) *big.Int {
	if bps == 0 {
		return new(big.Int)
	}
	fee := new(big.Int).Mul(amount, big.NewInt(bps))
	return fee.Div(fee, big.NewInt(10000))
}

// payIn collects amount from the payer into program custody. Native
// payments must attach the amount exactly, token payments must attach
// nothing and are pulled from the payer's allowance.
func (im *impl) payIn(c ctx.Ctx, payToken domain.Address, from domain.Address, amount *big.Int, attachedValue *big.Int) error {
	if payToken.IsZero() {
		if attachedValue == nil || attachedValue.Cmp(amount) != 0 {
			return domain.ErrInsufficientPayment
		}
		return im.bank.Transfer(c, from, im.program, amount)
	}
	if attachedValue != nil && attachedValue.Sign() != 0 {
		return domain.ErrInvalidInput
	}
	return im.fungible.TransferFrom(c, im.program, payToken, from, im.program, amount)
}

// payOut moves amount out of program custody to the recipient, in the
// listing currency.
func (im *impl) payOut(c ctx.Ctx, payToken domain.Address, to domain.Address, amount *big.Int) error {
	if amount.Sign() == 0 {
		return nil
	}
	if payToken.IsZero() {
		return im.bank.Transfer(c, im.program, to, amount)
	}
	return im.fungible.Transfer(c, payToken, im.program, to, amount)
}

// settle splits the consideration between the seller and the treasury.
// The seller fee is deducted from the consideration, any buyer fee was
// collected on top of it; both shares go to the treasury.
func (im *impl) settle(c ctx.Ctx, settings *marketplace.Settings, payToken domain.Address, seller domain.Address, consideration *big.Int, buyerFee *big.Int) error {
	sellerFee := feeOf(consideration, settings.SellerFeeBps)
	if err := im.payOut(c, payToken, seller, new(big.Int).Sub(consideration, sellerFee)); err != nil {
		return err
	}
	return im.payOut(c, payToken, settings.Treasury, new(big.Int).Add(sellerFee, buyerFee))
}
