package usecase

import (
	"math/big"
	"time"

	"github.com/viney-shih/goroutines"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/execution"
	"github.com/mintora/goledger/base/log"
	"github.com/mintora/goledger/base/pricefmt"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/bank"
	"github.com/mintora/goledger/domain/event"
	"github.com/mintora/goledger/domain/fungible"
	"github.com/mintora/goledger/domain/marketplace"
	"github.com/mintora/goledger/service/query"
)

type MarketplaceUseCaseCfg struct {
	ListingRepo     marketplace.ListingRepo
	SettingsRepo    marketplace.SettingsRepo
	BlacklistRepo   marketplace.BlacklistRepo
	AssetAdapter    marketplace.AssetAdapter
	BankUseCase     bank.UseCase
	FungibleUseCase fungible.UseCase
	EventUseCase    event.UseCase
	Formatter       pricefmt.Formatter
	Q               query.Mongo
	Guard           *execution.Guard
	// Program is the custody principal. Escrowed assets and funds are
	// held under this address between listing and settlement.
	Program domain.Address
}

type impl struct {
	listings  marketplace.ListingRepo
	settings  marketplace.SettingsRepo
	blacklist marketplace.BlacklistRepo
	adapter   marketplace.AssetAdapter
	bank      bank.UseCase
	fungible  fungible.UseCase
	events    event.UseCase
	formatter pricefmt.Formatter
	q         query.Mongo
	guard     *execution.Guard
	program   domain.Address
}

// New creates marketplace usecase
func New(cfg *MarketplaceUseCaseCfg) marketplace.UseCase {
	return &impl{
		listings:  cfg.ListingRepo,
		settings:  cfg.SettingsRepo,
		blacklist: cfg.BlacklistRepo,
		adapter:   cfg.AssetAdapter,
		bank:      cfg.BankUseCase,
		fungible:  cfg.FungibleUseCase,
		events:    cfg.EventUseCase,
		formatter: cfg.Formatter,
		q:         cfg.Q,
		guard:     cfg.Guard,
		program:   cfg.Program.ToLower(),
	}
}

func (im *impl) List(c ctx.Ctx, seller domain.Address, assetContract domain.Address, assetId domain.TokenId, price *big.Int, payToken domain.Address, isAuction bool, auctionDuration time.Duration) (*marketplace.Listing, error) {
	var listing *marketplace.Listing
	err := im.guard.Run(c, func(c ctx.Ctx) error {
		if err := im.requireNotBlacklisted(c, seller); err != nil {
			return err
		}
		if price == nil || price.Sign() <= 0 {
			return domain.ErrInvalidInput
		}
		if isAuction && auctionDuration <= 0 {
			return domain.ErrInvalidInput
		}

		displayPrice, err := im.formatter.DisplayString(c, payToken, price)
		if err == domain.ErrNotFound {
			return domain.ErrInvalidInput
		} else if err != nil {
			c.WithFields(log.Fields{
				"payToken": payToken,
				"err":      err,
			}).Error("formatter.DisplayString failed")
			return err
		}

		id := marketplace.ToListingId(assetContract, assetId, seller)
		return im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
			if _, err := im.listings.FindOne(c, id); err == nil {
				return domain.ErrAlreadyListed
			} else if err != domain.ErrNotFound {
				c.WithFields(log.Fields{
					"id":  id,
					"err": err,
				}).Error("listings.FindOne failed")
				return err
			}

			now := time.Now()
			listing = &marketplace.Listing{
				Id:            id,
				Seller:        seller,
				AssetContract: assetContract,
				AssetId:       assetId,
				Price:         price.String(),
				PayToken:      payToken,
				IsAuction:     isAuction,
				DisplayPrice:  displayPrice,
				CreatedAt:     &now,
			}
			if isAuction {
				end := now.Add(auctionDuration)
				listing.AuctionEndTime = &end
			}

			if err := im.listings.Insert(c, listing); err != nil {
				return err
			}

			if err := im.adapter.TransferAsset(c, assetContract, seller, im.program, assetId); err != nil {
				c.WithFields(log.Fields{
					"assetContract": assetContract,
					"assetId":       assetId,
					"seller":        seller,
					"err":           err,
				}).Error("adapter.TransferAsset failed")
				return err
			}

			_, err := im.events.Emit(c, &event.Event{
				Type:           event.TypeListed,
				ListingId:      id.String(),
				Account:        seller,
				Seller:         seller,
				AssetContract:  assetContract,
				AssetId:        assetId,
				Price:          listing.Price,
				PayToken:       payToken,
				IsAuction:      &listing.IsAuction,
				AuctionEndTime: listing.AuctionEndTime,
			})
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return listing, nil
}

func (im *impl) Buy(c ctx.Ctx, buyer domain.Address, id marketplace.ListingId, attachedValue *big.Int) error {
	return im.guard.Run(c, func(c ctx.Ctx) error {
		if err := im.requireNotBlacklisted(c, buyer); err != nil {
			return err
		}
		return im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
			listing, err := im.findListing(c, id)
			if err != nil {
				return err
			}
			if listing.IsAuction {
				return domain.ErrInvalidState
			}

			settings, err := im.currentSettings(c)
			if err != nil {
				return err
			}

			price, err := domain.ParseAmount(listing.Price)
			if err != nil {
				c.WithFields(log.Fields{
					"price": listing.Price,
					"err":   err,
				}).Error("domain.ParseAmount failed")
				return err
			}
			buyerFee := feeOf(price, settings.BuyerFeeBps)
			total := new(big.Int).Add(price, buyerFee)

			// listing is retired before any value moves
			if err := im.listings.Remove(c, id); err != nil {
				return err
			}

			if err := im.payIn(c, listing.PayToken, buyer, total, attachedValue); err != nil {
				return err
			}
			if err := im.settle(c, settings, listing.PayToken, listing.Seller, price, buyerFee); err != nil {
				return err
			}
			if err := im.adapter.TransferAsset(c, listing.AssetContract, im.program, buyer, listing.AssetId); err != nil {
				c.WithFields(log.Fields{
					"assetContract": listing.AssetContract,
					"assetId":       listing.AssetId,
					"buyer":         buyer,
					"err":           err,
				}).Error("adapter.TransferAsset failed")
				return err
			}

			_, err = im.events.Emit(c, &event.Event{
				Type:          event.TypeBought,
				ListingId:     id.String(),
				Account:       buyer,
				Seller:        listing.Seller,
				AssetContract: listing.AssetContract,
				AssetId:       listing.AssetId,
				Price:         listing.Price,
				PayToken:      listing.PayToken,
				Amount:        total.String(),
			})
			return err
		})
	})
}

func (im *impl) PlaceBid(c ctx.Ctx, bidder domain.Address, id marketplace.ListingId, amount *big.Int, attachedValue *big.Int) error {
	return im.guard.Run(c, func(c ctx.Ctx) error {
		if err := im.requireNotBlacklisted(c, bidder); err != nil {
			return err
		}
		if amount == nil || amount.Sign() <= 0 {
			return domain.ErrInvalidInput
		}
		return im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
			listing, err := im.findListing(c, id)
			if err != nil {
				return err
			}
			if !listing.Open(time.Now()) {
				return domain.ErrInvalidState
			}

			highest := new(big.Int)
			if listing.HighestBid != "" {
				if highest, err = domain.ParseAmount(listing.HighestBid); err != nil {
					c.WithFields(log.Fields{
						"highestBid": listing.HighestBid,
						"err":        err,
					}).Error("domain.ParseAmount failed")
					return err
				}
			}
			minBid := new(big.Int).Add(highest, marketplace.MinBidStep)
			if amount.Cmp(minBid) < 0 {
				return domain.ErrInsufficientPayment
			}

			if err := im.payIn(c, listing.PayToken, bidder, amount, attachedValue); err != nil {
				return err
			}

			// the outbid bidder is refunded by push, before the new bid
			// is recorded; an undeliverable refund rejects the bid
			if listing.HasBids() {
				if err := im.payOut(c, listing.PayToken, listing.HighestBidder, highest); err != nil {
					c.WithFields(log.Fields{
						"id":     id,
						"bidder": listing.HighestBidder,
						"amount": highest.String(),
						"err":    err,
					}).Error("failed to refund outbid bidder")
					return domain.ErrTransferFailure
				}
			}

			bid := amount.String()
			newBidder := bidder.ToLower()
			if err := im.listings.Update(c, id, marketplace.ListingPatchable{
				HighestBid:    &bid,
				HighestBidder: &newBidder,
			}); err != nil {
				return err
			}

			_, err = im.events.Emit(c, &event.Event{
				Type:      event.TypeBidPlaced,
				ListingId: id.String(),
				Account:   bidder,
				Amount:    amount.String(),
			})
			return err
		})
	})
}

func (im *impl) Claim(c ctx.Ctx, claimer domain.Address, id marketplace.ListingId) error {
	return im.guard.Run(c, func(c ctx.Ctx) error {
		if err := im.requireNotBlacklisted(c, claimer); err != nil {
			return err
		}
		return im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
			listing, err := im.findListing(c, id)
			if err != nil {
				return err
			}
			if !listing.IsAuction || listing.Claimed || !listing.AuctionEnded(time.Now()) {
				return domain.ErrInvalidState
			}

			highest := new(big.Int)
			if listing.HighestBid != "" {
				if highest, err = domain.ParseAmount(listing.HighestBid); err != nil {
					c.WithFields(log.Fields{
						"highestBid": listing.HighestBid,
						"err":        err,
					}).Error("domain.ParseAmount failed")
					return err
				}
			}
			price, err := domain.ParseAmount(listing.Price)
			if err != nil {
				c.WithFields(log.Fields{
					"price": listing.Price,
					"err":   err,
				}).Error("domain.ParseAmount failed")
				return err
			}

			sellerMayClaim := claimer.Equals(listing.Seller) && highest.Cmp(price) >= 0
			winnerMayClaim := listing.HasBids() && claimer.Equals(listing.HighestBidder)
			if !sellerMayClaim && !winnerMayClaim {
				return domain.ErrUnauthorized
			}

			settings, err := im.currentSettings(c)
			if err != nil {
				return err
			}

			// the claimed mark lands before any value moves, a second
			// claim can never settle twice
			claimed := true
			if err := im.listings.Update(c, id, marketplace.ListingPatchable{Claimed: &claimed}); err != nil {
				return err
			}

			if err := im.settle(c, settings, listing.PayToken, listing.Seller, highest, new(big.Int)); err != nil {
				return err
			}
			if err := im.adapter.TransferAsset(c, listing.AssetContract, im.program, listing.HighestBidder, listing.AssetId); err != nil {
				c.WithFields(log.Fields{
					"assetContract": listing.AssetContract,
					"assetId":       listing.AssetId,
					"winner":        listing.HighestBidder,
					"err":           err,
				}).Error("adapter.TransferAsset failed")
				return err
			}

			_, err = im.events.Emit(c, &event.Event{
				Type:          event.TypeClaimed,
				ListingId:     id.String(),
				Account:       claimer,
				Seller:        listing.Seller,
				AssetContract: listing.AssetContract,
				AssetId:       listing.AssetId,
				PayToken:      listing.PayToken,
				Winner:        listing.HighestBidder,
				Amount:        highest.String(),
			})
			return err
		})
	})
}

func (im *impl) Cancel(c ctx.Ctx, caller domain.Address, id marketplace.ListingId) error {
	return im.guard.Run(c, func(c ctx.Ctx) error {
		if err := im.requireNotBlacklisted(c, caller); err != nil {
			return err
		}
		return im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
			listing, err := im.findListing(c, id)
			if err != nil {
				return err
			}
			if !caller.Equals(listing.Seller) {
				return domain.ErrUnauthorized
			}
			if listing.Claimed {
				return domain.ErrInvalidState
			}
			if listing.IsAuction && (listing.AuctionEnded(time.Now()) || listing.HasBids()) {
				return domain.ErrInvalidState
			}

			if err := im.listings.Remove(c, id); err != nil {
				return err
			}
			if err := im.adapter.TransferAsset(c, listing.AssetContract, im.program, listing.Seller, listing.AssetId); err != nil {
				c.WithFields(log.Fields{
					"assetContract": listing.AssetContract,
					"assetId":       listing.AssetId,
					"seller":        listing.Seller,
					"err":           err,
				}).Error("adapter.TransferAsset failed")
				return err
			}

			_, err = im.events.Emit(c, &event.Event{
				Type:      event.TypeListingCancelled,
				ListingId: id.String(),
				Account:   caller,
			})
			return err
		})
	})
}

func (im *impl) Get(c ctx.Ctx, id marketplace.ListingId) (*marketplace.Listing, error) {
	return im.listings.FindOne(c, id)
}

func (im *impl) FindAll(c ctx.Ctx, opts ...marketplace.FindAllOptionsFunc) (*marketplace.ListingResult, error) {
	res := &marketplace.ListingResult{}

	b := goroutines.NewBatch(2, goroutines.WithBatchSize(2))
	defer b.Close()
	b.Queue(func() (interface{}, error) {
		return im.listings.FindAll(c, opts...)
	})
	b.Queue(func() (interface{}, error) {
		return im.listings.Count(c, opts...)
	})
	b.QueueComplete()

	var firstErr error
	for ret := range b.Results() {
		if err := ret.Error(); err != nil {
			firstErr = err
			continue
		}
		switch v := ret.Value().(type) {
		case []*marketplace.Listing:
			res.Listings = v
		case int:
			res.Count = v
		}
	}
	if firstErr != nil {
		c.WithFields(log.Fields{"err": firstErr}).Error("listings.FindAll failed")
		return nil, firstErr
	}
	return res, nil
}

func (im *impl) findListing(c ctx.Ctx, id marketplace.ListingId) (*marketplace.Listing, error) {
	listing, err := im.listings.FindOne(c, id)
	if err == domain.ErrNotFound {
		return nil, err
	} else if err != nil {
		c.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("listings.FindOne failed")
		return nil, err
	}
	return listing, nil
}
