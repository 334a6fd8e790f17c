package usecase

import (
	"time"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/log"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/event"
	"github.com/mintora/goledger/domain/marketplace"
)

func (im *impl) SetBuyerFeeBps(c ctx.Ctx, caller domain.Address, bps int64) error {
	return im.setFeeBps(c, caller, bps, event.TypeBuyerFeeUpdated)
}

func (im *impl) SetSellerFeeBps(c ctx.Ctx, caller domain.Address, bps int64) error {
	return im.setFeeBps(c, caller, bps, event.TypeSellerFeeUpdated)
}

func (im *impl) setFeeBps(c ctx.Ctx, caller domain.Address, bps int64, eventType event.Type) error {
	return im.guard.Run(c, func(c ctx.Ctx) error {
		return im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
			settings, err := im.currentSettings(c)
			if err != nil {
				return err
			}
			if !caller.Equals(settings.Owner) {
				return domain.ErrUnauthorized
			}
			if !marketplace.ValidFeeBps(bps) {
				return domain.ErrInvalidInput
			}

			now := time.Now()
			patchable := marketplace.SettingsPatchable{UpdatedAt: &now}
			if eventType == event.TypeBuyerFeeUpdated {
				patchable.BuyerFeeBps = &bps
			} else {
				patchable.SellerFeeBps = &bps
			}
			if err := im.settings.Update(c, patchable); err != nil {
				return err
			}

			_, err = im.events.Emit(c, &event.Event{
				Type:    eventType,
				Account: caller,
				FeeBps:  &bps,
			})
			return err
		})
	})
}

func (im *impl) SetTreasury(c ctx.Ctx, caller domain.Address, treasury domain.Address) error {
	return im.guard.Run(c, func(c ctx.Ctx) error {
		return im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
			settings, err := im.currentSettings(c)
			if err != nil {
				return err
			}
			if !caller.Equals(settings.Owner) {
				return domain.ErrUnauthorized
			}
			if treasury.IsZero() || treasury.Equals(settings.Treasury) {
				return domain.ErrInvalidInput
			}

			now := time.Now()
			lowered := treasury.ToLower()
			return im.settings.Update(c, marketplace.SettingsPatchable{
				Treasury:  &lowered,
				UpdatedAt: &now,
			})
		})
	})
}

func (im *impl) BlacklistUser(c ctx.Ctx, caller domain.Address, user domain.Address) error {
	return im.guard.Run(c, func(c ctx.Ctx) error {
		return im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
			settings, err := im.currentSettings(c)
			if err != nil {
				return err
			}
			if !caller.Equals(settings.Owner) {
				return domain.ErrUnauthorized
			}
			if user.IsZero() {
				return domain.ErrInvalidInput
			}

			entry, err := im.blacklist.FindOne(c, user)
			if err != nil {
				return err
			}
			if entry != nil {
				return domain.ErrConflict
			}

			now := time.Now()
			if err := im.blacklist.Create(c, marketplace.BlacklistEntry{
				Address:   user,
				CreatedAt: &now,
			}); err != nil {
				return err
			}

			_, err = im.events.Emit(c, &event.Event{
				Type:    event.TypeUserBlacklisted,
				Account: user,
			})
			return err
		})
	})
}

func (im *impl) RemoveUserFromBlacklist(c ctx.Ctx, caller domain.Address, user domain.Address) error {
	return im.guard.Run(c, func(c ctx.Ctx) error {
		return im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
			settings, err := im.currentSettings(c)
			if err != nil {
				return err
			}
			if !caller.Equals(settings.Owner) {
				return domain.ErrUnauthorized
			}

			entry, err := im.blacklist.FindOne(c, user)
			if err != nil {
				return err
			}
			if entry == nil {
				return domain.ErrNotFound
			}

			if err := im.blacklist.Delete(c, user); err != nil {
				return err
			}

			_, err = im.events.Emit(c, &event.Event{
				Type:    event.TypeUserRemovedFromBlacklist,
				Account: user,
			})
			return err
		})
	})
}

func (im *impl) GetSettings(c ctx.Ctx) (*marketplace.Settings, error) {
	return im.settings.Get(c)
}

func (im *impl) GetBlacklist(c ctx.Ctx) ([]*marketplace.BlacklistEntry, error) {
	return im.blacklist.FindAll(c)
}

func (im *impl) currentSettings(c ctx.Ctx) (*marketplace.Settings, error) {
	settings, err := im.settings.Get(c)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("settings.Get failed")
		return nil, err
	}
	return settings, nil
}

func (im *impl) requireNotBlacklisted(c ctx.Ctx, user domain.Address) error {
	entry, err := im.blacklist.FindOne(c, user)
	if err != nil {
		c.WithFields(log.Fields{
			"user": user,
			"err":  err,
		}).Error("blacklist.FindOne failed")
		return err
	}
	if entry != nil {
		return domain.ErrUnauthorized
	}
	return nil
}
