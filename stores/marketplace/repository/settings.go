package repository

import (
	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/log"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/marketplace"
	"github.com/mintora/goledger/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

var settingsSelector = bson.M{"key": marketplace.SettingsKey}

type settingsImpl struct {
	q query.Mongo
}

func NewSettingsRepo(q query.Mongo) marketplace.SettingsRepo {
	return &settingsImpl{q}
}

func (im *settingsImpl) Get(c ctx.Ctx) (*marketplace.Settings, error) {
	var settings marketplace.Settings
	if err := im.q.FindOne(c, domain.TableMarketSettings, settingsSelector, &settings); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return &settings, nil
}

func (im *settingsImpl) Upsert(c ctx.Ctx, settings *marketplace.Settings) error {
	settings.Key = marketplace.SettingsKey
	settings.Owner = settings.Owner.ToLower()
	settings.Treasury = settings.Treasury.ToLower()
	if err := im.q.Upsert(c, domain.TableMarketSettings, settingsSelector, settings); err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *settingsImpl) Update(c ctx.Ctx, patchable marketplace.SettingsPatchable) error {
	if patchable.Owner != nil {
		lowered := patchable.Owner.ToLower()
		patchable.Owner = &lowered
	}
	if patchable.Treasury != nil {
		lowered := patchable.Treasury.ToLower()
		patchable.Treasury = &lowered
	}
	if err := im.q.Patch(c, domain.TableMarketSettings, settingsSelector, patchable); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}
