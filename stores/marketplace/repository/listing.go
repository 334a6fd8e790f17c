package repository

import (
	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/log"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/marketplace"
	"github.com/mintora/goledger/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type listingImpl struct {
	q query.Mongo
}

func NewListingRepo(q query.Mongo) marketplace.ListingRepo {
	return &listingImpl{q}
}

func (im *listingImpl) FindOne(c ctx.Ctx, id marketplace.ListingId) (*marketplace.Listing, error) {
	var listing marketplace.Listing
	qry := bson.M{"id": id.String()}
	if err := im.q.FindOne(c, domain.TableListings, qry, &listing); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return &listing, nil
}

func makeQuery(options marketplace.FindAllOptions) bson.M {
	qry := bson.M{}

	if options.Seller != nil {
		qry["seller"] = options.Seller.ToLower()
	}

	if options.AssetContract != nil {
		qry["assetContract"] = options.AssetContract.ToLower()
	}

	if options.PayToken != nil {
		qry["payToken"] = options.PayToken.ToLower()
	}

	if options.IsAuction != nil {
		qry["isAuction"] = *options.IsAuction
	}

	if options.Claimed != nil {
		qry["claimed"] = *options.Claimed
	}

	return qry
}

func (im *listingImpl) FindAll(c ctx.Ctx, opts ...marketplace.FindAllOptionsFunc) ([]*marketplace.Listing, error) {
	options, err := marketplace.GetFindAllOptions(opts...)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("failed to GetFindAllOptions")
		return nil, err
	}

	offset := int32(0)
	limit := int32(0)
	sort := "-createdAt"
	qry := makeQuery(options)

	if options.Offset != nil {
		offset = *options.Offset
	}

	if options.Limit != nil {
		limit = *options.Limit
	}

	if options.SortBy != nil && options.SortDir != nil {
		sort = *options.SortBy
		if *options.SortDir == domain.SortDirDesc {
			sort = "-" + sort
		}
	}

	res := []*marketplace.Listing{}
	if err := im.q.Search(c, domain.TableListings, int(offset), int(limit), sort, qry, &res); err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *listingImpl) Count(c ctx.Ctx, opts ...marketplace.FindAllOptionsFunc) (int, error) {
	options, err := marketplace.GetFindAllOptions(opts...)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("failed to GetFindAllOptions")
		return 0, err
	}

	count, err := im.q.Count(c, domain.TableListings, makeQuery(options))
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("q.Count failed")
		return 0, err
	}
	return count, nil
}

func (im *listingImpl) Insert(c ctx.Ctx, listing *marketplace.Listing) error {
	listing.LowerCase()
	if err := im.q.Insert(c, domain.TableListings, listing); err == query.ErrDuplicateKey {
		return domain.ErrAlreadyListed
	} else if err != nil {
		c.WithFields(log.Fields{
			"id":  listing.Id,
			"err": err,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *listingImpl) Update(c ctx.Ctx, id marketplace.ListingId, patchable marketplace.ListingPatchable) error {
	selector := bson.M{"id": id.String()}
	if patchable.HighestBidder != nil {
		lowered := patchable.HighestBidder.ToLower()
		patchable.HighestBidder = &lowered
	}
	if err := im.q.Patch(c, domain.TableListings, selector, patchable); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}

func (im *listingImpl) Remove(c ctx.Ctx, id marketplace.ListingId) error {
	selector := bson.M{"id": id.String()}
	if err := im.q.Remove(c, domain.TableListings, selector); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("q.Remove failed")
		return err
	}
	return nil
}
