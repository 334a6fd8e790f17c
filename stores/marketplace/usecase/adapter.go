package usecase

import (
	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/log"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/marketplace"
	"github.com/mintora/goledger/domain/nft"
)

type adapterImpl struct {
	nft      nft.UseCase
	operator domain.Address
}

// NewAssetAdapter probes the asset class's ownership model and
// dispatches to the matching transfer convention. The operator is the
// custody principal the transfers run under, so inbound pulls require
// the owner to have approved it for the class.
func NewAssetAdapter(nftUseCase nft.UseCase, operator domain.Address) marketplace.AssetAdapter {
	return &adapterImpl{
		nft:      nftUseCase,
		operator: operator,
	}
}

func (a *adapterImpl) TransferAsset(c ctx.Ctx, assetContract domain.Address, from domain.Address, to domain.Address, assetId domain.TokenId) error {
	class, err := a.nft.GetClass(c, assetContract)
	if err == domain.ErrNotFound {
		return domain.ErrUnsupportedAssetKind
	} else if err != nil {
		c.WithFields(log.Fields{
			"assetContract": assetContract,
			"err":           err,
		}).Error("nft.GetClass failed")
		return err
	}

	switch class.Kind {
	case nft.KindSingle:
		return a.nft.TransferSingle(c, a.operator, assetContract, from, to, assetId)
	case nft.KindMulti:
		return a.nft.TransferUnits(c, a.operator, assetContract, from, to, assetId, 1)
	default:
		return domain.ErrUnsupportedAssetKind
	}
}
