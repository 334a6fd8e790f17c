package marketplace

import (
	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/domain"
)

// AssetAdapter moves custody of a non-fungible asset between two
// principals. It probes which ownership model the asset contract
// implements and dispatches to the matching transfer convention,
// so callers never branch on asset kind themselves. Contracts that
// implement neither model fail with domain.ErrUnsupportedAssetKind.
type AssetAdapter interface {
	TransferAsset(c ctx.Ctx, assetContract domain.Address, from domain.Address, to domain.Address, assetId domain.TokenId) error
}
