package marketplace

import (
	"time"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/domain"
)

// SettingsKey is the key of the single marketplace settings document.
const SettingsKey = "marketplace"

// Settings holds the owner principal and the fee configuration. Fees
// are expressed in basis points, 10000 = 100%.
type Settings struct {
	Key          string         `json:"-" bson:"key"`
	Owner        domain.Address `json:"owner" bson:"owner"`
	Treasury     domain.Address `json:"treasury" bson:"treasury"`
	BuyerFeeBps  int64          `json:"buyerFeeBps" bson:"buyerFeeBps"`
	SellerFeeBps int64          `json:"sellerFeeBps" bson:"sellerFeeBps"`
	UpdatedAt    *time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// ValidFeeBps reports whether a fee rate is within 0 to 10000 basis
// points. Rates are validated here, at configuration time, never at
// settlement time.
func ValidFeeBps(bps int64) bool {
	return bps >= 0 && bps <= 10000
}

type SettingsPatchable struct {
	Owner        *domain.Address `json:"owner" bson:"owner,omitempty"`
	Treasury     *domain.Address `json:"treasury" bson:"treasury,omitempty"`
	BuyerFeeBps  *int64          `json:"buyerFeeBps" bson:"buyerFeeBps,omitempty"`
	SellerFeeBps *int64          `json:"sellerFeeBps" bson:"sellerFeeBps,omitempty"`
	UpdatedAt    *time.Time      `json:"updatedAt" bson:"updatedAt,omitempty"`
}

type SettingsRepo interface {
	Get(c ctx.Ctx) (*Settings, error)
	Upsert(c ctx.Ctx, settings *Settings) error
	Update(c ctx.Ctx, patchable SettingsPatchable) error
}
