package http

import (
	"math/big"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/delivery"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/marketplace"
	"github.com/mintora/goledger/middleware"
	authMiddleware "github.com/mintora/goledger/stores/auth/delivery/http/middleware"
)

type handler struct {
	marketplace marketplace.UseCase
}

// New registers marketplace endpoints
func New(e *echo.Echo, mk marketplace.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{
		marketplace: mk,
	}

	g := e.Group("/marketplace")
	g.GET("/listings", h.getListings)
	g.GET("/listings/:id", h.getListing)
	g.POST("/listings", h.list, authMiddleware.Auth())
	g.POST("/listings/:id/buy", h.buy, authMiddleware.Auth())
	g.POST("/listings/:id/bids", h.placeBid, authMiddleware.Auth())
	g.POST("/listings/:id/claim", h.claim, authMiddleware.Auth())
	g.DELETE("/listings/:id", h.cancel, authMiddleware.Auth())

	g.GET("/settings", h.getSettings)
	g.GET("/blacklist", h.getBlacklist)

	// admin, the program checks the owner principal itself
	g.PATCH("/settings/buyerFee", h.setBuyerFeeBps, authMiddleware.Auth())
	g.PATCH("/settings/sellerFee", h.setSellerFeeBps, authMiddleware.Auth())
	g.PATCH("/settings/treasury", h.setTreasury, authMiddleware.Auth())
	g.POST("/blacklist", h.blacklistUser, authMiddleware.Auth())
	g.DELETE("/blacklist/:account", h.removeFromBlacklist, middleware.IsValidAddress("account"), authMiddleware.Auth())
}

// getListings
//
//	@Summary		List listings
//	@Description	Query listings with filters and pagination
//	@Tags			marketplace
//	@Produce		json
//	@Param			seller			query		string	false	"filter by seller"
//	@Param			assetContract	query		string	false	"filter by asset contract"
//	@Param			payToken		query		string	false	"filter by pay token"
//	@Param			isAuction		query		bool	false	"filter auctions"
//	@Param			claimed			query		bool	false	"filter claimed"
//	@Param			offset			query		int		false	"paging offset"
//	@Param			limit			query		int		false	"paging size"
//	@Success		200				{object}	object{data=marketplace.ListingResult}
//	@Failure		500
//	@Router			/marketplace/listings [get]
func (h *handler) getListings(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Seller        *domain.Address `query:"seller"`
		AssetContract *domain.Address `query:"assetContract"`
		PayToken      *domain.Address `query:"payToken"`
		IsAuction     *bool           `query:"isAuction"`
		Claimed       *bool           `query:"claimed"`
		SortBy        *string         `query:"sortBy"`
		SortDir       *domain.SortDir `query:"sortDir"`
		Offset        int32           `query:"offset"`
		Limit         int32           `query:"limit"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	opts := []marketplace.FindAllOptionsFunc{
		marketplace.WithPagination(p.Offset, p.Limit),
	}
	if p.Seller != nil {
		opts = append(opts, marketplace.WithSeller(*p.Seller))
	}
	if p.AssetContract != nil {
		opts = append(opts, marketplace.WithAssetContract(*p.AssetContract))
	}
	if p.PayToken != nil {
		opts = append(opts, marketplace.WithPayToken(*p.PayToken))
	}
	if p.IsAuction != nil {
		opts = append(opts, marketplace.WithIsAuction(*p.IsAuction))
	}
	if p.Claimed != nil {
		opts = append(opts, marketplace.WithClaimed(*p.Claimed))
	}
	if p.SortBy != nil && p.SortDir != nil {
		opts = append(opts, marketplace.WithSort(*p.SortBy, *p.SortDir))
	}

	res, err := h.marketplace.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getListing
//
//	@Summary		Get listing
//	@Tags			marketplace
//	@Produce		json
//	@Param			id	path		string	true	"listing id"
//	@Success		200	{object}	object{data=marketplace.Listing}
//	@Failure		404
//	@Router			/marketplace/listings/{id} [get]
func (h *handler) getListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	id := marketplace.ListingId(c.Param("id"))
	listing, err := h.marketplace.Get(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, listing)
}

// list
//
//	@Summary		Create listing
//	@Description	List an asset at a fixed price or start an auction. The asset moves into program custody
//	@Tags			marketplace
//	@Accept			json
//	@Produce		json
//	@Param			params	body		http.list.payload	true	"params"
//	@Success		201		{object}	object{data=marketplace.Listing}
//	@Failure		400
//	@Failure		403
//	@Failure		409
//	@Security		ApiKeyAuth
//	@Router			/marketplace/listings [post]
func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	seller := c.Get("address").(domain.Address)

	type payload struct {
		AssetContract      domain.Address `json:"assetContract"`
		AssetId            domain.TokenId `json:"assetId"`
		Price              string         `json:"price"`
		PayToken           domain.Address `json:"payToken"` // empty for the native coin
		IsAuction          bool           `json:"isAuction"`
		AuctionDurationSec int64          `json:"auctionDurationSec"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	price, err := domain.ParseAmount(p.Price)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	duration := time.Duration(p.AuctionDurationSec) * time.Second
	listing, err := h.marketplace.List(ctx, seller, p.AssetContract, p.AssetId, price, p.PayToken, p.IsAuction, duration)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, listing)
}

// buy
//
//	@Summary		Buy listing
//	@Description	Buy a fixed-price listing. attachedValue must equal price plus buyer fee for native listings
//	@Tags			marketplace
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string			true	"listing id"
//	@Param			params	body	http.buy.payload	true	"params"
//	@Success		200
//	@Failure		402
//	@Failure		403
//	@Failure		404
//	@Failure		409
//	@Security		ApiKeyAuth
//	@Router			/marketplace/listings/{id}/buy [post]
func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	buyer := c.Get("address").(domain.Address)
	id := marketplace.ListingId(c.Param("id"))

	type payload struct {
		AttachedValue string `json:"attachedValue"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	attached, err := parseOptionalAmount(p.AttachedValue)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.marketplace.Buy(ctx, buyer, id, attached); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

// placeBid
//
//	@Summary		Place bid
//	@Description	Bid on an open auction. The bid amount is escrowed and the previous bid refunded
//	@Tags			marketplace
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string					true	"listing id"
//	@Param			params	body	http.placeBid.payload	true	"params"
//	@Success		200
//	@Failure		402
//	@Failure		403
//	@Failure		404
//	@Failure		409
//	@Security		ApiKeyAuth
//	@Router			/marketplace/listings/{id}/bids [post]
func (h *handler) placeBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	bidder := c.Get("address").(domain.Address)
	id := marketplace.ListingId(c.Param("id"))

	type payload struct {
		Amount        string `json:"amount"`
		AttachedValue string `json:"attachedValue"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	amount, err := domain.ParseAmount(p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	attached, err := parseOptionalAmount(p.AttachedValue)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.marketplace.PlaceBid(ctx, bidder, id, amount, attached); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

// claim
//
//	@Summary		Claim auction
//	@Description	Settle an ended auction. The winning bidder, or the seller once the reserve is met, may claim
//	@Tags			marketplace
//	@Produce		json
//	@Param			id	path	string	true	"listing id"
//	@Success		200
//	@Failure		403
//	@Failure		404
//	@Failure		409
//	@Security		ApiKeyAuth
//	@Router			/marketplace/listings/{id}/claim [post]
func (h *handler) claim(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	claimer := c.Get("address").(domain.Address)
	id := marketplace.ListingId(c.Param("id"))

	if err := h.marketplace.Claim(ctx, claimer, id); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

// cancel
//
//	@Summary		Cancel listing
//	@Description	Cancel an own listing and reclaim the asset. Auctions only before the end and without bids
//	@Tags			marketplace
//	@Produce		json
//	@Param			id	path	string	true	"listing id"
//	@Success		200
//	@Failure		403
//	@Failure		404
//	@Failure		409
//	@Security		ApiKeyAuth
//	@Router			/marketplace/listings/{id} [delete]
func (h *handler) cancel(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)
	id := marketplace.ListingId(c.Param("id"))

	if err := h.marketplace.Cancel(ctx, caller, id); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

// getSettings
//
//	@Summary		Get marketplace settings
//	@Tags			marketplace
//	@Produce		json
//	@Success		200	{object}	object{data=marketplace.Settings}
//	@Failure		500
//	@Router			/marketplace/settings [get]
func (h *handler) getSettings(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	settings, err := h.marketplace.GetSettings(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, settings)
}

// getBlacklist
//
//	@Summary		Get blacklist
//	@Tags			marketplace
//	@Produce		json
//	@Success		200	{object}	object{data=[]marketplace.BlacklistEntry}
//	@Failure		500
//	@Router			/marketplace/blacklist [get]
func (h *handler) getBlacklist(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	entries, err := h.marketplace.GetBlacklist(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, entries)
}

// setBuyerFeeBps
//
//	@Summary		Set buyer fee
//	@Description	Owner only. Fee in basis points charged on top of the price
//	@Tags			marketplace
//	@Accept			json
//	@Produce		json
//	@Param			params	body	http.setBuyerFeeBps.payload	true	"params"
//	@Success		200
//	@Failure		400
//	@Failure		403
//	@Security		ApiKeyAuth
//	@Router			/marketplace/settings/buyerFee [patch]
func (h *handler) setBuyerFeeBps(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type payload struct {
		Bps int64 `json:"bps"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.marketplace.SetBuyerFeeBps(ctx, caller, p.Bps); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

// setSellerFeeBps
//
//	@Summary		Set seller fee
//	@Description	Owner only. Fee in basis points deducted from the seller proceeds
//	@Tags			marketplace
//	@Accept			json
//	@Produce		json
//	@Param			params	body	http.setSellerFeeBps.payload	true	"params"
//	@Success		200
//	@Failure		400
//	@Failure		403
//	@Security		ApiKeyAuth
//	@Router			/marketplace/settings/sellerFee [patch]
func (h *handler) setSellerFeeBps(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type payload struct {
		Bps int64 `json:"bps"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.marketplace.SetSellerFeeBps(ctx, caller, p.Bps); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

// setTreasury
//
//	@Summary		Set treasury
//	@Description	Owner only. Fee receiver for buyer and seller fees
//	@Tags			marketplace
//	@Accept			json
//	@Produce		json
//	@Param			params	body	http.setTreasury.payload	true	"params"
//	@Success		200
//	@Failure		400
//	@Failure		403
//	@Security		ApiKeyAuth
//	@Router			/marketplace/settings/treasury [patch]
func (h *handler) setTreasury(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type payload struct {
		Treasury domain.Address `json:"treasury"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.marketplace.SetTreasury(ctx, caller, p.Treasury); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

// blacklistUser
//
//	@Summary		Blacklist user
//	@Description	Owner only. A blacklisted user is barred from every listing operation
//	@Tags			marketplace
//	@Accept			json
//	@Produce		json
//	@Param			params	body	http.blacklistUser.payload	true	"params"
//	@Success		200
//	@Failure		403
//	@Failure		409
//	@Security		ApiKeyAuth
//	@Router			/marketplace/blacklist [post]
func (h *handler) blacklistUser(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type payload struct {
		Account domain.Address `json:"account"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.marketplace.BlacklistUser(ctx, caller, p.Account); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

// removeFromBlacklist
//
//	@Summary		Remove user from blacklist
//	@Description	Owner only
//	@Tags			marketplace
//	@Produce		json
//	@Param			account	path	string	true	"account address"
//	@Success		200
//	@Failure		403
//	@Failure		404
//	@Security		ApiKeyAuth
//	@Router			/marketplace/blacklist/{account} [delete]
func (h *handler) removeFromBlacklist(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)
	user := domain.Address(c.Param("account"))

	if err := h.marketplace.RemoveUserFromBlacklist(ctx, caller, user); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

// parseOptionalAmount treats an absent value as no attachment at all,
// which is different from attaching zero.
func parseOptionalAmount(s string) (*big.Int, error) {
	if s == "" {
		return nil, nil
	}
	return domain.ParseAmount(s)
}
