package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/delivery"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/nft"
	"github.com/mintora/goledger/middleware"
	authMiddleware "github.com/mintora/goledger/stores/auth/delivery/http/middleware"
)

type handler struct {
	nft nft.UseCase
}

// New registers asset class endpoints
func New(e *echo.Echo, uc nft.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{
		nft: uc,
	}

	g := e.Group("/nft")
	g.GET("/classes", h.getClasses, middleware.CacheHttp(30*time.Second))
	g.GET("/classes/:contract", h.getClass, middleware.IsValidAddress("contract"))
	g.GET("/classes/:contract/items", h.getItems, middleware.IsValidAddress("contract"))
	g.GET("/classes/:contract/items/:tokenId/owner", h.getOwner, middleware.IsValidAddress("contract"))
	g.GET("/classes/:contract/items/:tokenId/balance/:account", h.getBalance, middleware.IsValidAddress("contract"), middleware.IsValidAddress("account"))
	g.GET("/classes/:contract/approvals", h.isApprovedForAll, middleware.IsValidAddress("contract"))
	g.GET("/holdings", h.getHoldings)

	g.POST("/classes", h.createClass, authMiddleware.Auth())
	g.POST("/classes/:contract/mint", h.mint, middleware.IsValidAddress("contract"), authMiddleware.Auth())
	g.POST("/classes/:contract/transfer", h.transfer, middleware.IsValidAddress("contract"), authMiddleware.Auth())
	g.POST("/classes/:contract/approvals", h.setApprovalForAll, middleware.IsValidAddress("contract"), authMiddleware.Auth())
}

// getClasses
//
//	@Summary		List asset classes
//	@Tags			nft
//	@Produce		json
//	@Param			offset	query		int	false	"paging offset"
//	@Param			limit	query		int	false	"paging size"
//	@Success		200		{object}	object{data=[]nft.Class}
//	@Failure		500
//	@Router			/nft/classes [get]
func (h *handler) getClasses(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Offset int32 `query:"offset"`
		Limit  int32 `query:"limit"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	classes, err := h.nft.FindClasses(ctx, p.Offset, p.Limit)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, classes)
}

// getClass
//
//	@Summary		Get asset class
//	@Tags			nft
//	@Produce		json
//	@Param			contract	path		string	true	"class contract"
//	@Success		200			{object}	object{data=nft.Class}
//	@Failure		404
//	@Router			/nft/classes/{contract} [get]
func (h *handler) getClass(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	contract := domain.Address(c.Param("contract"))
	class, err := h.nft.GetClass(ctx, contract)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, class)
}

// getItems
//
//	@Summary		List items of a class
//	@Tags			nft
//	@Produce		json
//	@Param			contract	path		string	true	"class contract"
//	@Param			owner		query		string	false	"filter by owner, single kind only"
//	@Param			offset		query		int		false	"paging offset"
//	@Param			limit		query		int		false	"paging size"
//	@Success		200			{object}	object{data=[]nft.Item}
//	@Failure		500
//	@Router			/nft/classes/{contract}/items [get]
func (h *handler) getItems(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	contract := domain.Address(c.Param("contract"))

	type params struct {
		Owner  *domain.Address `query:"owner"`
		Offset int32           `query:"offset"`
		Limit  int32           `query:"limit"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	opts := []nft.ItemFindAllOptionsFunc{
		nft.WithItemContract(contract),
		nft.WithItemPagination(p.Offset, p.Limit),
	}
	if p.Owner != nil {
		opts = append(opts, nft.WithItemOwner(*p.Owner))
	}

	items, err := h.nft.FindItems(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, items)
}

// getOwner
//
//	@Summary		Get item owner
//	@Description	Owner of a token id. Single kind classes only
//	@Tags			nft
//	@Produce		json
//	@Param			contract	path		string	true	"class contract"
//	@Param			tokenId		path		string	true	"token id"
//	@Success		200			{object}	object{data=object{owner=string}}
//	@Failure		404
//	@Router			/nft/classes/{contract}/items/{tokenId}/owner [get]
func (h *handler) getOwner(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	contract := domain.Address(c.Param("contract"))
	tokenId := domain.TokenId(c.Param("tokenId"))

	owner, err := h.nft.OwnerOf(ctx, contract, tokenId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		Owner domain.Address `json:"owner"`
	}{
		Owner: owner,
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getBalance
//
//	@Summary		Get item balance
//	@Description	Units of a token id held by an account. Multi kind classes only
//	@Tags			nft
//	@Produce		json
//	@Param			contract	path		string	true	"class contract"
//	@Param			tokenId		path		string	true	"token id"
//	@Param			account		path		string	true	"account address"
//	@Success		200			{object}	object{data=object{balance=int}}
//	@Failure		500
//	@Router			/nft/classes/{contract}/items/{tokenId}/balance/{account} [get]
func (h *handler) getBalance(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	contract := domain.Address(c.Param("contract"))
	tokenId := domain.TokenId(c.Param("tokenId"))
	account := domain.Address(c.Param("account"))

	balance, err := h.nft.BalanceOf(ctx, contract, tokenId, account)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		Balance int64 `json:"balance"`
	}{
		Balance: balance,
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getHoldings
//
//	@Summary		List holdings
//	@Description	Quantity balances of multi kind classes
//	@Tags			nft
//	@Produce		json
//	@Param			contract	query		string	false	"filter by class contract"
//	@Param			tokenId		query		string	false	"filter by token id"
//	@Param			owner		query		string	false	"filter by owner"
//	@Success		200			{object}	object{data=[]nft.Holding}
//	@Failure		500
//	@Router			/nft/holdings [get]
func (h *handler) getHoldings(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Contract *domain.Address `query:"contract"`
		TokenId  *domain.TokenId `query:"tokenId"`
		Owner    *domain.Address `query:"owner"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	opts := []nft.HoldingFindAllOptionsFunc{}
	if p.Contract != nil {
		opts = append(opts, nft.WithHoldingContract(*p.Contract))
	}
	if p.TokenId != nil {
		opts = append(opts, nft.WithHoldingTokenId(*p.TokenId))
	}
	if p.Owner != nil {
		opts = append(opts, nft.WithHoldingOwner(*p.Owner))
	}

	holdings, err := h.nft.FindHoldings(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, holdings)
}

// isApprovedForAll
//
//	@Summary		Get operator approval
//	@Tags			nft
//	@Produce		json
//	@Param			contract	path		string	true	"class contract"
//	@Param			owner		query		string	true	"owner address"
//	@Param			operator	query		string	true	"operator address"
//	@Success		200			{object}	object{data=object{approved=bool}}
//	@Failure		500
//	@Router			/nft/classes/{contract}/approvals [get]
func (h *handler) isApprovedForAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	contract := domain.Address(c.Param("contract"))

	type params struct {
		Owner    domain.Address `query:"owner"`
		Operator domain.Address `query:"operator"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	approved, err := h.nft.IsApprovedForAll(ctx, contract, p.Owner, p.Operator)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		Approved bool `json:"approved"`
	}{
		Approved: approved,
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// createClass
//
//	@Summary		Create asset class
//	@Description	Register a class. Kind single is one owner per token id, kind multi is quantity balances
//	@Tags			nft
//	@Accept			json
//	@Produce		json
//	@Param			params	body		http.createClass.payload	true	"params"
//	@Success		201		{object}	object{data=nft.Class}
//	@Failure		400
//	@Failure		409
//	@Security		ApiKeyAuth
//	@Router			/nft/classes [post]
func (h *handler) createClass(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	creator := c.Get("address").(domain.Address)

	type payload struct {
		Address domain.Address `json:"address"`
		Kind    nft.Kind       `json:"kind"`
		Name    string         `json:"name"`
		Symbol  string         `json:"symbol"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	class, err := h.nft.CreateClass(ctx, &nft.Class{
		Address: p.Address,
		Kind:    p.Kind,
		Name:    p.Name,
		Symbol:  p.Symbol,
		Creator: creator,
	})
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, class)
}

// mint
//
//	@Summary		Mint item
//	@Description	Issue tokens to an account. Restricted to the class creator. Single kind requires amount 1 and a fresh token id
//	@Tags			nft
//	@Accept			json
//	@Produce		json
//	@Param			contract	path	string			true	"class contract"
//	@Param			params		body	http.mint.payload	true	"params"
//	@Success		200
//	@Failure		400
//	@Failure		403
//	@Failure		409
//	@Security		ApiKeyAuth
//	@Router			/nft/classes/{contract}/mint [post]
func (h *handler) mint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)
	contract := domain.Address(c.Param("contract"))

	type payload struct {
		To       domain.Address `json:"to"`
		TokenId  domain.TokenId `json:"tokenId"`
		Amount   int64          `json:"amount"`
		TokenUri string         `json:"tokenUri"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.nft.Mint(ctx, caller, contract, p.To, p.TokenId, p.Amount, p.TokenUri); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

// transfer
//
//	@Summary		Transfer item
//	@Description	Move a token, or amount units of it, to another account. The caller must be the holder or an approved operator
//	@Tags			nft
//	@Accept			json
//	@Produce		json
//	@Param			contract	path	string				true	"class contract"
//	@Param			params		body	http.transfer.payload	true	"params"
//	@Success		200
//	@Failure		400
//	@Failure		403
//	@Failure		404
//	@Security		ApiKeyAuth
//	@Router			/nft/classes/{contract}/transfer [post]
func (h *handler) transfer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	operator := c.Get("address").(domain.Address)
	contract := domain.Address(c.Param("contract"))

	type payload struct {
		From    domain.Address `json:"from"` // empty means the caller
		To      domain.Address `json:"to"`
		TokenId domain.TokenId `json:"tokenId"`
		Amount  int64          `json:"amount"` // ignored for single kind
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	from := p.From
	if from.IsEmpty() {
		from = operator
	}

	class, err := h.nft.GetClass(ctx, contract)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	if class.Kind == nft.KindSingle {
		err = h.nft.TransferSingle(ctx, operator, contract, from, p.To, p.TokenId)
	} else {
		err = h.nft.TransferUnits(ctx, operator, contract, from, p.To, p.TokenId, p.Amount)
	}
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

// setApprovalForAll
//
//	@Summary		Set operator approval
//	@Description	Grant or revoke an operator for every token the caller holds in this class
//	@Tags			nft
//	@Accept			json
//	@Produce		json
//	@Param			contract	path	string						true	"class contract"
//	@Param			params		body	http.setApprovalForAll.payload	true	"params"
//	@Success		200
//	@Failure		400
//	@Security		ApiKeyAuth
//	@Router			/nft/classes/{contract}/approvals [post]
func (h *handler) setApprovalForAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	owner := c.Get("address").(domain.Address)
	contract := domain.Address(c.Param("contract"))

	type payload struct {
		Operator domain.Address `json:"operator"`
		Approved bool           `json:"approved"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.nft.SetApprovalForAll(ctx, owner, contract, p.Operator, p.Approved); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}
