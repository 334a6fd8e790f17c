package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/delivery"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/bank"
	"github.com/mintora/goledger/middleware"
	authMiddleware "github.com/mintora/goledger/stores/auth/delivery/http/middleware"
)

type handler struct {
	bank bank.UseCase
}

// New registers native coin endpoints
func New(e *echo.Echo, bk bank.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{
		bank: bk,
	}

	g := e.Group("/bank")
	g.GET("/balance/:account", h.getBalance, middleware.IsValidAddress("account"))
	g.POST("/transfer", h.transfer, authMiddleware.Auth())
	g.POST("/mint", h.mint, authMiddleware.Auth())
}

// getBalance
//
//	@Summary		Get native balance
//	@Tags			bank
//	@Produce		json
//	@Param			account	path		string	true	"account address"
//	@Success		200		{object}	object{data=object{balance=string}}
//	@Failure		500
//	@Router			/bank/balance/{account} [get]
func (h *handler) getBalance(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	account := domain.Address(c.Param("account"))

	balance, err := h.bank.BalanceOf(ctx, account)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		Balance string `json:"balance"`
	}{
		Balance: balance.String(),
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// transfer
//
//	@Summary		Transfer native coin
//	@Description	Move amount from the authenticated account to another account
//	@Tags			bank
//	@Accept			json
//	@Produce		json
//	@Param			params	body	http.transfer.payload	true	"params"
//	@Success		200
//	@Failure		400
//	@Failure		402
//	@Security		ApiKeyAuth
//	@Router			/bank/transfer [post]
func (h *handler) transfer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	from := c.Get("address").(domain.Address)

	type payload struct {
		To     domain.Address `json:"to"`
		Amount string         `json:"amount"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	amount, err := domain.ParseAmount(p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.bank.Transfer(ctx, from, p.To, amount); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

// mint
//
//	@Summary		Mint native coin
//	@Description	Credit newly issued coin to an account. Restricted to the minter principal
//	@Tags			bank
//	@Accept			json
//	@Produce		json
//	@Param			params	body	http.mint.payload	true	"params"
//	@Success		200
//	@Failure		400
//	@Failure		403
//	@Security		ApiKeyAuth
//	@Router			/bank/mint [post]
func (h *handler) mint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type payload struct {
		To     domain.Address `json:"to"`
		Amount string         `json:"amount"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	amount, err := domain.ParseAmount(p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.bank.Mint(ctx, caller, p.To, amount); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}
