package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/delivery"
	"github.com/mintora/goledger/base/validator"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/account"
	"github.com/mintora/goledger/middleware"
	authMiddleware "github.com/mintora/goledger/stores/auth/delivery/http/middleware"
)

type handler struct {
	au account.Usecase
}

// New registers account endpoints
func New(e *echo.Echo, au account.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{
		au: au,
	}
	g := e.Group("/account")
	g.GET("/:account", h.getAccount, middleware.IsValidAddress("account"))
	g.POST("/nonce", h.generateNonce)

	// self
	g.GET("", h.getMyAccount, authMiddleware.Auth())
	g.PATCH("", h.updateAccount, authMiddleware.Auth())
}

// getAccount
//
//	@Summary		Get account
//	@Description	Public profile of an address
//	@Tags			account
//	@Produce		json
//	@Param			account	path		string	true	"account address"
//	@Success		200		{object}	object{data=account.Info}
//	@Failure		404
//	@Failure		500
//	@Router			/account/{account} [get]
func (h *handler) getAccount(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	pAccount := domain.Address(c.Param("account"))
	info, err := h.au.Get(ctx, pAccount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, info.Sanitized())
}

// getMyAccount
//
//	@Summary		Get own account
//	@Description	Full profile of the authenticated address
//	@Tags			account
//	@Produce		json
//	@Success		200	{object}	object{data=account.Info}
//	@Failure		500
//	@Security		ApiKeyAuth
//	@Router			/account [get]
func (h *handler) getMyAccount(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)
	info, err := h.au.Get(ctx, address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, info)
}

// updateAccount
//
//	@Summary		Update account
//	@Description	Update alias or email. Requires a fresh signature over the current nonce
//	@Tags			account
//	@Accept			json
//	@Produce		json
//	@Param			params	body		http.updateAccount.payload	true	"params"
//	@Success		200		{object}	object{data=account.Info}
//	@Failure		400
//	@Failure		401
//	@Failure		500
//	@Security		ApiKeyAuth
//	@Router			/account [patch]
func (h *handler) updateAccount(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type payload struct {
		account.Updater
		Signature string `json:"signature"`
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.au.ValidateSignature(ctx, address, p.Signature); err != nil {
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, err)
	}

	if info, err := h.au.Update(ctx, address, &p.Updater); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, info)
	}
}

// generateNonce
//
//	@Summary		Generate nonce
//	@Description	Issue a single-use nonce for the address, creating the account on first use
//	@Tags			account
//	@Accept			json
//	@Produce		json
//	@Param			params	body		http.generateNonce.payload	true	"params"
//	@Success		200		{object}	object{data=int32}
//	@Failure		400
//	@Failure		500
//	@Router			/account/nonce [post]
func (h *handler) generateNonce(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Address domain.Address `json:"address" example:"0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d"` // account address
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if !validator.IsValidAddress(string(p.Address)) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
	}

	nonce, err := h.au.GenerateNonce(ctx, p.Address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, nonce)
}
