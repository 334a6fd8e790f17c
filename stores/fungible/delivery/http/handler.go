package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/delivery"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/fungible"
	"github.com/mintora/goledger/middleware"
	authMiddleware "github.com/mintora/goledger/stores/auth/delivery/http/middleware"
)

type handler struct {
	fungible fungible.UseCase
}

// New registers fungible token endpoints
func New(e *echo.Echo, fu fungible.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{
		fungible: fu,
	}

	g := e.Group("/tokens")
	g.GET("", h.getTokens, middleware.CacheHttp(30*time.Second))
	g.GET("/:contract", h.getToken, middleware.IsValidAddress("contract"))
	g.GET("/:contract/balance/:account", h.getBalance, middleware.IsValidAddress("contract"), middleware.IsValidAddress("account"))
	g.GET("/:contract/allowance", h.getAllowance, middleware.IsValidAddress("contract"))

	g.POST("", h.create, authMiddleware.Auth())
	g.POST("/:contract/mint", h.mint, middleware.IsValidAddress("contract"), authMiddleware.Auth())
	g.POST("/:contract/transfer", h.transfer, middleware.IsValidAddress("contract"), authMiddleware.Auth())
	g.POST("/:contract/transferFrom", h.transferFrom, middleware.IsValidAddress("contract"), authMiddleware.Auth())
	g.POST("/:contract/approve", h.approve, middleware.IsValidAddress("contract"), authMiddleware.Auth())
}

// getTokens
//
//	@Summary		List tokens
//	@Tags			token
//	@Produce		json
//	@Param			creator	query		string	false	"filter by creator"
//	@Param			offset	query		int		false	"paging offset"
//	@Param			limit	query		int		false	"paging size"
//	@Success		200		{object}	object{data=[]fungible.Token}
//	@Failure		500
//	@Router			/tokens [get]
func (h *handler) getTokens(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Creator *domain.Address `query:"creator"`
		Offset  int32           `query:"offset"`
		Limit   int32           `query:"limit"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	opts := []fungible.FindAllOptionsFunc{
		fungible.WithPagination(p.Offset, p.Limit),
	}
	if p.Creator != nil {
		opts = append(opts, fungible.WithCreator(*p.Creator))
	}

	tokens, err := h.fungible.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, tokens)
}

// getToken
//
//	@Summary		Get token
//	@Tags			token
//	@Produce		json
//	@Param			contract	path		string	true	"token contract"
//	@Success		200			{object}	object{data=fungible.Token}
//	@Failure		404
//	@Router			/tokens/{contract} [get]
func (h *handler) getToken(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	contract := domain.Address(c.Param("contract"))
	token, err := h.fungible.Get(ctx, contract)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, token)
}

// getBalance
//
//	@Summary		Get token balance
//	@Tags			token
//	@Produce		json
//	@Param			contract	path		string	true	"token contract"
//	@Param			account		path		string	true	"account address"
//	@Success		200			{object}	object{data=object{balance=string}}
//	@Failure		500
//	@Router			/tokens/{contract}/balance/{account} [get]
func (h *handler) getBalance(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	contract := domain.Address(c.Param("contract"))
	account := domain.Address(c.Param("account"))

	balance, err := h.fungible.BalanceOf(ctx, contract, account)
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

// getAllowance
//
//	@Summary		Get allowance
//	@Tags			token
//	@Produce		json
//	@Param			contract	path		string	true	"token contract"
//	@Param			owner		query		string	true	"owner address"
//	@Param			spender		query		string	true	"spender address"
//	@Success		200			{object}	object{data=object{allowance=string}}
//	@Failure		500
//	@Router			/tokens/{contract}/allowance [get]
func (h *handler) getAllowance(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	contract := domain.Address(c.Param("contract"))

	type params struct {
		Owner   domain.Address `query:"owner"`
		Spender domain.Address `query:"spender"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	allowance, err := h.fungible.Allowance(ctx, contract, p.Owner, p.Spender)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		Allowance string `json:"allowance"`
	}{
		Allowance: allowance.String(),
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// create
//
//	@Summary		Create token
//	@Description	Deploy a token instance. TaxBps diverts that share of every transfer to taxSink. The initial supply is credited to the creator
//	@Tags			token
//	@Accept			json
//	@Produce		json
//	@Param			params	body		http.create.payload	true	"params"
//	@Success		201		{object}	object{data=fungible.Token}
//	@Failure		400
//	@Failure		409
//	@Security		ApiKeyAuth
//	@Router			/tokens [post]
func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	creator := c.Get("address").(domain.Address)

	type payload struct {
		Address       domain.Address `json:"address"`
		Name          string         `json:"name"`
		Symbol        string         `json:"symbol"`
		Decimals      int32          `json:"decimals"`
		TaxBps        int64          `json:"taxBps"`
		TaxSink       domain.Address `json:"taxSink"`
		InitialSupply string         `json:"initialSupply"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	initialSupply, err := domain.ParseAmount(p.InitialSupply)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	token, err := h.fungible.Create(ctx, &fungible.Token{
		Address:  p.Address,
		Name:     p.Name,
		Symbol:   p.Symbol,
		Decimals: p.Decimals,
		TaxBps:   p.TaxBps,
		TaxSink:  p.TaxSink,
		Creator:  creator,
	}, initialSupply)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, token)
}

// mint
//
//	@Summary		Mint token
//	@Description	Expand the supply. Restricted to the token creator
//	@Tags			token
//	@Accept			json
//	@Produce		json
//	@Param			contract	path	string			true	"token contract"
//	@Param			params		body	http.mint.payload	true	"params"
//	@Success		200
//	@Failure		400
//	@Failure		403
//	@Security		ApiKeyAuth
//	@Router			/tokens/{contract}/mint [post]
func (h *handler) mint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)
	contract := domain.Address(c.Param("contract"))

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

	if err := h.fungible.Mint(ctx, caller, contract, p.To, amount); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

// transfer
//
//	@Summary		Transfer token
//	@Description	Move amount from the authenticated account. Tax-on-transfer tokens divert the tax share to the sink
//	@Tags			token
//	@Accept			json
//	@Produce		json
//	@Param			contract	path	string				true	"token contract"
//	@Param			params		body	http.transfer.payload	true	"params"
//	@Success		200
//	@Failure		400
//	@Failure		402
//	@Security		ApiKeyAuth
//	@Router			/tokens/{contract}/transfer [post]
func (h *handler) transfer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	from := c.Get("address").(domain.Address)
	contract := domain.Address(c.Param("contract"))

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

	if err := h.fungible.Transfer(ctx, contract, from, p.To, amount); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

// transferFrom
//
//	@Summary		Transfer token from another account
//	@Description	Spend the granted allowance to move amount out of another account
//	@Tags			token
//	@Accept			json
//	@Produce		json
//	@Param			contract	path	string					true	"token contract"
//	@Param			params		body	http.transferFrom.payload	true	"params"
//	@Success		200
//	@Failure		400
//	@Failure		402
//	@Security		ApiKeyAuth
//	@Router			/tokens/{contract}/transferFrom [post]
func (h *handler) transferFrom(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	spender := c.Get("address").(domain.Address)
	contract := domain.Address(c.Param("contract"))

	type payload struct {
		From   domain.Address `json:"from"`
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

	if err := h.fungible.TransferFrom(ctx, spender, contract, p.From, p.To, amount); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

// approve
//
//	@Summary		Approve spender
//	@Description	Grant a spender an allowance out of the authenticated account
//	@Tags			token
//	@Accept			json
//	@Produce		json
//	@Param			contract	path	string				true	"token contract"
//	@Param			params		body	http.approve.payload	true	"params"
//	@Success		200
//	@Failure		400
//	@Security		ApiKeyAuth
//	@Router			/tokens/{contract}/approve [post]
func (h *handler) approve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	owner := c.Get("address").(domain.Address)
	contract := domain.Address(c.Param("contract"))

	type payload struct {
		Spender domain.Address `json:"spender"`
		Amount  string         `json:"amount"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	amount, err := domain.ParseAmount(p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.fungible.Approve(ctx, owner, contract, p.Spender, amount); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}
