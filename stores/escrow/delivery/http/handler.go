package http

import (
	"math/big"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/delivery"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/escrow"
	authMiddleware "github.com/mintora/goledger/stores/auth/delivery/http/middleware"
)

type handler struct {
	escrow escrow.UseCase
}

// New registers p2p swap endpoints
func New(e *echo.Echo, es escrow.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{
		escrow: es,
	}

	g := e.Group("/swaps")
	g.GET("", h.getSwaps)
	g.GET("/:swapId", h.getSwap)
	g.POST("", h.create, authMiddleware.Auth())
	g.POST("/:swapId/execute", h.execute, authMiddleware.Auth())
	g.DELETE("/:swapId", h.cancel, authMiddleware.Auth())
}

// getSwaps
//
//	@Summary		List swaps
//	@Tags			swap
//	@Produce		json
//	@Param			maker	query		string	false	"filter by maker"
//	@Param			status	query		string	false	"open, executed or cancelled"
//	@Param			offset	query		int		false	"paging offset"
//	@Param			limit	query		int		false	"paging size"
//	@Success		200		{object}	object{data=[]escrow.Swap}
//	@Failure		500
//	@Router			/swaps [get]
func (h *handler) getSwaps(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Maker  *domain.Address `query:"maker"`
		Status *escrow.Status  `query:"status"`
		Offset int32           `query:"offset"`
		Limit  int32           `query:"limit"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	opts := []escrow.FindAllOptionsFunc{
		escrow.WithPagination(p.Offset, p.Limit),
	}
	if p.Maker != nil {
		opts = append(opts, escrow.WithMaker(*p.Maker))
	}
	if p.Status != nil {
		opts = append(opts, escrow.WithStatus(*p.Status))
	}

	swaps, err := h.escrow.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, swaps)
}

// getSwap
//
//	@Summary		Get swap
//	@Tags			swap
//	@Produce		json
//	@Param			swapId	path		string	true	"swap id"
//	@Success		200		{object}	object{data=escrow.Swap}
//	@Failure		404
//	@Router			/swaps/{swapId} [get]
func (h *handler) getSwap(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	swap, err := h.escrow.Get(ctx, c.Param("swapId"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, swap)
}

// create
//
//	@Summary		Create swap
//	@Description	Offer makerAmount of makerToken for takerAmount of takerToken. The maker side moves into escrow. Setting taker reserves the swap
//	@Tags			swap
//	@Accept			json
//	@Produce		json
//	@Param			params	body		http.create.payload	true	"params"
//	@Success		201		{object}	object{data=escrow.Swap}
//	@Failure		400
//	@Failure		402
//	@Security		ApiKeyAuth
//	@Router			/swaps [post]
func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	maker := c.Get("address").(domain.Address)

	type payload struct {
		MakerToken    domain.Address `json:"makerToken"` // empty for the native coin
		MakerAmount   string         `json:"makerAmount"`
		TakerToken    domain.Address `json:"takerToken"` // empty for the native coin
		TakerAmount   string         `json:"takerAmount"`
		Taker         domain.Address `json:"taker"` // optional reserved counterparty
		AttachedValue string         `json:"attachedValue"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	makerAmount, err := domain.ParseAmount(p.MakerAmount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	takerAmount, err := domain.ParseAmount(p.TakerAmount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	attached, err := parseOptionalAmount(p.AttachedValue)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	swap, err := h.escrow.Create(ctx, maker, p.MakerToken, makerAmount, p.TakerToken, takerAmount, p.Taker, attached)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, swap)
}

// execute
//
//	@Summary		Execute swap
//	@Description	Take an open swap. The taker side is collected and both sides are paid out atomically
//	@Tags			swap
//	@Accept			json
//	@Produce		json
//	@Param			swapId	path	string				true	"swap id"
//	@Param			params	body	http.execute.payload	true	"params"
//	@Success		200
//	@Failure		402
//	@Failure		403
//	@Failure		404
//	@Failure		409
//	@Security		ApiKeyAuth
//	@Router			/swaps/{swapId}/execute [post]
func (h *handler) execute(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

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

	if err := h.escrow.Execute(ctx, caller, c.Param("swapId"), attached); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

// cancel
//
//	@Summary		Cancel swap
//	@Description	Maker only. Refunds the escrowed maker side
//	@Tags			swap
//	@Produce		json
//	@Param			swapId	path	string	true	"swap id"
//	@Success		200
//	@Failure		403
//	@Failure		404
//	@Failure		409
//	@Security		ApiKeyAuth
//	@Router			/swaps/{swapId} [delete]
func (h *handler) cancel(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	if err := h.escrow.Cancel(ctx, caller, c.Param("swapId")); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func parseOptionalAmount(s string) (*big.Int, error) {
	if s == "" {
		return nil, nil
	}
	return domain.ParseAmount(s)
}
