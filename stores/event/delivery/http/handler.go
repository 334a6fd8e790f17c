package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/delivery"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/event"
)

type handler struct {
	event event.UseCase
}

type eventResult struct {
	Events []*event.Event `json:"events"`
	Count  int            `json:"count"`
}

// New registers event log endpoints
func New(e *echo.Echo, ev event.UseCase) {
	h := &handler{
		event: ev,
	}

	g := e.Group("/events")
	g.GET("", h.getEvents)
}

// getEvents
//
//	@Summary		List events
//	@Description	Query the append-only event log. afterSeq returns only events past that sequence number
//	@Tags			event
//	@Produce		json
//	@Param			type		query		string	false	"filter by event type"
//	@Param			listingId	query		string	false	"filter by listing"
//	@Param			swapId		query		string	false	"filter by swap"
//	@Param			account		query		string	false	"filter by involved account"
//	@Param			afterSeq	query		int		false	"only events with a larger sequence number"
//	@Param			offset		query		int		false	"paging offset"
//	@Param			limit		query		int		false	"paging size"
//	@Success		200			{object}	object{data=http.eventResult}
//	@Failure		500
//	@Router			/events [get]
func (h *handler) getEvents(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Type      *event.Type     `query:"type"`
		ListingId *string         `query:"listingId"`
		SwapId    *string         `query:"swapId"`
		Account   *domain.Address `query:"account"`
		AfterSeq  *int64          `query:"afterSeq"`
		Offset    int32           `query:"offset"`
		Limit     int32           `query:"limit"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	opts := []event.FindAllOptionsFunc{
		event.WithPagination(p.Offset, p.Limit),
	}
	if p.Type != nil {
		opts = append(opts, event.WithType(*p.Type))
	}
	if p.ListingId != nil {
		opts = append(opts, event.WithListingId(*p.ListingId))
	}
	if p.SwapId != nil {
		opts = append(opts, event.WithSwapId(*p.SwapId))
	}
	if p.Account != nil {
		opts = append(opts, event.WithAccount(*p.Account))
	}
	if p.AfterSeq != nil {
		opts = append(opts, event.WithSeqGT(*p.AfterSeq))
	}

	events, err := h.event.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	count, err := h.event.Count(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, eventResult{
		Events: events,
		Count:  count,
	})
}
