package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		switch {
		case errors.Is(err, domain.ErrNotFound) || errors.Is(err, query.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrInvalidAddress) ||
			errors.Is(err, domain.ErrInvalidNumberFormat) || errors.Is(err, domain.ErrInvalidSignature) ||
			errors.Is(err, domain.ErrBadParamInput) || errors.Is(err, domain.ErrUnsupportedAssetKind):
			status = http.StatusBadRequest
		case errors.Is(err, domain.ErrInsufficientPayment) || errors.Is(err, domain.ErrInsufficientBalance) ||
			errors.Is(err, domain.ErrInsufficientAllowance):
			status = http.StatusPaymentRequired
		case errors.Is(err, domain.ErrUnauthorized):
			status = http.StatusForbidden
		case errors.Is(err, domain.ErrInvalidState) || errors.Is(err, domain.ErrAlreadyListed) ||
			errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrTransferFailure) ||
			errors.Is(err, domain.ErrReentrantCall):
			status = http.StatusConflict
		}
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
