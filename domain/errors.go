package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// ErrInvalidInput rejects zero prices, zero amounts and malformed arguments
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnauthorized rejects blacklisted callers and wrong principals
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidState rejects operations in the wrong lifecycle phase
	ErrInvalidState = errors.New("invalid state")
	// ErrInsufficientPayment rejects wrong attached value and bids below the minimum step
	ErrInsufficientPayment = errors.New("insufficient payment")
	// ErrTransferFailure reports an asset or value transfer that did not complete
	ErrTransferFailure = errors.New("transfer failure")
	// ErrUnsupportedAssetKind reports a contract implementing neither asset capability
	ErrUnsupportedAssetKind = errors.New("unsupported asset kind")
	// ErrAlreadyListed rejects re-listing an asset with a live listing
	ErrAlreadyListed = errors.New("already listed")
	// ErrReentrantCall rejects a nested program call made during an executing call
	ErrReentrantCall = errors.New("reentrant call")
	// ErrInsufficientBalance rejects a debit larger than the payer's balance
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrInsufficientAllowance rejects a pull larger than the granted allowance
	ErrInsufficientAllowance = errors.New("insufficient allowance")

	ErrInvalidNumberFormat = errors.New("invalid number format")

	// request error
	ErrInvalidAddress   = errors.New("Invalid address")
	ErrInvalidSignature = errors.New("Invalid signature")
)
