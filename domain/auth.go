package domain

import (
	"github.com/golang-jwt/jwt"
	"github.com/mintora/goledger/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"data"` // name data for backward compatibility
	jwt.StandardClaims
}

type AuthUsecase interface {
	// SignToken issues an access token after the signature over the
	// account's current nonce has been verified.
	SignToken(ctx ctx.Ctx, address Address, signature string) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (address string, err error)
}
