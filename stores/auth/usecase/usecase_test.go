package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/account"
	mAccount "github.com/mintora/goledger/domain/account/mocks"
	"github.com/mintora/goledger/stores/auth/usecase"
)

func TestSignAndParseToken(t *testing.T) {
	mockAccountUC := &mAccount.Usecase{}

	mockAccountUC.On("ValidateSignature", mock.Anything, domain.Address("my-address"), "my-signature").Return(nil)

	ctx := ctx.Background()
	u := usecase.New("jwt-secret", mockAccountUC)
	tkn, err := u.SignToken(ctx, "my-address", "my-signature")
	assert.NoError(t, err)
	assert.NotEmpty(t, tkn)
	ads, err := u.ParseToken(ctx, tkn)
	assert.NoError(t, err)
	assert.Equal(t, "my-address", ads)
}

func TestSignTokenRejectsBadSignature(t *testing.T) {
	mockAccountUC := &mAccount.Usecase{}

	mockAccountUC.On("ValidateSignature", mock.Anything, domain.Address("my-address"), "bad-signature").Return(account.ErrInvalidSignature)

	ctx := ctx.Background()
	u := usecase.New("jwt-secret", mockAccountUC)
	tkn, err := u.SignToken(ctx, "my-address", "bad-signature")
	assert.Equal(t, account.ErrInvalidSignature, err)
	assert.Empty(t, tkn)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	mockAccountUC := &mAccount.Usecase{}

	ctx := ctx.Background()
	u := usecase.New("jwt-secret", mockAccountUC)
	_, err := u.ParseToken(ctx, "not-a-token")
	assert.Error(t, err)
}

func TestParseTokenRejectsForeignSecret(t *testing.T) {
	mockAccountUC := &mAccount.Usecase{}

	mockAccountUC.On("ValidateSignature", mock.Anything, domain.Address("my-address"), "my-signature").Return(nil)

	ctx := ctx.Background()
	u := usecase.New("jwt-secret", mockAccountUC)
	tkn, err := u.SignToken(ctx, "my-address", "my-signature")
	assert.NoError(t, err)

	other := usecase.New("other-secret", mockAccountUC)
	_, err = other.ParseToken(ctx, tkn)
	assert.Error(t, err)
}
