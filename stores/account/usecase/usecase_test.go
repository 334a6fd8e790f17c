package usecase

import (
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/ethereum"
	"github.com/mintora/goledger/base/ptr"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/account"
	mAccount "github.com/mintora/goledger/domain/account/mocks"
)

const testSignatureMsg = "Approve Signature on mintora with nonce %s"

var mockAddress = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")

type accountSuite struct {
	suite.Suite

	ctx  ctx.Ctx
	repo *mAccount.Repo
	im   account.Usecase
}

func (s *accountSuite) SetupTest() {
	s.ctx = ctx.Background()
	s.repo = &mAccount.Repo{}
	s.im = New(&AccountUseCaseCfg{
		Repo:         s.repo,
		SignatureMsg: testSignatureMsg,
	})
}

func (s *accountSuite) TestGetReturnsInfo() {
	s.repo.On("Get", mock.Anything, mockAddress).Return(&account.Account{
		Address: mockAddress,
		Alias:   "alice",
		Email:   "alice@example.com",
		Nonce:   invalidNonce,
	}, nil).Once()

	info, err := s.im.Get(s.ctx, mockAddress)
	s.NoError(err)
	s.Equal(mockAddress, info.Address)
	s.Equal("alice", info.Alias)
	s.Equal("alice@example.com", info.Email)
	s.repo.AssertExpectations(s.T())
}

func (s *accountSuite) TestGetUnknownAccount() {
	s.repo.On("Get", mock.Anything, mockAddress).Return(nil, domain.ErrNotFound).Once()

	_, err := s.im.Get(s.ctx, mockAddress)
	s.Equal(domain.ErrNotFound, err)
}

func (s *accountSuite) TestCreateStartsWithoutNonce() {
	s.repo.On("Insert", mock.Anything, mock.MatchedBy(func(a *account.Account) bool {
		return a.Address == mockAddress && a.Nonce == invalidNonce && !a.CreatedAt.IsZero()
	})).Return(nil).Once()

	info, err := s.im.Create(s.ctx, mockAddress)
	s.NoError(err)
	s.Equal(mockAddress, info.Address)
	s.repo.AssertExpectations(s.T())
}

func (s *accountSuite) TestGenerateNonceCreatesMissingAccount() {
	s.repo.On("Get", mock.Anything, mockAddress).Return(nil, domain.ErrNotFound).Once()
	s.repo.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()
	s.repo.On("Update", mock.Anything, mockAddress, mock.MatchedBy(func(u *account.Updater) bool {
		return u.Nonce >= 0 && u.Nonce < nonceRange
	})).Return(nil).Once()

	nonce, err := s.im.GenerateNonce(s.ctx, mockAddress)
	s.NoError(err)
	s.True(nonce >= 0 && nonce < nonceRange)
	s.repo.AssertExpectations(s.T())
}

func (s *accountSuite) TestGenerateNonceReusesExistingAccount() {
	s.repo.On("Get", mock.Anything, mockAddress).Return(&account.Account{
		Address: mockAddress,
		Nonce:   invalidNonce,
	}, nil).Once()
	s.repo.On("Update", mock.Anything, mockAddress, mock.MatchedBy(func(u *account.Updater) bool {
		return u.Nonce >= 0 && u.Nonce < nonceRange
	})).Return(nil).Once()

	_, err := s.im.GenerateNonce(s.ctx, mockAddress)
	s.NoError(err)
	s.repo.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
}

func (s *accountSuite) TestValidateSignatureAcceptsSignedNonce() {
	privateKey, publicKey, err := ethereum.GenerateKey()
	s.Require().NoError(err)
	signer := domain.Address(crypto.PubkeyToAddress(*publicKey).Hex())

	s.repo.On("Get", mock.Anything, signer).Return(&account.Account{
		Address: signer.ToLower(),
		Nonce:   123456,
	}, nil).Once()
	s.repo.On("Update", mock.Anything, signer, &account.Updater{Nonce: invalidNonce}).Return(nil).Once()

	msg := []byte(fmt.Sprintf(testSignatureMsg, "123456"))
	signature, err := crypto.Sign(accounts.TextHash(msg), privateKey)
	s.Require().NoError(err)

	s.NoError(s.im.ValidateSignature(s.ctx, signer, hexutil.Encode(signature)))
	s.repo.AssertExpectations(s.T())
}

func (s *accountSuite) TestValidateSignatureRejectsForeignKey() {
	foreignKey, _, err := ethereum.GenerateKey()
	s.Require().NoError(err)
	_, publicKey, err := ethereum.GenerateKey()
	s.Require().NoError(err)
	signer := domain.Address(crypto.PubkeyToAddress(*publicKey).Hex())

	s.repo.On("Get", mock.Anything, signer).Return(&account.Account{
		Address: signer.ToLower(),
		Nonce:   123456,
	}, nil).Once()
	s.repo.On("Update", mock.Anything, signer, &account.Updater{Nonce: invalidNonce}).Return(nil).Once()

	msg := []byte(fmt.Sprintf(testSignatureMsg, "123456"))
	signature, err := crypto.Sign(accounts.TextHash(msg), foreignKey)
	s.Require().NoError(err)

	s.Equal(account.ErrInvalidSignature, s.im.ValidateSignature(s.ctx, signer, hexutil.Encode(signature)))
	// the nonce burns even on a failed attempt
	s.repo.AssertExpectations(s.T())
}

func (s *accountSuite) TestValidateSignatureRequiresNonce() {
	s.repo.On("Get", mock.Anything, mockAddress).Return(&account.Account{
		Address: mockAddress,
		Nonce:   invalidNonce,
	}, nil).Once()

	s.Equal(account.ErrInvalidNonce, s.im.ValidateSignature(s.ctx, mockAddress, "0xdeadbeef"))
	s.repo.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything, mock.Anything)
}

func (s *accountSuite) TestUpdatePatchesAndReturnsInfo() {
	s.repo.On("Update", mock.Anything, mockAddress, mock.MatchedBy(func(u *account.Updater) bool {
		return u.Alias != nil && *u.Alias == "bob" && !u.UpdatedAt.IsZero()
	})).Return(nil).Once()
	s.repo.On("Get", mock.Anything, mockAddress).Return(&account.Account{
		Address: mockAddress,
		Alias:   "bob",
	}, nil).Once()

	info, err := s.im.Update(s.ctx, mockAddress, &account.Updater{Alias: ptr.String("bob")})
	s.NoError(err)
	s.Equal("bob", info.Alias)
	s.repo.AssertExpectations(s.T())
}

func TestAccountSuite(t *testing.T) {
	suite.Run(t, new(accountSuite))
}
