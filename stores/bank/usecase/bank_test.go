package usecase

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/execution"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/bank"
	mBank "github.com/mintora/goledger/domain/bank/mocks"
	mQuery "github.com/mintora/goledger/service/query/mocks"
)

var (
	mockMinter = domain.Address("0x1a01ecd2263a9d5b5967667e508ea22db478bc4b")
	mockAlice  = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	mockBob    = domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
)

type bankSuite struct {
	suite.Suite

	repo *mBank.Repo
	uc   bank.UseCase
}

func TestBankSuite(t *testing.T) {
	suite.Run(t, new(bankSuite))
}

func (s *bankSuite) SetupTest() {
	s.repo = &mBank.Repo{}
	q := &mQuery.Mongo{}
	q.On("RunWithTransaction", mock.Anything, mock.Anything).Return(func(c ctx.Ctx, run func(ctx.Ctx) error) error {
		return run(c)
	})
	s.uc = New(&BankUseCaseCfg{
		BankRepo: s.repo,
		Q:        q,
		Guard:    execution.NewGuard("bank", execution.NewGate()),
		Minter:   mockMinter,
	})
}

func (s *bankSuite) TestBalanceOfUnknownAccountIsZero() {
	c := ctx.Background()
	s.repo.On("FindOne", mock.Anything, mockAlice).Return(nil, domain.ErrNotFound)

	balance, err := s.uc.BalanceOf(c, mockAlice)
	s.NoError(err)
	s.Equal(int64(0), balance.Int64())
}

func (s *bankSuite) TestTransferMovesBalance() {
	c := ctx.Background()
	s.repo.On("FindOne", mock.Anything, mockAlice).Return(&bank.Account{Address: mockAlice, Balance: "100"}, nil)
	s.repo.On("FindOne", mock.Anything, mockBob).Return(nil, domain.ErrNotFound)
	s.repo.On("Upsert", mock.Anything, mock.MatchedBy(func(a *bank.Account) bool {
		return a.Address == mockAlice && a.Balance == "70"
	})).Return(nil).Once()
	s.repo.On("Upsert", mock.Anything, mock.MatchedBy(func(a *bank.Account) bool {
		return a.Address == mockBob && a.Balance == "30"
	})).Return(nil).Once()

	err := s.uc.Transfer(c, mockAlice, mockBob, big.NewInt(30))
	s.NoError(err)
	s.repo.AssertExpectations(s.T())
}

func (s *bankSuite) TestTransferRejectsOverdraft() {
	c := ctx.Background()
	s.repo.On("FindOne", mock.Anything, mockAlice).Return(&bank.Account{Address: mockAlice, Balance: "10"}, nil)

	err := s.uc.Transfer(c, mockAlice, mockBob, big.NewInt(30))
	s.Equal(domain.ErrInsufficientBalance, err)
	s.repo.AssertNotCalled(s.T(), "Upsert", mock.Anything, mock.Anything)
}

func (s *bankSuite) TestTransferRejectsZeroAmount() {
	c := ctx.Background()

	err := s.uc.Transfer(c, mockAlice, mockBob, big.NewInt(0))
	s.Equal(domain.ErrInvalidInput, err)
}

func (s *bankSuite) TestMint() {
	c := ctx.Background()
	s.repo.On("FindOne", mock.Anything, mockAlice).Return(nil, domain.ErrNotFound)
	s.repo.On("Upsert", mock.Anything, mock.MatchedBy(func(a *bank.Account) bool {
		return a.Address == mockAlice && a.Balance == "50"
	})).Return(nil).Once()

	err := s.uc.Mint(c, mockMinter, mockAlice, big.NewInt(50))
	s.NoError(err)
	s.repo.AssertExpectations(s.T())
}

func (s *bankSuite) TestMintRejectsNonMinter() {
	c := ctx.Background()

	err := s.uc.Mint(c, mockAlice, mockAlice, big.NewInt(50))
	s.Equal(domain.ErrUnauthorized, err)
}
