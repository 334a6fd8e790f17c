package usecase

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/execution"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/fungible"
	mFungible "github.com/mintora/goledger/domain/fungible/mocks"
	mQuery "github.com/mintora/goledger/service/query/mocks"
)

var (
	mockToken   = domain.Address("0x9a1def283b1e9d5a6b30f46e227a28f6b9d9b7b2")
	mockCreator = domain.Address("0x1a01ecd2263a9d5b5967667e508ea22db478bc4b")
	mockSink    = domain.Address("0x4b076f0e07eed3f1007fb1b5c000c7a08ad1dd27")
	mockAlice   = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	mockBob     = domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
	mockSpender = domain.Address("0x68e24f91b2ec4b2d43f9413b38668289023f1b86")
)

type fungibleSuite struct {
	suite.Suite

	tokens     *mFungible.TokenRepo
	balances   *mFungible.BalanceRepo
	allowances *mFungible.AllowanceRepo
	uc         fungible.UseCase
}

func TestFungibleSuite(t *testing.T) {
	suite.Run(t, new(fungibleSuite))
}

func (s *fungibleSuite) SetupTest() {
	s.tokens = &mFungible.TokenRepo{}
	s.balances = &mFungible.BalanceRepo{}
	s.allowances = &mFungible.AllowanceRepo{}
	q := &mQuery.Mongo{}
	q.On("RunWithTransaction", mock.Anything, mock.Anything).Return(func(c ctx.Ctx, run func(ctx.Ctx) error) error {
		return run(c)
	})
	s.uc = New(&FungibleUseCaseCfg{
		TokenRepo:     s.tokens,
		BalanceRepo:   s.balances,
		AllowanceRepo: s.allowances,
		Q:             q,
		Guard:         execution.NewGuard("fungible", execution.NewGate()),
	})
}

func taxedToken() *fungible.Token {
	return &fungible.Token{
		Address: mockToken,
		Name:    "Taxed",
		Symbol:  "TAX",
		TaxBps:  250,
		TaxSink: mockSink,
		Creator: mockCreator,
	}
}

func (s *fungibleSuite) TestCreateCreditsInitialSupplyToCreator() {
	c := ctx.Background()
	s.tokens.On("Insert", mock.Anything, mock.MatchedBy(func(t *fungible.Token) bool {
		return t.Address == mockToken && t.TotalSupply == "1000000"
	})).Return(nil).Once()
	s.balances.On("FindOne", mock.Anything, fungible.BalanceId{Token: mockToken, Owner: mockCreator}).Return(nil, domain.ErrNotFound)
	s.balances.On("Upsert", mock.Anything, mock.MatchedBy(func(b *fungible.Balance) bool {
		return b.Owner == mockCreator && b.Balance == "1000000"
	})).Return(nil).Once()

	token, err := s.uc.Create(c, taxedToken(), big.NewInt(1000000))
	s.NoError(err)
	s.Equal("1000000", token.TotalSupply)
	s.tokens.AssertExpectations(s.T())
	s.balances.AssertExpectations(s.T())
}

func (s *fungibleSuite) TestCreateRejectsTaxAboveFullAmount() {
	c := ctx.Background()
	token := taxedToken()
	token.TaxBps = 10001

	_, err := s.uc.Create(c, token, big.NewInt(100))
	s.Equal(domain.ErrInvalidInput, err)
	s.tokens.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
}

func (s *fungibleSuite) TestCreateRejectsTaxWithoutSink() {
	c := ctx.Background()
	token := taxedToken()
	token.TaxSink = ""

	_, err := s.uc.Create(c, token, big.NewInt(100))
	s.Equal(domain.ErrInvalidInput, err)
	s.tokens.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
}

func (s *fungibleSuite) TestTransferSplitsTax() {
	c := ctx.Background()
	s.tokens.On("FindOne", mock.Anything, mockToken).Return(taxedToken(), nil)
	s.balances.On("FindOne", mock.Anything, fungible.BalanceId{Token: mockToken, Owner: mockAlice}).Return(&fungible.Balance{Token: mockToken, Owner: mockAlice, Balance: "10000"}, nil)
	s.balances.On("FindOne", mock.Anything, fungible.BalanceId{Token: mockToken, Owner: mockSink}).Return(nil, domain.ErrNotFound)
	s.balances.On("FindOne", mock.Anything, fungible.BalanceId{Token: mockToken, Owner: mockBob}).Return(nil, domain.ErrNotFound)
	s.balances.On("Upsert", mock.Anything, mock.MatchedBy(func(b *fungible.Balance) bool {
		return b.Owner == mockAlice && b.Balance == "0"
	})).Return(nil).Once()
	s.balances.On("Upsert", mock.Anything, mock.MatchedBy(func(b *fungible.Balance) bool {
		return b.Owner == mockSink && b.Balance == "250"
	})).Return(nil).Once()
	s.balances.On("Upsert", mock.Anything, mock.MatchedBy(func(b *fungible.Balance) bool {
		return b.Owner == mockBob && b.Balance == "9750"
	})).Return(nil).Once()

	err := s.uc.Transfer(c, mockToken, mockAlice, mockBob, big.NewInt(10000))
	s.NoError(err)
	s.balances.AssertExpectations(s.T())
}

func (s *fungibleSuite) TestTransferRejectsOverdraft() {
	c := ctx.Background()
	s.tokens.On("FindOne", mock.Anything, mockToken).Return(taxedToken(), nil)
	s.balances.On("FindOne", mock.Anything, fungible.BalanceId{Token: mockToken, Owner: mockAlice}).Return(&fungible.Balance{Token: mockToken, Owner: mockAlice, Balance: "10"}, nil)

	err := s.uc.Transfer(c, mockToken, mockAlice, mockBob, big.NewInt(10000))
	s.Equal(domain.ErrInsufficientBalance, err)
	s.balances.AssertNotCalled(s.T(), "Upsert", mock.Anything, mock.Anything)
}

func (s *fungibleSuite) TestTransferFromSpendsFullPreTaxAllowance() {
	c := ctx.Background()
	s.tokens.On("FindOne", mock.Anything, mockToken).Return(taxedToken(), nil)
	s.allowances.On("FindOne", mock.Anything, fungible.AllowanceId{Token: mockToken, Owner: mockAlice, Spender: mockSpender}).Return(&fungible.Allowance{Token: mockToken, Owner: mockAlice, Spender: mockSpender, Amount: "12000"}, nil)
	s.allowances.On("Upsert", mock.Anything, mock.MatchedBy(func(a *fungible.Allowance) bool {
		return a.Amount == "2000"
	})).Return(nil).Once()
	s.balances.On("FindOne", mock.Anything, fungible.BalanceId{Token: mockToken, Owner: mockAlice}).Return(&fungible.Balance{Token: mockToken, Owner: mockAlice, Balance: "10000"}, nil)
	s.balances.On("FindOne", mock.Anything, fungible.BalanceId{Token: mockToken, Owner: mockSink}).Return(nil, domain.ErrNotFound)
	s.balances.On("FindOne", mock.Anything, fungible.BalanceId{Token: mockToken, Owner: mockBob}).Return(nil, domain.ErrNotFound)
	s.balances.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	err := s.uc.TransferFrom(c, mockSpender, mockToken, mockAlice, mockBob, big.NewInt(10000))
	s.NoError(err)
	s.allowances.AssertExpectations(s.T())
}

func (s *fungibleSuite) TestTransferFromRejectsShortAllowance() {
	c := ctx.Background()
	s.tokens.On("FindOne", mock.Anything, mockToken).Return(taxedToken(), nil)
	s.allowances.On("FindOne", mock.Anything, fungible.AllowanceId{Token: mockToken, Owner: mockAlice, Spender: mockSpender}).Return(&fungible.Allowance{Token: mockToken, Owner: mockAlice, Spender: mockSpender, Amount: "500"}, nil)

	err := s.uc.TransferFrom(c, mockSpender, mockToken, mockAlice, mockBob, big.NewInt(10000))
	s.Equal(domain.ErrInsufficientAllowance, err)
	s.balances.AssertNotCalled(s.T(), "Upsert", mock.Anything, mock.Anything)
}

func (s *fungibleSuite) TestTransferFromBySenderSkipsAllowance() {
	c := ctx.Background()
	token := taxedToken()
	token.TaxBps = 0
	s.tokens.On("FindOne", mock.Anything, mockToken).Return(token, nil)
	s.balances.On("FindOne", mock.Anything, fungible.BalanceId{Token: mockToken, Owner: mockAlice}).Return(&fungible.Balance{Token: mockToken, Owner: mockAlice, Balance: "100"}, nil)
	s.balances.On("FindOne", mock.Anything, fungible.BalanceId{Token: mockToken, Owner: mockBob}).Return(nil, domain.ErrNotFound)
	s.balances.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	err := s.uc.TransferFrom(c, mockAlice, mockToken, mockAlice, mockBob, big.NewInt(60))
	s.NoError(err)
	s.allowances.AssertNotCalled(s.T(), "FindOne", mock.Anything, mock.Anything)
}

func (s *fungibleSuite) TestApproveRejectsNegativeAmount() {
	c := ctx.Background()

	err := s.uc.Approve(c, mockAlice, mockToken, mockSpender, big.NewInt(-1))
	s.Equal(domain.ErrInvalidInput, err)
	s.allowances.AssertNotCalled(s.T(), "Upsert", mock.Anything, mock.Anything)
}

func (s *fungibleSuite) TestAllowanceOfUnknownPairIsZero() {
	c := ctx.Background()
	s.allowances.On("FindOne", mock.Anything, fungible.AllowanceId{Token: mockToken, Owner: mockAlice, Spender: mockSpender}).Return(nil, domain.ErrNotFound)

	allowance, err := s.uc.Allowance(c, mockToken, mockAlice, mockSpender)
	s.NoError(err)
	s.Equal(int64(0), allowance.Int64())
}

func (s *fungibleSuite) TestMintExpandsSupply() {
	c := ctx.Background()
	token := taxedToken()
	token.TotalSupply = "1000"
	s.tokens.On("FindOne", mock.Anything, mockToken).Return(token, nil)
	s.tokens.On("Patch", mock.Anything, mockToken, mock.MatchedBy(func(p fungible.TokenPatchable) bool {
		return p.TotalSupply != nil && *p.TotalSupply == "1500"
	})).Return(nil).Once()
	s.balances.On("FindOne", mock.Anything, fungible.BalanceId{Token: mockToken, Owner: mockAlice}).Return(nil, domain.ErrNotFound)
	s.balances.On("Upsert", mock.Anything, mock.MatchedBy(func(b *fungible.Balance) bool {
		return b.Owner == mockAlice && b.Balance == "500"
	})).Return(nil).Once()

	err := s.uc.Mint(c, mockCreator, mockToken, mockAlice, big.NewInt(500))
	s.NoError(err)
	s.tokens.AssertExpectations(s.T())
	s.balances.AssertExpectations(s.T())
}

func (s *fungibleSuite) TestMintRejectsNonCreator() {
	c := ctx.Background()
	s.tokens.On("FindOne", mock.Anything, mockToken).Return(taxedToken(), nil)

	err := s.uc.Mint(c, mockAlice, mockToken, mockAlice, big.NewInt(500))
	s.Equal(domain.ErrUnauthorized, err)
	s.tokens.AssertNotCalled(s.T(), "Patch", mock.Anything, mock.Anything, mock.Anything)
}
