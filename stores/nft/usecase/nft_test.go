package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/execution"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/nft"
	mNft "github.com/mintora/goledger/domain/nft/mocks"
	mQuery "github.com/mintora/goledger/service/query/mocks"
)

var (
	mockContract = domain.Address("0x9a1def283b1e9d5a6b30f46e227a28f6b9d9b7b2")
	mockCreator  = domain.Address("0x1a01ecd2263a9d5b5967667e508ea22db478bc4b")
	mockAlice    = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	mockBob      = domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
	mockOperator = domain.Address("0x68e24f91b2ec4b2d43f9413b38668289023f1b86")
	mockTokenId  = domain.TokenId("1")
)

type nftSuite struct {
	suite.Suite

	classes   *mNft.ClassRepo
	items     *mNft.ItemRepo
	holdings  *mNft.HoldingRepo
	approvals *mNft.ApprovalRepo
	uc        nft.UseCase
}

func TestNftSuite(t *testing.T) {
	suite.Run(t, new(nftSuite))
}

func (s *nftSuite) SetupTest() {
	s.classes = &mNft.ClassRepo{}
	s.items = &mNft.ItemRepo{}
	s.holdings = &mNft.HoldingRepo{}
	s.approvals = &mNft.ApprovalRepo{}
	q := &mQuery.Mongo{}
	q.On("RunWithTransaction", mock.Anything, mock.Anything).Return(func(c ctx.Ctx, run func(ctx.Ctx) error) error {
		return run(c)
	})
	s.uc = New(&NftUseCaseCfg{
		ClassRepo:    s.classes,
		ItemRepo:     s.items,
		HoldingRepo:  s.holdings,
		ApprovalRepo: s.approvals,
		Q:            q,
		Guard:        execution.NewGuard("nft", execution.NewGate()),
	})
}

func singleClass() *nft.Class {
	return &nft.Class{Address: mockContract, Kind: nft.KindSingle, Name: "Singles", Symbol: "SGL", Creator: mockCreator}
}

func multiClass() *nft.Class {
	return &nft.Class{Address: mockContract, Kind: nft.KindMulti, Name: "Multis", Symbol: "MLT", Creator: mockCreator}
}

func (s *nftSuite) TestMintSingle() {
	c := ctx.Background()
	s.classes.On("FindOne", mock.Anything, mockContract).Return(singleClass(), nil)
	s.items.On("Insert", mock.Anything, mock.MatchedBy(func(i *nft.Item) bool {
		return i.Contract == mockContract && i.TokenId == mockTokenId && i.Owner == mockAlice
	})).Return(nil).Once()

	err := s.uc.Mint(c, mockCreator, mockContract, mockAlice, mockTokenId, 1, "uri://1")
	s.NoError(err)
	s.items.AssertExpectations(s.T())
}

func (s *nftSuite) TestMintSingleRejectsQuantity() {
	c := ctx.Background()
	s.classes.On("FindOne", mock.Anything, mockContract).Return(singleClass(), nil)

	err := s.uc.Mint(c, mockCreator, mockContract, mockAlice, mockTokenId, 5, "uri://1")
	s.Equal(domain.ErrInvalidInput, err)
	s.items.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
}

func (s *nftSuite) TestMintRejectsNonCreator() {
	c := ctx.Background()
	s.classes.On("FindOne", mock.Anything, mockContract).Return(singleClass(), nil)

	err := s.uc.Mint(c, mockAlice, mockContract, mockAlice, mockTokenId, 1, "uri://1")
	s.Equal(domain.ErrUnauthorized, err)
}

func (s *nftSuite) TestMintMultiIncrementsHolding() {
	c := ctx.Background()
	s.classes.On("FindOne", mock.Anything, mockContract).Return(multiClass(), nil)
	s.holdings.On("Increment", mock.Anything, nft.HoldingId{Contract: mockContract, TokenId: mockTokenId, Owner: mockAlice}, int64(20)).Return(int64(20), nil).Once()

	err := s.uc.Mint(c, mockCreator, mockContract, mockAlice, mockTokenId, 20, "")
	s.NoError(err)
	s.holdings.AssertExpectations(s.T())
}

func (s *nftSuite) TestTransferSingleByOwner() {
	c := ctx.Background()
	s.classes.On("FindOne", mock.Anything, mockContract).Return(singleClass(), nil)
	s.items.On("FindOne", mock.Anything, nft.ItemId{Contract: mockContract, TokenId: mockTokenId}).Return(&nft.Item{Contract: mockContract, TokenId: mockTokenId, Owner: mockAlice}, nil)
	s.items.On("Update", mock.Anything, nft.ItemId{Contract: mockContract, TokenId: mockTokenId}, mock.MatchedBy(func(p nft.ItemPatchable) bool {
		return p.Owner != nil && *p.Owner == mockBob
	})).Return(nil).Once()

	err := s.uc.TransferSingle(c, mockAlice, mockContract, mockAlice, mockBob, mockTokenId)
	s.NoError(err)
	s.items.AssertExpectations(s.T())
}

func (s *nftSuite) TestTransferSingleRejectsUnapprovedOperator() {
	c := ctx.Background()
	s.classes.On("FindOne", mock.Anything, mockContract).Return(singleClass(), nil)
	s.items.On("FindOne", mock.Anything, nft.ItemId{Contract: mockContract, TokenId: mockTokenId}).Return(&nft.Item{Contract: mockContract, TokenId: mockTokenId, Owner: mockAlice}, nil)
	s.approvals.On("FindOne", mock.Anything, nft.ApprovalId{Contract: mockContract, Owner: mockAlice, Operator: mockOperator}).Return(nil, domain.ErrNotFound)

	err := s.uc.TransferSingle(c, mockOperator, mockContract, mockAlice, mockBob, mockTokenId)
	s.Equal(domain.ErrUnauthorized, err)
	s.items.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything, mock.Anything)
}

func (s *nftSuite) TestTransferSingleByApprovedOperator() {
	c := ctx.Background()
	s.classes.On("FindOne", mock.Anything, mockContract).Return(singleClass(), nil)
	s.items.On("FindOne", mock.Anything, nft.ItemId{Contract: mockContract, TokenId: mockTokenId}).Return(&nft.Item{Contract: mockContract, TokenId: mockTokenId, Owner: mockAlice}, nil)
	s.approvals.On("FindOne", mock.Anything, nft.ApprovalId{Contract: mockContract, Owner: mockAlice, Operator: mockOperator}).Return(&nft.Approval{Contract: mockContract, Owner: mockAlice, Operator: mockOperator, Approved: true}, nil)
	s.items.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	err := s.uc.TransferSingle(c, mockOperator, mockContract, mockAlice, mockBob, mockTokenId)
	s.NoError(err)
	s.items.AssertExpectations(s.T())
}

func (s *nftSuite) TestTransferSingleRejectsWrongHolder() {
	c := ctx.Background()
	s.classes.On("FindOne", mock.Anything, mockContract).Return(singleClass(), nil)
	s.items.On("FindOne", mock.Anything, nft.ItemId{Contract: mockContract, TokenId: mockTokenId}).Return(&nft.Item{Contract: mockContract, TokenId: mockTokenId, Owner: mockBob}, nil)

	err := s.uc.TransferSingle(c, mockAlice, mockContract, mockAlice, mockBob, mockTokenId)
	s.Equal(domain.ErrInvalidState, err)
}

func (s *nftSuite) TestTransferUnits() {
	c := ctx.Background()
	s.classes.On("FindOne", mock.Anything, mockContract).Return(multiClass(), nil)
	s.holdings.On("FindOne", mock.Anything, nft.HoldingId{Contract: mockContract, TokenId: mockTokenId, Owner: mockAlice}).Return(&nft.Holding{Contract: mockContract, TokenId: mockTokenId, Owner: mockAlice, Balance: 10}, nil)
	s.holdings.On("Increment", mock.Anything, nft.HoldingId{Contract: mockContract, TokenId: mockTokenId, Owner: mockAlice}, int64(-4)).Return(int64(6), nil).Once()
	s.holdings.On("Increment", mock.Anything, nft.HoldingId{Contract: mockContract, TokenId: mockTokenId, Owner: mockBob}, int64(4)).Return(int64(4), nil).Once()

	err := s.uc.TransferUnits(c, mockAlice, mockContract, mockAlice, mockBob, mockTokenId, 4)
	s.NoError(err)
	s.holdings.AssertExpectations(s.T())
}

func (s *nftSuite) TestTransferUnitsRejectsShortBalance() {
	c := ctx.Background()
	s.classes.On("FindOne", mock.Anything, mockContract).Return(multiClass(), nil)
	s.holdings.On("FindOne", mock.Anything, nft.HoldingId{Contract: mockContract, TokenId: mockTokenId, Owner: mockAlice}).Return(&nft.Holding{Contract: mockContract, TokenId: mockTokenId, Owner: mockAlice, Balance: 3}, nil)

	err := s.uc.TransferUnits(c, mockAlice, mockContract, mockAlice, mockBob, mockTokenId, 4)
	s.Equal(domain.ErrInsufficientBalance, err)
	s.holdings.AssertNotCalled(s.T(), "Increment", mock.Anything, mock.Anything, mock.Anything)
}

func (s *nftSuite) TestTransferUnitsRejectsSingleClass() {
	c := ctx.Background()
	s.classes.On("FindOne", mock.Anything, mockContract).Return(singleClass(), nil)

	err := s.uc.TransferUnits(c, mockAlice, mockContract, mockAlice, mockBob, mockTokenId, 4)
	s.Equal(domain.ErrInvalidInput, err)
}

func (s *nftSuite) TestBalanceOfSingle() {
	c := ctx.Background()
	s.classes.On("FindOne", mock.Anything, mockContract).Return(singleClass(), nil)
	s.items.On("FindOne", mock.Anything, nft.ItemId{Contract: mockContract, TokenId: mockTokenId}).Return(&nft.Item{Contract: mockContract, TokenId: mockTokenId, Owner: mockAlice}, nil)

	balance, err := s.uc.BalanceOf(c, mockContract, mockTokenId, mockAlice)
	s.NoError(err)
	s.Equal(int64(1), balance)

	balance, err = s.uc.BalanceOf(c, mockContract, mockTokenId, mockBob)
	s.NoError(err)
	s.Equal(int64(0), balance)
}

func (s *nftSuite) TestBalanceOfMulti() {
	c := ctx.Background()
	s.classes.On("FindOne", mock.Anything, mockContract).Return(multiClass(), nil)
	s.holdings.On("FindOne", mock.Anything, nft.HoldingId{Contract: mockContract, TokenId: mockTokenId, Owner: mockAlice}).Return(&nft.Holding{Contract: mockContract, TokenId: mockTokenId, Owner: mockAlice, Balance: 7}, nil)

	balance, err := s.uc.BalanceOf(c, mockContract, mockTokenId, mockAlice)
	s.NoError(err)
	s.Equal(int64(7), balance)
}

func (s *nftSuite) TestCreateClassRejectsUnknownKind() {
	c := ctx.Background()
	class := singleClass()
	class.Kind = nft.Kind("fractional")

	_, err := s.uc.CreateClass(c, class)
	s.Equal(domain.ErrInvalidInput, err)
	s.classes.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
}
