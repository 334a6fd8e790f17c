package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/marketplace"
	"github.com/mintora/goledger/domain/nft"
	mNft "github.com/mintora/goledger/domain/nft/mocks"
)

type adapterSuite struct {
	suite.Suite

	nft     *mNft.UseCase
	adapter marketplace.AssetAdapter
}

func TestAdapterSuite(t *testing.T) {
	suite.Run(t, new(adapterSuite))
}

func (s *adapterSuite) SetupTest() {
	s.nft = &mNft.UseCase{}
	s.adapter = NewAssetAdapter(s.nft, mockProgram)
}

func (s *adapterSuite) TestSingleKindUsesExclusiveTransfer() {
	c := ctx.Background()
	s.nft.On("GetClass", mock.Anything, mockContract).Return(&nft.Class{
		Address: mockContract,
		Kind:    nft.KindSingle,
	}, nil).Once()
	s.nft.On("TransferSingle", mock.Anything, mockProgram, mockContract, mockSeller, mockBuyer, mockAssetId).
		Return(nil).Once()

	err := s.adapter.TransferAsset(c, mockContract, mockSeller, mockBuyer, mockAssetId)
	s.NoError(err)
	s.nft.AssertExpectations(s.T())
	s.nft.AssertNotCalled(s.T(), "TransferUnits", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *adapterSuite) TestMultiKindMovesOneUnit() {
	c := ctx.Background()
	s.nft.On("GetClass", mock.Anything, mockContract).Return(&nft.Class{
		Address: mockContract,
		Kind:    nft.KindMulti,
	}, nil).Once()
	s.nft.On("TransferUnits", mock.Anything, mockProgram, mockContract, mockSeller, mockBuyer, mockAssetId, int64(1)).
		Return(nil).Once()

	err := s.adapter.TransferAsset(c, mockContract, mockSeller, mockBuyer, mockAssetId)
	s.NoError(err)
	s.nft.AssertExpectations(s.T())
	s.nft.AssertNotCalled(s.T(), "TransferSingle", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *adapterSuite) TestUnknownClassIsUnsupported() {
	c := ctx.Background()
	s.nft.On("GetClass", mock.Anything, mockContract).Return(nil, domain.ErrNotFound).Once()

	err := s.adapter.TransferAsset(c, mockContract, mockSeller, mockBuyer, mockAssetId)
	s.Equal(domain.ErrUnsupportedAssetKind, err)
	s.nft.AssertNotCalled(s.T(), "TransferSingle", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.nft.AssertNotCalled(s.T(), "TransferUnits", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *adapterSuite) TestUnknownKindIsUnsupported() {
	c := ctx.Background()
	s.nft.On("GetClass", mock.Anything, mockContract).Return(&nft.Class{
		Address: mockContract,
		Kind:    nft.Kind("soulbound"),
	}, nil).Once()

	err := s.adapter.TransferAsset(c, mockContract, mockSeller, mockBuyer, mockAssetId)
	s.Equal(domain.ErrUnsupportedAssetKind, err)
}

func (s *adapterSuite) TestTransferErrorPropagates() {
	c := ctx.Background()
	s.nft.On("GetClass", mock.Anything, mockContract).Return(&nft.Class{
		Address: mockContract,
		Kind:    nft.KindSingle,
	}, nil).Once()
	s.nft.On("TransferSingle", mock.Anything, mockProgram, mockContract, mockSeller, mockBuyer, mockAssetId).
		Return(domain.ErrUnauthorized).Once()

	err := s.adapter.TransferAsset(c, mockContract, mockSeller, mockBuyer, mockAssetId)
	s.Equal(domain.ErrUnauthorized, err)
}
