package usecase

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/execution"
	"github.com/mintora/goledger/base/pricefmt"
	"github.com/mintora/goledger/domain"
	mBank "github.com/mintora/goledger/domain/bank/mocks"
	"github.com/mintora/goledger/domain/event"
	mEvent "github.com/mintora/goledger/domain/event/mocks"
	"github.com/mintora/goledger/domain/fungible"
	mFungible "github.com/mintora/goledger/domain/fungible/mocks"
	"github.com/mintora/goledger/domain/marketplace"
	mMarketplace "github.com/mintora/goledger/domain/marketplace/mocks"
	mQuery "github.com/mintora/goledger/service/query/mocks"
)

var (
	mockProgram  = domain.Address("0x7a3c7e5f2b9b6d1c4e8f0a2b3c4d5e6f70818283")
	mockOwner    = domain.Address("0x1a01ecd2263a9d5b5967667e508ea22db478bc4b")
	mockTreasury = domain.Address("0x4b076f0e07eed3f1007fb1b5c000c7a08ad1dd27")
	mockSeller   = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	mockBuyer    = domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
	mockBidder   = domain.Address("0x68e24f91b2ec4b2d43f9413b38668289023f1b86")
	mockRival    = domain.Address("0x1d8f3bfc1e507db8f4e1a662b4063cde057a0c90")
	mockContract = domain.Address("0x9a1def283b1e9d5a6b30f46e227a28f6b9d9b7b2")
	mockPayToken = domain.Address("0x2f90a4463c1b5a327ee945a1b5b127aef4b69a10")
	mockAssetId  = domain.TokenId("42")
)

type marketplaceSuite struct {
	suite.Suite

	listings  *mMarketplace.ListingRepo
	settings  *mMarketplace.SettingsRepo
	blacklist *mMarketplace.BlacklistRepo
	adapter   *mMarketplace.AssetAdapter
	bank      *mBank.UseCase
	fungible  *mFungible.UseCase
	events    *mEvent.UseCase
	uc        marketplace.UseCase
}

func TestMarketplaceSuite(t *testing.T) {
	suite.Run(t, new(marketplaceSuite))
}

func (s *marketplaceSuite) SetupTest() {
	s.listings = &mMarketplace.ListingRepo{}
	s.settings = &mMarketplace.SettingsRepo{}
	s.blacklist = &mMarketplace.BlacklistRepo{}
	s.adapter = &mMarketplace.AssetAdapter{}
	s.bank = &mBank.UseCase{}
	s.fungible = &mFungible.UseCase{}
	s.events = &mEvent.UseCase{}

	tokens := &mFungible.TokenRepo{}
	tokens.On("FindOne", mock.Anything, mockPayToken).Return(&fungible.Token{
		Address:  mockPayToken,
		Name:     "Settlement Coin",
		Symbol:   "STLC",
		Decimals: 6,
	}, nil)
	tokens.On("FindOne", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)

	q := &mQuery.Mongo{}
	q.On("RunWithTransaction", mock.Anything, mock.Anything).Return(func(c ctx.Ctx, run func(ctx.Ctx) error) error {
		return run(c)
	})
	s.uc = New(&MarketplaceUseCaseCfg{
		ListingRepo:     s.listings,
		SettingsRepo:    s.settings,
		BlacklistRepo:   s.blacklist,
		AssetAdapter:    s.adapter,
		BankUseCase:     s.bank,
		FungibleUseCase: s.fungible,
		EventUseCase:    s.events,
		Formatter:       pricefmt.NewFormatter(&pricefmt.FormatterCfg{Tokens: tokens}),
		Q:               q,
		Guard:           execution.NewGuard("marketplace", execution.NewGate()),
		Program:         mockProgram,
	})
}

func (s *marketplaceSuite) notBlacklisted() {
	s.blacklist.On("FindOne", mock.Anything, mock.Anything).Return(nil, nil)
}

func (s *marketplaceSuite) blacklisted(user domain.Address) {
	now := time.Now()
	s.blacklist.On("FindOne", mock.Anything, user).Return(&marketplace.BlacklistEntry{
		Address:   user,
		CreatedAt: &now,
	}, nil)
}

// withSettings installs a 3% buyer fee and a 2.5% seller fee.
func (s *marketplaceSuite) withSettings() {
	s.settings.On("Get", mock.Anything).Return(&marketplace.Settings{
		Key:          marketplace.SettingsKey,
		Owner:        mockOwner,
		Treasury:     mockTreasury,
		BuyerFeeBps:  300,
		SellerFeeBps: 250,
	}, nil)
}

func amountEq(expected string) interface{} {
	return mock.MatchedBy(func(v *big.Int) bool {
		return v != nil && v.String() == expected
	})
}

func fixedListing() *marketplace.Listing {
	now := time.Now()
	return &marketplace.Listing{
		Id:            marketplace.ToListingId(mockContract, mockAssetId, mockSeller),
		Seller:        mockSeller,
		AssetContract: mockContract,
		AssetId:       mockAssetId,
		Price:         "100",
		PayToken:      domain.EmptyAddress,
		CreatedAt:     &now,
	}
}

func auctionListing(end time.Time) *marketplace.Listing {
	listing := fixedListing()
	listing.IsAuction = true
	listing.AuctionEndTime = &end
	return listing
}

func (s *marketplaceSuite) TestListFixedPrice() {
	c := ctx.Background()
	s.notBlacklisted()
	id := marketplace.ToListingId(mockContract, mockAssetId, mockSeller)
	s.listings.On("FindOne", mock.Anything, id).Return(nil, domain.ErrNotFound)
	s.listings.On("Insert", mock.Anything, mock.MatchedBy(func(l *marketplace.Listing) bool {
		return l.Id == id && l.Seller == mockSeller && l.Price == "100" &&
			!l.IsAuction && l.AuctionEndTime == nil
	})).Return(nil).Once()
	s.adapter.On("TransferAsset", mock.Anything, mockContract, mockSeller, mockProgram, mockAssetId).Return(nil).Once()
	s.events.On("Emit", mock.Anything, mock.MatchedBy(func(ev *event.Event) bool {
		return ev.Type == event.TypeListed && ev.ListingId == id.String() && ev.Seller == mockSeller
	})).Return(nil, nil).Once()

	listing, err := s.uc.List(c, mockSeller, mockContract, mockAssetId, big.NewInt(100), domain.EmptyAddress, false, 0)
	s.NoError(err)
	s.Equal(id, listing.Id)
	s.Equal("0.0000000000000001", listing.DisplayPrice)
	s.NotNil(listing.CreatedAt)
	s.listings.AssertExpectations(s.T())
	s.adapter.AssertExpectations(s.T())
	s.events.AssertExpectations(s.T())
}

func (s *marketplaceSuite) TestListAuctionSetsEndTime() {
	c := ctx.Background()
	s.notBlacklisted()
	id := marketplace.ToListingId(mockContract, mockAssetId, mockSeller)
	s.listings.On("FindOne", mock.Anything, id).Return(nil, domain.ErrNotFound)
	s.listings.On("Insert", mock.Anything, mock.MatchedBy(func(l *marketplace.Listing) bool {
		return l.IsAuction && l.AuctionEndTime != nil
	})).Return(nil).Once()
	s.adapter.On("TransferAsset", mock.Anything, mockContract, mockSeller, mockProgram, mockAssetId).Return(nil)
	s.events.On("Emit", mock.Anything, mock.Anything).Return(nil, nil)

	listing, err := s.uc.List(c, mockSeller, mockContract, mockAssetId, big.NewInt(100), domain.EmptyAddress, true, 24*time.Hour)
	s.NoError(err)
	s.WithinDuration(time.Now().Add(24*time.Hour), *listing.AuctionEndTime, 5*time.Second)
}

func (s *marketplaceSuite) TestListRejectsDuplicate() {
	c := ctx.Background()
	s.notBlacklisted()
	listing := fixedListing()
	s.listings.On("FindOne", mock.Anything, listing.Id).Return(listing, nil)

	_, err := s.uc.List(c, mockSeller, mockContract, mockAssetId, big.NewInt(100), domain.EmptyAddress, false, 0)
	s.Equal(domain.ErrAlreadyListed, err)
	s.listings.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
}

func (s *marketplaceSuite) TestListRejectsUnknownPayToken() {
	c := ctx.Background()
	s.notBlacklisted()
	unknown := domain.Address("0x3d2f5a0b3f1c0de4b5a69e7d84a5b7c2d1e0f9a8")

	_, err := s.uc.List(c, mockSeller, mockContract, mockAssetId, big.NewInt(100), unknown, false, 0)
	s.Equal(domain.ErrInvalidInput, err)
	s.listings.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
}

func (s *marketplaceSuite) TestListRejectsNonPositivePrice() {
	c := ctx.Background()
	s.notBlacklisted()

	_, err := s.uc.List(c, mockSeller, mockContract, mockAssetId, big.NewInt(0), domain.EmptyAddress, false, 0)
	s.Equal(domain.ErrInvalidInput, err)
	_, err = s.uc.List(c, mockSeller, mockContract, mockAssetId, nil, domain.EmptyAddress, false, 0)
	s.Equal(domain.ErrInvalidInput, err)
}

func (s *marketplaceSuite) TestListRejectsAuctionWithoutDuration() {
	c := ctx.Background()
	s.notBlacklisted()

	_, err := s.uc.List(c, mockSeller, mockContract, mockAssetId, big.NewInt(100), domain.EmptyAddress, true, 0)
	s.Equal(domain.ErrInvalidInput, err)
}

func (s *marketplaceSuite) TestBuySettlesFeesAndAsset() {
	c := ctx.Background()
	s.notBlacklisted()
	s.withSettings()
	listing := fixedListing()
	s.listings.On("FindOne", mock.Anything, listing.Id).Return(listing, nil)
	s.listings.On("Remove", mock.Anything, listing.Id).Return(nil).Once()
	// buyer pays 103, seller receives 98, treasury collects both fees
	s.bank.On("Transfer", mock.Anything, mockBuyer, mockProgram, amountEq("103")).Return(nil).Once()
	s.bank.On("Transfer", mock.Anything, mockProgram, mockSeller, amountEq("98")).Return(nil).Once()
	s.bank.On("Transfer", mock.Anything, mockProgram, mockTreasury, amountEq("5")).Return(nil).Once()
	s.adapter.On("TransferAsset", mock.Anything, mockContract, mockProgram, mockBuyer, mockAssetId).Return(nil).Once()
	s.events.On("Emit", mock.Anything, mock.MatchedBy(func(ev *event.Event) bool {
		return ev.Type == event.TypeBought && ev.Account == mockBuyer && ev.Amount == "103" &&
			ev.Seller == mockSeller && ev.AssetContract == mockContract
	})).Return(nil, nil).Once()

	err := s.uc.Buy(c, mockBuyer, listing.Id, big.NewInt(103))
	s.NoError(err)
	s.listings.AssertExpectations(s.T())
	s.bank.AssertExpectations(s.T())
	s.adapter.AssertExpectations(s.T())
	s.events.AssertExpectations(s.T())
}

func (s *marketplaceSuite) TestBuyRejectsInexactNativePayment() {
	c := ctx.Background()
	s.notBlacklisted()
	s.withSettings()
	listing := fixedListing()
	s.listings.On("FindOne", mock.Anything, listing.Id).Return(listing, nil)
	s.listings.On("Remove", mock.Anything, listing.Id).Return(nil)

	s.Equal(domain.ErrInsufficientPayment, s.uc.Buy(c, mockBuyer, listing.Id, big.NewInt(102)))
	s.Equal(domain.ErrInsufficientPayment, s.uc.Buy(c, mockBuyer, listing.Id, big.NewInt(104)))
	s.Equal(domain.ErrInsufficientPayment, s.uc.Buy(c, mockBuyer, listing.Id, nil))
	s.bank.AssertNotCalled(s.T(), "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *marketplaceSuite) TestBuyRejectsAuction() {
	c := ctx.Background()
	s.notBlacklisted()
	listing := auctionListing(time.Now().Add(time.Hour))
	s.listings.On("FindOne", mock.Anything, listing.Id).Return(listing, nil)

	err := s.uc.Buy(c, mockBuyer, listing.Id, big.NewInt(103))
	s.Equal(domain.ErrInvalidState, err)
	s.listings.AssertNotCalled(s.T(), "Remove", mock.Anything, mock.Anything)
}

func (s *marketplaceSuite) TestBuyPullsTokenPayment() {
	c := ctx.Background()
	s.notBlacklisted()
	s.withSettings()
	listing := fixedListing()
	listing.PayToken = mockPayToken
	s.listings.On("FindOne", mock.Anything, listing.Id).Return(listing, nil)
	s.listings.On("Remove", mock.Anything, listing.Id).Return(nil).Once()
	s.fungible.On("TransferFrom", mock.Anything, mockProgram, mockPayToken, mockBuyer, mockProgram, amountEq("103")).Return(nil).Once()
	s.fungible.On("Transfer", mock.Anything, mockPayToken, mockProgram, mockSeller, amountEq("98")).Return(nil).Once()
	s.fungible.On("Transfer", mock.Anything, mockPayToken, mockProgram, mockTreasury, amountEq("5")).Return(nil).Once()
	s.adapter.On("TransferAsset", mock.Anything, mockContract, mockProgram, mockBuyer, mockAssetId).Return(nil).Once()
	s.events.On("Emit", mock.Anything, mock.Anything).Return(nil, nil)

	err := s.uc.Buy(c, mockBuyer, listing.Id, nil)
	s.NoError(err)
	s.fungible.AssertExpectations(s.T())
	s.bank.AssertNotCalled(s.T(), "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *marketplaceSuite) TestBuyRejectsAttachedValueOnTokenListing() {
	c := ctx.Background()
	s.notBlacklisted()
	s.withSettings()
	listing := fixedListing()
	listing.PayToken = mockPayToken
	s.listings.On("FindOne", mock.Anything, listing.Id).Return(listing, nil)
	s.listings.On("Remove", mock.Anything, listing.Id).Return(nil)

	err := s.uc.Buy(c, mockBuyer, listing.Id, big.NewInt(5))
	s.Equal(domain.ErrInvalidInput, err)
	s.fungible.AssertNotCalled(s.T(), "TransferFrom", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *marketplaceSuite) TestPlaceBidRecordsFirstBid() {
	c := ctx.Background()
	s.notBlacklisted()
	listing := auctionListing(time.Now().Add(time.Hour))
	s.listings.On("FindOne", mock.Anything, listing.Id).Return(listing, nil)
	s.bank.On("Transfer", mock.Anything, mockBidder, mockProgram, amountEq("100")).Return(nil).Once()
	s.listings.On("Update", mock.Anything, listing.Id, mock.MatchedBy(func(p marketplace.ListingPatchable) bool {
		return p.HighestBid != nil && *p.HighestBid == "100" &&
			p.HighestBidder != nil && *p.HighestBidder == mockBidder
	})).Return(nil).Once()
	s.events.On("Emit", mock.Anything, mock.MatchedBy(func(ev *event.Event) bool {
		return ev.Type == event.TypeBidPlaced && ev.Account == mockBidder && ev.Amount == "100"
	})).Return(nil, nil).Once()

	err := s.uc.PlaceBid(c, mockBidder, listing.Id, big.NewInt(100), big.NewInt(100))
	s.NoError(err)
	s.listings.AssertExpectations(s.T())
	s.bank.AssertExpectations(s.T())
	s.events.AssertExpectations(s.T())
}

func (s *marketplaceSuite) TestPlaceBidRefundsOutbidBidder() {
	c := ctx.Background()
	s.notBlacklisted()
	listing := auctionListing(time.Now().Add(time.Hour))
	listing.HighestBid = "100"
	listing.HighestBidder = mockBidder
	s.listings.On("FindOne", mock.Anything, listing.Id).Return(listing, nil)
	s.bank.On("Transfer", mock.Anything, mockRival, mockProgram, amountEq("200")).Return(nil).Once()
	s.bank.On("Transfer", mock.Anything, mockProgram, mockBidder, amountEq("100")).Return(nil).Once()
	s.listings.On("Update", mock.Anything, listing.Id, mock.MatchedBy(func(p marketplace.ListingPatchable) bool {
		return p.HighestBid != nil && *p.HighestBid == "200" &&
			p.HighestBidder != nil && *p.HighestBidder == mockRival
	})).Return(nil).Once()
	s.events.On("Emit", mock.Anything, mock.Anything).Return(nil, nil)

	err := s.uc.PlaceBid(c, mockRival, listing.Id, big.NewInt(200), big.NewInt(200))
	s.NoError(err)
	s.bank.AssertExpectations(s.T())
	s.listings.AssertExpectations(s.T())
}

func (s *marketplaceSuite) TestPlaceBidRejectsShortIncrement() {
	c := ctx.Background()
	s.notBlacklisted()
	listing := auctionListing(time.Now().Add(time.Hour))
	listing.HighestBid = "100"
	listing.HighestBidder = mockBidder
	s.listings.On("FindOne", mock.Anything, listing.Id).Return(listing, nil)

	err := s.uc.PlaceBid(c, mockRival, listing.Id, big.NewInt(100), big.NewInt(100))
	s.Equal(domain.ErrInsufficientPayment, err)
	s.bank.AssertNotCalled(s.T(), "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *marketplaceSuite) TestPlaceBidRejectsEndedAuction() {
	c := ctx.Background()
	s.notBlacklisted()
	listing := auctionListing(time.Now().Add(-time.Hour))
	s.listings.On("FindOne", mock.Anything, listing.Id).Return(listing, nil)

	err := s.uc.PlaceBid(c, mockBidder, listing.Id, big.NewInt(100), big.NewInt(100))
	s.Equal(domain.ErrInvalidState, err)
}

func (s *marketplaceSuite) TestPlaceBidRejectsFixedPriceListing() {
	c := ctx.Background()
	s.notBlacklisted()
	listing := fixedListing()
	s.listings.On("FindOne", mock.Anything, listing.Id).Return(listing, nil)

	err := s.uc.PlaceBid(c, mockBidder, listing.Id, big.NewInt(100), big.NewInt(100))
	s.Equal(domain.ErrInvalidState, err)
}

func (s *marketplaceSuite) TestPlaceBidUndeliverableRefundRejectsBid() {
	c := ctx.Background()
	s.notBlacklisted()
	listing := auctionListing(time.Now().Add(time.Hour))
	listing.HighestBid = "100"
	listing.HighestBidder = mockBidder
	s.listings.On("FindOne", mock.Anything, listing.Id).Return(listing, nil)
	s.bank.On("Transfer", mock.Anything, mockRival, mockProgram, amountEq("200")).Return(nil)
	s.bank.On("Transfer", mock.Anything, mockProgram, mockBidder, amountEq("100")).Return(domain.ErrInsufficientBalance)

	err := s.uc.PlaceBid(c, mockRival, listing.Id, big.NewInt(200), big.NewInt(200))
	s.Equal(domain.ErrTransferFailure, err)
	s.listings.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything, mock.Anything)
}

func (s *marketplaceSuite) TestClaimByWinnerSettles() {
	c := ctx.Background()
	s.notBlacklisted()
	s.withSettings()
	listing := auctionListing(time.Now().Add(-time.Hour))
	listing.HighestBid = "200"
	listing.HighestBidder = mockBidder
	s.listings.On("FindOne", mock.Anything, listing.Id).Return(listing, nil)
	s.listings.On("Update", mock.Anything, listing.Id, mock.MatchedBy(func(p marketplace.ListingPatchable) bool {
		return p.Claimed != nil && *p.Claimed
	})).Return(nil).Once()
	// winning bid 200 settles as 195 to the seller, 5 to the treasury
	s.bank.On("Transfer", mock.Anything, mockProgram, mockSeller, amountEq("195")).Return(nil).Once()
	s.bank.On("Transfer", mock.Anything, mockProgram, mockTreasury, amountEq("5")).Return(nil).Once()
	s.adapter.On("TransferAsset", mock.Anything, mockContract, mockProgram, mockBidder, mockAssetId).Return(nil).Once()
	s.events.On("Emit", mock.Anything, mock.MatchedBy(func(ev *event.Event) bool {
		return ev.Type == event.TypeClaimed && ev.Account == mockBidder &&
			ev.Winner == mockBidder && ev.Amount == "200"
	})).Return(nil, nil).Once()

	err := s.uc.Claim(c, mockBidder, listing.Id)
	s.NoError(err)
	s.listings.AssertExpectations(s.T())
	s.bank.AssertExpectations(s.T())
	s.adapter.AssertExpectations(s.T())
	s.events.AssertExpectations(s.T())
}

func (s *marketplaceSuite) TestClaimBySellerAtReserve() {
	c := ctx.Background()
	s.notBlacklisted()
	s.withSettings()
	listing := auctionListing(time.Now().Add(-time.Hour))
	listing.HighestBid = "200"
	listing.HighestBidder = mockBidder
	s.listings.On("FindOne", mock.Anything, listing.Id).Return(listing, nil)
	s.listings.On("Update", mock.Anything, listing.Id, mock.Anything).Return(nil).Once()
	s.bank.On("Transfer", mock.Anything, mockProgram, mockSeller, amountEq("195")).Return(nil).Once()
	s.bank.On("Transfer", mock.Anything, mockProgram, mockTreasury, amountEq("5")).Return(nil).Once()
	s.adapter.On("TransferAsset", mock.Anything, mockContract, mockProgram, mockBidder, mockAssetId).Return(nil).Once()
	s.events.On("Emit", mock.Anything, mock.MatchedBy(func(ev *event.Event) bool {
		return ev.Type == event.TypeClaimed && ev.Account == mockSeller
	})).Return(nil, nil).Once()

	err := s.uc.Claim(c, mockSeller, listing.Id)
	s.NoError(err)
	s.bank.AssertExpectations(s.T())
	s.adapter.AssertExpectations(s.T())
}

func (s *marketplaceSuite) TestClaimRejectsSellerBelowReserve() {
	c := ctx.Background()
	s.notBlacklisted()
	listing := auctionListing(time.Now().Add(-time.Hour))
	listing.Price = "300"
	listing.HighestBid = "200"
	listing.HighestBidder = mockBidder
	s.listings.On("FindOne", mock.Anything, listing.Id).Return(listing, nil)

	err := s.uc.Claim(c, mockSeller, listing.Id)
	s.Equal(domain.ErrUnauthorized, err)
	s.listings.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything, mock.Anything)
}

func (s *marketplaceSuite) TestClaimRejectsStranger() {
	c := ctx.Background()
	s.notBlacklisted()
	listing := auctionListing(time.Now().Add(-time.Hour))
	listing.HighestBid = "200"
	listing.HighestBidder = mockBidder
	s.listings.On("FindOne", mock.Anything, listing.Id).Return(listing, nil)

	err := s.uc.Claim(c, mockRival, listing.Id)
	s.Equal(domain.ErrUnauthorized, err)
}

func (s *marketplaceSuite) TestClaimRejectsNoBidAuction() {
	c := ctx.Background()
	s.notBlacklisted()
	listing := auctionListing(time.Now().Add(-time.Hour))
	s.listings.On("FindOne", mock.Anything, listing.Id).Return(listing, nil)

	err := s.uc.Claim(c, mockSeller, listing.Id)
	s.Equal(domain.ErrUnauthorized, err)
}

func (s *marketplaceSuite) TestClaimRejectsSecondClaim() {
	c := ctx.Background()
	s.notBlacklisted()
	listing := auctionListing(time.Now().Add(-time.Hour))
	listing.HighestBid = "200"
	listing.HighestBidder = mockBidder
	listing.Claimed = true
	s.listings.On("FindOne", mock.Anything, listing.Id).Return(listing, nil)

	err := s.uc.Claim(c, mockBidder, listing.Id)
	s.Equal(domain.ErrInvalidState, err)
	s.bank.AssertNotCalled(s.T(), "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *marketplaceSuite) TestClaimRejectsOpenAuction() {
	c := ctx.Background()
	s.notBlacklisted()
	listing := auctionListing(time.Now().Add(time.Hour))
	listing.HighestBid = "200"
	listing.HighestBidder = mockBidder
	s.listings.On("FindOne", mock.Anything, listing.Id).Return(listing, nil)

	err := s.uc.Claim(c, mockBidder, listing.Id)
	s.Equal(domain.ErrInvalidState, err)
}

func (s *marketplaceSuite) TestClaimRejectsFixedPriceListing() {
	c := ctx.Background()
	s.notBlacklisted()
	listing := fixedListing()
	s.listings.On("FindOne", mock.Anything, listing.Id).Return(listing, nil)

	err := s.uc.Claim(c, mockSeller, listing.Id)
	s.Equal(domain.ErrInvalidState, err)
}

func (s *marketplaceSuite) TestCancelReturnsAsset() {
	c := ctx.Background()
	s.notBlacklisted()
	listing := fixedListing()
	s.listings.On("FindOne", mock.Anything, listing.Id).Return(listing, nil)
	s.listings.On("Remove", mock.Anything, listing.Id).Return(nil).Once()
	s.adapter.On("TransferAsset", mock.Anything, mockContract, mockProgram, mockSeller, mockAssetId).Return(nil).Once()
	s.events.On("Emit", mock.Anything, mock.MatchedBy(func(ev *event.Event) bool {
		return ev.Type == event.TypeListingCancelled && ev.Account == mockSeller
	})).Return(nil, nil).Once()

	err := s.uc.Cancel(c, mockSeller, listing.Id)
	s.NoError(err)
	s.listings.AssertExpectations(s.T())
	s.adapter.AssertExpectations(s.T())
	s.events.AssertExpectations(s.T())
}

func (s *marketplaceSuite) TestCancelAuctionBeforeBids() {
	c := ctx.Background()
	s.notBlacklisted()
	listing := auctionListing(time.Now().Add(time.Hour))
	s.listings.On("FindOne", mock.Anything, listing.Id).Return(listing, nil)
	s.listings.On("Remove", mock.Anything, listing.Id).Return(nil).Once()
	s.adapter.On("TransferAsset", mock.Anything, mockContract, mockProgram, mockSeller, mockAssetId).Return(nil).Once()
	s.events.On("Emit", mock.Anything, mock.Anything).Return(nil, nil)

	err := s.uc.Cancel(c, mockSeller, listing.Id)
	s.NoError(err)
	s.listings.AssertExpectations(s.T())
}

func (s *marketplaceSuite) TestCancelRejectsNonSeller() {
	c := ctx.Background()
	s.notBlacklisted()
	listing := fixedListing()
	s.listings.On("FindOne", mock.Anything, listing.Id).Return(listing, nil)

	err := s.uc.Cancel(c, mockBuyer, listing.Id)
	s.Equal(domain.ErrUnauthorized, err)
	s.listings.AssertNotCalled(s.T(), "Remove", mock.Anything, mock.Anything)
}

func (s *marketplaceSuite) TestCancelRejectsAuctionWithBids() {
	c := ctx.Background()
	s.notBlacklisted()
	listing := auctionListing(time.Now().Add(time.Hour))
	listing.HighestBid = "100"
	listing.HighestBidder = mockBidder
	s.listings.On("FindOne", mock.Anything, listing.Id).Return(listing, nil)

	err := s.uc.Cancel(c, mockSeller, listing.Id)
	s.Equal(domain.ErrInvalidState, err)
	s.listings.AssertNotCalled(s.T(), "Remove", mock.Anything, mock.Anything)
}

func (s *marketplaceSuite) TestCancelRejectsEndedAuction() {
	c := ctx.Background()
	s.notBlacklisted()
	listing := auctionListing(time.Now().Add(-time.Hour))
	s.listings.On("FindOne", mock.Anything, listing.Id).Return(listing, nil)

	err := s.uc.Cancel(c, mockSeller, listing.Id)
	s.Equal(domain.ErrInvalidState, err)
}

func (s *marketplaceSuite) TestBlacklistGatesLifecycle() {
	c := ctx.Background()
	s.blacklisted(mockRival)
	id := marketplace.ToListingId(mockContract, mockAssetId, mockRival)

	_, err := s.uc.List(c, mockRival, mockContract, mockAssetId, big.NewInt(100), domain.EmptyAddress, false, 0)
	s.Equal(domain.ErrUnauthorized, err)
	s.Equal(domain.ErrUnauthorized, s.uc.Buy(c, mockRival, id, big.NewInt(100)))
	s.Equal(domain.ErrUnauthorized, s.uc.PlaceBid(c, mockRival, id, big.NewInt(100), big.NewInt(100)))
	s.Equal(domain.ErrUnauthorized, s.uc.Claim(c, mockRival, id))
	s.Equal(domain.ErrUnauthorized, s.uc.Cancel(c, mockRival, id))
	s.listings.AssertNotCalled(s.T(), "FindOne", mock.Anything, mock.Anything)
}

func (s *marketplaceSuite) TestSetBuyerFeeBps() {
	c := ctx.Background()
	s.withSettings()
	s.settings.On("Update", mock.Anything, mock.MatchedBy(func(p marketplace.SettingsPatchable) bool {
		return p.BuyerFeeBps != nil && *p.BuyerFeeBps == 400 && p.SellerFeeBps == nil
	})).Return(nil).Once()
	s.events.On("Emit", mock.Anything, mock.MatchedBy(func(ev *event.Event) bool {
		return ev.Type == event.TypeBuyerFeeUpdated && ev.FeeBps != nil && *ev.FeeBps == 400
	})).Return(nil, nil).Once()

	err := s.uc.SetBuyerFeeBps(c, mockOwner, 400)
	s.NoError(err)
	s.settings.AssertExpectations(s.T())
	s.events.AssertExpectations(s.T())
}

func (s *marketplaceSuite) TestSetSellerFeeBps() {
	c := ctx.Background()
	s.withSettings()
	s.settings.On("Update", mock.Anything, mock.MatchedBy(func(p marketplace.SettingsPatchable) bool {
		return p.SellerFeeBps != nil && *p.SellerFeeBps == 100 && p.BuyerFeeBps == nil
	})).Return(nil).Once()
	s.events.On("Emit", mock.Anything, mock.MatchedBy(func(ev *event.Event) bool {
		return ev.Type == event.TypeSellerFeeUpdated && ev.FeeBps != nil && *ev.FeeBps == 100
	})).Return(nil, nil).Once()

	err := s.uc.SetSellerFeeBps(c, mockOwner, 100)
	s.NoError(err)
	s.settings.AssertExpectations(s.T())
}

func (s *marketplaceSuite) TestSetFeeRejectsNonOwner() {
	c := ctx.Background()
	s.withSettings()

	err := s.uc.SetBuyerFeeBps(c, mockSeller, 400)
	s.Equal(domain.ErrUnauthorized, err)
	s.settings.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *marketplaceSuite) TestSetFeeRejectsRateAboveFullAmount() {
	c := ctx.Background()
	s.withSettings()

	s.Equal(domain.ErrInvalidInput, s.uc.SetBuyerFeeBps(c, mockOwner, 10001))
	s.Equal(domain.ErrInvalidInput, s.uc.SetSellerFeeBps(c, mockOwner, -1))
	s.settings.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *marketplaceSuite) TestSetTreasuryIsSilent() {
	c := ctx.Background()
	s.withSettings()
	s.settings.On("Update", mock.Anything, mock.MatchedBy(func(p marketplace.SettingsPatchable) bool {
		return p.Treasury != nil && *p.Treasury == mockRival
	})).Return(nil).Once()

	err := s.uc.SetTreasury(c, mockOwner, mockRival)
	s.NoError(err)
	s.settings.AssertExpectations(s.T())
	s.events.AssertNotCalled(s.T(), "Emit", mock.Anything, mock.Anything)
}

func (s *marketplaceSuite) TestSetTreasuryRejectsSameValue() {
	c := ctx.Background()
	s.withSettings()

	err := s.uc.SetTreasury(c, mockOwner, mockTreasury)
	s.Equal(domain.ErrInvalidInput, err)
	s.settings.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *marketplaceSuite) TestSetTreasuryRejectsZeroAddress() {
	c := ctx.Background()
	s.withSettings()

	err := s.uc.SetTreasury(c, mockOwner, domain.EmptyAddress)
	s.Equal(domain.ErrInvalidInput, err)
}

func (s *marketplaceSuite) TestBlacklistUser() {
	c := ctx.Background()
	s.withSettings()
	s.blacklist.On("FindOne", mock.Anything, mockRival).Return(nil, nil)
	s.blacklist.On("Create", mock.Anything, mock.MatchedBy(func(entry marketplace.BlacklistEntry) bool {
		return entry.Address == mockRival && entry.CreatedAt != nil
	})).Return(nil).Once()
	s.events.On("Emit", mock.Anything, mock.MatchedBy(func(ev *event.Event) bool {
		return ev.Type == event.TypeUserBlacklisted && ev.Account == mockRival
	})).Return(nil, nil).Once()

	err := s.uc.BlacklistUser(c, mockOwner, mockRival)
	s.NoError(err)
	s.blacklist.AssertExpectations(s.T())
	s.events.AssertExpectations(s.T())
}

func (s *marketplaceSuite) TestBlacklistUserRejectsDuplicate() {
	c := ctx.Background()
	s.withSettings()
	s.blacklisted(mockRival)

	err := s.uc.BlacklistUser(c, mockOwner, mockRival)
	s.Equal(domain.ErrConflict, err)
	s.blacklist.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *marketplaceSuite) TestBlacklistUserRejectsNonOwner() {
	c := ctx.Background()
	s.withSettings()

	err := s.uc.BlacklistUser(c, mockSeller, mockRival)
	s.Equal(domain.ErrUnauthorized, err)
	s.blacklist.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *marketplaceSuite) TestRemoveUserFromBlacklist() {
	c := ctx.Background()
	s.withSettings()
	s.blacklisted(mockRival)
	s.blacklist.On("Delete", mock.Anything, mockRival).Return(nil).Once()
	s.events.On("Emit", mock.Anything, mock.MatchedBy(func(ev *event.Event) bool {
		return ev.Type == event.TypeUserRemovedFromBlacklist && ev.Account == mockRival
	})).Return(nil, nil).Once()

	err := s.uc.RemoveUserFromBlacklist(c, mockOwner, mockRival)
	s.NoError(err)
	s.blacklist.AssertExpectations(s.T())
	s.events.AssertExpectations(s.T())
}

func (s *marketplaceSuite) TestRemoveUserFromBlacklistRejectsUnknown() {
	c := ctx.Background()
	s.withSettings()
	s.blacklist.On("FindOne", mock.Anything, mockRival).Return(nil, nil)

	err := s.uc.RemoveUserFromBlacklist(c, mockOwner, mockRival)
	s.Equal(domain.ErrNotFound, err)
	s.blacklist.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything)
}

func (s *marketplaceSuite) TestFindAllReturnsListingsAndCount() {
	c := ctx.Background()
	stored := []*marketplace.Listing{fixedListing(), fixedListing()}
	s.listings.On("FindAll", mock.Anything).Return(stored, nil).Once()
	s.listings.On("Count", mock.Anything).Return(2, nil).Once()

	res, err := s.uc.FindAll(c)
	s.NoError(err)
	s.Equal(2, res.Count)
	s.Len(res.Listings, 2)
	s.listings.AssertExpectations(s.T())
}

func (s *marketplaceSuite) TestFindAllSurfacesRepoError() {
	c := ctx.Background()
	s.listings.On("FindAll", mock.Anything).Return(nil, domain.ErrInternalServerError).Once()
	s.listings.On("Count", mock.Anything).Return(0, nil).Once()

	_, err := s.uc.FindAll(c)
	s.Equal(domain.ErrInternalServerError, err)
}
