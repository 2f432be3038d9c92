// Code generated by mockery. Edited by hand to stay in sync with the
// auction.Repository interface.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"auctionhouse/pkg/auction"
)

type RepoAuction struct {
	mock.Mock
}

func (m *RepoAuction) Create(a *auction.Auction) error {
	args := m.Called(a)
	return args.Error(0)
}

func (m *RepoAuction) GetByID(id string) (*auction.Auction, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auction.Auction), args.Error(1)
}

func (m *RepoAuction) GetAll() []*auction.Auction {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*auction.Auction)
}

func (m *RepoAuction) GetBySeller(username string) []*auction.Auction {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*auction.Auction)
}

func (m *RepoAuction) GetByCategory(category string) []*auction.Auction {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*auction.Auction)
}

func (m *RepoAuction) GetByBidder(userID string) []*auction.Auction {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*auction.Auction)
}

func (m *RepoAuction) GetByWatcher(userID string) []*auction.Auction {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*auction.Auction)
}

func (m *RepoAuction) AddBid(auctionID string, bid auction.Bid) (*auction.Auction, error) {
	args := m.Called(auctionID, bid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auction.Auction), args.Error(1)
}

func (m *RepoAuction) AddWatcher(auctionID string, userID string) (*auction.Auction, error) {
	args := m.Called(auctionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auction.Auction), args.Error(1)
}

func (m *RepoAuction) RemoveWatcher(auctionID string, userID string) (*auction.Auction, error) {
	args := m.Called(auctionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auction.Auction), args.Error(1)
}

func (m *RepoAuction) SetStatus(auctionID string, status auction.Status) (*auction.Auction, error) {
	args := m.Called(auctionID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auction.Auction), args.Error(1)
}
