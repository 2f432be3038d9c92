// Code generated by mockery. Edited by hand to stay in sync with the
// auction.ServiceAuction interface.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"auctionhouse/pkg/auction"
	"auctionhouse/pkg/claims"
)

type ServiceAuction struct {
	mock.Mock
}

func (m *ServiceAuction) GetAll() []*auction.Auction {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*auction.Auction)
}

func (m *ServiceAuction) CreateAuction(a *auction.Auction, username, id string) error {
	args := m.Called(a, username, id)
	return args.Error(0)
}

func (m *ServiceAuction) GetByID(id string) (*auction.Auction, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auction.Auction), args.Error(1)
}

func (m *ServiceAuction) PlaceBid(auctionID string, amount int, c *claims.Claims) (*auction.Auction, error) {
	args := m.Called(auctionID, amount, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auction.Auction), args.Error(1)
}

func (m *ServiceAuction) Watch(auctionID, userID string) (*auction.Auction, error) {
	args := m.Called(auctionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auction.Auction), args.Error(1)
}

func (m *ServiceAuction) Unwatch(auctionID, userID string) (*auction.Auction, error) {
	args := m.Called(auctionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auction.Auction), args.Error(1)
}

func (m *ServiceAuction) Cancel(auctionID string, c *claims.Claims) (*auction.Auction, error) {
	args := m.Called(auctionID, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auction.Auction), args.Error(1)
}

func (m *ServiceAuction) GetBySeller(username string) []*auction.Auction {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*auction.Auction)
}

func (m *ServiceAuction) GetByCategory(category string) []*auction.Auction {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*auction.Auction)
}

func (m *ServiceAuction) GetByBidder(userID string) []*auction.Auction {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*auction.Auction)
}

func (m *ServiceAuction) GetByWatcher(userID string) []*auction.Auction {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*auction.Auction)
}
