package auction

import (
	"errors"
	"time"

	"auctionhouse/pkg/claims"
	"auctionhouse/pkg/user"
)

type ServiceAuction interface {
	GetAll() []*Auction
	CreateAuction(auction *Auction, username, id string) error
	GetByID(id string) (*Auction, error)
	PlaceBid(auctionID string, amount int, claims *claims.Claims) (*Auction, error)
	Watch(auctionID, userID string) (*Auction, error)
	Unwatch(auctionID, userID string) (*Auction, error)
	Cancel(auctionID string, claims *claims.Claims) (*Auction, error)
	GetBySeller(username string) []*Auction
	GetByCategory(category string) []*Auction
	GetByBidder(userID string) []*Auction
	GetByWatcher(userID string) []*Auction
}

type AuctionService struct {
	Repo Repository
}

func NewService(repo Repository) *AuctionService {
	return &AuctionService{Repo: repo}
}

func (s *AuctionService) GetAll() []*Auction {
	return applyDerivedStatus(s.Repo.GetAll())
}

func (s *AuctionService) CreateAuction(auction *Auction, username, id string) error {
	if !auction.StartTime.Before(auction.EndTime) {
		return errors.New("auction must end after it starts")
	}
	if auction.StartPrice < 0 {
		return errors.New("invalid start price")
	}

	auction.Seller = user.User{
		Username: username,
		ID:       id,
	}
	auction.CurrentPrice = auction.StartPrice
	auction.Created = time.Now()
	auction.Views = 0
	auction.Status = Classify(StatusUpcoming, auction.StartTime, auction.EndTime, time.Now())
	/* без этого монга хранит nil вместо пустого массива и первая
	ставка/подписка падает при $push */
	auction.Bids = make([]Bid, 0, 1)
	auction.Watchers = make([]string, 0, 1)

	return s.Repo.Create(auction)
}

func (s *AuctionService) GetByID(id string) (*Auction, error) {
	auction, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	auction.Status = Classify(auction.Status, auction.StartTime, auction.EndTime, time.Now())
	return auction, nil
}

func (s *AuctionService) PlaceBid(auctionID string, amount int, claims *claims.Claims) (*Auction, error) {
	auction, err := s.Repo.GetByID(auctionID)
	if err != nil {
		return nil, err
	}

	if auction.Seller.ID == claims.User.ID {
		return nil, errors.New("seller cannot bid on own auction")
	}

	switch Classify(auction.Status, auction.StartTime, auction.EndTime, time.Now()) {
	case StatusUpcoming:
		return nil, errors.New("auction has not started")
	case StatusEnded:
		return nil, errors.New("auction has ended")
	case StatusCancelled:
		return nil, errors.New("auction is cancelled")
	}

	if amount <= auction.CurrentPrice {
		return nil, errors.New("bid must exceed current price")
	}

	bid := Bid{
		Bidder: user.User{
			Username: claims.User.Username,
			ID:       claims.User.ID,
		},
		Amount:  amount,
		Created: time.Now(),
	}

	updated, err := s.Repo.AddBid(auctionID, bid)
	if err != nil {
		return nil, err
	}
	updated.Status = Classify(updated.Status, updated.StartTime, updated.EndTime, time.Now())
	return updated, nil
}

func (s *AuctionService) Watch(auctionID, userID string) (*Auction, error) {
	if userID == "" {
		return nil, errors.New("missing user id")
	}
	updated, err := s.Repo.AddWatcher(auctionID, userID)
	if err != nil {
		return nil, err
	}
	updated.Status = Classify(updated.Status, updated.StartTime, updated.EndTime, time.Now())
	return updated, nil
}

func (s *AuctionService) Unwatch(auctionID, userID string) (*Auction, error) {
	if userID == "" {
		return nil, errors.New("missing user id")
	}
	updated, err := s.Repo.RemoveWatcher(auctionID, userID)
	if err != nil {
		return nil, err
	}
	updated.Status = Classify(updated.Status, updated.StartTime, updated.EndTime, time.Now())
	return updated, nil
}

// Cancel is the only place a stored status is written: seller or admin marks
// the auction CANCELLED and the classifier keeps it there forever.
func (s *AuctionService) Cancel(auctionID string, claims *claims.Claims) (*Auction, error) {
	auction, err := s.Repo.GetByID(auctionID)
	if err != nil {
		return nil, err
	}

	if auction.Seller.ID != claims.User.ID && claims.User.Role != user.RoleAdmin {
		return nil, errors.New("only the seller or an admin can cancel")
	}

	if Classify(auction.Status, auction.StartTime, auction.EndTime, time.Now()) == StatusEnded {
		return nil, errors.New("auction has already ended")
	}

	return s.Repo.SetStatus(auctionID, StatusCancelled)
}

func (s *AuctionService) GetBySeller(username string) []*Auction {
	return applyDerivedStatus(s.Repo.GetBySeller(username))
}

func (s *AuctionService) GetByCategory(category string) []*Auction {
	return applyDerivedStatus(s.Repo.GetByCategory(category))
}

func (s *AuctionService) GetByBidder(userID string) []*Auction {
	return applyDerivedStatus(s.Repo.GetByBidder(userID))
}

func (s *AuctionService) GetByWatcher(userID string) []*Auction {
	return applyDerivedStatus(s.Repo.GetByWatcher(userID))
}

func applyDerivedStatus(auctions []*Auction) []*Auction {
	now := time.Now()
	for _, a := range auctions {
		a.Status = Classify(a.Status, a.StartTime, a.EndTime, now)
	}
	return auctions
}
