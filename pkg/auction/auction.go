package auction

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"auctionhouse/pkg/user"
)

type Bid struct {
	ID      string    `json:"id" bson:"id"`
	Bidder  user.User `json:"bidder" bson:"bidder"`
	Amount  int       `json:"amount" bson:"amount"`
	Created time.Time `json:"created" bson:"created"`
}

type Auction struct {
	MongoID      primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Title        string             `json:"title"`
	Description  string             `json:"description,omitempty" bson:"description,omitempty"`
	Category     string             `json:"category"`
	Seller       user.User          `json:"seller"`
	StartPrice   int                `json:"startPrice" bson:"startPrice"`
	CurrentPrice int                `json:"currentPrice" bson:"currentPrice"`
	Status       Status             `json:"status"`
	StartTime    time.Time          `json:"startTime" bson:"startTime"`
	EndTime      time.Time          `json:"endTime" bson:"endTime"`
	Bids         []Bid              `json:"bids"`
	Watchers     []string           `json:"watchers"`
	Views        int                `json:"views"`
	Created      time.Time          `json:"created"`
	ID           string             `json:"id" bson:"-"`
}

type Repository interface {
	Create(auction *Auction) error
	GetByID(id string) (*Auction, error)
	GetAll() []*Auction
	GetBySeller(username string) []*Auction
	GetByCategory(category string) []*Auction
	GetByBidder(userID string) []*Auction
	GetByWatcher(userID string) []*Auction
	AddBid(auctionID string, bid Bid) (*Auction, error)
	AddWatcher(auctionID string, userID string) (*Auction, error)
	RemoveWatcher(auctionID string, userID string) (*Auction, error)
	SetStatus(auctionID string, status Status) (*Auction, error)
}
