package auction

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepo struct {
	collection *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{
		collection: db.Collection("auctions"),
	}
}

func (r *MongoRepo) Create(auction *Auction) error {
	ctx := context.TODO()

	result, err := r.collection.InsertOne(ctx, auction)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.New("auction already exists")
		}
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		auction.MongoID = oid
		auction.ID = oid.Hex()
	} else {
		return errors.New("failed to convert inserted ID to ObjectID")
	}

	return nil
}

func (r *MongoRepo) GetByID(id string) (*Auction, error) {
	ctx := context.TODO()
	var auction Auction

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid ID format")
	}

	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$inc": bson.M{"views": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&auction)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.New("auction not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to increment views and fetch auction: %w", err)
	}

	auction.ID = auction.MongoID.Hex()
	return &auction, nil
}

func (r *MongoRepo) GetAll() []*Auction {
	ctx := context.TODO()
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil
	}
	defer cursor.Close(ctx)

	auctions := decodeAll(ctx, cursor)

	/* свежие лоты наверху, как на витрине */
	sort.Slice(auctions, func(i, j int) bool {
		return auctions[i].EndTime.Before(auctions[j].EndTime)
	})

	return auctions
}

func (r *MongoRepo) GetBySeller(username string) []*Auction {
	ctx := context.TODO()
	cursor, err := r.collection.Find(ctx, bson.M{"seller.username": username})
	if err != nil {
		return nil
	}
	defer cursor.Close(ctx)

	return decodeAll(ctx, cursor)
}

func (r *MongoRepo) GetByCategory(category string) []*Auction {
	ctx := context.TODO()
	cursor, err := r.collection.Find(ctx, bson.M{"category": category})
	if err != nil {
		return nil
	}
	defer cursor.Close(ctx)

	return decodeAll(ctx, cursor)
}

func (r *MongoRepo) GetByBidder(userID string) []*Auction {
	ctx := context.TODO()
	cursor, err := r.collection.Find(ctx, bson.M{"bids.bidder.id": userID})
	if err != nil {
		return nil
	}
	defer cursor.Close(ctx)

	return decodeAll(ctx, cursor)
}

func (r *MongoRepo) GetByWatcher(userID string) []*Auction {
	ctx := context.TODO()
	cursor, err := r.collection.Find(ctx, bson.M{"watchers": userID})
	if err != nil {
		return nil
	}
	defer cursor.Close(ctx)

	return decodeAll(ctx, cursor)
}

func (r *MongoRepo) AddBid(auctionID string, bid Bid) (*Auction, error) {
	ctx := context.TODO()

	objectID, err := primitive.ObjectIDFromHex(auctionID)
	if err != nil {
		return nil, errors.New("invalid ID format")
	}

	bid.ID = primitive.NewObjectID().Hex()

	update := bson.M{
		"$push": bson.M{"bids": bid},
		"$set":  bson.M{"currentPrice": bid.Amount},
	}

	var updated Auction
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.New("auction not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to add bid: %w", err)
	}

	updated.ID = updated.MongoID.Hex()
	return &updated, nil
}

func (r *MongoRepo) AddWatcher(auctionID string, userID string) (*Auction, error) {
	return r.updateWatchers(auctionID, bson.M{
		"$addToSet": bson.M{"watchers": userID},
	})
}

func (r *MongoRepo) RemoveWatcher(auctionID string, userID string) (*Auction, error) {
	return r.updateWatchers(auctionID, bson.M{
		"$pull": bson.M{"watchers": userID},
	})
}

func (r *MongoRepo) updateWatchers(auctionID string, update bson.M) (*Auction, error) {
	ctx := context.TODO()

	objectID, err := primitive.ObjectIDFromHex(auctionID)
	if err != nil {
		return nil, errors.New("invalid ID format")
	}

	var updated Auction
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.New("auction not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update watchers: %w", err)
	}

	updated.ID = updated.MongoID.Hex()
	return &updated, nil
}

func (r *MongoRepo) SetStatus(auctionID string, status Status) (*Auction, error) {
	ctx := context.TODO()

	objectID, err := primitive.ObjectIDFromHex(auctionID)
	if err != nil {
		return nil, errors.New("invalid ID format")
	}

	var updated Auction
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.New("auction not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to set status: %w", err)
	}

	updated.ID = updated.MongoID.Hex()
	return &updated, nil
}

func decodeAll(ctx context.Context, cursor *mongo.Cursor) []*Auction {
	var auctions []*Auction
	for cursor.Next(ctx) {
		var a Auction
		if cursor.Decode(&a) == nil {
			a.ID = a.MongoID.Hex()
			auctions = append(auctions, &a)
		}
	}
	return auctions
}
