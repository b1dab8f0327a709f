package repository

import (
	"auction-engine/internal/biddingerrors"
	model "auction-engine/internal/models"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	bolt "github.com/boltdb/bolt"
	"github.com/shopspring/decimal"
)

var (
	auctionsBucket = []byte("auctions")
	bidsBucket     = []byte("bids")
	creditsBucket  = []byte("credits")
)

// BoltRepo is an embedded, single-file Ledger.
// bolt runs one read-write transaction at a time, which gives every
// CommitBid and CloseAuction exclusive access for its whole duration.
type BoltRepo struct {
	db *bolt.DB
}

// NewBoltRepo opens (or creates) the ledger file at path and ensures its buckets exist.
func NewBoltRepo(path string) (*BoltRepo, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("ledger: open bolt %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{auctionsBucket, bidsBucket, creditsBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("ledger: init bolt buckets: %w", err)
	}

	return &BoltRepo{db: db}, nil
}

// Close releases the database file lock.
func (r *BoltRepo) Close() error {
	return r.db.Close()
}

func (r *BoltRepo) CreateAuction(_ context.Context, auction model.Auction) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(auctionsBucket)
		if b.Get([]byte(auction.AuctionID)) != nil {
			return fmt.Errorf("ledger: create auction %s: %w - duplicate id", auction.AuctionID, biddingerrors.ErrInvalidAuction)
		}
		if _, err := tx.Bucket(bidsBucket).CreateBucketIfNotExists([]byte(auction.AuctionID)); err != nil {
			return fmt.Errorf("ledger: create bid bucket: %w", err)
		}
		return putJSON(b, []byte(auction.AuctionID), auction)
	})
}

func (r *BoltRepo) GetAuction(_ context.Context, auctionID string) (model.Auction, error) {
	var a model.Auction
	err := r.db.View(func(tx *bolt.Tx) error {
		var err error
		a, err = loadAuction(tx, auctionID)
		return err
	})
	return a, err
}

func (r *BoltRepo) ListOpenAuctions(_ context.Context) ([]model.Auction, error) {
	return r.filterAuctions(func(a model.Auction) bool { return !a.IsClosed() })
}

func (r *BoltRepo) IncrementViews(_ context.Context, auctionID string) (int64, error) {
	var views int64
	err := r.db.Update(func(tx *bolt.Tx) error {
		a, err := loadAuction(tx, auctionID)
		if err != nil {
			return err
		}
		a.Views++
		views = a.Views
		return putJSON(tx.Bucket(auctionsBucket), []byte(auctionID), a)
	})
	return views, err
}

// CommitBid checks everything before writing; returning an error rolls the
// bolt transaction back, so either all three writes land or none do.
func (r *BoltRepo) CommitBid(_ context.Context, in model.BidCommit) (model.Bid, error) {
	var bid model.Bid

	err := r.db.Update(func(tx *bolt.Tx) error {
		auction, err := loadAuction(tx, in.AuctionID)
		if err != nil {
			return err
		}
		if auction.IsClosed() {
			return fmt.Errorf("ledger: commit bid on %s: %w", in.AuctionID, biddingerrors.ErrAuctionClosed)
		}

		bids := tx.Bucket(bidsBucket).Bucket([]byte(in.AuctionID))
		if bids == nil {
			return fmt.Errorf("ledger: commit bid on %s: missing bid bucket", in.AuctionID)
		}
		if _, v := bids.Cursor().Last(); v != nil {
			var last model.Bid
			if err := json.Unmarshal(v, &last); err != nil {
				return err
			}
			if last.UserID == in.UserID {
				return fmt.Errorf("ledger: commit bid on %s: %w", in.AuctionID, biddingerrors.ErrAlreadyHighestBidder)
			}
		}

		credits := tx.Bucket(creditsBucket)
		key := creditsKey(in.UserID, auction.CampaignID)
		var balance model.UserCredits
		if v := credits.Get(key); v != nil {
			if err := json.Unmarshal(v, &balance); err != nil {
				return err
			}
		}
		if balance.Amount < 1 {
			return fmt.Errorf("ledger: commit bid on %s: %w", in.AuctionID, biddingerrors.ErrInsufficientCredits)
		}

		bid = model.Bid{
			BidID:     in.BidID,
			AuctionID: in.AuctionID,
			UserID:    in.UserID,
			Price:     auction.Price.Add(in.Increment),
			Name:      in.Name,
			CreatedAt: in.CreatedAt,
		}
		auction.Price = bid.Price
		balance.Amount--

		seq, err := bids.NextSequence()
		if err != nil {
			return err
		}
		if err := putJSON(bids, seqKey(seq), bid); err != nil {
			return err
		}
		if err := putJSON(credits, key, balance); err != nil {
			return err
		}
		return putJSON(tx.Bucket(auctionsBucket), []byte(in.AuctionID), auction)
	})
	if err != nil {
		return model.Bid{}, err
	}
	return bid, nil
}

func (r *BoltRepo) CloseAuction(_ context.Context, auctionID string, closedAt time.Time) (model.Auction, error) {
	var closed model.Auction

	err := r.db.Update(func(tx *bolt.Tx) error {
		auction, err := loadAuction(tx, auctionID)
		if err != nil {
			return err
		}
		if auction.IsClosed() {
			return fmt.Errorf("ledger: close auction %s: %w", auctionID, biddingerrors.ErrAlreadyClosed)
		}
		bids, err := loadBids(tx, auctionID)
		if err != nil {
			return err
		}
		winning, ok := highestBid(bids)
		if !ok {
			return fmt.Errorf("ledger: close auction %s: %w", auctionID, biddingerrors.ErrNoBids)
		}

		winnerID := winning.UserID
		auction.ClosedAt = &closedAt
		auction.WinnerID = &winnerID
		auction.Price = winning.Price
		closed = auction
		return putJSON(tx.Bucket(auctionsBucket), []byte(auctionID), auction)
	})
	return closed, err
}

func (r *BoltRepo) GetBidsByAuction(_ context.Context, auctionID string, limit int) ([]model.Bid, error) {
	out := make([]model.Bid, 0)
	err := r.db.View(func(tx *bolt.Tx) error {
		if _, err := loadAuction(tx, auctionID); err != nil {
			return err
		}
		b := tx.Bucket(bidsBucket).Bucket([]byte(auctionID))
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(out) == limit {
				break
			}
			var bid model.Bid
			if err := json.Unmarshal(v, &bid); err != nil {
				return err
			}
			out = append(out, bid)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BoltRepo) RecentBidders(_ context.Context, auctionID string, take int) ([]model.Bid, error) {
	out := make([]model.Bid, 0)
	err := r.db.View(func(tx *bolt.Tx) error {
		if _, err := loadAuction(tx, auctionID); err != nil {
			return err
		}
		b := tx.Bucket(bidsBucket).Bucket([]byte(auctionID))
		if b == nil {
			return nil
		}
		seen := make(map[string]bool)
		c := b.Cursor()
		for k, v := c.Last(); k != nil && len(out) < take; k, v = c.Prev() {
			var bid model.Bid
			if err := json.Unmarshal(v, &bid); err != nil {
				return err
			}
			if seen[bid.UserID] {
				continue
			}
			seen[bid.UserID] = true
			out = append(out, bid)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BoltRepo) LastBid(ctx context.Context, auctionID string) (model.Bid, error) {
	bids, err := r.GetBidsByAuction(ctx, auctionID, 1)
	if err != nil {
		return model.Bid{}, err
	}
	if len(bids) == 0 {
		return model.Bid{}, fmt.Errorf("ledger: last bid for %s: %w", auctionID, biddingerrors.ErrNoBids)
	}
	return bids[0], nil
}

func (r *BoltRepo) WinningBid(_ context.Context, auctionID string) (model.Bid, error) {
	var winning model.Bid
	err := r.db.View(func(tx *bolt.Tx) error {
		if _, err := loadAuction(tx, auctionID); err != nil {
			return err
		}
		bids, err := loadBids(tx, auctionID)
		if err != nil {
			return err
		}
		var ok bool
		if winning, ok = highestBid(bids); !ok {
			return fmt.Errorf("ledger: winning bid for %s: %w", auctionID, biddingerrors.ErrNoBids)
		}
		return nil
	})
	return winning, err
}

func (r *BoltRepo) GetCredits(_ context.Context, userID, campaignID string) (model.UserCredits, error) {
	out := model.UserCredits{UserID: userID, CampaignID: campaignID}
	err := r.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(creditsBucket).Get(creditsKey(userID, campaignID))
		if v == nil {
			return nil
		}
		return json.Unmarshal(v, &out)
	})
	return out, err
}

func (r *BoltRepo) GrantCredits(_ context.Context, userID, campaignID string, amount int64) (model.UserCredits, error) {
	if amount <= 0 {
		return model.UserCredits{}, fmt.Errorf("ledger: grant credits: %w - amount must be positive", biddingerrors.ErrInvalidCredits)
	}
	out := model.UserCredits{UserID: userID, CampaignID: campaignID}
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(creditsBucket)
		key := creditsKey(userID, campaignID)
		if v := b.Get(key); v != nil {
			if err := json.Unmarshal(v, &out); err != nil {
				return err
			}
		}
		out.Amount += amount
		return putJSON(b, key, out)
	})
	return out, err
}

func (r *BoltRepo) AuctionsWonBy(_ context.Context, userID string) ([]model.Auction, error) {
	return r.filterAuctions(func(a model.Auction) bool {
		return a.WinnerID != nil && *a.WinnerID == userID
	})
}

func (r *BoltRepo) SumBidsForCampaign(_ context.Context, campaignID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	err := r.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(auctionsBucket).ForEach(func(k, v []byte) error {
			var a model.Auction
			if err := json.Unmarshal(v, &a); err != nil {
				return err
			}
			if a.CampaignID != campaignID {
				return nil
			}
			bids, err := loadBids(tx, a.AuctionID)
			if err != nil {
				return err
			}
			for _, b := range bids {
				sum = sum.Add(b.Price)
			}
			return nil
		})
	})
	return sum, err
}

func (r *BoltRepo) CountClosedAuctions(_ context.Context) (int, error) {
	closed, err := r.filterAuctions(model.Auction.IsClosed)
	return len(closed), err
}

func (r *BoltRepo) filterAuctions(keep func(model.Auction) bool) ([]model.Auction, error) {
	out := make([]model.Auction, 0)
	err := r.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(auctionsBucket).ForEach(func(k, v []byte) error {
			var a model.Auction
			if err := json.Unmarshal(v, &a); err != nil {
				return err
			}
			if keep(a) {
				out = append(out, a)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sortByCreation(out)
	return out, nil
}

func loadAuction(tx *bolt.Tx, auctionID string) (model.Auction, error) {
	var a model.Auction
	v := tx.Bucket(auctionsBucket).Get([]byte(auctionID))
	if v == nil {
		return a, fmt.Errorf("ledger: auction %s: %w", auctionID, biddingerrors.ErrAuctionNotFound)
	}
	return a, json.Unmarshal(v, &a)
}

// loadBids returns the auction's bids oldest first
func loadBids(tx *bolt.Tx, auctionID string) ([]model.Bid, error) {
	b := tx.Bucket(bidsBucket).Bucket([]byte(auctionID))
	if b == nil {
		return nil, nil
	}
	var bids []model.Bid
	err := b.ForEach(func(k, v []byte) error {
		var bid model.Bid
		if err := json.Unmarshal(v, &bid); err != nil {
			return err
		}
		bids = append(bids, bid)
		return nil
	})
	return bids, err
}

func putJSON(b *bolt.Bucket, key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return b.Put(key, data)
}

func creditsKey(userID, campaignID string) []byte {
	return []byte(userID + "\x00" + campaignID)
}

// seqKey encodes a bucket sequence so byte order matches insertion order
func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}
