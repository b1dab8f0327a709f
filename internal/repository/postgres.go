package repository

import (
	"auction-engine/internal/biddingerrors"
	model "auction-engine/internal/models"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const auctionColumns = `id, name, description, starting_price, price, campaign_id, company_id, start_at, closed_at, winner_id, views, created_at`

const bidColumns = `id, auction_id, user_id, price, name, created_at`

// PostgresRepo is the Ledger backed by Postgres.
// Per-auction serialization comes from SELECT ... FOR UPDATE on the auction row.
type PostgresRepo struct {
	pool *pgxpool.Pool
}

// NewPostgresRepo wraps an open pool
func NewPostgresRepo(pool *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{pool: pool}
}

func (r *PostgresRepo) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

func (r *PostgresRepo) CreateAuction(ctx context.Context, a model.Auction) error {
	const stmt = `
INSERT INTO auctions (` + auctionColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.exec(ctx, stmt,
		a.AuctionID,
		a.Name,
		a.Description,
		a.StartingPrice,
		a.Price,
		a.CampaignID,
		a.CompanyID,
		a.StartAt,
		a.ClosedAt,
		a.WinnerID,
		a.Views,
		a.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("ledger: create auction %s: %w - duplicate id", a.AuctionID, biddingerrors.ErrInvalidAuction)
		}
		if isCheckViolation(err) {
			return fmt.Errorf("ledger: create auction %s: %w - %v", a.AuctionID, biddingerrors.ErrInvalidAuction, err)
		}
		return fmt.Errorf("ledger: create auction %s: %w", a.AuctionID, err)
	}
	return nil
}

func (r *PostgresRepo) GetAuction(ctx context.Context, auctionID string) (model.Auction, error) {
	const query = `SELECT ` + auctionColumns + ` FROM auctions WHERE id = $1`
	return r.scanAuctionRow(r.queryRow(ctx, query, auctionID), auctionID)
}

func (r *PostgresRepo) getAuctionForUpdate(ctx context.Context, auctionID string) (model.Auction, error) {
	const query = `SELECT ` + auctionColumns + ` FROM auctions WHERE id = $1 FOR UPDATE`
	return r.scanAuctionRow(r.queryRow(ctx, query, auctionID), auctionID)
}

func (r *PostgresRepo) ListOpenAuctions(ctx context.Context) ([]model.Auction, error) {
	const query = `SELECT ` + auctionColumns + ` FROM auctions WHERE closed_at IS NULL ORDER BY created_at`
	return r.queryAuctions(ctx, query)
}

func (r *PostgresRepo) IncrementViews(ctx context.Context, auctionID string) (int64, error) {
	const stmt = `UPDATE auctions SET views = views + 1 WHERE id = $1 RETURNING views`
	var views int64
	if err := r.queryRow(ctx, stmt, auctionID).Scan(&views); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("ledger: auction %s: %w", auctionID, biddingerrors.ErrAuctionNotFound)
		}
		return 0, fmt.Errorf("ledger: increment views: %w", err)
	}
	return views, nil
}

// CommitBid runs the bid in one transaction with the auction row locked.
// The credit debit is guarded by amount >= 1 so it cannot go below zero.
func (r *PostgresRepo) CommitBid(ctx context.Context, in model.BidCommit) (model.Bid, error) {
	var bid model.Bid

	err := r.WithTx(ctx, func(txCtx context.Context) error {
		auction, err := r.getAuctionForUpdate(txCtx, in.AuctionID)
		if err != nil {
			return err
		}
		if auction.IsClosed() {
			return fmt.Errorf("ledger: commit bid on %s: %w", in.AuctionID, biddingerrors.ErrAuctionClosed)
		}

		last, err := r.LastBid(txCtx, in.AuctionID)
		switch {
		case err == nil && last.UserID == in.UserID:
			return fmt.Errorf("ledger: commit bid on %s: %w", in.AuctionID, biddingerrors.ErrAlreadyHighestBidder)
		case err != nil && !errors.Is(err, biddingerrors.ErrNoBids):
			return err
		}

		tag, err := r.exec(txCtx,
			`UPDATE user_credits SET amount = amount - 1 WHERE user_id = $1 AND campaign_id = $2 AND amount >= 1`,
			in.UserID, auction.CampaignID,
		)
		if err != nil {
			return fmt.Errorf("ledger: debit credits: %w", err)
		}
		if tag.RowsAffected() == 0 {
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

		if _, err := r.exec(txCtx, `UPDATE auctions SET price = $2 WHERE id = $1`, in.AuctionID, bid.Price); err != nil {
			return fmt.Errorf("ledger: raise price: %w", err)
		}
		if _, err := r.exec(txCtx,
			`INSERT INTO bids (`+bidColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
			bid.BidID, bid.AuctionID, bid.UserID, bid.Price, bid.Name, bid.CreatedAt,
		); err != nil {
			return fmt.Errorf("ledger: insert bid: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.Bid{}, err
	}
	return bid, nil
}

func (r *PostgresRepo) CloseAuction(ctx context.Context, auctionID string, closedAt time.Time) (model.Auction, error) {
	var closed model.Auction

	err := r.WithTx(ctx, func(txCtx context.Context) error {
		auction, err := r.getAuctionForUpdate(txCtx, auctionID)
		if err != nil {
			return err
		}
		if auction.IsClosed() {
			return fmt.Errorf("ledger: close auction %s: %w", auctionID, biddingerrors.ErrAlreadyClosed)
		}

		winning, err := r.WinningBid(txCtx, auctionID)
		if err != nil {
			return err
		}

		const stmt = `
UPDATE auctions SET closed_at = $2, winner_id = $3, price = $4
WHERE id = $1
RETURNING ` + auctionColumns
		closed, err = r.scanAuctionRow(r.queryRow(txCtx, stmt, auctionID, closedAt, winning.UserID, winning.Price), auctionID)
		return err
	})
	if err != nil {
		return model.Auction{}, err
	}
	return closed, nil
}

func (r *PostgresRepo) GetBidsByAuction(ctx context.Context, auctionID string, limit int) ([]model.Bid, error) {
	if _, err := r.GetAuction(ctx, auctionID); err != nil {
		return nil, err
	}

	query := `SELECT ` + bidColumns + ` FROM bids WHERE auction_id = $1 ORDER BY price DESC`
	args := []any{auctionID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	return r.queryBids(ctx, query, args...)
}

func (r *PostgresRepo) RecentBidders(ctx context.Context, auctionID string, take int) ([]model.Bid, error) {
	if _, err := r.GetAuction(ctx, auctionID); err != nil {
		return nil, err
	}

	const query = `
SELECT ` + bidColumns + ` FROM (
	SELECT DISTINCT ON (user_id) ` + bidColumns + `
	FROM bids WHERE auction_id = $1
	ORDER BY user_id, price DESC
) latest
ORDER BY price DESC
LIMIT $2`
	return r.queryBids(ctx, query, auctionID, take)
}

func (r *PostgresRepo) LastBid(ctx context.Context, auctionID string) (model.Bid, error) {
	const query = `SELECT ` + bidColumns + ` FROM bids WHERE auction_id = $1 ORDER BY price DESC LIMIT 1`
	return r.scanBidRow(r.queryRow(ctx, query, auctionID), auctionID)
}

func (r *PostgresRepo) WinningBid(ctx context.Context, auctionID string) (model.Bid, error) {
	const query = `SELECT ` + bidColumns + ` FROM bids WHERE auction_id = $1 ORDER BY price DESC, created_at ASC LIMIT 1`
	return r.scanBidRow(r.queryRow(ctx, query, auctionID), auctionID)
}

func (r *PostgresRepo) GetCredits(ctx context.Context, userID, campaignID string) (model.UserCredits, error) {
	const query = `SELECT amount FROM user_credits WHERE user_id = $1 AND campaign_id = $2`
	out := model.UserCredits{UserID: userID, CampaignID: campaignID}
	if err := r.queryRow(ctx, query, userID, campaignID).Scan(&out.Amount); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return out, nil
		}
		return model.UserCredits{}, fmt.Errorf("ledger: get credits: %w", err)
	}
	return out, nil
}

func (r *PostgresRepo) GrantCredits(ctx context.Context, userID, campaignID string, amount int64) (model.UserCredits, error) {
	if amount <= 0 {
		return model.UserCredits{}, fmt.Errorf("ledger: grant credits: %w - amount must be positive", biddingerrors.ErrInvalidCredits)
	}
	const stmt = `
INSERT INTO user_credits (user_id, campaign_id, amount) VALUES ($1, $2, $3)
ON CONFLICT (user_id, campaign_id) DO UPDATE SET amount = user_credits.amount + EXCLUDED.amount
RETURNING amount`

	out := model.UserCredits{UserID: userID, CampaignID: campaignID}
	if err := r.queryRow(ctx, stmt, userID, campaignID, amount).Scan(&out.Amount); err != nil {
		return model.UserCredits{}, fmt.Errorf("ledger: grant credits: %w", err)
	}
	return out, nil
}

func (r *PostgresRepo) AuctionsWonBy(ctx context.Context, userID string) ([]model.Auction, error) {
	const query = `SELECT ` + auctionColumns + ` FROM auctions WHERE winner_id = $1 ORDER BY created_at`
	return r.queryAuctions(ctx, query, userID)
}

func (r *PostgresRepo) SumBidsForCampaign(ctx context.Context, campaignID string) (decimal.Decimal, error) {
	const query = `
SELECT COALESCE(SUM(b.price), 0)
FROM bids b
JOIN auctions a ON a.id = b.auction_id
WHERE a.campaign_id = $1`

	var sum decimal.Decimal
	if err := r.queryRow(ctx, query, campaignID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("ledger: sum bids for campaign: %w", err)
	}
	return sum, nil
}

func (r *PostgresRepo) CountClosedAuctions(ctx context.Context) (int, error) {
	var count int
	if err := r.queryRow(ctx, `SELECT COUNT(*) FROM auctions WHERE closed_at IS NOT NULL`).Scan(&count); err != nil {
		return 0, fmt.Errorf("ledger: count closed auctions: %w", err)
	}
	return count, nil
}

func (r *PostgresRepo) scanAuctionRow(row pgx.Row, auctionID string) (model.Auction, error) {
	a, err := scanAuction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Auction{}, fmt.Errorf("ledger: auction %s: %w", auctionID, biddingerrors.ErrAuctionNotFound)
		}
		return model.Auction{}, fmt.Errorf("ledger: get auction %s: %w", auctionID, err)
	}
	return a, nil
}

func (r *PostgresRepo) scanBidRow(row pgx.Row, auctionID string) (model.Bid, error) {
	b, err := scanBid(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Bid{}, fmt.Errorf("ledger: bids for %s: %w", auctionID, biddingerrors.ErrNoBids)
		}
		return model.Bid{}, fmt.Errorf("ledger: get bid for %s: %w", auctionID, err)
	}
	return b, nil
}

func (r *PostgresRepo) queryAuctions(ctx context.Context, query string, args ...any) ([]model.Auction, error) {
	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ledger: query auctions: %w", err)
	}
	defer rows.Close()

	out := make([]model.Auction, 0)
	for rows.Next() {
		a, err := scanAuction(rows)
		if err != nil {
			return nil, fmt.Errorf("ledger: scan auction: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) queryBids(ctx context.Context, query string, args ...any) ([]model.Bid, error) {
	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ledger: query bids: %w", err)
	}
	defer rows.Close()

	out := make([]model.Bid, 0)
	for rows.Next() {
		b, err := scanBid(rows)
		if err != nil {
			return nil, fmt.Errorf("ledger: scan bid: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func scanAuction(row pgx.Row) (model.Auction, error) {
	var a model.Auction
	err := row.Scan(
		&a.AuctionID,
		&a.Name,
		&a.Description,
		&a.StartingPrice,
		&a.Price,
		&a.CampaignID,
		&a.CompanyID,
		&a.StartAt,
		&a.ClosedAt,
		&a.WinnerID,
		&a.Views,
		&a.CreatedAt,
	)
	return a, err
}

func scanBid(row pgx.Row) (model.Bid, error) {
	var b model.Bid
	err := row.Scan(&b.BidID, &b.AuctionID, &b.UserID, &b.Price, &b.Name, &b.CreatedAt)
	return b, err
}

func (r *PostgresRepo) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *PostgresRepo) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}

func (r *PostgresRepo) query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Query(ctx, sql, args...)
	}
	return r.pool.Query(ctx, sql, args...)
}
