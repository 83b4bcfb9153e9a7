package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mrsedghi/deliverino-sub000/internal/domain"
	"github.com/mrsedghi/deliverino-sub000/internal/ports/offertx"
)

// OfferRepo owns the offer audit trail and its status transitions.
type OfferRepo struct {
	db *pgxpool.Pool
}

// NewOfferRepo creates a new OfferRepo.
func NewOfferRepo(db *pgxpool.Pool) *OfferRepo {
	return &OfferRepo{db: db}
}

const offerColumns = `id, order_id, courier_id, status, expires_at, created_at`

func scanOffer(row interface{ Scan(...any) error }) (*domain.Offer, error) {
	var o domain.Offer
	err := row.Scan(&o.ID, &o.OrderID, &o.CourierID, &o.Status, &o.ExpiresAt, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create - inserts a new offered offer.
func (r *OfferRepo) Create(ctx context.Context, o *domain.Offer) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO offers (id, order_id, courier_id, status, expires_at)
        VALUES ($1, $2, $3, $4, $5)
    `, o.ID, o.OrderID, o.CourierID, o.Status, o.ExpiresAt)
	if err != nil {
		return fmt.Errorf("create offer %s: %w", o.ID, err)
	}
	return nil
}

// ListByOrder returns every offer ever made for the order, oldest first.
func (r *OfferRepo) ListByOrder(ctx context.Context, orderID string) ([]domain.Offer, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+offerColumns+` FROM offers WHERE order_id=$1 ORDER BY created_at, id`,
		orderID)
	if err != nil {
		return nil, fmt.Errorf("list offers for order %s: %w", orderID, err)
	}
	defer rows.Close()

	var out []domain.Offer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

// CountOpen returns how many offers for the order are still offered or
// accepted. The scanner retries only when this reaches zero.
func (r *OfferRepo) CountOpen(ctx context.Context, orderID string) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `
        SELECT COUNT(*) FROM offers
        WHERE order_id = $1 AND status = ANY($2)
    `, orderID, []string{string(domain.OfferOffered), string(domain.OfferAccepted)}).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count open offers for order %s: %w", orderID, err)
	}
	return n, nil
}

// CancelOpen retires every offer still in play for the order. Used when the
// order itself is cancelled upstream, not by the accept path.
func (r *OfferRepo) CancelOpen(ctx context.Context, orderID string) (int64, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE offers
        SET status = $2, updated_at = now()
        WHERE order_id = $1 AND status = ANY($3)
    `, orderID, string(domain.OfferCancelled),
		[]string{string(domain.OfferOffered), string(domain.OfferAccepted)})
	if err != nil {
		return 0, fmt.Errorf("cancel open offers for order %s: %w", orderID, err)
	}
	return ct.RowsAffected(), nil
}

// TriedCourierIDs returns the couriers that already hold an offer for the
// order, in any status. Retry cycles use it to keep widening toward fresh
// candidates instead of re-offering someone who let a previous offer lapse.
func (r *OfferRepo) TriedCourierIDs(ctx context.Context, orderID string) ([]int64, error) {
	rows, err := r.db.Query(ctx, `
        SELECT DISTINCT courier_id FROM offers WHERE order_id = $1
    `, orderID)
	if err != nil {
		return nil, fmt.Errorf("list tried couriers for order %s: %w", orderID, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// BulkExpire moves every offered offer past its deadline to expired and
// returns the number of offers affected.
func (r *OfferRepo) BulkExpire(ctx context.Context, orderID string, now time.Time) (int64, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE offers
        SET status = $3, updated_at = now()
        WHERE order_id = $1 AND status = $2 AND expires_at <= $4
    `, orderID, string(domain.OfferOffered), string(domain.OfferExpired), now)
	if err != nil {
		return 0, fmt.Errorf("expire offers for order %s: %w", orderID, err)
	}
	return ct.RowsAffected(), nil
}

// RejectLive moves the courier's own live offer to rejected. Returns false
// when the courier holds no live offer for the order.
func (r *OfferRepo) RejectLive(ctx context.Context, orderID string, courierID int64, now time.Time) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE offers
        SET status = $4, updated_at = now()
        WHERE order_id = $1 AND courier_id = $2 AND status = $3 AND expires_at > $5
    `, orderID, courierID, string(domain.OfferOffered), string(domain.OfferRejected), now)
	if err != nil {
		return false, fmt.Errorf("reject offer for order %s courier %d: %w", orderID, courierID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// WithTx opens a transaction and executes fn within it.
func (r *OfferRepo) WithTx(ctx context.Context, fn func(tx offertx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			err = tx.Rollback(ctx)
			if err != nil {
				panic(err)
			}
			panic(p)
		}
	}()

	wrapped := &TxRepo{tx: tx}

	if err := fn(wrapped); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// TxRepo represents transaction repository.
type TxRepo struct {
	tx pgx.Tx
}

// ClaimOffer - atomically settle the live offer for (order, courier).
// The status and expiry predicates live in the same statement as the write,
// so two racing accepts can never both win.
func (r *TxRepo) ClaimOffer(ctx context.Context, orderID string, courierID int64, now time.Time) (*domain.Offer, error) {
	row := r.tx.QueryRow(ctx, `
        UPDATE offers
        SET status = $4, updated_at = now()
        WHERE order_id = $1 AND courier_id = $2 AND status = $3 AND expires_at > $5
        RETURNING `+offerColumns+`
    `, orderID, courierID, string(domain.OfferOffered), string(domain.OfferAccepted), now)

	o, err := scanOffer(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("claim offer for order %s courier %d: %w", orderID, courierID, err)
	}
	return o, nil
}

// CancelSiblingOffers - cancel every other still-offered offer for the order.
func (r *TxRepo) CancelSiblingOffers(ctx context.Context, orderID, exceptOfferID string) (int64, error) {
	ct, err := r.tx.Exec(ctx, `
        UPDATE offers
        SET status = $4, updated_at = now()
        WHERE order_id = $1 AND id <> $2 AND status = $3
    `, orderID, exceptOfferID, string(domain.OfferOffered), string(domain.OfferCancelled))
	if err != nil {
		return 0, fmt.Errorf("cancel sibling offers for order %s: %w", orderID, err)
	}
	return ct.RowsAffected(), nil
}

// AssignOrder - move the order to accepted with the winning courier.
func (r *TxRepo) AssignOrder(ctx context.Context, orderID string, courierID int64) (bool, error) {
	ct, err := r.tx.Exec(ctx, `
        UPDATE orders
        SET status = $3, courier_id = $2, updated_at = now()
        WHERE id = $1 AND status = $4
    `, orderID, courierID, string(domain.OrderAccepted), string(domain.OrderDispatching))
	if err != nil {
		return false, fmt.Errorf("assign order %s to courier %d: %w", orderID, courierID, err)
	}
	return ct.RowsAffected() > 0, nil
}

var _ offertx.Repository = (*TxRepo)(nil)
