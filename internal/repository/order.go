package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mrsedghi/deliverino-sub000/internal/domain"
)

// OrderRepo represents order repository.
type OrderRepo struct{ db *pgxpool.Pool }

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(db *pgxpool.Pool) *OrderRepo { return &OrderRepo{db: db} }

const orderColumns = `id, customer_id, origin_lat, origin_lng, dest_lat, dest_lng,
    distance_km, duration_min, fare, transport_type, status, courier_id,
    search_radius_km, paid, paid_at, created_at, updated_at`

func scanOrder(row interface{ Scan(...any) error }) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(&o.ID, &o.CustomerID, &o.Origin.Lat, &o.Origin.Lng,
		&o.Destination.Lat, &o.Destination.Lng,
		&o.DistanceKm, &o.DurationMin, &o.Fare, &o.TransportType, &o.Status,
		&o.CourierID, &o.SearchRadiusKm, &o.Paid, &o.PaidAt,
		&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create - inserts a new pending order.
func (r *OrderRepo) Create(ctx context.Context, o *domain.Order) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO orders (
            id, customer_id, origin_lat, origin_lng, dest_lat, dest_lng,
            distance_km, duration_min, fare, transport_type, status,
            search_radius_km
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
    `, o.ID, o.CustomerID, o.Origin.Lat, o.Origin.Lng,
		o.Destination.Lat, o.Destination.Lng,
		o.DistanceKm, o.DurationMin, o.Fare, o.TransportType, o.Status,
		o.SearchRadiusKm)
	if err != nil {
		return fmt.Errorf("create order %s: %w", o.ID, err)
	}
	return nil
}

// Get - returns order by its ID.
func (r *OrderRepo) Get(ctx context.Context, id string) (*domain.Order, error) {
	row := r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1`, id)
	o, err := scanOrder(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	return o, nil
}

// ListDispatching returns ids of every order currently in the dispatching
// state, ordered by creation time. The expiry scanner iterates over them.
func (r *OrderRepo) ListDispatching(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id FROM orders WHERE status=$1 ORDER BY created_at`,
		string(domain.OrderDispatching))
	if err != nil {
		return nil, fmt.Errorf("list dispatching orders: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// BeginDispatch moves the order to dispatching and records the radius used by
// this cycle. Conditional on the order still being pending or dispatching, so
// a cycle never resurrects a settled order. Idempotent for the dispatching
// self-loop.
func (r *OrderRepo) BeginDispatch(ctx context.Context, id string, radiusKm float64) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE orders
        SET status = $2, search_radius_km = $3, updated_at = now()
        WHERE id = $1 AND status = ANY($4)
    `, id, string(domain.OrderDispatching), radiusKm,
		[]string{string(domain.OrderPending), string(domain.OrderDispatching)})
	if err != nil {
		return false, fmt.Errorf("begin dispatch %s: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}

// MarkCancelled moves the order to cancelled unless it already reached a
// terminal state. Upstream cancel events arrive at-least-once, so a repeat
// call simply reports false.
func (r *OrderRepo) MarkCancelled(ctx context.Context, id string) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE orders
        SET status = $2, updated_at = now()
        WHERE id = $1 AND status <> ALL($3)
    `, id, string(domain.OrderCancelled),
		[]string{string(domain.OrderDelivered), string(domain.OrderCancelled)})
	if err != nil {
		return false, fmt.Errorf("cancel order %s: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}

// MarkDelivered closes out an assigned order.
func (r *OrderRepo) MarkDelivered(ctx context.Context, id string) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE orders
        SET status = $2, updated_at = now()
        WHERE id = $1 AND status = ANY($3)
    `, id, string(domain.OrderDelivered),
		[]string{string(domain.OrderAccepted), string(domain.OrderInProgress),
			string(domain.OrderPickedUp), string(domain.OrderInTransit)})
	if err != nil {
		return false, fmt.Errorf("mark order %s delivered: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}

// MarkEscalated moves the order to the terminal escalated state. Conditional
// on the order not having been settled meanwhile.
func (r *OrderRepo) MarkEscalated(ctx context.Context, id string) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE orders
        SET status = $2, updated_at = now()
        WHERE id = $1 AND status = ANY($3)
    `, id, string(domain.OrderEscalated),
		[]string{string(domain.OrderPending), string(domain.OrderDispatching)})
	if err != nil {
		return false, fmt.Errorf("escalate order %s: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}
