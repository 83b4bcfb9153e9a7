package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mrsedghi/deliverino-sub000/internal/apperr"
	"github.com/mrsedghi/deliverino-sub000/internal/domain"
)

// CourierRepo represents courier repository.
type CourierRepo struct{ db *pgxpool.Pool }

// NewCourierRepo creates a new CourierRepo.
func NewCourierRepo(db *pgxpool.Pool) *CourierRepo { return &CourierRepo{db: db} }

const courierColumns = `id, name, phone, status, transport_type, rating, lat, lng, located_at`

func scanCourier(row interface{ Scan(...any) error }) (*domain.Courier, error) {
	var (
		c         domain.Courier
		lat, lng  *float64
		locatedAt *time.Time
	)
	err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Status, &c.TransportType,
		&c.Rating, &lat, &lng, &locatedAt)
	if err != nil {
		return nil, err
	}
	if lat != nil && lng != nil {
		c.Location = &domain.Coordinate{Lat: *lat, Lng: *lng}
		c.LocatedAt = locatedAt
	}
	return &c, nil
}

// Get - returns courier by its ID.
func (r *CourierRepo) Get(ctx context.Context, id int64) (*domain.Courier, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+courierColumns+` FROM couriers WHERE id=$1`, id)
	c, err := scanCourier(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get courier %d: %w", id, err)
	}
	return c, nil
}

// List returns couriers ordered by id. If limit/offset are nil, returns the full list.
func (r *CourierRepo) List(ctx context.Context, limit, offset *int) ([]domain.Courier, error) {
	q := `SELECT ` + courierColumns + ` FROM couriers ORDER BY id`
	args := make([]any, 0, 2)
	if limit != nil {
		q += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, *limit)
	}
	if offset != nil {
		q += fmt.Sprintf(" OFFSET $%d", len(args)+1)
		args = append(args, *offset)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	capacity := 0
	if limit != nil && *limit > 0 {
		capacity = *limit
	}
	out := make([]domain.Courier, 0, capacity)
	for rows.Next() {
		c, err := scanCourier(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// ListActiveWithLocation returns every available courier that has reported a
// position, ordered by id for deterministic downstream sorting.
func (r *CourierRepo) ListActiveWithLocation(ctx context.Context) ([]domain.Courier, error) {
	rows, err := r.db.Query(ctx, `
        SELECT `+courierColumns+`
        FROM couriers
        WHERE status = $1 AND lat IS NOT NULL AND lng IS NOT NULL
        ORDER BY id
    `, string(domain.CourierAvailable))
	if err != nil {
		return nil, fmt.Errorf("list active couriers: %w", err)
	}
	defer rows.Close()

	var out []domain.Courier
	for rows.Next() {
		c, err := scanCourier(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// Create - creates a new courier.
func (r *CourierRepo) Create(ctx context.Context, c *domain.Courier) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO couriers(name,phone,status,transport_type,rating) VALUES($1,$2,$3,$4,$5) RETURNING id`,
		c.Name, c.Phone, c.Status, c.TransportType, c.Rating).Scan(&id)
	if err != nil {
		if IsDuplicate(err) {
			return 0, apperr.ErrConflict
		}
		return 0, fmt.Errorf("create courier: %w", err)
	}
	return id, nil
}

// UpdatePartial applies a partial update to a courier and returns true if a row was affected.
func (r *CourierRepo) UpdatePartial(ctx context.Context, u domain.PartialCourierUpdate) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE couriers
        SET
            name           = COALESCE($2, name),
            phone          = COALESCE($3, phone),
            status         = COALESCE($4, status),
            transport_type = COALESCE($5, transport_type),
            updated_at     = now()
        WHERE id = $1
    `, u.ID, u.Name, u.Phone, u.Status, u.TransportType)

	if err != nil {
		if IsDuplicate(err) {
			return false, apperr.ErrConflict
		}
		return false, fmt.Errorf("update courier %d: %w", u.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// UpdateLocation stores the courier's last reported position.
func (r *CourierRepo) UpdateLocation(ctx context.Context, id int64, loc domain.Coordinate, at time.Time) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE couriers
        SET lat = $2, lng = $3, located_at = $4, updated_at = now()
        WHERE id = $1
    `, id, loc.Lat, loc.Lng, at)
	if err != nil {
		return false, fmt.Errorf("update courier location %d: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}

// UpdateStatus sets the courier availability status.
func (r *CourierRepo) UpdateStatus(ctx context.Context, id int64, status domain.CourierStatus) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE couriers SET status = $2, updated_at = now() WHERE id = $1
    `, id, string(status))
	if err != nil {
		return false, fmt.Errorf("update courier status %d: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}
