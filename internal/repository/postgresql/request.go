package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/carrylink/carrylink/internal/db"
	"github.com/carrylink/carrylink/internal/repository"
)

type RequestRepo struct {
	db db.DB
}

func NewRequestRepo(database db.DB) *RequestRepo {
	return &RequestRepo{db: database}
}

func (r *RequestRepo) Create(ctx context.Context, req *repository.Request) error {
	return r.db.ExecQueryRow(ctx, `
        INSERT INTO requests (
            buyer_id, items, reward, currency_code, delivery_window, notes, status, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id
    `, req.BuyerID, req.Items, req.Reward, req.CurrencyCode, req.DeliveryWindow, req.Notes, req.Status, req.CreatedAt, req.UpdatedAt).Scan(&req.ID)
}

func (r *RequestRepo) GetByID(ctx context.Context, id int64) (*repository.Request, error) {
	var req repository.Request
	err := r.db.Get(ctx, &req, "SELECT * FROM requests WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *RequestRepo) ListByBuyer(ctx context.Context, buyerID uuid.UUID, status string) ([]*repository.Request, error) {
	query := "SELECT * FROM requests WHERE buyer_id = $1 AND status <> 'deleted'"
	args := []interface{}{buyerID}

	if status != "" {
		query += " AND status = $2"
		args = append(args, status)
	}

	query += " ORDER BY created_at DESC"

	var requests []*repository.Request
	err := r.db.Select(ctx, &requests, query, args...)
	return requests, err
}

// ConfirmMatch is a conditional update: the status predicate makes the
// pending -> matched transition atomic, so two racing confirms cannot both win.
func (r *RequestRepo) ConfirmMatch(ctx context.Context, id int64, buyerID, carrierID uuid.UUID, carrierNickname string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
        UPDATE requests
        SET matched_carrier_id = $3,
            carrier_nickname = $4,
            status = 'matched',
            updated_at = now()
        WHERE id = $1 AND buyer_id = $2 AND status = 'pending'
    `, id, buyerID, carrierID, carrierNickname)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *RequestRepo) ClearMatch(ctx context.Context, id int64, buyerID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `
        UPDATE requests
        SET matched_carrier_id = NULL,
            carrier_nickname = NULL,
            status = 'pending',
            updated_at = now()
        WHERE id = $1 AND buyer_id = $2 AND status = 'matched'
    `, id, buyerID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *RequestRepo) SoftDelete(ctx context.Context, id int64, buyerID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `
        UPDATE requests
        SET status = 'deleted',
            updated_at = now()
        WHERE id = $1 AND buyer_id = $2 AND status = 'pending'
    `, id, buyerID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *RequestRepo) ListByMatchedCarrier(ctx context.Context, carrierID uuid.UUID) ([]*repository.Request, error) {
	var requests []*repository.Request
	err := r.db.Select(ctx, &requests, `
        SELECT * FROM requests
        WHERE matched_carrier_id = $1 AND status = 'matched'
        ORDER BY created_at DESC
    `, carrierID)
	return requests, err
}

func (r *RequestRepo) ListPendingByInterest(ctx context.Context, carrierID uuid.UUID) ([]*repository.Request, error) {
	var requests []*repository.Request
	err := r.db.Select(ctx, &requests, `
        SELECT r.* FROM requests r
        JOIN carrier_requests cr ON cr.request_id = r.id
        WHERE cr.carrier_id = $1 AND r.status = 'pending'
        ORDER BY cr.created_at DESC
    `, carrierID)
	return requests, err
}
