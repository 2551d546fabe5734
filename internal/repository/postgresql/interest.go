package postgresql

import (
	"context"

	"github.com/google/uuid"

	"github.com/carrylink/carrylink/internal/db"
	"github.com/carrylink/carrylink/internal/repository"
)

type InterestRepo struct {
	db db.DB
}

func NewInterestRepo(database db.DB) *InterestRepo {
	return &InterestRepo{db: database}
}

func (r *InterestRepo) Create(ctx context.Context, interest *repository.CarrierInterest) error {
	return r.db.ExecQueryRow(ctx, `
        INSERT INTO carrier_requests (request_id, carrier_id, carrier_nickname, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `, interest.RequestID, interest.CarrierID, interest.CarrierNickname, interest.CreatedAt).Scan(&interest.ID)
}

func (r *InterestRepo) ListByRequest(ctx context.Context, requestID int64) ([]*repository.CarrierInterest, error) {
	var interests []*repository.CarrierInterest
	err := r.db.Select(ctx, &interests, `
        SELECT * FROM carrier_requests
        WHERE request_id = $1
        ORDER BY created_at ASC
    `, requestID)
	return interests, err
}

func (r *InterestRepo) CountByRequestAndCarrier(ctx context.Context, requestID int64, carrierID uuid.UUID) (int, error) {
	var count int
	err := r.db.ExecQueryRow(ctx,
		"SELECT COUNT(*) FROM carrier_requests WHERE request_id = $1 AND carrier_id = $2",
		requestID, carrierID).Scan(&count)
	return count, err
}
