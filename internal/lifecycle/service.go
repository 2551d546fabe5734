//go:generate mockgen -source ./service.go -destination=./mocks/lifecycle.go -package=mock_lifecycle
package lifecycle

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"go.uber.org/zap"

	"github.com/carrylink/carrylink/internal/metrics"
	"github.com/carrylink/carrylink/internal/repository"
)

const pgUniqueViolation = "23505"

type RequestRepository interface {
	Create(ctx context.Context, req *repository.Request) error
	GetByID(ctx context.Context, id int64) (*repository.Request, error)
	ListByBuyer(ctx context.Context, buyerID uuid.UUID, status string) ([]*repository.Request, error)
	ConfirmMatch(ctx context.Context, id int64, buyerID, carrierID uuid.UUID, carrierNickname string) (bool, error)
	ClearMatch(ctx context.Context, id int64, buyerID uuid.UUID) (bool, error)
	SoftDelete(ctx context.Context, id int64, buyerID uuid.UUID) (bool, error)
	ListByMatchedCarrier(ctx context.Context, carrierID uuid.UUID) ([]*repository.Request, error)
	ListPendingByInterest(ctx context.Context, carrierID uuid.UUID) ([]*repository.Request, error)
}

type InterestRepository interface {
	Create(ctx context.Context, interest *repository.CarrierInterest) error
	ListByRequest(ctx context.Context, requestID int64) ([]*repository.CarrierInterest, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, task *repository.OutboxTask) error
}

type ListingCache interface {
	Get(buyerID uuid.UUID, status Status) ([]Request, bool)
	Set(buyerID uuid.UUID, status Status, requests []Request)
	Invalidate(buyerID uuid.UUID)
}

// Service mediates every read and write of requests and carrier
// interest, enforcing the status state machine and buyer ownership.
type Service struct {
	requests   RequestRepository
	interests  InterestRepository
	outbox     OutboxRepository
	cache      ListingCache
	auditTopic string
	logger     *zap.Logger
}

func NewService(requests RequestRepository, interests InterestRepository, outbox OutboxRepository, cache ListingCache, auditTopic string, logger *zap.Logger) *Service {
	return &Service{
		requests:   requests,
		interests:  interests,
		outbox:     outbox,
		cache:      cache,
		auditTopic: auditTopic,
		logger:     logger,
	}
}

type CreateParams struct {
	Items          []Item
	Reward         int64
	CurrencyCode   string
	DeliveryWindow DateRange
	Notes          string
}

func (p CreateParams) validate() (Currency, error) {
	if len(p.Items) == 0 {
		return "", validationErr("at least one item is required")
	}
	for _, item := range p.Items {
		if item.Name == "" {
			return "", validationErr("item name must not be empty")
		}
		if item.Price < 0 {
			return "", validationErr("item price must not be negative")
		}
	}
	if p.Reward < 0 {
		return "", validationErr("reward must not be negative")
	}
	currency, err := ParseCurrency(p.CurrencyCode)
	if err != nil {
		return "", err
	}
	if err := p.DeliveryWindow.Validate(); err != nil {
		return "", err
	}
	return currency, nil
}

func (s *Service) CreateRequest(ctx context.Context, caller Identity, params CreateParams) (*Request, error) {
	currency, err := params.validate()
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_request").Inc()
		return nil, err
	}

	items, err := json.Marshal(params.Items)
	if err != nil {
		return nil, validationErr("items are not serializable: %v", err)
	}

	now := time.Now().UTC()
	repoReq := &repository.Request{
		BuyerID:        caller.ID,
		Items:          items,
		Reward:         params.Reward,
		CurrencyCode:   string(currency),
		DeliveryWindow: params.DeliveryWindow.String(),
		Notes:          params.Notes,
		Status:         string(StatusPending),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.requests.Create(ctx, repoReq); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_request").Inc()
		return nil, storeErr(err)
	}

	metrics.RequestsCreatedTotal.Inc()
	s.cache.Invalidate(caller.ID)
	s.enqueueAudit(ctx, repository.RequestAuditPayload{
		Timestamp: now,
		Action:    "request_created",
		RequestID: repoReq.ID,
		ActorID:   caller.ID.String(),
		NewStatus: string(StatusPending),
	})

	req, err := fromRepoRequest(repoReq)
	if err != nil {
		return nil, storeErr(err)
	}
	return &req, nil
}

// ListMyRequests returns the caller's own requests, newest first.
// Soft-deleted requests never appear. statusFilter narrows the listing
// to pending or matched; empty means both.
func (s *Service) ListMyRequests(ctx context.Context, caller Identity, statusFilter Status) ([]Request, error) {
	if statusFilter != "" && statusFilter != StatusPending && statusFilter != StatusMatched {
		return nil, validationErr("unsupported status filter %q", statusFilter)
	}

	if cached, ok := s.cache.Get(caller.ID, statusFilter); ok {
		return cached, nil
	}

	repoRequests, err := s.requests.ListByBuyer(ctx, caller.ID, string(statusFilter))
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("list_my_requests").Inc()
		return nil, storeErr(err)
	}

	requests, err := fromRepoRequests(repoRequests)
	if err != nil {
		return nil, storeErr(err)
	}

	s.cache.Set(caller.ID, statusFilter, requests)
	return requests, nil
}

// ListCandidates returns the carriers interested in one of the caller's
// requests, oldest interest first.
func (s *Service) ListCandidates(ctx context.Context, caller Identity, requestID int64) ([]CarrierInterest, error) {
	req, err := s.getOwned(ctx, caller, requestID)
	if err != nil {
		return nil, err
	}

	repoInterests, err := s.interests.ListByRequest(ctx, req.ID)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("list_candidates").Inc()
		return nil, storeErr(err)
	}

	candidates := make([]CarrierInterest, 0, len(repoInterests))
	for _, interest := range repoInterests {
		candidates = append(candidates, fromRepoInterest(interest))
	}
	return candidates, nil
}

// ConfirmMatching moves a pending request to matched with the chosen
// carrier. The underlying update is conditional on the pending status,
// so a request that was already confirmed elsewhere yields a conflict.
func (s *Service) ConfirmMatching(ctx context.Context, caller Identity, requestID int64, carrierID uuid.UUID, carrierNickname string) error {
	if carrierID == uuid.Nil {
		return validationErr("carrier id is required")
	}

	ok, err := s.requests.ConfirmMatch(ctx, requestID, caller.ID, carrierID, carrierNickname)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("confirm_matching").Inc()
		return storeErr(err)
	}
	if !ok {
		return s.explainRejectedTransition(ctx, caller, requestID, StatusMatched)
	}

	metrics.MatchesConfirmedTotal.Inc()
	s.cache.Invalidate(caller.ID)
	s.enqueueAudit(ctx, repository.RequestAuditPayload{
		Timestamp: time.Now().UTC(),
		Action:    "matching_confirmed",
		RequestID: requestID,
		ActorID:   caller.ID.String(),
		OldStatus: string(StatusPending),
		NewStatus: string(StatusMatched),
		CarrierID: carrierID.String(),
	})
	return nil
}

// CancelMatching reverts a matched request to pending and clears the
// carrier fields.
func (s *Service) CancelMatching(ctx context.Context, caller Identity, requestID int64) error {
	ok, err := s.requests.ClearMatch(ctx, requestID, caller.ID)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("cancel_matching").Inc()
		return storeErr(err)
	}
	if !ok {
		return s.explainRejectedTransition(ctx, caller, requestID, StatusPending)
	}

	metrics.MatchesCancelledTotal.Inc()
	s.cache.Invalidate(caller.ID)
	s.enqueueAudit(ctx, repository.RequestAuditPayload{
		Timestamp: time.Now().UTC(),
		Action:    "matching_cancelled",
		RequestID: requestID,
		ActorID:   caller.ID.String(),
		OldStatus: string(StatusMatched),
		NewStatus: string(StatusPending),
	})
	return nil
}

// DeleteRequest soft-deletes a pending request. The row stays in the
// store; it just stops appearing in buyer listings.
func (s *Service) DeleteRequest(ctx context.Context, caller Identity, requestID int64) error {
	ok, err := s.requests.SoftDelete(ctx, requestID, caller.ID)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("delete_request").Inc()
		return storeErr(err)
	}
	if !ok {
		return s.explainRejectedTransition(ctx, caller, requestID, StatusDeleted)
	}

	s.cache.Invalidate(caller.ID)
	s.enqueueAudit(ctx, repository.RequestAuditPayload{
		Timestamp: time.Now().UTC(),
		Action:    "request_deleted",
		RequestID: requestID,
		ActorID:   caller.ID.String(),
		OldStatus: string(StatusPending),
		NewStatus: string(StatusDeleted),
	})
	return nil
}

// ExpressInterest appends a carrier interest record for a pending
// request. Interest records are append-only; confirming a match leaves
// competing records in place.
func (s *Service) ExpressInterest(ctx context.Context, caller Identity, requestID int64) error {
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return ErrNotFound
		}
		metrics.OperationErrorsTotal.WithLabelValues("express_interest").Inc()
		return storeErr(err)
	}
	if Status(req.Status) != StatusPending {
		return conflictErr("request %d is %s, interest is only accepted while pending", requestID, req.Status)
	}

	interest := &repository.CarrierInterest{
		RequestID:       requestID,
		CarrierID:       caller.ID,
		CarrierNickname: caller.Nickname,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.interests.Create(ctx, interest); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return validationErr("interest already expressed for request %d", requestID)
		}
		metrics.OperationErrorsTotal.WithLabelValues("express_interest").Inc()
		return storeErr(err)
	}

	metrics.InterestExpressedTotal.Inc()
	s.enqueueAudit(ctx, repository.RequestAuditPayload{
		Timestamp: interest.CreatedAt,
		Action:    "interest_expressed",
		RequestID: requestID,
		ActorID:   caller.ID.String(),
		CarrierID: caller.ID.String(),
	})
	return nil
}

// ListAcceptedByCarrier returns the matched requests assigned to the
// calling carrier, newest first.
func (s *Service) ListAcceptedByCarrier(ctx context.Context, caller Identity) ([]Request, error) {
	repoRequests, err := s.requests.ListByMatchedCarrier(ctx, caller.ID)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("list_accepted").Inc()
		return nil, storeErr(err)
	}
	requests, err := fromRepoRequests(repoRequests)
	if err != nil {
		return nil, storeErr(err)
	}
	return requests, nil
}

// ListInterestedByCarrier returns the still-pending requests the
// calling carrier has expressed interest in.
func (s *Service) ListInterestedByCarrier(ctx context.Context, caller Identity) ([]Request, error) {
	repoRequests, err := s.requests.ListPendingByInterest(ctx, caller.ID)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("list_interested").Inc()
		return nil, storeErr(err)
	}
	requests, err := fromRepoRequests(repoRequests)
	if err != nil {
		return nil, storeErr(err)
	}
	return requests, nil
}

// explainRejectedTransition turns a zero-row conditional update into
// the right error kind: requests the caller does not own (or that do
// not exist) read as not found, live requests in the wrong state read
// as conflicts.
func (s *Service) explainRejectedTransition(ctx context.Context, caller Identity, requestID int64, wanted Status) error {
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return ErrNotFound
		}
		return storeErr(err)
	}
	if req.BuyerID != caller.ID || Status(req.Status) == StatusDeleted {
		return ErrNotFound
	}
	return conflictErr("request %d is %s and cannot become %s", requestID, req.Status, wanted)
}

func (s *Service) getOwned(ctx context.Context, caller Identity, requestID int64) (*repository.Request, error) {
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeErr(err)
	}
	if req.BuyerID != caller.ID || Status(req.Status) == StatusDeleted {
		return nil, ErrNotFound
	}
	return req, nil
}

// enqueueAudit records a mutation in the outbox. The mutation itself
// already succeeded, so a failed enqueue is logged and not surfaced.
func (s *Service) enqueueAudit(ctx context.Context, payload repository.RequestAuditPayload) {
	body, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("failed to marshal audit payload", zap.Error(err))
		return
	}

	task := &repository.OutboxTask{
		Payload: body,
		Topic:   s.auditTopic,
	}
	if err := s.outbox.Create(ctx, task); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("audit_enqueue").Inc()
		s.logger.Error("failed to enqueue audit task",
			zap.String("action", payload.Action),
			zap.Int64("request_id", payload.RequestID),
			zap.Error(err))
	}
}
