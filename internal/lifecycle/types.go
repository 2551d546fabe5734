package lifecycle

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/carrylink/carrylink/internal/repository"
)

// Identity is the authenticated caller of a lifecycle operation.
type Identity struct {
	ID       uuid.UUID
	Email    string
	Nickname string
}

type Item struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type Request struct {
	ID               int64      `json:"id"`
	BuyerID          uuid.UUID  `json:"buyer_id"`
	Items            []Item     `json:"items"`
	Reward           int64      `json:"reward"`
	CurrencyCode     Currency   `json:"currency_code"`
	DeliveryWindow   string     `json:"delivery_window"`
	MatchedCarrierID *uuid.UUID `json:"matched_carrier_id,omitempty"`
	CarrierNickname  *string    `json:"carrier_nickname,omitempty"`
	ChatLink         *string    `json:"chat_link,omitempty"`
	Notes            string     `json:"notes"`
	Status           Status     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// ItemTotal is the summed price of all items, shown next to the reward
// in listings.
func (r Request) ItemTotal() int64 {
	var total int64
	for _, item := range r.Items {
		total += item.Price
	}
	return total
}

type CarrierInterest struct {
	RequestID       int64     `json:"request_id"`
	CarrierID       uuid.UUID `json:"carrier_id"`
	CarrierNickname string    `json:"carrier_nickname"`
	CreatedAt       time.Time `json:"created_at"`
}

func fromRepoRequest(req *repository.Request) (Request, error) {
	var items []Item
	if err := json.Unmarshal(req.Items, &items); err != nil {
		return Request{}, fmt.Errorf("decoding items of request %d: %w", req.ID, err)
	}

	return Request{
		ID:               req.ID,
		BuyerID:          req.BuyerID,
		Items:            items,
		Reward:           req.Reward,
		CurrencyCode:     Currency(req.CurrencyCode),
		DeliveryWindow:   req.DeliveryWindow,
		MatchedCarrierID: req.MatchedCarrierID,
		CarrierNickname:  req.CarrierNickname,
		ChatLink:         req.ChatLink,
		Notes:            req.Notes,
		Status:           Status(req.Status),
		CreatedAt:        req.CreatedAt,
		UpdatedAt:        req.UpdatedAt,
	}, nil
}

func fromRepoRequests(repoRequests []*repository.Request) ([]Request, error) {
	requests := make([]Request, 0, len(repoRequests))
	for _, repoReq := range repoRequests {
		req, err := fromRepoRequest(repoReq)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}

func fromRepoInterest(interest *repository.CarrierInterest) CarrierInterest {
	return CarrierInterest{
		RequestID:       interest.RequestID,
		CarrierID:       interest.CarrierID,
		CarrierNickname: interest.CarrierNickname,
		CreatedAt:       interest.CreatedAt,
	}
}
