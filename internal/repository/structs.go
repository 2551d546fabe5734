package repository

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrObjectNotFound = errors.New("not found")

type Request struct {
	ID               int64           `db:"id"`
	BuyerID          uuid.UUID       `db:"buyer_id"`
	Items            json.RawMessage `db:"items"`
	Reward           int64           `db:"reward"`
	CurrencyCode     string          `db:"currency_code"`
	DeliveryWindow   string          `db:"delivery_window"`
	MatchedCarrierID *uuid.UUID      `db:"matched_carrier_id"`
	CarrierNickname  *string         `db:"carrier_nickname"`
	ChatLink         *string         `db:"chat_link"`
	Notes            string          `db:"notes"`
	Status           string          `db:"status"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

type CarrierInterest struct {
	ID              int64     `db:"id"`
	RequestID       int64     `db:"request_id"`
	CarrierID       uuid.UUID `db:"carrier_id"`
	CarrierNickname string    `db:"carrier_nickname"`
	CreatedAt       time.Time `db:"created_at"`
}

type User struct {
	ID          uuid.UUID `db:"id"`
	Email       string    `db:"email"`
	Password    string    `db:"password"`
	Nickname    string    `db:"nickname"`
	PhoneNumber string    `db:"phone_number"`
	CountryCode string    `db:"country_code"`
	CreatedAt   time.Time `db:"created_at"`
}

type Session struct {
	Token     uuid.UUID `db:"token"`
	UserID    uuid.UUID `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
}
