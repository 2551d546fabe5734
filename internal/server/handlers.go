package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/carrylink/carrylink/internal/auth"
	"github.com/carrylink/carrylink/internal/lifecycle"
)

// requestView is the listing shape: the raw request plus the display
// fields the dashboard renders (grouped item total, formatted reward,
// delivery window bounds).
type requestView struct {
	lifecycle.Request
	ItemTotal        int64  `json:"item_total"`
	ItemTotalDisplay string `json:"item_total_display"`
	RewardDisplay    string `json:"reward_display"`
	DeliveryFrom     string `json:"delivery_from"`
	DeliveryTo       string `json:"delivery_to"`
}

func toRequestView(req lifecycle.Request) requestView {
	view := requestView{
		Request:          req,
		ItemTotal:        req.ItemTotal(),
		ItemTotalDisplay: lifecycle.FormatWon(req.ItemTotal()),
		RewardDisplay:    lifecycle.FormatAmount(req.Reward, req.CurrencyCode),
	}
	if from, to, err := lifecycle.DisplayBounds(req.DeliveryWindow); err == nil {
		view.DeliveryFrom = from
		view.DeliveryTo = to
	}
	return view
}

func toRequestViews(requests []lifecycle.Request) []requestView {
	views := make([]requestView, 0, len(requests))
	for _, req := range requests {
		views = append(views, toRequestView(req))
	}
	return views
}

func requestIDFrom(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var signupRequest struct {
		Email       string `json:"email"`
		Password    string `json:"password"`
		Nickname    string `json:"nickname"`
		PhoneNumber string `json:"phone_number"`
		CountryCode string `json:"country_code"`
	}

	if err := json.NewDecoder(r.Body).Decode(&signupRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	identity, err := s.auth.Signup(r.Context(), auth.SignupParams{
		Email:       signupRequest.Email,
		Password:    signupRequest.Password,
		Nickname:    signupRequest.Nickname,
		PhoneNumber: signupRequest.PhoneNumber,
		CountryCode: signupRequest.CountryCode,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{
		"id":       identity.ID.String(),
		"nickname": identity.Nickname,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var loginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&loginRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, identity, err := s.auth.Login(r.Context(), loginRequest.Email, loginRequest.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"token":    token,
		"id":       identity.ID.String(),
		"nickname": identity.Nickname,
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.auth.Logout(r.Context(), tokenFrom(r)); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	caller := callerFrom(r)
	respondJSON(w, http.StatusOK, map[string]string{
		"id":       caller.ID.String(),
		"email":    caller.Email,
		"nickname": caller.Nickname,
	})
}

func (s *Server) handleCreateRequest(w http.ResponseWriter, r *http.Request) {
	var createRequest struct {
		Items        []lifecycle.Item `json:"items"`
		Reward       int64            `json:"reward"`
		CurrencyCode string           `json:"currency_code"`
		DeliveryFrom string           `json:"delivery_from"`
		DeliveryTo   string           `json:"delivery_to"`
		Notes        string           `json:"notes"`
	}

	if err := json.NewDecoder(r.Body).Decode(&createRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	from, err := time.Parse("2006-01-02", createRequest.DeliveryFrom)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid delivery_from date. Use YYYY-MM-DD")
		return
	}
	to, err := time.Parse("2006-01-02", createRequest.DeliveryTo)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid delivery_to date. Use YYYY-MM-DD")
		return
	}

	req, err := s.lifecycle.CreateRequest(r.Context(), callerFrom(r), lifecycle.CreateParams{
		Items:          createRequest.Items,
		Reward:         createRequest.Reward,
		CurrencyCode:   createRequest.CurrencyCode,
		DeliveryWindow: lifecycle.DateRange{From: from.UTC(), To: to.UTC()},
		Notes:          createRequest.Notes,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toRequestView(*req))
}

func (s *Server) handleListMyRequests(w http.ResponseWriter, r *http.Request) {
	statusFilter := lifecycle.Status(r.URL.Query().Get("status"))

	requests, err := s.lifecycle.ListMyRequests(r.Context(), callerFrom(r), statusFilter)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toRequestViews(requests))
}

func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}

	candidates, err := s.lifecycle.ListCandidates(r.Context(), callerFrom(r), requestID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, candidates)
}

func (s *Server) handleConfirmMatching(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}

	var confirmRequest struct {
		CarrierID       string `json:"carrier_id"`
		CarrierNickname string `json:"carrier_nickname"`
	}
	if err := json.NewDecoder(r.Body).Decode(&confirmRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	carrierID, err := uuid.Parse(confirmRequest.CarrierID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid carrier_id")
		return
	}

	if err := s.lifecycle.ConfirmMatching(r.Context(), callerFrom(r), requestID, carrierID, confirmRequest.CarrierNickname); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Matching confirmed"})
}

func (s *Server) handleCancelMatching(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}

	if err := s.lifecycle.CancelMatching(r.Context(), callerFrom(r), requestID); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Matching cancelled"})
}

func (s *Server) handleDeleteRequest(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}

	if err := s.lifecycle.DeleteRequest(r.Context(), callerFrom(r), requestID); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Request deleted"})
}

func (s *Server) handleExpressInterest(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}

	if err := s.lifecycle.ExpressInterest(r.Context(), callerFrom(r), requestID); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"message": "Interest recorded"})
}

func (s *Server) handleListAccepted(w http.ResponseWriter, r *http.Request) {
	requests, err := s.lifecycle.ListAcceptedByCarrier(r.Context(), callerFrom(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toRequestViews(requests))
}

func (s *Server) handleListInterested(w http.ResponseWriter, r *http.Request) {
	requests, err := s.lifecycle.ListInterestedByCarrier(r.Context(), callerFrom(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toRequestViews(requests))
}
