package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/carrylink/carrylink/internal/lifecycle"
	mock_server "github.com/carrylink/carrylink/internal/server/mocks"
)

const testToken = "4a1f2f64-9d1e-4b6a-9a77-3a1df0a5c002"

var testBuyer = lifecycle.Identity{
	ID:       uuid.MustParse("7f9b6a1e-44d2-4fcb-a6b1-0d8f4f2e9c01"),
	Email:    "buyer@example.com",
	Nickname: "buyer-kim",
}

func newTestServer(t *testing.T) (http.Handler, *mock_server.MockLifecycle, *mock_server.MockAuth) {
	ctrl := gomock.NewController(t)
	mockLifecycle := mock_server.NewMockLifecycle(ctrl)
	mockAuth := mock_server.NewMockAuth(ctrl)
	s := New(mockLifecycle, mockAuth, zap.NewNop())
	return s.setupRoutes(), mockLifecycle, mockAuth
}

func authedRequest(method, target, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	r.Header.Set("Authorization", "Bearer "+testToken)
	return r
}

func expectAuthenticated(mockAuth *mock_server.MockAuth) {
	mockAuth.EXPECT().CurrentUser(gomock.Any(), testToken).Return(testBuyer, nil)
}

func TestAuthRequired(t *testing.T) {
	router, _, _ := newTestServer(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/requests", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Missing bearer token")
}

func TestHandleCreateRequest(t *testing.T) {
	body := `{
		"items": [{"name": "Book", "price": 20000}],
		"reward": 5000,
		"currency_code": "KRW",
		"delivery_from": "2024-01-01",
		"delivery_to": "2024-01-04"
	}`

	t.Run("created", func(t *testing.T) {
		router, mockLifecycle, mockAuth := newTestServer(t)
		expectAuthenticated(mockAuth)

		mockLifecycle.EXPECT().
			CreateRequest(gomock.Any(), testBuyer, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ lifecycle.Identity, params lifecycle.CreateParams) (*lifecycle.Request, error) {
				assert.Equal(t, "2024-01-01", params.DeliveryWindow.From.Format("2006-01-02"))
				assert.Equal(t, "2024-01-04", params.DeliveryWindow.To.Format("2006-01-02"))
				return &lifecycle.Request{
					ID:             42,
					BuyerID:        testBuyer.ID,
					Items:          params.Items,
					Reward:         params.Reward,
					CurrencyCode:   lifecycle.CurrencyKRW,
					DeliveryWindow: params.DeliveryWindow.String(),
					Status:         lifecycle.StatusPending,
				}, nil
			})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodPost, "/requests", body))

		require.Equal(t, http.StatusCreated, w.Code)

		var view map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		assert.Equal(t, float64(42), view["id"])
		assert.Equal(t, "pending", view["status"])
		assert.Equal(t, "20,000원", view["item_total_display"])
		assert.Equal(t, "5,000 KRW", view["reward_display"])
		assert.Equal(t, "2024-01-01", view["delivery_from"])
		assert.Equal(t, "2024-01-04", view["delivery_to"])
	})

	t.Run("invalid body", func(t *testing.T) {
		router, _, mockAuth := newTestServer(t)
		expectAuthenticated(mockAuth)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodPost, "/requests", "{not json"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad date", func(t *testing.T) {
		router, _, mockAuth := newTestServer(t)
		expectAuthenticated(mockAuth)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodPost, "/requests",
			`{"items":[{"name":"Book","price":1}],"reward":0,"currency_code":"KRW","delivery_from":"01/01/2024","delivery_to":"2024-01-04"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "delivery_from")
	})

	t.Run("validation error from service", func(t *testing.T) {
		router, mockLifecycle, mockAuth := newTestServer(t)
		expectAuthenticated(mockAuth)

		mockLifecycle.EXPECT().
			CreateRequest(gomock.Any(), testBuyer, gomock.Any()).
			Return(nil, lifecycle.ErrValidationRejected)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodPost, "/requests", body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleListMyRequests(t *testing.T) {
	router, mockLifecycle, mockAuth := newTestServer(t)
	expectAuthenticated(mockAuth)

	mockLifecycle.EXPECT().
		ListMyRequests(gomock.Any(), testBuyer, lifecycle.StatusPending).
		Return([]lifecycle.Request{{
			ID:             42,
			BuyerID:        testBuyer.ID,
			Items:          []lifecycle.Item{{Name: "Book", Price: 20000}},
			Reward:         5000,
			CurrencyCode:   lifecycle.CurrencyKRW,
			DeliveryWindow: "[2024-01-01T00:00:00Z,2024-01-04T00:00:00Z]",
			Status:         lifecycle.StatusPending,
		}}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(http.MethodGet, "/requests?status=pending", ""))

	require.Equal(t, http.StatusOK, w.Code)

	var views []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	require.Len(t, views, 1)
	assert.Equal(t, float64(20000), views[0]["item_total"])
	assert.Equal(t, "20,000원", views[0]["item_total_display"])
	assert.Equal(t, "5,000 KRW", views[0]["reward_display"])
}

func TestHandleConfirmMatching(t *testing.T) {
	carrierID := uuid.MustParse("f1b2c3d4-5e6f-4a7b-8c9d-0e1f2a3b4c5d")
	body := `{"carrier_id": "` + carrierID.String() + `", "carrier_nickname": "carrier-lee"}`

	t.Run("confirmed", func(t *testing.T) {
		router, mockLifecycle, mockAuth := newTestServer(t)
		expectAuthenticated(mockAuth)

		mockLifecycle.EXPECT().
			ConfirmMatching(gomock.Any(), testBuyer, int64(42), carrierID, "carrier-lee").
			Return(nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodPost, "/requests/42/confirm", body))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("conflict", func(t *testing.T) {
		router, mockLifecycle, mockAuth := newTestServer(t)
		expectAuthenticated(mockAuth)

		mockLifecycle.EXPECT().
			ConfirmMatching(gomock.Any(), testBuyer, int64(42), carrierID, "carrier-lee").
			Return(lifecycle.ErrConflict)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodPost, "/requests/42/confirm", body))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("bad carrier id", func(t *testing.T) {
		router, _, mockAuth := newTestServer(t)
		expectAuthenticated(mockAuth)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodPost, "/requests/42/confirm",
			`{"carrier_id": "not-a-uuid", "carrier_nickname": "x"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad request id", func(t *testing.T) {
		router, _, mockAuth := newTestServer(t)
		expectAuthenticated(mockAuth)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodPost, "/requests/abc/confirm", body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleCancelMatching(t *testing.T) {
	router, mockLifecycle, mockAuth := newTestServer(t)
	expectAuthenticated(mockAuth)

	mockLifecycle.EXPECT().
		CancelMatching(gomock.Any(), testBuyer, int64(42)).
		Return(nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(http.MethodPost, "/requests/42/cancel", ""))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandleDeleteRequest(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		router, mockLifecycle, mockAuth := newTestServer(t)
		expectAuthenticated(mockAuth)

		mockLifecycle.EXPECT().
			DeleteRequest(gomock.Any(), testBuyer, int64(42)).
			Return(nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodDelete, "/requests/42", ""))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		router, mockLifecycle, mockAuth := newTestServer(t)
		expectAuthenticated(mockAuth)

		mockLifecycle.EXPECT().
			DeleteRequest(gomock.Any(), testBuyer, int64(7)).
			Return(lifecycle.ErrNotFound)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodDelete, "/requests/7", ""))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleExpressInterest(t *testing.T) {
	router, mockLifecycle, mockAuth := newTestServer(t)
	expectAuthenticated(mockAuth)

	mockLifecycle.EXPECT().
		ExpressInterest(gomock.Any(), testBuyer, int64(42)).
		Return(nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(http.MethodPost, "/requests/42/interest", ""))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandleListCandidates(t *testing.T) {
	router, mockLifecycle, mockAuth := newTestServer(t)
	expectAuthenticated(mockAuth)

	mockLifecycle.EXPECT().
		ListCandidates(gomock.Any(), testBuyer, int64(42)).
		Return([]lifecycle.CarrierInterest{{RequestID: 42, CarrierNickname: "carrier-lee"}}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(http.MethodGet, "/requests/42/candidates", ""))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "carrier-lee")
}

func TestHandleLogin(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		router, _, mockAuth := newTestServer(t)

		mockAuth.EXPECT().
			Login(gomock.Any(), "buyer@example.com", "secret-pass").
			Return(testToken, testBuyer, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/login",
			strings.NewReader(`{"email":"buyer@example.com","password":"secret-pass"}`)))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), testToken)
	})

	t.Run("bad credentials", func(t *testing.T) {
		router, _, mockAuth := newTestServer(t)

		mockAuth.EXPECT().
			Login(gomock.Any(), "buyer@example.com", "wrong").
			Return("", lifecycle.Identity{}, lifecycle.ErrUnauthenticated)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/login",
			strings.NewReader(`{"email":"buyer@example.com","password":"wrong"}`)))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandleMe(t *testing.T) {
	router, _, mockAuth := newTestServer(t)
	expectAuthenticated(mockAuth)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(http.MethodGet, "/auth/me", ""))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "buyer-kim")
	assert.Contains(t, w.Body.String(), "buyer@example.com")
}

func TestHandleCarrierListings(t *testing.T) {
	router, mockLifecycle, mockAuth := newTestServer(t)
	mockAuth.EXPECT().CurrentUser(gomock.Any(), testToken).Return(testBuyer, nil).Times(2)

	matched := lifecycle.Request{
		ID:             42,
		Items:          []lifecycle.Item{{Name: "Book", Price: 20000}},
		Reward:         5000,
		CurrencyCode:   lifecycle.CurrencyKRW,
		DeliveryWindow: "[2024-01-01T00:00:00Z,2024-01-04T00:00:00Z]",
		Status:         lifecycle.StatusMatched,
	}
	mockLifecycle.EXPECT().ListAcceptedByCarrier(gomock.Any(), testBuyer).Return([]lifecycle.Request{matched}, nil)
	mockLifecycle.EXPECT().ListInterestedByCarrier(gomock.Any(), testBuyer).Return(nil, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(http.MethodGet, "/carrier/accepted", ""))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "matched")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(http.MethodGet, "/carrier/interested", ""))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())
}
