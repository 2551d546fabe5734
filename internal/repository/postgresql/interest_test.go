package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_database "github.com/carrylink/carrylink/internal/db/mocks"
	"github.com/carrylink/carrylink/internal/repository"
	"github.com/carrylink/carrylink/internal/repository/postgresql"
)

func TestInterestRepoCreate(t *testing.T) {
	t.Run("assigns id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewInterestRepo(mockDB)

		interest := &repository.CarrierInterest{
			RequestID:       42,
			CarrierID:       carrierID,
			CarrierNickname: "carrier-lee",
			CreatedAt:       time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
		}

		mockDB.EXPECT().
			ExecQueryRow(gomock.Any(), gomock.Any(),
				interest.RequestID, interest.CarrierID, interest.CarrierNickname, interest.CreatedAt).
			Return(scanRow{values: []interface{}{int64(7)}})

		require.NoError(t, repo.Create(context.Background(), interest))
		assert.Equal(t, int64(7), interest.ID)
	})

	t.Run("unique violation passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewInterestRepo(mockDB)

		pgErr := &pgconn.PgError{Code: "23505"}
		mockDB.EXPECT().
			ExecQueryRow(gomock.Any(), gomock.Any(),
				gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(scanRow{err: pgErr})

		err := repo.Create(context.Background(), &repository.CarrierInterest{RequestID: 42, CarrierID: carrierID})
		assert.ErrorIs(t, err, pgErr)
	})
}

func TestInterestRepoListByRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewInterestRepo(mockDB)

	mockDB.EXPECT().
		Select(gomock.Any(), gomock.Any(), gomock.Any(), int64(42)).
		DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
			interests := dest.(*[]*repository.CarrierInterest)
			*interests = []*repository.CarrierInterest{
				{ID: 1, RequestID: 42, CarrierNickname: "carrier-lee"},
				{ID: 2, RequestID: 42, CarrierNickname: "carrier-park"},
			}
			return nil
		})

	interests, err := repo.ListByRequest(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, interests, 2)
	assert.Equal(t, "carrier-lee", interests[0].CarrierNickname)
}

func TestInterestRepoCountByRequestAndCarrier(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewInterestRepo(mockDB)

	mockDB.EXPECT().
		ExecQueryRow(gomock.Any(), gomock.Any(), int64(42), carrierID).
		Return(scanRow{values: []interface{}{1}})

	count, err := repo.CountByRequestAndCarrier(context.Background(), 42, carrierID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
