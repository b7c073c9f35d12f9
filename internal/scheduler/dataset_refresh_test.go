package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mohdanas86/hotelRevnue/infrastructure/dataset/mocks"
	"github.com/mohdanas86/hotelRevnue/internal/config"
	"github.com/mohdanas86/hotelRevnue/internal/domain"
)

type fakeInvalidator struct {
	cleared int
}

func (f *fakeInvalidator) ClearCache() { f.cleared++ }

func refreshConfig(enabled bool) *config.Config {
	return &config.Config{
		DatasetRefresh: config.DatasetRefresh{
			CronSchedule: "0 3 * * *",
			Enabled:      enabled,
		},
	}
}

func TestRunRefresh(t *testing.T) {
	t.Run("Recarrega o dataset e limpa o cache de previsões", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewMockStore(ctrl)
		store.EXPECT().Refresh().Return(&domain.Dataset{
			Records: []domain.BookingRecord{{HotelID: "H001", Date: time.Now()}},
		}, nil)

		invalidator := &fakeInvalidator{}
		service := NewDatasetRefreshService(store, invalidator, refreshConfig(true))

		err := service.RunRefresh()

		require.NoError(t, err)
		assert.Equal(t, 1, invalidator.cleared)
	})

	t.Run("Propaga erro da fonte sem limpar o cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewMockStore(ctrl)
		store.EXPECT().Refresh().Return(nil, errors.New("fonte indisponível"))

		invalidator := &fakeInvalidator{}
		service := NewDatasetRefreshService(store, invalidator, refreshConfig(true))

		err := service.RunRefresh()

		require.Error(t, err)
		assert.Equal(t, 0, invalidator.cleared)
	})

	t.Run("Registra os horários de início e fim da recarga", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewMockStore(ctrl)
		store.EXPECT().Refresh().Return(&domain.Dataset{}, nil)

		service := NewDatasetRefreshService(store, &fakeInvalidator{}, refreshConfig(true))

		before := time.Now()
		require.NoError(t, service.RunRefresh())

		status := service.GetStatus()
		startedAt, ok := status["last_sync_started_at"].(time.Time)
		require.True(t, ok)
		completedAt, ok := status["last_sync_completed_at"].(time.Time)
		require.True(t, ok)

		assert.False(t, startedAt.Before(before))
		assert.False(t, completedAt.Before(startedAt))
		assert.Equal(t, false, status["sync_running"])
	})
}

func TestGetStatus_AntesDeQualquerRecarga(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewDatasetRefreshService(mocks.NewMockStore(ctrl), nil, refreshConfig(false))

	status := service.GetStatus()

	assert.Equal(t, false, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.True(t, status["last_sync_started_at"].(time.Time).IsZero())
	assert.True(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestStart_DesabilitadoNaoAgenda(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Sem expectativa de Refresh: nada deve rodar quando desabilitado
	service := NewDatasetRefreshService(mocks.NewMockStore(ctrl), &fakeInvalidator{}, refreshConfig(false))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := service.Start(ctx)

	require.NoError(t, err)
}
