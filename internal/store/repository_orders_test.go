package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/qa-demo-api/internal/logger"
	"github.com/MKhiriev/qa-demo-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_FindOrderByID(t *testing.T) {
	repo := NewOrderRepository(SeedOrders(), logger.Nop())

	tests := []struct {
		name    string
		id      int64
		want    models.Order
		wantErr error
	}{
		{name: "seeded order", id: 1, want: models.Order{ID: 1, Total: 99.5, Currency: "USD"}},
		{name: "unknown id", id: 2, wantErr: ErrOrderNotFound},
		{name: "zero id", id: 0, wantErr: ErrOrderNotFound},
		{name: "negative id", id: -1, wantErr: ErrOrderNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.FindOrderByID(context.Background(), tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, models.Order{}, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrderRepository_LaterDuplicateWins(t *testing.T) {
	repo := NewOrderRepository([]models.Order{
		{ID: 7, Total: 1, Currency: "EUR"},
		{ID: 7, Total: 2, Currency: "GBP"},
	}, logger.Nop())

	got, err := repo.FindOrderByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "GBP", got.Currency)
}

func TestNewStorages(t *testing.T) {
	s := NewStorages(logger.Nop())
	require.NotNil(t, s)
	require.NotNil(t, s.CredentialRepository)
	require.NotNil(t, s.TokenRepository)
	require.NotNil(t, s.OrderRepository)

	pw, err := s.CredentialRepository.FindPassword(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", pw)
}
