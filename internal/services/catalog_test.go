package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/jpfonseca/watchlog/internal/models"
	"github.com/jpfonseca/watchlog/internal/services"
)

func TestCatalogService_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writeRepo := services.NewMockCatalogWriter(ctrl)
	svc := services.NewCatalogService(writeRepo)

	tests := []struct {
		name         string
		inputRating  float64
		storedRating float64
	}{
		{
			name:         "integer rating is nudged off the sentinel",
			inputRating:  7,
			storedRating: 7.0001,
		},
		{
			name:         "zero rating is nudged too",
			inputRating:  0,
			storedRating: 0.0001,
		},
		{
			name:         "fractional rating is stored unchanged",
			inputRating:  7.5,
			storedRating: 7.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writeRepo.EXPECT().
				Save(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, media models.MediaDB) (*models.MediaDB, error) {
					assert.InDelta(t, tt.storedRating, media.APIRating, 1e-9)
					assert.Equal(t, int64(603), media.MediaID)
					return &media, nil
				})

			got, err := svc.Save(context.Background(), models.MediaDB{
				MediaID:   603,
				Title:     "The Matrix",
				APIRating: tt.inputRating,
			})
			assert.NoError(t, err)
			assert.InDelta(t, tt.storedRating, got.APIRating, 1e-9)
		})
	}

	t.Run("repository error", func(t *testing.T) {
		writeRepo.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db error"))

		got, err := svc.Save(context.Background(), models.MediaDB{MediaID: 603, APIRating: 8.7})
		assert.EqualError(t, err, "db error")
		assert.Nil(t, got)
	})
}
