package services

import (
	"context"
	"math"

	"github.com/jpfonseca/watchlog/internal/logger"
	"github.com/jpfonseca/watchlog/internal/models"
)

// ratingEpsilon is added to ratings whose fractional part is exactly zero.
// Downstream consumers treat exact-integer ratings as an "unrated" sentinel,
// so genuine integer ratings are nudged off that value before storage.
const ratingEpsilon = 0.0001

// CatalogWriter defines write operations on the catalog.
type CatalogWriter interface {
	Save(ctx context.Context, media models.MediaDB) (*models.MediaDB, error)
}

// CatalogService handles catalog upserts for one media kind.
type CatalogService struct {
	writeRepo CatalogWriter
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(writeRepo CatalogWriter) *CatalogService {
	return &CatalogService{writeRepo: writeRepo}
}

// Save upserts a catalog record keyed by its external id, normalizing the
// rating first: 7 is stored as 7.0001, 7.5 is stored unchanged.
func (svc *CatalogService) Save(ctx context.Context, media models.MediaDB) (*models.MediaDB, error) {
	if media.APIRating-math.Floor(media.APIRating) == 0 {
		media.APIRating += ratingEpsilon
	}

	record, err := svc.writeRepo.Save(ctx, media)
	if err != nil {
		logger.Log.Errorw("failed to save catalog record", "err", err)
		return nil, err
	}
	return record, nil
}
