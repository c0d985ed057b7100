package models

import (
	"time"

	"github.com/lib/pq"
)

// MediaKind selects which pair of tables (catalog + relationship) a
// repository or service operates on. Movies and series are structurally
// identical and share every code path.
type MediaKind string

const (
	MediaKindMovie  MediaKind = "movie"
	MediaKindSeries MediaKind = "series"
)

// MediaDB represents a catalog record, keyed by the external numeric
// identifier of the upstream catalog source.
type MediaDB struct {
	MediaID   int64          `json:"id_media" db:"media_id"`          // External numeric id, unique
	Title     string         `json:"nome" db:"title"`                 // Title
	Genres    pq.StringArray `json:"genero" db:"genres"`              // Genre labels, order irrelevant
	APIRating float64        `json:"avaliacao_api" db:"api_rating"`   // Rating from the upstream source, epsilon-nudged off exact integers
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" db:"updated_at"`
}
