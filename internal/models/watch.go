package models

import (
	"time"

	"github.com/google/uuid"
)

// WatchDB represents a per-user, per-media relationship record: watch
// flags, optional rating and optional timestamped comment.
type WatchDB struct {
	ID          uuid.UUID  `json:"id" db:"id"`                       // Store-generated identifier
	UserID      uuid.UUID  `json:"id_utilizador" db:"user_id"`       // Owning account, weak reference
	MediaID     int64      `json:"id_media" db:"media_id"`           // External media id, weak reference
	Watched     bool       `json:"visto" db:"watched"`
	Watchlisted bool       `json:"a_ver" db:"watchlisted"`
	Rating      *float64   `json:"avaliacao" db:"rating"`            // Nil until the user rates
	Comment     *string    `json:"comentario" db:"comment"`          // Nil until the user comments
	CommentAt   *time.Time `json:"dataComentario" db:"comment_at"`   // Stamped when the comment is written
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// MediaCommentDB is the flattened cross-user comment projection for a
// single media item, with the owning account resolved inline.
type MediaCommentDB struct {
	Comment   string     `json:"comentario" db:"comment"`
	Rating    *float64   `json:"avaliacao" db:"rating"`
	CommentAt *time.Time `json:"dataComentario" db:"comment_at"`
	Username  string     `json:"username" db:"username"`
	Avatar    string     `json:"avatarUser" db:"avatar"`
}
