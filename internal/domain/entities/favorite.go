package entities

import "time"

// Favorite bookmarks a study space for a user. (user_id, space_id) is unique.
type Favorite struct {
	ID        int64     `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	SpaceID   int64     `json:"space_id" db:"space_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// FavoriteWithSpace is a favorite joined with its space summary. The nested
// key is study_spaces for compatibility with existing API consumers.
type FavoriteWithSpace struct {
	ID      int64             `json:"id" db:"id"`
	SpaceID int64             `json:"space_id" db:"space_id"`
	Space   StudySpaceSummary `json:"study_spaces"`
}
