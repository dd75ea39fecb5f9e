package entities

import "time"

// Review represents a user review of a study space.
type Review struct {
	ID        int64     `json:"id" db:"id"`
	AreaID    int64     `json:"area_id" db:"area_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Author    string    `json:"author" db:"author"`
	Rating    int       `json:"rating" db:"rating"` // 1-5
	Content   string    `json:"content" db:"content"`
	Photos    []string  `json:"photos" db:"photos"`
	Helpful   int       `json:"helpful" db:"helpful"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ReviewWithAuthor is a review joined with the author's profile for listings.
type ReviewWithAuthor struct {
	Review
	AuthorName   string `json:"author_name" db:"author_name"`
	AuthorAvatar string `json:"author_avatar" db:"author_avatar"`
}
