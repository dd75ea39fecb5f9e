package entities

import "time"

// SubmissionStatus is the moderation state of a user-proposed space.
type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "pending"
	SubmissionStatusApproved SubmissionStatus = "approved"
	SubmissionStatusRejected SubmissionStatus = "rejected"
)

// ValidSubmissionStatus reports whether s is one of the three known states.
func ValidSubmissionStatus(s SubmissionStatus) bool {
	switch s {
	case SubmissionStatusPending, SubmissionStatusApproved, SubmissionStatusRejected:
		return true
	}
	return false
}

// Submission is a user-proposed study space awaiting moderation.
type Submission struct {
	ID           int64            `json:"id" db:"id"`
	UserID       string           `json:"user_id" db:"user_id"`
	Name         string           `json:"name" db:"name"`
	Building     string           `json:"building" db:"building"`
	Campus       string           `json:"campus" db:"campus"`
	Description  string           `json:"description" db:"description"`
	NoiseLevel   string           `json:"noise_level" db:"noise_level"`
	PrivacyLevel string           `json:"privacy_level" db:"privacy_level"`
	Amenities    []string         `json:"amenities" db:"amenities"`
	Photos       []string         `json:"photos" db:"photos"`
	Status       SubmissionStatus `json:"status" db:"status"`
	CreatedAt    time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at" db:"updated_at"`
}

// SubmissionWithSubmitter is a submission joined with the submitter's profile.
type SubmissionWithSubmitter struct {
	Submission
	SubmitterName  string `json:"submitter_name" db:"submitter_name"`
	SubmitterEmail string `json:"submitter_email" db:"submitter_email"`
}
