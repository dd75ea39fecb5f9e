package entities

// StudySpace represents a bookable or drop-in study location on campus.
type StudySpace struct {
	ID           int64    `json:"id" db:"id"`
	Name         string   `json:"name" db:"name"`
	Building     string   `json:"building" db:"building"`
	Campus       string   `json:"campus" db:"campus"`
	Description  string   `json:"description" db:"description"`
	ImageURL     string   `json:"image_url" db:"image_url"`
	NoiseLevel   string   `json:"noise_level" db:"noise_level"`
	PrivacyLevel string   `json:"privacy_level" db:"privacy_level"`
	Amenities    []string `json:"amenities" db:"amenities"`
}

// StudySpaceSummary is the nested space payload returned with favorites.
type StudySpaceSummary struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Building string `json:"building" db:"building"`
	Campus   string `json:"campus" db:"campus"`
	ImageURL string `json:"image_url" db:"image_url"`
}
