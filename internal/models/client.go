package models

// Client is a customer record. Names are stored title-cased; see NormalizeName.
type Client struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Contact     string `json:"contact,omitempty"`
	BonusPoints int    `json:"bonus_points"`
}
