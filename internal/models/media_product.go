package models

// MediaProduct is the canonical shape the admin media picker displays. Every
// field is always populated: normalization substitutes fallbacks when the
// stored document is missing a value, so the UI never sees a hole.
type MediaProduct struct {
	ID        interface{} `json:"_id"`
	Name      string      `json:"name"`
	ProductNo string      `json:"productNo"`
	PlanType  string      `json:"planType"`
	MainImage *string     `json:"mainImage"`
	PlanFile  []string    `json:"planFile"`
}
