package entity

import "time"

// ClientStatus tracks where a prospect is in the funnel.
type ClientStatus string

const (
	ClientActive    ClientStatus = "active"
	ClientInactive  ClientStatus = "inactive"
	ClientConverted ClientStatus = "converted"
)

// InteractionType classifies a CRM touchpoint.
type InteractionType string

const (
	InteractionContact  InteractionType = "contact"
	InteractionVisit    InteractionType = "visit"
	InteractionProposal InteractionType = "proposal"
	InteractionFeedback InteractionType = "feedback"
)

func (t InteractionType) Valid() bool {
	switch t {
	case InteractionContact, InteractionVisit, InteractionProposal, InteractionFeedback:
		return true
	}
	return false
}

// PriceRange is an inclusive budget band.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// BedroomRange is an inclusive bedroom-count band.
type BedroomRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Preferences captures what a prospect is looking for.
type Preferences struct {
	PropertyType  []string     `json:"propertyType"`
	Purpose       Purpose      `json:"purpose,omitempty"`
	PriceRange    PriceRange   `json:"priceRange"`
	Neighborhoods []string     `json:"neighborhoods"`
	Bedrooms      BedroomRange `json:"bedrooms"`
	Features      []string     `json:"features"`
}

// Interaction is one CRM touchpoint, appended in order.
type Interaction struct {
	Date       time.Time       `json:"date"`
	Type       InteractionType `json:"type"`
	Notes      string          `json:"notes,omitempty"`
	PropertyID string          `json:"propertyId,omitempty"`
	CreatedBy  string          `json:"createdBy"`
}

// ClientProfile is an admin-managed prospect record. Uniqueness is enforced
// on the phone/email pair at creation.
type ClientProfile struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Phone        string        `json:"phone,omitempty"`
	Email        string        `json:"email,omitempty"`
	Preferences  Preferences   `json:"preferences"`
	Notes        string        `json:"notes,omitempty"`
	Status       ClientStatus  `json:"status"`
	Interactions []Interaction `json:"interactions"`
	CreatedBy    string        `json:"createdBy"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}
