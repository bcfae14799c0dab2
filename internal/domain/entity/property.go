package entity

import (
	"errors"
	"time"
)

// PropertyStatus is the visibility state of a listing.
// pending listings are invisible to the public; active listings are published;
// rejected is terminal; sold/rented are retained but hidden from the default
// public listing.
type PropertyStatus string

const (
	StatusPending  PropertyStatus = "pending"
	StatusActive   PropertyStatus = "active"
	StatusRejected PropertyStatus = "rejected"
	StatusSold     PropertyStatus = "sold"
	StatusRented   PropertyStatus = "rented"
)

func (s PropertyStatus) Valid() bool {
	switch s {
	case StatusPending, StatusActive, StatusRejected, StatusSold, StatusRented:
		return true
	}
	return false
}

// Purpose distinguishes sale listings from rentals.
type Purpose string

const (
	PurposeSale Purpose = "sale"
	PurposeRent Purpose = "rent"
)

func (p Purpose) Valid() bool { return p == PurposeSale || p == PurposeRent }

// BrokerName is drawn from the fixed staff roster. Adding a broker is a
// deliberate code change, kept in one place to avoid drift with the admin UI.
type BrokerName string

const (
	BrokerHelo    BrokerName = "Helo"
	BrokerMichele BrokerName = "Michele"
)

// BrokerRoster lists every broker accepted by validation.
var BrokerRoster = []BrokerName{BrokerHelo, BrokerMichele}

func (b BrokerName) Valid() bool {
	for _, r := range BrokerRoster {
		if b == r {
			return true
		}
	}
	return false
}

// Broker is the staff member responsible for a listing.
type Broker struct {
	Name     BrokerName `json:"name"`
	WhatsApp string     `json:"whatsapp"`
	Email    string     `json:"email"`
}

// PropertyImage is one entry of the ordered image gallery.
type PropertyImage struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
	IsMain  bool   `json:"isMain"`
}

// Property is a real-estate listing record.
type Property struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Purpose         Purpose         `json:"purpose"`
	Price           float64         `json:"price"`
	Neighborhood    string          `json:"neighborhood"`
	Address         string          `json:"address,omitempty"`
	Bedrooms        int             `json:"bedrooms"`
	Bathrooms       int             `json:"bathrooms"`
	ParkingSpaces   int             `json:"parkingSpaces"`
	LandSize        *float64        `json:"landSize,omitempty"`
	TotalArea       *float64        `json:"totalArea,omitempty"`
	Images          []PropertyImage `json:"images"`
	LongDescription string          `json:"longDescription,omitempty"`
	Details         []string        `json:"details"`
	Features        []string        `json:"features"`
	Status          PropertyStatus  `json:"status"`
	IsHighlighted   bool            `json:"isHighlighted"`
	Broker          Broker          `json:"broker"`
	SubmittedBy     string          `json:"submittedBy"`
	ApprovedBy      *string         `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time      `json:"approvedAt,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

var (
	ErrUnknownBroker    = errors.New("broker is not on the roster")
	ErrInvalidPurpose   = errors.New("purpose must be sale or rent")
	ErrNegativePrice    = errors.New("price must not be negative")
	ErrMultipleMainImgs = errors.New("at most one image may be marked as main")
)

// Validate checks the invariants that gin binding tags cannot express.
// When the gallery is non-empty and no image is flagged as main, the first
// image is promoted so well-formed listings always have exactly one.
func (p *Property) Validate() error {
	if !p.Purpose.Valid() {
		return ErrInvalidPurpose
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	if !p.Broker.Name.Valid() {
		return ErrUnknownBroker
	}
	mains := 0
	for _, img := range p.Images {
		if img.IsMain {
			mains++
		}
	}
	if mains > 1 {
		return ErrMultipleMainImgs
	}
	if mains == 0 && len(p.Images) > 0 {
		p.Images[0].IsMain = true
	}
	return nil
}

// MainImage returns the gallery image flagged as main, if any.
func (p *Property) MainImage() (PropertyImage, bool) {
	for _, img := range p.Images {
		if img.IsMain {
			return img, true
		}
	}
	return PropertyImage{}, false
}
