package entity

import "time"

// MessageStatus is a two-way toggle, not a one-way workflow.
type MessageStatus string

const (
	MessageUnanswered MessageStatus = "unanswered"
	MessageAnswered   MessageStatus = "answered"
)

// Responder identifies the staff member who handled a message.
type Responder struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Message is one entry of the public contact inbox.
type Message struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone,omitempty"`
	Subject     string        `json:"subject"`
	Message     string        `json:"message"`
	Status      MessageStatus `json:"status"`
	RespondedBy *Responder    `json:"respondedBy,omitempty"`
	RespondedAt *time.Time    `json:"respondedAt,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
}
