package models

import "time"

// Subscriber is a newsletter subscriber record. Email is unique and
// stored lowercase.
type Subscriber struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
}

// swagger:model SubscribeRequest
type SubscribeRequest struct {
	Name  string `json:"name"  example:"Jane Doe"`
	Email string `json:"email" example:"jane@example.com"`
}

// swagger:model LoginRequest
type LoginRequest struct {
	Password string `json:"password"`
}
