package domain

import "time"

// Donation is a pledge submitted through the donation form.
type Donation struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Amount    int64     `json:"amount" bson:"amount"`
	Purpose   string    `json:"purpose,omitempty" bson:"purpose,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
