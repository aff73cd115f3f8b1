package models

import "time"

// Lead is a contact form submission from the website.
type Lead struct {
	ID          string    `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	Phone       string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Company     string    `bson:"company,omitempty" json:"company,omitempty"`
	ProjectType string    `bson:"projectType" json:"projectType"`
	ProductID   string    `bson:"productId,omitempty" json:"productId,omitempty"`
	Message     string    `bson:"message" json:"message"`
	Source      string    `bson:"source,omitempty" json:"source,omitempty"`
	IP          string    `bson:"ip,omitempty" json:"-"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
