package models

import "time"

// Client is an intake record for a dog owner.
type Client struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	DogName      string    `bson:"dogName" json:"dogName"`
	DogBreed     string    `bson:"dogBreed,omitempty" json:"dogBreed,omitempty"`
	DogBirthdate string    `bson:"dogBirthdate,omitempty" json:"dogBirthdate,omitempty"` // e.g. "2023-04-01"
	Notes        string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CreateClientRequest is the intake form payload.
type CreateClientRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone,omitempty"`
	DogName      string `json:"dogName" binding:"required"`
	DogBreed     string `json:"dogBreed,omitempty"`
	DogBirthdate string `json:"dogBirthdate,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// UpdateClientRequest carries partial updates; empty fields are left unchanged.
type UpdateClientRequest struct {
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	DogName      string `json:"dogName,omitempty"`
	DogBreed     string `json:"dogBreed,omitempty"`
	DogBirthdate string `json:"dogBirthdate,omitempty"`
	Notes        string `json:"notes,omitempty"`
}
