package domain

import (
	"time"

	"github.com/google/uuid"
)

// Gender is the biological sex used by the BMR formulas.
// @Description Gender used for formula selection: male or female.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type Client struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Gender    Gender    `gorm:"type:varchar(10);not null" json:"gender"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Client) TableName() string {
	return "clients"
}

// CreateClientRequest is the request body for creating a client.
// @Description Request payload for registering a coached client.
type CreateClientRequest struct {
	// Display name of the client
	Name string `json:"name" validate:"required,max=255" example:"Jane Doe"`
	// Gender used by the energy formulas
	Gender Gender `json:"gender" validate:"required,oneof=male female" example:"female" enums:"male,female"`
}

// ClientResponse is the response body for client endpoints.
type ClientResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Gender    Gender    `json:"gender"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *Client) ToResponse() ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Gender:    c.Gender,
		CreatedAt: c.CreatedAt,
	}
}
