package dto

import "github.com/allanebarua/Tenant-Management-System/internal/models"

type ContactResponse struct {
	Owner        string `json:"owner"`
	ContactType  string `json:"contact_type"`
	ContactValue string `json:"contact_value"`
	IsActive     bool   `json:"is_active"`
}

// NewContactResponse flattens a contact; the owner username is passed
// in so nested lists do not need the Owner association loaded.
func NewContactResponse(c *models.Contact, owner string) ContactResponse {
	return ContactResponse{
		Owner:        owner,
		ContactType:  string(c.ContactType),
		ContactValue: c.ContactValue,
		IsActive:     c.IsActive,
	}
}

// NewContactResponses builds representations for contacts loaded with
// their Owner association.
func NewContactResponses(contacts []models.Contact) []ContactResponse {
	out := make([]ContactResponse, 0, len(contacts))
	for i := range contacts {
		out = append(out, NewContactResponse(&contacts[i], contacts[i].Owner.Username))
	}
	return out
}
