package dto

import "github.com/allanebarua/Tenant-Management-System/internal/models"

// UserResponse is the wire representation of a user. The password is
// write-only and never echoed; the landlord is flattened to a username;
// created carries the date only.
type UserResponse struct {
	ID           uint              `json:"id"`
	Username     string            `json:"username"`
	FirstName    string            `json:"first_name"`
	LastName     string            `json:"last_name"`
	Email        string            `json:"email"`
	IsActive     bool              `json:"is_active"`
	UserType     string            `json:"user_type"`
	Landlord     *string           `json:"landlord"`
	Created      string            `json:"created"`
	UserContacts []ContactResponse `json:"user_contacts"`
}

// NewUserResponse builds the representation. The Landlord and Contacts
// associations must be preloaded.
func NewUserResponse(u *models.User) UserResponse {
	var landlord *string
	if u.Landlord != nil {
		name := u.Landlord.Username
		landlord = &name
	}

	contacts := make([]ContactResponse, 0, len(u.Contacts))
	for i := range u.Contacts {
		contacts = append(contacts, NewContactResponse(&u.Contacts[i], u.Username))
	}

	return UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		IsActive:     u.IsActive,
		UserType:     string(u.UserType),
		Landlord:     landlord,
		Created:      u.CreatedAt.Format("2006-01-02"),
		UserContacts: contacts,
	}
}

func NewUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}
