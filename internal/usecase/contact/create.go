package contact

import (
	"context"

	"github.com/allanebarua/Tenant-Management-System/internal/audit"
	domain "github.com/allanebarua/Tenant-Management-System/internal/domain/tenancy"
	"github.com/allanebarua/Tenant-Management-System/internal/httperr"
	"github.com/allanebarua/Tenant-Management-System/internal/models"
	"github.com/allanebarua/Tenant-Management-System/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateContactInput struct {
	ContactType  string
	ContactValue string
	IsActive     *bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateContact struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateContact(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateContact {
	return &CreateContact{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateContact) Execute(
	ctx context.Context,
	principal *models.User,
	in CreateContactInput,
) (*models.Contact, error) {

	if in.ContactType == "" {
		return nil, httperr.Invalid("contact_type", "This field is required.")
	}
	if in.ContactValue == "" {
		return nil, httperr.Invalid("contact_value", "This field is required.")
	}

	contactType, ok := models.ParseContactType(in.ContactType)
	if !ok {
		return nil, httperr.Invalid("contact_type", "Invalid contact type.")
	}

	value, err := normalizeValue(contactType, in.ContactValue)
	if err != nil {
		return nil, err
	}

	// Ownership is never taken from the payload.
	c := &models.Contact{
		OwnerID:      principal.ID,
		ContactType:  contactType,
		ContactValue: value,
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}

	if err := uc.repo.CreateContact(ctx, c); err != nil {
		return nil, err
	}
	c.Owner = *principal

	uc.audit.Dispatch(audit.Event{
		ActorID:  &principal.ID,
		Action:   "contact_created",
		Entity:   "contact",
		EntityID: &c.ID,
	})

	return c, nil
}

func normalizeValue(contactType models.ContactType, value string) (string, error) {
	switch contactType {
	case models.ContactTypePhone:
		return validators.NormalizePhone(value, validators.DefaultPhoneRegion)
	case models.ContactTypeEmail:
		if err := validators.ValidateEmail("contact_value", value); err != nil {
			return "", err
		}
	}
	return value, nil
}
