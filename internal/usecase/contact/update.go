package contact

import (
	"context"

	"github.com/allanebarua/Tenant-Management-System/internal/audit"
	domain "github.com/allanebarua/Tenant-Management-System/internal/domain/tenancy"
	"github.com/allanebarua/Tenant-Management-System/internal/models"
	"github.com/allanebarua/Tenant-Management-System/internal/policy"
)

type UpdateContactInput struct {
	ContactValue *string
	IsActive     *bool
}

type UpdateContact struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateContact(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateContact {
	return &UpdateContact{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateContact) Execute(
	ctx context.Context,
	principal *models.User,
	id uint,
	in UpdateContactInput,
) (*models.Contact, error) {

	contact, err := uc.repo.GetContactByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.CanUpdateContact(principal, contact); err != nil {
		return nil, err
	}

	if in.ContactValue != nil {
		value, err := normalizeValue(contact.ContactType, *in.ContactValue)
		if err != nil {
			return nil, err
		}
		contact.ContactValue = value
	}
	if in.IsActive != nil {
		contact.IsActive = *in.IsActive
	}

	if err := uc.repo.UpdateContact(ctx, contact); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &principal.ID,
		Action:   "contact_updated",
		Entity:   "contact",
		EntityID: &contact.ID,
	})

	return contact, nil
}
