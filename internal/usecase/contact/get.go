package contact

import (
	"context"

	domain "github.com/allanebarua/Tenant-Management-System/internal/domain/tenancy"
	"github.com/allanebarua/Tenant-Management-System/internal/models"
	"github.com/allanebarua/Tenant-Management-System/internal/policy"
)

type GetContact struct {
	repo domain.Repository
}

func NewGetContact(repo domain.Repository) *GetContact {
	return &GetContact{repo: repo}
}

func (uc *GetContact) Execute(
	ctx context.Context,
	principal *models.User,
	id uint,
) (*models.Contact, error) {

	contact, err := uc.repo.GetContactByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.CanViewContact(principal, contact); err != nil {
		return nil, err
	}

	return contact, nil
}
