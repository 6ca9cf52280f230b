package contact

import (
	"context"

	domain "github.com/allanebarua/Tenant-Management-System/internal/domain/tenancy"
	"github.com/allanebarua/Tenant-Management-System/internal/filters"
	"github.com/allanebarua/Tenant-Management-System/internal/models"
	"github.com/allanebarua/Tenant-Management-System/internal/policy"
)

type ListContacts struct {
	repo domain.Repository
}

func NewListContacts(repo domain.Repository) *ListContacts {
	return &ListContacts{repo: repo}
}

func (uc *ListContacts) Execute(
	ctx context.Context,
	principal *models.User,
	filter filters.ContactFilter,
) ([]models.Contact, error) {
	scope := policy.ScopeContacts(principal)
	return uc.repo.ListContacts(ctx, scope, filter)
}
