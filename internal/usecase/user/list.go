package user

import (
	"context"

	domain "github.com/allanebarua/Tenant-Management-System/internal/domain/tenancy"
	"github.com/allanebarua/Tenant-Management-System/internal/filters"
	"github.com/allanebarua/Tenant-Management-System/internal/models"
	"github.com/allanebarua/Tenant-Management-System/internal/policy"
)

type ListUsers struct {
	repo domain.Repository
}

func NewListUsers(repo domain.Repository) *ListUsers {
	return &ListUsers{repo: repo}
}

// Execute lists users visible to the principal, narrowed by the
// caller's filters.
func (uc *ListUsers) Execute(
	ctx context.Context,
	principal *models.User,
	filter filters.UserFilter,
) ([]models.User, error) {
	scope := policy.ScopeUsers(principal)
	return uc.repo.ListUsers(ctx, scope, filter)
}
