package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/allanebarua/Tenant-Management-System/internal/domain/tenancy"
	"github.com/allanebarua/Tenant-Management-System/internal/filters"
	"github.com/allanebarua/Tenant-Management-System/internal/httperr"
	"github.com/allanebarua/Tenant-Management-System/internal/models"
	"github.com/allanebarua/Tenant-Management-System/internal/policy"
)

type TenancyGormRepository struct {
	db *gorm.DB
}

func NewTenancyGormRepository(db *gorm.DB) *TenancyGormRepository {
	return &TenancyGormRepository{db: db}
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *TenancyGormRepository) CreateUser(
	ctx context.Context,
	user *models.User,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(user).Error
}

func (r *TenancyGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Preload("Landlord").
		Preload("Contacts").
		First(&user, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound(fmt.Sprintf("User with id %d not found", id))
		}
		return nil, err
	}
	return &user, nil
}

func (r *TenancyGormRepository) GetUserByUsername(
	ctx context.Context,
	username string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Preload("Landlord").
		Preload("Contacts").
		Where("username = ?", username).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound(fmt.Sprintf("User %s not found", username))
		}
		return nil, err
	}
	return &user, nil
}

func (r *TenancyGormRepository) ListUsers(
	ctx context.Context,
	scope policy.UserScope,
	filter filters.UserFilter,
) ([]models.User, error) {

	q := r.db.WithContext(ctx).Model(&models.User{}).Select("users.*")

	// Scope first, caller filters on top.
	if !scope.All {
		if scope.LandlordID != 0 {
			q = q.Where(
				"users.id = ? OR users.landlord_id = ?",
				scope.SelfID, scope.LandlordID,
			)
		} else {
			q = q.Where("users.id = ?", scope.SelfID)
		}
	}

	q = filter.Apply(q)

	var users []models.User
	if err := q.
		Preload("Landlord").
		Preload("Contacts").
		Order("users.id ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *TenancyGormRepository) UpdateUser(
	ctx context.Context,
	user *models.User,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(user).Error
}

// DeleteUser removes the user together with their contacts and token
// in one transaction.
func (r *TenancyGormRepository) DeleteUser(
	ctx context.Context,
	user *models.User,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner_id = ?", user.ID).
			Delete(&models.Contact{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).
			Delete(&models.AuthToken{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, user.ID).Error
	})
}

func (r *TenancyGormRepository) CountUsers(
	ctx context.Context,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --------------------------------------------------
// Contacts
// --------------------------------------------------

func (r *TenancyGormRepository) CreateContact(
	ctx context.Context,
	contact *models.Contact,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(contact).Error
}

func (r *TenancyGormRepository) GetContactByID(
	ctx context.Context,
	id uint,
) (*models.Contact, error) {

	var contact models.Contact
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		First(&contact, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound(fmt.Sprintf("Contact with id %d not found", id))
		}
		return nil, err
	}
	return &contact, nil
}

func (r *TenancyGormRepository) ListContacts(
	ctx context.Context,
	scope policy.ContactScope,
	filter filters.ContactFilter,
) ([]models.Contact, error) {

	q := r.db.WithContext(ctx).Model(&models.Contact{}).Select("contacts.*")

	if !scope.All {
		if scope.OwnerLandlordID != 0 {
			// Tenant contacts are reached through the owner's landlord
			// link.
			q = q.Joins("JOIN users ON users.id = contacts.owner_id").
				Where(
					"contacts.owner_id = ? OR users.landlord_id = ?",
					scope.OwnerID, scope.OwnerLandlordID,
				)
		} else {
			q = q.Where("contacts.owner_id = ?", scope.OwnerID)
		}
	}

	q = filter.Apply(q)

	var contacts []models.Contact
	if err := q.
		Preload("Owner").
		Order("contacts.id ASC").
		Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *TenancyGormRepository) UpdateContact(
	ctx context.Context,
	contact *models.Contact,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(contact).Error
}

// --------------------------------------------------
// Tokens
// --------------------------------------------------

func (r *TenancyGormRepository) CreateToken(
	ctx context.Context,
	token *models.AuthToken,
) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *TenancyGormRepository) GetUserByTokenKey(
	ctx context.Context,
	key string,
) (*models.User, error) {

	var token models.AuthToken
	if err := r.db.WithContext(ctx).
		Where("key = ?", key).
		First(&token).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrUnauthorized("Invalid token.")
		}
		return nil, err
	}
	return r.GetUserByID(ctx, token.UserID)
}

func (r *TenancyGormRepository) GetTokenForUser(
	ctx context.Context,
	userID uint,
) (*models.AuthToken, error) {

	var token models.AuthToken
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

// Compile-time check
var _ domain.Repository = (*TenancyGormRepository)(nil)
