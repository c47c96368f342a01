package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/barberrock/booking-api/internal/models"
	"github.com/barberrock/booking-api/internal/usecase/account"
)

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

func (r *AccountGormRepository) WithinTx(
	ctx context.Context,
	fn func(tx account.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&AccountGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *AccountGormRepository) UserExists(
	ctx context.Context,
	username, email string,
) (bool, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("LOWER(username) = LOWER(?) OR LOWER(email) = LOWER(?)", username, email).
		Count(&count).Error

	return count > 0, err
}

func (r *AccountGormRepository) CreateUser(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *AccountGormRepository) FindUserByLogin(
	ctx context.Context,
	login string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("LOWER(username) = LOWER(?) OR LOWER(email) = LOWER(?)", login, login).
		Order("id").
		First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (r *AccountGormRepository) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (r *AccountGormRepository) ListUsers(ctx context.Context, role string) ([]models.User, error) {
	var users []models.User

	q := r.db.WithContext(ctx).Order("id")
	if role != "" {
		q = q.Where("role = ?", role)
	}

	err := q.Find(&users).Error
	return users, err
}

// --------------------------------------------------
// Profiles
// --------------------------------------------------

func (r *AccountGormRepository) CreateClientProfile(ctx context.Context, p *models.ClientProfile) error {
	return r.db.WithContext(ctx).Omit("User").Create(p).Error
}

func (r *AccountGormRepository) CreateBarberProfile(ctx context.Context, p *models.BarberProfile) error {
	return r.db.WithContext(ctx).Omit("User").Create(p).Error
}

func (r *AccountGormRepository) GetClientProfileByUser(
	ctx context.Context,
	userID uint,
) (*models.ClientProfile, error) {

	var p models.ClientProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&p).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *AccountGormRepository) GetBarberByUser(
	ctx context.Context,
	userID uint,
) (*models.BarberProfile, error) {

	var p models.BarberProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&p).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

var _ account.Repository = (*AccountGormRepository)(nil)
