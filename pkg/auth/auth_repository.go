package auth

import (
	"Inventory-API/entities"
	"context"

	"gorm.io/gorm"
)

type (
	AuthRepository interface {
		Insert(ctx context.Context, userAuth *entities.UserAuth) error
		Delete(ctx context.Context, phoneNumber string) error
		Get(ctx context.Context, phoneNumber string) (*entities.UserAuth, error)
		Exists(ctx context.Context, phoneNumber string) (bool, error)
	}

	authRepository struct {
		db *gorm.DB
	}
)

func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) Insert(ctx context.Context, userAuth *entities.UserAuth) error {
	return r.db.WithContext(ctx).Create(userAuth).Error
}

func (r *authRepository) Delete(ctx context.Context, phoneNumber string) error {
	result := r.db.WithContext(ctx).
		Where("phone_number = ?", phoneNumber).
		Delete(&entities.UserAuth{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *authRepository) Get(ctx context.Context, phoneNumber string) (*entities.UserAuth, error) {
	var userAuth entities.UserAuth
	if err := r.db.WithContext(ctx).
		Where("phone_number = ?", phoneNumber).
		First(&userAuth).Error; err != nil {
		return nil, err
	}
	return &userAuth, nil
}

func (r *authRepository) Exists(ctx context.Context, phoneNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.UserAuth{}).
		Where("phone_number = ?", phoneNumber).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
