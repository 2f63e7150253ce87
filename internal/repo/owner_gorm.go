package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-license-manager/internal/domain"
)

type OwnerRepo struct{ db *gorm.DB }

func NewOwnerRepo(db *gorm.DB) *OwnerRepo { return &OwnerRepo{db: db} }

func (r *OwnerRepo) Create(ctx context.Context, o *domain.SoftwareOwner) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OwnerRepo) FindByID(ctx context.Context, id uint) (*domain.SoftwareOwner, error) {
	var o domain.SoftwareOwner
	err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &o, err
}

func (r *OwnerRepo) FindByEmailFold(ctx context.Context, email string) (*domain.SoftwareOwner, error) {
	var o domain.SoftwareOwner
	err := r.db.WithContext(ctx).First(&o, "LOWER(email) = LOWER(?)", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &o, err
}

func (r *OwnerRepo) List(ctx context.Context) ([]domain.SoftwareOwner, error) {
	var os []domain.SoftwareOwner
	err := r.db.WithContext(ctx).Order("last_name, first_name").Find(&os).Error
	return os, err
}

func (r *OwnerRepo) Update(ctx context.Context, o *domain.SoftwareOwner) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *OwnerRepo) Delete(ctx context.Context, id uint) (domain.DeleteResult, error) {
	res := r.db.WithContext(ctx).Delete(&domain.SoftwareOwner{}, "id = ?", id)
	if isFKViolation(res.Error) {
		return domain.DeleteBlocked, nil
	}
	if res.Error != nil {
		return domain.DeleteMissing, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.DeleteMissing, nil
	}
	return domain.DeleteDone, nil
}
