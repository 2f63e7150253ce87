package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-license-manager/internal/domain"
)

type VendorRepo struct{ db *gorm.DB }

func NewVendorRepo(db *gorm.DB) *VendorRepo { return &VendorRepo{db: db} }

func (r *VendorRepo) Create(ctx context.Context, v *domain.Vendor) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VendorRepo) FindByID(ctx context.Context, id uint) (*domain.Vendor, error) {
	var v domain.Vendor
	err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &v, err
}

func (r *VendorRepo) FindByNameFold(ctx context.Context, name string) (*domain.Vendor, error) {
	var v domain.Vendor
	err := r.db.WithContext(ctx).First(&v, "LOWER(name) = LOWER(?)", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &v, err
}

func (r *VendorRepo) List(ctx context.Context) ([]domain.Vendor, error) {
	var vs []domain.Vendor
	err := r.db.WithContext(ctx).Order("name").Find(&vs).Error
	return vs, err
}

func (r *VendorRepo) Update(ctx context.Context, v *domain.Vendor) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *VendorRepo) Delete(ctx context.Context, id uint) (domain.DeleteResult, error) {
	res := r.db.WithContext(ctx).Delete(&domain.Vendor{}, "id = ?", id)
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
