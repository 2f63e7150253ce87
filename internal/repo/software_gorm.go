package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-license-manager/internal/domain"
)

type SoftwareRepo struct{ db *gorm.DB }

func NewSoftwareRepo(db *gorm.DB) *SoftwareRepo { return &SoftwareRepo{db: db} }

func (r *SoftwareRepo) Create(ctx context.Context, s *domain.Software) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SoftwareRepo) FindByID(ctx context.Context, id uint) (*domain.Software, error) {
	var s domain.Software
	err := r.db.WithContext(ctx).
		Preload("Vendor").Preload("Owner").
		First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &s, err
}

func (r *SoftwareRepo) List(ctx context.Context) ([]domain.Software, error) {
	var ss []domain.Software
	err := r.db.WithContext(ctx).
		Preload("Vendor").Preload("Owner").
		Order("license_expiry").Find(&ss).Error
	return ss, err
}

func (r *SoftwareRepo) ListByVendor(ctx context.Context, vendorID uint) ([]domain.Software, error) {
	var ss []domain.Software
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("vendor_id = ?", vendorID).Order("license_expiry").Find(&ss).Error
	return ss, err
}

func (r *SoftwareRepo) ListByOwner(ctx context.Context, ownerID uint) ([]domain.Software, error) {
	var ss []domain.Software
	err := r.db.WithContext(ctx).
		Preload("Vendor").
		Where("owner_id = ?", ownerID).Order("license_expiry").Find(&ss).Error
	return ss, err
}

func (r *SoftwareRepo) Update(ctx context.Context, s *domain.Software) error {
	// Save 会级联写关联对象，这里只更新软件本行
	return r.db.WithContext(ctx).Model(&domain.Software{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{
			"name":           s.Name,
			"version":        s.Version,
			"license_expiry": s.LicenseExpiry,
			"vendor_id":      s.VendorID,
			"owner_id":       s.OwnerID,
		}).Error
}

func (r *SoftwareRepo) Delete(ctx context.Context, id uint) (domain.DeleteResult, error) {
	res := r.db.WithContext(ctx).Delete(&domain.Software{}, "id = ?", id)
	if res.Error != nil {
		return domain.DeleteMissing, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.DeleteMissing, nil
	}
	return domain.DeleteDone, nil
}
