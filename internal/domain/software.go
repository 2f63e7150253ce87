package domain

import (
	"context"
	"time"
)

type Software struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:50;not null" json:"name"`
	Version       string    `gorm:"size:50;not null" json:"version"`
	LicenseExpiry time.Time `gorm:"not null" json:"licenseExpiry"`

	VendorID uint          `gorm:"not null" json:"vendorId"`
	Vendor   Vendor        `gorm:"foreignKey:VendorID;constraint:OnDelete:RESTRICT" json:"vendor"`
	OwnerID  uint          `gorm:"not null" json:"ownerId"`
	Owner    SoftwareOwner `gorm:"foreignKey:OwnerID;constraint:OnDelete:RESTRICT" json:"owner"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Software) TableName() string { return "software" }

type SoftwareRepository interface {
	Create(ctx context.Context, s *Software) error
	// FindByID 带 Vendor/Owner 预加载
	FindByID(ctx context.Context, id uint) (*Software, error)
	List(ctx context.Context) ([]Software, error)
	ListByVendor(ctx context.Context, vendorID uint) ([]Software, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]Software, error)
	Update(ctx context.Context, s *Software) error
	Delete(ctx context.Context, id uint) (DeleteResult, error)
}
