package domain

import (
	"context"
	"time"
)

type Vendor struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"uniqueIndex;size:50;not null" json:"name"`
	Phone string `gorm:"size:11;not null" json:"phone"`
	Email string `gorm:"size:191;not null" json:"email"`

	Software []Software `gorm:"foreignKey:VendorID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Vendor) TableName() string { return "vendors" }

type VendorRepository interface {
	Create(ctx context.Context, v *Vendor) error
	FindByID(ctx context.Context, id uint) (*Vendor, error)
	// FindByNameFold 名称查重，不区分大小写
	FindByNameFold(ctx context.Context, name string) (*Vendor, error)
	List(ctx context.Context) ([]Vendor, error)
	Update(ctx context.Context, v *Vendor) error
	// Delete 被软件引用时返回 DeleteBlocked，不抛底层错误
	Delete(ctx context.Context, id uint) (DeleteResult, error)
}
