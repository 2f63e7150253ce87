package domain

import (
	"context"
	"time"
)

type SoftwareOwner struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Email          string `gorm:"uniqueIndex;size:191;not null" json:"email"`
	FirstName      string `gorm:"size:50;not null" json:"firstName"`
	LastName       string `gorm:"size:50;not null" json:"lastName"`
	PhoneExtension string `gorm:"size:4;not null" json:"phoneExtension"`

	Software []Software `gorm:"foreignKey:OwnerID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (SoftwareOwner) TableName() string { return "software_owners" }

type OwnerRepository interface {
	Create(ctx context.Context, o *SoftwareOwner) error
	FindByID(ctx context.Context, id uint) (*SoftwareOwner, error)
	// FindByEmailFold 邮箱查重，不区分大小写
	FindByEmailFold(ctx context.Context, email string) (*SoftwareOwner, error)
	List(ctx context.Context) ([]SoftwareOwner, error)
	Update(ctx context.Context, o *SoftwareOwner) error
	Delete(ctx context.Context, id uint) (DeleteResult, error)
}
