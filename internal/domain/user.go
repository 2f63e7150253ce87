package domain

import (
	"context"
	"time"
)

type User struct {
	ID                  uint   `gorm:"primaryKey" json:"id"`
	Email               string `gorm:"uniqueIndex;size:191;not null" json:"email"`
	FirstName           string `gorm:"size:50;not null" json:"firstName"`
	LastName            string `gorm:"size:50;not null" json:"lastName"`
	PasswordHash        string `gorm:"size:191;not null" json:"-"`
	Admin               bool   `gorm:"not null;default:false" json:"admin"`
	FailedLoginAttempts int    `gorm:"not null;default:0" json:"-"`
	Locked              bool   `gorm:"not null;default:false" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	// FindByEmail 精确匹配（邮箱按原样存储、区分大小写）
	FindByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, u *User) error
	// FindLocked 返回当前所有被锁定的账户
	FindLocked(ctx context.Context) ([]User, error)
}
