package repo

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"go-license-manager/internal/domain"
)

type Store struct{ db *gorm.DB }

func NewStore(db *gorm.DB) *Store { return &Store{db: db} }

func (s *Store) Users() domain.UserRepository       { return &UserRepo{db: s.db} }
func (s *Store) Vendors() domain.VendorRepository   { return &VendorRepo{db: s.db} }
func (s *Store) Owners() domain.OwnerRepository     { return &OwnerRepo{db: s.db} }
func (s *Store) Software() domain.SoftwareRepository { return &SoftwareRepo{db: s.db} }

// Transaction 回调内拿到的 Store 绑定同一个 tx，
// 登录计数的读-改-写必须走这里保证原子性
func (s *Store) Transaction(ctx context.Context, fn func(domain.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

// isFKViolation 不依赖具体驱动的错误类型，按 mysql/postgres 的报错文本判断
func isFKViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "foreign key constraint") ||
		strings.Contains(msg, "violates foreign key")
}
