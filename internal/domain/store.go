package domain

import "context"

// DeleteResult 显式的删除结果，外键被引用不用底层异常表达
type DeleteResult int

const (
	DeleteDone DeleteResult = iota
	DeleteBlocked
	DeleteMissing
)

// Store 聚合各实体仓储；Transaction 内的回调拿到的是绑定在同一事务上的 Store
type Store interface {
	Users() UserRepository
	Vendors() VendorRepository
	Owners() OwnerRepository
	Software() SoftwareRepository

	Transaction(ctx context.Context, fn func(Store) error) error
}
