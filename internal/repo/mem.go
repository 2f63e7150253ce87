package repo

import (
	"context"
	"strings"
	"sync"

	"go-license-manager/internal/domain"
)

// MemStore 纯内存实现，语义与 gorm 实现对齐：
// 外键被引用时删除返回 DeleteBlocked，名称/邮箱查重不区分大小写。
// 测试和本地演示用，不做持久化。
type MemStore struct {
	mu       sync.Mutex
	seq      uint
	users    []domain.User
	vendors  []domain.Vendor
	owners   []domain.SoftwareOwner
	software []domain.Software
}

func NewMemStore() *MemStore { return &MemStore{} }

func (m *MemStore) Users() domain.UserRepository     { return memUsers{m} }
func (m *MemStore) Vendors() domain.VendorRepository { return memVendors{m} }
func (m *MemStore) Owners() domain.OwnerRepository   { return memOwners{m} }
func (m *MemStore) Software() domain.SoftwareRepository { return memSoftware{m} }

// Transaction 内存实现不支持回滚，直接执行
func (m *MemStore) Transaction(_ context.Context, fn func(domain.Store) error) error {
	return fn(m)
}

func (m *MemStore) nextID() uint { m.seq++; return m.seq }

/* ---------- users ---------- */

type memUsers struct{ s *MemStore }

func (r memUsers) Create(_ context.Context, u *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u.ID = r.s.nextID()
	r.s.users = append(r.s.users, *u)
	return nil
}

func (r memUsers) FindByID(_ context.Context, id uint) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.ID == id {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email { // 区分大小写
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memUsers) Update(_ context.Context, u *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.users {
		if r.s.users[i].ID == u.ID {
			r.s.users[i] = *u
			return nil
		}
	}
	return nil
}

func (r memUsers) FindLocked(_ context.Context) ([]domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.User
	for _, u := range r.s.users {
		if u.Locked {
			out = append(out, u)
		}
	}
	return out, nil
}

/* ---------- vendors ---------- */

type memVendors struct{ s *MemStore }

func (r memVendors) Create(_ context.Context, v *domain.Vendor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v.ID = r.s.nextID()
	r.s.vendors = append(r.s.vendors, *v)
	return nil
}

func (r memVendors) FindByID(_ context.Context, id uint) (*domain.Vendor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, v := range r.s.vendors {
		if v.ID == id {
			cp := v
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memVendors) FindByNameFold(_ context.Context, name string) (*domain.Vendor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, v := range r.s.vendors {
		if strings.EqualFold(v.Name, name) {
			cp := v
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memVendors) List(_ context.Context) ([]domain.Vendor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]domain.Vendor(nil), r.s.vendors...), nil
}

func (r memVendors) Update(_ context.Context, v *domain.Vendor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.vendors {
		if r.s.vendors[i].ID == v.ID {
			r.s.vendors[i] = *v
			return nil
		}
	}
	return nil
}

func (r memVendors) Delete(_ context.Context, id uint) (domain.DeleteResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, sw := range r.s.software {
		if sw.VendorID == id {
			return domain.DeleteBlocked, nil
		}
	}
	for i := range r.s.vendors {
		if r.s.vendors[i].ID == id {
			r.s.vendors = append(r.s.vendors[:i], r.s.vendors[i+1:]...)
			return domain.DeleteDone, nil
		}
	}
	return domain.DeleteMissing, nil
}

/* ---------- owners ---------- */

type memOwners struct{ s *MemStore }

func (r memOwners) Create(_ context.Context, o *domain.SoftwareOwner) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o.ID = r.s.nextID()
	r.s.owners = append(r.s.owners, *o)
	return nil
}

func (r memOwners) FindByID(_ context.Context, id uint) (*domain.SoftwareOwner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range r.s.owners {
		if o.ID == id {
			cp := o
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memOwners) FindByEmailFold(_ context.Context, email string) (*domain.SoftwareOwner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range r.s.owners {
		if strings.EqualFold(o.Email, email) {
			cp := o
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memOwners) List(_ context.Context) ([]domain.SoftwareOwner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]domain.SoftwareOwner(nil), r.s.owners...), nil
}

func (r memOwners) Update(_ context.Context, o *domain.SoftwareOwner) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.owners {
		if r.s.owners[i].ID == o.ID {
			r.s.owners[i] = *o
			return nil
		}
	}
	return nil
}

func (r memOwners) Delete(_ context.Context, id uint) (domain.DeleteResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, sw := range r.s.software {
		if sw.OwnerID == id {
			return domain.DeleteBlocked, nil
		}
	}
	for i := range r.s.owners {
		if r.s.owners[i].ID == id {
			r.s.owners = append(r.s.owners[:i], r.s.owners[i+1:]...)
			return domain.DeleteDone, nil
		}
	}
	return domain.DeleteMissing, nil
}

/* ---------- software ---------- */

type memSoftware struct{ s *MemStore }

func (r memSoftware) Create(_ context.Context, sw *domain.Software) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sw.ID = r.s.nextID()
	r.s.software = append(r.s.software, *sw)
	return nil
}

// attach 模拟 Preload，把关联对象填上
func (r memSoftware) attach(sw domain.Software) domain.Software {
	for _, v := range r.s.vendors {
		if v.ID == sw.VendorID {
			sw.Vendor = v
			break
		}
	}
	for _, o := range r.s.owners {
		if o.ID == sw.OwnerID {
			sw.Owner = o
			break
		}
	}
	return sw
}

func (r memSoftware) FindByID(_ context.Context, id uint) (*domain.Software, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, sw := range r.s.software {
		if sw.ID == id {
			cp := r.attach(sw)
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memSoftware) List(_ context.Context) ([]domain.Software, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]domain.Software, 0, len(r.s.software))
	for _, sw := range r.s.software {
		out = append(out, r.attach(sw))
	}
	return out, nil
}

func (r memSoftware) ListByVendor(_ context.Context, vendorID uint) ([]domain.Software, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Software
	for _, sw := range r.s.software {
		if sw.VendorID == vendorID {
			out = append(out, r.attach(sw))
		}
	}
	return out, nil
}

func (r memSoftware) ListByOwner(_ context.Context, ownerID uint) ([]domain.Software, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Software
	for _, sw := range r.s.software {
		if sw.OwnerID == ownerID {
			out = append(out, r.attach(sw))
		}
	}
	return out, nil
}

func (r memSoftware) Update(_ context.Context, sw *domain.Software) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.software {
		if r.s.software[i].ID == sw.ID {
			r.s.software[i] = domain.Software{
				ID:            sw.ID,
				Name:          sw.Name,
				Version:       sw.Version,
				LicenseExpiry: sw.LicenseExpiry,
				VendorID:      sw.VendorID,
				OwnerID:       sw.OwnerID,
			}
			return nil
		}
	}
	return nil
}

func (r memSoftware) Delete(_ context.Context, id uint) (domain.DeleteResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.software {
		if r.s.software[i].ID == id {
			r.s.software = append(r.s.software[:i], r.s.software[i+1:]...)
			return domain.DeleteDone, nil
		}
	}
	return domain.DeleteMissing, nil
}
