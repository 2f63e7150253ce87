package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"go-license-manager/internal/domain"
	"go-license-manager/internal/validate"
)

// LicenseService 串起校验引擎和仓储：先查重、再按固定顺序跑规则、
// 第一条失败就放弃写入并把文案原样抛回。
type LicenseService struct {
	store domain.Store
	log   *zap.Logger
}

func NewLicenseService(store domain.Store, log *zap.Logger) *LicenseService {
	return &LicenseService{store: store, log: log}
}

type VendorInput struct {
	Name  string
	Phone string
	Email string
}

type OwnerInput struct {
	Email          string
	FirstName      string
	LastName       string
	PhoneExtension string
}

type SoftwareInput struct {
	Name          string
	Version       string
	LicenseExpiry string // YYYY-MM-DD
	VendorID      uint
	OwnerID       uint
}

/* ---------- Vendor ---------- */

func (s *LicenseService) AddVendor(ctx context.Context, in VendorInput) (*domain.Vendor, error) {
	existing, err := s.store.Vendors().FindByNameFold(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, Duplicate("Vendor already exists.")
	}
	if err := validateVendor(in); err != nil {
		return nil, err
	}
	v := &domain.Vendor{Name: in.Name, Phone: in.Phone, Email: in.Email}
	if err := s.store.Vendors().Create(ctx, v); err != nil {
		return nil, err
	}
	s.log.Info("vendor added", zap.String("name", v.Name))
	return v, nil
}

func (s *LicenseService) EditVendor(ctx context.Context, id uint, in VendorInput) (*domain.Vendor, error) {
	v, err := s.store.Vendors().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, NotFound("Vendor not found.")
	}
	if err := validateVendor(in); err != nil {
		return nil, err
	}
	v.Name, v.Phone, v.Email = in.Name, in.Phone, in.Email
	if err := s.store.Vendors().Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *LicenseService) DeleteVendor(ctx context.Context, id uint, isAdmin bool) error {
	if !isAdmin {
		return Permission("You do not have permission to delete manufacturers.")
	}
	res, err := s.store.Vendors().Delete(ctx, id)
	if err != nil {
		return err
	}
	switch res {
	case domain.DeleteBlocked:
		return Blocked("Vendor cannot be deleted because it is attached to existing software.")
	case domain.DeleteMissing:
		return NotFound("Vendor not found.")
	}
	s.log.Info("vendor deleted", zap.Uint("id", id))
	return nil
}

func (s *LicenseService) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	return s.store.Vendors().List(ctx)
}

// GetVendor 厂商详情页：厂商本体加上它名下的软件
func (s *LicenseService) GetVendor(ctx context.Context, id uint) (*domain.Vendor, []domain.Software, error) {
	v, err := s.store.Vendors().FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if v == nil {
		return nil, nil, NotFound("Vendor not found.")
	}
	sw, err := s.store.Software().ListByVendor(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return v, sw, nil
}

func validateVendor(in VendorInput) error {
	if err := validate.Entry(in.Name); err != nil {
		return Validation(err.Error())
	}
	if err := validate.PhoneNumber(in.Phone); err != nil {
		return Validation(err.Error())
	}
	if err := validate.Email(in.Email); err != nil {
		return Validation(err.Error())
	}
	return nil
}

/* ---------- Owner ---------- */

func (s *LicenseService) AddOwner(ctx context.Context, in OwnerInput) (*domain.SoftwareOwner, error) {
	existing, err := s.store.Owners().FindByEmailFold(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, Duplicate("Software owner already exists.")
	}
	if err := validateOwner(in); err != nil {
		return nil, err
	}
	o := &domain.SoftwareOwner{
		Email:          in.Email,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		PhoneExtension: in.PhoneExtension,
	}
	if err := s.store.Owners().Create(ctx, o); err != nil {
		return nil, err
	}
	s.log.Info("owner added", zap.String("email", o.Email))
	return o, nil
}

func (s *LicenseService) EditOwner(ctx context.Context, id uint, in OwnerInput) (*domain.SoftwareOwner, error) {
	o, err := s.store.Owners().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, NotFound("Owner not found.")
	}
	if err := validateOwner(in); err != nil {
		return nil, err
	}
	o.Email, o.FirstName, o.LastName, o.PhoneExtension = in.Email, in.FirstName, in.LastName, in.PhoneExtension
	if err := s.store.Owners().Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *LicenseService) DeleteOwner(ctx context.Context, id uint, isAdmin bool) error {
	if !isAdmin {
		return Permission("You do not have permission to delete owners.")
	}
	res, err := s.store.Owners().Delete(ctx, id)
	if err != nil {
		return err
	}
	switch res {
	case domain.DeleteBlocked:
		return Blocked("Owner cannot be deleted as they own existing software.")
	case domain.DeleteMissing:
		return NotFound("Owner not found.")
	}
	s.log.Info("owner deleted", zap.Uint("id", id))
	return nil
}

func (s *LicenseService) ListOwners(ctx context.Context) ([]domain.SoftwareOwner, error) {
	return s.store.Owners().List(ctx)
}

func (s *LicenseService) GetOwner(ctx context.Context, id uint) (*domain.SoftwareOwner, []domain.Software, error) {
	o, err := s.store.Owners().FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if o == nil {
		return nil, nil, NotFound("Owner not found.")
	}
	sw, err := s.store.Software().ListByOwner(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return o, sw, nil
}

func validateOwner(in OwnerInput) error {
	if err := validate.PersonName(in.FirstName, in.LastName); err != nil {
		return Validation(err.Error())
	}
	if err := validate.Email(in.Email); err != nil {
		return Validation(err.Error())
	}
	if err := validate.PhoneExt(in.PhoneExtension); err != nil {
		return Validation(err.Error())
	}
	return nil
}

/* ---------- Software ---------- */

func (s *LicenseService) AddSoftware(ctx context.Context, in SoftwareInput) (*domain.Software, error) {
	expiry, err := validateSoftware(in)
	if err != nil {
		return nil, err
	}
	// 外键齐全才写入
	v, err := s.store.Vendors().FindByID(ctx, in.VendorID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, NotFound("Vendor not found.")
	}
	o, err := s.store.Owners().FindByID(ctx, in.OwnerID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, NotFound("Owner not found.")
	}
	sw := &domain.Software{
		Name:          in.Name,
		Version:       in.Version,
		LicenseExpiry: expiry,
		VendorID:      in.VendorID,
		OwnerID:       in.OwnerID,
	}
	if err := s.store.Software().Create(ctx, sw); err != nil {
		return nil, err
	}
	s.log.Info("software added", zap.String("name", sw.Name), zap.String("version", sw.Version))
	return sw, nil
}

func (s *LicenseService) EditSoftware(ctx context.Context, id uint, in SoftwareInput) (*domain.Software, error) {
	sw, err := s.store.Software().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sw == nil {
		return nil, NotFound("Software not found.")
	}
	expiry, err := validateSoftware(in)
	if err != nil {
		return nil, err
	}
	sw.Name, sw.Version, sw.LicenseExpiry = in.Name, in.Version, expiry
	sw.VendorID, sw.OwnerID = in.VendorID, in.OwnerID
	if err := s.store.Software().Update(ctx, sw); err != nil {
		return nil, err
	}
	return sw, nil
}

func (s *LicenseService) DeleteSoftware(ctx context.Context, id uint, isAdmin bool) error {
	if !isAdmin {
		return Permission("You do not have permission to delete software.")
	}
	res, err := s.store.Software().Delete(ctx, id)
	if err != nil {
		return err
	}
	if res == domain.DeleteMissing {
		return NotFound("Software not found.")
	}
	s.log.Info("software deleted", zap.Uint("id", id))
	return nil
}

func (s *LicenseService) ListSoftware(ctx context.Context) ([]domain.Software, error) {
	return s.store.Software().List(ctx)
}

func (s *LicenseService) GetSoftware(ctx context.Context, id uint) (*domain.Software, error) {
	sw, err := s.store.Software().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sw == nil {
		return nil, NotFound("Software not found.")
	}
	return sw, nil
}

func validateSoftware(in SoftwareInput) (time.Time, error) {
	if err := validate.Entry(in.Name); err != nil {
		return time.Time{}, Validation(err.Error())
	}
	if err := validate.Entry(in.Version); err != nil {
		return time.Time{}, Validation(err.Error())
	}
	if in.LicenseExpiry == "" {
		return time.Time{}, Validation("Please enter a license expiry date.")
	}
	if in.VendorID == 0 {
		return time.Time{}, Validation("Please select a vendor.")
	}
	if in.OwnerID == 0 {
		return time.Time{}, Validation("Please select an owner.")
	}
	expiry, err := time.Parse("2006-01-02", in.LicenseExpiry)
	if err != nil {
		return time.Time{}, Validation("License expiry date must be in YYYY-MM-DD format.")
	}
	return expiry, nil
}
