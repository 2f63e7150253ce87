package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-license-manager/internal/repo"
	"go-license-manager/internal/service"
)

func newLicenseService(t *testing.T) (*service.LicenseService, *repo.MemStore) {
	t.Helper()
	store := repo.NewMemStore()
	return service.NewLicenseService(store, zap.NewNop()), store
}

func mathworksInput() service.VendorInput {
	return service.VendorInput{Name: "Mathworks", Phone: "09876827994", Email: "sales@mathworks.com"}
}

func powerInput() service.OwnerInput {
	return service.OwnerInput{
		Email:          "john.power@surrey.ac.uk",
		FirstName:      "John",
		LastName:       "Power",
		PhoneExtension: "1234",
	}
}

// 完整走一遍：厂商 → 负责人 → 软件，各一条记录
func TestAddSoftwareEndToEnd(t *testing.T) {
	svc, _ := newLicenseService(t)
	ctx := context.Background()

	v, err := svc.AddVendor(ctx, mathworksInput())
	require.NoError(t, err)
	o, err := svc.AddOwner(ctx, powerInput())
	require.NoError(t, err)

	sw, err := svc.AddSoftware(ctx, service.SoftwareInput{
		Name:          "MATLAB",
		Version:       "R2020b",
		LicenseExpiry: "2024-12-31",
		VendorID:      v.ID,
		OwnerID:       o.ID,
	})
	require.NoError(t, err)

	vendors, _ := svc.ListVendors(ctx)
	owners, _ := svc.ListOwners(ctx)
	software, _ := svc.ListSoftware(ctx)
	assert.Len(t, vendors, 1)
	assert.Len(t, owners, 1)
	require.Len(t, software, 1)

	got, err := svc.GetSoftware(ctx, sw.ID)
	require.NoError(t, err)
	assert.Equal(t, "MATLAB", got.Name)
	assert.Equal(t, "R2020b", got.Version)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), got.LicenseExpiry)
	assert.Equal(t, "Mathworks", got.Vendor.Name)
	assert.Equal(t, "John", got.Owner.FirstName)
}

func TestAddVendorRejectsShortPhone(t *testing.T) {
	svc, _ := newLicenseService(t)
	ctx := context.Background()

	in := mathworksInput()
	in.Phone = "098768"
	_, err := svc.AddVendor(ctx, in)
	require.Error(t, err)
	assert.EqualError(t, err, "Phone number must be 11 digits.")

	vendors, _ := svc.ListVendors(ctx)
	assert.Empty(t, vendors)
}

func TestAddVendorDuplicateIsCaseInsensitive(t *testing.T) {
	svc, _ := newLicenseService(t)
	ctx := context.Background()

	_, err := svc.AddVendor(ctx, mathworksInput())
	require.NoError(t, err)

	in := mathworksInput()
	in.Name = "MATHWORKS"
	_, err = svc.AddVendor(ctx, in)
	require.Error(t, err)
	assert.EqualError(t, err, "Vendor already exists.")
	var se *service.Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, service.KindDuplicate, se.Kind)
}

func TestEditVendor(t *testing.T) {
	svc, _ := newLicenseService(t)
	ctx := context.Background()

	v, err := svc.AddVendor(ctx, mathworksInput())
	require.NoError(t, err)

	in := mathworksInput()
	in.Phone = "01483686868"
	got, err := svc.EditVendor(ctx, v.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "01483686868", got.Phone)

	_, err = svc.EditVendor(ctx, 9999, in)
	require.Error(t, err)
	var se *service.Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, service.KindNotFound, se.Kind)
}

func TestDeleteVendorRequiresAdmin(t *testing.T) {
	svc, _ := newLicenseService(t)
	ctx := context.Background()

	v, err := svc.AddVendor(ctx, mathworksInput())
	require.NoError(t, err)

	err = svc.DeleteVendor(ctx, v.ID, false)
	require.Error(t, err)
	assert.EqualError(t, err, "You do not have permission to delete manufacturers.")

	// 记录还在
	vendors, _ := svc.ListVendors(ctx)
	assert.Len(t, vendors, 1)
}

func TestDeleteVendorBlockedByAttachedSoftware(t *testing.T) {
	svc, _ := newLicenseService(t)
	ctx := context.Background()

	v, _ := svc.AddVendor(ctx, mathworksInput())
	o, _ := svc.AddOwner(ctx, powerInput())
	sw, err := svc.AddSoftware(ctx, service.SoftwareInput{
		Name: "MATLAB", Version: "R2020b", LicenseExpiry: "2024-12-31",
		VendorID: v.ID, OwnerID: o.ID,
	})
	require.NoError(t, err)

	err = svc.DeleteVendor(ctx, v.ID, true)
	require.Error(t, err)
	assert.EqualError(t, err, "Vendor cannot be deleted because it is attached to existing software.")

	// 先删软件再删厂商
	require.NoError(t, svc.DeleteSoftware(ctx, sw.ID, true))
	require.NoError(t, svc.DeleteVendor(ctx, v.ID, true))

	vendors, _ := svc.ListVendors(ctx)
	assert.Empty(t, vendors)
}

func TestDeleteVendorMissing(t *testing.T) {
	svc, _ := newLicenseService(t)

	err := svc.DeleteVendor(context.Background(), 9999, true)
	require.Error(t, err)
	var se *service.Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, service.KindNotFound, se.Kind)
}

func TestAddOwnerValidation(t *testing.T) {
	svc, _ := newLicenseService(t)
	ctx := context.Background()

	in := powerInput()
	in.PhoneExtension = "12"
	_, err := svc.AddOwner(ctx, in)
	assert.EqualError(t, err, "Phone extension must be 4 digits.")

	in = powerInput()
	in.FirstName = "J0hn"
	_, err = svc.AddOwner(ctx, in)
	assert.EqualError(t, err, "Names must only contain letters.")

	owners, _ := svc.ListOwners(ctx)
	assert.Empty(t, owners)
}

func TestAddOwnerDuplicateEmail(t *testing.T) {
	svc, _ := newLicenseService(t)
	ctx := context.Background()

	_, err := svc.AddOwner(ctx, powerInput())
	require.NoError(t, err)

	in := powerInput()
	in.Email = "JOHN.POWER@surrey.ac.uk"
	_, err = svc.AddOwner(ctx, in)
	require.Error(t, err)
	assert.EqualError(t, err, "Software owner already exists.")
}

func TestDeleteOwnerBlockedByOwnedSoftware(t *testing.T) {
	svc, _ := newLicenseService(t)
	ctx := context.Background()

	v, _ := svc.AddVendor(ctx, mathworksInput())
	o, _ := svc.AddOwner(ctx, powerInput())
	_, err := svc.AddSoftware(ctx, service.SoftwareInput{
		Name: "MATLAB", Version: "R2020b", LicenseExpiry: "2024-12-31",
		VendorID: v.ID, OwnerID: o.ID,
	})
	require.NoError(t, err)

	err = svc.DeleteOwner(ctx, o.ID, true)
	require.Error(t, err)
	assert.EqualError(t, err, "Owner cannot be deleted as they own existing software.")

	err = svc.DeleteOwner(ctx, o.ID, false)
	assert.EqualError(t, err, "You do not have permission to delete owners.")
}

func TestGetOwnerListsOwnedSoftware(t *testing.T) {
	svc, _ := newLicenseService(t)
	ctx := context.Background()

	v, _ := svc.AddVendor(ctx, mathworksInput())
	o, _ := svc.AddOwner(ctx, powerInput())
	for _, name := range []string{"MATLAB", "Simulink"} {
		_, err := svc.AddSoftware(ctx, service.SoftwareInput{
			Name: name, Version: "R2020b", LicenseExpiry: "2024-12-31",
			VendorID: v.ID, OwnerID: o.ID,
		})
		require.NoError(t, err)
	}

	got, owned, err := svc.GetOwner(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "Power", got.LastName)
	assert.Len(t, owned, 2)
}

func TestAddSoftwareValidationOrder(t *testing.T) {
	svc, _ := newLicenseService(t)
	ctx := context.Background()

	v, _ := svc.AddVendor(ctx, mathworksInput())
	o, _ := svc.AddOwner(ctx, powerInput())

	cases := []struct {
		name string
		in   service.SoftwareInput
		msg  string
	}{
		{"empty name", service.SoftwareInput{Version: "R2020b", LicenseExpiry: "2024-12-31", VendorID: v.ID, OwnerID: o.ID},
			"Entries must be greater than 1 character and less than 50."},
		{"missing expiry", service.SoftwareInput{Name: "MATLAB", Version: "R2020b", VendorID: v.ID, OwnerID: o.ID},
			"Please enter a license expiry date."},
		{"no vendor", service.SoftwareInput{Name: "MATLAB", Version: "R2020b", LicenseExpiry: "2024-12-31", OwnerID: o.ID},
			"Please select a vendor."},
		{"no owner", service.SoftwareInput{Name: "MATLAB", Version: "R2020b", LicenseExpiry: "2024-12-31", VendorID: v.ID},
			"Please select an owner."},
		{"bad date", service.SoftwareInput{Name: "MATLAB", Version: "R2020b", LicenseExpiry: "31/12/2024", VendorID: v.ID, OwnerID: o.ID},
			"License expiry date must be in YYYY-MM-DD format."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddSoftware(ctx, tc.in)
			require.Error(t, err)
			assert.EqualError(t, err, tc.msg)
		})
	}

	software, _ := svc.ListSoftware(ctx)
	assert.Empty(t, software)
}

func TestAddSoftwareUnknownVendorOrOwner(t *testing.T) {
	svc, _ := newLicenseService(t)
	ctx := context.Background()

	v, _ := svc.AddVendor(ctx, mathworksInput())
	o, _ := svc.AddOwner(ctx, powerInput())

	_, err := svc.AddSoftware(ctx, service.SoftwareInput{
		Name: "MATLAB", Version: "R2020b", LicenseExpiry: "2024-12-31",
		VendorID: 9999, OwnerID: o.ID,
	})
	require.Error(t, err)
	var se *service.Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, service.KindNotFound, se.Kind)

	_, err = svc.AddSoftware(ctx, service.SoftwareInput{
		Name: "MATLAB", Version: "R2020b", LicenseExpiry: "2024-12-31",
		VendorID: v.ID, OwnerID: 9999,
	})
	require.Error(t, err)
	require.ErrorAs(t, err, &se)
	assert.Equal(t, service.KindNotFound, se.Kind)
}

func TestEditSoftware(t *testing.T) {
	svc, _ := newLicenseService(t)
	ctx := context.Background()

	v, _ := svc.AddVendor(ctx, mathworksInput())
	o, _ := svc.AddOwner(ctx, powerInput())
	sw, err := svc.AddSoftware(ctx, service.SoftwareInput{
		Name: "MATLAB", Version: "R2020b", LicenseExpiry: "2024-12-31",
		VendorID: v.ID, OwnerID: o.ID,
	})
	require.NoError(t, err)

	got, err := svc.EditSoftware(ctx, sw.ID, service.SoftwareInput{
		Name: "MATLAB", Version: "R2024a", LicenseExpiry: "2025-06-30",
		VendorID: v.ID, OwnerID: o.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "R2024a", got.Version)
	assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), got.LicenseExpiry)
}

func TestDeleteSoftwareRequiresAdmin(t *testing.T) {
	svc, _ := newLicenseService(t)
	ctx := context.Background()

	v, _ := svc.AddVendor(ctx, mathworksInput())
	o, _ := svc.AddOwner(ctx, powerInput())
	sw, _ := svc.AddSoftware(ctx, service.SoftwareInput{
		Name: "MATLAB", Version: "R2020b", LicenseExpiry: "2024-12-31",
		VendorID: v.ID, OwnerID: o.ID,
	})

	err := svc.DeleteSoftware(ctx, sw.ID, false)
	require.Error(t, err)
	assert.EqualError(t, err, "You do not have permission to delete software.")

	require.NoError(t, svc.DeleteSoftware(ctx, sw.ID, true))
	software, _ := svc.ListSoftware(ctx)
	assert.Empty(t, software)
}
