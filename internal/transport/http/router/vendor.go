package router

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"go-license-manager/internal/domain"
	"go-license-manager/internal/service"
	httpez "go-license-manager/internal/transport/http/ez"
)

func paramID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, httpez.BadRequest("invalid id")
	}
	return uint(id), nil
}

func mountVendorActions(authed *gin.RouterGroup, d Deps) {
	ez := httpez.New(authed)

	type vendorIn struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
		Email string `json:"email"`
	}
	toInput := func(in *vendorIn) service.VendorInput {
		return service.VendorInput{Name: in.Name, Phone: in.Phone, Email: in.Email}
	}

	// GET /vendors
	httpez.RegisterAction[struct{}, []domain.Vendor](ez, d.DB, httpez.Action[struct{}, []domain.Vendor]{
		Method: http.MethodGet,
		Path:   "/vendors",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) ([]domain.Vendor, error) {
			return d.License.ListVendors(c.Request.Context())
		},
	})

	// GET /vendors/:id 厂商详情 + 名下软件
	type vendorDetail struct {
		Vendor   domain.Vendor     `json:"vendor"`
		Software []domain.Software `json:"software"`
	}
	httpez.RegisterAction[struct{}, vendorDetail](ez, d.DB, httpez.Action[struct{}, vendorDetail]{
		Method: http.MethodGet,
		Path:   "/vendors/:id",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (vendorDetail, error) {
			id, err := paramID(c)
			if err != nil {
				return vendorDetail{}, err
			}
			v, sw, err := d.License.GetVendor(c.Request.Context(), id)
			if err != nil {
				return vendorDetail{}, err
			}
			return vendorDetail{Vendor: *v, Software: sw}, nil
		},
	})

	// POST /vendors
	httpez.RegisterAction[vendorIn, domain.Vendor](ez, d.DB, httpez.Action[vendorIn, domain.Vendor]{
		Method:     http.MethodPost,
		Path:       "/vendors",
		Binder:     httpez.BindJSON,
		Auth:       true,
		SuccessMsg: "Vendor added!",
		Handler: func(c *gin.Context, _ *gorm.DB, in *vendorIn) (domain.Vendor, error) {
			v, err := d.License.AddVendor(c.Request.Context(), toInput(in))
			if err != nil {
				return domain.Vendor{}, err
			}
			d.invalidateSoftwareCache(c)
			return *v, nil
		},
	})

	// PUT /vendors/:id
	httpez.RegisterAction[vendorIn, domain.Vendor](ez, d.DB, httpez.Action[vendorIn, domain.Vendor]{
		Method:     http.MethodPut,
		Path:       "/vendors/:id",
		Binder:     httpez.BindJSON,
		Auth:       true,
		SuccessMsg: "Manufacturer updated!",
		Handler: func(c *gin.Context, _ *gorm.DB, in *vendorIn) (domain.Vendor, error) {
			id, err := paramID(c)
			if err != nil {
				return domain.Vendor{}, err
			}
			v, err := d.License.EditVendor(c.Request.Context(), id, toInput(in))
			if err != nil {
				return domain.Vendor{}, err
			}
			d.invalidateSoftwareCache(c)
			return *v, nil
		},
	})

	// DELETE /vendors/:id（具体拒绝文案由 service 按身份给出）
	httpez.RegisterAction[struct{}, gin.H](ez, d.DB, httpez.Action[struct{}, gin.H]{
		Method:     http.MethodDelete,
		Path:       "/vendors/:id",
		Binder:     httpez.BindNone,
		Auth:       true,
		SuccessMsg: "Vendor deleted!",
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (gin.H, error) {
			id, err := paramID(c)
			if err != nil {
				return nil, err
			}
			if err := d.License.DeleteVendor(c.Request.Context(), id, isAdmin(c)); err != nil {
				return nil, err
			}
			d.invalidateSoftwareCache(c)
			return gin.H{"id": id}, nil
		},
	})
}
