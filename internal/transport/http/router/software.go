package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"go-license-manager/internal/core/cache"
	"go-license-manager/internal/domain"
	"go-license-manager/internal/service"
	httpez "go-license-manager/internal/transport/http/ez"
)

func mountSoftwareActions(authed *gin.RouterGroup, d Deps) {
	ez := httpez.New(authed)

	type softwareIn struct {
		Name          string `json:"name"`
		Version       string `json:"version"`
		LicenseExpiry string `json:"licenseExpiry"` // YYYY-MM-DD
		VendorID      uint   `json:"vendorId"`
		OwnerID       uint   `json:"ownerId"`
	}
	toInput := func(in *softwareIn) service.SoftwareInput {
		return service.SoftwareInput{
			Name:          in.Name,
			Version:       in.Version,
			LicenseExpiry: in.LicenseExpiry,
			VendorID:      in.VendorID,
			OwnerID:       in.OwnerID,
		}
	}

	// GET /software 清单页：带今天和一个月后的到期预警线
	type softwareList struct {
		Today      string            `json:"today"`
		WarnBefore string            `json:"warnBefore"`
		Items      []domain.Software `json:"items"`
	}
	httpez.RegisterAction[struct{}, softwareList](ez, d.DB, httpez.Action[struct{}, softwareList]{
		Method: http.MethodGet,
		Path:   "/software",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (softwareList, error) {
			ctx := c.Request.Context()
			var items []domain.Software
			if d.Cache != nil {
				got, err := cache.GetOrLoadJSON[[]domain.Software](d.Cache, ctx, softwareListCacheKey, 30*time.Second,
					func(ctx context.Context) (*[]domain.Software, error) {
						ss, err := d.License.ListSoftware(ctx)
						if err != nil {
							return nil, err
						}
						return &ss, nil
					})
				if err != nil {
					return softwareList{}, err
				}
				if got != nil {
					items = *got
				}
			} else {
				var err error
				items, err = d.License.ListSoftware(ctx)
				if err != nil {
					return softwareList{}, err
				}
			}
			today := time.Now()
			return softwareList{
				Today:      today.Format("2006-01-02"),
				WarnBefore: today.AddDate(0, 1, 0).Format("2006-01-02"),
				Items:      items,
			}, nil
		},
	})

	// GET /software/:id
	httpez.RegisterAction[struct{}, domain.Software](ez, d.DB, httpez.Action[struct{}, domain.Software]{
		Method: http.MethodGet,
		Path:   "/software/:id",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (domain.Software, error) {
			id, err := paramID(c)
			if err != nil {
				return domain.Software{}, err
			}
			sw, err := d.License.GetSoftware(c.Request.Context(), id)
			if err != nil {
				return domain.Software{}, err
			}
			return *sw, nil
		},
	})

	// POST /software
	httpez.RegisterAction[softwareIn, domain.Software](ez, d.DB, httpez.Action[softwareIn, domain.Software]{
		Method:     http.MethodPost,
		Path:       "/software",
		Binder:     httpez.BindJSON,
		Auth:       true,
		SuccessMsg: "Software added!",
		Handler: func(c *gin.Context, _ *gorm.DB, in *softwareIn) (domain.Software, error) {
			sw, err := d.License.AddSoftware(c.Request.Context(), toInput(in))
			if err != nil {
				return domain.Software{}, err
			}
			d.invalidateSoftwareCache(c)
			return *sw, nil
		},
	})

	// PUT /software/:id
	httpez.RegisterAction[softwareIn, domain.Software](ez, d.DB, httpez.Action[softwareIn, domain.Software]{
		Method:     http.MethodPut,
		Path:       "/software/:id",
		Binder:     httpez.BindJSON,
		Auth:       true,
		SuccessMsg: "Software updated!",
		Handler: func(c *gin.Context, _ *gorm.DB, in *softwareIn) (domain.Software, error) {
			id, err := paramID(c)
			if err != nil {
				return domain.Software{}, err
			}
			sw, err := d.License.EditSoftware(c.Request.Context(), id, toInput(in))
			if err != nil {
				return domain.Software{}, err
			}
			d.invalidateSoftwareCache(c)
			return *sw, nil
		},
	})

	// DELETE /software/:id
	httpez.RegisterAction[struct{}, gin.H](ez, d.DB, httpez.Action[struct{}, gin.H]{
		Method:     http.MethodDelete,
		Path:       "/software/:id",
		Binder:     httpez.BindNone,
		Auth:       true,
		SuccessMsg: "Software deleted!",
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (gin.H, error) {
			id, err := paramID(c)
			if err != nil {
				return nil, err
			}
			if err := d.License.DeleteSoftware(c.Request.Context(), id, isAdmin(c)); err != nil {
				return nil, err
			}
			d.invalidateSoftwareCache(c)
			return gin.H{"id": id}, nil
		},
	})
}
