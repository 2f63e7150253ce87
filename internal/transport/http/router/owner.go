package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"go-license-manager/internal/domain"
	"go-license-manager/internal/service"
	httpez "go-license-manager/internal/transport/http/ez"
)

func mountOwnerActions(authed *gin.RouterGroup, d Deps) {
	ez := httpez.New(authed)

	type ownerIn struct {
		Email          string `json:"email"`
		FirstName      string `json:"firstName"`
		LastName       string `json:"lastName"`
		PhoneExtension string `json:"phoneExtension"`
	}
	toInput := func(in *ownerIn) service.OwnerInput {
		return service.OwnerInput{
			Email:          in.Email,
			FirstName:      in.FirstName,
			LastName:       in.LastName,
			PhoneExtension: in.PhoneExtension,
		}
	}

	// GET /owners
	httpez.RegisterAction[struct{}, []domain.SoftwareOwner](ez, d.DB, httpez.Action[struct{}, []domain.SoftwareOwner]{
		Method: http.MethodGet,
		Path:   "/owners",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) ([]domain.SoftwareOwner, error) {
			return d.License.ListOwners(c.Request.Context())
		},
	})

	// GET /owners/:id 负责人详情 + 名下软件
	type ownerDetail struct {
		Owner    domain.SoftwareOwner `json:"owner"`
		Software []domain.Software    `json:"software"`
	}
	httpez.RegisterAction[struct{}, ownerDetail](ez, d.DB, httpez.Action[struct{}, ownerDetail]{
		Method: http.MethodGet,
		Path:   "/owners/:id",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (ownerDetail, error) {
			id, err := paramID(c)
			if err != nil {
				return ownerDetail{}, err
			}
			o, sw, err := d.License.GetOwner(c.Request.Context(), id)
			if err != nil {
				return ownerDetail{}, err
			}
			return ownerDetail{Owner: *o, Software: sw}, nil
		},
	})

	// POST /owners
	httpez.RegisterAction[ownerIn, domain.SoftwareOwner](ez, d.DB, httpez.Action[ownerIn, domain.SoftwareOwner]{
		Method:     http.MethodPost,
		Path:       "/owners",
		Binder:     httpez.BindJSON,
		Auth:       true,
		SuccessMsg: "Owner added!",
		Handler: func(c *gin.Context, _ *gorm.DB, in *ownerIn) (domain.SoftwareOwner, error) {
			o, err := d.License.AddOwner(c.Request.Context(), toInput(in))
			if err != nil {
				return domain.SoftwareOwner{}, err
			}
			return *o, nil
		},
	})

	// PUT /owners/:id
	httpez.RegisterAction[ownerIn, domain.SoftwareOwner](ez, d.DB, httpez.Action[ownerIn, domain.SoftwareOwner]{
		Method:     http.MethodPut,
		Path:       "/owners/:id",
		Binder:     httpez.BindJSON,
		Auth:       true,
		SuccessMsg: "Owner updated!",
		Handler: func(c *gin.Context, _ *gorm.DB, in *ownerIn) (domain.SoftwareOwner, error) {
			id, err := paramID(c)
			if err != nil {
				return domain.SoftwareOwner{}, err
			}
			o, err := d.License.EditOwner(c.Request.Context(), id, toInput(in))
			if err != nil {
				return domain.SoftwareOwner{}, err
			}
			d.invalidateSoftwareCache(c)
			return *o, nil
		},
	})

	// DELETE /owners/:id
	httpez.RegisterAction[struct{}, gin.H](ez, d.DB, httpez.Action[struct{}, gin.H]{
		Method:     http.MethodDelete,
		Path:       "/owners/:id",
		Binder:     httpez.BindNone,
		Auth:       true,
		SuccessMsg: "Owner deleted!",
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (gin.H, error) {
			id, err := paramID(c)
			if err != nil {
				return nil, err
			}
			if err := d.License.DeleteOwner(c.Request.Context(), id, isAdmin(c)); err != nil {
				return nil, err
			}
			return gin.H{"id": id}, nil
		},
	})
}
