package router

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"go-license-manager/internal/domain"
	httpez "go-license-manager/internal/transport/http/ez"
)

type userOut struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Admin     bool   `json:"admin"`
}

func toUserOut(u *domain.User) userOut {
	return userOut{ID: u.ID, Email: u.Email, FirstName: u.FirstName, LastName: u.LastName, Admin: u.Admin}
}

func mountAuthActions(api *gin.RouterGroup, d Deps) {
	ezPublic := httpez.New(api)

	// POST /auth/login
	type loginIn struct {
		Email    string `json:"email"    binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	type loginOut struct {
		Token             string  `json:"token"`
		LockedOut         bool    `json:"lockedOut"`
		AttemptsRemaining int     `json:"attemptsRemaining"`
		User              userOut `json:"user"`
	}
	httpez.RegisterAction[loginIn, loginOut](ezPublic, d.DB, httpez.Action[loginIn, loginOut]{
		Method:     http.MethodPost,
		Path:       "/auth/login",
		Binder:     httpez.BindJSON,
		SuccessMsg: "Welcome to the License Management System!",
		Handler: func(c *gin.Context, _ *gorm.DB, in *loginIn) (loginOut, error) {
			res, err := d.Auth.Login(c.Request.Context(), in.Email, in.Password)
			if err != nil {
				return loginOut{}, err
			}
			return loginOut{
				Token:             res.Token,
				LockedOut:         res.LockedOut,
				AttemptsRemaining: res.AttemptsRemaining,
				User:              toUserOut(res.User),
			}, nil
		},
	})

	// POST /auth/register
	type registerIn struct {
		Email           string `json:"email"           binding:"required"`
		FirstName       string `json:"firstName"       binding:"required"`
		LastName        string `json:"lastName"        binding:"required"`
		Password        string `json:"password"        binding:"required"`
		ConfirmPassword string `json:"confirmPassword" binding:"required"`
	}
	type registerOut struct {
		Token string  `json:"token"`
		User  userOut `json:"user"`
	}
	httpez.RegisterAction[registerIn, registerOut](ezPublic, d.DB, httpez.Action[registerIn, registerOut]{
		Method:     http.MethodPost,
		Path:       "/auth/register",
		Binder:     httpez.BindJSON,
		SuccessMsg: "Account created!",
		Handler: func(c *gin.Context, _ *gorm.DB, in *registerIn) (registerOut, error) {
			res, err := d.Auth.Register(c.Request.Context(),
				in.Email, in.FirstName, in.LastName, in.Password, in.ConfirmPassword)
			if err != nil {
				return registerOut{}, err
			}
			return registerOut{Token: res.Token, User: toUserOut(res.User)}, nil
		},
	})
}

func mountMeAction(authed *gin.RouterGroup, d Deps) {
	ezAuth := httpez.New(authed)

	// GET /me
	httpez.RegisterAction[struct{}, userOut](ezAuth, d.DB, httpez.Action[struct{}, userOut]{
		Method: http.MethodGet,
		Path:   "/me",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (userOut, error) {
			id, err := strconv.ParseUint(c.GetString("userId"), 10, 64)
			if err != nil {
				return userOut{}, httpez.Unauthorized("unauthorized")
			}
			u, err := d.Auth.CurrentUser(c.Request.Context(), uint(id))
			if err != nil {
				return userOut{}, err
			}
			return toUserOut(u), nil
		},
	})
}
