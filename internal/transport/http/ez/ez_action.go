package ez

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"go-license-manager/internal/service"
	resp "go-license-manager/internal/transport/http/response"
)

type EZ struct{ g *gin.RouterGroup }

func New(g *gin.RouterGroup) EZ { return EZ{g: g} }

// 绑定方式
type Binder string

const (
	BindJSON  Binder = "json"  // 从 JSON 绑定
	BindQuery Binder = "query" // 从 URL ?a=b 绑定
	BindNone  Binder = "none"  // 不绑定，自己从 c.Param 取
)

// AErr 统一错误对象（配合 resp.Error(int, msg)）
type AErr struct {
	Code int
	Msg  string
	Err  error
}

func (e *AErr) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "action error"
}

func BadRequest(msg string) error   { return &AErr{Code: resp.CodeBadRequest, Msg: msg} }
func Unauthorized(msg string) error { return &AErr{Code: resp.CodeUnauthorized, Msg: msg} }
func Forbidden(msg string) error    { return &AErr{Code: resp.CodeForbidden, Msg: msg} }
func NotFound(msg string) error     { return &AErr{Code: resp.CodeNotFound, Msg: msg} }
func Internal(msg string, err error) error {
	return &AErr{Code: resp.CodeServerError, Msg: msg, Err: err}
}

// 业务层错误 → 响应码；文案原样透传
func codeOfKind(k service.Kind) int {
	switch k {
	case service.KindValidation, service.KindDuplicate, service.KindBlocked:
		return resp.CodeBadRequest
	case service.KindUnauthorized, service.KindLocked:
		return resp.CodeUnauthorized
	case service.KindPermission:
		return resp.CodeForbidden
	case service.KindNotFound:
		return resp.CodeNotFound
	}
	return resp.CodeServerError
}

// Action 动作定义：I 入参，O 出参
type Action[I any, O any] struct {
	Method     string // "GET" | "POST" | "PUT" | "DELETE"
	Path       string
	Binder     Binder
	Auth       bool     // 是否要求登录（检查 userId）
	Roles      []string // 限定角色（可选）
	UseTx      bool     // 是否包事务（gorm.Transaction）
	SuccessMsg string   // 成功时的 msg，空则 "OK"
	Handler    func(c *gin.Context, db *gorm.DB, in *I) (O, error)
}

func RegisterAction[I any, O any](e EZ, db *gorm.DB, a Action[I, O]) {
	h := func(c *gin.Context) {
		// 1) 鉴权/角色
		if a.Auth {
			uid := c.GetString("userId")
			if uid == "" {
				c.JSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "unauthorized"))
				return
			}
			if len(a.Roles) > 0 {
				role := c.GetString("role")
				ok := false
				for _, r := range a.Roles {
					if role == r {
						ok = true
						break
					}
				}
				if !ok {
					c.JSON(http.StatusOK, resp.Error(resp.CodeForbidden, "forbidden"))
					return
				}
			}
		}

		// 2) 绑定入参
		var in I
		var bindErr error
		switch a.Binder {
		case BindJSON:
			bindErr = c.ShouldBindJSON(&in)
		case BindQuery:
			bindErr = c.ShouldBindQuery(&in)
		default: // BindNone
		}
		if bindErr != nil {
			c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, bindErr.Error()))
			return
		}

		// 3) 执行（可选事务；走 service 的动作可以不带 db）
		run := func(tx *gorm.DB) (O, error) { return a.Handler(c, tx, &in) }
		var out O
		var err error
		switch {
		case a.UseTx && db != nil:
			err = db.WithContext(c).Transaction(func(tx *gorm.DB) error {
				o, e := run(tx)
				out = o
				return e
			})
		case db != nil:
			out, err = run(db.WithContext(c))
		default:
			out, err = run(nil)
		}

		// 4) 统一错误映射
		if err != nil {
			var se *service.Error
			if errors.As(err, &se) {
				c.JSON(http.StatusOK, resp.Error(codeOfKind(se.Kind), se.Msg))
				return
			}
			var ae *AErr
			if errors.As(err, &ae) {
				c.JSON(http.StatusOK, resp.Error(ae.Code, ae.Error()))
				return
			}
			c.JSON(http.StatusOK, resp.Error(resp.CodeServerError, err.Error()))
			return
		}
		msg := a.SuccessMsg
		if msg == "" {
			msg = resp.CodeMsgMap[resp.CodeOK]
		}
		c.JSON(http.StatusOK, resp.New(resp.CodeOK, msg, out))
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		e.g.GET(a.Path, h)
	case http.MethodPut:
		e.g.PUT(a.Path, h)
	case http.MethodDelete:
		e.g.DELETE(a.Path, h)
	default: // 默认 POST
		e.g.POST(a.Path, h)
	}
}
