package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-license-manager/internal/core/auth"
	"go-license-manager/internal/core/cache"
	"go-license-manager/internal/service"
	mdw "go-license-manager/internal/transport/http/middleware"
)

type Deps struct {
	Log     *zap.Logger
	DB      *gorm.DB
	JWTer   *auth.JWTer
	Auth    *service.AuthService
	License *service.LicenseService
	Cache   *cache.Cache // 可为 nil，未配置 redis 时直连库
}

func NewAPIEngine(d Deps) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(d.Log, true),
		mdw.Metrics(),
		mdw.AccessLog(d.Log),
		cors.Default(),
	)

	// 健康检查 + 指标
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	// 公共：登录/注册
	mountAuthActions(api, d)

	// 鉴权分组：身份只在这里解析一次，后续 handler 从上下文取
	authed := api.Group("")
	authed.Use(mdw.AuthJWT(d.JWTer, ""))

	mountMeAction(authed, d)
	mountVendorActions(authed, d)
	mountOwnerActions(authed, d)
	mountSoftwareActions(authed, d)

	return r
}

// isAdmin 中间件写进上下文的角色；删除类操作据此给出具体拒绝文案
func isAdmin(c *gin.Context) bool { return c.GetString("role") == "admin" }

const softwareListCacheKey = "software:list"

// 任何写操作后软件清单缓存作废
func (d Deps) invalidateSoftwareCache(c *gin.Context) {
	if d.Cache != nil {
		_ = d.Cache.Invalidate(c.Request.Context(), softwareListCacheKey)
	}
}
