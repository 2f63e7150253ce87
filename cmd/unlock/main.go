// 批量解锁工具：不走 HTTP，不需要登录态，直接连库。
// 把所有 locked=true 的账户恢复为可登录并清零失败计数，
// 每解锁一个打一行日志，最后输出总数。定时任务或运维手工跑。
package main

import (
	"context"
	"os"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"go-license-manager/internal/core/config"
	"go-license-manager/internal/core/database"
	"go-license-manager/internal/core/logger"
	"go-license-manager/internal/repo"
	"go-license-manager/internal/service"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}

	store := repo.NewStore(db)
	authSvc := service.NewAuthService(store, nil, log) // 不签发 token，jwter 用不上

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := authSvc.UnlockAll(ctx)
	if err != nil {
		log.Fatal("unlock failed", zap.Error(err))
	}
	log.Info("unlock done", zap.Int("unlocked", count))
}
