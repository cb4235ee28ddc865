package app

import (
	"database/sql"

	"go-tutorcenter/internal/auth"
	"go-tutorcenter/internal/class"
	"go-tutorcenter/internal/config"
	"go-tutorcenter/internal/messaging/kafka"
	"go-tutorcenter/internal/raterule"
	"go-tutorcenter/internal/rbac"
	"go-tutorcenter/internal/rbac/infra"
	"go-tutorcenter/internal/salarycalc"
	"go-tutorcenter/internal/shared/counter"
	"go-tutorcenter/internal/teacher"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	rbacRepo := rbac.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	teacherRepo := teacher.NewRepository(gormDB)
	classRepo := class.NewRepository(gormDB)
	rateRuleRepo := raterule.NewRepository(gormDB)
	salaryCalcRepo := salarycalc.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(cfg.RBACModelPath)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)

	// --- Services ---
	authService := auth.NewService(authRepo, rbacService, cfg.JWTSecret, logger)
	teacherService := teacher.NewService(db, teacherRepo, counterRepo, rdb, logger)
	classService := class.NewService(db, classRepo, logger)
	rateRuleService := raterule.NewService(db, rateRuleRepo, rdb, logger)
	salaryCalcService := salarycalc.NewServiceWithOutbox(db, salaryCalcRepo, counterRepo, outboxRepo, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cfg.IsProduction())
	teacherHandler := teacher.NewHandler(teacherService, logger)
	classHandler := class.NewHandler(classService)
	rateRuleHandler := raterule.NewHandler(rateRuleService)
	salaryCalcHandler := salarycalc.NewHandlerWithRedis(salaryCalcService, rdb)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, rbacService)
		teacher.RegisterRoutes(api, teacherHandler, rbacService, logger)
		class.RegisterRoutes(api, classHandler, rbacService)
		raterule.RegisterRoutes(api, rateRuleHandler, rbacService)
		salarycalc.RegisterRoutes(api, salaryCalcHandler, rbacService, rdb)
		rbac.RegisterRoutes(api, rbacHandler)
	}

	return nil
}
