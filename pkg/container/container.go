package container

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/hibiken/asynq"

	"ecommerce-backend/internal/config"
	infraCache "ecommerce-backend/internal/infrastructure/cache"
	"ecommerce-backend/internal/infrastructure/database"
	"ecommerce-backend/internal/infrastructure/queue"
	"ecommerce-backend/internal/infrastructure/storage"
	"ecommerce-backend/pkg/cache"
	pkgdb "ecommerce-backend/pkg/database"
	"ecommerce-backend/pkg/jwt"
	"ecommerce-backend/pkg/logger"

	catalogRepo "ecommerce-backend/internal/domains/catalog/repository"
	catalogService "ecommerce-backend/internal/domains/catalog/service"
	promotionHandler "ecommerce-backend/internal/domains/promotion/handler"
	promotionModel "ecommerce-backend/internal/domains/promotion/model"
	promotionRepo "ecommerce-backend/internal/domains/promotion/repository"
	promotionService "ecommerce-backend/internal/domains/promotion/service"
	rankingHandler "ecommerce-backend/internal/domains/ranking/handler"
	rankingRepo "ecommerce-backend/internal/domains/ranking/repository"
	rankingService "ecommerce-backend/internal/domains/ranking/service"
	userHandler "ecommerce-backend/internal/domains/user/handler"
	userRepo "ecommerce-backend/internal/domains/user/repository"
	userService "ecommerce-backend/internal/domains/user/service"
	voucherHandler "ecommerce-backend/internal/domains/voucher/handler"
	voucherRepo "ecommerce-backend/internal/domains/voucher/repository"
	voucherService "ecommerce-backend/internal/domains/voucher/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa toàn bộ dependencies của api và worker.
// Thứ tự khởi tạo: Config -> Infrastructure -> Repositories -> Services -> Handlers
type Container struct {
	// Infrastructure
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       cache.Cache
	JWTManager  *jwt.Manager
	AsynqClient *asynq.Client
	RedisOpt    asynq.RedisClientOpt
	Storage     voucherService.FileStorage

	// Repositories
	UserRepo      userRepo.UserRepository
	RankingRepo   rankingRepo.RankingRepository
	CatalogRepo   catalogRepo.CatalogRepository
	VoucherRepo   voucherRepo.VoucherRepository
	PromotionRepo promotionRepo.PromotionRepository

	// Services
	RankingService   rankingService.ServiceInterface
	UserService      userService.ServiceInterface
	CatalogService   catalogService.ServiceInterface
	VoucherService   voucherService.ServiceInterface
	PromotionService promotionService.ServiceInterface

	// Handlers
	UserHandler      *userHandler.Handler
	RankingHandler   *rankingHandler.Handler
	VoucherHandler   *voucherHandler.Handler
	PromotionHandler *promotionHandler.Handler
}

// ========================================
// CONSTRUCTOR
// ========================================

func NewContainer() (*Container, error) {
	logger.Info("🔧 Initializing DI Container...", nil)
	c := &Container{}

	// STEP 1: CONFIGURATION
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Info("✅ Config loaded", map[string]interface{}{"env": cfg.App.Environment})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// STEP 2: INFRASTRUCTURE
	if err := c.initInfrastructure(ctx); err != nil {
		return nil, err
	}

	// STEP 3: REPOSITORIES
	c.initRepositories()

	// STEP 4: SERVICES
	if err := c.initServices(); err != nil {
		return nil, fmt.Errorf("failed to init services: %w", err)
	}

	// Seed ranking mặc định khi bảng trống
	if err := c.RankingService.EnsureSeed(ctx); err != nil {
		return nil, fmt.Errorf("failed to seed rankings: %w", err)
	}

	// STEP 5: HANDLERS
	c.initHandlers()

	logger.Info("🎉 DI Container initialized successfully", nil)
	return c, nil
}

func (c *Container) initInfrastructure(ctx context.Context) error {
	cfg := c.Config

	// PostgreSQL
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}
	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	// Redis: lỗi không critical, fallback sang in-memory cache
	redisCache := infraCache.NewRedisCache(cfg.Redis)
	if err := redisCache.Ping(ctx); err != nil {
		logger.Warn("⚠️  Redis unavailable, using in-memory cache", map[string]interface{}{"error": err.Error()})
		_ = redisCache.Close()
		c.Cache = cache.NewMemoryCache()
	} else {
		c.Cache = redisCache
		logger.Info("✅ Redis connected", nil)
	}

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Hour,
	)

	// Asynq dùng chung Redis
	c.RedisOpt = asynq.RedisClientOpt{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	c.AsynqClient = asynq.NewClient(c.RedisOpt)

	// MinIO chỉ phục vụ export; lỗi thì export trả lỗi, phần còn lại vẫn chạy
	minioStorage, err := storage.NewMinIOStorage(ctx, cfg.MinIO)
	if err != nil {
		logger.Warn("⚠️  MinIO unavailable, voucher export disabled", map[string]interface{}{"error": err.Error()})
		c.Storage = unavailableStorage{err: err}
	} else {
		c.Storage = minioStorage
		logger.Info("✅ MinIO connected", map[string]interface{}{"bucket": cfg.MinIO.Bucket})
	}
	return nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresRepository(pool)
	c.RankingRepo = rankingRepo.NewPostgresRepository(pool)
	c.CatalogRepo = catalogRepo.NewPostgresRepository(pool)
	c.VoucherRepo = voucherRepo.NewPostgresRepository(pool)
	c.PromotionRepo = promotionRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() error {
	cfg := c.Config.Voucher
	tx := pkgdb.NewPoolTransactor(c.DB.Pool)

	order, err := promotionModel.ParsePriorityOrder(cfg.PromotionPriorityOrder)
	if err != nil {
		return err
	}

	c.RankingService = rankingService.NewRankingService(c.RankingRepo, c.Cache, cfg.RankingCacheTTL)
	c.UserService = userService.NewUserService(c.UserRepo, c.RankingService, c.JWTManager)
	c.CatalogService = catalogService.NewCatalogService(c.CatalogRepo)

	c.VoucherService = voucherService.NewVoucherService(
		c.VoucherRepo,
		tx,
		c.UserService,
		c.RankingService,
		queue.NewDispatcher(c.AsynqClient),
		c.Storage,
		voucherService.Options{
			Location:     cfg.Location(),
			ExportPrefix: cfg.ExportPrefix,
		},
	)

	c.PromotionService = promotionService.NewPromotionService(
		c.PromotionRepo,
		tx,
		c.CatalogService,
		promotionService.Options{
			PriorityOrder: order,
			Location:      cfg.Location(),
		},
	)
	return nil
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewHandler(c.UserService)
	c.RankingHandler = rankingHandler.NewHandler(c.RankingService)
	c.VoucherHandler = voucherHandler.NewHandler(c.VoucherService)
	c.PromotionHandler = promotionHandler.NewHandler(c.PromotionService)
}

// unavailableStorage thay cho MinIO khi không kết nối được lúc khởi động
type unavailableStorage struct {
	err error
}

func (s unavailableStorage) Upload(context.Context, string, io.Reader, int64, string) (string, error) {
	return "", fmt.Errorf("object storage unavailable: %w", s.err)
}

// Cleanup dọn dẹp resources khi shutdown
func (c *Container) Cleanup() {
	logger.Info("🧹 Cleaning up container resources...", nil)

	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			logger.Error("Failed to close asynq client", err)
		}
	}

	if c.DB != nil {
		_ = c.DB.Close()
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Error("Failed to close Redis", err)
		}
	}

	logger.Info("✅ Container cleanup completed", nil)
}
