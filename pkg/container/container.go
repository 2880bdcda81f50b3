package container

import (
	"context"
	"fmt"
	"time"

	"github.com/moha528/quickpress-back/internal/config"
	rediscache "github.com/moha528/quickpress-back/internal/infrastructure/cache"
	"github.com/moha528/quickpress-back/internal/infrastructure/database"
	"github.com/moha528/quickpress-back/internal/soap"
	"github.com/moha528/quickpress-back/pkg/cache"
	"github.com/moha528/quickpress-back/pkg/jwt"
	"github.com/moha528/quickpress-back/pkg/logger"

	"github.com/moha528/quickpress-back/internal/domains/article"
	articlehandler "github.com/moha528/quickpress-back/internal/domains/article/handler"
	articlerepo "github.com/moha528/quickpress-back/internal/domains/article/repository"
	articleservice "github.com/moha528/quickpress-back/internal/domains/article/service"
	"github.com/moha528/quickpress-back/internal/domains/category"
	categoryhandler "github.com/moha528/quickpress-back/internal/domains/category/handler"
	categoryrepo "github.com/moha528/quickpress-back/internal/domains/category/repository"
	categoryservice "github.com/moha528/quickpress-back/internal/domains/category/service"
	"github.com/moha528/quickpress-back/internal/domains/user"
	userhandler "github.com/moha528/quickpress-back/internal/domains/user/handler"
	userrepo "github.com/moha528/quickpress-back/internal/domains/user/repository"
	userservice "github.com/moha528/quickpress-back/internal/domains/user/service"
)

// Container wires every dependency of the application, constructor
// injection throughout. Nothing in here is a package-level singleton.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache
	Tokens *jwt.Manager

	UserService     user.Service
	CategoryService category.Service
	ArticleService  article.Service

	UserHandler     *userhandler.UserHandler
	CategoryHandler *categoryhandler.CategoryHandler
	ArticleHandler  *articlehandler.ArticleHandler
	SoapHandler     *soap.Handler

	redis *rediscache.RedisCache
}

// New builds the dependency graph: config, database (migrated), cache,
// token manager, repositories, services, handlers.
func New(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	c := &Container{Config: cfg}

	c.DB = database.NewPostgresDB(&cfg.Database)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := c.DB.Migrate(ctx); err != nil {
		c.DB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	// Redis is best-effort. When it is unreachable the API still serves,
	// just without the read cache.
	redis := rediscache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redis.Connect(ctx); err != nil {
		logger.Error("redis unavailable, caching disabled", err)
		c.Cache = cache.Nop{}
	} else {
		c.redis = redis
		c.Cache = redis
	}

	c.Tokens = jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)

	userRepository := userrepo.NewPostgresRepository(c.DB.Pool)
	categoryRepository := categoryrepo.NewPostgresRepository(c.DB.Pool)
	articleRepository := articlerepo.NewPostgresRepository(c.DB.Pool)

	c.UserService = userservice.NewUserService(userRepository, c.Tokens)
	c.CategoryService = categoryservice.NewCategoryService(categoryRepository, c.Cache)
	c.ArticleService = articleservice.NewArticleService(articleRepository, categoryRepository, c.Cache)

	c.UserHandler = userhandler.NewUserHandler(c.UserService)
	c.CategoryHandler = categoryhandler.NewCategoryHandler(c.CategoryService)
	c.ArticleHandler = articlehandler.NewArticleHandler(c.ArticleService)

	soapAddress := fmt.Sprintf("http://localhost:%s/soap", cfg.App.Port)
	c.SoapHandler = soap.NewHandler(c.UserService, c.Tokens, soapAddress)

	return c, nil
}

// Cleanup releases every held connection.
func (c *Container) Cleanup() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			logger.Error("close redis", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
