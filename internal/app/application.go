package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bizhub-backend/internal/config"
	"bizhub-backend/internal/handlers"
	"bizhub-backend/internal/middleware"
	"bizhub-backend/internal/models"
	"bizhub-backend/internal/repository"
	"bizhub-backend/internal/sections"
	"bizhub-backend/internal/service"
	"bizhub-backend/pkg/cache"
	"bizhub-backend/pkg/logger"
)

// schedulerInterval is how often due scheduled posts are delivered.
const schedulerInterval = time.Minute

type Application struct {
	cfg   *config.Config
	db    *gorm.DB
	cache *cache.Cache

	repositories repositoryContainer
	services     serviceContainer
	handlers     handlerContainer

	rateLimits *middleware.RateLimitManager

	schedulerCancel context.CancelFunc
	schedulerWG     sync.WaitGroup

	router *gin.Engine
	server *http.Server
}

type repositoryContainer struct {
	User       repository.UserRepository
	Company    repository.CompanyRepository
	Page       repository.PageRepository
	Product    repository.ProductRepository
	Service    repository.ServiceRepository
	Customer   repository.CustomerRepository
	Sale       repository.SaleRepository
	Employee   repository.EmployeeRepository
	Task       repository.TaskRepository
	SocialPost repository.SocialPostRepository
}

type serviceContainer struct {
	Auth     *service.AuthService
	Company  *service.CompanyService
	Page     *service.PageService
	Catalog  *service.CatalogService
	Customer *service.CustomerService
	Sale     *service.SaleService
	Employee *service.EmployeeService
	Social   *service.SocialService
	Upload   *service.UploadService
}

type handlerContainer struct {
	Auth     *handlers.AuthHandler
	Company  *handlers.CompanyHandler
	Page     *handlers.PageHandler
	Public   *handlers.PublicHandler
	Catalog  *handlers.CatalogHandler
	Customer *handlers.CustomerHandler
	Sale     *handlers.SaleHandler
	Employee *handlers.EmployeeHandler
	Social   *handlers.SocialHandler
	Upload   *handlers.UploadHandler
}

func New(cfg *config.Config) (*Application, error) {
	app := &Application{cfg: cfg}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.runMigrations(); err != nil {
		return nil, err
	}

	if err := app.createIndexes(); err != nil {
		return nil, err
	}

	if err := app.initCache(); err != nil {
		return nil, err
	}

	app.initRepositories()
	app.initServices()
	app.initHandlers()
	app.initRouter()

	app.server = &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        app.router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	return app, nil
}

func (a *Application) Run() error {
	a.startScheduler()

	logger.Info("Server starting", map[string]interface{}{
		"port":        a.cfg.Port,
		"environment": a.cfg.Environment,
	})

	return a.server.ListenAndServe()
}

func (a *Application) Shutdown(ctx context.Context) error {
	if a.schedulerCancel != nil {
		a.schedulerCancel()
		a.schedulerWG.Wait()
	}

	if a.rateLimits != nil {
		if err := a.rateLimits.Shutdown(); err != nil {
			logger.Error(err, "Failed to stop rate limiter", nil)
		}
	}

	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return err
		}
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			logger.Error(err, "Failed to close cache connection", nil)
		}
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			sqlDB.Close()
		}
	}

	return nil
}

func (a *Application) Router() *gin.Engine {
	return a.router
}

func (a *Application) initDatabase() error {
	logger.Info("Connecting to database", nil)

	db, err := gorm.Open(postgres.Open(a.cfg.DatabaseURL), &gorm.Config{
		Logger: logger.NewGormLogger(),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	a.db = db
	return nil
}

func (a *Application) runMigrations() error {
	if a.db == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	logger.Info("Running database migrations", nil)

	if err := a.db.AutoMigrate(
		&models.Company{},
		&models.User{},
		&models.Page{},
		&models.Product{},
		&models.Service{},
		&models.Customer{},
		&models.SaleOrder{},
		&models.SaleOrderItem{},
		&models.Employee{},
		&models.Task{},
		&models.SocialPost{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("Database migration completed", nil)
	return nil
}

func (a *Application) createIndexes() error {
	if a.db == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	logger.Info("Creating database indexes", nil)

	statements := []string{
		"CREATE INDEX IF NOT EXISTS idx_pages_company ON pages(company_id)",
		"CREATE INDEX IF NOT EXISTS idx_pages_slug_published ON pages(slug) WHERE status = 'published'",
		"CREATE INDEX IF NOT EXISTS idx_pages_content ON pages USING GIN (content)",
		"CREATE INDEX IF NOT EXISTS idx_sale_orders_company_created ON sale_orders(company_id, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_tasks_employee_due ON tasks(employee_id, due_at ASC)",
		"CREATE INDEX IF NOT EXISTS idx_social_posts_scheduled ON social_posts(scheduled_at) WHERE status = 'scheduled'",
	}

	for _, stmt := range statements {
		if err := a.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

func (a *Application) initCache() error {
	c, err := cache.NewCache(a.cfg.RedisURL, a.cfg.EnableRedis && a.cfg.EnableCache)
	if err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}

	a.cache = c
	return nil
}

func (a *Application) initRepositories() {
	a.repositories = repositoryContainer{
		User:       repository.NewUserRepository(a.db),
		Company:    repository.NewCompanyRepository(a.db),
		Page:       repository.NewPageRepository(a.db),
		Product:    repository.NewProductRepository(a.db),
		Service:    repository.NewServiceRepository(a.db),
		Customer:   repository.NewCustomerRepository(a.db),
		Sale:       repository.NewSaleRepository(a.db),
		Employee:   repository.NewEmployeeRepository(a.db),
		Task:       repository.NewTaskRepository(a.db),
		SocialPost: repository.NewSocialPostRepository(a.db),
	}
}

func (a *Application) initServices() {
	catalog := service.NewCatalogService(a.repositories.Product, a.repositories.Service, a.cache)

	a.services = serviceContainer{
		Auth:     service.NewAuthService(a.repositories.User, a.repositories.Company, a.cfg),
		Company:  service.NewCompanyService(a.repositories.Company, a.cache),
		Page:     service.NewPageService(a.repositories.Page, a.cache, sections.NewPageRenderer(nil)),
		Catalog:  catalog,
		Customer: service.NewCustomerService(a.repositories.Customer),
		Sale:     service.NewSaleService(a.repositories.Sale, catalog),
		Employee: service.NewEmployeeService(a.repositories.Employee, a.repositories.Task),
		Social:   service.NewSocialService(a.repositories.SocialPost, service.NewLogPublisher()),
		Upload:   service.NewUploadService(a.cfg),
	}
}

func (a *Application) initHandlers() {
	a.handlers = handlerContainer{
		Auth:     handlers.NewAuthHandler(a.services.Auth),
		Company:  handlers.NewCompanyHandler(a.services.Company),
		Page:     handlers.NewPageHandler(a.services.Page),
		Public:   handlers.NewPublicHandler(a.services.Page, a.services.Company),
		Catalog:  handlers.NewCatalogHandler(a.services.Catalog),
		Customer: handlers.NewCustomerHandler(a.services.Customer),
		Sale:     handlers.NewSaleHandler(a.services.Sale),
		Employee: handlers.NewEmployeeHandler(a.services.Employee),
		Social:   handlers.NewSocialHandler(a.services.Social),
		Upload:   handlers.NewUploadHandler(a.services.Upload),
	}
}

func (a *Application) initRouter() {
	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	a.rateLimits = middleware.NewRateLimitManager(context.Background())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(logger.GinLogger())
	if a.cfg.EnableMetrics {
		router.Use(middleware.MetricsMiddleware())
	}
	router.Use(middleware.RateLimitMiddleware(a.cfg, a.rateLimits))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	if a.cfg.EnableMetrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	router.Static("/uploads", a.cfg.UploadDir)

	router.GET("/site/:slug", a.handlers.Public.Site)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", a.handlers.Auth.Register)
			auth.POST("/login", a.handlers.Auth.Login)
		}

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(a.services.Auth))
		{
			protected.GET("/auth/me", a.handlers.Auth.Me)

			protected.GET("/company", a.handlers.Company.Get)
			protected.PUT("/company", a.handlers.Company.Update)

			protected.GET("/templates", a.handlers.Page.Templates)

			protected.POST("/pages", a.handlers.Page.Create)
			protected.GET("/pages", a.handlers.Page.List)
			protected.GET("/pages/:id", a.handlers.Page.GetByID)
			protected.PUT("/pages/:id", a.handlers.Page.Update)
			protected.DELETE("/pages/:id", a.handlers.Page.Delete)

			protected.POST("/pages/:id/sections", a.handlers.Page.AddSection)
			protected.PUT("/pages/:id/sections/reorder", a.handlers.Page.Reorder)
			protected.DELETE("/pages/:id/sections/:sectionId", a.handlers.Page.DeleteSection)
			protected.PUT("/pages/:id/sections/:sectionId/visibility", a.handlers.Page.ToggleSection)
			protected.PUT("/pages/:id/sections/:sectionId/field", a.handlers.Page.UpdateField)
			protected.PUT("/pages/:id/sections/:sectionId/style", a.handlers.Page.UpdateStyle)
			protected.POST("/pages/:id/save", a.handlers.Page.Save)
			protected.POST("/pages/:id/publish", a.handlers.Page.Publish)
			protected.GET("/pages/:id/preview", a.handlers.Page.Preview)

			protected.GET("/catalog", a.handlers.Catalog.GetCatalog)
			protected.POST("/products", a.handlers.Catalog.CreateProduct)
			protected.PUT("/products/:id", a.handlers.Catalog.UpdateProduct)
			protected.DELETE("/products/:id", a.handlers.Catalog.DeleteProduct)
			protected.POST("/products/:id/stock", a.handlers.Catalog.AdjustStock)
			protected.POST("/services", a.handlers.Catalog.CreateService)
			protected.PUT("/services/:id", a.handlers.Catalog.UpdateService)
			protected.DELETE("/services/:id", a.handlers.Catalog.DeleteService)

			protected.POST("/customers", a.handlers.Customer.Create)
			protected.GET("/customers", a.handlers.Customer.List)
			protected.PUT("/customers/:id", a.handlers.Customer.Update)
			protected.DELETE("/customers/:id", a.handlers.Customer.Delete)

			protected.POST("/sales", a.handlers.Sale.Create)
			protected.GET("/sales", a.handlers.Sale.List)
			protected.GET("/sales/summary", a.handlers.Sale.Summary)
			protected.GET("/sales/:id", a.handlers.Sale.GetByID)
			protected.DELETE("/sales/:id", a.handlers.Sale.Delete)

			protected.POST("/employees", a.handlers.Employee.Create)
			protected.GET("/employees", a.handlers.Employee.List)
			protected.PUT("/employees/:id", a.handlers.Employee.Update)
			protected.DELETE("/employees/:id", a.handlers.Employee.Delete)
			protected.POST("/employees/:id/tasks", a.handlers.Employee.CreateTask)
			protected.GET("/tasks", a.handlers.Employee.ListTasks)
			protected.PUT("/tasks/:id/complete", a.handlers.Employee.CompleteTask)
			protected.DELETE("/tasks/:id", a.handlers.Employee.DeleteTask)

			protected.POST("/social/posts", a.handlers.Social.Compose)
			protected.GET("/social/posts", a.handlers.Social.List)
			protected.POST("/social/posts/:id/schedule", a.handlers.Social.Schedule)
			protected.POST("/social/posts/:id/publish", a.handlers.Social.PublishNow)
			protected.DELETE("/social/posts/:id", a.handlers.Social.Delete)

			protected.POST("/upload", a.handlers.Upload.UploadImage)
		}
	}

	a.router = router
}

// startScheduler delivers due scheduled social posts on a fixed interval
// until shutdown.
func (a *Application) startScheduler() {
	ctx, cancel := context.WithCancel(context.Background())
	a.schedulerCancel = cancel

	a.schedulerWG.Add(1)
	go func() {
		defer a.schedulerWG.Done()

		ticker := time.NewTicker(schedulerInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				delivered, err := a.services.Social.DeliverDue(ctx)
				if err != nil {
					logger.Error(err, "Scheduled delivery sweep failed", nil)
					continue
				}
				if delivered > 0 {
					logger.Info("Scheduled posts delivered", map[string]interface{}{"count": delivered})
				}
			}
		}
	}()
}
