package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/petalperfect/shop_service/config"
	"github.com/petalperfect/shop_service/infra/queue"
	"github.com/petalperfect/shop_service/internal/api/rest/handlers"
	"github.com/petalperfect/shop_service/internal/api/rest/middleware"
	"github.com/petalperfect/shop_service/internal/domain"
	"github.com/petalperfect/shop_service/internal/helper"
	"github.com/petalperfect/shop_service/internal/interfaces"
	"github.com/petalperfect/shop_service/internal/repository"
	"github.com/petalperfect/shop_service/internal/services"
	"github.com/petalperfect/shop_service/pkg/cloudinary"
	"github.com/petalperfect/shop_service/pkg/imageutil"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config) {
	app := fiber.New()

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowHeaders:     "Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: cfg.AllowOrigins != "*",
	}))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	// ---------- MIGRATION (guarded by advisory lock) ----------
	const migrateLockID int64 = 20260831

	if err := db.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
		log.Fatalf("migration lock error: %v", err)
	}
	defer func() {
		_ = db.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
	}()

	if err := db.AutoMigrate(
		&domain.Account{},
		&domain.Order{},
		&domain.CartItem{},
		&domain.WishlistItem{},
		&domain.Payment{},
		&domain.Product{},
		&domain.Review{},
		&domain.UserLocation{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)

	var uploader interfaces.Uploader
	if cfg.CloudinaryUrl != "" {
		cld, err := cloudinary.New()
		if err != nil {
			log.Fatalf("cloudinary init error: %v", err)
		}
		uploader = cloudinary.NewCloudinaryUploader(cld)
	} else {
		log.Println("CLOUDINARY_URL not set - avatar uploads disabled")
	}

	authHelper := helper.SetupAuth(cfg.AccessSecret)

	// ---------- Repositories ----------
	accountRepo := repository.NewAccountRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	cartRepo := repository.NewCartRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	productRepo := repository.NewProductRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	locationRepo := repository.NewLocationRepository(db)

	// ---------- Services ----------
	accountSvc := services.NewAccountService(
		accountRepo,
		orderRepo,
		cartRepo,
		wishlistRepo,
		authHelper,
		kafkaProducer,
		uploader,
		imageutil.NormalizeAvatar,
	)
	shopSvc := services.NewShopService(
		cartRepo,
		orderRepo,
		wishlistRepo,
		paymentRepo,
		productRepo,
		reviewRepo,
		locationRepo,
	)

	// ---------- Auth gate ----------
	// One route set behind one boundary config: REQUIRE_AUTH selects the
	// Basic/Bearer gate, ALLOW_ORIGINS selects the CORS policy.
	guard := middleware.Passthrough()
	if cfg.RequireAuth {
		guard = middleware.AuthMiddleware(authHelper, accountSvc)
	}

	// ---------- Handlers ----------
	accountHandler := handlers.NewAccountHandler(accountSvc)
	accountHandler.SetupRoutes(app, guard)
	shopHandler := handlers.NewShopHandler(shopSvc)
	shopHandler.SetupRoutes(app, guard)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Listen ----------
	addr := cfg.ServerPort
	log.Println("listening on", addr)
	log.Fatal(app.Listen(addr))
}
