package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"library-manager/core/config"
	"library-manager/core/database"
	"library-manager/core/engine"
	"library-manager/core/loader"
	"library-manager/core/logger"
	"library-manager/core/middleware/auth"
	"library-manager/core/middleware/rayid"
	"library-manager/core/storage"

	"library-manager/feature/archive"
	"library-manager/feature/catalog"
	"library-manager/feature/circulation"
	"library-manager/feature/integrity"

	catalogmodels "library-manager/feature/catalog/models"
	circulationmodels "library-manager/feature/circulation/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "library-manager/docs/swagger"
)

// @title Library Manager API
// @version 1.0
// @description API for browsing the book catalog and managing circulation.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the library manager server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (Required)
		// The catalog mirror and the issue ledger live here; without
		// them nothing can be served.
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Database connection failed", zap.Error(err))
		}
		if err := db.AutoMigrate(&catalogmodels.CatalogBook{}, &circulationmodels.Loan{}); err != nil {
			logg.Fatal("Database migration failed", zap.Error(err))
		}

		// 4. Initialize Engine Client (Required)
		client, err := engine.NewClient(cfg.Engine)
		if err != nil {
			logg.Fatal("Failed to create engine client", zap.Error(err))
		}

		// 5. Initialize Storage (Optional)
		// Backups are a convenience; a missing object store only
		// disables the archive feature.
		var store storage.Client
		if s, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Optional storage connection failed, archive disabled", zap.Error(err))
		} else {
			store = s
		}

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 7. Initialize Feature Loader
		mgr := loader.NewManager()

		catalogStore := catalog.NewStore(db)
		ledger := circulation.NewLedger(db)

		// Register Features
		mgr.Register(catalog.NewFeature(client, catalogStore, logg))
		mgr.Register(circulation.NewFeature(client, catalogStore, ledger, logg))
		mgr.Register(integrity.NewFeature(db, logg))
		mgr.Register(archive.NewFeature(store, cfg.Storage.Bucket, catalogStore, ledger, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 8. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 9. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
