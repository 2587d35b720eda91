package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sunthewhat/quick-cert-api/api"
	certificate_controller "github.com/sunthewhat/quick-cert-api/api/controllers/certificate"
	chatbot_controller "github.com/sunthewhat/quick-cert-api/api/controllers/chatbot"
	static_controller "github.com/sunthewhat/quick-cert-api/api/controllers/static"
	certificatemodel "github.com/sunthewhat/quick-cert-api/api/model/certificateModel"
	"github.com/sunthewhat/quick-cert-api/api/routes"
	"github.com/sunthewhat/quick-cert-api/common/config"
	"github.com/sunthewhat/quick-cert-api/common/gorm"
	"github.com/sunthewhat/quick-cert-api/common/mongo"
	"github.com/sunthewhat/quick-cert-api/common/util"
	"github.com/sunthewhat/quick-cert-api/internal/assistant"
	"github.com/sunthewhat/quick-cert-api/internal/renderer"
	"github.com/sunthewhat/quick-cert-api/type/shared"
	"github.com/sunthewhat/quick-cert-api/web"
)

func main() {
	isPushDB := flag.Bool("PushDB", false, "Run database migration")
	isRunAfter := flag.Bool("Run", false, "Run after db process")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	if *isPushDB {
		if cfg.Postgres == nil || *cfg.Postgres == "" {
			slog.Error("PushDB requires a postgres DSN")
			os.Exit(1)
		}
		if err := gorm.Push_db(*cfg.Postgres); err != nil {
			slog.Error("Database migration failed", "error", err)
			os.Exit(1)
		}
		if !*isRunAfter {
			return
		}
	}

	if err := run(cfg); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *shared.Config) error {
	certRepo, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := os.MkdirAll(*cfg.UploadDir, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	signer := renderer.DisabledSigner()
	if cfg.SigningEnabled != nil && *cfg.SigningEnabled {
		signer, err = renderer.NewCertificateSigner(value(cfg.SigningCertPath), value(cfg.SigningKeyPath))
		if err != nil {
			return fmt.Errorf("failed to load signing certificate: %w", err)
		}
		slog.Info("PDF signing enabled")
	}

	certRenderer := renderer.New(renderer.Options{
		TemplateDir: *cfg.TemplateDir,
		OutputDir:   *cfg.UploadDir,
		VerifyURL:   value(cfg.VerifyURL),
		Signer:      signer,
	})

	certCtrl := certificate_controller.NewCertificateController(certRepo, certRenderer, *cfg.UploadDir)

	if cfg.ArchiveEnabled() {
		archive, err := util.NewObjectArchive(cfg)
		if err != nil {
			return fmt.Errorf("failed to create object archive: %w", err)
		}
		certCtrl.WithArchive(archive)
		slog.Info("Certificate archive enabled", "bucket", *cfg.BucketCertificate)
	}

	if cfg.MailEnabled() {
		mailer, err := util.NewMailer(cfg)
		if err != nil {
			return fmt.Errorf("failed to create mailer: %w", err)
		}
		certCtrl.WithMailer(mailer)
		slog.Info("Certificate mail delivery enabled", "host", *cfg.MailHost)
	}

	if value(cfg.ChatAPIKey) == "" {
		slog.Warn("No chat API key configured, chatbot replies will fall back")
	}
	chat := assistant.NewOpenAIAssistant(*cfg.ChatBaseURL, value(cfg.ChatAPIKey), *cfg.ChatModel, *cfg.ChatTemperature)

	if cfg.UploadMaxAge > 0 {
		sweeper, err := util.NewUploadSweeper(*cfg.UploadDir, cfg.UploadMaxAge, *cfg.SweepSchedule)
		if err != nil {
			return fmt.Errorf("failed to schedule upload sweeper: %w", err)
		}
		sweeper.Start()
		defer sweeper.Stop()
	}

	app := api.NewApp(cfg, routes.Controllers{
		Certificate: certCtrl,
		Chatbot:     chatbot_controller.NewChatbotController(chat),
		Static:      static_controller.NewStaticController(web.Assets),
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	listenErr := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", *cfg.Port)
		listenErr <- app.Listen(*cfg.Port)
	}()

	select {
	case err := <-listenErr:
		return err
	case sig := <-quit:
		slog.Info("Shutting down", "signal", sig.String())
	}

	return app.ShutdownWithTimeout(10 * time.Second)
}

// openStore connects the configured certificate store and returns a cleanup func.
func openStore(cfg *shared.Config) (certificatemodel.ICertificateRepository, func(), error) {
	switch *cfg.Store {
	case "postgres":
		replicas := make([]string, 0, len(cfg.PostgresReplica))
		for _, r := range cfg.PostgresReplica {
			if r != nil && *r != "" {
				replicas = append(replicas, *r)
			}
		}

		db, err := gorm.Open(value(cfg.Postgres), replicas)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return certificatemodel.NewCertificateSQLRepository(db), func() { gorm.Close(db) }, nil

	default:
		client, db, err := mongo.Connect(*cfg.Mongo, *cfg.MongoDatabase)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to mongo: %w", err)
		}

		repo := certificatemodel.NewCertificateRepository(db, *cfg.MongoCollection)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := repo.EnsureIndexes(ctx); err != nil {
			slog.Warn("Failed to ensure certificate indexes", "error", err)
		}
		return repo, func() { mongo.Disconnect(client) }, nil
	}
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
