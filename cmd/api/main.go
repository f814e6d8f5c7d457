package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"portfolio-api/internal/core/auth"
	"portfolio-api/internal/core/cache"
	"portfolio-api/internal/core/config"
	"portfolio-api/internal/core/database"
	"portfolio-api/internal/core/logger"
	"portfolio-api/internal/core/server"
	"portfolio-api/internal/domain"
	"portfolio-api/internal/mail"
	"portfolio-api/internal/repo"
	"portfolio-api/internal/repo/filestore"
	"portfolio-api/internal/service"
	"portfolio-api/internal/transport/http/router"
	"portfolio-api/internal/upload"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := newLogger(cfg)
	defer cleanup()

	projects, users := mustOpenStore(cfg, log)

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.TTLHours) * time.Hour,
	}
	if len(jwter.Secret) == 0 {
		log.Fatal("jwt secret is not configured")
	}

	intake := mustBuildIntake(cfg, log)

	projectSvc := service.NewProjectService(projects, intake)
	if cfg.Redis.Addr != "" {
		c := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		projectSvc = projectSvc.WithCache(c, time.Duration(cfg.Redis.ListTTLSec)*time.Second)
		log.Info("project list cache enabled", zap.String("addr", cfg.Redis.Addr))
	}
	userSvc := service.NewUserService(users, jwter)
	contactSvc := service.NewContactService(mail.NewSMTP(
		cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Username, cfg.Mail.Password, cfg.Mail.To,
	))

	r := router.New(router.Deps{
		Log:       log,
		JWT:       jwter,
		Projects:  projectSvc,
		Users:     userSvc,
		Contact:   contactSvc,
		PublicDir: cfg.Upload.PublicDir,
	})

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	log.Info("api starting", zap.String("addr", addr), zap.String("store", cfg.Store.Driver))
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api start FAILED", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("api stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, func()) {
	if cfg.Log.File == "" {
		return logger.New(cfg.Log.Level, cfg.Log.JSON)
	}
	return logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, logger.FileRotate{
		Enable:     true,
		Filename:   cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	})
}

func mustOpenStore(cfg *config.Config, l *zap.Logger) (domain.ProjectRepository, domain.UserRepository) {
	if cfg.Store.Driver == "file" {
		fs, err := filestore.New(cfg.Store.Path)
		if err != nil {
			l.Fatal("file store open", zap.Error(err))
		}
		l.Info("file store ready", zap.String("path", cfg.Store.Path))
		return fs.Projects(), fs.Users()
	}

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.Store.Driver,
		DSN:                cfg.Store.DSN,
		MaxOpenConns:       cfg.Store.MaxOpenConns,
		MaxIdleConns:       cfg.Store.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.Store.ConnMaxLifetimeMin,
		LogLevel:           cfg.Store.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	if cfg.Store.AutoMigrate {
		if err := db.AutoMigrate(&domain.Project{}, &domain.User{}); err != nil {
			l.Fatal("automigrate failed", zap.Error(err))
		}
		l.Info("automigrate done")
	}
	l.Info("database connected", zap.String("driver", cfg.Store.Driver))
	return repo.NewProjectRepo(db), repo.NewUserRepo(db)
}

func mustBuildIntake(cfg *config.Config, l *zap.Logger) upload.Intake {
	maxBytes := int64(cfg.Upload.MaxSizeMB) << 20
	if cfg.Upload.Strategy == "remote" {
		r, err := upload.NewRemote(cfg.Upload.ServiceURL, cfg.Upload.ServiceToken, maxBytes)
		if err != nil {
			l.Fatal("image service config", zap.Error(err))
		}
		return r
	}
	return upload.NewDisk(cfg.Upload.PublicDir, maxBytes)
}
