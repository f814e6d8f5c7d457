// adminctl seeds the first admin account and mints tokens for existing
// accounts. Registration over HTTP requires an admin token, so the very
// first admin has to be created out of band.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"portfolio-api/internal/core/auth"
	"portfolio-api/internal/core/config"
	"portfolio-api/internal/core/database"
	"portfolio-api/internal/core/logger"
	"portfolio-api/internal/domain"
	"portfolio-api/internal/repo"
	"portfolio-api/internal/repo/filestore"
	"portfolio-api/internal/service"
)

func main() {
	var (
		username = flag.String("username", "", "username for the new admin account")
		email    = flag.String("email", "", "email for the new admin account")
		password = flag.String("password", "", "password for the new admin account")
		mint     = flag.String("mint", "", "mint a token for an existing username/email instead")
	)
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	users := mustOpenUsers(cfg, log)
	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.TTLHours) * time.Hour,
	}

	ctx := context.Background()

	if *mint != "" {
		u, err := users.FindByIdentifier(ctx, *mint)
		if err != nil {
			log.Fatal("account not found", zap.String("identifier", *mint), zap.Error(err))
		}
		token, err := jwter.Issue(u.Username, u.Role)
		if err != nil {
			log.Fatal("issue token", zap.Error(err))
		}
		fmt.Println(token)
		return
	}

	if *username == "" || *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	svc := service.NewUserService(users, jwter)
	u, err := svc.Register(ctx, service.RegisterInput{
		Username: *username,
		Email:    *email,
		Password: *password,
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		log.Fatal("register admin", zap.Error(err))
	}
	log.Info("admin account created", zap.String("username", u.Username), zap.String("email", u.Email))
}

func mustOpenUsers(cfg *config.Config, l *zap.Logger) domain.UserRepository {
	if cfg.Store.Driver == "file" {
		fs, err := filestore.New(cfg.Store.Path)
		if err != nil {
			l.Fatal("file store open", zap.Error(err))
		}
		return fs.Users()
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
	if err := db.AutoMigrate(&domain.User{}); err != nil {
		l.Fatal("automigrate failed", zap.Error(err))
	}
	return repo.NewUserRepo(db)
}
