package router

import (
	"net/http"
	"path/filepath"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"portfolio-api/internal/core/auth"
	"portfolio-api/internal/domain"
	"portfolio-api/internal/service"
	"portfolio-api/internal/transport/http/handler"
	mdw "portfolio-api/internal/transport/http/middleware"
)

type Deps struct {
	Log       *zap.Logger
	JWT       *auth.JWTer
	Projects  *service.ProjectService
	Users     *service.UserService
	Contact   *service.ContactService
	PublicDir string
}

func New(d Deps) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		ginzap.RecoveryWithZap(d.Log, true),
		mdw.Metrics(),
		mdw.AccessLog(d.Log),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.Static("/public/images", filepath.Join(d.PublicDir, "images"))
	r.Static("/public/pdf", filepath.Join(d.PublicDir, "pdf"))

	admin := mdw.RequireRole(d.Log, d.JWT, domain.RoleAdmin)

	ph := handler.NewProjectHandler(d.Projects, d.Log)
	ah := handler.NewAccountHandler(d.Users, d.Log)
	ch := handler.NewContactHandler(d.Contact, d.Log)

	api := r.Group("/api")

	project := api.Group("/project")
	project.GET("", ph.List)
	project.POST("", admin, ph.Create)
	project.PUT("/:id", admin, ph.Update)
	project.DELETE("/:id", admin, ph.Delete)

	api.POST("/pdf", admin, ph.UploadPDF)

	account := api.Group("/account")
	account.POST("/register", admin, ah.Register)
	account.POST("/login", mdw.RateLimitPerIP(1, 10), ah.Login)
	account.GET("/verify", admin, ah.Verify)

	api.POST("/contact", ch.Send)

	return r
}
