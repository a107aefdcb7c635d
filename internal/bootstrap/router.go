package bootstrap

import (
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/AmitSalunkhe/jmbm-v2/internal/api/http"
	apimw "github.com/AmitSalunkhe/jmbm-v2/internal/api/http/middleware"
	"github.com/AmitSalunkhe/jmbm-v2/internal/auth/middleware"
	contenthttp "github.com/AmitSalunkhe/jmbm-v2/internal/content/http"
	"github.com/AmitSalunkhe/jmbm-v2/internal/content/repository"
	"github.com/AmitSalunkhe/jmbm-v2/internal/daily"
	dailyhttp "github.com/AmitSalunkhe/jmbm-v2/internal/daily/http"
	favhttp "github.com/AmitSalunkhe/jmbm-v2/internal/favorites/http"
	"github.com/AmitSalunkhe/jmbm-v2/internal/storage"
	"github.com/AmitSalunkhe/jmbm-v2/internal/users"
	usershttp "github.com/AmitSalunkhe/jmbm-v2/internal/users/http"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Debug       bool
	Redis       *redis.Client
	Store       repository.Store
	Repo        *repository.Repository
	AuthClient  *fbauth.Client
	UserRepo    *users.Repo
	Images      *storage.ImageStore
	Daily       *daily.Service
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", "X-Session-ID")
	r.Use(cors.New(cfg))
	r.Use(apimw.RequestID())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Redis)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")

	// Public reads; favorites ride along here because anonymous devices use
	// them too, identified by the session header when no token is present.
	public := api.Group("")
	public.Use(middleware.OptionalAuth(dep.AuthClient))

	// Signed-in surface.
	authed := api.Group("")
	authed.Use(middleware.RequireAuth(dep.AuthClient, dep.UserRepo))

	// Content management.
	admin := api.Group("/admin")
	admin.Use(middleware.RequireAuth(dep.AuthClient, dep.UserRepo))
	admin.Use(middleware.RequireAdmin())

	contentHandler := contenthttp.New(dep.Repo, dep.Images)
	contentHandler.Register(public, admin)

	favHandler := favhttp.New(dep.Store, dep.Redis)
	favHandler.Register(public)

	dailyHandler := dailyhttp.New(dep.Daily, dep.Debug)
	dailyHandler.Register(public, admin)

	usersHandler := usershttp.New(dep.UserRepo)
	usersHandler.Register(authed, admin)

	return r
}
