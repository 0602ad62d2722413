package main

import (
	"os"
	"time"

	"membership-app/config"
	"membership-app/database"
	adminapi "membership-app/internal/api/admin"
	duoapi "membership-app/internal/api/duo"
	forumapi "membership-app/internal/api/forum"
	"membership-app/internal/api/gateapi"
	learnapi "membership-app/internal/api/learn"
	sprintapi "membership-app/internal/api/sprints"
	usersapi "membership-app/internal/api/users"
	routes "membership-app/internal/app/http"
	"membership-app/internal/app/http/middleware"
	"membership-app/internal/domain/duo"
	"membership-app/internal/domain/entitlements"
	"membership-app/internal/domain/gate"
	"membership-app/internal/domain/membership"
	"membership-app/internal/infra/logging"
	"membership-app/internal/infra/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	logger := logging.NewLogger(config.APP_ENV)

	// repositories
	orderStore := store.NewOrderStore(database.DB)
	membershipStore := store.NewMembershipStore(database.DB)
	entitlementStore := store.NewEntitlementStore(database.DB)
	duoPassStore := store.NewDuoPassStore(database.DB)

	// decision core, one instance per process, no globals
	memberships := membership.NewService(orderStore, nil)
	entitlementSvc := entitlements.NewService(entitlementStore)
	engine := gate.NewEngine(memberships, gate.DefaultPolicies())
	resolver := duo.NewResolver(duoPassStore)

	r := gin.Default()
	r.Use(middleware.RequestLogger(logger))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{os.Getenv("CORS_ORIGIN")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, routes.Handlers{
		Memberships: memberships,
		Users:       usersapi.NewHandler(memberships, membershipStore, entitlementSvc, duoPassStore),
		Learn:       learnapi.NewHandler(engine),
		Forum:       forumapi.NewHandler(engine),
		Sprints:     sprintapi.NewHandler(engine),
		Duo:         duoapi.NewHandler(engine, resolver),
		Gate:        gateapi.NewHandler(engine),
		Admin:       adminapi.NewHandler(orderStore, membershipStore),
	})

	r.Run(":" + config.PORT)
}
