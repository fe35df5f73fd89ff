package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hoodbook/internal/config"
	"hoodbook/internal/middleware"
	"hoodbook/internal/modules/admin"
	"hoodbook/internal/modules/booking"
	"hoodbook/internal/modules/cart"
	"hoodbook/internal/modules/catalog"
	"hoodbook/internal/modules/checkin"
	"hoodbook/internal/modules/payment"
	"hoodbook/internal/modules/profile"
	"hoodbook/internal/modules/schedule"
	"hoodbook/internal/modules/settings"
	"hoodbook/internal/monitoring"
	"hoodbook/internal/pkg/jwt"
	"hoodbook/internal/pkg/response"
)

// App holds the state containers for one academy. Each container loads its
// document from the store once, here.
type App struct {
	cfg   *config.Config
	store *Store
	jwt   *jwt.Service

	Catalog  *catalog.Service
	Profiles *profile.Store
	Settings *settings.Service
	Cart     *cart.Manager
	Ledger   *booking.Ledger
	Bookings *booking.Service
	Payments *payment.Service
	Verifier *checkin.Verifier
	Admin    *admin.Service
}

func New(ctx context.Context, cfg *config.Config, store *Store) *App {
	jwtService := jwt.New(cfg.JWTSecret, cfg.AdminTokenTTL)

	catalogService := catalog.NewService()
	profiles := profile.NewStore(ctx, store)
	settingsService := settings.NewService(ctx, store)
	cartManager := cart.NewManager(ctx, store, catalogService, profiles, cfg.Location())
	ledger := booking.NewLedger(ctx, store)

	return &App{
		cfg:      cfg,
		store:    store,
		jwt:      jwtService,
		Catalog:  catalogService,
		Profiles: profiles,
		Settings: settingsService,
		Cart:     cartManager,
		Ledger:   ledger,
		Bookings: booking.NewService(cartManager, ledger),
		Payments: payment.NewService(cartManager, profiles, settingsService),
		Verifier: checkin.NewVerifier(ledger),
		Admin:    admin.NewService(cfg.AdminPIN, jwtService, ledger, catalogService),
	}
}

func (a *App) Router() *gin.Engine {
	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS(a.cfg.CORSAllowedOrigins))
	r.Use(monitoring.RequestMetrics())

	r.GET("/health", a.health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	settingsHandler := settings.NewHandler(a.Settings)
	adminHandler := admin.NewHandler(a.Admin)
	checkinHandler := checkin.NewHandler(a.Verifier)

	v1 := r.Group("/api/v1")
	{
		catalog.NewHandler(a.Catalog).RegisterRoutes(v1)
		schedule.NewHandler(a.Catalog, a.cfg.Location()).RegisterRoutes(v1)
		cart.NewHandler(a.Cart).RegisterRoutes(v1)
		payment.NewHandler(a.Payments).RegisterRoutes(v1)
		booking.NewHandler(a.Bookings).RegisterRoutes(v1)
		profile.NewHandler(a.Profiles).RegisterRoutes(v1)
		settingsHandler.RegisterRoutes(v1)
		adminHandler.RegisterRoutes(v1)

		guarded := v1.Group("/admin")
		guarded.Use(middleware.AdminOnly(a.jwt)...)
		{
			adminHandler.RegisterAdminRoutes(guarded)
			checkinHandler.RegisterAdminRoutes(guarded, checkin.NewWSHandler(a.Verifier, a.cfg.CORSAllowedOrigins))
		}

		adminWrites := v1.Group("")
		adminWrites.Use(middleware.AdminOnly(a.jwt)...)
		{
			settingsHandler.RegisterAdminRoutes(adminWrites)
		}
	}

	return r
}

func (a *App) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := a.store.Ping(ctx); err != nil {
		response.Error(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": "ok", "store": a.cfg.StoreBackend})
}
