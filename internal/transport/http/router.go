package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/travelpoint-api/internal/application/auth"
	"github.com/travelpoint-api/internal/application/booking"
	"github.com/travelpoint-api/internal/application/follow"
	"github.com/travelpoint-api/internal/application/listing"
	"github.com/travelpoint-api/internal/application/media"
	"github.com/travelpoint-api/internal/application/post"
	"github.com/travelpoint-api/internal/application/user"
	"github.com/travelpoint-api/internal/config"
	"github.com/travelpoint-api/internal/transport/http/handler"
	appmiddleware "github.com/travelpoint-api/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	if cfg.TrustProxy {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	if timeout := cfg.RequestTimeout(); timeout > 0 {
		r.Use(chimiddleware.Timeout(timeout))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authMw := appmiddleware.Auth(deps.JWTProvider)

	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(cfg.AuthRateLimitRPS), cfg.AuthRateLimitBurst)

	authDeps := auth.ServiceDeps{
		OTPs:         deps.OTPs,
		Pending:      deps.Pending,
		Users:        deps.UserRepo,
		Tokens:       deps.JWTProvider,
		Mailer:       deps.Mailer,
		SingleUseOTP: cfg.OTPSingleUse,
		MaxAttempts:  cfg.OTPMaxAttempts,
	}
	if deps.Google != nil {
		authDeps.Google = deps.Google
	}
	authSvc := auth.NewService(authDeps)

	mediaSvc := media.NewService(deps.Objects)
	userSvc := user.NewService(user.ServiceDeps{
		UserRepo:   deps.UserRepo,
		FollowRepo: deps.FollowRepo,
		PostRepo:   deps.PostRepo,
		Media:      mediaSvc,
	})
	postSvc := post.NewService(deps.PostRepo, mediaSvc)
	followSvc := follow.NewService(deps.FollowRepo)
	bookingSvc := booking.NewService(booking.ServiceDeps{
		BookingRepo: deps.BookingRepo,
		UserRepo:    deps.UserRepo,
		SMS:         deps.SMSSender,
	})

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(authSvc)
	userH := handler.NewUserHandler(userSvc)
	postH := handler.NewPostHandler(postSvc)
	followH := handler.NewFollowHandler(followSvc)
	guideH := handler.NewGuideHandler(listing.NewGuideService(deps.GuideRepo, mediaSvc))
	equipmentH := handler.NewEquipmentHandler(listing.NewEquipmentService(deps.EquipmentRepo, mediaSvc))
	vehicleH := handler.NewVehicleHandler(listing.NewVehicleService(deps.VehicleRepo, mediaSvc))
	authorityH := handler.NewAuthorityHandler(listing.NewAuthorityService(deps.AuthorityRepo, mediaSvc))
	bookingH := handler.NewBookingHandler(bookingSvc)

	// ── Public routes ────────────────────────────────────────────────────
	r.Get("/", healthH.Home)
	r.Get("/health-check/{action}", healthH.Ping)

	r.With(sensitiveRL.Limit).Post("/register", authH.Register)
	r.With(sensitiveRL.Limit).Post("/verify-otp", authH.VerifyOTP)
	r.With(sensitiveRL.Limit).Post("/login", authH.Login)
	r.With(sensitiveRL.Limit).Post("/login/google", authH.GoogleLogin)

	r.Get("/profile/{user_id}", userH.Profile)
	r.Get("/profile/posts/{poster_id}", userH.Posts)

	r.Get("/posts", postH.Feed)
	r.Get("/get_all_posts", postH.Feed)
	r.Get("/posts/get_all", postH.Feed)
	r.Get("/posts/{post_id}", postH.Get)

	r.Get("/followers/{user_id}", followH.Followers)
	r.Get("/following/{user_id}", followH.Following)

	r.Get("/guides_all", guideH.List)
	r.Get("/guides/{id}", guideH.Get)
	r.Get("/guides/status/{user_id}", guideH.Status)
	r.Get("/equipment/all", equipmentH.List)
	r.Get("/equipment/{id}", equipmentH.Get)
	r.Get("/equipment/status/{owner_id}", equipmentH.Status)
	r.Get("/vehicles/all", vehicleH.List)
	r.Get("/vehicles/{id}", vehicleH.Get)
	r.Get("/vehicles/status/{owner_id}", vehicleH.Status)
	r.Get("/authorities/all", authorityH.List)
	r.Get("/authorities/{id}", authorityH.Get)
	r.Get("/authorities/status/{user_id}", authorityH.Status)

	r.Get("/bookings", bookingH.List)
	r.Get("/bookings/{booking_id}", bookingH.Get)

	// ── Authenticated routes ─────────────────────────────────────────────
	r.Group(func(r chi.Router) {
		r.Use(authMw)

		r.Get("/secure-endpoint", authH.Secure)
		r.Post("/profile/update", userH.Update)

		r.Post("/posts/create", postH.Create)
		r.Put("/posts/like/{post_id}", postH.Like)

		r.Post("/follow", followH.Follow)
		r.Post("/unfollow", followH.Unfollow)

		r.Post("/guide/create", guideH.Create)
		r.Put("/guides/{id}", guideH.Update)
		r.Delete("/guides/{id}", guideH.Delete)
		r.Post("/equipment/create", equipmentH.Create)
		r.Put("/equipment/{id}", equipmentH.Update)
		r.Delete("/equipment/{id}", equipmentH.Delete)
		r.Post("/vehicle/create", vehicleH.Create)
		r.Put("/vehicles/{id}", vehicleH.Update)
		r.Delete("/vehicles/{id}", vehicleH.Delete)
		r.Post("/authority/create", authorityH.Create)
		r.Put("/authorities/{id}", authorityH.Update)
		r.Delete("/authorities/{id}", authorityH.Delete)

		r.Post("/book", bookingH.Create)
	})

	return r
}
