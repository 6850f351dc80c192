package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/invitation-backend/api/controllers"
	ordercontrollers "github.com/angelmondragon/invitation-backend/api/controllers/orders"
	"github.com/angelmondragon/invitation-backend/api/middleware"
	"github.com/angelmondragon/invitation-backend/internal/concepts"
	"github.com/angelmondragon/invitation-backend/internal/designs"
	"github.com/angelmondragon/invitation-backend/internal/gallery"
	"github.com/angelmondragon/invitation-backend/internal/order"
	"github.com/angelmondragon/invitation-backend/internal/support"
	"github.com/angelmondragon/invitation-backend/pkg/config"
	"github.com/angelmondragon/invitation-backend/pkg/logger"
	"github.com/angelmondragon/invitation-backend/pkg/redis"
)

// NewRouter wires the storefront API. A nil redisClient disables idempotency
// replay and rate limiting; a nil pubsubP drops pubsub from readiness.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	gatherer prometheus.Gatherer,
	dbP controllers.Pinger,
	redisClient *redis.Client,
	pubsubP controllers.Pinger,
	designService designs.Service,
	galleryService gallery.Service,
	orderService order.Service,
	conceptService concepts.Service,
	supportService support.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.ClientIP(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	var (
		idempotencyStore redis.IdempotencyStore
		limiter          middleware.RateLimitStore
	)
	deps := map[string]controllers.Pinger{"db": dbP, "pubsub": pubsubP}
	if redisClient != nil {
		idempotencyStore = redisClient
		limiter = redisClient
		deps["redis"] = redisClient
	}

	conceptsPolicy := middleware.NewRateLimitPolicy(
		"concepts",
		cfg.Concepts.RateLimitWindow,
		cfg.Concepts.RateLimit,
		0,
	)
	inquiryPolicy := middleware.NewRateLimitPolicy(
		"inquiry",
		cfg.Support.InquiryWindow,
		cfg.Support.InquiryIPLimit,
		cfg.Support.InquiryEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps))
	})

	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Idempotency(idempotencyStore, logg))

		r.Route("/designs", func(r chi.Router) {
			r.Get("/", controllers.DesignList(designService, logg))
			r.Get("/filters", controllers.DesignFilters(designService))
			r.Get("/{designId}", controllers.DesignDetail(designService, logg))
		})

		r.Route("/gallery", func(r chi.Router) {
			r.Get("/", controllers.GalleryList(galleryService, logg))
			r.Get("/{itemId}", controllers.GalleryDetail(galleryService, logg))
		})

		r.With(middleware.RateLimit(conceptsPolicy, limiter, logg)).
			Post("/concepts", controllers.GenerateConcepts(conceptService, logg))

		r.Route("/flow", func(r chi.Router) {
			r.Get("/", controllers.FlowInitial())
			r.Post("/transition", controllers.FlowTransition(logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/pricing", ordercontrollers.Pricing())
			r.Post("/quote", ordercontrollers.Quote(orderService, logg))
			r.Post("/", ordercontrollers.Submit(orderService, logg))
		})

		r.Route("/support", func(r chi.Router) {
			r.Get("/faqs", controllers.SupportFAQs(supportService))
			r.Get("/channels", controllers.SupportChannels(supportService))
			r.With(middleware.RateLimit(inquiryPolicy, limiter, logg)).
				Post("/inquiries", controllers.SupportInquiry(supportService, logg))
		})
	})

	return r
}
