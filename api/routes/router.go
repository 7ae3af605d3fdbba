package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/strideworks/stride-backend/api/controllers"
	"github.com/strideworks/stride-backend/api/middleware"
	authsvc "github.com/strideworks/stride-backend/internal/auth"
	cartsvc "github.com/strideworks/stride-backend/internal/cart"
	cataloguesvc "github.com/strideworks/stride-backend/internal/catalogues"
	mdsvc "github.com/strideworks/stride-backend/internal/masterdata"
	orderssvc "github.com/strideworks/stride-backend/internal/orders"
	posvc "github.com/strideworks/stride-backend/internal/purchaseorders"
	userssvc "github.com/strideworks/stride-backend/internal/users"
	vendorsvc "github.com/strideworks/stride-backend/internal/vendors"
	"github.com/strideworks/stride-backend/pkg/auth/session"
	"github.com/strideworks/stride-backend/pkg/config"
	"github.com/strideworks/stride-backend/pkg/db"
	"github.com/strideworks/stride-backend/pkg/enums"
	"github.com/strideworks/stride-backend/pkg/logger"
	"github.com/strideworks/stride-backend/pkg/metrics"
	"github.com/strideworks/stride-backend/pkg/redis"
)

// Services bundles the wired service layer handed to the router.
type Services struct {
	Auth           authsvc.Service
	Users          userssvc.Service
	Catalogues     cataloguesvc.Service
	Vendors        vendorsvc.Service
	PurchaseOrders posvc.Service
	Masterdata     mdsvc.Service
	Cart           cartsvc.Service
	Orders         orderssvc.Service
}

// NewRouter assembles the full HTTP surface.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisP redis.Pinger,
	idemStore redis.IdempotencyStore,
	sessionChecker session.AccessSessionChecker,
	httpMetrics *metrics.HTTPMetrics,
	promRegistry *prometheus.Registry,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	if promRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))
	}

	// Idempotency attaches per route rather than on a group. Group middleware
	// runs before chi resolves the leaf pattern, so the TTL table would only
	// ever see "/api/v1/*" and match nothing.
	idem := middleware.Idempotency(idemStore, logg)

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", controllers.AuthLogin(svcs.Auth, logg))
		r.Post("/refresh", controllers.AuthRefresh(svcs.Auth, logg))
		r.Post("/logout", controllers.AuthLogout(svcs.Auth, cfg.JWT, logg))
		// Register sits behind the idempotency layer so a retried signup
		// does not mint two accounts.
		r.With(idem).Post("/register", controllers.AuthRegister(svcs.Auth, logg))
		r.With(middleware.Auth(cfg.JWT, sessionChecker, logg)).
			Get("/me", controllers.AuthMe(svcs.Auth, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessionChecker, logg))

		r.Route("/catalogues", func(r chi.Router) {
			r.Get("/", controllers.CataloguesList(svcs.Catalogues, logg))
			r.Get("/{catalogueId}", controllers.CataloguesGet(svcs.Catalogues, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAnyRole(logg,
					enums.RoleSuperadmin, enums.RoleAdmin, enums.RoleManager))
				r.Post("/", controllers.CataloguesCreate(svcs.Catalogues, logg))
				r.Put("/{catalogueId}", controllers.CataloguesUpdate(svcs.Catalogues, logg))
				r.Delete("/{catalogueId}", controllers.CataloguesDelete(svcs.Catalogues, logg))
			})
		})

		// The four reference collections share one handler set; the regex
		// keeps unrelated paths out of the {collection} parameter.
		r.Route("/{collection:categories|brands|manufacturer-companies|units}", func(r chi.Router) {
			r.Get("/", controllers.MasterdataList(svcs.Masterdata, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAnyRole(logg,
					enums.RoleSuperadmin, enums.RoleAdmin, enums.RoleManager))
				r.Post("/", controllers.MasterdataCreate(svcs.Masterdata, logg))
				r.Put("/{itemId}", controllers.MasterdataRename(svcs.Masterdata, logg))
				r.Delete("/{itemId}", controllers.MasterdataDelete(svcs.Masterdata, logg))
			})
		})

		r.Route("/vendors", func(r chi.Router) {
			r.Use(middleware.RequireAnyRole(logg,
				enums.RoleSuperadmin, enums.RoleAdmin, enums.RoleManager))
			r.Post("/", controllers.VendorsCreate(svcs.Vendors, logg))
			r.Get("/", controllers.VendorsList(svcs.Vendors, logg))
			r.Get("/{vendorId}", controllers.VendorsGet(svcs.Vendors, logg))
			r.Put("/{vendorId}", controllers.VendorsUpdate(svcs.Vendors, logg))
			r.Delete("/{vendorId}", controllers.VendorsDelete(svcs.Vendors, logg))
		})

		r.Route("/purchase-orders", func(r chi.Router) {
			r.Use(middleware.RequireAnyRole(logg,
				enums.RoleSuperadmin, enums.RoleAdmin, enums.RoleManager))
			r.Get("/next-number", controllers.PurchaseOrdersNextNumber(svcs.PurchaseOrders, logg))
			r.With(idem).Post("/", controllers.PurchaseOrdersCreate(svcs.PurchaseOrders, logg))
			r.Get("/", controllers.PurchaseOrdersList(svcs.PurchaseOrders, logg))
			r.Get("/{purchaseOrderId}", controllers.PurchaseOrdersGet(svcs.PurchaseOrders, logg))
			r.Put("/{purchaseOrderId}", controllers.PurchaseOrdersUpdate(svcs.PurchaseOrders, logg))
			r.With(idem).Post("/{purchaseOrderId}/send", controllers.PurchaseOrdersSend(svcs.PurchaseOrders, logg))
			r.Delete("/{purchaseOrderId}", controllers.PurchaseOrdersDelete(svcs.PurchaseOrders, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.RequireRole(enums.RoleDistributor, logg))
			r.Get("/", controllers.CartGet(svcs.Cart, logg))
			r.With(idem).Put("/", controllers.CartReplace(svcs.Cart, logg))
			r.Delete("/", controllers.CartClear(svcs.Cart, logg))
		})

		r.With(middleware.RequireRole(enums.RoleDistributor, logg), idem).
			Post("/checkout", controllers.Checkout(svcs.Orders, logg))

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.SalesOrdersList(svcs.Orders, logg))
			r.Get("/{orderId}", controllers.SalesOrdersGet(svcs.Orders, logg))
			r.With(idem).Post("/{orderId}/cancel", controllers.SalesOrdersCancel(svcs.Orders, logg))
		})
	})

	r.Route("/api/admin/v1/users", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessionChecker, logg))
		r.Use(middleware.RequireAtLeastAdmin(logg))

		r.Get("/", controllers.UsersList(svcs.Users, logg))
		r.Get("/{userId}", controllers.UsersGet(svcs.Users, logg))
		r.Patch("/{userId}", controllers.UsersUpdateProfile(svcs.Users, logg))
		r.Post("/{userId}/role", controllers.UsersUpdateRole(svcs.Users, logg))
		r.Post("/{userId}/deactivate", controllers.UsersDeactivate(svcs.Users, logg))
		r.Post("/{userId}/activate", controllers.UsersActivate(svcs.Users, logg))
	})

	return r
}
