package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/causewayhq/causeway/internal/tenancy/service"
	"github.com/causewayhq/causeway/internal/tenancy/store"
	"github.com/causewayhq/causeway/pkg/httpx"
	"github.com/causewayhq/causeway/pkg/slogx"

	_ "github.com/causewayhq/causeway/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     httpx.SessionVerifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	metrics      *httpx.Metrics
	deny         denyWriter

	store               store.Store
	SessionService      *service.SessionService
	IdentityService     *service.IdentityService
	AccessService       *service.AccessService
	InviteService       *service.InviteService
	OrganizationService *service.OrganizationService
	BootstrapService    *service.BootstrapService
}

func NewRouter(
	verifier httpx.SessionVerifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	metrics *httpx.Metrics,
	denyMode service.DenyMode,
	redirectURL string,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		metrics:      metrics,
		deny:         denyWriter{Mode: denyMode, RedirectURL: redirectURL},
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		metrics.Middleware(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSession()
	r.registerIdentity()
	r.registerAccess()
	r.registerInvites()
	r.registerOrganizations()
	r.registerSystem()
	r.registerBootstrap()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Causeway Tenancy Service API
//	@version		0.1.0
//	@description	Multi-tenant authorization and invitation service. Principals authenticate with email and password, hold roles in organizations, and act under an explicit organization selection evaluated by a single access guard.
//	@description
//	@description				Session and invite tokens are HMAC-signed JWTs; invite tokens are single-purpose and bound to a persisted invite row.
//
//	@contact.name				Causeway Team
//	@contact.url				https://github.com/causewayhq/causeway
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerSession() {
	// POST /session - strict rate limit by IP (authentication attempts)
	h := &SessionHandler{SessionService: r.SessionService}
	r.Mux.Handle("POST /v1/session",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerIdentity() {
	h := &IdentityHandler{IdentityService: r.IdentityService}

	r.Mux.Handle("GET /v1/identity",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByPrincipal(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("PUT /v1/identity/organization",
		httpx.Chain(http.HandlerFunc(h.HandleSelect),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByPrincipal(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAccess() {
	h := &AccessHandler{AccessService: r.AccessService}

	// Guard evaluations happen on every page load, so the limit is high.
	r.Mux.Handle("GET /v1/access/decision",
		httpx.Chain(h,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByPrincipal(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerInvites() {
	admin := &InviteAdminHandler{
		InviteService: r.InviteService,
		AccessService: r.AccessService,
		Deny:          r.deny,
	}
	lifecycle := &InviteLifecycleHandler{InviteService: r.InviteService}

	r.Mux.Handle("POST /v1/invites",
		httpx.Chain(http.HandlerFunc(admin.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByPrincipal(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/invites",
		httpx.Chain(http.HandlerFunc(admin.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByPrincipal(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/invites/{id}/resend",
		httpx.Chain(http.HandlerFunc(admin.HandleResend),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByPrincipal(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/invites/{id}/cancel",
		httpx.Chain(http.HandlerFunc(admin.HandleCancel),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByPrincipal(httpx.ModerateLimit),
		),
	)

	// Public lifecycle endpoints - rate limited by IP.
	r.Mux.Handle("GET /v1/invites/validate",
		httpx.Chain(http.HandlerFunc(lifecycle.HandleValidate),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/invites/register",
		httpx.Chain(http.HandlerFunc(lifecycle.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// Accepting requires a session: the invite email must match the
	// authenticated principal's email.
	r.Mux.Handle("POST /v1/invites/accept",
		httpx.Chain(http.HandlerFunc(lifecycle.HandleAccept),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByPrincipal(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerOrganizations() {
	h := &OrganizationsHandler{
		OrganizationService: r.OrganizationService,
		IdentityService:     r.IdentityService,
		AccessService:       r.AccessService,
		Deny:                r.deny,
	}

	authed := func(next http.Handler, limit httpx.RateLimitConfig) http.Handler {
		return httpx.Chain(next,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByPrincipal(limit),
		)
	}

	r.Mux.Handle("POST /v1/organizations", authed(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/organizations", authed(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/organizations/{id}/subscription", authed(http.HandlerFunc(h.HandleSubscription), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/organizations/{id}/members", authed(http.HandlerFunc(h.HandleMembersList), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/organizations/{id}/members", authed(http.HandlerFunc(h.HandleMemberAdd), httpx.ModerateLimit))
	r.Mux.Handle("PUT /v1/organizations/{id}/members/{userID}/suspension", authed(http.HandlerFunc(h.HandleSuspension), httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
	r.Mux.Handle("GET /metrics", r.metrics.Handler())
}

func (r *Router) registerBootstrap() {
	// POST /bootstrap - very strict rate limit by IP (one-time setup endpoint)
	h := &BootstrapHandler{BootstrapService: r.BootstrapService}
	r.Mux.Handle("POST /v1/bootstrap",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}
