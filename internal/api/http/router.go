package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/kindling-app/kindling/internal/api/service"
	"github.com/kindling-app/kindling/internal/api/store"
	"github.com/kindling-app/kindling/pkg/httpx"
	"github.com/kindling-app/kindling/pkg/jwtx"
	"github.com/kindling-app/kindling/pkg/slogx"

	_ "github.com/kindling-app/kindling/api/docs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store         store.Store
	AuthService   *service.AuthService
	MemberService *service.MemberService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	cors httpx.CORSConfig,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Global middleware chain: logging first so CORS decisions are
	// visible in the request log.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORSMiddleware(cors),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccount()
	r.registerMembers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
//
//	@title			Kindling API
//	@version		0.1.0
//	@description	Account registration, login and member browsing for the Kindling dating app.
//	@description
//	@description	Bearer tokens are HS512-signed JWTs issued by the register and login endpoints.
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
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAccount() {
	registerHandler := &RegisterHandler{AuthService: r.AuthService}
	loginHandler := &LoginHandler{AuthService: r.AuthService}

	// Credential endpoints get the strict per-IP limit to slow down
	// brute forcing.
	r.Mux.Handle("POST /register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerMembers() {
	h := &MembersHandler{MemberService: r.MemberService}

	list := httpx.Chain(http.HandlerFunc(h.HandleList),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByIP(httpx.LenientLimit),
	)
	detail := httpx.Chain(http.HandlerFunc(h.HandleGet),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByIP(httpx.LenientLimit),
	)

	r.Mux.Handle("GET /members", list)
	r.Mux.Handle("GET /members/{id}", detail)
}

func (r *Router) registerSystem() {
	// Health probes are polled by monitors, keep limits lenient.
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.AuthService.Signer),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
