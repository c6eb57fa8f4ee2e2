package httpx

import (
	"net/http"
	"strings"
)

// CORSConfig defines cross-origin access for the API. Origins are an
// explicit allow-list: a wildcard entry is only honored when
// credentials are not allowed, since "*" with credentials is exactly
// the dev-only shortcut that must not reach production.
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
}

// CORSMiddleware applies the allow-list to every request and
// short-circuits preflight OPTIONS requests.
func CORSMiddleware(cfg CORSConfig) Middleware {
	joinedMethods := strings.Join(cfg.AllowedMethods, ", ")
	joinedHeaders := strings.Join(cfg.AllowedHeaders, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !originAllowed(origin, cfg.AllowedOrigins) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			header := w.Header()
			header.Set("Vary", "Origin")
			header.Set("Access-Control-Allow-Methods", joinedMethods)
			header.Set("Access-Control-Allow-Headers", joinedHeaders)
			if cfg.AllowCredentials {
				header.Set("Access-Control-Allow-Credentials", "true")
			}

			if containsWildcard(cfg.AllowedOrigins) && !cfg.AllowCredentials {
				header.Set("Access-Control-Allow-Origin", "*")
			} else {
				header.Set("Access-Control-Allow-Origin", origin)
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(origin string, allowed []string) bool {
	for _, candidate := range allowed {
		if candidate == "*" || strings.EqualFold(candidate, origin) {
			return true
		}
	}
	return false
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
