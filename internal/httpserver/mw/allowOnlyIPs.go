package mw

import (
	"net/http"

	"github.com/MrSnakeDoc/linkhub/internal/httpserver/respond"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
	"github.com/MrSnakeDoc/linkhub/internal/utils"
)

// AllowOnlyCIDRS restricts a route to the given IPs/CIDRs. An empty list
// disables the check. Proxy headers count only when the peer is one of
// trustedProxies.
func AllowOnlyCIDRS(allowed []string, trustedProxies *utils.IPMatcher, log logger.Logger) func(http.Handler) http.Handler {
	m := utils.NewIPMatcher(allowed)
	if m.IsEmpty() {
		return func(next http.Handler) http.Handler { return next }
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := utils.ClientIP(r, trustedProxies)
			if !m.Allow(ip) {
				log.Debug("client ip not in allowlist",
					logger.String("ip", ip),
					logger.String("path", r.URL.Path))
				respond.Fail(w, http.StatusForbidden, http.StatusText(http.StatusForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
