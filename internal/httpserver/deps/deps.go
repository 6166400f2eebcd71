package deps

import (
	"time"

	"github.com/MrSnakeDoc/linkhub/internal/auth"
	"github.com/MrSnakeDoc/linkhub/internal/linkapply"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
	"github.com/MrSnakeDoc/linkhub/internal/navigation"
	"github.com/MrSnakeDoc/linkhub/internal/session"
	"github.com/MrSnakeDoc/linkhub/internal/store"
	"github.com/MrSnakeDoc/linkhub/internal/utils"
)

// Deps is everything a handler or registrar may need.
type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string

	SiteTitle      string        // title of the rendered page
	RequestTimeout time.Duration // per-request deadline (0 = none)

	AllowedHosts []string // Host headers allowed to access the server
	AllowedCIDRS []string // IPs allowed to access healthz/readyz endpoints

	// Peers whose CF-Connecting-IP / X-Forwarded-For / X-Real-IP are believed.
	// nil means the client IP is always RemoteAddr.
	TrustedProxies *utils.IPMatcher

	ApplyBurst        int // /apply-link bucket size per client IP (0 = unthrottled)
	ApplyRefillPerMin int

	StoreBackend string   // "redis" | "memory", reported by /readyz
	Store        store.KV // pinged by /readyz

	Password     *auth.Password
	Sessions     *session.Store
	Documents    *navigation.Store
	Applications *linkapply.Store
}
