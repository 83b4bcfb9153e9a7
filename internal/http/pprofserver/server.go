package pprofserver

import (
	"crypto/subtle"
	"net"
	"net/http"
	"net/http/pprof"
	"strings"
)

// Config holds the basic-auth credentials for non-local pprof access.
type Config struct {
	User string
	Pass string
}

// profiles served through pprof.Handler; index, profile, symbol, trace and
// cmdline need the dedicated handlers instead.
var profiles = []string{"heap", "goroutine", "allocs", "block", "mutex", "threadcreate"}

// Handler exposes the pprof endpoints. Loopback clients get in directly;
// everyone else must present the configured basic-auth credentials.
func Handler(cfg Config) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	for _, p := range profiles {
		mux.Handle("/debug/pprof/"+p, pprof.Handler(p))
	}
	return guard(mux, cfg)
}

func guard(next http.Handler, cfg Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fromLoopback(r.RemoteAddr) || basicAuthOK(r, cfg) {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("WWW-Authenticate", `Basic realm="pprof"`)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})
}

func basicAuthOK(r *http.Request, cfg Config) bool {
	if cfg.User == "" || cfg.Pass == "" {
		// no credentials configured means no remote access at all
		return false
	}
	u, p, ok := r.BasicAuth()
	return ok && constEq(u, cfg.User) && constEq(p, cfg.Pass)
}

func constEq(a, b string) bool {
	return len(a) == len(b) && subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func fromLoopback(remoteAddr string) bool {
	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}
	ip := net.ParseIP(strings.TrimSpace(host))
	return ip != nil && ip.IsLoopback()
}
