package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/orvane/Gemstore_Go/internal/logger"
)

const (
	// failedAuthAlertThreshold is the failed-auth count per IP that triggers
	// a security alert within one tracking window.
	failedAuthAlertThreshold = 5
	// rateLimitMaxRequests caps requests per IP per tracking window.
	rateLimitMaxRequests = 1000
	// rateLimitLogEvery throttles over-limit log lines.
	rateLimitLogEvery = 100
	// trackingWindow is how long per-IP counters accumulate before reset.
	trackingWindow = 5 * time.Minute
)

// AuthMiddleware gates the store API behind the shared API key. Health,
// metrics, version and documentation endpoints stay open so health checks and
// Prometheus never need credentials.
func AuthMiddleware(apiKey string, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, path := range PublicPaths {
				if strings.HasPrefix(r.URL.Path, path) {
					next.ServeHTTP(w, r)
					return
				}
			}

			providedKey := r.Header.Get(HeaderAPIKey)

			// Constant time comparison to prevent timing attacks
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := extractIP(r, trustedProxies)
				detector.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"remote_addr", r.RemoteAddr,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware caps request body size. Purchase and profile
// payloads are small; anything near the cap is not a legitimate client.
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// clientStats holds the per-IP counters for one tracking window.
type clientStats struct {
	failedAuth int
	requests   int
}

// SuspiciousActivityDetector tracks per-IP auth failures and request rates
// over a sliding window and alerts on abusive patterns.
type SuspiciousActivityDetector struct {
	mu        sync.Mutex
	byIP      map[string]*clientStats
	windowEnd time.Time
}

func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		byIP:      make(map[string]*clientStats),
		windowEnd: time.Now().Add(trackingWindow),
	}
}

// RecordFailedAuth counts a failed authentication attempt for the IP
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := s.statsFor(ip)
	stats.failedAuth++

	if stats.failedAuth >= failedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth,
			"ip", ip,
			"count", stats.failedAuth)
	}
}

// RecordRequest counts a request for the IP and reports whether it is still
// within the rate limit.
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := s.statsFor(ip)
	stats.requests++

	if stats.requests > rateLimitMaxRequests {
		if stats.requests%rateLimitLogEvery == 0 {
			slog.Warn(SecurityAlertHighRate,
				"ip", ip,
				"count_in_window", stats.requests)
		}
		return false
	}
	return true
}

// statsFor returns the IP's counters, rolling the window over when it has
// expired. Caller must hold the mutex.
func (s *SuspiciousActivityDetector) statsFor(ip string) *clientStats {
	now := time.Now()
	if now.After(s.windowEnd) {
		s.byIP = make(map[string]*clientStats)
		s.windowEnd = now.Add(trackingWindow)
	}
	stats, ok := s.byIP[ip]
	if !ok {
		stats = &clientStats{}
		s.byIP[ip] = stats
	}
	return stats
}

// SecurityLoggingMiddleware enforces the per-IP rate limit before the
// request reaches any store handler.
func SecurityLoggingMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)

			if !detector.RecordRequest(ip) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// extractIP resolves the client IP. X-Forwarded-For is honored only when the
// direct peer is a trusted proxy, and then only its rightmost entry, since
// that is the hop the proxy actually saw.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if slices.Contains(trustedProxies, remoteIP) {
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[len(ips)-1])
		}
	}

	return remoteIP
}

// SecurityHeadersMiddleware sets the browser-facing hardening headers on
// every response, the swagger UI included.
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
			w.Header().Set(HeaderXSSProtection, HeaderValueXSSBlock)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)

			next.ServeHTTP(w, r)
		})
	}
}
