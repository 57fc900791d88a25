package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

var (
	errInvalidSignatureFormat = errors.New("invalid signature format")
	errSignatureMismatch      = errors.New("signature verification failed")
	errRateLimited            = errors.New("rate limit exceeded")
)

// validateSignature checks a "sha256=<hex>" HMAC of payload.
func validateSignature(secret string, payload []byte, signature string) error {
	if !strings.HasPrefix(signature, signaturePrefix) {
		return errInvalidSignatureFormat
	}

	expected, err := hex.DecodeString(strings.TrimPrefix(signature, signaturePrefix))
	if err != nil {
		return fmt.Errorf("invalid signature hex encoding: %w", err)
	}

	if !hmac.Equal(expected, Sign(secret, payload)) {
		return errSignatureMismatch
	}
	return nil
}

// Sign returns the raw HMAC-SHA256 of payload under secret.
func Sign(secret string, payload []byte) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return mac.Sum(nil)
}

// SignatureHeader formats payload's signature for HeaderSignature.
func SignatureHeader(secret string, payload []byte) string {
	return signaturePrefix + hex.EncodeToString(Sign(secret, payload))
}

// ipAllowed reports whether ip matches an entry of allowed, either exactly or
// by CIDR range. An empty list allows everything.
func ipAllowed(allowed []string, ip string) bool {
	if len(allowed) == 0 {
		return true
	}

	parsed := net.ParseIP(ip)
	for _, entry := range allowed {
		if entry == ip {
			return true
		}
		if !strings.Contains(entry, "/") || parsed == nil {
			continue
		}
		_, ipNet, err := net.ParseCIDR(entry)
		if err != nil {
			continue
		}
		if ipNet.Contains(parsed) {
			return true
		}
	}
	return false
}

// rateLimiter keeps one token bucket per client; idle buckets expire.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, 5*time.Minute),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("%w for %s", errRateLimited, key)
	}
	return nil
}
