package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"starlight/shared"
	"starlight/shared/constant"
	"starlight/shared/kvstore"
	"starlight/transport/http/response"
	"strconv"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
)

// window is the stored state of one client's fixed rate limit window.
type window struct {
	Count int   `json:"count"`
	Start int64 `json:"start"`
}

func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			maxReqs := a.config.App.RateLimiter.MaxRequests
			windowSecs := a.config.App.RateLimiter.WindowSeconds

			cacheKey := shared.BuildKey(cacheKeyRateLimit, a.getClientIP(r))

			now := a.now().Unix()

			var count int

			err := a.store.Update(r.Context(), cacheKey, func(current []byte, found bool) ([]byte, error) {
				state := window{Start: now}

				if found {
					if err := json.Unmarshal(current, &state); err != nil || now-state.Start >= int64(windowSecs) {
						state = window{Start: now}
					}
				}

				state.Count++
				count = state.Count

				return json.Marshal(state)
			})
			if err != nil {
				// If the store fails, allow the request to continue
				log.Warn().Err(err).Str("key", cacheKey).Msg("rate limiter unavailable")
				next.ServeHTTP(w, r)

				return
			}

			a.pruneWindows(r, now, int64(windowSecs))

			if count > maxReqs {
				response.WithRequestLimitExceeded(w)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			next.ServeHTTP(w, r)
		})
	}
}

// pruneWindows drops expired windows from stores that never expire keys on
// their own. It runs at most once per window length.
func (a *appMiddleware) pruneWindows(r *http.Request, now, windowSecs int64) {
	pruner, ok := a.store.(kvstore.Pruner)
	if !ok {
		return
	}

	last := a.lastPrune.Load()
	if now-last < windowSecs || !a.lastPrune.CompareAndSwap(last, now) {
		return
	}

	removed, err := pruner.Prune(r.Context(), cacheKeyRateLimit+shared.KeySeparator, func(value []byte) bool {
		var state window
		if err := json.Unmarshal(value, &state); err != nil {
			return true
		}

		return now-state.Start >= windowSecs
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to prune rate limit windows")

		return
	}

	log.Debug().Int("removed", removed).Msg("pruned rate limit windows")
}

// getClientIP keys clients on the connection address. Forwarding headers are
// honoured only when APP_TRUST_PROXY mounts chi's RealIP, which rewrites
// RemoteAddr.
func (a *appMiddleware) getClientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}

	return r.RemoteAddr
}
