package middlewares

import (
	"github.com/gin-gonic/gin"
	"ohppos.io/application/middlewares"
	"ohppos.io/infrastructure/ratelimit"
)

// AdmissionGate guards every processor-facing route. The stages always run in this
// order: API key, rate limit, idempotency key.
type AdmissionGate struct {
	Authenticator *middlewares.APIKeyAuthenticator
	Limiter       *ratelimit.FixedWindowLimiter
}

func (gate *AdmissionGate) Handlers() []gin.HandlerFunc {
	return []gin.HandlerFunc{
		APIKeyAuthenticationMiddleware(gate.Authenticator),
		RateLimitMiddleware(gate.Limiter),
		IdempotencyKeyMiddleware(),
	}
}
