package middlewares

import (
	"strconv"
	"time"

	apperrors "ohppos.io/application/appErrors"
	"ohppos.io/application/constants"
	"ohppos.io/application/interfaces"
	"ohppos.io/infrastructure/logger"
	"ohppos.io/infrastructure/ratelimit"
)

// RateLimitMiddleware counts the request against the client's window and discloses the
// window state through the RateLimit-* headers.
func RateLimitMiddleware(ctx *interfaces.ApplicationContext[any], limiter *ratelimit.FixedWindowLimiter, clientIdentity string) (*interfaces.ApplicationContext[any], bool) {
	ctx.SetContextData(constants.CLIENT_IDENTITY_CONTEXT, clientIdentity)
	decision := limiter.Take(ctx.RequestContext(), clientIdentity)

	now := time.Now()
	ctx.SetResponseHeader("RateLimit-Limit", strconv.FormatInt(decision.Limit, 10))
	ctx.SetResponseHeader("RateLimit-Remaining", strconv.FormatInt(decision.Remaining, 10))
	ctx.SetResponseHeader("RateLimit-Reset", strconv.FormatInt(decision.RetryAfter(now), 10))

	if !decision.Allowed {
		logger.Warning("rate limit exceeded", logger.LoggerOptions{
			Key:  "client",
			Data: clientIdentity,
		})
		ctx.SetResponseHeader("Retry-After", strconv.FormatInt(decision.RetryAfter(now), 10))
		apperrors.RateLimitError(ctx.Ctx, "Too many requests, please try again later.")
		return nil, false
	}
	return ctx, true
}
