package middlewares

import (
	"net/http"

	apperrors "ohppos.io/application/appErrors"
	"ohppos.io/application/constants"
	"ohppos.io/application/interfaces"
)

// IdempotencyKeyMiddleware requires an Idempotency-Key on mutating requests. The value
// is only checked for presence here.
func IdempotencyKeyMiddleware(ctx *interfaces.ApplicationContext[any]) (*interfaces.ApplicationContext[any], bool) {
	if ctx.Method != http.MethodPost {
		return ctx, true
	}
	key := ctx.GetHeader(constants.IDEMPOTENCY_KEY_HEADER)
	if key == nil {
		apperrors.MissingHeaderError(ctx.Ctx, constants.IDEMPOTENCY_KEY_HEADER)
		return nil, false
	}
	ctx.SetContextData(constants.IDEMPOTENCY_KEY_HEADER, *key)
	return ctx, true
}
