package middlewares

import (
	"crypto/subtle"

	apperrors "ohppos.io/application/appErrors"
	"ohppos.io/application/constants"
	"ohppos.io/application/interfaces"
)

type AuthResult int

const (
	Authorized AuthResult = iota
	Unauthorized
	Misconfigured
)

// APIKeyAuthenticator accepts either the single configured secret or any member of the
// configured set. With nothing configured every request is refused.
type APIKeyAuthenticator struct {
	single string
	set    map[string]struct{}
}

func NewAPIKeyAuthenticator(single string, keys []string) *APIKeyAuthenticator {
	set := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if key != "" {
			set[key] = struct{}{}
		}
	}
	return &APIKeyAuthenticator{single: single, set: set}
}

func (a *APIKeyAuthenticator) Configured() bool {
	return a.single != "" || len(a.set) > 0
}

func (a *APIKeyAuthenticator) Authenticate(presented string) AuthResult {
	if !a.Configured() {
		return Misconfigured
	}
	if presented == "" {
		return Unauthorized
	}
	if a.single != "" && subtle.ConstantTimeCompare([]byte(presented), []byte(a.single)) == 1 {
		return Authorized
	}
	if _, ok := a.set[presented]; ok {
		return Authorized
	}
	return Unauthorized
}

// PresentedCredential returns the first non-empty credential header.
func PresentedCredential(ctx *interfaces.ApplicationContext[any]) string {
	for _, header := range []string{constants.API_KEY_HEADER, constants.DEVICE_KEY_HEADER} {
		if value := ctx.GetHeader(header); value != nil {
			return *value
		}
	}
	return ""
}

func APIKeyAuthenticationMiddleware(ctx *interfaces.ApplicationContext[any], authenticator *APIKeyAuthenticator) (*interfaces.ApplicationContext[any], bool) {
	presented := PresentedCredential(ctx)
	switch authenticator.Authenticate(presented) {
	case Misconfigured:
		apperrors.ServerMisconfigured(ctx.Ctx, "Server API key not configured")
		return nil, false
	case Unauthorized:
		apperrors.AuthenticationError(ctx.Ctx, "Unauthorized")
		return nil, false
	}
	ctx.SetContextData(constants.AUTHENTICATED_KEY_CONTEXT, presented)
	return ctx, true
}
