package interfaces

import (
	"context"
	"net/http"
)

// ApplicationContext carries one request through the application layer.
// Ctx is the transport context (a *gin.Context) and is only handed back to the responder.
type ApplicationContext[T any] struct {
	Ctx     any
	Context context.Context
	Body    *T
	Keys    map[string]any
	Header  http.Header
	Param   map[string]any
	Method  string

	// ResponseHeader lets middlewares disclose headers without touching the transport.
	ResponseHeader http.Header
}

func (ctx *ApplicationContext[T]) GetHeader(key string) *string {
	if ctx.Header == nil {
		return nil
	}
	value := ctx.Header.Get(key)
	if value == "" {
		return nil
	}
	return &value
}

func (ctx *ApplicationContext[T]) SetContextData(key string, value any) {
	if ctx.Keys == nil {
		ctx.Keys = map[string]any{}
	}
	ctx.Keys[key] = value
}

func (ctx *ApplicationContext[T]) GetContextData(key string) any {
	if ctx.Keys == nil {
		return nil
	}
	return ctx.Keys[key]
}

func (ctx *ApplicationContext[T]) GetStringContextData(key string) string {
	value, _ := ctx.GetContextData(key).(string)
	return value
}

func (ctx *ApplicationContext[T]) SetResponseHeader(key string, value string) {
	if ctx.ResponseHeader == nil {
		return
	}
	ctx.ResponseHeader.Set(key, value)
}

// RequestContext is the context handed to processor calls. It falls back to Background
// for contexts built by hand.
func (ctx *ApplicationContext[T]) RequestContext() context.Context {
	if ctx.Context == nil {
		return context.Background()
	}
	return ctx.Context
}
