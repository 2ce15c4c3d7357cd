package controller

import (
	"fmt"
	"net/http"

	"ohppos.io/entities"
	server_response "ohppos.io/infrastructure/serverResponse"
)

// Health is the unauthenticated liveness check.
func Health(ctx any, mode entities.OperatingMode) {
	server_response.Responder.Respond(ctx, http.StatusOK, map[string]any{
		"ok":      true,
		"message": fmt.Sprintf("POS backend running in %s mode", mode),
	})
}
