package main

import (
	"errors"
	"net/http"
	"time"
)

type adminAuthPayload struct {
	Password string `json:"password"`
}

// adminAuthHandler godoc
//
//	@Summary		Authenticate for the dashboard
//	@Description	Exchanges the shared admin password for a session token.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		adminAuthPayload	true	"Admin password"
//	@Success		200			{object}	string				"session token"
//	@Failure		401			{object}	error				"wrong password"
//	@Router			/admin/auth [post]
func (app *application) adminAuthHandler(w http.ResponseWriter, r *http.Request) {
	var payload adminAuthPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	// Exact match against the process-configured secret. No per-user
	// accounts exist behind the dashboard.
	if payload.Password == "" || payload.Password != app.config.auth.admin.password {
		app.unauthorizedErrorResponse(w, r, errors.New("wrong admin password"))
		return
	}

	token, expiresAt, err := app.authenticator.GenerateSessionToken(app.config.auth.admin.sessionExp)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token":      token,
		"expires_at": expiresAt.UTC().Format(time.RFC3339),
	})
}
