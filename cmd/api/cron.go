package main

import (
	"net/http"
	"time"
)

// keepAliveHandler answers the scheduled probe that keeps the managed
// database from being paused for inactivity. The count doubles as a cheap
// liveness query.
//
//	@Summary		Keep-alive probe
//	@Description	Counts feedback rows to keep the database warm.
//	@Tags			Cron
//	@Produce		json
//	@Success		200	{object}	string	"probe result"
//	@Failure		401	{object}	error	"wrong cron secret"
//	@Failure		500	{object}	error	"Internal Server Error"
//	@Router			/cron/keep-alive [get]
func (app *application) keepAliveHandler(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer "+app.config.cron.secret {
		writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	count, err := app.store.Feedbacks.Count(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"message":       "database is alive",
		"feedbackCount": count,
		"timestamp":     time.Now().UTC().Format(time.RFC3339),
	})
}
