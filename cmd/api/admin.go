package main

import "net/http"

// adminStatsHandler godoc
//
//	@Summary		Whole-table statistics
//	@Description	Response count, average satisfaction and time-saved rate over all submissions, computed by the database.
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	store.TableStats
//	@Failure		401	{object}	error	"unauthorized route"
//	@Failure		500	{object}	error	"Internal Server Error"
//	@Security		ApiKeyAuth
//	@Router			/admin/stats [get]
func (app *application) adminStatsHandler(w http.ResponseWriter, r *http.Request) {
	tableStats, err := app.store.Feedbacks.Stats(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, tableStats)
}
