package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dgallion1/sheetview/internal/params"
)

// handleListTools describes every registered viewer and its selectors.
func (s *Server) handleListTools(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, map[string]any{"tools": s.driver.Registry().List()})
}

// handleView fetches the CSV named by ?csv= and returns the tool's view-model.
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	tool := chi.URLParam(r, "tool")
	res, err := s.driver.Run(r.Context(), tool, params.FromQuery(r.URL.Query()))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, r, res)
}
