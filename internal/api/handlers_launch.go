package api

import (
	"net/http"

	"github.com/dgallion1/sheetview/internal/params"
	"github.com/dgallion1/sheetview/internal/render"
)

func (s *Server) handleLaunch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	target, err := s.launcher.URL(q.Get("tool"), params.FromQuery(q))
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	render.JSON(w, map[string]string{"url": target}, false)
}
