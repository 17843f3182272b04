package api

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dgallion1/sheetview/internal/apperr"
	"github.com/dgallion1/sheetview/internal/render"
	"github.com/dgallion1/sheetview/internal/tools"
)

func jsonError(w http.ResponseWriter, msg, kind string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg, "kind": kind})
}

// writeError maps err onto a status code and writes the user-visible message.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	code, kind := http.StatusInternalServerError, "internal"
	switch {
	case errors.Is(err, tools.ErrUnknownTool):
		code, kind = http.StatusNotFound, "unknown_tool"
	case errors.Is(err, apperr.ErrInput):
		code, kind = http.StatusBadRequest, string(apperr.KindInput)
	case errors.Is(err, apperr.ErrFetch):
		code, kind = http.StatusBadGateway, string(apperr.KindFetch)
	case errors.Is(err, apperr.ErrParse):
		code, kind = http.StatusUnprocessableEntity, string(apperr.KindParse)
	case errors.Is(err, apperr.ErrContent):
		code, kind = http.StatusNotFound, string(apperr.KindContent)
	}
	if code == http.StatusInternalServerError {
		s.log.Error("request failed", "error", err)
	} else {
		s.log.Warn("request rejected", "kind", kind, "error", err)
	}
	jsonError(w, apperr.Message(err), kind, code)
}

// writeJSON encodes v once so the body can be hashed into an ETag. A request
// whose If-None-Match matches gets 304 with no body.
func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	var buf bytes.Buffer
	if err := render.JSON(&buf, v, false); err != nil {
		jsonError(w, "failed to encode response", "internal", http.StatusInternalServerError)
		return
	}

	etag := `"` + contentHashHex(buf.Bytes()) + `"`
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(buf.Bytes())
}

// contentHashHex computes SHA-256 of content and returns hex string.
func contentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
