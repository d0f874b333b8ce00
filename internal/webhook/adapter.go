package webhook

import (
	"encoding/json"
	"io"
	"net/http"
)

// HTTPHandler adapts a Handler to net/http. Any router that can mount an
// http.Handler (chi, stdlib mux, gorilla, ...) uses this one adapter; the
// dispatch logic lives entirely in Handler.
//
// The adapter owns the JSON boundary: it reads the body (capped at
// maxBodySize, <=0 for the default), decodes it, and serializes the
// handler's Response with its 200/400 status mapping.
func HTTPHandler(h *Handler, maxBodySize int64) http.HandlerFunc {
	if maxBodySize <= 0 {
		maxBodySize = defaultMaxBodySize
	}
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize+1))
		if err != nil {
			writeResponse(w, errorResponse("failed to read request body"))
			return
		}
		if int64(len(body)) > maxBodySize {
			respondJSON(w, http.StatusRequestEntityTooLarge, errorResponse("payload too large"))
			return
		}

		var decoded any
		if err := json.Unmarshal(body, &decoded); err != nil {
			writeResponse(w, errorResponse("request body must be valid JSON"))
			return
		}

		resp := h.Handle(r.Context(), decoded, r.Header.Get("Authorization"))
		writeResponse(w, resp)
	}
}

func writeResponse(w http.ResponseWriter, resp Response) {
	respondJSON(w, resp.HTTPStatus(), resp)
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
