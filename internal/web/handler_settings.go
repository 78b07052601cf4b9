package web

import (
	"net/http"

	"github.com/jdelacruz/tindahan/internal/domain"
)

// settingsPayload carries the settings save. Threshold is a pointer so a
// request omitting it falls back to the default rather than writing zero.
type settingsPayload struct {
	Threshold *int   `json:"threshold"`
	Theme     string `json:"theme" validate:"omitempty,oneof=light dark"`
}

func (s *Server) handleGetSettings(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.store.Settings())
}

func (s *Server) handleSaveSettings(w http.ResponseWriter, r *http.Request) {
	var payload settingsPayload
	if !s.decodeBody(w, r, &payload) {
		return
	}

	threshold := domain.DefaultThreshold
	if payload.Threshold != nil {
		threshold = *payload.Threshold
	}

	settings, err := s.store.SaveSettings(r.Context(), threshold)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if payload.Theme != "" {
		settings, err = s.store.SetTheme(r.Context(), payload.Theme)
		if err != nil {
			s.writeError(w, err)
			return
		}
	}
	s.writeJSON(w, http.StatusOK, settings)
}
