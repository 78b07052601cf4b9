package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/jdelacruz/tindahan/internal/domain"
	"github.com/jdelacruz/tindahan/internal/query"
)

func (s *Server) handleDashboard(w http.ResponseWriter, _ *http.Request) {
	metrics := query.Dashboard(s.store.Items(), s.store.Sales(), s.store.Settings().Threshold, time.Now())
	s.writeJSON(w, http.StatusOK, metrics)
}

func (s *Server) handleWeeklySeries(w http.ResponseWriter, _ *http.Request) {
	series := query.WeeklySeries(s.store.Sales(), time.Now())
	s.writeJSON(w, http.StatusOK, series)
}

// handleLowStock reports items at or below the low-stock cutoff. The saved
// threshold applies unless the request overrides it with ?threshold=.
func (s *Server) handleLowStock(w http.ResponseWriter, r *http.Request) {
	threshold := s.store.Settings().Threshold
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid threshold", Kind: "validation"})
			return
		}
		threshold = n
	}

	low := query.LowStock(s.store.Items(), threshold)
	if low == nil {
		low = []domain.Item{}
	}
	s.writeJSON(w, http.StatusOK, low)
}

func (s *Server) handleValuation(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]float64{"value": query.Valuation(s.store.Items())})
}
