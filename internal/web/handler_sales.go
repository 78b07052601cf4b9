package web

import (
	"net/http"
	"strconv"
)

type salePayload struct {
	ItemID int64 `json:"item_id" validate:"required"`
	Qty    int   `json:"qty" validate:"gt=0"`
}

const defaultRecentSales = 10

func (s *Server) handleRecordSale(w http.ResponseWriter, r *http.Request) {
	var payload salePayload
	if !s.decodeBody(w, r, &payload) {
		return
	}

	sale, err := s.store.RecordSale(r.Context(), payload.ItemID, payload.Qty)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, sale)
}

func (s *Server) handleListSales(w http.ResponseWriter, r *http.Request) {
	limit := defaultRecentSales
	if n, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && n >= 0 {
		limit = n
	}
	s.writeJSON(w, http.StatusOK, s.store.RecentSales(limit))
}
