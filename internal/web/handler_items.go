package web

import (
	"net/http"
	"strconv"

	"github.com/jdelacruz/tindahan/internal/query"
)

type itemPayload struct {
	Name     string  `json:"name" validate:"required"`
	Category string  `json:"category" validate:"required"`
	Stock    int     `json:"stock" validate:"gte=0"`
	Price    float64 `json:"price" validate:"gte=0"`
}

type restockPayload struct {
	Amount int `json:"amount" validate:"gt=0"`
}

func (s *Server) itemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid item id", Kind: "validation"})
		return 0, false
	}
	return id, true
}

// handleListItems returns one page of the filtered, sorted inventory view.
// Query params: q, category, sort (name|category|stock|price), dir
// (asc|desc), page.
func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	dir := query.Asc
	if q.Get("dir") == string(query.Desc) {
		dir = query.Desc
	}
	page := 1
	if p, err := strconv.Atoi(q.Get("page")); err == nil {
		page = p
	}

	items := query.Filter(s.store.Items(), q.Get("q"), q.Get("category"))
	items = query.Sort(items, query.SortKey(q.Get("sort")), dir)
	s.writeJSON(w, http.StatusOK, query.Paginate(items, page))
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var payload itemPayload
	if !s.decodeBody(w, r, &payload) {
		return
	}

	item, err := s.store.AddItem(r.Context(), payload.Name, payload.Category, payload.Stock, payload.Price)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, item)
}

func (s *Server) handleEditItem(w http.ResponseWriter, r *http.Request) {
	id, ok := s.itemID(w, r)
	if !ok {
		return
	}
	var payload itemPayload
	if !s.decodeBody(w, r, &payload) {
		return
	}

	item, err := s.store.EditItem(r.Context(), id, payload.Name, payload.Category, payload.Stock, payload.Price)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := s.itemID(w, r)
	if !ok {
		return
	}

	if err := s.store.DeleteItem(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRestockItem(w http.ResponseWriter, r *http.Request) {
	id, ok := s.itemID(w, r)
	if !ok {
		return
	}
	var payload restockPayload
	if !s.decodeBody(w, r, &payload) {
		return
	}

	item, err := s.store.RestockItem(r.Context(), id, payload.Amount)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	categories := s.store.Categories()
	if categories == nil {
		categories = []string{}
	}
	s.writeJSON(w, http.StatusOK, categories)
}
