package collector

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/mobiledetect/pkg/logger"
)

const defaultListLimit = 20

// Handler serves the stored profiles:
//
//	GET /          recent profiles as JSON (?limit=N)
//	GET /{token}   one profile, HTML panel or JSON with Accept: application/json
func (c *Collector) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/", c.handleList)
	r.Get("/{token}", c.handleProfile)
	return r
}

func (c *Collector) handleList(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	profiles, err := c.store.List(r.Context(), limit)
	if err != nil {
		c.logger.ErrorContext(r.Context(), "failed to list profiles", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, profiles)
}

func (c *Collector) handleProfile(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	p, err := c.store.Get(r.Context(), token)
	if errors.Is(err, ErrProfileNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		c.logger.ErrorContext(r.Context(), "failed to load profile", logger.ProfileToken(token), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		writeJSON(w, p)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := Panel(p).Render(r.Context(), w); err != nil {
		c.logger.ErrorContext(r.Context(), "failed to render panel", logger.ProfileToken(token), logger.Error(err))
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
