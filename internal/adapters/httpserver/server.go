package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/TypoMastr/bazarteuco/internal/domain"
	"github.com/TypoMastr/bazarteuco/internal/nav"
	"github.com/TypoMastr/bazarteuco/internal/usecase"
)

type Server struct {
	mux        *http.ServeMux
	products   *usecase.ProductUC
	categories *usecase.CategoryUC
	dashboard  *usecase.DashboardUC
	auth       *usecase.AuthUC
	sales      domain.SaleRepo

	// the console is single-user; one navigator covers the session
	navigator *nav.Navigator
}

func New(p *usecase.ProductUC, c *usecase.CategoryUC, d *usecase.DashboardUC, a *usecase.AuthUC, sales domain.SaleRepo, navigator *nav.Navigator) http.Handler {
	s := &Server{
		mux:        http.NewServeMux(),
		products:   p,
		categories: c,
		dashboard:  d,
		auth:       a,
		sales:      sales,
		navigator:  navigator,
	}
	s.routes()
	return Chain(s.mux,
		RequestID,
		Recovery,
		Logging,
	)
}

func (s *Server) routes() {
	s.mux.HandleFunc("/api/products", s.apiProducts)
	s.mux.HandleFunc("/api/products/", s.apiProductByID)

	s.mux.HandleFunc("/api/categories", s.apiCategories)
	s.mux.HandleFunc("/api/categories/", s.apiCategoryByID)

	s.mux.HandleFunc("/api/sales", s.apiSales)
	s.mux.HandleFunc("/api/dashboard", s.apiDashboard)

	s.mux.HandleFunc("/api/auth", s.apiAuth)

	s.mux.HandleFunc("/api/view", s.apiView)
	s.mux.HandleFunc("/api/view/", s.apiViewAction)
}

func (s *Server) apiProducts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		list, err := s.products.List(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"items": list, "total": len(list)})
	case http.MethodPost:
		var p domain.Product
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, "json", 400)
			return
		}
		if err := s.products.Create(r.Context(), &p); err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, 201, p)
	default:
		http.Error(w, "method", 405)
	}
}

func (s *Server) apiProductByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "/api/products/")
	if !ok {
		return
	}
	switch r.Method {
	case http.MethodGet:
		p, err := s.products.Get(r.Context(), id)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, 200, p)
	case http.MethodPut:
		var p domain.Product
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, "json", 400)
			return
		}
		if err := s.products.Update(r.Context(), id, &p); err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, 200, p)
	case http.MethodDelete:
		if err := s.products.Delete(r.Context(), id); err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"status": "ok"})
	default:
		http.Error(w, "method", 405)
	}
}

func (s *Server) apiCategories(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		list, err := s.categories.List(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"items": list, "total": len(list)})
	case http.MethodPost:
		var c domain.Category
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			http.Error(w, "json", 400)
			return
		}
		if err := s.categories.Create(r.Context(), &c); err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, 201, c)
	default:
		http.Error(w, "method", 405)
	}
}

func (s *Server) apiCategoryByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "/api/categories/")
	if !ok {
		return
	}
	switch r.Method {
	case http.MethodGet:
		c, err := s.categories.Get(r.Context(), id)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, 200, c)
	case http.MethodPut:
		var c domain.Category
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			http.Error(w, "json", 400)
			return
		}
		if err := s.categories.Update(r.Context(), id, &c); err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, 200, c)
	case http.MethodDelete:
		if err := s.categories.Delete(r.Context(), id); err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"status": "ok"})
	default:
		http.Error(w, "method", 405)
	}
}

func (s *Server) apiSales(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	list, err := s.sales.List(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, 200, map[string]any{"items": list, "total": len(list)})
}

func (s *Server) apiDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	q := r.URL.Query()
	rep, err := s.dashboard.Daily(r.Context(), q.Get("date"))
	if err != nil {
		writeErr(w, err)
		return
	}
	switch strings.ToLower(q.Get("format")) {
	case "csv":
		writeReportCSV(w, rep)
	case "xlsx":
		writeReportXLSX(w, rep)
	default:
		writeJSON(w, 200, rep)
	}
}

func (s *Server) apiAuth(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		ok, err := s.auth.Check()
		if err != nil {
			writeErr(w, err)
			return
		}
		keyID, err := s.auth.KeyID()
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"authenticated": ok, "keyId": keyID})
	case http.MethodPost:
		var req struct {
			KeyID     string `json:"keyId"`
			KeySecret string `json:"keySecret"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "json", 400)
			return
		}
		if err := s.auth.Save(req.KeyID, req.KeySecret); err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"authenticated": true, "keyId": req.KeyID})
	case http.MethodDelete:
		if err := s.auth.Clear(); err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"authenticated": false})
	default:
		http.Error(w, "method", 405)
	}
}

func (s *Server) apiView(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	writeJSON(w, 200, s.navigator.Current())
}

// apiViewAction drives the navigation machine:
// POST /api/view/forward and /api/view/root take a ViewState body,
// POST /api/view/back and /api/view/close take none.
func (s *Server) apiViewAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	action := strings.TrimPrefix(r.URL.Path, "/api/view/")
	switch action {
	case "forward", "root":
		var v nav.ViewState
		if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
			http.Error(w, "json", 400)
			return
		}
		if !v.Valid() {
			http.Error(w, "unknown view", 400)
			return
		}
		if action == "forward" {
			writeJSON(w, 200, s.navigator.Forward(v))
			return
		}
		writeJSON(w, 200, s.navigator.Root(v))
	case "back":
		writeJSON(w, 200, s.navigator.Back())
	case "close":
		writeJSON(w, 200, s.navigator.CloseForm())
	default:
		http.NotFound(w, r)
	}
}

func pathID(w http.ResponseWriter, r *http.Request, prefix string) (uint, bool) {
	idStr := strings.TrimPrefix(r.URL.Path, prefix)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		http.Error(w, "id", 400)
		return 0, false
	}
	return uint(id), true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "not found", 404)
	case errors.Is(err, domain.ErrValidation):
		http.Error(w, err.Error(), 400)
	default:
		log.Error().Err(err).Msg("gateway failure")
		http.Error(w, "gateway error", 500)
	}
}
