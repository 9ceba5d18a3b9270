package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	coilapp "fabline/internal/coil/application"
	coil "fabline/internal/coil/domain"
)

// Handler serves coil specification lookups.
type Handler struct {
	catalog *coilapp.Catalog
}

// NewHandler constructs a Handler.
func NewHandler(catalog *coilapp.Catalog) (*Handler, error) {
	if catalog == nil {
		return nil, errors.New("coil handler: nil catalog")
	}
	return &Handler{catalog: catalog}, nil
}

// ServeHTTP routes coil requests.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if r.URL.Path == "/api/v1/coils" || r.URL.Path == "/api/v1/coils/" {
		h.handleList(w, r)
		return
	}
	if strings.HasPrefix(r.URL.Path, "/api/v1/coils/") {
		partNumber := strings.TrimPrefix(r.URL.Path, "/api/v1/coils/")
		h.handleFind(w, r, partNumber)
		return
	}
	w.WriteHeader(http.StatusNotFound)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	filter := coilapp.Filter{
		Material:      r.URL.Query().Get("material"),
		ComponentType: r.URL.Query().Get("component"),
	}
	specs, err := h.catalog.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"coils": toViews(specs)})
}

func (h *Handler) handleFind(w http.ResponseWriter, r *http.Request, partNumber string) {
	spec, err := h.catalog.Find(r.Context(), partNumber)
	if errors.Is(err, coil.ErrSpecNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(toView(*spec))
}

type specView struct {
	PartNumber     string  `json:"part_number"`
	Description    string  `json:"description"`
	MaterialType   string  `json:"material_type"`
	DiameterInches float64 `json:"diameter_inches"`
	ComponentType  string  `json:"component_type"`
	LengthInches   float64 `json:"length_inches"`
	SquareFeet     float64 `json:"square_feet"`
	Gauge          string  `json:"gauge"`
	SheetSize      string  `json:"sheet_size"`
}

func toView(spec coil.Specification) specView {
	return specView{
		PartNumber:     spec.PartNumber,
		Description:    spec.Description,
		MaterialType:   string(spec.MaterialType),
		DiameterInches: spec.DiameterInches,
		ComponentType:  string(spec.ComponentType),
		LengthInches:   spec.LengthInches,
		SquareFeet:     spec.SquareFeet,
		Gauge:          spec.Gauge,
		SheetSize:      spec.SheetSize,
	}
}

func toViews(specs []coil.Specification) []specView {
	views := make([]specView, 0, len(specs))
	for _, spec := range specs {
		views = append(views, toView(spec))
	}
	return views
}
