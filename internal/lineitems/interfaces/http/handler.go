package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"fabline/internal/audit"
	"fabline/internal/auth"
	lineitemsapp "fabline/internal/lineitems/application"
	lineitems "fabline/internal/lineitems/domain"
	"fabline/internal/lineitems/interfaces"
	"fabline/internal/options"
)

// Handler serves job and line item endpoints.
type Handler struct {
	service     *lineitemsapp.Service
	defaults    options.Defaults
	auditLogger audit.Logger
}

// NewHandler constructs a Handler. The defaults supply per-family dash
// bases when a request leaves the dash blank.
func NewHandler(service *lineitemsapp.Service, defaults options.Defaults, auditLogger audit.Logger) (*Handler, error) {
	if service == nil {
		return nil, errors.New("lineitems handler: nil service")
	}
	return &Handler{service: service, defaults: defaults, auditLogger: auditLogger}, nil
}

// ServeHTTP routes job requests.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/api/v1/jobs" || r.URL.Path == "/api/v1/jobs/" {
		switch r.Method {
		case http.MethodPost:
			h.handleCreateJob(w, r)
		case http.MethodGet:
			h.handleListJobs(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
		return
	}

	if !strings.HasPrefix(r.URL.Path, "/api/v1/jobs/") {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/api/v1/jobs/"), "/")
	if len(parts) != 2 || parts[0] == "" {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	jobID := parts[0]

	switch {
	case parts[1] == "heater" && r.Method == http.MethodPost:
		h.handleSaveHeater(w, r, jobID)
	case parts[1] == "tank" && r.Method == http.MethodPost:
		h.handleSaveTank(w, r, jobID)
	case parts[1] == "pump" && r.Method == http.MethodPost:
		h.handleSavePump(w, r, jobID)
	case parts[1] == "items" && r.Method == http.MethodGet:
		h.handleListItems(w, r, jobID)
	case parts[1] == "export" && r.Method == http.MethodGet:
		h.handleExport(w, r, jobID)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *Handler) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req struct {
		JobNumber string `json:"job_number"`
		JobName   string `json:"job_name"`
		Drafter   string `json:"drafter"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	job, err := h.service.CreateJob(r.Context(), req.JobNumber, req.JobName, req.Drafter)
	if err != nil {
		respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(job)
	h.logAudit(r, job.ID, "job.create", map[string]any{"job_number": req.JobNumber})
}

func (h *Handler) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.service.ListJobs(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"jobs": jobs})
}

func (h *Handler) handleSaveHeater(w http.ResponseWriter, r *http.Request, jobID string) {
	var req struct {
		JobNumber      string  `json:"job_number"`
		Dash           string  `json:"dash"`
		DiameterIn     int     `json:"diameter_in"`
		HeightIn       int     `json:"height_in"`
		StackDiamIn    int     `json:"stack_diam_in"`
		FlangeInletIn  int     `json:"flange_inlet_in"`
		GasTrainSizeIn int     `json:"gas_train_size_in"`
		Model          string  `json:"model"`
		Material       string  `json:"material"`
		GasTrainMount  string  `json:"gas_train_mount"`
		BTUInMMBTU     float64 `json:"btu_mmbtu"`
		Hand           string  `json:"hand"`
		Label          string  `json:"label"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	cfg := lineitems.HeaterConfig{
		JobNumber:      req.JobNumber,
		Dash:           defaultDash(req.Dash, h.defaults.Heater.Dash, lineitems.DefaultHeaterDash),
		DiameterIn:     req.DiameterIn,
		HeightIn:       req.HeightIn,
		StackDiamIn:    req.StackDiamIn,
		FlangeInletIn:  req.FlangeInletIn,
		GasTrainSizeIn: req.GasTrainSizeIn,
		Model:          req.Model,
		Material:       req.Material,
		GasTrainMount:  req.GasTrainMount,
		BTUInMMBTU:     req.BTUInMMBTU,
		Hand:           req.Hand,
		Label:          req.Label,
	}
	rows, err := h.service.SaveHeater(r.Context(), jobID, cfg)
	if err != nil {
		respondError(w, err)
		return
	}
	respondRows(w, rows)
	h.logAudit(r, jobID, "lineitems.heater.save", map[string]any{"job_number": cfg.JobNumber, "dash": cfg.Dash, "rows": len(rows)})
}

func (h *Handler) handleSaveTank(w http.ResponseWriter, r *http.Request, jobID string) {
	var req struct {
		JobNumber  string `json:"job_number"`
		Dash       string `json:"dash"`
		DiameterIn int    `json:"diameter_in"`
		HeightFt   int    `json:"height_ft"`
		TypeCode   string `json:"type_code"`
		Material   string `json:"material"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	cfg := lineitems.TankConfig{
		JobNumber:  req.JobNumber,
		Dash:       defaultDash(req.Dash, h.defaults.Tank.Dash, lineitems.DefaultTankDash),
		DiameterIn: req.DiameterIn,
		HeightFt:   req.HeightFt,
		TypeCode:   req.TypeCode,
		Material:   req.Material,
	}
	rows, err := h.service.SaveTank(r.Context(), jobID, cfg)
	if err != nil {
		respondError(w, err)
		return
	}
	respondRows(w, rows)
	h.logAudit(r, jobID, "lineitems.tank.save", map[string]any{"job_number": cfg.JobNumber, "dash": cfg.Dash, "rows": len(rows)})
}

func (h *Handler) handleSavePump(w http.ResponseWriter, r *http.Request, jobID string) {
	var req struct {
		JobNumber  string  `json:"job_number"`
		Dash       string  `json:"dash"`
		PumpCount  string  `json:"pump_count"`
		Pressure   string  `json:"pressure"`
		TypeCode   string  `json:"type_code"`
		HP         float64 `json:"hp"`
		Material   string  `json:"material"`
		FrameLenIn int     `json:"frame_len_in"`
		FrameWIn   int     `json:"frame_w_in"`
		FrameHIn   int     `json:"frame_h_in"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	cfg := lineitems.PumpConfig{
		JobNumber:  req.JobNumber,
		Dash:       defaultDash(req.Dash, h.defaults.Pump.Dash, lineitems.DefaultPumpDash),
		PumpCount:  req.PumpCount,
		Pressure:   req.Pressure,
		TypeCode:   req.TypeCode,
		HP:         req.HP,
		Material:   req.Material,
		FrameLenIn: req.FrameLenIn,
		FrameWIn:   req.FrameWIn,
		FrameHIn:   req.FrameHIn,
	}
	rows, err := h.service.SavePump(r.Context(), jobID, cfg)
	if err != nil {
		respondError(w, err)
		return
	}
	respondRows(w, rows)
	h.logAudit(r, jobID, "lineitems.pump.save", map[string]any{"job_number": cfg.JobNumber, "dash": cfg.Dash, "rows": len(rows)})
}

func (h *Handler) handleListItems(w http.ResponseWriter, r *http.Request, jobID string) {
	items, err := h.service.ListJobItems(r.Context(), jobID)
	if err != nil {
		respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"items": items})
}

// handleExport streams the job's items as an ERP import workbook or a
// printable PDF, selected by ?format=.
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request, jobID string) {
	job, err := h.service.GetJob(r.Context(), jobID)
	if err != nil {
		respondError(w, err)
		return
	}
	items, err := h.service.ListJobItems(r.Context(), jobID)
	if err != nil {
		respondError(w, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "xlsx"
	}
	switch format {
	case "xlsx":
		data, err := interfaces.BuildImportXLSX(job, items)
		if err != nil {
			respondError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=job-%s.xlsx", job.JobNumber))
		_, _ = w.Write(data)
	case "pdf":
		data, err := interfaces.BuildJobPDF(job, items)
		if err != nil {
			respondError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=job-%s.pdf", job.JobNumber))
		_, _ = w.Write(data)
	default:
		http.Error(w, "format must be xlsx or pdf", http.StatusBadRequest)
	}
}

func (h *Handler) logAudit(r *http.Request, jobID, action string, meta map[string]any) {
	if h.auditLogger == nil {
		return
	}
	payload, _ := json.Marshal(meta)
	_ = h.auditLogger.Log(r.Context(), audit.Entry{
		Actor:        auth.SubjectFromContext(r.Context()),
		Role:         string(auth.RoleFromContext(r.Context())),
		Action:       action,
		ResourceType: "job",
		ResourceID:   jobID,
		Metadata:     payload,
		IP:           audit.ClientIP(r),
		UserAgent:    r.UserAgent(),
	})
}

func defaultDash(dash, configured, fallback string) string {
	if dash != "" {
		return dash
	}
	if configured != "" {
		return configured
	}
	return fallback
}

func respondRows(w http.ResponseWriter, rows []lineitems.LineItem) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{"items": rows})
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, lineitems.ErrJobNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, lineitems.ErrConfiguration):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
