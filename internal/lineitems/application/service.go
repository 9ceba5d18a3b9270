package application

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"sort"
	"time"

	lineitems "fabline/internal/lineitems/domain"
	"fabline/internal/observability/metrics"
)

// Service generates line item sets and persists them against a job. The
// generators are pure; the service only adds storage and bookkeeping.
type Service struct {
	jobs   lineitems.JobRepository
	items  lineitems.ItemRepository
	logger *log.Logger
}

// NewService constructs a line item service.
func NewService(jobs lineitems.JobRepository, items lineitems.ItemRepository, logger *log.Logger) (*Service, error) {
	if jobs == nil || items == nil {
		return nil, errors.New("lineitems service: nil repository")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Service{jobs: jobs, items: items, logger: logger}, nil
}

// CreateJob registers a job to hang generations off.
func (s *Service) CreateJob(ctx context.Context, jobNumber, jobName, drafter string) (*lineitems.Job, error) {
	if jobNumber == "" {
		return nil, &lineitems.FieldError{Field: "job_number", Reason: "is required"}
	}
	job := &lineitems.Job{
		ID:        newID(),
		JobNumber: jobNumber,
		JobName:   jobName,
		Drafter:   drafter,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.jobs.Insert(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// GetJob loads one job by id.
func (s *Service) GetJob(ctx context.Context, jobID string) (*lineitems.Job, error) {
	return s.jobs.Get(ctx, jobID)
}

// ListJobs returns all registered jobs.
func (s *Service) ListJobs(ctx context.Context) ([]lineitems.Job, error) {
	return s.jobs.List(ctx)
}

// SaveHeater generates the heater set for a job and appends it.
func (s *Service) SaveHeater(ctx context.Context, jobID string, cfg lineitems.HeaterConfig) ([]lineitems.LineItem, error) {
	start := time.Now()
	rows, err := s.saveGeneration(ctx, jobID, func() ([]lineitems.LineItem, error) {
		return lineitems.GenerateHeater(cfg)
	})
	metrics.ObserveAssembly(string(lineitems.KindHeater), start, err)
	return rows, err
}

// SaveTank generates the tank set for a job and appends it.
func (s *Service) SaveTank(ctx context.Context, jobID string, cfg lineitems.TankConfig) ([]lineitems.LineItem, error) {
	start := time.Now()
	rows, err := s.saveGeneration(ctx, jobID, func() ([]lineitems.LineItem, error) {
		return lineitems.GenerateTank(cfg)
	})
	metrics.ObserveAssembly(string(lineitems.KindTank), start, err)
	return rows, err
}

// SavePump generates the pump set for a job and appends it.
func (s *Service) SavePump(ctx context.Context, jobID string, cfg lineitems.PumpConfig) ([]lineitems.LineItem, error) {
	start := time.Now()
	rows, err := s.saveGeneration(ctx, jobID, func() ([]lineitems.LineItem, error) {
		return lineitems.GeneratePump(cfg)
	})
	metrics.ObserveAssembly(string(lineitems.KindPump), start, err)
	return rows, err
}

func (s *Service) saveGeneration(ctx context.Context, jobID string, generate func() ([]lineitems.LineItem, error)) ([]lineitems.LineItem, error) {
	if jobID == "" {
		return nil, lineitems.ErrJobNotFound
	}
	if _, err := s.jobs.Get(ctx, jobID); err != nil {
		return nil, err
	}
	rows, err := generate()
	if err != nil {
		return nil, err
	}
	if err := s.items.Append(ctx, jobID, rows); err != nil {
		return nil, err
	}
	s.logger.Printf("lineitems: saved %d rows for job %s", len(rows), jobID)
	return rows, nil
}

// ListJobItems returns all items saved against a job, ordered the way the
// report reads: numeric-aware part number ascending.
func (s *Service) ListJobItems(ctx context.Context, jobID string) ([]lineitems.StoredItem, error) {
	if _, err := s.jobs.Get(ctx, jobID); err != nil {
		return nil, err
	}
	items, err := s.items.ListByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return lineitems.ComparePartNumbers(items[i].PartNumber, items[j].PartNumber) < 0
	})
	return items, nil
}

func newID() string {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return hex.EncodeToString(buf[:])
	}
	buf[6] = (buf[6] & 0x0f) | 0x40
	buf[8] = (buf[8] & 0x3f) | 0x80
	return hex.EncodeToString(buf[:])
}
