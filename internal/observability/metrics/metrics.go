// Package metrics registers the Prometheus instruments for the line item
// and coil import services.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "fabline_"

	resultSuccess = "success"
	resultError   = "error"
)

var (
	registerOnce sync.Once

	assemblyTotal   *prometheus.CounterVec
	assemblyLatency *prometheus.HistogramVec

	reconcileSheets *prometheus.CounterVec
	reconcileRows   *prometheus.CounterVec
	reconcileRuns   *prometheus.CounterVec
)

// Init registers the metric vectors. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		assemblyTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "assembly_total",
				Help: "Line item generations by family and result",
			},
			[]string{"family", "result"},
		)
		assemblyLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "assembly_duration_seconds",
				Help:    "Line item generation latency by family",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"family"},
		)
		reconcileSheets = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "reconcile_sheets_total",
				Help: "Reconciled legacy sheets by result",
			},
			[]string{"result"},
		)
		reconcileRows = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "reconcile_rows_total",
				Help: "Reconciled legacy rows by outcome",
			},
			[]string{"outcome"},
		)
		reconcileRuns = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "reconcile_runs_total",
				Help: "Full-replace reconciliation runs by result",
			},
			[]string{"result"},
		)

		prometheus.MustRegister(
			assemblyTotal,
			assemblyLatency,
			reconcileSheets,
			reconcileRows,
			reconcileRuns,
		)
	})
}

// ObserveAssembly records one generation call.
func ObserveAssembly(family string, start time.Time, err error) {
	if assemblyTotal == nil {
		return
	}
	assemblyTotal.WithLabelValues(family, resultLabel(err)).Inc()
	assemblyLatency.WithLabelValues(family).Observe(time.Since(start).Seconds())
}

// ObserveReconcileSheet records one sheet outcome.
func ObserveReconcileSheet(err error) {
	if reconcileSheets == nil {
		return
	}
	reconcileSheets.WithLabelValues(resultLabel(err)).Inc()
}

// ObserveReconcileRow records one row outcome (imported, or a skip reason).
func ObserveReconcileRow(outcome string) {
	if reconcileRows == nil {
		return
	}
	reconcileRows.WithLabelValues(outcome).Inc()
}

// ObserveReconcileRun records one full-replace import run.
func ObserveReconcileRun(err error) {
	if reconcileRuns == nil {
		return
	}
	reconcileRuns.WithLabelValues(resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	if err != nil {
		return resultError
	}
	return resultSuccess
}
