package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the sale session.
// Tracks confirmed transactions, sales volume and export/import outcomes.
type Metrics struct {
	TransactionsConfirmed prometheus.Counter
	TransactionsCancelled prometheus.Counter
	ItemsSold             prometheus.Counter
	SalesAmount           prometheus.Counter
	Persistence           *prometheus.CounterVec
	PersistenceDuration   *prometheus.HistogramVec
	DatasetSize           *prometheus.GaugeVec
}

// New creates a Metrics instance registered with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		TransactionsConfirmed: f.NewCounter(prometheus.CounterOpts{
			Name: "yardsale_transactions_confirmed_total",
			Help: "Total number of confirmed transactions",
		}),
		TransactionsCancelled: f.NewCounter(prometheus.CounterOpts{
			Name: "yardsale_transactions_cancelled_total",
			Help: "Total number of cancelled transactions",
		}),
		ItemsSold: f.NewCounter(prometheus.CounterOpts{
			Name: "yardsale_items_sold_total",
			Help: "Total number of sold items recorded",
		}),
		SalesAmount: f.NewCounter(prometheus.CounterOpts{
			Name: "yardsale_sales_amount_total",
			Help: "Sum of confirmed sale amounts",
		}),
		Persistence: f.NewCounterVec(prometheus.CounterOpts{
			Name: "yardsale_persistence_operations_total",
			Help: "Export and import operations by tier and outcome",
		}, []string{"op", "tier", "outcome"}),
		PersistenceDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "yardsale_persistence_duration_seconds",
			Help:    "Duration of export and import operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"op"}),
		DatasetSize: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "yardsale_dataset_entities",
			Help: "Number of entities per collection",
		}, []string{"collection"}),
	}
}

// ObserveConfirmed records a confirmed transaction.
// A nil receiver records nothing, so callers need not check.
func (m *Metrics) ObserveConfirmed(items int, total float64) {
	if m == nil {
		return
	}
	m.TransactionsConfirmed.Inc()
	m.ItemsSold.Add(float64(items))
	m.SalesAmount.Add(total)
}

// ObserveCancelled records a cancelled transaction.
func (m *Metrics) ObserveCancelled() {
	if m == nil {
		return
	}
	m.TransactionsCancelled.Inc()
}

// ObservePersistence records an export or import.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObservePersistence(op, tier, outcome string, start time.Time) {
	if m == nil {
		return
	}
	if tier == "" {
		tier = "none"
	}
	m.Persistence.WithLabelValues(op, tier, outcome).Inc()
	m.PersistenceDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// SetDatasetSize publishes the collection sizes.
func (m *Metrics) SetDatasetSize(sellers, quickItems, soldItems int) {
	if m == nil {
		return
	}
	m.DatasetSize.WithLabelValues("sellers").Set(float64(sellers))
	m.DatasetSize.WithLabelValues("quick_items").Set(float64(quickItems))
	m.DatasetSize.WithLabelValues("sold_items").Set(float64(soldItems))
}
