package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "tipjar"

// Service owns a private registry so that several servers (e.g. in tests)
// can live in one process without duplicate registration panics.
type Service struct {
	Registry *prometheus.Registry

	UpstreamReadFailures *prometheus.CounterVec
	WalletsDerived       prometheus.Counter
	TransferRequests     prometheus.Counter
}

func New() (*Service, error) {
	reg := prometheus.NewRegistry()

	s := &Service{
		Registry: reg,
		UpstreamReadFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_read_failures_total",
			Help:      "Balance reads that failed and were reported as zero.",
		}, []string{"asset"}),
		WalletsDerived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wallets_derived_total",
			Help:      "Deterministic wallets derived via the API.",
		}),
		TransferRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transfer_requests_total",
			Help:      "Transfer requests prepared for a signing agent.",
		}),
	}

	for _, c := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		s.UpstreamReadFailures,
		s.WalletsDerived,
		s.TransferRequests,
	} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "failed to register metrics collector")
		}
	}

	return s, nil
}

// ObserveReadFailure matches balance.FailureHook.
func (s *Service) ObserveReadFailure(asset string, _ error) {
	s.UpstreamReadFailures.WithLabelValues(asset).Inc()
}
