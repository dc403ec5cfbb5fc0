package internal

import "github.com/prometheus/client_golang/prometheus"

var (
	ValidationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gophercash_validations_total",
			Help: "Total number of committed order validations",
		},
		[]string{"decision", "method"},
	)

	ValidationFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gophercash_validation_failures_total",
			Help: "Total number of validation requests refused before any write",
		},
		[]string{"code"},
	)

	CreditAdvisoriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gophercash_credit_advisories_total",
			Help: "Total number of credit advisories attached to approvals",
		},
		[]string{"code"},
	)

	SettlementOutcomesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gophercash_settlement_outcomes_total",
			Help: "Total number of orders evaluated by the cash reconciler, by outcome",
		},
		[]string{"outcome"},
	)

	CashCollectedAmount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gophercash_cash_recorded_amount_total",
			Help: "Cash amount recorded by collection channel",
		},
		[]string{"channel"},
	)
)

func init() {
	prometheus.MustRegister(ValidationsTotal)
	prometheus.MustRegister(ValidationFailuresTotal)
	prometheus.MustRegister(CreditAdvisoriesTotal)
	prometheus.MustRegister(SettlementOutcomesTotal)
	prometheus.MustRegister(CashCollectedAmount)
}
