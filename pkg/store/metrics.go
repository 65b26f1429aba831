package store

import "github.com/prometheus/client_golang/prometheus"

// WriteCount counts the rows written by committed transactions.
//
// It is not registered by the store, the router registers it together
// with the HTTP metrics.
var WriteCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "store_writes_total",
		Help: "How many rows were written by committed transactions, partitioned by table and operation.",
	},
	[]string{"table", "op"},
)
