// Package metrics defines the custom Prometheus metrics for the store-rating
// API. It is the single source of truth for metric names, labels, and help
// strings; HTTP-level request metrics come from the echoprometheus middleware
// registered in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storerating"

// RegistrationsTotal counts account creations, self-service and admin alike.
// Label:
//   - role: the role the account was created with (ADMIN/USER/OWNER)
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RatingsTotal counts rating submissions and updates.
// Label:
//   - outcome: "created", "updated", or "conflict" (duplicate first submission)
var RatingsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ratings_total",
		Help:      "Total number of rating operations, by outcome.",
	},
	[]string{"outcome"},
)

// StoresCreatedTotal counts stores provisioned through the admin flows.
var StoresCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stores_created_total",
		Help:      "Total number of stores created.",
	},
)
