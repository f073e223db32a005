package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	UsersRegistered prometheus.Counter
	LoginsSucceeded prometheus.Counter
	LoginsFailed    prometheus.Counter
	ItemsCreated    prometheus.Counter
	ItemsUpdated    prometheus.Counter
	ItemsDeleted    prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		UsersRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "item_management_users_registered_total",
			Help: "Total number of users registered",
		}),
		LoginsSucceeded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "item_management_logins_succeeded_total",
			Help: "Total number of successful logins",
		}),
		LoginsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "item_management_logins_failed_total",
			Help: "Total number of failed login attempts",
		}),
		ItemsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "item_management_items_created_total",
			Help: "Total number of items created",
		}),
		ItemsUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "item_management_items_updated_total",
			Help: "Total number of items updated",
		}),
		ItemsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "item_management_items_deleted_total",
			Help: "Total number of items deleted",
		}),
	}
}
