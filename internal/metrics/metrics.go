package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CartOperations counts cart mutations by operation (add, increase, decrease,
// remove, clear) and result (accepted, rejected).
var CartOperations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "storefront_cart_operations_total",
	Help: "Cart operations by operation and result.",
}, []string{"operation", "result"})

// OrdersPlaced counts confirmed checkouts.
var OrdersPlaced = promauto.NewCounter(prometheus.CounterOpts{
	Name: "storefront_orders_placed_total",
	Help: "Orders placed through the checkout confirmation gate.",
})

// GridRequests counts product grid renders.
var GridRequests = promauto.NewCounter(prometheus.CounterOpts{
	Name: "storefront_grid_requests_total",
	Help: "Product grid requests served.",
})
