// Package metrics provides operational metrics collection.
//
// # Metric Categories
//
//   - Upstream calls: users API call counts by operation and outcome
//   - Latency: users API call duration histograms by operation
//   - HTTP: admin handler request counts by route and status class
//
// # Integration
//
// Metrics live in a dedicated Prometheus registry owned by Registry and are
// exposed in Prometheus text format through Registry.Handler. The admin
// server mounts that handler outside the authenticated route tree so standard
// monitoring infrastructure can scrape it.
package metrics
