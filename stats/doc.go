// Package stats times the three phases of a single CLI run (graph read,
// search, reconstruction) and appends one row per run to the CSV report
// file named in spec.md §6, grounded on the reference implementation's
// include/stats/stats.h collector. Prometheus counters/gauges and an
// OpenTelemetry span for each bracketed phase (graph read, search) are
// optional, enabled only when a Collector is constructed
// WithMetrics/WithTracing. The search/reconstruction split itself comes
// from the engine via RecordEngineTimings.
package stats
