// Package progress provides ready-made iterative.Reporter sinks:
//
//   - Logger writes one structured zap entry per report.
//   - Recorder keeps the history in memory and renders a convergence chart
//     (iteration vs. metric, log scale) with gonum/plot.
//   - Tee fans a report out to several sinks.
//
// Sinks are invoked synchronously by the solving goroutine. A Recorder is
// guarded by a mutex so it may be read (History, WritePlot) from another
// goroutine while a solve is running.
package progress
