// SPDX-License-Identifier: MIT

// Package metrics exports radar solver runs as Prometheus metrics.
//
// Collector implements radar.Observer, so wiring it in is a matter of setting
// radar.Options.Observer. Metrics are registered on the caller's registry; a
// batch CLI run typically dumps them with WriteTextfile for the node-exporter
// textfile collector.
//
//	reg := prometheus.NewRegistry()
//	opts := radar.DefaultOptions()
//	opts.Observer = metrics.New(reg)
//	// ... radar.Detect(ctx, X, A, opts, top)
//	_ = metrics.WriteTextfile("radar.prom", reg)
package metrics
