// Package metrics records pipeline observations.
//
// Components receive a Recorder and default to NoopRecorder, so metrics can
// be enabled by swapping the implementation without nil checks at call sites:
//
//	reg := prometheus.NewRegistry()
//	gen := pipeline.New(cfg).WithRecorder(metrics.NewPrometheusRecorder(reg))
//	http.Handle("/metrics", metrics.HTTPHandler(reg))
package metrics
