/*
Package metrics exposes byteflip scan counters as Prometheus metrics.

A Collector owns its own registry so that several scans in one process (or in
tests) never collide on the global default registry. The registry can be
written in the node_exporter textfile format with WriteTextfile.
*/
package metrics
