// Package compare runs several search algorithms over the same map and
// endpoints and collects their Results side by side.
//
// Runs are sequential by default. Config.Parallel starts one goroutine per
// algorithm (errgroup); every run still owns its own frontier, explored
// set and trace, and only the shared read-only graph crosses goroutines.
// Paths and metrics are identical in both modes; only ExecutionTime differs.
//
// Every comparison gets a random ID which tags its log lines and exports.
package compare
