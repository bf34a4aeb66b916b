/*
Package observability provides tools for monitoring the arbor parser.

It turns parser lifecycle events into Prometheus metrics and structured log
records. Both are delivered as domain.LifecycleHooks and can be combined with
LifecycleHooks.Merge before being handed to arbor.WithLifecycleHooks.
*/
package observability
