/*
Package observability records what a single invocation did.

Each run owns a private Prometheus registry: operation outcomes, durations and
output sizes. A run can export it in the text exposition format so a
node-exporter textfile collector (or a CI job) can pick it up after the process
exits.
*/
package observability
