// Package analytics observes tool invocations through the registration-time
// wrapper contract: every handler is decorated with a closure that emits one
// usage event (tool, group, duration, outcome) to the configured collector.
// Emission is fire-and-forget from a background worker - a slow or dead
// collector never delays or fails a tool call.
package analytics
