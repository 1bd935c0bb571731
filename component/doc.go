// Package component defines the lifecycle contract for long-lived parts of
// a puzzle process, such as a configured HTTP client, and a Registry that
// starts them in order and stops them in reverse.
package component
