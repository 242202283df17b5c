// Package http implements the loopback JSON API of the vault.
//
// Handlers translate requests into typed calls on the service layer and map
// service errors onto status codes. Request tracing, access logging,
// response compression and panic recovery are handled by middleware before
// requests reach the handlers.
package http
