// Package web serves a component tree over HTTP. The index route delivers
// an empty page shell plus the browser runtime; each WebSocket connection
// gets its own server-side document and mounted tree, mirrored to the
// browser as a patch stream. User interactions come back as event frames
// and dispatch into the component's handlers.
//
// Sessions are isolated: one document, one Root, one goroutine each.
// Prometheus metrics cover sessions, events, and patch volume; event
// dispatch is wrapped in OpenTelemetry spans.
package web
