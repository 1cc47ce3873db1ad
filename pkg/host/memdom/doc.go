// Package memdom is an in-memory implementation of the pkg/host interfaces.
//
// It backs the test suite, the HTML renderer, and the live session server.
// Every mutation applied through the host interfaces can be observed via
// Document.Observe, which is how the session server turns reconciler output
// into patch frames for a remote client.
package memdom
