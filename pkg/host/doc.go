// Package host defines the capability surface fern requires from a host
// UI tree.
//
// The reconciler in pkg/vdom converges a live host tree with a virtual tree
// exclusively through these interfaces: node creation, attachment and
// ordering, attributes, inline styles, event listeners, and text content.
// Implementations live outside the core; pkg/host/memdom provides an
// in-memory reference implementation used by tests, the HTML renderer, and
// the live session server.
package host
