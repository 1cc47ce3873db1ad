// Package render serializes mounted host trees to HTML. It covers two
// uses: golden-testable snapshots of what a virtual tree materialized
// into, and one-shot server-side rendering of component trees via
// MountToString and WritePage.
package render
