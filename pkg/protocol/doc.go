// Package protocol defines the JSON wire format between a live session's
// server side and its browser mirror. Patches flow server to client as the
// reconciler mutates the session document; events flow client to server
// when the user interacts.
//
// Every message is one Frame with a kind discriminator and exactly one
// payload field. JSON keeps the browser side dependency-free; a session
// pushes few and small frames, so compactness matters less than being
// able to apply patches straight from JSON.parse.
package protocol
