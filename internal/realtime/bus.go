package realtime

import "context"

// Member is one receiving end of a broadcast group, usually a live
// WebSocket connection. Deliver pushes one encoded message; an error means
// this member only (a closed socket, a full client) and must never prevent
// delivery to other members.
type Member interface {
	Deliver(ctx context.Context, payload []byte) error
}

// Bus is the publish/subscribe backbone for order notifications. Groups are
// identified by the keys produced by Group(); a group exists exactly as long
// as it has members.
//
// Implementations must guarantee that a member which has fully completed
// Leave receives nothing from later publishes, and that publishes are
// visible across server processes when the implementation is backed by a
// shared medium. Join and Publish surface medium failures to the caller
// rather than dropping silently.
type Bus interface {
	Join(ctx context.Context, group string, m Member) error
	Leave(ctx context.Context, group string, m Member) error
	Publish(ctx context.Context, group string, payload []byte) error
}
