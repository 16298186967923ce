package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// actorIDKey is the key used to store the calling actor's ID.
// Authentication happens upstream; the caller forwards who is acting in a header.
const actorIDKey = contextKey("actorID")

// ActorHeader carries the upstream-authenticated user ID.
const ActorHeader = "X-Actor-ID"

// ActorMiddleware copies the actor header into the request context for audit fields.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if actor := c.GetHeader(ActorHeader); actor != "" {
			c.Set(string(actorIDKey), actor)
			c.Request = c.Request.WithContext(WithActor(c.Request.Context(), actor))
		}
		c.Next()
	}
}

// WithActor returns a copy of ctx carrying the actor ID.
func WithActor(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, actorIDKey, actorID)
}

// GetActorFromCtx retrieves the actor ID from the request context.
// It returns the actor ID and a boolean indicating if it was found.
func GetActorFromCtx(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	actor, ok := ctx.Value(actorIDKey).(string)
	if !ok || actor == "" {
		return "", false
	}
	return actor, true
}
