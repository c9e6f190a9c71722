package context

import (
	"context"

	"github.com/muhammadheryan/gadgetfix/constant"
	"github.com/muhammadheryan/gadgetfix/model"
)

// WithActor stores the verified actor on ctx.
func WithActor(ctx context.Context, actor *model.Actor) context.Context {
	ctx = context.WithValue(ctx, constant.UserIDKey, actor.ID)
	return context.WithValue(ctx, constant.ActorKey, actor)
}

func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

// GetActor returns the actor set by the auth middleware, or nil for an
// anonymous request.
func GetActor(ctx context.Context) *model.Actor {
	actor, _ := ctx.Value(constant.ActorKey).(*model.Actor)
	return actor
}
