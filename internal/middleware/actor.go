package middleware

import (
	"context"
	"net/http"

	"app/internal/model"
	"app/internal/service"
)

const ActorContextKey = contextKey("actor")

// ActorMiddleware resolves the role grant for the authenticated user once per
// request and stores the resulting Actor in the context. It must run after
// AuthMiddleware. Authorization decisions downstream read the Actor's
// capability instead of re-querying user_roles.
func ActorMiddleware(roles service.RoleService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := r.Context().Value(UserContextKey).(string)
			if !ok || userID == "" {
				http.Error(w, "Unauthorized: User ID not found in context", http.StatusUnauthorized)
				return
			}
			email, _ := r.Context().Value(EmailContextKey).(string)

			actor := model.Actor{
				UserID: userID,
				Email:  email,
				Role:   roles.ResolveRole(r.Context(), userID),
			}
			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

// WithActor returns a context carrying the actor.
func WithActor(ctx context.Context, actor model.Actor) context.Context {
	return context.WithValue(ctx, ActorContextKey, actor)
}

// ActorFromContext extracts the actor embedded by ActorMiddleware.
func ActorFromContext(ctx context.Context) (model.Actor, bool) {
	actor, ok := ctx.Value(ActorContextKey).(model.Actor)
	return actor, ok
}
