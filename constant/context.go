package constant

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	ActorKey  contextKey = "actor"
)
