package constants

// Pagination bounds shared by all list endpoints.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ContextKeyUserID is the gin context key holding the current user's id.
const ContextKeyUserID = "userID"
