package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyUserEmail contextKey = "user_email"
	ContextKeyTokenID   contextKey = "token_id"
)

const (
	APIVersion = "3.0.0"
)

// Authors reported by the status endpoint.
var Authors = []string{"Biletado Reservations Team"}

const (
	RequestParamID             = "id"
	RequestParamIncludeDeleted = "include_deleted"
	RequestParamRoomID         = "room_id"
	RequestParamBefore         = "before"
	RequestParamAfter          = "after"
	RequestParamPermanent      = "permanent"
)

const (
	PqErrorCodeUniqueViolation    = "23505"
	PqErrorCodeExclusionViolation = "23P01"
)

const (
	DateFormat      = "2006-01-02"
	TimestampFormat = "2006-01-02T15:04:05Z07:00"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterisk = "*"
	Empty    = ""
)
