package constant

const (
	RequestParamID = "id"
	FormFieldDesc  = "description"
)

const (
	RouteIndex    = "/"
	RouteAdd      = "/add"
	RouteComplete = "/complete/{id:[0-9]+}"
	RouteDelete   = "/delete/{id:[0-9]+}"
	RouteHealth   = "/healthz"
)

const (
	PqErrorCodeUndefinedTable = "42P01"
	// Class 08 covers connection exceptions, 57P covers operator intervention
	// such as admin shutdown or a database that is still starting up.
	PqErrorClassConnection   = "08"
	PqErrorCodeAdminShutdown = "57P01"
	PqErrorCodeCannotConnect = "57P03"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelHTTPScopeName       = "http"

	OtelQueryAttributeKey = "query"
	OtelTaskIDAttribute   = "task.id"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeHTML = "text/html; charset=utf-8"
)

const (
	ResponseOK                        = "OK"
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)
