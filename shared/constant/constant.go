package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyVisitorID contextKey = "visitor_id"
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RequestParamHouse      = "house"
	RequestParamArticleKey = "key"
	RequestParamPage       = "page"
	RequestParamLimit      = "limit"
	RequestParamSortDir    = "sort_dir"
	RequestMaxMemory       = 1 << 20 // 1 MB
)

const (
	DefaultValuePage  = 1
	DefaultValueLimit = 20
	MaxValueLimit     = 100
)

const (
	DateFormat     = time.RFC3339
	DateOnlyFormat = "2006-01-02"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelControllerScopeName = "controller"
	OtelExternalScopeName   = "external"
	OtelStoreScopeName      = "kvstore"
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
	RequestHeaderVisitorID          = "X-Visitor-ID"
)

const (
	ContentTypeJSON           = "application/json"
	ContentTypeHTML           = "text/html; charset=utf-8"
	ContentTypeSVG            = "image/svg+xml"
	ContentTypeText           = "text/plain; charset=utf-8"
	ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseHealthy                   = "OK"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	JournalBackendMemory   = "memory"
	JournalBackendRedis    = "redis"
	JournalBackendDiskv    = "diskv"
	JournalBackendPostgres = "postgres"
	JournalBackendS3       = "s3"
)

const (
	Empty = ""
)
