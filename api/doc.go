// Package api provides the HTTP API layer for the reels feed.
// It uses the Huma framework on a chi router for OpenAPI documentation,
// request validation, and a clean handler interface.
//
// # Architecture
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Endpoints
//
//	GET  /videos?page=&limit=&offset=   one feed page
//	POST /videos/{id}/like              toggle like
//	POST /authors/{authorId}/follow     toggle follow
//	GET  /users/{id}                    user profile ("me" for the viewer)
//	POST /videos/{id}/share             create share link (share_enabled)
//	GET  /shares/{id}                   resolve share link (share_enabled)
//	GET  /health
//	GET  /metrics                       when a MetricsExporter is configured
//
// The OpenAPI spec is served at /openapi.json and interactive docs at /docs.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	    Flags:      featureflags.NewEnvManager(""),
//	})
//	handlers.NewVideoHandler(catalogService).RegisterRoutes(humaAPI)
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format:
//
//	{
//	    "status": 404,
//	    "title": "Not Found",
//	    "detail": "video not found: 42"
//	}
//
// Domain errors are mapped to status codes in handlers/errors.go.
package api
