package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Tufailahmed-Bargir/slides-ai-v1/internal/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves the
// slides API. It applies JSON content-type enforcement, request
// logging, and token authentication, and mounts the account and
// presentation endpoints under /api.
//
// Routes:
//
//	POST   /api/signup                       → authHandler.Signup
//	POST   /api/login                        → authHandler.Login
//	POST   /api/presentation                 → presentationHandler.Create
//	GET    /api/get-all                      → presentationHandler.GetAll
//	GET    /api/presentation/{id}            → presentationHandler.Get
//	DELETE /api/presentation/{id}            → presentationHandler.Delete
//	POST   /api/input                        → presentationHandler.SaveInput
//	POST   /api/set-calibrate-tone           → presentationHandler.SetTone
//	POST   /api/set-calibrate-verbosity      → presentationHandler.SetVerbosity
//	POST   /api/generate-slides              → presentationHandler.Generate
//	PUT    /api/presentation/{id}            → presentationHandler.SaveDeck
//
// All presentation routes sit behind token authentication; signup and
// login are public.
func NewRouter(
	authHandler *AuthHandler,
	presentationHandler *PresentationHandler,
	jwtSecret []byte,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)

		// Protected group: requires a valid session token
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(jwtSecret))

			r.Post("/presentation", presentationHandler.Create)
			r.Get("/get-all", presentationHandler.GetAll)
			r.Get("/presentation/{id}", presentationHandler.Get)
			r.Delete("/presentation/{id}", presentationHandler.Delete)
			r.Put("/presentation/{id}", presentationHandler.SaveDeck)

			r.Post("/input", presentationHandler.SaveInput)
			r.Post("/set-calibrate-tone", presentationHandler.SetTone)
			r.Post("/set-calibrate-verbosity", presentationHandler.SetVerbosity)
			r.Post("/generate-slides", presentationHandler.Generate)
		})
	})

	return r
}
