package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"gallerysearch/internal/web/handlers"
)

func (s *Server) setupRoutes() {
	searchHandler := handlers.NewSearchHandler(s.store)
	albumsHandler := handlers.NewAlbumsHandler(s.store)
	labelsHandler := handlers.NewLabelsHandler(s.store)
	mediaHandler := handlers.NewMediaHandler(s.store)

	s.router.Get("/api/v1/health", handlers.HealthCheck)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/search", searchHandler.Search)

		r.Get("/albums/smart", albumsHandler.ListSmart)
		r.Get("/albums/smart/{id}/media", albumsHandler.GetSmartMedia)

		r.Get("/labels", labelsHandler.Find)

		r.Get("/media", mediaHandler.List)
		r.Get("/media/{id}", mediaHandler.Get)
		r.Get("/media/{id}/labels", mediaHandler.GetLabels)
	})

	s.router.Get("/", serveIndex)
}

// serveIndex serves a placeholder page pointing at the API.
func serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`<!DOCTYPE html>
<html>
<head>
    <title>Gallery Search</title>
    <style>
        body { font-family: system-ui, sans-serif; display: flex; justify-content: center; align-items: center; height: 100vh; margin: 0; background: #1a1a2e; color: #eee; }
        .container { text-align: center; }
        h1 { color: #00d9ff; }
        p { color: #aaa; }
        a { color: #00d9ff; }
        code { background: #2a2a3e; padding: 2px 8px; border-radius: 4px; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Gallery Search</h1>
        <p>Try <code>/api/v1/search?q=dog</code> or <code>/api/v1/albums/smart</code></p>
        <p>API is available at <a href="/api/v1/health">/api/v1/health</a></p>
    </div>
</body>
</html>`))
}
