package http

import (
	"net/http"
	"os"
	"time"

	"github.com/cloudlagoon/lagoon/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	slogchi "github.com/samber/slog-chi"
)

func NewRouter(log ports.Logger) ports.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(slogchi.New(log))
	r.Use(corsAllowAll)
	r.Use(middleware.Recoverer)
	if os.Getenv("GO_ENV") != "development" {
		r.Use(middleware.Timeout(10 * time.Minute))
	}

	return r
}

// The server is local only, so every origin is welcome.
func corsAllowAll(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
