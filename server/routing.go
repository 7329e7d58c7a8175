package server

import (
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
)

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path, _ := url.PathUnescape(r.RequestURI)
		Logger.Info("request", "method", r.Method, "path", path)
		next.ServeHTTP(w, r)
	})
}

// ConfigureRouting wires up the roll endpoints. debugMode is threaded
// through to RollHandler so a developer build can accept any query, not
// just ones matching the conservative notation shape.
func ConfigureRouting(debugMode bool) *mux.Router {
	r := mux.NewRouter()
	r.Use(loggingMiddleware)

	r.HandleFunc("/", RootHandler)

	s := r.PathPrefix("/v1").Subrouter()
	s.HandleFunc("/roll/{roll}", RollHandler(debugMode)).Methods(http.MethodGet)
	s.HandleFunc("/roll", RollPostHandler).Methods(http.MethodPost)

	r.HandleFunc("/{roll}", RollHandler(debugMode)).Methods(http.MethodGet)

	return r
}
