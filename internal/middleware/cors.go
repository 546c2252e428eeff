package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// Cors lets the listed origins call the API from a browser. With no origins
// every origin is allowed, which is what a local front-end dev server needs.
func Cors(origins ...string) Middleware {
	options := cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"*"},
	}
	if len(origins) == 0 {
		options.AllowOriginFunc = func(origin string) bool {
			return true
		}
	} else {
		options.AllowedOrigins = origins
	}
	return cors.New(options).Handler
}
