// Package middlewares contiene los middlewares HTTP globales del servicio.
package middlewares

import "net/http"

// Middleware es la forma estándar de middleware: envuelve un handler.
type Middleware func(http.Handler) http.Handler
