// cmd/api/routes.go
package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// routes registers all HTTP endpoints and returns the configured router wrapped
// in the middleware chain.
//
// Middleware chain (outermost → innermost):
//
//	requestID → logRequest → recoverPanic → rateLimit → router
//
// Current endpoints:
//
//	GET    /healthcheck      – liveness and version information
//	GET    /books            – list all books
//	POST   /books            – create a new book
//	GET    /books/completed  – list completed books
//	GET    /books/search     – search books by title (?title=)
//	GET    /books/:id        – retrieve a single book by ID
//	PUT    /books/:id        – update an existing book
//	DELETE /books/:id        – delete a book by ID
//
// httprouter refuses a literal segment next to a wildcard at the same depth,
// so /books/completed and /books/search are dispatched by bookLookupHandler
// before the segment is treated as an id.
func (app *applicationDependencies) routes() http.Handler {
	router := httprouter.New()

	// Override the default httprouter error handlers to return JSON responses.
	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodGet, "/healthcheck", app.healthcheckHandler)

	router.HandlerFunc(http.MethodGet, "/books", app.listBooksHandler)
	router.HandlerFunc(http.MethodPost, "/books", app.createBookHandler)
	router.HandlerFunc(http.MethodGet, "/books/:id", app.bookLookupHandler)
	router.HandlerFunc(http.MethodPut, "/books/:id", app.updateBookHandler)
	router.HandlerFunc(http.MethodDelete, "/books/:id", app.deleteBookHandler)

	return app.middleware(router)
}

// middleware wraps next in the shared chain. logRequest sits outside
// recoverPanic so a recovered panic is still logged with its 500 status.
func (app *applicationDependencies) middleware(next http.Handler) http.Handler {
	return app.requestID(app.logRequest(app.recoverPanic(app.rateLimit(next))))
}

// bookLookupHandler handles every GET /books/:segment request, matching the
// literal segments before falling back to an id lookup.
func (app *applicationDependencies) bookLookupHandler(w http.ResponseWriter, r *http.Request) {
	switch httprouter.ParamsFromContext(r.Context()).ByName("id") {
	case "completed":
		app.listCompletedBooksHandler(w, r)
	case "search":
		app.searchBooksHandler(w, r)
	default:
		app.showBookHandler(w, r)
	}
}
