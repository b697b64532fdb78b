// cmd/api/handlers.go
// This file contains all HTTP request handlers for the books resource.
// Each handler is a method on *applicationDependencies so it has access
// to the logger and the book registry.
package main

import (
	"errors"
	"net/http"

	"github.com/aoideee/book-registry/internal/data"
	"github.com/aoideee/book-registry/internal/validator"
)

// healthcheckHandler handles GET /healthcheck.
func (app *applicationDependencies) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	info := map[string]any{
		"status":      "available",
		"environment": app.config.environment,
		"version":     appVersion,
		"books":       app.models.Books.Len(),
	}
	err := app.writeJSON(w, http.StatusOK, envelope{"success": true, "data": info}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// listBooksHandler handles GET /books.
// It returns every book in registry order.
func (app *applicationDependencies) listBooksHandler(w http.ResponseWriter, r *http.Request) {
	books := app.models.Books.GetAll()

	err := app.writeJSON(w, http.StatusOK, envelope{"success": true, "data": books}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// showBookHandler handles GET /books/:id.
// An id that does not parse can never match a book, so it is a 404 like any other miss.
func (app *applicationDependencies) showBookHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := app.readIDParam(r)
	if !ok {
		app.bookNotFoundResponse(w, r)
		return
	}

	book, err := app.models.Books.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.bookNotFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true, "data": book}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// createBookHandler handles POST /books.
// It validates the body, appends the new book to the registry and responds
// with the stored record (including its assigned id and createdAt) and 201 Created.
func (app *applicationDependencies) createBookHandler(w http.ResponseWriter, r *http.Request) {
	var input data.CreateBookInput

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	if data.ValidateCreate(v, input); !v.Valid() {
		app.failedValidationResponse(w, r, v)
		return
	}

	book := &data.Book{
		Title:  input.Title,
		Author: input.Author,
		Year:   *input.Year,
	}
	app.models.Books.Insert(book)

	app.logger.Debug("book created", "id", book.ID, "title", book.Title)

	err = app.writeJSON(w, http.StatusCreated, envelope{"success": true, "data": book}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// updateBookHandler handles PUT /books/:id.
// Fields present in the body replace the stored values; absent fields are left as-is.
// Responds 404 if the book does not exist, before any field is validated.
func (app *applicationDependencies) updateBookHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := app.readIDParam(r)
	if !ok {
		app.bookNotFoundResponse(w, r)
		return
	}

	var input data.UpdateBookInput
	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if _, err := app.models.Books.Get(id); err != nil {
		app.bookNotFoundResponse(w, r)
		return
	}

	v := validator.New()
	if data.ValidateUpdate(v, input); !v.Valid() {
		app.failedValidationResponse(w, r, v)
		return
	}

	book, err := app.models.Books.Update(id, input)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.bookNotFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true, "data": book, "message": "Book updated successfully"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// deleteBookHandler handles DELETE /books/:id.
func (app *applicationDependencies) deleteBookHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := app.readIDParam(r)
	if !ok {
		app.bookNotFoundResponse(w, r)
		return
	}

	err := app.models.Books.Delete(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.bookNotFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true, "message": "Book deleted successfully"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// listCompletedBooksHandler handles GET /books/completed.
func (app *applicationDependencies) listCompletedBooksHandler(w http.ResponseWriter, r *http.Request) {
	books := app.models.Books.GetCompleted()

	err := app.writeJSON(w, http.StatusOK, envelope{"success": true, "data": books}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// searchBooksHandler handles GET /books/search?title=term.
// No matches is still a success with an empty list.
func (app *applicationDependencies) searchBooksHandler(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")

	v := validator.New()
	if v.Check(title != "", "title", "Title query parameter is required"); !v.Valid() {
		app.failedValidationResponse(w, r, v)
		return
	}

	books := app.models.Books.SearchByTitle(title)

	err := app.writeJSON(w, http.StatusOK, envelope{"success": true, "data": books}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
