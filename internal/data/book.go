// Package data provides the book model and the in-memory registry
// that owns every book record for the lifetime of the process.
package data

import (
	"time"

	"github.com/aoideee/book-registry/internal/validator"
)

// MinYear is the exclusive lower bound for a book's year.
const MinYear = 1900

// Book represents a single book record held by the registry.
type Book struct {
	ID        int64     `json:"id"`        // Assigned by the registry, never reused while the max id is alive
	Title     string    `json:"title"`     // Title of the book
	Author    string    `json:"author"`    // Author name
	Year      int       `json:"year"`      // Publication year, always greater than MinYear
	Completed bool      `json:"completed"` // Whether the book has been read
	CreatedAt time.Time `json:"createdAt"` // Set by the registry on insert
}

// CreateBookInput holds the fields a client must supply when creating a new book.
// Year is a pointer so validation can see whether it was sent at all.
type CreateBookInput struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   *int   `json:"year"`
}

// UpdateBookInput holds the fields a client may supply when updating a book.
// Every field is a pointer so we can distinguish between "not provided" (nil)
// and "intentionally set to zero/empty". Only non-nil fields are applied.
type UpdateBookInput struct {
	Title     *string `json:"title"`
	Author    *string `json:"author"`
	Year      *int    `json:"year"`
	Completed *bool   `json:"completed"`
}

// ValidateCreate records the create rules on v. The required-fields check
// runs first; the year bound is only checked once every field is present.
func ValidateCreate(v *validator.Validator, input CreateBookInput) {
	present := input.Title != "" && input.Author != "" && input.Year != nil && *input.Year != 0
	v.Check(present, "fields", "All fields (title, author, year) are required")
	if !v.Valid() {
		return
	}
	v.Check(*input.Year > MinYear, "year", "Year must be greater than 1900")
}

// ValidateUpdate records the update rules on v for the fields present in input.
func ValidateUpdate(v *validator.Validator, input UpdateBookInput) {
	if input.Year != nil {
		v.Check(*input.Year > MinYear, "year", "Year must be greater than 1900")
	}
	if input.Title != nil {
		v.Check(*input.Title != "", "title", "Title cannot be empty")
	}
	if input.Author != nil {
		v.Check(*input.Author != "", "author", "Author cannot be empty")
	}
}

// Apply copies every supplied field of input onto book. ID and CreatedAt are
// left untouched.
func (input UpdateBookInput) Apply(book *Book) {
	if input.Title != nil {
		book.Title = *input.Title
	}
	if input.Author != nil {
		book.Author = *input.Author
	}
	if input.Year != nil {
		book.Year = *input.Year
	}
	if input.Completed != nil {
		book.Completed = *input.Completed
	}
}
