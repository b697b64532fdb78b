// internal/data/models.go
package data

import (
	"errors"
	"slices"
	"strings"
	"sync"
	"time"
)

// Models is a top-level container that groups all model types together.
// It is passed around the application via applicationDependencies so every
// handler reaches the registry through one value.
type Models struct {
	Books *BookModel // Owns every book record
}

// NewModels constructs a Models value whose book registry is seeded with seed.
// Call this once during application startup and store the result in applicationDependencies.
func NewModels(seed []Book) Models {
	return Models{
		Books: NewBookModel(seed, time.Now),
	}
}

// ErrRecordNotFound is returned when no book matches the requested id.
var ErrRecordNotFound = errors.New("record not found")

// BookModel is the in-memory book registry. Books are kept in insertion
// order; ids are unique and positive. All access goes through mu.
type BookModel struct {
	mu    sync.RWMutex
	books []Book
	now   func() time.Time
}

// NewBookModel returns a registry holding a copy of seed in the given order.
// now supplies creation timestamps for inserted books.
func NewBookModel(seed []Book, now func() time.Time) *BookModel {
	return &BookModel{
		books: slices.Clone(seed),
		now:   now,
	}
}

// nextID returns max(existing ids)+1, or 1 for an empty registry.
// Callers must hold mu.
func (m *BookModel) nextID() int64 {
	var maxID int64
	for _, b := range m.books {
		if b.ID > maxID {
			maxID = b.ID
		}
	}
	return maxID + 1
}

// indexOf returns the slice position of the book with id, or -1.
// Callers must hold mu.
func (m *BookModel) indexOf(id int64) int {
	return slices.IndexFunc(m.books, func(b Book) bool { return b.ID == id })
}

// Insert appends a new book to the end of the registry.
// The registry-assigned ID, Completed=false and CreatedAt are written back into book.
func (m *BookModel) Insert(book *Book) {
	m.mu.Lock()
	defer m.mu.Unlock()

	book.ID = m.nextID()
	book.Completed = false
	book.CreatedAt = m.now()
	m.books = append(m.books, *book)
}

// Get retrieves a single book by id.
// Returns ErrRecordNotFound if no book with the given id exists.
func (m *BookModel) Get(id int64) (Book, error) {
	if id < 1 {
		return Book{}, ErrRecordNotFound
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.indexOf(id)
	if i < 0 {
		return Book{}, ErrRecordNotFound
	}
	return m.books[i], nil
}

// GetAll returns every book in registry order. The result is never nil.
func (m *BookModel) GetAll() []Book {
	m.mu.RLock()
	defer m.mu.RUnlock()

	books := make([]Book, len(m.books))
	copy(books, m.books)
	return books
}

// GetCompleted returns the books whose Completed flag is set, in registry order.
func (m *BookModel) GetCompleted() []Book {
	return m.filter(func(b Book) bool { return b.Completed })
}

// SearchByTitle returns the books whose title contains term, ignoring case,
// in registry order.
func (m *BookModel) SearchByTitle(term string) []Book {
	term = strings.ToLower(term)
	return m.filter(func(b Book) bool {
		return strings.Contains(strings.ToLower(b.Title), term)
	})
}

func (m *BookModel) filter(keep func(Book) bool) []Book {
	m.mu.RLock()
	defer m.mu.RUnlock()

	books := []Book{}
	for _, b := range m.books {
		if keep(b) {
			books = append(books, b)
		}
	}
	return books
}

// Update applies input to the book with id in place and returns the result.
// Returns ErrRecordNotFound if no matching book exists.
func (m *BookModel) Update(id int64, input UpdateBookInput) (Book, error) {
	if id < 1 {
		return Book{}, ErrRecordNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return Book{}, ErrRecordNotFound
	}
	input.Apply(&m.books[i])
	return m.books[i], nil
}

// Delete removes the book with the given id, keeping the order of the rest.
// Returns ErrRecordNotFound if no matching record exists.
func (m *BookModel) Delete(id int64) error {
	// Guard against obviously bad IDs before taking the lock.
	if id < 1 {
		return ErrRecordNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return ErrRecordNotFound
	}
	m.books = slices.Delete(m.books, i, i+1)
	return nil
}

// Len reports the number of books currently held.
func (m *BookModel) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.books)
}
