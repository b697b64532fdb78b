package data_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aoideee/book-registry/internal/data"
	"github.com/aoideee/book-registry/internal/validator"
)

func Test_ValidateCreate(t *testing.T) {
	tests := []struct {
		name  string
		input data.CreateBookInput
		want  string
	}{
		{name: "valid", input: data.CreateBookInput{Title: "X", Author: "Y", Year: ptr(1901)}, want: ""},
		{name: "missing title", input: data.CreateBookInput{Author: "Y", Year: ptr(2000)}, want: "All fields (title, author, year) are required"},
		{name: "missing author", input: data.CreateBookInput{Title: "X", Year: ptr(2000)}, want: "All fields (title, author, year) are required"},
		{name: "missing year", input: data.CreateBookInput{Title: "X", Author: "Y"}, want: "All fields (title, author, year) are required"},
		{name: "zero year counts as missing", input: data.CreateBookInput{Title: "X", Author: "Y", Year: ptr(0)}, want: "All fields (title, author, year) are required"},
		{name: "year 1900", input: data.CreateBookInput{Title: "X", Author: "Y", Year: ptr(1900)}, want: "Year must be greater than 1900"},
		{name: "negative year", input: data.CreateBookInput{Title: "X", Author: "Y", Year: ptr(-5)}, want: "Year must be greater than 1900"},
		{name: "required check wins", input: data.CreateBookInput{Title: "X", Year: ptr(1800)}, want: "All fields (title, author, year) are required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validator.New()

			data.ValidateCreate(v, tt.input)

			assert.Equal(t, tt.want, v.First())
			assert.Equal(t, tt.want == "", v.Valid())
		})
	}
}

func Test_ValidateUpdate(t *testing.T) {
	tests := []struct {
		name  string
		input data.UpdateBookInput
		want  string
	}{
		{name: "empty input", input: data.UpdateBookInput{}, want: ""},
		{name: "completed false only", input: data.UpdateBookInput{Completed: ptr(false)}, want: ""},
		{name: "year 1901", input: data.UpdateBookInput{Year: ptr(1901)}, want: ""},
		{name: "year 1900", input: data.UpdateBookInput{Year: ptr(1900)}, want: "Year must be greater than 1900"},
		{name: "year zero is supplied", input: data.UpdateBookInput{Year: ptr(0)}, want: "Year must be greater than 1900"},
		{name: "empty title", input: data.UpdateBookInput{Title: ptr("")}, want: "Title cannot be empty"},
		{name: "empty author", input: data.UpdateBookInput{Author: ptr("")}, want: "Author cannot be empty"},
		{name: "year reported first", input: data.UpdateBookInput{Title: ptr(""), Year: ptr(1)}, want: "Year must be greater than 1900"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validator.New()

			data.ValidateUpdate(v, tt.input)

			assert.Equal(t, tt.want, v.First())
		})
	}
}

func Test_UpdateBookInput_Apply_LeavesIdentityAlone(t *testing.T) {
	book := data.Book{ID: 7, Title: "Old", Author: "A", Year: 2000, CreatedAt: fakeClock}

	data.UpdateBookInput{Title: ptr("New"), Completed: ptr(true)}.Apply(&book)

	assert.Equal(t, data.Book{ID: 7, Title: "New", Author: "A", Year: 2000, Completed: true, CreatedAt: fakeClock}, book)
}
