package data

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/aoideee/book-registry/internal/validator"
)

// SeedBook is one entry of a seed file.
type SeedBook struct {
	Title     string `yaml:"title" toml:"title"`
	Author    string `yaml:"author" toml:"author"`
	Year      int    `yaml:"year" toml:"year"`
	Completed bool   `yaml:"completed" toml:"completed"`
}

// seedFile is the top-level document shape shared by the YAML and TOML formats:
//
//	books:
//	  - title: Clean Code
//	    author: Robert C. Martin
//	    year: 2008
type seedFile struct {
	Books []SeedBook `yaml:"books" toml:"books"`
}

// DefaultSeed returns the three records the registry starts with when no
// seed file is configured.
func DefaultSeed(now time.Time) []Book {
	return buildSeed([]SeedBook{
		{Title: "Clean Code", Author: "Robert C. Martin", Year: 2008, Completed: true},
		{Title: "The Pragmatic Programmer", Author: "Andrew Hunt", Year: 1999},
		{Title: "Design Patterns", Author: "Erich Gamma", Year: 1994},
	}, now)
}

// LoadSeed reads seed records from a .yaml, .yml or .toml file. Every entry
// must pass the create rules; ids are assigned 1..n in file order.
func LoadSeed(path string, now time.Time) ([]Book, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var doc seedFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &doc); err != nil {
			return nil, fmt.Errorf("parse yaml seed file: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(content, &doc); err != nil {
			return nil, fmt.Errorf("parse toml seed file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported seed file format %q", ext)
	}

	for i, entry := range doc.Books {
		v := validator.New()
		ValidateCreate(v, CreateBookInput{Title: entry.Title, Author: entry.Author, Year: &entry.Year})
		if !v.Valid() {
			return nil, fmt.Errorf("seed entry %d: %s", i+1, v.First())
		}
	}

	return buildSeed(doc.Books, now), nil
}

func buildSeed(entries []SeedBook, now time.Time) []Book {
	books := make([]Book, 0, len(entries))
	for i, entry := range entries {
		books = append(books, Book{
			ID:        int64(i + 1),
			Title:     entry.Title,
			Author:    entry.Author,
			Year:      entry.Year,
			Completed: entry.Completed,
			CreatedAt: now,
		})
	}
	return books
}
