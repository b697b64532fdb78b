// cmd/api/helpers.go
// This file contains general-purpose helper functions for the application.
// Error-response helpers live in errors.go; only non-error utilities are here.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxBodyBytes caps every request body.
const maxBodyBytes = 1_048_576

// envelope is the top-level JSON wrapper type used for all API responses.
// Every response body is a JSON object with a "success" key and either
// "data", "message", or both, e.g. {"success": true, "data": [...]}.
type envelope map[string]any

// readIDParam extracts the ":id" URL parameter added by httprouter.
// The bool is false when the value is non-numeric or less than 1; such an id can
// never match a book, so callers answer with a not-found response.
func (app *applicationDependencies) readIDParam(r *http.Request) (int64, bool) {
	params := httprouter.ParamsFromContext(r.Context())
	id, err := strconv.ParseInt(params.ByName("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// writeJSON marshals data to indented JSON, applies any custom headers,
// sets Content-Type to "application/json", writes the status code, and
// streams the body to the client.
func (app *applicationDependencies) writeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

// readJSON decodes a single JSON value from the request body into dst.
// It enforces a 1 MB size limit, rejects unknown fields, and ensures the
// body contains exactly one JSON value (trailing whitespace is allowed).
// Decoder diagnostics quote the body, so they are logged, never returned.
func (app *applicationDependencies) readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields() // Reject fields not present in dst.

	err := dec.Decode(dst)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("body must not be empty")
		}
		app.logger.Info("request body rejected",
			"request_id", requestIDFrom(r),
			"error", err.Error(),
		)
		return bodyError(err)
	}

	// Everything after the first value, buffered or still unread, must be whitespace.
	rest, err := io.ReadAll(io.MultiReader(dec.Buffered(), r.Body))
	if err != nil {
		return bodyError(err)
	}
	if len(bytes.TrimSpace(rest)) > 0 {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

// bodyError turns a decoder or body-read error into a short client message.
// jsoniter reports failures inside struct fields as "Field: operation: ...",
// flattening any wrapped error into text.
func bodyError(err error) error {
	var maxBytesError *http.MaxBytesError
	msg := err.Error()

	switch {
	case errors.As(err, &maxBytesError), strings.Contains(msg, "http: request body too large"):
		return errors.New("body must not be larger than 1MB")

	case strings.Contains(msg, "found unknown field: "):
		field := msg[strings.Index(msg, "found unknown field: ")+len("found unknown field: "):]
		if i := strings.IndexAny(field, ", "); i >= 0 {
			field = field[:i]
		}
		return fmt.Errorf("body contains unknown field %q", field)

	case fieldErrorRX.MatchString(msg):
		name := fieldErrorRX.FindStringSubmatch(msg)[1]
		return fmt.Errorf("body contains incorrect JSON type for field %q", strings.ToLower(name[:1])+name[1:])

	default:
		return errors.New("body contains badly-formed JSON")
	}
}

// fieldErrorRX matches the "Field: operation: " prefix jsoniter puts on struct field errors.
var fieldErrorRX = regexp.MustCompile(`^([A-Z][A-Za-z0-9]*): [A-Za-z0-9]+: `)
