// Package httputil holds the JSON response and request helpers shared by
// every HTTP handler.
package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	dErrors "skinatlas/pkg/domain-errors"
)

// maxBodyBytes bounds request bodies; selection events are tiny.
const maxBodyBytes = 1 << 16

var errTrailingContent = errors.New("unexpected content after JSON body")

// Validatable is implemented by request bodies that normalize themselves
// after decoding.
type Validatable interface {
	Validate() error
}

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates err into the JSON error envelope. Internal errors
// never leak their description.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeInternal
	description := ""

	var de *dErrors.Error
	if errors.As(err, &de) {
		code = de.Code
		description = de.Message
	}

	body := map[string]string{"error": string(code)}
	if code != dErrors.CodeInternal && description != "" {
		body["error_description"] = description
	}
	WriteJSON(w, dErrors.ToHTTPStatus(code), body)
}

// DecodeAndPrepare decodes a JSON body into T and runs its validation. An
// empty body decodes to the zero T; anything after the first JSON value is
// rejected. On failure it writes the error response and returns false.
func DecodeAndPrepare[T any, PT interface {
	*T
	Validatable
}](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (*T, bool) {
	var req T
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	err := dec.Decode(&req)
	if err == nil {
		var trailing json.RawMessage
		if extra := dec.Decode(&trailing); !errors.Is(extra, io.EOF) {
			err = errTrailingContent
		}
	}
	if err != nil && !errors.Is(err, io.EOF) {
		logger.WarnContext(ctx, "failed to decode request body",
			"request_id", requestID,
			"error", err,
		)
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid JSON body"))
		return nil, false
	}

	if err := PT(&req).Validate(); err != nil {
		logger.WarnContext(ctx, "request validation failed",
			"request_id", requestID,
			"error", err,
		)
		WriteError(w, err)
		return nil, false
	}
	return &req, true
}
