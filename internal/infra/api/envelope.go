package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
)

// UnrecognizedEnvelopeError reports a response whose top-level shape matches none of the known envelopes.
type UnrecognizedEnvelopeError struct {
	Resource string
	Keys     []string // Top-level keys of the rejected object, empty for non-objects.
}

func (e *UnrecognizedEnvelopeError) Error() string {
	if len(e.Keys) == 0 {
		return fmt.Sprintf("unrecognized %s envelope", e.Resource)
	}

	return fmt.Sprintf("unrecognized %s envelope with keys [%s]", e.Resource, strings.Join(e.Keys, ", "))
}

// Is matches domainerrors.ErrUnrecognizedEnvelope.
func (e *UnrecognizedEnvelopeError) Is(target error) bool {
	return target == domainerrors.ErrUnrecognizedEnvelope
}

func (e *UnrecognizedEnvelopeError) HTTPCode() int {
	return domainerrors.ErrUnrecognizedEnvelope.HTTPCode()
}

func (e *UnrecognizedEnvelopeError) ErrorCode() string {
	return domainerrors.ErrUnrecognizedEnvelope.ErrorCode()
}

func (e *UnrecognizedEnvelopeError) Message() string {
	return domainerrors.ErrUnrecognizedEnvelope.Message()
}

func (e *UnrecognizedEnvelopeError) Details() string {
	return e.Error()
}

// collection is a decoded list envelope.
type collection struct {
	items      []json.RawMessage
	pagination *entity.Pagination
}

// envelopeShape tries to recognize one envelope layout.
type envelopeShape func(obj map[string]json.RawMessage, resource string) (*collection, bool)

// collectionShapes are tried in order; the first structural match wins.
var collectionShapes = []envelopeShape{
	matchDataArray,
	matchResultsWithPages,
	matchResourceArray,
	matchNestedData,
}

// decodeCollection unwraps a list response. Accepted shapes, in order:
// a bare array; {data: [...]}; {results: [...], pages: {...}}; {<resource>: [...]};
// and {data: {...}} wrapping one of the object shapes.
func decodeCollection(body []byte, resource string) (*collection, error) {
	raw := bytes.TrimSpace(body)
	if isArray(raw) {
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, &UnrecognizedEnvelopeError{Resource: resource}
		}

		return &collection{items: items}, nil
	}

	obj, ok := decodeObjectMap(raw)
	if !ok {
		return nil, &UnrecognizedEnvelopeError{Resource: resource}
	}

	for _, shape := range collectionShapes {
		if c, ok := shape(obj, resource); ok {
			return c, nil
		}
	}

	return nil, &UnrecognizedEnvelopeError{Resource: resource, Keys: sortedKeys(obj)}
}

func matchDataArray(obj map[string]json.RawMessage, _ string) (*collection, bool) {
	return arrayUnder(obj, "data")
}

func matchResultsWithPages(obj map[string]json.RawMessage, _ string) (*collection, bool) {
	return arrayUnder(obj, "results")
}

func matchResourceArray(obj map[string]json.RawMessage, resource string) (*collection, bool) {
	for _, key := range []string{resource, "items"} {
		if c, ok := arrayUnder(obj, key); ok {
			return c, true
		}
	}

	return nil, false
}

func matchNestedData(obj map[string]json.RawMessage, resource string) (*collection, bool) {
	inner, ok := decodeObjectMap(bytes.TrimSpace(obj["data"]))
	if !ok {
		return nil, false
	}

	for _, shape := range []envelopeShape{matchResultsWithPages, matchResourceArray} {
		if c, ok := shape(inner, resource); ok {
			if c.pagination == nil {
				c.pagination = paginationFrom(obj)
			}

			return c, true
		}
	}

	return nil, false
}

func arrayUnder(obj map[string]json.RawMessage, key string) (*collection, bool) {
	raw, ok := obj[key]
	if !ok {
		return nil, false
	}
	raw = bytes.TrimSpace(raw)
	if !isArray(raw) {
		return nil, false
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}

	return &collection{items: items, pagination: paginationFrom(obj)}, true
}

type paginationDTO struct {
	Page        looseInt `json:"page"`
	CurrentPage looseInt `json:"currentPage"`
	Limit       looseInt `json:"limit"`
	PerPage     looseInt `json:"perPage"`
	Total       looseInt `json:"total"`
	TotalItems  looseInt `json:"totalItems"`
	TotalPages  looseInt `json:"totalPages"`
	Pages       looseInt `json:"pages"`
}

// paginationFrom reads the descriptor under "pages", "pagination" or "meta".
// A numeric "pages" value is taken as the page count.
func paginationFrom(obj map[string]json.RawMessage) *entity.Pagination {
	for _, key := range []string{"pages", "pagination", "meta"} {
		raw := bytes.TrimSpace(obj[key])
		if len(raw) == 0 {
			continue
		}

		if total := parseLooseInt(raw); total != nil {
			return &entity.Pagination{TotalPages: int(*total)}
		}

		var dto paginationDTO
		if _, ok := decodeObjectMap(raw); !ok {
			continue
		}
		if err := json.Unmarshal(raw, &dto); err != nil {
			continue
		}

		return &entity.Pagination{
			Page:       int(derefInt(firstInt(dto.Page, dto.CurrentPage))),
			Limit:      int(derefInt(firstInt(dto.Limit, dto.PerPage))),
			Total:      int(derefInt(firstInt(dto.Total, dto.TotalItems))),
			TotalPages: int(derefInt(firstInt(dto.TotalPages, dto.Pages))),
		}
	}

	return nil
}

// decodeRecord unwraps a single-record response: {data: {...}}, {<resource>: {...}} or the bare object.
func decodeRecord(body []byte, resource string) (json.RawMessage, error) {
	raw := bytes.TrimSpace(body)
	obj, ok := decodeObjectMap(raw)
	if !ok {
		return nil, &UnrecognizedEnvelopeError{Resource: resource}
	}

	for _, key := range []string{"data", resource} {
		inner := bytes.TrimSpace(obj[key])
		if _, ok := decodeObjectMap(inner); ok {
			return inner, nil
		}
	}

	return raw, nil
}

// messageFromBody extracts the server-provided error text.
func messageFromBody(body []byte) string {
	obj, ok := decodeObjectMap(bytes.TrimSpace(body))
	if !ok {
		return strings.TrimSpace(string(body))
	}

	for _, key := range []string{"message", "error", "detail"} {
		raw := bytes.TrimSpace(obj[key])
		if len(raw) == 0 {
			continue
		}

		var text string
		if err := json.Unmarshal(raw, &text); err == nil && text != "" {
			return text
		}

		if nested, ok := decodeObjectMap(raw); ok {
			if msg := messageFromBody(mustMarshal(nested)); msg != "" {
				return msg
			}
		}
	}

	var errs []string
	if err := json.Unmarshal(obj["errors"], &errs); err == nil && len(errs) > 0 {
		return strings.Join(errs, "; ")
	}

	return ""
}

func decodeObjectMap(raw []byte) (map[string]json.RawMessage, bool) {
	if len(raw) == 0 || raw[0] != '{' {
		return nil, false
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, false
	}

	return obj, true
}

func isArray(raw []byte) bool {
	return len(raw) > 0 && raw[0] == '['
}

func sortedKeys(obj map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

func derefInt(v *int64) int64 {
	if v == nil {
		return 0
	}

	return *v
}

func mustMarshal(v any) []byte {
	data, _ := json.Marshal(v)

	return data
}
