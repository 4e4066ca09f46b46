package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

const maxBodyBytes = 1 << 20

var errInvalidBody = errors.New("request body must be a JSON object")

// Params holds the top-level members of a JSON request body. Members are
// decoded lazily so each endpoint reads only the keys it knows about.
type Params map[string]json.RawMessage

// ParamError reports the first missing or malformed request parameter.
type ParamError struct {
	Name    string
	Missing bool
}

func (e *ParamError) Error() string {
	if e.Missing {
		return fmt.Sprintf("parameter '%s' is required", e.Name)
	}
	return fmt.Sprintf("parameter '%s' is invalid", e.Name)
}

func (e *ParamError) Code() string {
	if e.Missing {
		return "missing_parameter"
	}
	return "invalid_parameter"
}

func missingParam(name string) error {
	return &ParamError{Name: name, Missing: true}
}

func invalidParam(name string) error {
	return &ParamError{Name: name}
}

// decodeParams reads the body as a JSON object. An empty body yields no
// parameters.
func decodeParams(r *http.Request) (Params, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return Params{}, nil
	}
	var params Params
	if err := json.Unmarshal(body, &params); err != nil {
		return nil, errInvalidBody
	}
	if params == nil {
		return nil, errInvalidBody
	}
	return params, nil
}

// raw returns the member value, treating null and "" as absent.
func (p Params) raw(name string) (json.RawMessage, bool) {
	value, ok := p[name]
	if !ok {
		return nil, false
	}
	trimmed := bytes.TrimSpace(value)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte(`""`)) {
		return nil, false
	}
	return trimmed, true
}

func (p Params) RequiredString(name string) (string, error) {
	value, ok := p.raw(name)
	if !ok {
		return "", missingParam(name)
	}
	var parsed string
	if err := json.Unmarshal(value, &parsed); err != nil {
		return "", invalidParam(name)
	}
	return parsed, nil
}

// RequiredInt accepts a JSON integer or a string holding one.
func (p Params) RequiredInt(name string) (int, error) {
	value, ok := p.raw(name)
	if !ok {
		return 0, missingParam(name)
	}
	parsed, ok := parseInt(value)
	if !ok {
		return 0, invalidParam(name)
	}
	return int(parsed), nil
}

// RequiredID is RequiredInt restricted to positive identifiers.
func (p Params) RequiredID(name string) (int64, error) {
	value, ok := p.raw(name)
	if !ok {
		return 0, missingParam(name)
	}
	parsed, ok := parseInt(value)
	if !ok || parsed <= 0 {
		return 0, invalidParam(name)
	}
	return parsed, nil
}

func parseInt(value json.RawMessage) (int64, bool) {
	var text string
	if err := json.Unmarshal(value, &text); err == nil {
		parsed, err := strconv.ParseInt(strings.TrimSpace(text), 10, 32)
		return parsed, err == nil
	}

	var number json.Number
	if err := json.Unmarshal(value, &number); err != nil {
		return 0, false
	}
	parsed, err := strconv.ParseInt(number.String(), 10, 32)
	if err == nil {
		return parsed, true
	}
	// 3.0 is an integer, 3.5 is not
	f, err := number.Float64()
	if err != nil || f != float64(int64(f)) || f > 1<<31-1 || f < -(1<<31) {
		return 0, false
	}
	return int64(f), true
}
