package kittens

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrKittenNotFound  = errors.New("kitten not found")
	ErrNoKittensFound  = errors.New("no kittens found")
	ErrInvalidBreedID  = errors.New("breed id must be positive")
	ErrInvalidKittenID = errors.New("kitten id must be positive")
	ErrBreedNotFound   = errors.New("breed not found")
)

const (
	FieldName        = "name"
	FieldColor       = "color"
	FieldAgeInMonths = "age_in_months"
	FieldDescription = "description"
	FieldBreed       = "breed"
)

const (
	MsgRequired     = "this field is required"
	MsgBlank        = "this field may not be blank"
	MsgTooLong      = "ensure this field has no more than 100 characters"
	MsgNegative     = "ensure this value is greater than or equal to 0"
	MsgNotInteger   = "a valid integer is required"
	MsgUnknownBreed = "breed does not exist"
)

// FieldErrors maps a field name to its validation messages.
type FieldErrors map[string][]string

func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e FieldErrors) Merge(other FieldErrors) {
	for field, messages := range other {
		for _, message := range messages {
			e.Add(field, message)
		}
	}
}

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "invalid fields: " + strings.Join(fields, ", ")
}
