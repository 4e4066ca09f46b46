package handler

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	kittensdomain "kittens-api/internal/domain/kittens"
)

func paramsFrom(t *testing.T, body string) Params {
	t.Helper()
	params, err := decodeParams(httptest.NewRequest("POST", "/", strings.NewReader(body)))
	if err != nil {
		t.Fatalf("decode %q: %v", body, err)
	}
	return params
}

func TestDecodeParams(t *testing.T) {
	if params := paramsFrom(t, ""); len(params) != 0 {
		t.Fatalf("expected empty params for empty body, got %v", params)
	}
	for _, body := range []string{"[1,2]", "null", `"text"`, "{"} {
		_, err := decodeParams(httptest.NewRequest("POST", "/", strings.NewReader(body)))
		if !errors.Is(err, errInvalidBody) {
			t.Fatalf("%s: expected errInvalidBody, got %v", body, err)
		}
	}
}

func TestRequiredID(t *testing.T) {
	params := paramsFrom(t, `{"a": 7, "b": "12", "c": null, "d": "", "e": 0, "f": -2, "g": "x", "h": 3.0, "i": 3.5, "j": true}`)

	for name, want := range map[string]int64{"a": 7, "b": 12, "h": 3} {
		got, err := params.RequiredID(name)
		if err != nil || got != want {
			t.Fatalf("%s: expected %d, got %d %v", name, want, got, err)
		}
	}

	for _, name := range []string{"c", "d", "missing"} {
		_, err := params.RequiredID(name)
		var paramErr *ParamError
		if !errors.As(err, &paramErr) || !paramErr.Missing {
			t.Fatalf("%s: expected missing parameter, got %v", name, err)
		}
		if err.Error() != "parameter '"+name+"' is required" {
			t.Fatalf("unexpected message %q", err.Error())
		}
	}

	for _, name := range []string{"e", "f", "g", "i", "j"} {
		_, err := params.RequiredID(name)
		var paramErr *ParamError
		if !errors.As(err, &paramErr) || paramErr.Missing {
			t.Fatalf("%s: expected invalid parameter, got %v", name, err)
		}
	}
}

func TestRequiredIntKeepsZero(t *testing.T) {
	params := paramsFrom(t, `{"rating_value": 0, "big": 99999999999}`)
	got, err := params.RequiredInt("rating_value")
	if err != nil || got != 0 {
		t.Fatalf("expected zero to be present, got %d %v", got, err)
	}
	if _, err := params.RequiredInt("big"); err == nil {
		t.Fatalf("expected out of range integer to be invalid")
	}
}

func TestRequiredString(t *testing.T) {
	params := paramsFrom(t, `{"username": "alice", "password": 5}`)
	if got, err := params.RequiredString("username"); err != nil || got != "alice" {
		t.Fatalf("unexpected username %q %v", got, err)
	}
	if _, err := params.RequiredString("password"); err == nil || err.Error() != "parameter 'password' is invalid" {
		t.Fatalf("expected invalid password, got %v", err)
	}
}

func TestKittenFieldsIgnoresOwner(t *testing.T) {
	params := paramsFrom(t, `{"name": "Tom", "age_in_months": "4", "breed": 2, "owner": 99, "color": null, "description": 12}`)
	fields, errs := kittenFields(params)

	if fields.Name == nil || *fields.Name != "Tom" {
		t.Fatalf("unexpected name %v", fields.Name)
	}
	if fields.AgeInMonths == nil || *fields.AgeInMonths != 4 {
		t.Fatalf("unexpected age %v", fields.AgeInMonths)
	}
	if fields.BreedID == nil || *fields.BreedID != 2 {
		t.Fatalf("unexpected breed %v", fields.BreedID)
	}
	if fields.Color != nil || fields.Description != nil {
		t.Fatalf("expected malformed fields to be dropped")
	}
	if len(errs) != 2 || errs[kittensdomain.FieldColor][0] != msgNull || errs[kittensdomain.FieldDescription][0] != msgNotString {
		t.Fatalf("unexpected field errors %v", errs)
	}
}
