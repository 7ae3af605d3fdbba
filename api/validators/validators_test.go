package validators

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/strideworks/stride-backend/pkg/errors"
)

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	type payload struct {
		Name string `json:"name" validate:"required"`
	}
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"x","bogus":true}`))

	var dest payload
	err := DecodeJSONBody(r, &dest)
	if err == nil {
		t.Fatal("expected unknown field error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeJSONBodyValidationDetailsUseJSONNames(t *testing.T) {
	type payload struct {
		ArticleName string `json:"article_name" validate:"required"`
	}
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{}`))

	var dest payload
	err := DecodeJSONBody(r, &dest)
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("unexpected details type %T", typed.Details())
	}
	if _, ok := details["article_name"]; !ok {
		t.Fatalf("expected json tag key in details, got %v", details)
	}
}

func TestLenientNumbersDecodeFromAnyScalar(t *testing.T) {
	type payload struct {
		Quantity LenientInt   `json:"quantity"`
		Price    LenientFloat `json:"price"`
	}
	cases := []struct {
		name     string
		body     string
		quantity int
		price    float64
	}{
		{"bare numbers", `{"quantity":3,"price":18.5}`, 3, 18.5},
		{"quoted numbers", `{"quantity":"3","price":"1200"}`, 3, 1200},
		{"garbage strings", `{"quantity":"abc","price":"n/a"}`, 0, 0},
		{"nulls", `{"quantity":null,"price":null}`, 0, 0},
		{"booleans", `{"quantity":true,"price":false}`, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/", strings.NewReader(tc.body))
			var dest payload
			if err := DecodeJSONBody(r, &dest); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got := int(dest.Quantity); got != tc.quantity {
				t.Fatalf("quantity = %d, want %d", got, tc.quantity)
			}
			if got := float64(dest.Price); got != tc.price {
				t.Fatalf("price = %f, want %f", got, tc.price)
			}
		})
	}
}

func TestFloatOrZero(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"1000", 1000},
		{"18.5", 18.5},
		{"", 0},
		{"abc", 0},
	}
	for _, tc := range cases {
		if got := FloatOrZero(json.Number(tc.raw)); got != tc.want {
			t.Fatalf("FloatOrZero(%q) = %f, want %f", tc.raw, got, tc.want)
		}
	}
}

func TestIntOrZero(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"3", 3},
		{"3.7", 3},
		{"junk", 0},
		{"", 0},
	}
	for _, tc := range cases {
		if got := IntOrZero(json.Number(tc.raw)); got != tc.want {
			t.Fatalf("IntOrZero(%q) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}

func TestQueryIntOrZero(t *testing.T) {
	r := httptest.NewRequest("GET", "/?page=2&limit=junk", nil)
	if got := QueryIntOrZero(r, "page"); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := QueryIntOrZero(r, "limit"); got != 0 {
		t.Fatalf("expected 0 for junk, got %d", got)
	}
	if got := QueryIntOrZero(r, "missing"); got != 0 {
		t.Fatalf("expected 0 for missing, got %d", got)
	}
}
