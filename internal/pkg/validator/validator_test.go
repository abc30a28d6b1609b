package validator

import "testing"

type sample struct {
	Name   string `json:"reviewerName" validate:"required"`
	Rating int    `json:"rating" validate:"required,gte=1,lte=5"`
}

func TestValidateUsesJSONFieldNames(t *testing.T) {
	errs := Validate(&sample{Rating: 3})
	if errs == nil {
		t.Fatal("expected validation errors")
	}
	if errs["reviewerName"] != "This field is required" {
		t.Fatalf("expected error keyed by json tag, got %v", errs)
	}
}

func TestValidateRangeMessages(t *testing.T) {
	errs := Validate(&sample{Name: "x", Rating: 6})
	if errs["rating"] != "Value must be at most 5" {
		t.Fatalf("unexpected rating error: %v", errs)
	}

	if errs := Validate(&sample{Name: "x", Rating: 3}); errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
}
