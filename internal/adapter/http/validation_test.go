package http

import (
	"strings"
	"testing"
)

func TestDec2Validation(t *testing.T) {
	type P struct {
		Amount float64 `validate:"dec2"`
	}
	cv := NewValidator()

	for _, v := range []float64{0, 10, 10.5, 10.55, 1999.99, 0.01} {
		if err := cv.Validate(P{Amount: v}); err != nil {
			t.Fatalf("expected %v to pass dec2, got err: %v", v, err)
		}
	}

	for _, v := range []float64{10.555, 0.001, 1234.5678} {
		err := cv.Validate(P{Amount: v})
		if err == nil {
			t.Fatalf("expected error for %v", v)
		}
		fe := ToFieldErrors(err)
		found := false
		for _, e := range fe {
			if e.Field == "Amount" && strings.Contains(e.Message, "2 decimal places") {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("expected dec2 message for %v, got: %+v", v, fe)
		}
	}
}

func TestToFieldErrors_Messages(t *testing.T) {
	type P struct {
		Decision string `validate:"required,oneof=Approved Rejected"`
		DueDate  string `validate:"required,datetime=2006-01-02"`
		Email    string `validate:"omitempty,email"`
	}
	cv := NewValidator()

	err := cv.Validate(P{Decision: "Maybe", DueDate: "01/02/2026", Email: "not-an-email"})
	if err == nil {
		t.Fatal("expected validation errors")
	}

	want := map[string]string{
		"Decision": "must be one of: Approved Rejected",
		"DueDate":  "must be a date in format 2006-01-02",
		"Email":    "must be a valid email address",
	}
	got := map[string]string{}
	for _, fe := range ToFieldErrors(err) {
		got[fe.Field] = fe.Message
	}
	for field, msg := range want {
		if got[field] != msg {
			t.Errorf("%s: got %q, want %q", field, got[field], msg)
		}
	}
}
