package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/vinayak/pkg/validate"
)

type productInput struct {
	Name        string  `json:"name"        validate:"required,max=200"`
	Price       float64 `json:"price"       validate:"required,gte=0"`
	Category    string  `json:"category"    validate:"required"`
	Stock       int     `json:"stock"       validate:"nullable,integer,gte=0"`
	Description string  `json:"description" validate:"nullable,max=5000"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(productInput{
		Name:     "Kaju Katli",
		Price:    450,
		Category: "sweets",
		Stock:    30,
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(productInput{})
	if !validate.HasErrors(errs) {
		t.Error("expected required errors")
	}
	if _, ok := errs["name"]; !ok {
		t.Error("expected name to be required")
	}
	if _, ok := errs["category"]; !ok {
		t.Error("expected category to be required")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	errs := validate.Struct(in{Email: "not-an-email"})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email validation error")
	}
	errs = validate.Struct(in{Email: "valid@example.com"})
	if validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

func TestNumericBounds(t *testing.T) {
	type in struct {
		Qty int `json:"qty" validate:"required,gte=1,lte=100"`
	}
	if errs := validate.Struct(in{Qty: -3}); !validate.HasErrors(errs) {
		t.Error("expected qty < 1 to fail")
	}
	if errs := validate.Struct(in{Qty: 5}); validate.HasErrors(errs) {
		t.Errorf("expected qty 5 to pass, got: %v", errs)
	}
}

func TestInRule(t *testing.T) {
	type in struct {
		Status string `json:"status" validate:"required,in=pending,shipped,delivered,cancelled"`
	}
	if errs := validate.Struct(in{Status: "lost"}); !validate.HasErrors(errs) {
		t.Error("expected invalid status to fail")
	}
	if errs := validate.Struct(in{Status: "shipped"}); validate.HasErrors(errs) {
		t.Errorf("expected shipped to pass: %v", errs)
	}
}

func TestNullableSkipsRules(t *testing.T) {
	type in struct {
		Description string `json:"description" validate:"nullable,min=10"`
	}
	// Empty string is nullable, passes even though it is under min length.
	if errs := validate.Struct(in{Description: ""}); validate.HasErrors(errs) {
		t.Errorf("expected empty nullable to pass: %v", errs)
	}
	if errs := validate.Struct(in{Description: "short"}); !validate.HasErrors(errs) {
		t.Error("expected short description to fail min")
	}
}

func TestMaxStringLength(t *testing.T) {
	type in struct {
		Name string `json:"name" validate:"required,max=5"`
	}
	if errs := validate.Struct(in{Name: "toolongname"}); !validate.HasErrors(errs) {
		t.Error("expected over-length name to fail")
	}
	if errs := validate.Struct(in{Name: "ok"}); validate.HasErrors(errs) {
		t.Errorf("expected short name to pass: %v", errs)
	}
}

func TestInRuleKeepsParamIntact(t *testing.T) {
	// in= params contain commas; a following rule must still be recognised.
	type in struct {
		Status string `json:"status" validate:"in=a,b,c,max=1"`
	}
	if errs := validate.Struct(in{Status: "bb"}); !validate.HasErrors(errs) {
		t.Error("expected value outside the in list to fail")
	}
	if errs := validate.Struct(in{Status: "b"}); validate.HasErrors(errs) {
		t.Errorf("expected listed value to pass: %v", errs)
	}
}
