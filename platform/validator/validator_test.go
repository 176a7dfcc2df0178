package validator

import "testing"

type contactForm struct {
	FirstName string `validate:"required,personname"`
	Address   string `validate:"required,postaladdress"`
	Email     string `validate:"required,email"`
}

func TestPersonNameAcceptsAccentsAndHyphens(t *testing.T) {
	val := New()
	if err := val.Var("Jean-Édouard", "personname"); err != nil {
		t.Fatalf("expected accented hyphenated name to pass, got %v", err)
	}
	if err := val.Var("D'Artagnan", "personname"); err != nil {
		t.Fatalf("expected apostrophe name to pass, got %v", err)
	}
	if err := val.Var("R2D2", "personname"); err == nil {
		t.Fatal("expected digits to be rejected in a person name")
	}
}

func TestFieldErrorsReportsEveryViolation(t *testing.T) {
	val := New()
	err := val.Struct(contactForm{FirstName: "4ever", Address: "", Email: "nope"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	fields := FieldErrors(err)
	if len(fields) != 3 {
		t.Fatalf("expected 3 field errors, got %d (%v)", len(fields), fields)
	}
	if fields["firstName"] != "personname" {
		t.Fatalf("expected firstName personname violation, got %q", fields["firstName"])
	}
	if fields["address"] != "required" {
		t.Fatalf("expected address required violation, got %q", fields["address"])
	}
	if fields["email"] != "email" {
		t.Fatalf("expected email violation, got %q", fields["email"])
	}
}

func TestFieldErrorsIgnoresForeignErrors(t *testing.T) {
	if FieldErrors(nil) != nil {
		t.Fatal("expected nil map for nil error")
	}
}
