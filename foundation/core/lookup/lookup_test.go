package lookup

import (
	"net/http"
	"testing"
)

func TestStripeErrorMessage(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"verification_document_expired", stripeErrorCodes["verification_document_expired"]},
		{"  invalid_street_address ", "The street name and/or number for the provided address could not be validated."},
		{"unknown_code_xyz", StripeErrorFallback},
		{"", StripeErrorFallback},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := StripeErrorMessage(tt.code); got != tt.want {
				t.Errorf("StripeErrorMessage(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestOtherTables(t *testing.T) {
	if got := StripeRequirementMessage("individual.verification.document"); got != "Some verification document might be required" {
		t.Errorf("StripeRequirementMessage() = %q", got)
	}
	if got := StripeRequirementMessage("nope"); got != StripeRequirementFallback {
		t.Errorf("StripeRequirementMessage(nope) = %q", got)
	}
	if got := StripeDisabledMessage("requirements.past_due"); got == StripeDisabledFallback {
		t.Error("StripeDisabledMessage(requirements.past_due) fell back")
	}
	if got := Message(TableDisabled, "nope"); got != StripeDisabledFallback {
		t.Errorf("Message(disabled, nope) = %q", got)
	}
	if got := Message(Table("bogus"), "nope"); got != StripeErrorFallback {
		t.Errorf("Message(bogus, nope) = %q", got)
	}
}

func TestCodes(t *testing.T) {
	codes := Codes(TableErrorCodes)
	if len(codes) != len(stripeErrorCodes) {
		t.Fatalf("Codes() returned %d codes", len(codes))
	}
	for i := 1; i < len(codes); i++ {
		if codes[i-1] > codes[i] {
			t.Fatalf("Codes() not sorted at %d", i)
		}
	}
	for _, code := range codes {
		if StripeErrorMessage(code) == StripeErrorFallback {
			t.Errorf("known code %q resolved to the fallback", code)
		}
	}
}

func TestHeaderKeysAreCanonicalizable(t *testing.T) {
	keys := HeaderKeys()
	if len(keys) != 4 || keys["authToken"] != "x-auth-token" {
		t.Fatalf("HeaderKeys() = %v", keys)
	}
	h := http.Header{}
	h.Set(HeaderContentType, "application/json")
	if h.Get("Content-Type") != "application/json" {
		t.Error("header name does not canonicalize to Content-Type")
	}
}
