package errors

import (
	stderrors "errors"
	"strings"
	"testing"

	ztkerror "github.com/msto63/ztk/foundation/core/error"
)

func TestErrorBuilder(t *testing.T) {
	cause := stderrors.New("disk full")
	err := NewErrorBuilder(ModuleFilex).
		Operation("upload").
		Message("upload failed").
		Cause(cause).
		Code(ztkerror.CodeInternal).
		Detail("name", "a.png").
		Build()

	if !strings.HasPrefix(err.Error(), "upload failed") {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Code() != ztkerror.CodeInternal {
		t.Errorf("Code() = %v", err.Code())
	}
	if err.Operation() != "filex.upload" {
		t.Errorf("Operation() = %q", err.Operation())
	}
	if !stderrors.Is(err, cause) {
		t.Error("builder should keep the cause in the chain")
	}
	if ExtractModule(err) != ModuleFilex || ExtractOperation(err) != "upload" {
		t.Errorf("module/operation = %q/%q", ExtractModule(err), ExtractOperation(err))
	}
}

func TestErrorBuilderDefaultMessage(t *testing.T) {
	if got := NewErrorBuilder(ModuleMathx).Operation("round").Build().Error(); got != "mathx.round failed" {
		t.Errorf("default message = %q", got)
	}
	if got := NewErrorBuilder(ModuleMathx).Build().Error(); got != "mathx operation failed" {
		t.Errorf("default message without operation = %q", got)
	}
}

func TestInvalidSpec(t *testing.T) {
	err := InvalidSpec(ModuleStringx, "GenerateUniqueCode", "charset", "0OIl", "empty after excluding ambiguous characters")

	if !IsInvalidSpec(err) {
		t.Error("IsInvalidSpec() = false")
	}
	if err.Severity() != ztkerror.SeverityHigh {
		t.Errorf("Severity() = %v", err.Severity())
	}
	details := ExtractDetails(err)
	if details["field"] != "charset" || details["value"] != "0OIl" {
		t.Errorf("details = %v", details)
	}
}

func TestInvalidSpecCause(t *testing.T) {
	cause := stderrors.New("missing closing )")
	err := InvalidSpecCause(ModuleStringx, "CreateRegexMatch", "pattern", "(a", cause)
	if !IsInvalidSpec(err) || !stderrors.Is(err, cause) {
		t.Errorf("InvalidSpecCause() = %v", err)
	}
}

func TestPlatformUnavailable(t *testing.T) {
	err := PlatformUnavailable(ModuleFilex, "ImageDimensions", "image decoder", stderrors.New("timeout"))
	if !IsPlatformUnavailable(err) {
		t.Error("IsPlatformUnavailable() = false")
	}
	if IsInvalidSpec(err) {
		t.Error("IsInvalidSpec() = true for a platform error")
	}
}

func TestValidationFailedAndFriends(t *testing.T) {
	tests := []struct {
		name string
		err  *ztkerror.Error
		code ztkerror.Code
	}{
		{"validation failed", ValidationFailed(ModuleValidationx, "email", "x@", "missing domain"), ztkerror.CodeValidationFailed},
		{"invalid input", InvalidInput(ModuleMathx, "FormatCurrency", "NaN", "finite number"), ztkerror.CodeInvalidInput},
		{"not found", NotFound(ModuleConfig, "LoadFile", "/nope.toml"), ztkerror.CodeNotFound},
		{"config error", ConfigError("LoadFile", "/bad.toml", stderrors.New("parse")), ztkerror.CodeConfigError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code() != tt.code {
				t.Errorf("Code() = %v, want %v", tt.err.Code(), tt.code)
			}
		})
	}
}

func TestExtractFromForeignError(t *testing.T) {
	if ExtractDetails(stderrors.New("plain")) != nil {
		t.Error("ExtractDetails() on a foreign error should be nil")
	}
	if ExtractModule(nil) != "" {
		t.Error("ExtractModule(nil) should be empty")
	}
}
