// File: upload.go
// Title: Pre-Upload File Validation
// Description: Validates file metadata against size, type and custom rules
//              before an upload starts. Failures are reported as validation
//              results with rendered, configurable messages.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package filex

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/msto63/ztk/foundation/core/config"
	"github.com/msto63/ztk/foundation/core/errors"
	"github.com/msto63/ztk/foundation/core/i18n"
	"github.com/msto63/ztk/foundation/core/log"
	"github.com/msto63/ztk/foundation/core/options"
	"github.com/msto63/ztk/foundation/core/validation"
	"github.com/msto63/ztk/foundation/utils/slicex"
)

// Default message templates. Templates see the fields of MessageData.
const (
	DefaultFileSizeMessage = "File {{.Name}} is too large ({{.Size}}); the maximum size is {{.MaxSize}} MB"
	DefaultFileTypeMessage = "File type {{.Type}} is not allowed; allowed types: {{.AllowedTypes}}"
	DefaultCustomMessage   = "File {{.Name}} was rejected"
)

// UploadFile describes a file about to be uploaded
type UploadFile struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

// UploadFileFromPath builds an UploadFile from disk. The type comes from the
// extension, or from the content when the extension is unknown.
func UploadFileFromPath(path string) (UploadFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return UploadFile{}, errors.NotFound(errors.ModuleFilex, "UploadFileFromPath", path)
		}
		return UploadFile{}, errors.PlatformUnavailable(errors.ModuleFilex, "UploadFileFromPath", "file system", err)
	}
	if info.IsDir() {
		return UploadFile{}, errors.InvalidInput(errors.ModuleFilex, "UploadFileFromPath", path, "a regular file")
	}

	file := UploadFile{Name: filepath.Base(path), Size: info.Size(), Type: DetectMimeType(path)}
	if file.Type == OctetStream {
		if f, err := os.Open(path); err == nil {
			if sniffed, err := SniffMimeType(f); err == nil {
				file.Type = sniffed
			}
			f.Close()
		}
	}
	return file, nil
}

// CustomFileValidator returns ok, or false with an optional message
type CustomFileValidator func(file UploadFile) (ok bool, message string)

// UploadErrorMessages overrides message templates; empty fields are unset.
type UploadErrorMessages struct {
	FileSize string `json:"fileSize,omitempty"`
	FileType string `json:"fileType,omitempty"`
	Custom   string `json:"custom,omitempty"`
}

// ValidateFileOptions are call-site overrides; nil fields keep the default.
type ValidateFileOptions struct {
	MaxSize         *float64
	AllowedTypes    []string
	AllowWildcard   *bool
	CustomValidator CustomFileValidator
	ErrorMessages   *UploadErrorMessages
}

// ValidateFileSpec is the effective upload validation configuration
type ValidateFileSpec struct {
	// MaxSize is in megabytes
	MaxSize         float64
	AllowedTypes    []string
	AllowWildcard   bool
	CustomValidator CustomFileValidator
	ErrorMessages   UploadErrorMessages
}

// DefaultValidateFileSpec returns the built-in upload defaults
func DefaultValidateFileSpec() ValidateFileSpec {
	return ValidateFileSpec{
		MaxSize:      5,
		AllowedTypes: append([]string(nil), DefaultAllowedTypes...),
	}
}

// MessageData is passed to message templates
type MessageData struct {
	Name         string
	Size         string
	SizeBytes    int64
	Type         string
	MaxSize      string
	AllowedTypes string
}

// ValidateFileBeforeUpload checks size, then type, then the custom
// validator, stopping at the first failure. An invalid file yields a result
// with Valid false; the error is reserved for broken options.
func ValidateFileBeforeUpload(file UploadFile, opts ...ValidateFileOptions) (validation.ValidationResult, error) {
	global := config.Current()
	spec := options.Resolve(DefaultValidateFileSpec(), global.FileUpload)
	for _, o := range opts {
		spec = options.Resolve(spec, o)
	}

	if spec.MaxSize <= 0 {
		return validation.ValidationResult{}, errors.InvalidSpec(errors.ModuleFilex, "ValidateFileBeforeUpload", "maxSize", spec.MaxSize, "must be positive")
	}

	data := MessageData{
		Name:         file.Name,
		Size:         FormatSize(file.Size),
		SizeBytes:    file.Size,
		Type:         file.Type,
		MaxSize:      strconv.FormatFloat(spec.MaxSize, 'f', -1, 64),
		AllowedTypes: strings.Join(slicex.Unique(spec.AllowedTypes), ", "),
	}

	var renderErr error
	fail := func(code, key, callSite, fallback string) validation.ValidationResult {
		tmpl := pickMessage(callSite, global, key, fallback)
		message, err := i18n.RenderMessage(tmpl, data)
		if err != nil {
			renderErr = errors.InvalidSpecCause(errors.ModuleFilex, "ValidateFileBeforeUpload", "errorMessages."+key, tmpl, err)
			return validation.NewValidationError(code, tmpl)
		}
		result := validation.NewValidationErrorWithField(code, "file", message, file)
		result.WithContext("file", file.Name)
		return result
	}

	chain := validation.NewValidatorChain("upload").StopOnFirstError(true)
	chain.AddFunc(func(interface{}) validation.ValidationResult {
		if float64(file.Size) > spec.MaxSize*Megabyte {
			return fail(validation.CodeFileSize, config.MessageKeyFileSize, spec.ErrorMessages.FileSize, DefaultFileSizeMessage)
		}
		return validation.NewValidationResult()
	})
	chain.AddFunc(func(interface{}) validation.ValidationResult {
		allowed := FileTypeSpec{AllowedTypes: spec.AllowedTypes, CaseInsensitive: true, AllowWildcard: spec.AllowWildcard}
		if !allowed.Allows(file.Type) {
			return fail(validation.CodeFileType, config.MessageKeyFileType, spec.ErrorMessages.FileType, DefaultFileTypeMessage)
		}
		return validation.NewValidationResult()
	})
	if spec.CustomValidator != nil {
		chain.AddFunc(func(interface{}) validation.ValidationResult {
			ok, message := spec.CustomValidator(file)
			if ok {
				return validation.NewValidationResult()
			}
			if message != "" {
				return validation.NewValidationErrorWithField(validation.CodeCustom, "file", message, file)
			}
			return fail(validation.CodeCustom, config.MessageKeyCustom, spec.ErrorMessages.Custom, DefaultCustomMessage)
		})
	}

	result := chain.Validate(file)
	if renderErr != nil {
		return validation.ValidationResult{}, renderErr
	}
	if !result.Valid {
		log.Named("filex").Debug("file rejected", log.Fields{"file": file.Name, "reason": result.ReasonCode()})
	}
	return result, nil
}

// pickMessage applies call-site, then global, then built-in precedence
func pickMessage(callSite string, global config.GlobalConfig, key, fallback string) string {
	if callSite != "" {
		return callSite
	}
	if configured, ok := global.ErrorMessage(key); ok && configured != "" {
		return configured
	}
	return fallback
}
