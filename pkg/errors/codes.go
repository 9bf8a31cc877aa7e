package errors

import (
	"net/http"
	"strings"
)

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes.
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeNotFound           ErrorCode = "COMMON_003"
	ErrCodeConflict           ErrorCode = "COMMON_004"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_005"
	ErrCodeTimeout            ErrorCode = "COMMON_006"
	ErrCodeSerialization      ErrorCode = "COMMON_007"
	ErrCodeDatabaseError      ErrorCode = "COMMON_008"
	ErrCodeCacheError         ErrorCode = "COMMON_009"
	ErrCodeMessageQueueError  ErrorCode = "COMMON_010"
	ErrCodeUnknown            ErrorCode = "COMMON_999"

	// CodeOK is the sentinel returned by GetCode for a nil error.
	CodeOK ErrorCode = "OK"
)

// Structure module error codes.  These cover the request boundary only; a
// chemically unstable or illegally bonded structure is a successful validation
// with warnings, never an error.
const (
	ErrCodeStructureInvalidPayload ErrorCode = "STRUCT_001"
	ErrCodeStructureFileUnreadable ErrorCode = "STRUCT_002"
	ErrCodeStructureFileMalformed  ErrorCode = "STRUCT_003"
	ErrCodeElementUnknown          ErrorCode = "STRUCT_004"
)

// Preset module error codes.
const (
	ErrCodePresetNotFound      ErrorCode = "PRESET_001"
	ErrCodePresetAlreadyExists ErrorCode = "PRESET_002"
	ErrCodePresetInvalid       ErrorCode = "PRESET_003"
)

// errorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var errorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeConflict:           http.StatusConflict,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeTimeout:            http.StatusGatewayTimeout,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeDatabaseError:      http.StatusInternalServerError,
	ErrCodeCacheError:         http.StatusInternalServerError,
	ErrCodeMessageQueueError:  http.StatusInternalServerError,

	ErrCodeStructureInvalidPayload: http.StatusBadRequest,
	ErrCodeStructureFileUnreadable: http.StatusBadRequest,
	ErrCodeStructureFileMalformed:  http.StatusUnprocessableEntity,
	ErrCodeElementUnknown:          http.StatusNotFound,

	ErrCodePresetNotFound:      http.StatusNotFound,
	ErrCodePresetAlreadyExists: http.StatusConflict,
	ErrCodePresetInvalid:       http.StatusUnprocessableEntity,
}

// errorCodeMessage maps ErrorCodes to default messages.
var errorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:           "internal server error",
	ErrCodeBadRequest:         "bad request",
	ErrCodeNotFound:           "resource not found",
	ErrCodeConflict:           "resource conflict",
	ErrCodeServiceUnavailable: "service unavailable",
	ErrCodeTimeout:            "request timeout",
	ErrCodeSerialization:      "serialization failed",
	ErrCodeDatabaseError:      "database error",
	ErrCodeCacheError:         "cache error",
	ErrCodeMessageQueueError:  "message queue error",

	ErrCodeStructureInvalidPayload: "invalid structure payload",
	ErrCodeStructureFileUnreadable: "structure file could not be read",
	ErrCodeStructureFileMalformed:  "structure file is malformed",
	ErrCodeElementUnknown:          "element not in the periodic table",

	ErrCodePresetNotFound:      "preset not found",
	ErrCodePresetAlreadyExists: "preset already exists",
	ErrCodePresetInvalid:       "preset document failed validation",
}

// HTTPStatusForCode returns the HTTP status code for an ErrorCode.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := errorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// IsClientError reports whether the ErrorCode corresponds to a 4xx HTTP status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 400 && status < 500
}

// IsServerError reports whether the ErrorCode corresponds to a 5xx HTTP status.
func IsServerError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 500 && status < 600
}

// ModuleForCode returns the module prefix of an ErrorCode.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}
