package errors

import "net/http"

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes.
const (
	CodeOK             ErrorCode = "OK"
	CodeUnknown        ErrorCode = "COMMON_000"
	CodeInternal       ErrorCode = "COMMON_001"
	CodeInvalidParam   ErrorCode = "COMMON_002"
	CodeNotFound       ErrorCode = "COMMON_003"
	CodeConflict       ErrorCode = "COMMON_004"
	CodeRateLimit      ErrorCode = "COMMON_005"
	CodeTimeout        ErrorCode = "COMMON_006"
	CodeValidation     ErrorCode = "COMMON_007"
	CodeNotImplemented ErrorCode = "COMMON_008"
)

// Assessment pipeline error codes.
//
// CodeValidation covers user-input faults and is the only assessment error
// that surfaces to API callers; the remaining three are absorbed by the
// prediction orchestrator's fallback path.
const (
	CodeModelLoad      ErrorCode = "MODEL_001"
	CodeInference      ErrorCode = "MODEL_002"
	CodeModelTimeout   ErrorCode = "MODEL_003"
	CodeWeightArtifact ErrorCode = "MODEL_004"
)

// HTTPStatus maps an ErrorCode to the HTTP status code the API layer should
// respond with. Unrecognised codes map to 500.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case CodeOK:
		return http.StatusOK
	case CodeInvalidParam, CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeRateLimit:
		return http.StatusTooManyRequests
	case CodeTimeout, CodeModelTimeout:
		return http.StatusGatewayTimeout
	case CodeNotImplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
