package api

import "github.com/shareplate/shareplate-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1000: "store unavailable",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrFoodNotFound.Error(),
		1101: "requester does not match the claimed identity",
	}

	errorInternalServer             = errorJSON(999)
	errorStoreUnavailable           = errorJSON(1000)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorFoodNotFound      = errorJSON(1100)
	errorRequesterMismatch = errorJSON(1101)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
