package core

import "errors"

// Binance error codes referenced by the client. The full list lives in the
// exchange's error-code reference; only codes used for classification are named.
const (
	CodeUnauthorized      = -1002
	CodeTooManyRequests   = -1003
	CodeTooManyOrders     = -1015
	CodeInvalidSignature  = -1022
	CodeIllegalChars      = -1100
	CodeInvalidParameter  = -1130
	CodeBadAPIKeyFormat   = -2014
	CodeRejectedMBXKey    = -2015
	badRequestRangeStart  = -1100
	badRequestRangeFinish = -1199
)

// IsErrorCode checks if err is an APIError carrying the specified Binance code.
func IsErrorCode(err error, code int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == code
	}
	return false
}
