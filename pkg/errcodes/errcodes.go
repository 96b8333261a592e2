package errcodes

type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Values are part of the public API: clients match on the "error" field.
const (
	Error               ErrorCode = "Error"
	BadRequest          ErrorCode = "BadRequest"
	Unauthorized        ErrorCode = "Unauthorized"
	Forbidden           ErrorCode = "Forbidden"
	NotFound            ErrorCode = "NotFound"
	RouteNotFound       ErrorCode = "NOT_FOUND"
	Conflict            ErrorCode = "Conflict"
	ConfigError         ErrorCode = "CONFIG_ERROR"
	StorageUploadFailed ErrorCode = "StorageUploadFailed"
	PhotoInsertFailed   ErrorCode = "PhotoInsertFailed"
	AuthServiceError    ErrorCode = "AuthApiError"
)
