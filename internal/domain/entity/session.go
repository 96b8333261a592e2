package entity

import "encoding/json"

// AuthResult is what the hosted auth service returns for an OTP step. Both
// parts are passed through to clients untouched; a nil part is sent as null.
type AuthResult struct {
	User    json.RawMessage
	Session json.RawMessage
}
