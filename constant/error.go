package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidCredential
	ErrForbidden
	ErrAccountBlocked
	ErrDuplicateService
	ErrInvalidUpload
	ErrFileTooLarge
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:           "success",
	ErrInternal:          "error internal",
	ErrNotFound:          "data not found",
	ErrInvalidRequest:    "invalid request",
	ErrUnauthorize:       "unauthorize request",
	ErrCredentialExists:  "email or phone already exists",
	ErrInvalidCredential: "invalid credentials",
	ErrForbidden:         "forbidden",
	ErrAccountBlocked:    "account is blocked, contact support",
	ErrDuplicateService:  "this service already exists",
	ErrInvalidUpload:     "only JPG, PNG, WebP or GIF allowed",
	ErrFileTooLarge:      "file too large (max 5MB)",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:           http.StatusOK,
	ErrInternal:          http.StatusInternalServerError,
	ErrNotFound:          http.StatusNotFound,
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrUnauthorize:       http.StatusUnauthorized,
	ErrCredentialExists:  http.StatusConflict,
	ErrInvalidCredential: http.StatusUnauthorized,
	ErrForbidden:         http.StatusForbidden,
	ErrAccountBlocked:    http.StatusForbidden,
	ErrDuplicateService:  http.StatusConflict,
	ErrInvalidUpload:     http.StatusBadRequest,
	ErrFileTooLarge:      http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:           "0000",
	ErrInternal:          "0001",
	ErrNotFound:          "0002",
	ErrInvalidRequest:    "0003",
	ErrUnauthorize:       "0004",
	ErrCredentialExists:  "0005",
	ErrInvalidCredential: "0006",
	ErrForbidden:         "0007",
	ErrAccountBlocked:    "0008",
	ErrDuplicateService:  "0009",
	ErrInvalidUpload:     "0010",
	ErrFileTooLarge:      "0011",
}
