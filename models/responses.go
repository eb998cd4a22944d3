package models

// The vault backend wraps every payload in an object carrying an in-body
// status code next to the HTTP status line.

// StatusResponse is the common shape of every vault response.
type StatusResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
}

// PasswordsResponse is returned by GET /get/passwords.
type PasswordsResponse struct {
	StatusResponse
	Passwords []Password `json:"passwords"`
}

// PasswordResponse is returned by GET /get/password/{id}.
type PasswordResponse struct {
	StatusResponse
	Password Password `json:"password"`
}

// APIKeysResponse is returned by GET /get/apikeys.
type APIKeysResponse struct {
	StatusResponse
	APIKeys []APIKey `json:"apiKeys"`
}

// APIKeyResponse is returned by GET /get/apikey/{id}.
type APIKeyResponse struct {
	StatusResponse
	APIKey APIKey `json:"apikey"`
}

// StatsResponse is returned by GET /get/stats.
type StatsResponse struct {
	StatusResponse
	Stats
}

// DeleteRequest is the body of the delete endpoints.
type DeleteRequest struct {
	ID string `json:"id"`
}

// ErrorDetail is the body of a non-2xx vault response.
type ErrorDetail struct {
	Detail string `json:"detail"`
}
