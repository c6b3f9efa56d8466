package models

import "time"

// APIResponse represents a standard API response
type APIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// UploadResponse acknowledges a parsed chat export.
type UploadResponse struct {
	Status     string    `json:"status"`
	UploadID   string    `json:"upload_id"`
	FileName   string    `json:"file_name"`
	Messages   int       `json:"messages"`
	Users      []string  `json:"users"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// UsersResponse lists the senders available for filtering.
type UsersResponse struct {
	Users []string `json:"users"`
}
