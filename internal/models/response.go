package models

// APIResponse is the uniform envelope every endpoint returns. Failure paths
// always populate Message; success paths populate Data when there is a
// payload.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}
