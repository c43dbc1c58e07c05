package validation

// GenerateRequest is the payload for POST /api/generate.
type GenerateRequest struct {
	Prompt string `json:"prompt" validate:"required"` // natural-language description of the website
}

// DownloadRequest is the payload for POST /api/download.
type DownloadRequest struct {
	Code string `json:"code" validate:"required"` // generated markup to package
}

// StatusRequest is the payload for POST /api/status.
type StatusRequest struct {
	ClientName string `json:"client_name" validate:"required"` // caller-supplied label
}
