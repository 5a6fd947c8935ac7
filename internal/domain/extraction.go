package domain

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ExtractionRequest is the body accepted by POST /extract-text.
// URL is a pointer so an absent field can be told apart from an empty one.
type ExtractionRequest struct {
	URL *string `json:"url"`
}

// ExtractionResult is the successful response of the extraction endpoint
type ExtractionResult struct {
	Text    string `json:"text"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error  string `json:"error"`
	Status string `json:"status"`
}

// UsageExample describes how to call the extraction endpoint
type UsageExample struct {
	Endpoint    string            `json:"endpoint"`
	Method      string            `json:"method"`
	ContentType string            `json:"content-type"`
	Body        map[string]string `json:"body"`
	Response    ExtractionResult  `json:"response"`
}

// UsageResponse is the informational document served at GET /
type UsageResponse struct {
	Message  string       `json:"message"`
	Usage    UsageExample `json:"usage"`
	Examples []string     `json:"examples"`
}

// NewUsageResponse returns the static usage documentation
func NewUsageResponse() UsageResponse {
	return UsageResponse{
		Message: "PDF Text Extraction Server",
		Usage: UsageExample{
			Endpoint:    "/extract-text",
			Method:      "POST",
			ContentType: "application/json",
			Body: map[string]string{
				"url": "https://drive.google.com/file/d/your-file-id/view",
			},
			Response: ExtractionResult{
				Text:    "extracted text content",
				Status:  StatusSuccess,
				Message: "Text extracted successfully",
			},
		},
		Examples: []string{
			`POST /extract-text with {"url": "https://drive.google.com/file/d/1abc123/view"}`,
			"GET /health for health check",
		},
	}
}
