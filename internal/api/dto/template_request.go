package dto

// PreviewTemplateRequest asks for a template rendered with sample values.
type PreviewTemplateRequest struct {
	Subject string            `json:"subject"`
	Body    string            `json:"body" validate:"required"`
	Context map[string]string `json:"context"`
}

// PreviewTemplateResponse is the rendered template and the variables it uses.
type PreviewTemplateResponse struct {
	Subject   string   `json:"subject,omitempty"`
	Body      string   `json:"body"`
	Variables []string `json:"variables"`
	Missing   []string `json:"missing"`
}
