package models

// ExtractRequest is the JSON body accepted by the extraction API.
type ExtractRequest struct {
	Text   string   `json:"text"`
	Labels []string `json:"labels,omitempty"`
}

// ExtractResponse is the JSON body returned on successful extraction.
type ExtractResponse struct {
	Status string  `json:"status"`
	Topics []Topic `json:"topics"`
}

// StatusResponse reports component health for the status API.
type StatusResponse struct {
	Classifier string `json:"classifier"`
	Database   string `json:"database"`
	Cache      string `json:"cache"`
}
