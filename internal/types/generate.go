package types

// GenerateRequest is the body of POST /generate.
type GenerateRequest struct {
	Prompt string `json:"prompt" example:"Suggest a weekend trip from Pune"`
}

// GenerateResponse wraps free-form model output.
type GenerateResponse struct {
	Response string `json:"response"`
}

// MapRequest is the body of POST /map.
type MapRequest struct {
	Places      []Place `json:"places"`
	Interactive *bool   `json:"interactive,omitempty"`
}
