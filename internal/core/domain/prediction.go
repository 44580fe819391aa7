package domain

type ModelInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Backend string `json:"backend"`
}

type Prediction struct {
	RequestID string     `json:"request_id"`
	Price     float64    `json:"price"`
	Features  FeatureRow `json:"features"`
	Model     ModelInfo  `json:"model"`
}

// BatchResult carries one row of a batch run. Error is set instead of
// Prediction when the row failed.
type BatchResult struct {
	Row        int         `json:"row"`
	Prediction *Prediction `json:"prediction,omitempty"`
	Error      string      `json:"error,omitempty"`
	ErrorKind  string      `json:"error_kind,omitempty"`
}
