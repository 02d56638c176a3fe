package model

// ModeCompare is the only mode accepted by POST /biometria.
const ModeCompare = "compare"

// ComparisonRequest is the body accepted by POST /biometria.
type ComparisonRequest struct {
	Mode string `json:"mode"`
	// Image1 is the reference document photo.
	Image1 string `json:"image1"`
	// Image2 is the live capture.
	Image2 string `json:"image2"`
}

// ComparisonVerdict is the shape the comparison instruction asks the backend for.
type ComparisonVerdict struct {
	Match      bool    `json:"match"`
	Score      float64 `json:"score"`
	Confidence string  `json:"confidence"`
	Details    string  `json:"details"`
}
