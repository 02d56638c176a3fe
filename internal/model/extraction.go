package model

// ExtractionRequest is the body accepted by POST /extract.
// This is a pure domain model with no transport-specific dependencies.
type ExtractionRequest struct {
	// ImageBase64 is a base64 payload, optionally prefixed with a data-URI header.
	ImageBase64 string `json:"imageBase64"`
	// Type selects the instruction template (rg, cnh, classe, endereco).
	Type string `json:"type"`
	// Version selects the field schema; empty means the server default.
	Version string `json:"version,omitempty"`
}

// OriginalImageField is the key injected into extraction results echoing the input image.
const OriginalImageField = "imagem_original"

// DocumentTypeInfo describes the document types available in one schema version.
type DocumentTypeInfo struct {
	Version string   `json:"version"`
	Types   []string `json:"types"`
	Default bool     `json:"default"`
}
