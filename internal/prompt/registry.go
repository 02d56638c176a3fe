// Package prompt holds the instruction templates sent to the inference backend.
//
// Templates are keyed by schema version and document type. Each version is an
// explicit field contract: v1 keeps the per-document field names the frontend
// was built against, v2 unifies identity numbers under numero_doc.
package prompt

import "sort"

// Document types understood by the registry.
const (
	TypeRG       = "rg"
	TypeCNH      = "cnh"
	TypeClasse   = "classe"
	TypeEndereco = "endereco"
)

// Schema versions.
const (
	V1 = "v1"
	V2 = "v2"
)

// DefaultType is served when a document type is unknown.
const DefaultType = TypeRG

// Template is an immutable instruction for one document type in one schema version.
type Template struct {
	DocumentType string `json:"document_type"`
	Version      string `json:"version"`
	Text         string `json:"-"`
}

// Registry maps (version, document type) to a template. It is read-only after
// construction and safe for concurrent use.
type Registry struct {
	defaultVersion string
	templates      map[string]map[string]Template
}

// NewRegistry builds the registry with every known schema version.
// An unknown defaultVersion falls back to V1.
func NewRegistry(defaultVersion string) *Registry {
	r := &Registry{
		templates: map[string]map[string]Template{
			V1: build(V1, v1Texts),
			V2: build(V2, v2Texts),
		},
	}
	if _, ok := r.templates[defaultVersion]; !ok {
		defaultVersion = V1
	}
	r.defaultVersion = defaultVersion
	return r
}

func build(version string, texts map[string]string) map[string]Template {
	out := make(map[string]Template, len(texts))
	for docType, text := range texts {
		out[docType] = Template{DocumentType: docType, Version: version, Text: text + jsonOnly}
	}
	return out
}

// DefaultVersion returns the version served when a request names none.
func (r *Registry) DefaultVersion() string { return r.defaultVersion }

// Lookup returns the default-version template for documentType.
func (r *Registry) Lookup(documentType string) Template {
	return r.LookupVersion(r.defaultVersion, documentType)
}

// LookupVersion returns the template for documentType in version. An unknown
// version resolves to the default version and an unknown document type to
// DefaultType. It never fails.
func (r *Registry) LookupVersion(version, documentType string) Template {
	set, ok := r.templates[version]
	if !ok {
		set = r.templates[r.defaultVersion]
	}
	if t, ok := set[documentType]; ok {
		return t
	}
	return set[DefaultType]
}

// Versions lists the known schema versions in order.
func (r *Registry) Versions() []string {
	out := make([]string, 0, len(r.templates))
	for v := range r.templates {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// DocumentTypes lists the document types defined for version, sorted.
func (r *Registry) DocumentTypes(version string) []string {
	set, ok := r.templates[version]
	if !ok {
		set = r.templates[r.defaultVersion]
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
