package output

import (
	"encoding/json"
	"io"

	"github.com/bgricker/gtest2md/internal/report"
)

// JSONRenderer emits the extracted report as structured data.
type JSONRenderer struct {
	out io.Writer
}

// NewJSON creates a JSON renderer writing to out.
func NewJSON(out io.Writer) *JSONRenderer {
	return &JSONRenderer{out: out}
}

// Document captures JSON output schema.
type Document struct {
	report.Report
	Warnings []Warning `json:"warnings,omitempty"`
}

// Warning is a non-fatal diagnostic raised while reading the report.
type Warning struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Render encodes the document as JSON.
func (j *JSONRenderer) Render(doc Document) error {
	enc := json.NewEncoder(j.out)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
