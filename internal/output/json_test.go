package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/bgricker/gtest2md/internal/report"
)

func TestJSONRenderer(t *testing.T) {
	doc := Document{
		Report: report.Report{
			Source:  "report.xml",
			Summary: report.Summary{Counts: report.Counts{Tests: 2, Failures: 1}, Date: "02-01-2024", Time: "03:04:05", Duration: "0.5"},
			Suites: []report.Suite{
				{
					Name:   "Math",
					Counts: report.Counts{Tests: 2, Failures: 1},
					Cases: []report.Case{
						{Number: 1, Name: "Add", Status: "run", Outcome: report.OutcomePassed},
						{Number: 2, Name: "Sub", Status: "run", Outcome: report.OutcomeFailed, Failures: []string{"Expected true"}},
					},
				},
			},
		},
		Warnings: []Warning{{Kind: "missing-attribute", Message: "Attribute \"disabled\" was not found"}},
	}

	buf := &bytes.Buffer{}
	renderer := NewJSON(buf)
	if err := renderer.Render(doc); err != nil {
		t.Fatalf("render json: %v", err)
	}

	if !strings.Contains(buf.String(), `"outcome": "failed"`) {
		t.Fatalf("expected outcome encoded by name, got %s", buf.String())
	}

	var decoded struct {
		Source  string `json:"source"`
		Summary struct {
			Tests int    `json:"tests"`
			Date  string `json:"date"`
		} `json:"summary"`
		Suites []struct {
			Name  string `json:"name"`
			Cases []struct {
				Number   int      `json:"number"`
				Failures []string `json:"failures"`
			} `json:"cases"`
		} `json:"suites"`
		Warnings []struct {
			Kind    string `json:"kind"`
			Message string `json:"message"`
		} `json:"warnings"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if decoded.Source != "report.xml" || decoded.Summary.Tests != 2 || decoded.Summary.Date != "02-01-2024" {
		t.Fatalf("summary mismatch: %+v", decoded)
	}
	if len(decoded.Suites) != 1 || len(decoded.Suites[0].Cases) != 2 {
		t.Fatalf("suite mismatch: %+v", decoded.Suites)
	}
	if got := decoded.Suites[0].Cases[1].Failures; len(got) != 1 || got[0] != "Expected true" {
		t.Fatalf("failures mismatch: %v", got)
	}
	if len(decoded.Warnings) != 1 || decoded.Warnings[0].Kind != "missing-attribute" {
		t.Fatalf("expected warnings serialized with their kind, got %+v", decoded.Warnings)
	}
}
