package export

import (
	"path/filepath"
	"time"

	"github.com/gridworks/bomkit/internal/bom"
)

// Artifacts names the three export destinations derived from one input.
type Artifacts struct {
	CSV      string `json:"csv"`
	Markdown string `json:"markdown"`
	JSON     string `json:"json"`
}

// Paths returns the artifact paths in write order.
func (a Artifacts) Paths() []string {
	return []string{a.CSV, a.Markdown, a.JSON}
}

// PlanArtifacts derives artifact paths from the input path's base name
// (extension stripped): <base>.csv, <base>.md, <base>_pretty.json.
// When outDir is empty the artifacts land next to the input file.
func PlanArtifacts(inputPath, outDir string) Artifacts {
	if outDir == "" {
		outDir = filepath.Dir(inputPath)
	}
	base := bom.BaseName(inputPath)

	return Artifacts{
		CSV:      filepath.Join(outDir, base+".csv"),
		Markdown: filepath.Join(outDir, base+".md"),
		JSON:     filepath.Join(outDir, base+"_pretty.json"),
	}
}

// WriteAll exports doc to every planned artifact, strictly in order:
// CSV, then Markdown, then JSON. Each file is fully written and closed
// before the next begins. The first failure aborts the run; artifacts
// already written stay on disk.
func WriteAll(doc *bom.Document, artifacts Artifacts, generatedAt time.Time) error {
	if err := ExportCSV(doc, artifacts.CSV); err != nil {
		return err
	}
	if err := ExportMarkdown(doc, artifacts.Markdown, generatedAt); err != nil {
		return err
	}
	return ExportJSON(doc, artifacts.JSON)
}
