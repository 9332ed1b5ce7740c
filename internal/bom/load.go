package bom

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/gridworks/bomkit/internal/output"
)

// Load reads a BOM document from disk. The format is chosen by file
// extension: .yaml/.yml parse as YAML, everything else as JSON.
// A missing file or unparseable content is a user error; any failure
// here is fatal to the run and no artifacts are written.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, output.NewUserError("BOM file not found: " + path)
		}
		return nil, output.NewSystemErrorWithCause("failed to read BOM file: "+path, err)
	}

	doc, err := parse(data, filepath.Ext(path))
	if err != nil {
		return nil, output.NewUserError("failed to parse BOM file " + path + ": " + err.Error())
	}

	return doc, nil
}

// parse dispatches on the file extension.
func parse(data []byte, ext string) (*Document, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return FromYAML(data)
	default:
		return FromJSON(data)
	}
}

// BaseName returns the artifact base name for an input path: the file
// name with its extension stripped. "boms/acme.json" yields "acme".
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
