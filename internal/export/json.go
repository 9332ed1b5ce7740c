package export

import (
	"os"

	"github.com/gridworks/bomkit/internal/bom"
	"github.com/gridworks/bomkit/internal/output"
)

// ExportJSON writes the document as indented JSON to path, creating or
// overwriting it. The whole document is serialized without filtering,
// so the artifact reloads to an equivalent in-memory document.
func ExportJSON(doc *bom.Document, path string) error {
	data, err := doc.ToJSON()
	if err != nil {
		return output.NewSystemError("failed to serialize BOM: " + err.Error())
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return output.NewSystemErrorWithCause("failed to write file "+path, err)
	}

	return nil
}
