package form

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/fw/askline/internal/ctxlog"
	"github.com/fw/askline/internal/fsutil"
)

// Loader parses .hcl form files into Form values.
type Loader struct{}

// NewLoader creates a new form loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load discovers every .hcl file under the given paths, decodes their form
// blocks, and translates them. Declaration order is preserved within a
// file; files are processed in discovery order.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]*Form, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Form loader started.", "path_count", len(paths))

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	logger.Debug("Discovered form files.", "count", len(files))

	parser := hclparse.NewParser()
	var forms []*Form
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse form file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode form file %s: %w", file, diags)
		}

		for _, block := range root.Forms {
			form, err := l.translateForm(ctx, block)
			if err != nil {
				return nil, fmt.Errorf("form %q in %s: %w", block.Name, file, err)
			}
			forms = append(forms, form)
		}
	}

	if len(forms) == 0 {
		return nil, fmt.Errorf("no form blocks found under %v", paths)
	}
	logger.Debug("Form loading complete.", "forms", len(forms))
	return forms, nil
}
