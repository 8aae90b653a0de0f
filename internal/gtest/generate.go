package gtest

import (
	"github.com/bgricker/gtest2md/internal/output"
	"github.com/bgricker/gtest2md/internal/xmltree"
)

// Generate converts a parsed gtest report into the Markdown document. Nothing
// is returned on error, so callers never persist a partial document.
func Generate(tree *xmltree.Tree, source string, diags *Diagnostics, opts ...Option) (string, error) {
	rep, err := Build(tree, source, diags, opts...)
	if err != nil {
		return "", err
	}
	return output.Markdown(rep), nil
}
