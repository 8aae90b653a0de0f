package gtest

import (
	"strconv"
	"strings"

	"github.com/bgricker/gtest2md/internal/xmltree"
)

// IntAttr returns the named attribute of n as an integer. An absent attribute
// yields def and one diagnostic on diags; a present value that is not an
// integer yields a *NumericError.
func IntAttr(n *xmltree.Node, name string, def int, diags *Diagnostics) (int, error) {
	raw, ok := n.Attr(name)
	if !ok {
		missingAttr(n, name, strconv.Itoa(def), diags)
		return def, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &NumericError{Tag: n.Tag, Attr: name, Value: raw, Err: err}
	}
	return v, nil
}

// StringAttr returns the named attribute of n, or def with one diagnostic on
// diags when it is absent.
func StringAttr(n *xmltree.Node, name, def string, diags *Diagnostics) string {
	v, ok := n.Attr(name)
	if !ok {
		missingAttr(n, name, strconv.Quote(def), diags)
		return def
	}
	return v
}

func missingAttr(n *xmltree.Node, name, def string, diags *Diagnostics) {
	diags.Add(KindMissingAttribute,
		"Attribute %q was not found inside xml node %s[%s]. Set it to its default value %s.",
		name, n.Tag, n.AttrString(), def)
}
