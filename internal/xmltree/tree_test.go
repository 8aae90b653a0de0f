package xmltree

import (
	"encoding/xml"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleReport = `<?xml version="1.0" encoding="UTF-8"?>
<testsuites tests="2" name="AllTests">
  <!-- comment -->
  <testsuite name="Math" tests="2">
    <testcase name="Add" status="run"/>
    <testcase name="Sub" status="run">
      <failure message="boom">details</failure>
    </testcase>
  </testsuite>
</testsuites>
`

func TestParseStructure(t *testing.T) {
	tree, err := Parse(strings.NewReader(sampleReport))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	root := tree.Root()
	if root == nil || root.Tag != "testsuites" {
		t.Fatalf("unexpected root: %+v", root)
	}
	if v, ok := root.Attr("tests"); !ok || v != "2" {
		t.Fatalf("expected tests=2, got %q (present=%v)", v, ok)
	}
	if _, ok := root.Attr("failures"); ok {
		t.Fatalf("expected failures to be absent")
	}

	suites := root.FindAll("testsuite")
	if len(suites) != 1 {
		t.Fatalf("expected 1 suite, got %d", len(suites))
	}
	cases := suites[0].FindAll("testcase")
	if len(cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(cases))
	}
	if name, _ := cases[0].Attr("name"); name != "Add" {
		t.Fatalf("expected document order, first case %q", name)
	}
	if got := len(cases[1].FindAll("failure")); got != 1 {
		t.Fatalf("expected 1 failure, got %d", got)
	}
	if got := len(root.FindAll("testcase")); got != 0 {
		t.Fatalf("FindAll must only match direct children, got %d", got)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	tree, err := Parse(strings.NewReader(`<?xml version="1.0"?>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if tree.Root() != nil {
		t.Fatalf("expected no root, got %+v", tree.Root())
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse(strings.NewReader(`<testsuites><testsuite>`)); err == nil {
		t.Fatalf("expected error for unclosed elements")
	}
	if _, err := Parse(strings.NewReader(`<a></b>`)); err == nil {
		t.Fatalf("expected error for mismatched tags")
	}
	if _, err := Parse(strings.NewReader(`stray<testsuites/>`)); err == nil {
		t.Fatalf("expected error for text before the root")
	}

	junk := map[string]string{
		"second root":    `<testsuites timestamp="2024-01-02T03:04:05"/><garbage/>`,
		"trailing text":  `<testsuites timestamp="2024-01-02T03:04:05"/>trailing text`,
		"element & text": `<testsuites timestamp="2024-01-02T03:04:05"/><garbage/>trailing text`,
	}
	for name, doc := range junk {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(doc))
			if !errors.Is(err, ErrJunkAfterRoot) {
				t.Fatalf("expected ErrJunkAfterRoot, got %v", err)
			}
		})
	}
}

func TestParseTrailingMisc(t *testing.T) {
	doc := "<?xml version=\"1.0\"?>\n<testsuites/>\n<!-- done -->\n<?pi x?>\n"
	tree, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if tree.Root() == nil || tree.Root().Tag != "testsuites" {
		t.Fatalf("unexpected root: %+v", tree.Root())
	}
}

func TestParseAttributeWhitespace(t *testing.T) {
	doc := "<failure message=\"x.cpp:1\nExpected\tthing\r\nend\" ref=\"a&#x0A;b&#x09;c\" q='it\nworks'>\n" +
		"<!-- \"keep\nme\" --><![CDATA[ \"raw\n\" ]]></failure>"
	tree, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	root := tree.Root()
	want := map[string]string{
		"message": "x.cpp:1 Expected thing end",
		"ref":     "a\nb\tc",
		"q":       "it works",
	}
	for name, value := range want {
		if got, _ := root.Attr(name); got != value {
			t.Fatalf("attribute %s = %q, want %q", name, got, value)
		}
	}
}

func TestAttrString(t *testing.T) {
	tree, err := Parse(strings.NewReader(`<testcase status="run" name="Add"/>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	got := tree.Root().AttrString()
	want := `{'status': 'run', 'name': 'Add'}`
	if got != want {
		t.Fatalf("AttrString = %s, want %s", got, want)
	}

	quoted := &Node{Attrs: []xml.Attr{
		{Name: xml.Name{Local: "message"}, Value: `it's \here`},
		{Name: xml.Name{Local: "both"}, Value: `'"`},
	}}
	if got, want := quoted.AttrString(), `{'message': "it's \\here", 'both': '\'"'}`; got != want {
		t.Fatalf("AttrString = %s, want %s", got, want)
	}

	empty := &Node{Tag: "x"}
	if empty.AttrString() != "{}" {
		t.Fatalf("expected {} for empty attributes, got %s", empty.AttrString())
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.xml")
	if err := os.WriteFile(path, []byte(sampleReport), 0o644); err != nil {
		t.Fatalf("write report: %v", err)
	}

	tree, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if tree.Root().Tag != "testsuites" {
		t.Fatalf("unexpected root tag %q", tree.Root().Tag)
	}

	_, err = ParseFile(filepath.Join(dir, "missing.xml"))
	if err == nil || !strings.Contains(err.Error(), "open report") {
		t.Fatalf("expected open error, got %v", err)
	}
}
