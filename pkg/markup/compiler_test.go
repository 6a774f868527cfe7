package markup_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formsynth/pkg/layout"
	"github.com/goliatone/go-formsynth/pkg/markup"
	"github.com/goliatone/go-formsynth/pkg/testsupport"
)

func newCompiler(t *testing.T, options ...markup.Option) *markup.Compiler {
	t.Helper()

	compiler, err := markup.New(options...)
	if err != nil {
		t.Fatalf("new compiler: %v", err)
	}
	return compiler
}

func TestCompiler_CompileContract(t *testing.T) {
	l := testsupport.MustLoadLayout(t, filepath.Join("testdata", "layout.json"))

	output, err := newCompiler(t).Compile(testsupport.Context(), l)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	goldenPath := filepath.Join("testdata", "layout.golden.html")
	if testsupport.WriteMaybeGolden(t, goldenPath, output) {
		return
	}

	want := testsupport.MustReadGolden(t, goldenPath)
	if diff := testsupport.CompareGolden(string(want), string(output)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestCompiler_TextElement(t *testing.T) {
	l := layout.Layout{Elements: []layout.Element{
		testsupport.Box(layout.TypeText, 10, 20, 100, 30),
	}}

	out, err := newCompiler(t).Compile(testsupport.Context(), l)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	doc := string(out)

	for _, want := range []string{
		`<div style="position:absolute;left:10px;top:20px">`,
		`id="A"`,
		`type="text"`,
		`style="width:100px;height:30px"`,
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("expected %q in output:\n%s", want, doc)
		}
	}
	if !strings.HasPrefix(doc, "<!DOCTYPE html>") || !strings.Contains(doc, "</html>") {
		t.Fatalf("expected a complete document:\n%s", doc)
	}
}

func TestCompiler_CheckboxLabel(t *testing.T) {
	box := testsupport.Box(layout.TypeCheckbox, 0, 0, 20, 20)
	box.Content = "Accept"

	out, err := newCompiler(t).Compile(testsupport.Context(), layout.Layout{Elements: []layout.Element{box}})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	doc := string(out)

	if !strings.Contains(doc, `<input id="A" type="checkbox"`) {
		t.Fatalf("expected unstyled checkbox control:\n%s", doc)
	}
	if !strings.Contains(doc, `<label for="A" style="font-family:sans-serif">Accept</label>`) {
		t.Fatalf("expected label bound to control:\n%s", doc)
	}
	if strings.Contains(doc, "width:") || strings.Contains(doc, "content=") {
		t.Fatalf("checkbox must not carry size or content attribute:\n%s", doc)
	}
}

func TestCompiler_ImageScalesPlaceholder(t *testing.T) {
	l := layout.Layout{Elements: []layout.Element{
		testsupport.Box(layout.TypeImage, 5, 6, 40, 30),
	}}

	out, err := newCompiler(t, markup.WithPlaceholderSrc("/assets/cross.svg")).Compile(testsupport.Context(), l)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	doc := string(out)

	if !strings.Contains(doc, `style="transform:scale(40,30);transform-origin:top left" src="/assets/cross.svg"`) {
		t.Fatalf("expected scaled placeholder image:\n%s", doc)
	}
	if strings.Contains(doc, "width:40px") {
		t.Fatalf("image must not carry explicit size:\n%s", doc)
	}
}

func TestCompiler_CaseInsensitiveType(t *testing.T) {
	l := layout.Layout{Elements: []layout.Element{
		testsupport.Box(layout.ElementType("RADIO"), 0, 0, 10, 10),
	}}

	out, err := newCompiler(t).Compile(testsupport.Context(), l)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !strings.Contains(string(out), `<input id="A" type="radio" name="">`) {
		t.Fatalf("expected normalised radio control:\n%s", out)
	}
}

func TestCompiler_IdentifiersFollowIndex(t *testing.T) {
	elements := make([]layout.Element, 28)
	for i := range elements {
		elements[i] = testsupport.Box(layout.TypeButton, i*10, 0, 10, 10)
	}

	out, err := newCompiler(t).Compile(testsupport.Context(), layout.Layout{Elements: elements})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	doc := string(out)
	for _, id := range []string{`id="A"`, `id="Z"`, `id="AA"`, `id="AB"`} {
		if !strings.Contains(doc, id) {
			t.Fatalf("expected %s in output", id)
		}
	}
}

func TestCompiler_Deterministic(t *testing.T) {
	l := testsupport.MustLoadLayout(t, filepath.Join("testdata", "layout.json"))
	compiler := newCompiler(t)

	first, err := compiler.Compile(testsupport.Context(), l)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	second, err := newCompiler(t).Compile(testsupport.Context(), l)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("expected byte-identical output")
	}
}

func TestCompiler_MissingGeometry(t *testing.T) {
	l := layout.Layout{
		Source: "page.json",
		Elements: []layout.Element{
			testsupport.Box(layout.TypeText, 0, 0, 10, 10),
			{Type: layout.TypeButton, Content: "Submit"},
		},
	}

	var buf bytes.Buffer
	err := newCompiler(t).CompileTo(testsupport.Context(), &buf, l)
	if !errors.Is(err, layout.ErrMissingGeometry) {
		t.Fatalf("expected ErrMissingGeometry, got %v", err)
	}
	var geoErr *layout.MissingGeometryError
	if !errors.As(err, &geoErr) || geoErr.Index != 1 || geoErr.Source != "page.json" {
		t.Fatalf("unexpected error details: %#v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no partial output, got %q", buf.String())
	}
}

func TestCompiler_UnknownType(t *testing.T) {
	l := layout.Layout{Elements: []layout.Element{
		testsupport.Box(layout.ElementType("select"), 0, 0, 10, 10),
	}}

	_, err := newCompiler(t).Compile(testsupport.Context(), l)
	if !errors.Is(err, layout.ErrInputFormat) {
		t.Fatalf("expected ErrInputFormat, got %v", err)
	}
}

func TestCompiler_LabelText(t *testing.T) {
	box := testsupport.Box(layout.TypeRadio, 0, 0, 10, 10)
	box.Content = "<b>Tom</b> & Jerry"
	l := layout.Layout{Elements: []layout.Element{box}}

	out, err := newCompiler(t).Compile(testsupport.Context(), l)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !strings.Contains(string(out), `>Tom &amp; Jerry</label>`) {
		t.Fatalf("expected markup stripped from label:\n%s", out)
	}

	raw, err := newCompiler(t, markup.WithRawLabels()).Compile(testsupport.Context(), l)
	if err != nil {
		t.Fatalf("compile raw: %v", err)
	}
	if strings.Contains(string(raw), "<b>") {
		t.Fatalf("expected raw label to stay escaped:\n%s", raw)
	}
	if !strings.Contains(string(raw), "&lt;b&gt;Tom") {
		t.Fatalf("expected escaped markup in raw label:\n%s", raw)
	}
}

func TestCompiler_EmptyLayout(t *testing.T) {
	out, err := newCompiler(t).Compile(testsupport.Context(), layout.Layout{})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if strings.Contains(string(out), "<input") {
		t.Fatalf("expected no controls:\n%s", out)
	}
}

func TestCompiler_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(testsupport.Context())
	cancel()

	if _, err := newCompiler(t).Compile(ctx, layout.Layout{}); err == nil {
		t.Fatalf("expected cancelled context error")
	}
}

func TestCompiler_WithTemplateRenderer(t *testing.T) {
	stub := &stubTemplateRenderer{
		renderTemplateFunc: func(name string, data any, out ...io.Writer) (string, error) {
			if name == markup.DocumentTemplate {
				return "custom-output", nil
			}
			return "", errors.New("unexpected template " + name)
		},
	}

	compiler := newCompiler(t, markup.WithTemplateRenderer(stub), markup.WithLabelStyle("color:red"))
	out, err := compiler.Compile(testsupport.Context(), layout.Layout{})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if string(out) != "custom-output" {
		t.Fatalf("unexpected output: %s", out)
	}
	if !stub.called {
		t.Fatalf("expected render template to be called")
	}
	if diff := cmp.Diff(map[string]any{"label_style": "color:red"}, stub.globals); diff != "" {
		t.Fatalf("globals mismatch (-want +got):\n%s", diff)
	}
}

func TestCompiler_TemplateRendererGlobalsError(t *testing.T) {
	stub := &stubTemplateRenderer{globalsErr: errors.New("read only")}
	if _, err := markup.New(markup.WithTemplateRenderer(stub)); err == nil {
		t.Fatalf("expected globals error to fail construction")
	}
}

func TestCompiler_WithLabelStyle(t *testing.T) {
	box := testsupport.Box(layout.TypeRadio, 0, 0, 20, 20)
	box.Content = "Yes"

	out, err := newCompiler(t, markup.WithLabelStyle("font-size:20px")).Compile(testsupport.Context(), layout.Layout{Elements: []layout.Element{box}})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if want := `<label for="A" style="font-size:20px">Yes</label>`; !strings.Contains(string(out), want) {
		t.Fatalf("expected %q in output:\n%s", want, out)
	}
}

func TestCompiler_WithTemplatesDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "templates"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	tmpl := "{% for el in elements %}{{ el.id }}:{{ el.type }}|{{ label_style }};{% endfor %}"
	if err := os.WriteFile(filepath.Join(dir, filepath.FromSlash(markup.DocumentTemplate)), []byte(tmpl), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	l := layout.Layout{Elements: []layout.Element{
		testsupport.Box(layout.TypeButton, 0, 0, 10, 10),
		testsupport.Box(layout.TypeDate, 20, 0, 10, 10),
	}}
	out, err := newCompiler(t, markup.WithTemplatesDir(dir)).Compile(testsupport.Context(), l)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if want := "A:button|font-family:sans-serif;B:date|font-family:sans-serif;"; string(out) != want {
		t.Fatalf("output mismatch\nwant: %q\n got: %q", want, out)
	}
}

type stubTemplateRenderer struct {
	called             bool
	globals            map[string]any
	globalsErr         error
	renderTemplateFunc func(name string, data any, out ...io.Writer) (string, error)
}

func (s *stubTemplateRenderer) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	s.called = true
	if s.renderTemplateFunc != nil {
		return s.renderTemplateFunc(name, data, out...)
	}
	return "", nil
}

func (s *stubTemplateRenderer) GlobalContext(data any) error {
	if s.globalsErr != nil {
		return s.globalsErr
	}
	globals, _ := data.(map[string]any)
	s.globals = globals
	return nil
}
