package markup

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goliatone/go-formsynth/pkg/layout"
	rendertemplate "github.com/goliatone/go-formsynth/pkg/render/template"
	gotemplate "github.com/goliatone/go-formsynth/pkg/render/template/gotemplate"
)

// Compiler turns layouts into HTML documents. It is safe for concurrent use.
type Compiler struct {
	templates      rendertemplate.TemplateRenderer
	placeholderSrc string
	rawLabels      bool
}

// labelStyleKey names the template global holding the label style.
const labelStyleKey = "label_style"

// New constructs a Compiler applying any provided options.
func New(options ...Option) (*Compiler, error) {
	cfg := config{
		templateFS:     TemplatesFS(),
		placeholderSrc: DefaultPlaceholderSrc,
		labelStyle:     DefaultLabelStyle,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	globals := map[string]any{labelStyleKey: cfg.labelStyle}

	renderer := cfg.templateRenderer
	if renderer == nil {
		source := gotemplate.WithFS(cfg.templateFS)
		if cfg.templateDir != "" {
			source = gotemplate.WithBaseDir(cfg.templateDir)
		}
		engine, err := gotemplate.New(
			source,
			gotemplate.WithExtension(".tmpl"),
			gotemplate.WithGlobalData(globals),
		)
		if err != nil {
			return nil, fmt.Errorf("markup: configure template renderer: %w", err)
		}
		renderer = engine
	} else if err := renderer.GlobalContext(globals); err != nil {
		return nil, fmt.Errorf("markup: publish template globals: %w", err)
	}

	return &Compiler{
		templates:      renderer,
		placeholderSrc: cfg.placeholderSrc,
		rawLabels:      cfg.rawLabels,
	}, nil
}

// Compile renders l into a complete HTML document. Any element without
// coordinates aborts compilation with a MissingGeometryError and no output.
func (c *Compiler) Compile(ctx context.Context, l layout.Layout) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.templates == nil {
		return nil, fmt.Errorf("markup: template renderer is nil")
	}

	view, err := c.buildView(l)
	if err != nil {
		return nil, err
	}

	result, err := c.templates.RenderTemplate(DocumentTemplate, view)
	if err != nil {
		return nil, fmt.Errorf("markup: render template: %w", err)
	}
	return []byte(result), nil
}

// CompileTo compiles l and writes the document to w. Nothing is written when
// compilation fails.
func (c *Compiler) CompileTo(ctx context.Context, w io.Writer, l layout.Layout) error {
	out, err := c.Compile(ctx, l)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("markup: write document: %w", err)
	}
	return nil
}

type documentView struct {
	Elements []elementView `json:"elements"`
}

// elementView holds only strings so the template never formats numbers.
type elementView struct {
	ID             string `json:"id"`
	ContainerStyle string `json:"container_style"`
	Style          string `json:"style,omitempty"`
	Src            string `json:"src,omitempty"`
	Type           string `json:"type"`
	Name           string `json:"name"`
	Value          string `json:"value,omitempty"`
	Content        string `json:"content,omitempty"`
	Label          string `json:"label,omitempty"`
}

func (c *Compiler) buildView(l layout.Layout) (documentView, error) {
	view := documentView{
		Elements: make([]elementView, 0, len(l.Elements)),
	}
	for i, el := range l.Elements {
		if el.Coordinates == nil {
			return documentView{}, &layout.MissingGeometryError{Index: i, Source: l.Source}
		}
		elType, err := layout.ParseType(string(el.Type))
		if err != nil {
			return documentView{}, &layout.InputFormatError{Source: l.Source, Err: fmt.Errorf("element %d: %w", i, err)}
		}
		view.Elements = append(view.Elements, c.elementView(i, elType, el))
	}
	return view, nil
}

func (c *Compiler) elementView(index int, elType layout.ElementType, el layout.Element) elementView {
	geo := el.Coordinates
	out := elementView{
		ID:             layout.Identifier(index),
		ContainerStyle: "position:absolute;left:" + px(geo.X) + ";top:" + px(geo.Y),
		Type:           string(elType),
		Name:           el.Name,
		Value:          el.Value,
	}

	switch {
	case elType == layout.TypeImage:
		out.Style = "transform:scale(" + strconv.Itoa(geo.Width) + "," + strconv.Itoa(geo.Height) + ");transform-origin:top left"
		out.Src = c.placeholderSrc
	case elType.Labeled():
		// native control size
	default:
		out.Style = "width:" + px(geo.Width) + ";height:" + px(geo.Height)
	}

	if el.Content != "" {
		if elType.Labeled() {
			out.Label = c.labelText(el.Content)
		} else {
			out.Content = el.Content
		}
	}
	return out
}

func (c *Compiler) labelText(content string) string {
	if c.rawLabels {
		return content
	}
	return strings.TrimSpace(plainText(content))
}

func px(v int) string {
	return strconv.Itoa(v) + "px"
}
