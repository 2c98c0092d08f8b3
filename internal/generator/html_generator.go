package generator

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"io"
	"io/fs"
	"time"
)

//go:embed templates/*.html
var viewsFS embed.FS

var pageTmpl *template.Template

func loadTemplatesFromFS(fsys fs.FS, dir string) error {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return err
	}
	tmpl, err := template.ParseFS(sub, "*.html")
	if err != nil {
		return err
	}
	pageTmpl = tmpl
	return nil
}

// LoadTemplates parses the embedded page template. Call once at startup.
func LoadTemplates() error {
	return loadTemplatesFromFS(viewsFS, "templates")
}

// PageData is the view model for the heat map page.
type PageData struct {
	Title       string
	Description string
	SVG         template.HTML
	LastUpdated string
	// Refresh, when positive, makes the page reload itself every Refresh seconds.
	Refresh int
}

// RenderPage executes the page template into w.
func RenderPage(w io.Writer, data *PageData) error {
	if pageTmpl == nil {
		return errors.New("page template not loaded: call generator.LoadTemplates during startup")
	}
	return pageTmpl.ExecuteTemplate(w, "heatmap.html", data)
}

func newPageData(svgMarkup []byte, refresh int) *PageData {
	return &PageData{
		Title:       Title,
		Description: Description,
		// The SVG is produced by this package, with every dynamic value escaped.
		SVG:         template.HTML(svgMarkup),
		LastUpdated: time.Now().Format("Jan 2, 2006 at 3:04:05 PM"),
		Refresh:     refresh,
	}
}

// RenderChartPage renders the full page for chart. A positive refresh makes
// the page reload itself every refresh seconds.
func RenderChartPage(w io.Writer, chart *Chart, refresh int) error {
	var buf bytes.Buffer
	if err := chart.WriteSVG(&buf); err != nil {
		return err
	}
	return RenderPage(w, newPageData(buf.Bytes(), refresh))
}

// RenderFramePage renders the page with the empty chart frame and the hidden tooltip.
func RenderFramePage(w io.Writer, refresh int) error {
	var buf bytes.Buffer
	if err := WriteFrame(&buf); err != nil {
		return err
	}
	return RenderPage(w, newPageData(buf.Bytes(), refresh))
}
