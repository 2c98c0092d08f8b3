package generator

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
	"testing"
)

type svgElement struct {
	name  string
	attrs map[string]string
}

// elements decodes an SVG document into a flat list of its start elements.
func elements(t *testing.T, doc []byte) []svgElement {
	t.Helper()
	dec := xml.NewDecoder(bytes.NewReader(doc))
	var out []svgElement
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("decoding SVG: %v", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		el := svgElement{name: se.Name.Local, attrs: map[string]string{}}
		for _, a := range se.Attr {
			el.attrs[a.Name.Local] = a.Value
		}
		out = append(out, el)
	}
}

func byID(els []svgElement, id string) (svgElement, bool) {
	for _, el := range els {
		if el.attrs["id"] == id {
			return el, true
		}
	}
	return svgElement{}, false
}

func cells(els []svgElement) []svgElement {
	var out []svgElement
	for _, el := range els {
		if el.name == "rect" && el.attrs["class"] == "cell" {
			out = append(out, el)
		}
	}
	return out
}

func TestWriteSVG_structure(t *testing.T) {
	c := BuildChart(decadeDataset(1753, 1770))
	var buf bytes.Buffer
	if err := c.WriteSVG(&buf); err != nil {
		t.Fatalf("WriteSVG() = %v; want nil", err)
	}
	els := elements(t, buf.Bytes())

	root := els[0]
	if root.name != "svg" || root.attrs["id"] != "svg" || root.attrs["class"] != "graph" {
		t.Fatalf("root element = %+v; want <svg id=svg class=graph>", root)
	}
	for _, id := range []string{"x-axis", "y-axis", "title", "description", "legend"} {
		if _, ok := byID(els, id); !ok {
			t.Errorf("SVG missing element with id %q", id)
		}
	}

	if got := len(cells(els)); got != len(c.Cells) {
		t.Errorf("SVG has %d cells; want %d", got, len(c.Cells))
	}

	var ticks int
	for _, el := range els {
		if el.attrs["class"] == "tick" {
			ticks++
		}
	}
	if want := len(c.XTicks) + len(c.YTicks) + len(c.LegendTicks); ticks != want {
		t.Errorf("SVG has %d ticks; want %d", ticks, want)
	}
}

func TestWriteSVG_cellAttributes(t *testing.T) {
	var buf bytes.Buffer
	if err := BuildChart(scenarioDataset()).WriteSVG(&buf); err != nil {
		t.Fatalf("WriteSVG() = %v; want nil", err)
	}
	cs := cells(elements(t, buf.Bytes()))
	if len(cs) != 1 {
		t.Fatalf("SVG has %d cells; want 1", len(cs))
	}

	want := map[string]string{
		"data-month":   "0",
		"data-year":    "2000",
		"data-temp":    "8.5",
		"data-tooltip": "Year: 2000<br>Month: January<br>Temperature: 8.50°C<br>Variance: 0.50°C",
		"fill":         "#f2efee",
	}
	for k, v := range want {
		if got := cs[0].attrs[k]; got != v {
			t.Errorf("cell %s = %q; want %q", k, got, v)
		}
	}
}

func TestWriteSVG_titleText(t *testing.T) {
	var buf bytes.Buffer
	if err := BuildChart(scenarioDataset()).WriteSVG(&buf); err != nil {
		t.Fatalf("WriteSVG() = %v; want nil", err)
	}
	out := buf.String()
	for _, want := range []string{Title, Description} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
}

func TestWriteFrame_noChartContent(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteFrame(&buf); err != nil {
		t.Fatalf("WriteFrame() = %v; want nil", err)
	}
	els := elements(t, buf.Bytes())

	if els[0].name != "svg" || els[0].attrs["id"] != "svg" {
		t.Fatalf("root element = %+v; want <svg id=svg>", els[0])
	}
	if len(cells(els)) != 0 {
		t.Error("frame has cells")
	}
	for _, id := range []string{"x-axis", "y-axis", "legend", "title"} {
		if _, ok := byID(els, id); ok {
			t.Errorf("frame has element %q", id)
		}
	}
}

func TestAxisDomainPath(t *testing.T) {
	tests := []struct {
		a    axis
		want string
	}{
		{newAxis(bottom, nil, 0, 1100), "M0,6V0H1100V6"},
		{newAxis(left, nil, 440, 0), "M-6,440H0V0H-6"},
		{axis{orient: bottom, r1: 350}, "M0,0V0H350V0"},
		{newLegendAxis(nil), "M0,10V0H350V10"},
	}
	for _, tt := range tests {
		if got := tt.a.domainPath(); got != tt.want {
			t.Errorf("domainPath() = %q; want %q", got, tt.want)
		}
	}
}

func TestWriteSVG_legendAxis(t *testing.T) {
	var buf bytes.Buffer
	if err := BuildChart(decadeDataset(1753, 1770)).WriteSVG(&buf); err != nil {
		t.Fatalf("WriteSVG() = %v; want nil", err)
	}
	if !strings.Contains(buf.String(), `d="M0,10V0H350V10"`) {
		t.Error("legend axis domain path should bend 10px at both ends")
	}
}
