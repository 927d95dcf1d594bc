package canvasrenderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/bitpress/layout"
	"github.com/ByLCY/bitpress/raster"
	"github.com/ByLCY/bitpress/renderer"
)

// Renderer places rendered pages into a single PDF via github.com/tdewolff/canvas,
// one PDF page per bitmap page.
type Renderer struct {
	dpi float64
}

var _ renderer.Renderer = (*Renderer)(nil)

// NewRenderer creates a PDF renderer; dpi maps bitmap pixels to page size
// (layout.DefaultDPI when dpi <= 0).
func NewRenderer(dpi float64) *Renderer {
	if dpi <= 0 {
		dpi = layout.DefaultDPI
	}
	return &Renderer{dpi: dpi}
}

func (r *Renderer) Extension() string { return ".pdf" }

// Render renders all pages into one PDF document.
func (r *Renderer) Render(pages []*raster.Buffer, meta layout.DocumentMeta) ([][]byte, error) {
	if len(pages) == 0 {
		return nil, fmt.Errorf("缺少可渲染的页面")
	}

	for i, page := range pages {
		if page == nil {
			return nil, fmt.Errorf("第 %d 页为空", i+1)
		}
	}

	dpmm := r.dpi / layout.MmPerInch
	var buf bytes.Buffer
	w, h := r.pageSize(pages[0])
	writer := pdf.New(&buf, w, h, nil)
	applyMeta(writer, meta)
	for i, page := range pages {
		w, h := r.pageSize(page)
		if i > 0 {
			writer.NewPage(w, h)
		}
		c := canvas.New(w, h)
		ctx := canvas.NewContext(c)
		ctx.DrawImage(0, 0, page, canvas.DPMM(dpmm))
		c.RenderTo(writer)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return [][]byte{buf.Bytes()}, nil
}

// pageSize returns the page size in millimeters.
func (r *Renderer) pageSize(page *raster.Buffer) (float64, float64) {
	dpmm := r.dpi / layout.MmPerInch
	return float64(page.Width()) / dpmm, float64(page.Height()) / dpmm
}

func applyMeta(writer *pdf.PDF, meta layout.DocumentMeta) {
	if writer == nil {
		return
	}
	keywords := strings.Join(meta.Keywords, ", ")
	writer.SetInfo(meta.Title, meta.Subject, keywords, meta.Author, meta.Creator)
}
