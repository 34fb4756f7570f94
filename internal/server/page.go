package server

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"

	"github.com/example/framemaker/internal/frame"
)

// Index serves the upload form.
func (s *Server) Index(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := IndexPage(s.presets.List(), s.cfg.Preset).Render(c.Request.Context(), c.Writer); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
	}
}

// IndexPage is the form posting to /api/frame.
func IndexPage(presets []string, selected string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>Frame Maker</title>`+
			`<meta name="viewport" content="width=device-width, initial-scale=1"></head><body>`+
			`<h1>Frame Maker</h1>`+
			`<form method="post" action="/api/frame" enctype="multipart/form-data" target="preview">`); err != nil {
			return err
		}
		if err := field(w, "photo", "Photo", `<input type="file" name="photo" accept="image/*">`); err != nil {
			return err
		}
		if err := field(w, "message", "Message", `<input type="text" name="message" maxlength="60">`); err != nil {
			return err
		}
		if err := presetSelect(ctx, w, presets, selected); err != nil {
			return err
		}
		if err := field(w, "color", "Ribbon colours", `<input type="text" name="color" placeholder="#d42426,#2a9d8f">`); err != nil {
			return err
		}
		if err := field(w, "zoom", "Zoom", `<input type="range" name="zoom" min="1" max="3" step="0.05" value="1">`); err != nil {
			return err
		}
		if err := field(w, "pan", "Pan", `<input type="number" name="pan_x" value="0"> <input type="number" name="pan_y" value="0">`); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, `<label><input type="checkbox" name="download" value="true"> Download as %s</label>`+
			`<button type="submit">Render</button></form>`+
			`<iframe name="preview" title="preview" width="%d" height="%d"></iframe></body></html>`,
			templ.EscapeString(frame.ExportFilename("")), frame.ReferenceSize+20, frame.ReferenceSize+20)
		return err
	})
}

func field(w io.Writer, id, label, input string) error {
	_, err := fmt.Fprintf(w, `<p><label for="%s">%s</label> %s</p>`, id, templ.EscapeString(label), input)
	return err
}

func presetSelect(_ context.Context, w io.Writer, presets []string, selected string) error {
	if _, err := io.WriteString(w, `<p><label for="preset">Preset</label> <select name="preset" id="preset">`); err != nil {
		return err
	}
	for _, name := range presets {
		sel := ""
		if name == selected {
			sel = " selected"
		}
		if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>`, templ.EscapeString(name), sel, templ.EscapeString(name)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</select></p>`)
	return err
}
