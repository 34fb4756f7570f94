package server

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/framemaker/internal/frame"
	"github.com/example/framemaker/internal/palette"
	"github.com/example/framemaker/internal/render"
)

// param reads a form field from the body first, then the query string.
func param(c *gin.Context, key string) string {
	if v, ok := c.GetPostForm(key); ok {
		return strings.TrimSpace(v)
	}
	return strings.TrimSpace(c.Query(key))
}

func paramList(c *gin.Context, key string) []string {
	vals, ok := c.GetPostFormArray(key)
	if !ok {
		vals = c.QueryArray(key)
	}
	var out []string
	for _, v := range vals {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func floatParam(c *gin.Context, key string, def float64) (float64, error) {
	raw := param(c, key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", key)
	}
	return v, nil
}

// parseBody reads a form body up front so a truncated or oversized upload
// is reported instead of leaving every field empty.
func parseBody(c *gin.Context) error {
	if c.Request.Method != http.MethodPost {
		return nil
	}
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		return c.Request.ParseMultipartForm(maxMemory)
	}
	return c.Request.ParseForm()
}

// tooLarge reports a body cut off by MaxBytesReader. mime/multipart does not
// wrap every read error, so the message is checked as well.
func tooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe) || strings.Contains(err.Error(), "request body too large")
}

// Frame renders a frame PNG. Parameters come from the query string or a
// multipart form; an uploaded "photo" file becomes the frame photo.
func (s *Server) Frame(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUpload)
	if err := parseBody(c); err != nil {
		if tooLarge(err) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("request body exceeds %d bytes", maxUpload)})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	st, err := s.cfg.NewState()
	if err != nil {
		s.log.Warn("configured preset unavailable", zap.Error(err))
		st = frame.NewState()
	}
	if name := param(c, "preset"); name != "" {
		p, err := s.presets.Load(name)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		p.Apply(&st)
	}

	st.SetMessage(param(c, "message"))
	if specs := paramList(c, "color"); len(specs) > 0 {
		colors := make([]color.NRGBA, 0, len(specs))
		for _, raw := range specs {
			colors = append(colors, palette.ParseOr(raw, frame.DefaultRibbonColors[0], s.log))
		}
		st.SetRibbonColors(colors)
	}
	if raw := param(c, "text_color"); raw != "" {
		st.SetTextColor(palette.ParseOr(raw, st.TextColor, s.log))
	}

	fh, err := c.FormFile("photo")
	if err != nil && !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if fh != nil {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		img, err := frame.DecodePhoto(f)
		_ = f.Close()
		switch {
		case err == nil:
			st.SetImage(img)
		case errors.Is(err, frame.ErrUnsupportedImage):
			s.log.Warn("photo ignored", zap.String("filename", fh.Filename), zap.Error(err))
			c.Header("X-Frame-Warning", "photo is not a supported image")
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	l := s.cfg.Layout()
	l.Logger = s.log
	zoom, err := floatParam(c, "zoom", 1)
	if err == nil {
		st.SetZoom(zoom)
		var panX, panY float64
		if panX, err = floatParam(c, "pan_x", 0); err == nil {
			if panY, err = floatParam(c, "pan_y", 0); err == nil {
				st.SetPan(panX, panY)
			}
		}
	}
	if err == nil {
		var size float64
		if size, err = floatParam(c, "size", float64(l.Size)); err == nil {
			if size < frame.MinSize || size > frame.MaxSize {
				err = fmt.Errorf("size must be between %d and %d", frame.MinSize, frame.MaxSize)
			}
			l.Size = int(size)
		}
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if raw := param(c, "shadow"); raw != "" {
		if on, _ := strconv.ParseBool(raw); on {
			l.TextShadow = render.DefaultShadowOptions()
		} else {
			l.TextShadow = render.ShadowOptions{}
		}
	}
	if policy, on := s.cfg.Policy(); on {
		st.Clamp(policy, float64(l.Size))
	}

	img, err := frame.Render(st, l)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	var buf bytes.Buffer
	if err := frame.EncodePNG(&buf, img); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	disposition := "inline"
	if dl, _ := strconv.ParseBool(param(c, "download")); dl {
		disposition = "attachment"
	}
	c.Header("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, frame.ExportFilename(st.Message)))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

type presetJSON struct {
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
	Text   string   `json:"text"`
}

// Presets lists the available presets with their colours.
func (s *Server) Presets(c *gin.Context) {
	var out []presetJSON
	for _, name := range s.presets.List() {
		p, err := s.presets.Load(name)
		if err != nil {
			s.log.Warn("preset unreadable", zap.String("name", name), zap.Error(err))
			continue
		}
		colors := make([]string, len(p.Colors))
		for i, col := range p.Colors {
			colors[i] = palette.Hex(col)
		}
		out = append(out, presetJSON{Name: name, Colors: colors, Text: palette.Hex(p.Text)})
	}
	c.JSON(http.StatusOK, gin.H{"presets": out})
}
