package service

import (
	"bytes"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"hey-sweetie-print/layout"
	"hey-sweetie-print/models"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	defaultFontFamily = "Georgia, 'Times New Roman', serif"
	customFontFamily  = "Sweetie Message"
	// Message pages are a 2-column grid, labels too
	gridColumns = 2
	// maxMessageRowHeight and messageRowGap are in CSS pixels
	maxMessageRowHeight = 300
	messageRowGap       = 30
)

// RenderOptions holds the presentation settings shared by both documents
type RenderOptions struct {
	BorderColor     string
	TextColor       string
	MessagesPerPage int
	LabelsPerPage   int
	// FontPath points at an OpenType/TrueType font embedded into the message document
	FontPath string
	// LogoPath points at an image placed on every address label
	LogoPath string
}

// RenderService turns laid-out pages into printable HTML documents
// Implements RenderServiceInterface
type RenderService struct {
	options   RenderOptions
	templates *template.Template
	fontFace  template.CSS
	logoURI   template.URL
}

// Ensure RenderService implements RenderServiceInterface
var _ RenderServiceInterface = (*RenderService)(nil)

// NewRenderService parses the embedded templates and loads the optional font and logo
func NewRenderService(options RenderOptions) (*RenderService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	defaults := layout.DefaultConfig()
	if options.BorderColor == "" {
		options.BorderColor = defaults.BorderColor
	}
	if options.TextColor == "" {
		options.TextColor = defaults.TextColor
	}
	// colors go into the stylesheet as trusted CSS, so only accept real color values
	for _, color := range []string{options.BorderColor, options.TextColor} {
		if !layout.ValidColor(color) {
			return nil, fmt.Errorf("%w: %q is not a CSS color", layout.ErrInvalidConfig, color)
		}
	}

	s := &RenderService{
		options:   options,
		templates: tmpl,
	}

	if options.FontPath != "" {
		fontFace, err := loadFontFace(options.FontPath)
		if err != nil {
			return nil, err
		}
		s.fontFace = fontFace
	}

	if options.LogoPath != "" {
		data, err := os.ReadFile(options.LogoPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read label logo: %w", err)
		}
		optimized, err := OptimizeLogo(data)
		if err != nil {
			return nil, fmt.Errorf("failed to prepare label logo: %w", err)
		}
		s.logoURI = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(optimized))
	}

	return s, nil
}

// loadFontFace reads a font file and returns an @font-face rule with the font inlined,
// so the renderer needs no file access
func loadFontFace(fontPath string) (template.CSS, error) {
	data, err := os.ReadFile(fontPath)
	if err != nil {
		return "", fmt.Errorf("failed to read font: %w", err)
	}

	mimeType, format := "application/x-font-opentype", "opentype"
	if strings.EqualFold(filepath.Ext(fontPath), ".ttf") {
		mimeType, format = "font/ttf", "truetype"
	}

	log.Infof("🔤 Embedding font %s (%d bytes)", filepath.Base(fontPath), len(data))
	rule := fmt.Sprintf(`@font-face {
            font-family: "%s";
            src: url("data:%s;charset=utf-8;base64,%s") format("%s");
        }`, customFontFamily, mimeType, base64.StdEncoding.EncodeToString(data), format)
	return template.CSS(rule), nil
}

// RenderMessagesHTML renders the greeting-card message document
func (s *RenderService) RenderMessagesHTML(pages []models.MessagePage) (string, error) {
	fontFamily := template.CSS(defaultFontFamily)
	if s.fontFace != "" {
		fontFamily = template.CSS(fmt.Sprintf("'%s', %s", customFontFamily, defaultFontFamily))
	}

	rows := gridRows(s.options.MessagesPerPage)
	data := struct {
		Title       string
		FontFace    template.CSS
		FontFamily  template.CSS
		BorderColor template.CSS
		TextColor   template.CSS
		Rows        int
		RowHeight   int
		RowGap      int
		Pages       []models.MessagePage
	}{
		Title:       "Messages",
		FontFace:    s.fontFace,
		FontFamily:  fontFamily,
		BorderColor: template.CSS(s.options.BorderColor),
		TextColor:   template.CSS(s.options.TextColor),
		Rows:        rows,
		RowHeight:   messageRowHeight(rows),
		RowGap:      messageRowGap,
		Pages:       pages,
	}

	return s.execute("messages.html", data)
}

// RenderLabelsHTML renders the address label document
func (s *RenderService) RenderLabelsHTML(pages []models.LabelPage) (string, error) {
	data := struct {
		Title     string
		TextColor template.CSS
		LogoURI   template.URL
		Rows      int
		Pages     []models.LabelPage
	}{
		Title:     "Labels",
		TextColor: template.CSS(s.options.TextColor),
		LogoURI:   s.logoURI,
		Rows:      gridRows(s.options.LabelsPerPage),
		Pages:     pages,
	}

	return s.execute("labels.html", data)
}

func (s *RenderService) execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.String(), nil
}

// messageRowHeight fits rows message cells on the printable height of an A4 message page.
// Cells never grow past maxMessageRowHeight.
func messageRowHeight(rows int) int {
	opts := MessagePrintOptions()
	printable := opts.PaperHeight*cssPixelsPerInch - opts.Margins.Top - opts.Margins.Bottom
	height := int((printable - float64(messageRowGap*(rows-1))) / float64(rows))
	return min(maxMessageRowHeight, height)
}

// gridRows returns how many rows a page of perPage cells needs in a 2-column grid
func gridRows(perPage int) int {
	if perPage < 1 {
		return 1
	}
	return (perPage + gridColumns - 1) / gridColumns
}
