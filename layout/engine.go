// Package layout arranges orders into fixed-size grids for the message and label
// documents.
package layout

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"hey-sweetie-print/models"
	"hey-sweetie-print/utils"
)

var (
	repeatedBreaks = regexp.MustCompile(`(\r\n|\n){2,}`)
	lineBreak      = regexp.MustCompile(`\r\n|\n`)
)

// Engine lays orders out into pages. It holds no state besides its Config and is
// safe for concurrent use.
type Engine struct {
	config Config
}

// NewEngine creates an Engine. The config must pass Validate.
func NewEngine(config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Engine{config: config}, nil
}

// Config returns the layout constants in use
func (e *Engine) Config() Config {
	return e.config
}

// PrepareMessage unescapes HTML entities and collapses runs of blank lines into a
// single line break
func (e *Engine) PrepareMessage(raw string) string {
	message := html.UnescapeString(raw)
	return repeatedBreaks.ReplaceAllString(message, "\n")
}

// Score approximates how much room a message needs: each line break costs as much
// as LineBreakWeight characters. The score saturates at MaxMessageLength.
func (e *Engine) Score(message string) int {
	breaks := len(lineBreak.FindAllStringIndex(message, -1))
	score := utf8.RuneCountInString(message) + e.config.LineBreakWeight*breaks
	return min(e.config.MaxMessageLength, score)
}

// FontSize maps a score inversely onto [MinFontSize, MaxFontSize]
func (e *Engine) FontSize(score int) float64 {
	c := e.config
	maxLen := float64(c.MaxMessageLength)
	size := ((maxLen-float64(score))/maxLen)*(c.MaxFontSize-c.MinFontSize) + c.MinFontSize
	return max(c.MinFontSize, min(size, c.MaxFontSize))
}

// MessageCell builds the cell for one message. The text itself is never truncated.
func (e *Engine) MessageCell(raw string) models.MessageCell {
	text := e.PrepareMessage(raw)
	return models.MessageCell{
		Text:     text,
		FontSize: e.FontSize(e.Score(text)),
	}
}

// MessagePages lays out every order that has a message, MessagesPerPage per page
func (e *Engine) MessagePages(list []models.Order) []models.MessagePage {
	cells := make([]models.MessageCell, 0, len(list))
	for _, o := range list {
		if !o.HasMessage() {
			continue
		}
		cells = append(cells, e.MessageCell(o.Message))
	}

	chunks := utils.Chunk(cells, e.config.MessagesPerPage)
	pages := make([]models.MessagePage, 0, len(chunks))
	for i, chunk := range chunks {
		pages = append(pages, models.MessagePage{Number: i + 1, Cells: chunk})
	}
	return pages
}

// LabelText joins the non-empty name and address fields with line breaks
func (e *Engine) LabelText(o models.Order) string {
	return strings.Join(o.AddressLines(), "\n")
}

// LabelPages lays out a label for every order, LabelsPerPage per page
func (e *Engine) LabelPages(list []models.Order) []models.LabelPage {
	cells := make([]models.LabelCell, 0, len(list))
	for _, o := range list {
		lines := o.AddressLines()
		cells = append(cells, models.LabelCell{
			Text:  strings.Join(lines, "\n"),
			Lines: lines,
		})
	}

	chunks := utils.Chunk(cells, e.config.LabelsPerPage)
	pages := make([]models.LabelPage, 0, len(chunks))
	for i, chunk := range chunks {
		pages = append(pages, models.LabelPage{Number: i + 1, Cells: chunk})
	}
	return pages
}
