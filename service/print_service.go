package service

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"hey-sweetie-print/layout"
	"hey-sweetie-print/models"
	"hey-sweetie-print/orders"
	"hey-sweetie-print/repository"
)

// PrintRequest describes one print run
type PrintRequest struct {
	Source  repository.RowSourceInterface
	Select  models.SelectOptions
	StartAt time.Time // sale dates are compared against it; also stamps file names
	// DriveFolderID, when set together with a Drive service, uploads both documents
	DriveFolderID string
}

// PrintService runs the whole pipeline: rows -> orders -> pages -> PDFs
type PrintService struct {
	engine   *layout.Engine
	html     RenderServiceInterface
	renderer PDFRendererInterface
	writer   DocumentWriterInterface
	drive    DriveServiceInterface
	metrics  MetricsRecorder
}

// PrintOption configures optional PrintService collaborators
type PrintOption func(*PrintService)

// WithDrive uploads rendered documents through ds
func WithDrive(ds DriveServiceInterface) PrintOption {
	return func(s *PrintService) {
		s.drive = ds
	}
}

// WithMetrics reports run statistics to m
func WithMetrics(m MetricsRecorder) PrintOption {
	return func(s *PrintService) {
		s.metrics = m
	}
}

// NewPrintService creates a new PrintService
func NewPrintService(
	engine *layout.Engine,
	html RenderServiceInterface,
	renderer PDFRendererInterface,
	writer DocumentWriterInterface,
	opts ...PrintOption,
) *PrintService {
	s := &PrintService{
		engine:   engine,
		html:     html,
		renderer: renderer,
		writer:   writer,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Print reads the export, selects the orders to print and renders the message and
// label documents. When nothing is selected no document is rendered and the returned
// summary reports NothingToPrint.
func (s *PrintService) Print(ctx context.Context, req PrintRequest) (models.PrintSummary, error) {
	var summary models.PrintSummary

	if req.StartAt.IsZero() {
		req.StartAt = time.Now()
	}

	// 1. Read and normalize every row
	rows, err := req.Source.ReadRows(ctx)
	if err != nil {
		return summary, fmt.Errorf("failed to read orders: %w", err)
	}
	summary.RowsRead = len(rows)

	normalized := orders.NormalizeAll(rows)
	summary.OrdersByOrigin = orders.CountByOrigin(normalized)

	// 2. Select, then one entry per purchased unit
	selected := orders.Filter(normalized, req.Select, req.StartAt)
	entries := orders.Expand(selected)
	summary.Selected = len(selected)
	summary.Entries = len(entries)

	log.Infof("📦 %d rows -> %d orders selected (%s) -> %d entries", len(rows), len(selected), req.Select.Mode, len(entries))

	if len(entries) == 0 {
		log.Warnf("🤷 Nothing to print")
		s.observe(summary)
		return summary, nil
	}

	// 3. Lay out both documents
	messagePages := s.engine.MessagePages(entries)
	labelPages := s.engine.LabelPages(entries)
	summary.MessagePages = len(messagePages)
	summary.LabelPages = len(labelPages)
	for _, p := range messagePages {
		summary.MessageCount += len(p.Cells)
	}

	log.Infof("💌 %d messages found on %d pages, 🏷️  %d labels on %d pages",
		summary.MessageCount, len(messagePages), len(entries), len(labelPages))

	var rendered []renderedDocument

	// Documents are rendered one after the other; each call owns its browser
	if len(messagePages) > 0 {
		html, err := s.html.RenderMessagesHTML(messagePages)
		if err != nil {
			return summary, fmt.Errorf("failed to build messages document: %w", err)
		}
		doc, err := s.emit(ctx, html, MessagePrintOptions(), len(messagePages), req)
		if err != nil {
			return summary, err
		}
		summary.MessagesPath = doc.path
		rendered = append(rendered, doc)
	} else {
		log.Infof("⏭️  No messages to print, skipping messages document")
	}

	// Every entry gets a label, so this document is always printed
	html, err := s.html.RenderLabelsHTML(labelPages)
	if err != nil {
		return summary, fmt.Errorf("failed to build labels document: %w", err)
	}
	doc, err := s.emit(ctx, html, LabelPrintOptions(), len(labelPages), req)
	if err != nil {
		return summary, err
	}
	summary.LabelsPath = doc.path
	rendered = append(rendered, doc)

	// 4. Upload only once every document is on disk
	if s.drive != nil && req.DriveFolderID != "" {
		uploaded, err := s.upload(ctx, req.DriveFolderID, rendered)
		if err != nil {
			return summary, err
		}
		summary.Uploaded = uploaded
	}

	s.observe(summary)
	log.Infof("🎉 Print run completed: %d messages, %d labels", summary.MessageCount, summary.Entries)
	return summary, nil
}

// renderedDocument is a PDF that has been written out
type renderedDocument struct {
	name string
	path string
	data []byte
}

// emit renders one document and writes it out
func (s *PrintService) emit(ctx context.Context, html string, opts PrintOptions, pages int, req PrintRequest) (renderedDocument, error) {
	start := time.Now()
	pdf, err := s.renderer.RenderPDF(ctx, html, opts)
	if err != nil {
		return renderedDocument{}, err
	}
	if s.metrics != nil {
		s.metrics.ObserveRender(opts.Document, time.Since(start).Seconds(), pages)
	}

	name := DocumentFileName(opts.Document, req.StartAt)
	path, err := s.writer.WriteDocument(name, pdf)
	if err != nil {
		return renderedDocument{}, err
	}
	return renderedDocument{name: name, path: path, data: pdf}, nil
}

// upload pushes the rendered documents to a Drive folder
func (s *PrintService) upload(ctx context.Context, folderID string, docs []renderedDocument) ([]string, error) {
	links := make([]string, 0, len(docs))
	for _, doc := range docs {
		link, err := s.drive.UploadDocument(ctx, folderID, doc.name, doc.data)
		if err != nil {
			return links, err
		}
		links = append(links, link)
	}
	return links, nil
}

func (s *PrintService) observe(summary models.PrintSummary) {
	if s.metrics != nil {
		s.metrics.ObserveSummary(summary)
	}
}
