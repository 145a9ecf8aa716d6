package service

import (
	"context"

	"hey-sweetie-print/models"
)

// Document names, used in file names, logs and metrics
const (
	DocumentMessages = "messages"
	DocumentLabels   = "labels"
)

// PDFRendererInterface defines the contract for turning an HTML document into a PDF
type PDFRendererInterface interface {
	RenderPDF(ctx context.Context, html string, opts PrintOptions) ([]byte, error)
}

// RenderServiceInterface defines the contract for building the HTML of both documents
type RenderServiceInterface interface {
	RenderMessagesHTML(pages []models.MessagePage) (string, error)
	RenderLabelsHTML(pages []models.LabelPage) (string, error)
}

// DocumentWriterInterface defines the contract for storing a rendered document
// Returns the location the document was written to
type DocumentWriterInterface interface {
	WriteDocument(name string, data []byte) (string, error)
}

// DriveServiceInterface defines the contract for Google Drive operations
type DriveServiceInterface interface {
	UploadDocument(ctx context.Context, folderID string, name string, data []byte) (string, error)
}

// MetricsRecorder receives run statistics
type MetricsRecorder interface {
	ObserveSummary(summary models.PrintSummary)
	ObserveRender(document string, seconds float64, pages int)
}
