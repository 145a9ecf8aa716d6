package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hey-sweetie-print/layout"
	"hey-sweetie-print/models"
	"hey-sweetie-print/repository"
)

type fakeRenderer struct {
	calls []PrintOptions
	html  []string
	err   error
}

func (f *fakeRenderer) RenderPDF(_ context.Context, html string, opts PrintOptions) ([]byte, error) {
	f.calls = append(f.calls, opts)
	f.html = append(f.html, html)
	if f.err != nil {
		return nil, &RenderError{Document: opts.Document, Err: f.err}
	}
	return []byte("%PDF " + opts.Document), nil
}

type fakeWriter struct {
	written map[string][]byte
}

func (f *fakeWriter) WriteDocument(name string, data []byte) (string, error) {
	if f.written == nil {
		f.written = map[string][]byte{}
	}
	f.written[name] = data
	return "out/" + name, nil
}

type fakeDrive struct {
	folders []string
	names   []string
}

func (f *fakeDrive) UploadDocument(_ context.Context, folderID, name string, _ []byte) (string, error) {
	f.folders = append(f.folders, folderID)
	f.names = append(f.names, name)
	return "https://drive.example/" + name, nil
}

type fakeMetrics struct {
	summaries []models.PrintSummary
	renders   map[string]int
}

func (f *fakeMetrics) ObserveSummary(s models.PrintSummary) {
	f.summaries = append(f.summaries, s)
}

func (f *fakeMetrics) ObserveRender(document string, _ float64, pages int) {
	if f.renders == nil {
		f.renders = map[string]int{}
	}
	f.renders[document] += pages
}

var startAt = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

func newTestPrintService(t *testing.T, renderer *fakeRenderer, writer *fakeWriter, opts ...PrintOption) *PrintService {
	t.Helper()
	html, err := NewRenderService(defaultRenderOptions())
	require.NoError(t, err)
	engine, err := layout.NewEngine(layout.DefaultConfig())
	require.NoError(t, err)
	return NewPrintService(engine, html, renderer, writer, opts...)
}

func bulkRows(n int, message string) []models.RawRow {
	rows := make([]models.RawRow, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, models.RawRow{
			"Name":     "Customer",
			"Address1": "1 High Street",
			"Postcode": "BS1 1AA",
			"Message":  message,
		})
	}
	return rows
}

func TestPrintService_Print(t *testing.T) {
	renderer := &fakeRenderer{}
	writer := &fakeWriter{}
	m := &fakeMetrics{}
	s := newTestPrintService(t, renderer, writer, WithMetrics(m))

	rows := append(bulkRows(7, "Happy birthday!"), bulkRows(8, "")...)
	summary, err := s.Print(context.Background(), PrintRequest{
		Source:  repository.NewMemorySource(rows),
		StartAt: startAt,
	})

	require.NoError(t, err)
	assert.False(t, summary.NothingToPrint())
	assert.Equal(t, 15, summary.RowsRead)
	assert.Equal(t, 15, summary.OrdersByOrigin[models.OriginBulk])
	assert.Equal(t, 15, summary.Entries)
	assert.Equal(t, 7, summary.MessageCount)
	assert.Equal(t, 2, summary.MessagePages)
	assert.Equal(t, 2, summary.LabelPages)
	assert.Equal(t, "out/hey-sweetie-messages_2026-10-14T09-30-00.pdf", summary.MessagesPath)
	assert.Equal(t, "out/hey-sweetie-labels_2026-10-14T09-30-00.pdf", summary.LabelsPath)
	assert.Empty(t, summary.Uploaded)

	require.Len(t, renderer.calls, 2)
	assert.Equal(t, MessagePrintOptions(), renderer.calls[0])
	assert.Equal(t, LabelPrintOptions(), renderer.calls[1])
	assert.Contains(t, renderer.html[0], "Happy birthday!")
	assert.Len(t, writer.written, 2)

	require.Len(t, m.summaries, 1)
	assert.Equal(t, summary, m.summaries[0])
	assert.Equal(t, map[string]int{DocumentMessages: 2, DocumentLabels: 2}, m.renders)
}

func TestPrintService_ExpandsQuantity(t *testing.T) {
	renderer := &fakeRenderer{}
	s := newTestPrintService(t, renderer, &fakeWriter{})

	rows := []models.RawRow{{"Name": "Ann", "Quantity": "3", "Message": "x"}}
	summary, err := s.Print(context.Background(), PrintRequest{
		Source:  repository.NewMemorySource(rows),
		StartAt: startAt,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Selected)
	assert.Equal(t, 3, summary.Entries)
	assert.Equal(t, 3, summary.MessageCount)
}

func TestPrintService_SkipsMessagesWithoutMessages(t *testing.T) {
	renderer := &fakeRenderer{}
	writer := &fakeWriter{}
	s := newTestPrintService(t, renderer, writer)

	summary, err := s.Print(context.Background(), PrintRequest{
		Source:  repository.NewMemorySource(bulkRows(3, "")),
		StartAt: startAt,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, summary.MessagePages)
	assert.Empty(t, summary.MessagesPath)
	assert.NotEmpty(t, summary.LabelsPath)
	require.Len(t, renderer.calls, 1)
	assert.Equal(t, DocumentLabels, renderer.calls[0].Document)
}

func TestPrintService_NothingToPrint(t *testing.T) {
	renderer := &fakeRenderer{}
	writer := &fakeWriter{}
	m := &fakeMetrics{}
	s := newTestPrintService(t, renderer, writer, WithMetrics(m))

	// a Wix order that has already been fulfilled
	rows := []models.RawRow{{"Order #": "1001", "Delivery customer": "Ann", "Fulfillment status": "Fulfilled"}}
	summary, err := s.Print(context.Background(), PrintRequest{
		Source:  repository.NewMemorySource(rows),
		StartAt: startAt,
	})

	require.NoError(t, err)
	assert.True(t, summary.NothingToPrint())
	assert.Equal(t, 1, summary.RowsRead)
	assert.Equal(t, 1, summary.OrdersByOrigin[models.OriginWix])
	assert.Empty(t, renderer.calls)
	assert.Empty(t, writer.written)
	assert.Len(t, m.summaries, 1)
}

func TestPrintService_Upload(t *testing.T) {
	drive := &fakeDrive{}
	s := newTestPrintService(t, &fakeRenderer{}, &fakeWriter{}, WithDrive(drive))

	summary, err := s.Print(context.Background(), PrintRequest{
		Source:        repository.NewMemorySource(bulkRows(1, "Hi")),
		StartAt:       startAt,
		DriveFolderID: "folder-1",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"folder-1", "folder-1"}, drive.folders)
	assert.Equal(t, []string{
		"hey-sweetie-messages_2026-10-14T09-30-00.pdf",
		"hey-sweetie-labels_2026-10-14T09-30-00.pdf",
	}, drive.names)
	assert.Len(t, summary.Uploaded, 2)
}

func TestPrintService_NoUploadWithoutFolder(t *testing.T) {
	drive := &fakeDrive{}
	s := newTestPrintService(t, &fakeRenderer{}, &fakeWriter{}, WithDrive(drive))

	_, err := s.Print(context.Background(), PrintRequest{
		Source:  repository.NewMemorySource(bulkRows(1, "Hi")),
		StartAt: startAt,
	})

	require.NoError(t, err)
	assert.Empty(t, drive.names)
}

func TestPrintService_RenderFailure(t *testing.T) {
	renderer := &fakeRenderer{err: ErrRenderTimeout}
	writer := &fakeWriter{}
	s := newTestPrintService(t, renderer, writer)

	_, err := s.Print(context.Background(), PrintRequest{
		Source:  repository.NewMemorySource(bulkRows(1, "Hi")),
		StartAt: startAt,
	})

	var renderErr *RenderError
	require.True(t, errors.As(err, &renderErr))
	assert.Equal(t, DocumentMessages, renderErr.Document)
	assert.ErrorIs(t, err, ErrRenderTimeout)
	assert.Empty(t, writer.written)
}

func TestPrintService_SourceFailure(t *testing.T) {
	s := newTestPrintService(t, &fakeRenderer{}, &fakeWriter{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Print(ctx, PrintRequest{Source: repository.NewMemorySource(nil)})

	assert.ErrorIs(t, err, context.Canceled)
}
