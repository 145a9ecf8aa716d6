package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
)

const (
	defaultRenderTimeout = 30 * time.Second
	// CSS pixels per inch; Chrome's print margins are given in inches
	cssPixelsPerInch = 96.0
	// A4 in inches
	a4Width  = 8.27
	a4Height = 11.69
)

// ErrRenderTimeout is returned when a document did not finish rendering in time
var ErrRenderTimeout = errors.New("render timed out")

// RenderError wraps a failure to render one document
type RenderError struct {
	Document string
	Err      error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to render %s: %v", e.Document, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Margins are page margins in CSS pixels
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// UniformMargins returns the same margin on every side
func UniformMargins(px float64) Margins {
	return Margins{Top: px, Right: px, Bottom: px, Left: px}
}

// PrintOptions describes the paper a document is printed on
type PrintOptions struct {
	Document    string
	PaperWidth  float64 // inches
	PaperHeight float64 // inches
	Margins     Margins
}

// MessagePrintOptions returns A4 with 15px margins on every side
func MessagePrintOptions() PrintOptions {
	return PrintOptions{
		Document:    DocumentMessages,
		PaperWidth:  a4Width,
		PaperHeight: a4Height,
		Margins:     UniformMargins(15),
	}
}

// LabelPrintOptions returns A4 with the margins of a 14-up label sheet
func LabelPrintOptions() PrintOptions {
	return PrintOptions{
		Document:    DocumentLabels,
		PaperWidth:  a4Width,
		PaperHeight: a4Height,
		Margins:     Margins{Top: 44, Right: 12, Bottom: 44, Left: 12},
	}
}

func pxToInches(px float64) float64 {
	return px / cssPixelsPerInch
}

// ChromedpConfig configures the headless Chrome renderer
type ChromedpConfig struct {
	// ExecPath is the Chrome/Chromium binary; detected when empty
	ExecPath string
	// RemoteURL connects to an already running browser instead of launching one
	RemoteURL string
	Timeout   time.Duration
}

// ChromedpRenderer prints HTML documents to PDF with headless Chrome
// Implements PDFRendererInterface
type ChromedpRenderer struct {
	config ChromedpConfig
}

// Ensure ChromedpRenderer implements PDFRendererInterface
var _ PDFRendererInterface = (*ChromedpRenderer)(nil)

// NewChromedpRenderer creates a ChromedpRenderer
func NewChromedpRenderer(config ChromedpConfig) *ChromedpRenderer {
	if config.Timeout <= 0 {
		config.Timeout = defaultRenderTimeout
	}
	if config.ExecPath == "" && config.RemoteURL == "" {
		config.ExecPath = findChrome(chromeLocations)
	}
	return &ChromedpRenderer{config: config}
}

// chromeLocations are the usual install paths of Chrome and Chromium on Linux and macOS
var chromeLocations = []string{
	"/usr/bin/chromium",
	"/usr/bin/chromium-browser",
	"/usr/bin/google-chrome",
	"/usr/bin/google-chrome-stable",
	"/snap/bin/chromium",
	"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
}

// findChrome returns the first existing location, or "" to let chromedp search PATH
func findChrome(locations []string) string {
	for _, location := range locations {
		if info, err := os.Stat(location); err == nil && !info.IsDir() {
			return location
		}
	}
	return ""
}

// allocator returns a browser allocator context for one render
func (r *ChromedpRenderer) allocator(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.config.RemoteURL != "" {
		return chromedp.NewRemoteAllocator(ctx, r.config.RemoteURL)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("font-render-hinting", "none"),
	)
	if r.config.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(r.config.ExecPath))
	}
	return chromedp.NewExecAllocator(ctx, opts...)
}

// RenderPDF loads html into a blank page and prints it
func (r *ChromedpRenderer) RenderPDF(ctx context.Context, html string, opts PrintOptions) ([]byte, error) {
	if strings.TrimSpace(html) == "" {
		return nil, &RenderError{Document: opts.Document, Err: errors.New("HTML content is empty")}
	}

	// The timeout covers browser start-up as well as printing
	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	allocCtx, allocCancel := r.allocator(ctx)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(func(format string, args ...interface{}) {
			log.Debugf(format, args...)
		}),
	)
	defer browserCancel()

	start := time.Now()
	var pdfBuf []byte

	err := chromedp.Run(browserCtx,
		// Load the document straight into the blank frame, no file or server needed
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		// Wait for embedded fonts before printing
		chromedp.Evaluate(`document.fonts.ready.then(() => true)`, nil,
			func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
				return p.WithAwaitPromise(true)
			}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(false).
				WithPaperWidth(opts.PaperWidth).
				WithPaperHeight(opts.PaperHeight).
				WithMarginTop(pxToInches(opts.Margins.Top)).
				WithMarginRight(pxToInches(opts.Margins.Right)).
				WithMarginBottom(pxToInches(opts.Margins.Bottom)).
				WithMarginLeft(pxToInches(opts.Margins.Left)).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		// chromedp reports a cancelled context; tell timeouts apart for the caller
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, &RenderError{
				Document: opts.Document,
				Err:      fmt.Errorf("%w after %s: %v", ErrRenderTimeout, r.config.Timeout, err),
			}
		}
		return nil, &RenderError{Document: opts.Document, Err: err}
	}

	if len(pdfBuf) == 0 {
		return nil, &RenderError{Document: opts.Document, Err: errors.New("generated PDF is empty")}
	}

	log.Infof("📄 Rendered %s: %d bytes in %s", opts.Document, len(pdfBuf), time.Since(start).Round(time.Millisecond))
	return pdfBuf, nil
}
