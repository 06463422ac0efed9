package infrastructure

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"resume-builder/internal/domain"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/fetch"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const defaultRenderTimeout = 60 * time.Second

type ChromeOptions struct {
	// ExecPath overrides the Chrome binary chromedp looks up.
	ExecPath string
	// RemoteURL attaches to a running browser (ws:// or http:// debugger
	// endpoint) instead of launching one per document.
	RemoteURL string
	Timeout   time.Duration
}

// ChromedpConverter prints self-contained HTML to A4 PDF with headless Chrome.
// Each call gets its own browser tab; nothing is shared between calls.
type ChromedpConverter struct {
	opts ChromeOptions
}

func NewChromedpConverter(opts ChromeOptions) *ChromedpConverter {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultRenderTimeout
	}
	return &ChromedpConverter{opts: opts}
}

func (c *ChromedpConverter) allocator(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.opts.RemoteURL != "" {
		return chromedp.NewRemoteAllocator(ctx, c.opts.RemoteURL)
	}
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if c.opts.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(c.opts.ExecPath))
	}
	return chromedp.NewExecAllocator(ctx, opts...)
}

// ToPDF converts doc to PDF bytes. Every network request the page attempts
// is failed, so only inline content ends up in the output.
func (c *ChromedpConverter) ToPDF(ctx context.Context, doc string) ([]byte, error) {
	doc, err := SelfContained(doc, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrConversion, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	allocCtx, cancelAlloc := c.allocator(ctx)
	defer cancelAlloc()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	chromedp.ListenTarget(cctx, func(ev any) {
		paused, ok := ev.(*fetch.EventRequestPaused)
		if !ok {
			return
		}
		slog.DebugContext(ctx, "blocked document request", "component", "converter", "url", paused.Request.URL)
		go func() {
			t := chromedp.FromContext(cctx).Target
			_ = fetch.FailRequest(paused.RequestID, network.ErrorReasonBlockedByClient).Do(cdp.WithExecutor(cctx, t))
		}()
	})

	started := time.Now()
	var pdfBuf []byte
	err = chromedp.Run(cctx,
		chromedp.Navigate("about:blank"),
		fetch.Enable().WithPatterns([]*fetch.RequestPattern{{URLPattern: "*"}}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, doc).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm -> inches: 8.27 x 11.69
			pdfBuf, _, err = page.PrintToPDF().WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrConversion, err)
	}
	if err := ValidatePDF(pdfBuf); err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "printed pdf", "component", "converter", "bytes", len(pdfBuf), "elapsed", time.Since(started))
	return pdfBuf, nil
}
