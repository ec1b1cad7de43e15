package page

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/playwright-community/playwright-go"
)

const (
	readStyleScript = `(id) => {
  const el = document.getElementById(id);
  return el ? el.textContent : "";
}`
	writeStyleScript = `([id, css]) => {
  let el = document.getElementById(id);
  if (!el) {
    el = document.createElement("style");
    el.id = id;
    el.setAttribute("data-includs", "true");
    (document.head || document.documentElement).appendChild(el);
  }
  if (el.textContent !== css) {
    el.textContent = css;
  }
}`
	selectionScript = `() => {
  const sel = window.getSelection();
  return sel ? sel.toString() : "";
}`
)

// BrowserOptions configures the headless browser used for previews.
type BrowserOptions struct {
	Headless       bool
	Install        bool
	ViewportWidth  int
	ViewportHeight int
	TimeoutMS      float64
}

// Browser drives one Chromium page through Playwright.
type Browser struct {
	mu      sync.Mutex
	pw      *playwright.Playwright
	browser playwright.Browser
	page    playwright.Page
}

// LaunchBrowser starts Playwright and opens a blank page.
func LaunchBrowser(opts BrowserOptions) (*Browser, error) {
	runOpts := &playwright.RunOptions{
		Browsers: []string{"chromium"},
		Verbose:  false,
		Stdout:   io.Discard,
		Stderr:   io.Discard,
	}
	if opts.Install {
		if err := playwright.Install(runOpts); err != nil {
			return nil, fmt.Errorf("failed to install playwright: %w", err)
		}
	}

	pw, err := playwright.Run(runOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	width, height := opts.ViewportWidth, opts.ViewportHeight
	if width <= 0 || height <= 0 {
		width, height = 1280, 800
	}
	bctx, err := browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{Width: width, Height: height},
	})
	if err != nil {
		_ = browser.Close()
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}

	pg, err := bctx.NewPage()
	if err != nil {
		_ = browser.Close()
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	if opts.TimeoutMS > 0 {
		pg.SetDefaultTimeout(opts.TimeoutMS)
	}

	return &Browser{pw: pw, browser: browser, page: pg}, nil
}

// Open navigates to url and waits for the DOM to load.
func (b *Browser) Open(url string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := b.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}

// URL returns the current page URL.
func (b *Browser) URL() string {
	return b.page.URL()
}

func (b *Browser) Text(context.Context) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	v, err := b.page.Evaluate(readStyleScript, StyleElementID)
	if err != nil {
		return "", fmt.Errorf("failed to read stylesheet: %w", err)
	}
	s, _ := v.(string)
	return s, nil
}

func (b *Browser) SetText(_ context.Context, css string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := b.page.Evaluate(writeStyleScript, []string{StyleElementID, css}); err != nil {
		return fmt.Errorf("failed to write stylesheet: %w", err)
	}
	return nil
}

// SelectedText returns the user's current text selection on the page.
func (b *Browser) SelectedText() (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	v, err := b.page.Evaluate(selectionScript)
	if err != nil {
		return "", fmt.Errorf("failed to read selection: %w", err)
	}
	s, _ := v.(string)
	return s, nil
}

// BlockText returns the inner text of the first element matching selector.
func (b *Browser) BlockText(selector string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	text, err := b.page.Locator(selector).First().InnerText()
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", selector, err)
	}
	return text, nil
}

// Screenshot saves a full-page PNG to path.
func (b *Browser) Screenshot(path string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := b.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	}); err != nil {
		return fmt.Errorf("failed to take screenshot: %w", err)
	}
	return nil
}

// Close shuts the browser and the Playwright driver down.
func (b *Browser) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	var firstErr error
	if err := b.browser.Close(); err != nil {
		firstErr = fmt.Errorf("failed to close browser: %w", err)
	}
	if err := b.pw.Stop(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("failed to stop playwright: %w", err)
	}
	return firstErr
}
