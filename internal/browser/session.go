// Package browser drives a Chrome instance over the DevTools protocol and
// condenses rendered pages into snapshots the checks can evaluate offline.
package browser

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"

	"webaudit/internal/config"
	"webaudit/internal/domain"
)

// Session owns the single page the whole audit runs through
type Session struct {
	cfg      *config.Config
	log      *zap.Logger
	browser  *rod.Browser
	page     *rod.Page
	launched bool

	stopEvents context.CancelFunc

	mu      sync.Mutex
	console []domain.ConsoleEntry
}

// Open connects to the Chrome at cfg.DebuggerURL or launches a fresh one
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Session, error) {
	s := &Session{cfg: cfg, log: logger}

	controlURL := cfg.DebuggerURL
	if controlURL == "" {
		url, err := launcher.New().Headless(!cfg.Flags.Headful).Launch()
		if err != nil {
			return nil, fmt.Errorf("launch chrome: %w", err)
		}
		controlURL = url
		s.launched = true
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect to chrome: %w", err)
	}
	s.browser = browser

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		_ = browser.Close()
		return nil, fmt.Errorf("open page: %w", err)
	}
	s.page = page

	s.startConsoleStream(ctx)
	logger.Debug("browser session opened",
		zap.String("control_url", controlURL),
		zap.Bool("launched", s.launched))
	return s, nil
}

// startConsoleStream records console API calls and uncaught exceptions so
// the console errors check can read them after the fact
func (s *Session) startConsoleStream(ctx context.Context) {
	evCtx, cancel := context.WithCancel(ctx)
	s.stopEvents = cancel

	wait := s.page.Context(evCtx).EachEvent(
		func(ev *proto.RuntimeConsoleAPICalled) {
			s.recordConsole(string(ev.Type), stringifyArgs(ev.Args))
		},
		func(ev *proto.RuntimeExceptionThrown) {
			if ev.ExceptionDetails == nil {
				return
			}
			text := ev.ExceptionDetails.Text
			if ev.ExceptionDetails.Exception != nil && ev.ExceptionDetails.Exception.Description != "" {
				text = ev.ExceptionDetails.Exception.Description
			}
			s.recordConsole("error", text)
		},
	)
	go wait()
}

func (s *Session) recordConsole(level, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	s.mu.Lock()
	s.console = append(s.console, domain.ConsoleEntry{Level: level, Text: text})
	s.mu.Unlock()
}

// DrainConsole returns the entries collected so far and resets the buffer
func (s *Session) DrainConsole() []domain.ConsoleEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.console
	s.console = nil
	return out
}

func stringifyArgs(args []*proto.RuntimeRemoteObject) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		if a == nil {
			continue
		}
		if !a.Value.Nil() {
			parts = append(parts, a.Value.String())
			continue
		}
		if a.Description != "" {
			parts = append(parts, a.Description)
		}
	}
	return strings.Join(parts, " ")
}

// SetViewport switches the page to the given emulated screen
func (s *Session) SetViewport(vp domain.Viewport) error {
	err := proto.EmulationSetDeviceMetricsOverride{
		Width:             vp.Width,
		Height:            vp.Height,
		DeviceScaleFactor: 1.0,
		Mobile:            vp.Mobile,
	}.Call(s.page)
	if err != nil {
		return fmt.Errorf("set %s viewport: %w", vp.Label, err)
	}
	return nil
}

// Navigate loads rawURL within the configured navigation timeout
func (s *Session) Navigate(ctx context.Context, rawURL string) error {
	if err := s.page.Context(ctx).Timeout(s.cfg.NavTimeout).Navigate(rawURL); err != nil {
		return fmt.Errorf("navigate %s: %w", rawURL, err)
	}
	return nil
}

// CurrentURL returns the page's current location
func (s *Session) CurrentURL() (string, error) {
	info, err := s.page.Info()
	if err != nil {
		return "", fmt.Errorf("page info: %w", err)
	}
	return info.URL, nil
}

// Count returns how many elements match the selector right now
func (s *Session) Count(selector string) int {
	els, err := s.page.Elements(selector)
	if err != nil {
		return 0
	}
	return len(els)
}

// VisibleEnabled reports whether the first match is displayed and not disabled
func (s *Session) VisibleEnabled(selector string) bool {
	els, err := s.page.Elements(selector)
	if err != nil || len(els) == 0 {
		return false
	}
	el := els.First()
	visible, err := el.Visible()
	if err != nil || !visible {
		return false
	}
	disabled, err := el.Property("disabled")
	if err != nil {
		return true
	}
	return !disabled.Bool()
}

// Click clicks the first element matching the selector
func (s *Session) Click(ctx context.Context, selector string) error {
	el, err := s.page.Context(ctx).Element(selector)
	if err != nil {
		return fmt.Errorf("element %s: %w", selector, err)
	}
	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("click %s: %w", selector, err)
	}
	return nil
}

// Type focuses the first match and types text into it
func (s *Session) Type(ctx context.Context, selector, text string) error {
	el, err := s.page.Context(ctx).Element(selector)
	if err != nil {
		return fmt.Errorf("element %s: %w", selector, err)
	}
	if err := el.Input(text); err != nil {
		return fmt.Errorf("type into %s: %w", selector, err)
	}
	return nil
}

// ClickByText clicks the first element of the given tag whose visible text
// contains substr, case insensitively
func (s *Session) ClickByText(ctx context.Context, tag, substr string) bool {
	el := s.findByText(tag, substr)
	if el == nil {
		return false
	}
	if err := el.Context(ctx).Click(proto.InputMouseButtonLeft, 1); err != nil {
		s.log.Debug("click by text failed", zap.String("tag", tag), zap.Error(err))
		return false
	}
	return true
}

// HasByText reports whether any element of the given tag contains substr
func (s *Session) HasByText(tag, substr string) bool {
	return s.findByText(tag, substr) != nil
}

func (s *Session) findByText(tag, substr string) *rod.Element {
	els, err := s.page.Elements(tag)
	if err != nil {
		return nil
	}
	needle := strings.ToLower(substr)
	for _, el := range els {
		text, err := el.Text()
		if err != nil {
			continue
		}
		if strings.Contains(strings.ToLower(text), needle) {
			return el
		}
	}
	return nil
}

// Settle gives the page time to finish late layout and scripts
func (s *Session) Settle(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-time.After(s.cfg.SettleDelay):
	}
}

// Screenshot captures the current viewport as PNG bytes
func (s *Session) Screenshot(ctx context.Context) ([]byte, error) {
	data, err := s.page.Context(ctx).Screenshot(false, nil)
	if err != nil {
		return nil, fmt.Errorf("screenshot: %w", err)
	}
	return data, nil
}

// Close tears down the page and the browser connection
func (s *Session) Close() error {
	if s.stopEvents != nil {
		s.stopEvents()
	}
	if s.page != nil {
		_ = s.page.Close()
	}
	var err error
	if s.browser != nil {
		err = s.browser.Close()
	}
	s.log.Debug("browser session closed", zap.Bool("launched", s.launched))
	return err
}
