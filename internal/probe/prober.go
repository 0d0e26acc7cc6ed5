// Package probe verifies the URLs a page references over plain HTTP.
// It feeds the network checks: broken links, missing thumbnails and
// image weight all read the probe results collected here.
package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"

	"webaudit/internal/config"
	"webaudit/internal/domain"
)

// retryLog routes the retry client's chatter into the debug log
type retryLog struct {
	log *zap.Logger
}

// Printf implements retryablehttp's Logger interface
func (l retryLog) Printf(format string, v ...interface{}) {
	l.log.Debug(fmt.Sprintf(format, v...))
}

// Prober issues bounded HTTP probes against collected URLs
type Prober struct {
	client *retryablehttp.Client
	log    *zap.Logger
}

// NewProber creates a Prober with a retrying client tuned for quick probes
func NewProber(cfg *config.Config, logger *zap.Logger) *Prober {
	client := retryablehttp.NewClient()
	client.RetryMax = config.ProbeRetryMax
	client.HTTPClient.Timeout = cfg.ProbeTimeout
	client.Logger = retryLog{log: logger}
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Prober{client: client, log: logger}
}

// Probe checks one URL, preferring a cheap HEAD request and falling back
// to GET for servers that reject HEAD or omit the Content-Length header.
func (p *Prober) Probe(ctx context.Context, rawURL string) domain.ProbeResult {
	start := time.Now()
	result := p.do(ctx, http.MethodHead, rawURL)
	if result.Err != "" ||
		result.Status == http.StatusMethodNotAllowed ||
		result.Status == http.StatusNotImplemented ||
		result.ContentLength < 0 {
		result = p.do(ctx, http.MethodGet, rawURL)
	}
	result.Duration = time.Since(start)

	p.log.Debug("probe finished",
		zap.String("url", result.URL),
		zap.String("method", result.Method),
		zap.Int("status", result.Status),
		zap.Int64("bytes", result.ContentLength),
		zap.String("err", result.Err),
	)
	return result
}

// do performs a single probe request and normalizes the outcome
func (p *Prober) do(ctx context.Context, method, rawURL string) domain.ProbeResult {
	result := domain.ProbeResult{URL: rawURL, Method: method, ContentLength: -1}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		result.Err = err.Error()
		return result
	}

	resp, err := p.client.Do(req)
	if err != nil {
		result.Err = err.Error()
		return result
	}
	defer resp.Body.Close()

	result.Status = resp.StatusCode
	result.ContentLength = resp.ContentLength
	if method == http.MethodGet && resp.ContentLength < 0 {
		// Chunked responses carry no length header, count the body instead
		if n, copyErr := io.Copy(io.Discard, resp.Body); copyErr == nil {
			result.ContentLength = n
		}
	}
	return result
}
