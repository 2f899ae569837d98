package proxy

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/onrevhq/attribution-graph-service/internal/config"
	"github.com/onrevhq/attribution-graph-service/internal/dto"
)

const (
	apiKeyHeader = "X-Api-Key"

	upstreamTimeout = 60 * time.Second
	mintTimeout     = 10 * time.Second
)

// Forwarder authenticates callers by shared secret and relays their requests
// to the target service with a freshly minted identity token attached. Every
// method and path is accepted; the target decides what it serves.
type Forwarder struct {
	target   *url.URL
	apiKey   string
	audience string
	minter   TokenMinter
	client   *http.Client
	router   *gin.Engine
	log      *zap.Logger
}

// NewForwarder creates a new forwarder for the configured target
func NewForwarder(cfg *config.Proxy, minter TokenMinter, log *zap.Logger) (*Forwarder, error) {
	target, err := url.Parse(cfg.TargetURL)
	if err != nil {
		return nil, fmt.Errorf("invalid target URL %q: %w", cfg.TargetURL, err)
	}

	audience := cfg.Audience
	if audience == "" {
		audience = strings.TrimRight(cfg.TargetURL, "/")
	}

	f := &Forwarder{
		target:   target,
		apiKey:   cfg.APIKey,
		audience: audience,
		minter:   minter,
		client: &http.Client{
			Timeout: upstreamTimeout,
			// Redirects pass through to the caller untouched
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		router: gin.Default(),
		log:    log,
	}

	f.router.NoRoute(f.forward)

	return f, nil
}

func (f *Forwarder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.router.ServeHTTP(w, r)
}

// forward relays a single request to the target. The caller's credential
// headers are replaced with ours regardless of what was sent; a failed mint
// fails the request rather than forwarding it unauthenticated.
func (f *Forwarder) forward(c *gin.Context) {
	r := c.Request

	if c.GetHeader(apiKeyHeader) != f.apiKey {
		f.log.Warn("Rejected request with missing or invalid API key",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path))
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error:   "unauthorized",
			Message: "missing or invalid API key",
		})
		return
	}

	mintCtx, cancel := context.WithTimeout(r.Context(), mintTimeout)
	defer cancel()

	token, err := f.minter.Mint(mintCtx, f.audience)
	if err != nil {
		f.log.Error("Failed to mint identity token",
			zap.Error(err),
			zap.String("audience", f.audience))
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error:   "credential_unavailable",
			Message: "could not obtain an identity token for the upstream",
		})
		return
	}

	upstreamURL := *f.target
	upstreamURL.Path = singleJoiningSlash(f.target.Path, r.URL.Path)
	upstreamURL.RawQuery = r.URL.RawQuery

	upstreamReq, err := http.NewRequestWithContext(r.Context(), r.Method, upstreamURL.String(), r.Body)
	if err != nil {
		f.log.Error("Failed to build upstream request",
			zap.Error(err),
			zap.String("upstream", upstreamURL.String()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}
	upstreamReq.ContentLength = r.ContentLength

	copyEndToEndHeaders(upstreamReq.Header, r.Header)
	upstreamReq.Header.Set("Authorization", "Bearer "+token)
	upstreamReq.Header.Set(apiKeyHeader, f.apiKey)

	resp, err := f.client.Do(upstreamReq)
	if err != nil {
		f.log.Error("Upstream request failed",
			zap.Error(err),
			zap.String("method", r.Method),
			zap.String("upstream", upstreamURL.String()))
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Error:   "upstream_unavailable",
			Message: "upstream request failed",
		})
		return
	}
	defer resp.Body.Close()

	header := c.Writer.Header()
	for key, values := range resp.Header {
		if isHopByHopHeader(key) {
			continue
		}
		for _, value := range values {
			header.Add(key, value)
		}
	}

	c.Status(resp.StatusCode)
	// Flush the status before copying so an empty upstream body relays as
	// empty instead of falling through to the router's default 404 body.
	c.Writer.WriteHeaderNow()
	written, err := io.Copy(c.Writer, resp.Body)
	if err != nil {
		f.log.Warn("Relay interrupted mid-body",
			zap.Error(err),
			zap.Int64("bytes", written))
		return
	}

	f.log.Info("Request forwarded",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Int64("bytes", written))
}

// copyEndToEndHeaders copies request headers, dropping hop-by-hop headers and
// the caller's credential headers so only the injected credentials reach the
// target
func copyEndToEndHeaders(dst, src http.Header) {
	for key, values := range src {
		if isHopByHopHeader(key) || isCredentialHeader(key) {
			continue
		}
		for _, value := range values {
			dst.Add(key, value)
		}
	}
}

func isCredentialHeader(name string) bool {
	switch http.CanonicalHeaderKey(name) {
	case "Authorization", apiKeyHeader:
		return true
	}
	return false
}

// hopByHopHeaders are connection-scoped and must not be forwarded
var hopByHopHeaders = map[string]bool{
	"connection":          true,
	"keep-alive":          true,
	"proxy-authenticate":  true,
	"proxy-authorization": true,
	"te":                  true,
	"trailer":             true,
	"transfer-encoding":   true,
	"upgrade":             true,
}

func isHopByHopHeader(name string) bool {
	return hopByHopHeaders[strings.ToLower(name)]
}

// singleJoiningSlash joins two URL paths with exactly one slash between them
func singleJoiningSlash(a, b string) string {
	aSlash := strings.HasSuffix(a, "/")
	bSlash := strings.HasPrefix(b, "/")
	switch {
	case aSlash && bSlash:
		return a + b[1:]
	case !aSlash && !bSlash:
		return a + "/" + b
	}
	return a + b
}
