package vidnavigator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/vidnavigator/vidnavigator-go/internal/api"
	"github.com/vidnavigator/vidnavigator-go/internal/job"
	"github.com/vidnavigator/vidnavigator-go/internal/uploadqueue"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.vidnavigator.com/v1"

	// EnvAPIKey names the environment variable consulted when New is
	// called with an empty key.
	EnvAPIKey = "VIDNAVIGATOR_API_KEY"

	userAgent = "vidnavigator-go/0.1.0"

	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 3
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client talks to the VidNavigator Developer API. Construct it with New,
// share it freely across goroutines, and Close it when done so the
// background upload executor drains.
type Client struct {
	baseURL    string
	apiKey     string
	http       *http.Client
	exec       executor
	maxRetries int

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client. An empty apiKey falls back to the
// VIDNAVIGATOR_API_KEY environment variable; if both are empty the
// returned error matches ErrAuthentication.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		apiKey = os.Getenv(EnvAPIKey)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: API key was not provided; pass it explicitly or set %s", ErrAuthentication, EnvAPIKey)
	}

	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		http:       &http.Client{Timeout: defaultTimeout},
		maxRetries: defaultMaxRetries,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.exec == nil {
		exec, err := newDefaultExecutor()
		if err != nil {
			return nil, err
		}
		c.exec = exec
	}

	// Wrap the transport so every request carries the API key headers.
	c.wrapTransportWithAPIKey()

	return c, nil
}

// NewFromEnv constructs a Client entirely from VIDNAVIGATOR_* environment
// variables (see Config). Explicit opts are applied last and win.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	base := []Option{
		WithBaseURL(cfg.BaseURL),
		WithHTTPTimeout(cfg.Timeout),
		WithMaxRetries(cfg.MaxRetries),
	}
	if cfg.Debug {
		base = append(base, WithDebugLogging(true))
	}
	return New(cfg.APIKey, append(base, opts...)...)
}

// wrapTransportWithAPIKey wraps the HTTP client's transport so every
// request automatically carries authentication and identification headers.
func (c *Client) wrapTransportWithAPIKey() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &apiKeyTransport{
		base:   baseTransport,
		apiKey: c.apiKey,
	}
}

// apiKeyTransport adds X-API-Key auth plus User-Agent, Accept and a fresh
// X-Request-ID to each outgoing request.
type apiKeyTransport struct {
	base   http.RoundTripper
	apiKey string
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("X-API-Key", t.apiKey)
	cloned.Header.Set("User-Agent", userAgent)
	cloned.Header.Set("Accept", "application/json")
	if cloned.Header.Get("X-Request-ID") == "" {
		cloned.Header.Set("X-Request-ID", uuid.NewString())
	}
	return t.base.RoundTrip(cloned)
}

// Close stops the background upload executor, draining queued uploads,
// and releases idle connections. Safe to call multiple times; after the
// first call every operation returns ErrClientClosed.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if c.exec != nil {
		c.exec.Stop()
	}
	c.http.CloseIdleConnections()
	return nil
}

// operational rejects calls on a closed client.
func (c *Client) operational() error {
	if atomic.LoadUint32(&c.closedOnce) == 1 {
		return ErrClientClosed
	}
	return nil
}

// caller bundles the connection state handed to internal/api.
func (c *Client) caller() api.Caller {
	return api.Caller{HTTP: c.http, BaseURL: c.baseURL, MaxRetries: c.maxRetries}
}

// newDefaultExecutor builds the upload executor from UPLOADQ_* env vars,
// attaching an error handler that logs and counts failed upload jobs.
func newDefaultExecutor() (*uploadqueue.ShardExecutor, error) {
	cfg, err := uploadqueue.LoadConfig()
	if err != nil {
		return nil, err
	}

	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(err error) {
			if err == nil {
				return
			}
			log.Error().Err(err).Msg("background upload failed")
			// Shard unknown at this layer; use label "-1".
			uploadFailuresTotal.WithLabelValues("-1").Inc()
		}
	}

	return uploadqueue.NewShardExecutor(cfg), nil
}

// --------------------------------------------------------------------
// System operations - delegated to internal/api
// --------------------------------------------------------------------

// HealthCheck probes the service health endpoint.
func (c *Client) HealthCheck(ctx context.Context) (*HealthStatus, error) {
	if err := c.operational(); err != nil {
		return nil, err
	}
	return api.HealthCheck(ctx, c.caller())
}

// GetUsage retrieves current API usage and storage information.
func (c *Client) GetUsage(ctx context.Context) (*UsageResponse, error) {
	if err := c.operational(); err != nil {
		return nil, err
	}
	return api.GetUsage(ctx, c.caller())
}

// --------------------------------------------------------------------
// Transcript operations - delegated to internal/api
// --------------------------------------------------------------------

// GetTranscript extracts the existing transcript of an online video.
func (c *Client) GetTranscript(ctx context.Context, req GetTranscriptRequest) (*TranscriptResponse, error) {
	if err := c.operational(); err != nil {
		return nil, err
	}
	return api.GetTranscript(ctx, c.caller(), req)
}

// TranscribeVideo runs speech-to-text on a video without a ready
// transcript, such as on Instagram or TikTok.
func (c *Client) TranscribeVideo(ctx context.Context, req TranscribeVideoRequest) (*TranscriptResponse, error) {
	if err := c.operational(); err != nil {
		return nil, err
	}
	return api.TranscribeVideo(ctx, c.caller(), req)
}

// --------------------------------------------------------------------
// Analysis operations - delegated to internal/api
// --------------------------------------------------------------------

// AnalyzeVideo runs AI analysis over an online video, optionally focused
// by a query.
func (c *Client) AnalyzeVideo(ctx context.Context, req AnalyzeVideoRequest) (*AnalysisResponse, error) {
	if err := c.operational(); err != nil {
		return nil, err
	}
	return api.AnalyzeVideo(ctx, c.caller(), req)
}

// AnalyzeFile runs AI analysis over an uploaded file.
func (c *Client) AnalyzeFile(ctx context.Context, req AnalyzeFileRequest) (*AnalysisResponse, error) {
	if err := c.operational(); err != nil {
		return nil, err
	}
	return api.AnalyzeFile(ctx, c.caller(), req)
}

// --------------------------------------------------------------------
// Search operations - delegated to internal/api
// --------------------------------------------------------------------

// SearchVideos searches online videos.
func (c *Client) SearchVideos(ctx context.Context, req SearchVideosRequest) (*VideoSearchResponse, error) {
	if err := c.operational(); err != nil {
		return nil, err
	}
	return api.SearchVideos(ctx, c.caller(), req)
}

// SearchFiles searches across previously uploaded files.
func (c *Client) SearchFiles(ctx context.Context, req SearchFilesRequest) (*FileSearchResponse, error) {
	if err := c.operational(); err != nil {
		return nil, err
	}
	return api.SearchFiles(ctx, c.caller(), req)
}

// --------------------------------------------------------------------
// File operations - delegated to internal/api
// --------------------------------------------------------------------

// ListFiles retrieves one page of uploaded files.
func (c *Client) ListFiles(ctx context.Context, req ListFilesRequest) (*FilesListResponse, error) {
	if err := c.operational(); err != nil {
		return nil, err
	}
	return api.ListFiles(ctx, c.caller(), req)
}

// GetFile retrieves details, and the transcript once available, for one file.
func (c *Client) GetFile(ctx context.Context, fileID string) (*FileResponse, error) {
	if err := c.operational(); err != nil {
		return nil, err
	}
	return api.GetFile(ctx, c.caller(), fileID)
}

// GetFileURL retrieves a presigned download URL for a file.
func (c *Client) GetFileURL(ctx context.Context, fileID string) (*FileURLResponse, error) {
	if err := c.operational(); err != nil {
		return nil, err
	}
	return api.GetFileURL(ctx, c.caller(), fileID)
}

// RetryFileProcessing reprocesses a file that ended in the error state.
func (c *Client) RetryFileProcessing(ctx context.Context, fileID string) (*ActionResponse, error) {
	if err := c.operational(); err != nil {
		return nil, err
	}
	return api.RetryFileProcessing(ctx, c.caller(), fileID)
}

// CancelFileUpload cancels a pending or processing upload.
func (c *Client) CancelFileUpload(ctx context.Context, fileID string) (*ActionResponse, error) {
	if err := c.operational(); err != nil {
		return nil, err
	}
	return api.CancelFileUpload(ctx, c.caller(), fileID)
}

// DeleteFile removes a file and its transcript.
func (c *Client) DeleteFile(ctx context.Context, fileID string) (*ActionResponse, error) {
	if err := c.operational(); err != nil {
		return nil, err
	}
	return api.DeleteFile(ctx, c.caller(), fileID)
}

// WaitForFile polls a file until processing reaches a terminal state
// (completed, error, cancelled) or ctx ends. Inspect the returned status:
// a processing failure is reported as data, not as an error.
func (c *Client) WaitForFile(ctx context.Context, fileID string) (*FileResponse, error) {
	if err := c.operational(); err != nil {
		return nil, err
	}
	return api.WaitForFile(ctx, c.caller(), fileID)
}

// --------------------------------------------------------------------
// Upload operations - delegated to internal/api (mixed sync/async)
// --------------------------------------------------------------------

// UploadFile uploads a local audio or video file synchronously and
// returns the created file record. Set WaitForCompletion to block until
// the API finishes processing.
func (c *Client) UploadFile(ctx context.Context, req UploadFileRequest) (*UploadResponse, error) {
	if err := c.operational(); err != nil {
		return nil, err
	}
	return api.UploadFile(ctx, c.caller(), req)
}

// EnqueueUpload submits an upload to the background executor: FIFO per
// path, parallel across paths, retried with backoff on recoverable
// failures. A full queue surfaces as ErrBackPressure. Reconcile results
// with ListFiles or WaitForFile.
func (c *Client) EnqueueUpload(ctx context.Context, path string) (*UploadAck, error) {
	if err := c.operational(); err != nil {
		return nil, err
	}
	ack, err := api.EnqueueUpload(ctx, c.exec, c.caller(), path)
	if err != nil {
		if errors.Is(err, ErrBackPressure) {
			log.Warn().Str("path", path).Err(err).Msg("upload enqueue rejected")
		}
		return nil, err
	}
	uploadsEnqueuedTotal.WithLabelValues(job.ShardLabel(path)).Inc()
	return ack, nil
}

// AwaitUploads blocks until all uploads previously enqueued for path's
// shard have been executed. It works by submitting a no-op job and
// waiting for it to run, guaranteeing FIFO ordering has flushed.
func (c *Client) AwaitUploads(ctx context.Context, path string) error {
	if err := c.operational(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	done := make(chan struct{})
	barrier := job.New(func(context.Context) error {
		close(done)
		return nil
	})
	if err := c.exec.Submit(ctx, path, barrier); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}
