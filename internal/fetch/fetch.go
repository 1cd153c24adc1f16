// Package fetch implements the download collaborator with a retrying HTTP client.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/askiada/go-meshgraph/pkg/logger"
	"github.com/askiada/go-meshgraph/pkg/pipeline/model"
)

const (
	// DefaultRetries is the number of retries after a failed attempt.
	DefaultRetries = 2
	defaultWaitMin = 500 * time.Millisecond
	defaultWaitMax = 5 * time.Second
)

var ErrUnexpectedStatus = errors.New("unexpected status code")

// Downloader downloads files over HTTP. Transient failures are retried by the client.
type Downloader struct {
	client *retryablehttp.Client
	fs     afero.Fs
}

// Option configures a Downloader.
type Option func(*Downloader)

// WithRetries sets the number of retries after a failed attempt.
func WithRetries(retries int) Option {
	return func(d *Downloader) {
		d.client.RetryMax = retries
	}
}

// WithWait sets the bounds of the exponential backoff between two attempts.
func WithWait(waitMin, waitMax time.Duration) Option {
	return func(d *Downloader) {
		d.client.RetryWaitMin = waitMin
		d.client.RetryWaitMax = waitMax
	}
}

// WithLogger reports the attempts to log.
func WithLogger(log logger.Logger) Option {
	return func(d *Downloader) {
		d.client.Logger = leveledLogger{log}
	}
}

// WithHTTPClient sets the client used for each attempt.
func WithHTTPClient(client *http.Client) Option {
	return func(d *Downloader) {
		d.client.HTTPClient = client
	}
}

// New creates a downloader writing to fs.
func New(fs afero.Fs, opts ...Option) *Downloader {
	client := retryablehttp.NewClient()
	client.RetryMax = DefaultRetries
	client.RetryWaitMin = defaultWaitMin
	client.RetryWaitMax = defaultWaitMax
	client.Logger = nil

	d := &Downloader{client: client, fs: fs}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Download writes the body served at url to dest. The file is written under a temporary name and
// only renamed to dest once complete.
func (d *Downloader) Download(ctx context.Context, url, dest string) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.NewIOError("download", url, err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return model.NewIOError("download", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return model.NewIOError("download", url, errors.Wrapf(ErrUnexpectedStatus, "got %d", resp.StatusCode))
	}

	partial := dest + ".part"

	file, err := d.fs.Create(partial)
	if err != nil {
		return model.NewIOError("create", partial, err)
	}

	_, err = io.Copy(file, resp.Body)
	if err != nil {
		file.Close()
		_ = d.fs.Remove(partial)

		return model.NewIOError("download", url, err)
	}

	err = file.Close()
	if err != nil {
		return model.NewIOError("close", partial, err)
	}

	return model.NewIOError("rename", partial, d.fs.Rename(partial, dest))
}

// leveledLogger adapts logger.Logger to retryablehttp.LeveledLogger.
type leveledLogger struct {
	log logger.Logger
}

var _ retryablehttp.LeveledLogger = leveledLogger{}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.log.Error(msg, fields(keysAndValues)...)
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Info(msg, fields(keysAndValues)...)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.log.Debug(msg, fields(keysAndValues)...)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.log.Warn(msg, fields(keysAndValues)...)
}

func fields(keysAndValues []interface{}) []zap.Field {
	res := make([]zap.Field, 0, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		res = append(res, zap.Any(fmt.Sprint(keysAndValues[i]), keysAndValues[i+1]))
	}

	return res
}
