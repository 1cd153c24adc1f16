package fetch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-meshgraph/internal/fetch"
	"github.com/askiada/go-meshgraph/pkg/logger"
	"github.com/askiada/go-meshgraph/pkg/pipeline/model"
)

func TestDownload(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("zip content"))
	}))
	defer srv.Close()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/raw", 0o755))

	downloader := fetch.New(fs)

	err := downloader.Download(context.Background(), srv.URL+"/setores.zip", "/raw/setores.zip")
	require.NoError(t, err)

	content, err := afero.ReadFile(fs, "/raw/setores.zip")
	require.NoError(t, err)
	assert.Equal(t, "zip content", string(content))

	exists, err := afero.Exists(fs, "/raw/setores.zip.part")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDownloadRetries(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}

		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	log, logs := logger.NewObserverLogger("debug")
	fs := afero.NewMemMapFs()
	downloader := fetch.New(fs, fetch.WithWait(time.Millisecond, 2*time.Millisecond), fetch.WithLogger(log))

	err := downloader.Download(context.Background(), srv.URL, "/setores.zip")
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.NotZero(t, logs.Len())
}

func TestDownloadFailure(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		status  int
		retries int
		want    int32
	}{
		"not found is not retried": {status: http.StatusNotFound, retries: 2, want: 1},
		"server error exhausts":    {status: http.StatusInternalServerError, retries: 1, want: 2},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var calls atomic.Int32

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				calls.Add(1)
				w.WriteHeader(tc.status)
			}))
			defer srv.Close()

			fs := afero.NewMemMapFs()
			downloader := fetch.New(fs, fetch.WithRetries(tc.retries), fetch.WithWait(time.Millisecond, time.Millisecond))

			err := downloader.Download(context.Background(), srv.URL, "/setores.zip")

			var ioErr *model.IOError
			require.ErrorAs(t, err, &ioErr)
			assert.Equal(t, "download", ioErr.Op)
			assert.Equal(t, tc.want, calls.Load())

			exists, err := afero.Exists(fs, "/setores.zip")
			require.NoError(t, err)
			assert.False(t, exists)
		})
	}
}
