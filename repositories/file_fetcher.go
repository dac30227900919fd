package repositories

import (
	"context"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"

	"github.com/lawflow/lawflow-backend/models"
)

type FileFetcher interface {
	FetchFile(ctx context.Context, url string) (io.ReadCloser, error)
}

// HttpFileFetcher downloads a remote file as a stream. The returned body is
// not read here: the caller pipes it into the storage provider and closes it.
type HttpFileFetcher struct {
	client *http.Client
}

func NewHttpFileFetcher(client *http.Client) *HttpFileFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HttpFileFetcher{client: client}
}

func (f *HttpFileFetcher) FetchFile(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(models.AttachmentFetchError, "malformed source url %q: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(models.AttachmentFetchError, "GET %q: %v", url, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		resp.Body.Close()
		return nil, errors.Wrapf(models.AttachmentFetchError,
			"GET %q: unexpected status %d", url, resp.StatusCode)
	}

	return resp.Body, nil
}
