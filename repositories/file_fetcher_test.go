package repositories

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawflow/lawflow-backend/models"
)

func TestHttpFileFetcher_FetchFile(t *testing.T) {
	ctx := context.Background()

	t.Run("nominal", func(t *testing.T) {
		defer gock.Off()
		gock.New("https://files.example.com").
			Get("/complaint.pdf").
			Reply(http.StatusOK).
			BodyString("%PDF-1.4 content")

		client := &http.Client{}
		gock.InterceptClient(client)
		fetcher := NewHttpFileFetcher(client)

		body, err := fetcher.FetchFile(ctx, "https://files.example.com/complaint.pdf")

		require.NoError(t, err)
		defer body.Close()
		content, err := io.ReadAll(body)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4 content", string(content))
		assert.True(t, gock.IsDone())
	})

	t.Run("non 2xx status", func(t *testing.T) {
		defer gock.Off()
		gock.New("https://files.example.com").
			Get("/missing.pdf").
			Reply(http.StatusNotFound)

		client := &http.Client{}
		gock.InterceptClient(client)
		fetcher := NewHttpFileFetcher(client)

		_, err := fetcher.FetchFile(ctx, "https://files.example.com/missing.pdf")

		assert.ErrorIs(t, err, models.AttachmentFetchError)
		assert.ErrorIs(t, err, models.AttachmentRelayError)
	})

	t.Run("source unreachable", func(t *testing.T) {
		defer gock.Off()
		gock.New("https://files.example.com").
			Get("/complaint.pdf").
			ReplyError(errors.New("connection refused"))

		client := &http.Client{}
		gock.InterceptClient(client)
		fetcher := NewHttpFileFetcher(client)

		_, err := fetcher.FetchFile(ctx, "https://files.example.com/complaint.pdf")

		assert.ErrorIs(t, err, models.AttachmentFetchError)
	})

	t.Run("malformed url", func(t *testing.T) {
		fetcher := NewHttpFileFetcher(&http.Client{})

		_, err := fetcher.FetchFile(ctx, "://not-a-url")

		assert.ErrorIs(t, err, models.AttachmentFetchError)
	})
}
