package usecases

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/lawflow/lawflow-backend/models"
	"github.com/lawflow/lawflow-backend/repositories"
	"github.com/lawflow/lawflow-backend/utils"
)

type AttachmentUseCase struct {
	fetcher  repositories.FileFetcher
	uploader repositories.AttachmentUploader
}

// UploadAttachment relays a remote file into Drive: stream-download from the
// source url, pipe the body into the provider, return its id and share links.
// There is no retry and no cleanup: a fetch that succeeded but an upload that
// failed leaves nothing behind, an upload that succeeded before a later error
// in the caller stays orphaned in Drive.
func (usecase AttachmentUseCase) UploadAttachment(
	ctx context.Context,
	req models.AttachmentUploadRequest,
) (models.DriveFile, error) {
	if req.FileName == "" || req.FileType == "" || req.FileUrl == "" {
		return models.DriveFile{}, errors.Wrap(models.BadParameterError, "Missing file details")
	}

	body, err := usecase.fetcher.FetchFile(ctx, req.FileUrl)
	if err != nil {
		return models.DriveFile{}, err
	}
	defer func() {
		if closeErr := body.Close(); closeErr != nil {
			utils.LoggerFromContext(ctx).WarnContext(ctx, "failed to close source file body",
				"url", req.FileUrl, "error", closeErr.Error())
		}
	}()

	file, err := usecase.uploader.UploadAttachment(ctx, req, body)
	if err != nil {
		return models.DriveFile{}, err
	}
	return file, nil
}
