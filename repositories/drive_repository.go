package repositories

import (
	"context"
	"io"

	"github.com/cockroachdb/errors"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"github.com/lawflow/lawflow-backend/models"
)

type AttachmentUploader interface {
	UploadAttachment(ctx context.Context, req models.AttachmentUploadRequest, body io.Reader) (models.DriveFile, error)
}

// DriveRepository re-hosts attachments on Google Drive, inside a single
// configured folder. The media body is streamed to the API, so a slow upload
// throttles the source download instead of buffering it in memory.
type DriveRepository struct {
	service  *drive.Service
	folderId string
}

func NewDriveRepository(service *drive.Service, folderId string) *DriveRepository {
	return &DriveRepository{
		service:  service,
		folderId: folderId,
	}
}

func (repo *DriveRepository) UploadAttachment(
	ctx context.Context,
	req models.AttachmentUploadRequest,
	body io.Reader,
) (models.DriveFile, error) {
	metadata := &drive.File{
		Name:    req.FileName,
		Parents: []string{repo.folderId},
	}

	created, err := repo.service.Files.Create(metadata).
		Media(body,
			googleapi.ContentType(req.FileType),
			// single-request upload: the body is piped through as is, no
			// chunk buffering, no resume on failure
			googleapi.ChunkSize(0)).
		Fields("id", "webViewLink", "webContentLink").
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return models.DriveFile{}, errors.Wrapf(models.AttachmentUploadError,
			"drive files.create for %q: %v", req.FileName, err)
	}

	return models.DriveFile{
		Id:             created.Id,
		WebViewLink:    created.WebViewLink,
		WebContentLink: created.WebContentLink,
	}, nil
}
