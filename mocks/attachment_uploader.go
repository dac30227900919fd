package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/lawflow/lawflow-backend/models"
)

type AttachmentUploader struct {
	mock.Mock
}

func (u *AttachmentUploader) UploadAttachment(ctx context.Context,
	req models.AttachmentUploadRequest, body io.Reader,
) (models.DriveFile, error) {
	args := u.Called(ctx, req, body)
	return args.Get(0).(models.DriveFile), args.Error(1)
}
