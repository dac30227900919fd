package dto

import (
	"github.com/lawflow/lawflow-backend/models"
)

type UploadAttachmentBody struct {
	FileName string `json:"fileName" binding:"required"`
	FileType string `json:"fileType" binding:"required"`
	FileUrl  string `json:"fileUrl" binding:"required"`
}

func AdaptAttachmentUploadRequest(body UploadAttachmentBody) models.AttachmentUploadRequest {
	return models.AttachmentUploadRequest{
		FileName: body.FileName,
		FileType: body.FileType,
		FileUrl:  body.FileUrl,
	}
}

type APIDriveFile struct {
	Message        string `json:"message"`
	FileId         string `json:"fileId"`
	WebViewLink    string `json:"webViewLink"`
	WebContentLink string `json:"webContentLink"`
}

func AdaptDriveFileDto(message string, file models.DriveFile) APIDriveFile {
	return APIDriveFile{
		Message:        message,
		FileId:         file.Id,
		WebViewLink:    file.WebViewLink,
		WebContentLink: file.WebContentLink,
	}
}
