package models

// AttachmentUploadRequest describes a remote file to relay into Drive. All
// three fields are required before any network call is made.
type AttachmentUploadRequest struct {
	FileName string
	FileType string
	FileUrl  string
}

// DriveFile is the provider's view of an uploaded attachment. The ids and
// links are opaque: the backend only echoes them back to the caller.
type DriveFile struct {
	Id             string
	WebViewLink    string
	WebContentLink string
}
