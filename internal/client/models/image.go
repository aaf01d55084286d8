package models

// ImageFile is a picked image ready for multipart upload.
type ImageFile struct {
	FileName string
	MimeType string
	Content  []byte
}
