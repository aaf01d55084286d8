package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
)

// FormFile is one file part of a multipart request.
type FormFile struct {
	Field    string
	FileName string
	MimeType string
	Content  []byte
}

// PostMultipart POSTs a multipart form. Used by mutations that carry a photo
// alongside regular fields.
func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string, files ...FormFile) (int, []byte, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return 0, nil, newRequestError(err)
		}
	}

	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.Field, f.FileName))
		if f.MimeType != "" {
			header.Set("Content-Type", f.MimeType)
		}

		part, err := w.CreatePart(header)
		if err != nil {
			return 0, nil, newRequestError(err)
		}
		if _, err := part.Write(f.Content); err != nil {
			return 0, nil, newRequestError(err)
		}
	}

	if err := w.Close(); err != nil {
		return 0, nil, newRequestError(err)
	}

	return c.Do(ctx, http.MethodPost, path, &buf, w.FormDataContentType())
}
