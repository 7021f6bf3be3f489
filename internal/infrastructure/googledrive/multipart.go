package googledrive

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"

	"drivefiles/internal/domain/drive"
)

// multipartBoundary separates the metadata and media parts of an upload
const multipartBoundary = "separation"

type fileMetadata struct {
	Kind     string   `json:"kind"`
	Name     string   `json:"name"`
	MimeType string   `json:"mimeType"`
	Parents  []string `json:"parents"`
}

func newFileMetadata(name, mimeType, parentID string) fileMetadata {
	if parentID == "" {
		parentID = drive.RootID
	}
	return fileMetadata{
		Kind:     "drive#file",
		Name:     name,
		MimeType: mimeType,
		Parents:  []string{parentID},
	}
}

// textFileBody builds a multipart/related body holding the JSON metadata
// followed by the literal text contents. It returns the body and its
// Content-Type header value. Contents holding the boundary delimiter are
// rejected since they would end the media part early.
func textFileBody(name, parentID, contents string) (string, string, error) {
	if strings.Contains(contents, "--"+multipartBoundary) {
		return "", "", fmt.Errorf("%w: contains multipart boundary %q", drive.ErrInvalidContents, multipartBoundary)
	}

	meta, err := json.Marshal(newFileMetadata(name, drive.MimeTypeFile, parentID))
	if err != nil {
		return "", "", fmt.Errorf("encode metadata: %w", err)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.SetBoundary(multipartBoundary); err != nil {
		return "", "", err
	}

	part, err := w.CreatePart(textproto.MIMEHeader{"Content-Type": {"application/json; charset=UTF-8"}})
	if err != nil {
		return "", "", err
	}
	if _, err := part.Write(meta); err != nil {
		return "", "", err
	}

	part, err = w.CreatePart(textproto.MIMEHeader{"Content-Type": {drive.MimeTypeText}})
	if err != nil {
		return "", "", err
	}
	if _, err := io.WriteString(part, contents); err != nil {
		return "", "", err
	}

	if err := w.Close(); err != nil {
		return "", "", err
	}
	return buf.String(), "multipart/related; boundary=" + w.Boundary(), nil
}
