package drive

// MIME types understood by the Drive API
const (
	MimeTypeFolder = "application/vnd.google-apps.folder"
	MimeTypeFile   = "application/vnd.google-apps.file"
	MimeTypeText   = "text/plain"
)

// RootID addresses the user's root folder
const RootID = "root"

// FileResource represents a file or folder in the remote store
type FileResource struct {
	Kind     string   `json:"kind,omitempty"`
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	MimeType string   `json:"mimeType,omitempty"`
	Parents  []string `json:"parents,omitempty"`
}

// IsFolder reports whether the resource is a folder
func (f *FileResource) IsFolder() bool {
	return f.MimeType == MimeTypeFolder
}

// CreateFolderRequest represents a request to create a folder
type CreateFolderRequest struct {
	Name     string `json:"name"`
	ParentID string `json:"parentId,omitempty"`
}

// CreateTextFileRequest represents a request to create a text file
type CreateTextFileRequest struct {
	Name     string `json:"name"`
	ParentID string `json:"parentId,omitempty"`
	Contents string `json:"contents"`
}

// UpdateTextFileRequest represents a request to replace a text file's contents
type UpdateTextFileRequest struct {
	ID       string `json:"id"`
	Contents string `json:"contents"`
}
