package drive

// Google Workspace MIME types.
const (
	MimeTypeGoogleDoc     = "application/vnd.google-apps.document"
	MimeTypeGoogleSheet   = "application/vnd.google-apps.spreadsheet"
	MimeTypeGoogleSlides  = "application/vnd.google-apps.presentation"
	MimeTypeGoogleDrawing = "application/vnd.google-apps.drawing"
	MimeTypeFolder        = "application/vnd.google-apps.folder"
)

// Export formats for Google Workspace files.
const (
	ExportMimeText = "text/plain"
	ExportMimeCSV  = "text/csv"
	ExportMimePDF  = "application/pdf"
)

// exportFormats maps a Workspace type to the format it is exported as.
// Files whose type is absent here are downloaded as-is.
var exportFormats = map[string]string{
	MimeTypeGoogleDoc:     ExportMimeText,
	MimeTypeGoogleSheet:   ExportMimeCSV,
	MimeTypeGoogleSlides:  ExportMimeText,
	MimeTypeGoogleDrawing: ExportMimePDF,
}

// ExportFormat returns the export MIME type for a Workspace file type.
func ExportFormat(mimeType string) (string, bool) {
	m, ok := exportFormats[mimeType]
	return m, ok
}
