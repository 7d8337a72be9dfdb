package entities

// Resume content types accepted for extraction and analysis.
const (
	MimePDF   = "application/pdf"
	MimeDOCX  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimePlain = "text/plain"
)

// DriveFile describes a candidate resume found in a linked Drive folder.
type DriveFile struct {
	ID       string
	Name     string
	MimeType string
	Size     int64
}

// AnalysisResult is the outcome reported by the external scoring service.
type AnalysisResult struct {
	MatchScore float64
	Details    map[string]any
}
