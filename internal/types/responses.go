package types

// ------------------------------
// File Processing States
// ------------------------------

// Processing states reported in FileInfo.Status and accepted by the
// ListFiles status filter.
const (
	FileStatusPending    = "pending"
	FileStatusProcessing = "processing"
	FileStatusCompleted  = "completed"
	FileStatusError      = "error"
	FileStatusCancelled  = "cancelled"
)

// KnownFileStatus reports whether s is one of the documented states.
func KnownFileStatus(s string) bool {
	switch s {
	case FileStatusPending, FileStatusProcessing, FileStatusCompleted,
		FileStatusError, FileStatusCancelled:
		return true
	}
	return false
}

// TerminalFileStatus reports whether s marks the end of processing.
func TerminalFileStatus(s string) bool {
	switch s {
	case FileStatusCompleted, FileStatusError, FileStatusCancelled:
		return true
	}
	return false
}

// ------------------------------
// Response Types
// ------------------------------

// HealthStatus is the GET /health payload.
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Version string `json:"version,omitempty"`
}

// UsageResponse wraps GET /usage. The usage schema varies by plan, so the
// payload stays an open map.
type UsageResponse struct {
	Status string         `json:"status"`
	Data   map[string]any `json:"data,omitempty"`
}

// TranscriptData pairs a transcript with its source video metadata.
type TranscriptData struct {
	VideoInfo  VideoInfo           `json:"video_info"`
	Transcript []TranscriptSegment `json:"transcript"`
}

// TranscriptResponse wraps /transcript and /transcribe results.
type TranscriptResponse struct {
	Status string         `json:"status"`
	Data   TranscriptData `json:"data"`
}

// AnalysisData carries an analysis plus the transcript it was built from.
// Exactly one of VideoInfo and FileInfo is set, depending on the source.
type AnalysisData struct {
	VideoInfo          *VideoInfo          `json:"video_info,omitempty"`
	FileInfo           *FileInfo           `json:"file_info,omitempty"`
	Transcript         []TranscriptSegment `json:"transcript"`
	TranscriptAnalysis AnalysisResult      `json:"transcript_analysis"`
}

// AnalysisResponse wraps /analyze/video and /analyze/file results.
type AnalysisResponse struct {
	Status string       `json:"status"`
	Data   AnalysisData `json:"data"`
}

// VideoSearchData is the result set of an online video search.
type VideoSearchData struct {
	Results     []VideoSearchResult `json:"results"`
	Query       string              `json:"query"`
	TotalFound  int                 `json:"total_found"`
	Explanation string              `json:"explanation,omitempty"`
}

// VideoSearchResponse wraps /search/video results.
type VideoSearchResponse struct {
	Status string          `json:"status"`
	Data   VideoSearchData `json:"data"`
}

// FileSearchData is the result set of a search across uploaded files.
type FileSearchData struct {
	Results     []FileSearchResult `json:"results"`
	Query       string             `json:"query"`
	TotalFound  int                `json:"total_found"`
	Explanation string             `json:"explanation,omitempty"`
}

// FileSearchResponse wraps /search/file results.
type FileSearchResponse struct {
	Status string         `json:"status"`
	Data   FileSearchData `json:"data"`
}

// FilesListData is one page of the file listing.
type FilesListData struct {
	Files      []FileInfo `json:"files"`
	TotalCount int        `json:"total_count"`
	Limit      int        `json:"limit"`
	Offset     int        `json:"offset"`
	HasMore    bool       `json:"has_more"`
}

// FilesListResponse wraps GET /files results.
type FilesListResponse struct {
	Status string        `json:"status"`
	Data   FilesListData `json:"data"`
}

// FileData pairs file details with its transcript once processing finished.
type FileData struct {
	FileInfo   FileInfo            `json:"file_info"`
	Transcript []TranscriptSegment `json:"transcript,omitempty"`
}

// FileResponse wraps GET /file/{id} results.
type FileResponse struct {
	Status string   `json:"status"`
	Data   FileData `json:"data"`
}

// UploadData describes the file record created by an upload.
type UploadData struct {
	FileInfo FileInfo `json:"file_info"`
	Message  string   `json:"message,omitempty"`
}

// UploadResponse wraps POST /upload/file results.
type UploadResponse struct {
	Status string     `json:"status"`
	Data   UploadData `json:"data"`
}

// FileURLData carries a presigned download URL for an uploaded file.
type FileURLData struct {
	URL       string `json:"url"`
	ExpiresAt string `json:"expires_at,omitempty"`
}

// FileURLResponse wraps GET /file/{id}/url results.
type FileURLResponse struct {
	Status string      `json:"status"`
	Data   FileURLData `json:"data"`
}

// ActionResponse acknowledges retry, cancel and delete actions.
type ActionResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// UploadAck acknowledges that an async upload was enqueued locally. The
// upload itself completes in the background; reconcile with ListFiles.
type UploadAck struct {
	Path   string `json:"path"`
	Status string `json:"status"`
}
