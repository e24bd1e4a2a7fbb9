package types

// ------------------------------
// Request Types
// ------------------------------

// GetTranscriptRequest holds parameters for transcript extraction.
type GetTranscriptRequest struct {
	// VideoURL is the full URL of the video (YouTube, Vimeo, ...).
	VideoURL string `json:"video_url"`
	// Language optionally pins a two-letter ISO 639-1 code, e.g. "en".
	Language string `json:"language,omitempty"`
}

// TranscribeVideoRequest holds parameters for speech-to-text transcription,
// used when a source has no ready transcript (Instagram, TikTok, ...).
type TranscribeVideoRequest struct {
	VideoURL string `json:"video_url"`
}

// AnalyzeVideoRequest holds parameters for AI analysis of an online video.
type AnalyzeVideoRequest struct {
	VideoURL string `json:"video_url"`
	// Query optionally asks a specific question about the video.
	Query string `json:"query,omitempty"`
}

// AnalyzeFileRequest holds parameters for AI analysis of an uploaded file.
type AnalyzeFileRequest struct {
	FileID string `json:"file_id"`
	Query  string `json:"query,omitempty"`
}

// SearchVideosRequest holds parameters for online video search. The wire
// payload is built by the API layer, so no JSON tags here.
type SearchVideosRequest struct {
	Query string

	// DisableEnhancedSearch turns off AI-enhanced ranking. The zero value
	// keeps it on, matching the API default.
	DisableEnhancedSearch bool

	// StartYear/EndYear bound the publication window; zero means unset.
	StartYear int
	EndYear   int

	// Focus defaults to "relevance" when empty.
	Focus string

	// Duration caps result length in seconds; zero means unset.
	Duration int
}

// SearchFilesRequest holds parameters for searching uploaded files.
type SearchFilesRequest struct {
	Query string `json:"query"`
}

// ListFilesRequest holds pagination and filter parameters for file listing.
type ListFilesRequest struct {
	// Limit defaults to 50 when zero.
	Limit  int
	Offset int
	// Status optionally filters by processing state, e.g. FileStatusCompleted.
	Status string
}

// UploadFileRequest holds parameters for a file upload.
type UploadFileRequest struct {
	// Path points at the local audio or video file.
	Path string
	// WaitForCompletion asks the API to block until processing finishes.
	WaitForCompletion bool
}
