package vidnavigator

import "github.com/vidnavigator/vidnavigator-go/internal/types"

// Public type aliases so SDK consumers can import only this package.
type (
	// Requests
	GetTranscriptRequest   = types.GetTranscriptRequest
	TranscribeVideoRequest = types.TranscribeVideoRequest
	AnalyzeVideoRequest    = types.AnalyzeVideoRequest
	AnalyzeFileRequest     = types.AnalyzeFileRequest
	SearchVideosRequest    = types.SearchVideosRequest
	SearchFilesRequest     = types.SearchFilesRequest
	ListFilesRequest       = types.ListFilesRequest
	UploadFileRequest      = types.UploadFileRequest

	// Domain entities
	TranscriptSegment  = types.TranscriptSegment
	VideoInfo          = types.VideoInfo
	FileInfo           = types.FileInfo
	PersonPlaceSubject = types.PersonPlaceSubject
	AnalysisResult     = types.AnalysisResult
	VideoSearchResult  = types.VideoSearchResult
	FileSearchResult   = types.FileSearchResult

	// Responses
	HealthStatus        = types.HealthStatus
	UsageResponse       = types.UsageResponse
	TranscriptData      = types.TranscriptData
	TranscriptResponse  = types.TranscriptResponse
	AnalysisData        = types.AnalysisData
	AnalysisResponse    = types.AnalysisResponse
	VideoSearchData     = types.VideoSearchData
	VideoSearchResponse = types.VideoSearchResponse
	FileSearchData      = types.FileSearchData
	FileSearchResponse  = types.FileSearchResponse
	FilesListData       = types.FilesListData
	FilesListResponse   = types.FilesListResponse
	FileData            = types.FileData
	FileResponse        = types.FileResponse
	UploadData          = types.UploadData
	UploadResponse      = types.UploadResponse
	FileURLData         = types.FileURLData
	FileURLResponse     = types.FileURLResponse
	ActionResponse      = types.ActionResponse
	UploadAck           = types.UploadAck
)

// File processing states reported in FileInfo.Status.
const (
	FileStatusPending    = types.FileStatusPending
	FileStatusProcessing = types.FileStatusProcessing
	FileStatusCompleted  = types.FileStatusCompleted
	FileStatusError      = types.FileStatusError
	FileStatusCancelled  = types.FileStatusCancelled
)

// Errors re-exported in errors.go
