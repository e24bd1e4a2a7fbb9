// Package vidnavigator provides the Go SDK for the VidNavigator Developer
// API: video transcript retrieval, speech-to-text transcription, AI video
// and file analysis, semantic search, and file upload management.
//
// # Quick Start
//
// You need a VidNavigator API key. Pass it explicitly or set the
// VIDNAVIGATOR_API_KEY environment variable.
//
//	import vidnavigator "github.com/vidnavigator/vidnavigator-go"
//
//	client, err := vidnavigator.New("your-api-key")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	tr, err := client.GetTranscript(context.Background(), vidnavigator.GetTranscriptRequest{
//		VideoURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(tr.Data.VideoInfo.Title, len(tr.Data.Transcript))
//
// # Operations
//
// Transcripts: GetTranscript extracts an existing transcript;
// TranscribeVideo runs speech-to-text for sources without one.
// Analysis: AnalyzeVideo and AnalyzeFile summarize a transcript, extract
// people, places and key subjects, and answer an optional query.
// Search: SearchVideos queries online videos, SearchFiles the caller's
// uploads. Files: UploadFile, ListFiles, GetFile, GetFileURL,
// RetryFileProcessing, CancelFileUpload, DeleteFile, and WaitForFile to
// poll until processing finishes.
//
// EnqueueUpload hands an upload to a background executor that preserves
// FIFO order per file path and retries recoverable failures with
// exponential backoff; AwaitUploads blocks until previously enqueued
// uploads have run. Close drains the executor.
//
// # Error Handling and Retries
//
// Failures map onto sentinel errors matched with errors.Is:
// ErrValidation for input rejected before any request, ErrConnection for
// transport failures, and per-status sentinels such as ErrAuthentication,
// ErrNotFound, ErrRateLimited and ErrServer. errors.As extracts *APIError
// for the status code, message and request ID. Recoverable failures (5xx,
// 429, network errors) are retried automatically with exponential
// backoff; WithMaxRetries adjusts the budget.
//
//	if _, err := client.GetFile(ctx, id); err != nil {
//		switch {
//		case errors.Is(err, vidnavigator.ErrNotFound):
//			// unknown file ID
//		case errors.Is(err, vidnavigator.ErrRateLimited):
//			// back off and try later
//		}
//	}
//
// Setting VIDNAVIGATOR_DEBUG=true dumps HTTP traffic to the log for
// troubleshooting.
package vidnavigator
