package api

import (
	"context"

	"github.com/vidnavigator/vidnavigator-go/internal/types"
)

// GetTranscript extracts the existing transcript of an online video
// (synchronous).
func GetTranscript(ctx context.Context, c Caller, req types.GetTranscriptRequest) (*types.TranscriptResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateVideoURL(req.VideoURL); err != nil {
		return nil, err
	}
	if err := types.ValidateLanguage(req.Language); err != nil {
		return nil, err
	}

	var out types.TranscriptResponse
	if err := postJSON(ctx, c, "get_transcript", "/transcript", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TranscribeVideo runs speech-to-text on a video without a ready
// transcript (synchronous; the API call itself can take a while).
func TranscribeVideo(ctx context.Context, c Caller, req types.TranscribeVideoRequest) (*types.TranscriptResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateVideoURL(req.VideoURL); err != nil {
		return nil, err
	}

	var out types.TranscriptResponse
	if err := postJSON(ctx, c, "transcribe_video", "/transcribe", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
