package api

import (
	"context"

	"github.com/vidnavigator/vidnavigator-go/internal/types"
)

// AnalyzeVideo runs AI analysis over an online video's transcript. An
// optional query asks a specific question; the answer lands in
// TranscriptAnalysis.QueryAnswer.
func AnalyzeVideo(ctx context.Context, c Caller, req types.AnalyzeVideoRequest) (*types.AnalysisResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateVideoURL(req.VideoURL); err != nil {
		return nil, err
	}

	var out types.AnalysisResponse
	if err := postJSON(ctx, c, "analyze_video", "/analyze/video", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AnalyzeFile runs AI analysis over an uploaded file's transcript.
func AnalyzeFile(ctx context.Context, c Caller, req types.AnalyzeFileRequest) (*types.AnalysisResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateFileID(req.FileID); err != nil {
		return nil, err
	}

	var out types.AnalysisResponse
	if err := postJSON(ctx, c, "analyze_file", "/analyze/file", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
