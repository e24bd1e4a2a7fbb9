package api

import (
	"context"

	"github.com/vidnavigator/vidnavigator-go/internal/types"
)

// searchVideosPayload is the wire shape of POST /search/video. The API
// takes use_enhanced_search (default true), so the request's Disable flag
// is inverted here. Optional bounds are pointers to stay off the wire
// when unset.
type searchVideosPayload struct {
	Query             string `json:"query"`
	UseEnhancedSearch bool   `json:"use_enhanced_search"`
	Focus             string `json:"focus"`
	StartYear         *int   `json:"start_year,omitempty"`
	EndYear           *int   `json:"end_year,omitempty"`
	Duration          *int   `json:"duration,omitempty"`
}

// SearchVideos searches online videos, optionally bounded by publication
// years and duration.
func SearchVideos(ctx context.Context, c Caller, req types.SearchVideosRequest) (*types.VideoSearchResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateQuery(req.Query); err != nil {
		return nil, err
	}
	if err := types.ValidateYearRange(req.StartYear, req.EndYear); err != nil {
		return nil, err
	}

	payload := searchVideosPayload{
		Query:             req.Query,
		UseEnhancedSearch: !req.DisableEnhancedSearch,
		Focus:             req.Focus,
	}
	if payload.Focus == "" {
		payload.Focus = "relevance"
	}
	if req.StartYear != 0 {
		payload.StartYear = &req.StartYear
	}
	if req.EndYear != 0 {
		payload.EndYear = &req.EndYear
	}
	if req.Duration != 0 {
		payload.Duration = &req.Duration
	}

	var out types.VideoSearchResponse
	if err := postJSON(ctx, c, "search_videos", "/search/video", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchFiles searches across the caller's uploaded files.
func SearchFiles(ctx context.Context, c Caller, req types.SearchFilesRequest) (*types.FileSearchResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateQuery(req.Query); err != nil {
		return nil, err
	}

	var out types.FileSearchResponse
	if err := postJSON(ctx, c, "search_files", "/search/file", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
