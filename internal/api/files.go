package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	sdkerrors "github.com/vidnavigator/vidnavigator-go/internal/errors"
	"github.com/vidnavigator/vidnavigator-go/internal/types"
)

// defaultListLimit matches the API's documented page size.
const defaultListLimit = 50

// ListFiles retrieves one page of the caller's uploaded files.
func ListFiles(ctx context.Context, c Caller, req types.ListFilesRequest) (*types.FilesListResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateListFiles(req.Limit, req.Offset, req.Status); err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit == 0 {
		limit = defaultListLimit
	}
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(req.Offset))
	if req.Status != "" {
		query.Set("status", req.Status)
	}

	var out types.FilesListResponse
	if err := getJSON(ctx, c, "list_files", "/files", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetFile retrieves details, and the transcript once processing finished,
// for a single file.
func GetFile(ctx context.Context, c Caller, fileID string) (*types.FileResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateFileID(fileID); err != nil {
		return nil, err
	}

	var out types.FileResponse
	if err := getJSON(ctx, c, "get_file", "/file/"+fileID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetFileURL retrieves a presigned download URL for a file.
func GetFileURL(ctx context.Context, c Caller, fileID string) (*types.FileURLResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateFileID(fileID); err != nil {
		return nil, err
	}

	var out types.FileURLResponse
	if err := getJSON(ctx, c, "get_file_url", "/file/"+fileID+"/url", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RetryFileProcessing asks the API to reprocess a file that ended in the
// error state.
func RetryFileProcessing(ctx context.Context, c Caller, fileID string) (*types.ActionResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateFileID(fileID); err != nil {
		return nil, err
	}

	var out types.ActionResponse
	if err := postEmpty(ctx, c, "retry_file_processing", "/file/"+fileID+"/retry", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelFileUpload cancels an upload that is still pending or processing.
func CancelFileUpload(ctx context.Context, c Caller, fileID string) (*types.ActionResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateFileID(fileID); err != nil {
		return nil, err
	}

	var out types.ActionResponse
	if err := postEmpty(ctx, c, "cancel_file_upload", "/file/"+fileID+"/cancel", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteFile removes a file and its transcript.
func DeleteFile(ctx context.Context, c Caller, fileID string) (*types.ActionResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateFileID(fileID); err != nil {
		return nil, err
	}

	var out types.ActionResponse
	if err := deleteJSON(ctx, c, "delete_file", "/file/"+fileID+"/delete", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// errStillProcessing keeps the WaitForFile poll loop going.
var errStillProcessing = errors.New("file still processing")

// Poll pacing for WaitForFile.
const (
	waitPollInitial = 2 * time.Second
	waitPollMax     = 15 * time.Second
)

// WaitForFile polls GET /file/{id} until processing reaches a terminal
// state (completed, error, cancelled) or ctx ends. The returned
// FileResponse carries the final state; callers inspect Status themselves
// since a processing failure is a valid outcome, not an error.
func WaitForFile(ctx context.Context, c Caller, fileID string) (*types.FileResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateFileID(fileID); err != nil {
		return nil, err
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = waitPollInitial
	exp.Multiplier = 1.5
	exp.MaxInterval = waitPollMax
	exp.MaxElapsedTime = 0 // ctx bounds the wait

	var final *types.FileResponse
	poll := func() error {
		fr, err := GetFile(ctx, c, fileID)
		if err != nil {
			if sdkerrors.IsIrrecoverable(err) {
				return backoff.Permanent(err)
			}
			return err // transient, keep polling
		}
		if types.TerminalFileStatus(fr.Data.FileInfo.Status) {
			final = fr
			return nil
		}
		return fmt.Errorf("%w: %s", errStillProcessing, fr.Data.FileInfo.Status)
	}

	if err := backoff.Retry(poll, backoff.WithContext(exp, ctx)); err != nil {
		return nil, err
	}
	return final, nil
}
