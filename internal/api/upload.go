package api

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	sdkerrors "github.com/vidnavigator/vidnavigator-go/internal/errors"
	"github.com/vidnavigator/vidnavigator-go/internal/job"
	"github.com/vidnavigator/vidnavigator-go/internal/types"
)

// UploadFile sends a local audio or video file to POST /upload/file
// (synchronous). The body streams from disk and is sent exactly once;
// retries belong to the async queue, which rebuilds the request per
// attempt.
func UploadFile(ctx context.Context, c Caller, req types.UploadFileRequest) (*types.UploadResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateUploadPath(req.Path); err != nil {
		return nil, err
	}

	var out types.UploadResponse
	if err := postFileOnce(ctx, c, "upload_file", req.Path, req.WaitForCompletion, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EnqueueUpload submits an upload to the sharded executor keyed by path:
// FIFO per path, parallel across paths, retried with backoff on
// recoverable failures. Only an enqueue acknowledgment is returned;
// reconcile results via ListFiles or WaitForFile.
func EnqueueUpload(ctx context.Context, exec types.Executor, c Caller, path string) (*types.UploadAck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateUploadPath(path); err != nil {
		return nil, err
	}

	uploadJob := job.New(func(jobCtx context.Context) error {
		return postFileOnce(jobCtx, c, "upload_file", path, false, nil)
	})
	if err := exec.Submit(ctx, path, uploadJob); err != nil {
		return nil, err
	}
	return &types.UploadAck{Path: path, Status: "enqueued"}, nil
}

func validateUploadPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: file path is required", types.ErrValidation)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %w", types.ErrValidation, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", types.ErrValidation, path)
	}
	return nil
}

// postFileOnce streams one multipart upload attempt. The file is reopened
// on every call so queued retries always read a fresh body.
func postFileOnce(ctx context.Context, c Caller, op, path string, waitForCompletion bool, out any) error {
	f, err := os.Open(path)
	if err != nil {
		// The file vanished after validation; retrying cannot help.
		return &sdkerrors.ClassifiedError{
			Category:   sdkerrors.Irrecoverable,
			Underlying: fmt.Errorf("%w: %w", types.ErrValidation, err),
		}
	}
	defer func() { _ = f.Close() }()

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		if err := mw.WriteField("wait_for_completion", strconv.FormatBool(waitForCompletion)); err != nil {
			_ = pw.CloseWithError(err)
			return
		}
		part, err := mw.CreateFormFile("file", filepath.Base(path))
		if err != nil {
			_ = pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, f); err != nil {
			_ = pw.CloseWithError(err)
			return
		}
		_ = pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/upload/file", pr)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	requestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		requestsTotal.WithLabelValues(op, "error").Inc()
		return sdkerrors.NewNetworkError(op, fmt.Errorf("%w: %v", types.ErrConnection, err))
	}
	return handleResponse(op, resp, out)
}
