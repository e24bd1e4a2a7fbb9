package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vidnavigator/vidnavigator-go/internal/types"
)

func TestListFiles_DefaultQueryParams(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/files" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("limit") != "50" {
			t.Errorf("limit = %q, want 50", q.Get("limit"))
		}
		if q.Get("offset") != "0" {
			t.Errorf("offset = %q, want 0", q.Get("offset"))
		}
		if q.Has("status") {
			t.Error("status should be absent when no filter is set")
		}
		_, _ = w.Write([]byte(`{"status":"success","data":{"files":[],"total_count":0,"limit":50,"offset":0,"has_more":false}}`))
	}))
	defer srv.Close()

	out, err := ListFiles(context.Background(), testCaller(srv), types.ListFilesRequest{})
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	if out.Data.Limit != 50 || out.Data.HasMore {
		t.Fatalf("unexpected page: %+v", out.Data)
	}
}

func TestListFiles_FilterAndPagination(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("limit") != "10" || q.Get("offset") != "20" || q.Get("status") != "completed" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{
			"status": "success",
			"data": {
				"files": [
					{"id": "f1", "name": "standup.mp3", "status": "completed", "has_transcript": true},
					{"id": "f2", "name": "allhands.mp4", "status": "completed"}
				],
				"total_count": 42, "limit": 10, "offset": 20, "has_more": true
			}
		}`))
	}))
	defer srv.Close()

	out, err := ListFiles(context.Background(), testCaller(srv), types.ListFilesRequest{
		Limit:  10,
		Offset: 20,
		Status: types.FileStatusCompleted,
	})
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	if len(out.Data.Files) != 2 || out.Data.TotalCount != 42 || !out.Data.HasMore {
		t.Fatalf("unexpected page: %+v", out.Data)
	}
	if !out.Data.Files[0].HasTranscript {
		t.Fatal("has_transcript lost in decode")
	}
}

func TestListFiles_ValidationShortCircuits(t *testing.T) {
	t.Parallel()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	cases := []types.ListFilesRequest{
		{Limit: -1},
		{Offset: -5},
		{Status: "archived"},
	}
	for _, req := range cases {
		if _, err := ListFiles(context.Background(), testCaller(srv), req); !errors.Is(err, types.ErrValidation) {
			t.Errorf("req %+v: got %v, want ErrValidation", req, err)
		}
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Fatal("validation failures must not reach the server")
	}
}

func TestGetFile_PathAndTranscript(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/file/f-123" {
			t.Errorf("path = %s, want /file/f-123", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"status": "success",
			"data": {
				"file_info": {"id": "f-123", "name": "standup.mp3", "status": "completed"},
				"transcript": [{"text": "Yesterday I fixed the flaky test.", "start": 0, "end": 3.2}]
			}
		}`))
	}))
	defer srv.Close()

	out, err := GetFile(context.Background(), testCaller(srv), "f-123")
	if err != nil {
		t.Fatalf("GetFile: %v", err)
	}
	if out.Data.FileInfo.ID != "f-123" || len(out.Data.Transcript) != 1 {
		t.Fatalf("unexpected file data: %+v", out.Data)
	}
}

func TestGetFileURL_Path(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/file/f-123/url" {
			t.Errorf("path = %s, want /file/f-123/url", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"status":"success","data":{"url":"https://cdn.example.com/f-123?sig=abc","expires_at":"2025-01-02T15:04:05Z"}}`))
	}))
	defer srv.Close()

	out, err := GetFileURL(context.Background(), testCaller(srv), "f-123")
	if err != nil {
		t.Fatalf("GetFileURL: %v", err)
	}
	if out.Data.URL == "" || out.Data.ExpiresAt == "" {
		t.Fatalf("unexpected url data: %+v", out.Data)
	}
}

func TestFileActions_MethodsAndPaths(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/file/f1/retry":
		case r.Method == http.MethodPost && r.URL.Path == "/file/f1/cancel":
		case r.Method == http.MethodDelete && r.URL.Path == "/file/f1/delete":
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"status":"success","message":"done"}`))
	}))
	defer srv.Close()

	c := testCaller(srv)
	if _, err := RetryFileProcessing(context.Background(), c, "f1"); err != nil {
		t.Fatalf("RetryFileProcessing: %v", err)
	}
	if _, err := CancelFileUpload(context.Background(), c, "f1"); err != nil {
		t.Fatalf("CancelFileUpload: %v", err)
	}
	out, err := DeleteFile(context.Background(), c, "f1")
	if err != nil {
		t.Fatalf("DeleteFile: %v", err)
	}
	if out.Message != "done" {
		t.Fatalf("message = %q", out.Message)
	}
}

func TestFileActions_InvalidID(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	c := testCaller(srv)
	if _, err := GetFile(context.Background(), c, ""); !errors.Is(err, types.ErrValidation) {
		t.Fatalf("GetFile: got %v, want ErrValidation", err)
	}
	if _, err := GetFileURL(context.Background(), c, "a b"); !errors.Is(err, types.ErrValidation) {
		t.Fatalf("GetFileURL: got %v, want ErrValidation", err)
	}
	if _, err := RetryFileProcessing(context.Background(), c, "x/y"); !errors.Is(err, types.ErrValidation) {
		t.Fatalf("RetryFileProcessing: got %v, want ErrValidation", err)
	}
	if _, err := CancelFileUpload(context.Background(), c, ""); !errors.Is(err, types.ErrValidation) {
		t.Fatalf("CancelFileUpload: got %v, want ErrValidation", err)
	}
	if _, err := DeleteFile(context.Background(), c, ""); !errors.Is(err, types.ErrValidation) {
		t.Fatalf("DeleteFile: got %v, want ErrValidation", err)
	}
}

func TestWaitForFile_PollsUntilCompleted(t *testing.T) {
	t.Parallel()
	var polls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := types.FileStatusProcessing
		if atomic.AddInt32(&polls, 1) >= 2 {
			status = types.FileStatusCompleted
		}
		_, _ = w.Write([]byte(`{"status":"success","data":{"file_info":{"id":"f1","status":"` + status + `"}}}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	out, err := WaitForFile(ctx, testCaller(srv), "f1")
	if err != nil {
		t.Fatalf("WaitForFile: %v", err)
	}
	if out.Data.FileInfo.Status != types.FileStatusCompleted {
		t.Fatalf("status = %q, want completed", out.Data.FileInfo.Status)
	}
	if got := atomic.LoadInt32(&polls); got < 2 {
		t.Fatalf("expected at least 2 polls, got %d", got)
	}
}

// A processing failure is a valid outcome; WaitForFile returns the error
// state instead of an error.
func TestWaitForFile_ErrorStateIsTerminal(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success","data":{"file_info":{"id":"f1","status":"error","error_message":"unsupported codec"}}}`))
	}))
	defer srv.Close()

	out, err := WaitForFile(context.Background(), testCaller(srv), "f1")
	if err != nil {
		t.Fatalf("WaitForFile: %v", err)
	}
	if out.Data.FileInfo.Status != types.FileStatusError {
		t.Fatalf("status = %q, want error", out.Data.FileInfo.Status)
	}
	if out.Data.FileInfo.ErrorMessage == "" {
		t.Fatal("error_message lost in decode")
	}
}

func TestWaitForFile_StopsOnNotFound(t *testing.T) {
	t.Parallel()
	var polls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&polls, 1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":"error","message":"unknown file"}`))
	}))
	defer srv.Close()

	_, err := WaitForFile(context.Background(), testCaller(srv), "ghost")
	if !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if got := atomic.LoadInt32(&polls); got != 1 {
		t.Fatalf("404 should stop polling immediately, got %d polls", got)
	}
}

func TestWaitForFile_CtxDeadline(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success","data":{"file_info":{"id":"f1","status":"processing"}}}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_, err := WaitForFile(ctx, testCaller(srv), "f1")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected DeadlineExceeded, got %v", err)
	}
}
