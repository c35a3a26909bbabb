package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Error is returned when the server answers with a non-2xx status.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// UploadResult mirrors the /upload/ response.
type UploadResult struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// FileInfo is one entry of /files/.
type FileInfo struct {
	ID         int64  `json:"id"`
	FileName   string `json:"filename"`
	UploadTime string `json:"upload_time"`
}

// DownloadResult holds a downloaded file and the headers that describe it.
type DownloadResult struct {
	FileName    string // attachment name suggested by the server
	ContentType string
	ETag        string
	Data        []byte
}

// UploadFile sends a local file as multipart form data.
// A nil attributes pointer leaves the field out, so the server applies its default.
func UploadFile(ctx context.Context, serverURL, path string, attributes *string) (*UploadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(fw, f); err != nil {
		return nil, err
	}
	if attributes != nil {
		if err := mw.WriteField("attributes", *attributes); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, serverURL+"/upload/", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, body, err := do(req)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(resp, body); err != nil {
		return nil, err
	}
	var res UploadResult
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("decode upload response: %w", err)
	}
	return &res, nil
}

// DownloadFile fetches file content by id.
func DownloadFile(ctx context.Context, serverURL string, id int64) (*DownloadResult, error) {
	resp, body, err := get(ctx, serverURL+"/download/"+strconv.FormatInt(id, 10))
	if err != nil {
		return nil, err
	}
	if err := checkStatus(resp, body); err != nil {
		return nil, err
	}
	return &DownloadResult{
		FileName:    attachmentName(resp.Header.Get("Content-Disposition"), id),
		ContentType: resp.Header.Get("Content-Type"),
		ETag:        resp.Header.Get("ETag"),
		Data:        body,
	}, nil
}

// GetAttributes returns the raw attributes text stored for id.
func GetAttributes(ctx context.Context, serverURL string, id int64) (string, error) {
	resp, body, err := get(ctx, serverURL+"/attributes/"+strconv.FormatInt(id, 10))
	if err != nil {
		return "", err
	}
	if err := checkStatus(resp, body); err != nil {
		return "", err
	}
	var res struct {
		Attributes string `json:"attributes"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return "", fmt.Errorf("decode attributes response: %w", err)
	}
	return res.Attributes, nil
}

// ListFiles returns all stored files, newest first.
func ListFiles(ctx context.Context, serverURL string) ([]FileInfo, error) {
	resp, body, err := get(ctx, serverURL+"/files/")
	if err != nil {
		return nil, err
	}
	if err := checkStatus(resp, body); err != nil {
		return nil, err
	}
	var res []FileInfo
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("decode files response: %w", err)
	}
	return res, nil
}

func get(ctx context.Context, url string) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, err
	}
	return do(req)
}

func do(req *http.Request) (*http.Response, []byte, error) {
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}
	return resp, body, nil
}

// checkStatus turns a non-2xx response into *Error, using the server's
// "detail" or "error" field when present.
func checkStatus(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	var m struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	msg := strings.TrimSpace(string(body))
	if err := json.Unmarshal(body, &m); err == nil {
		if m.Detail != "" {
			msg = m.Detail
		} else if m.Error != "" {
			msg = m.Error
		}
	}
	return &Error{StatusCode: resp.StatusCode, Message: msg}
}

func attachmentName(disposition string, id int64) string {
	if _, params, err := mime.ParseMediaType(disposition); err == nil && params["filename"] != "" {
		return params["filename"]
	}
	return fmt.Sprintf("%d.bin", id)
}
