package handlers_test

import (
	"FileKeeper/internal/handlers"
	"FileKeeper/internal/model"
	"FileKeeper/internal/repo"
	"FileKeeper/internal/service"
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Local light mock
type hMockRecordRepo struct{ mock.Mock }

func (m *hMockRecordRepo) Create(ctx context.Context, rec *model.Record) error {
	return m.Called(ctx, rec).Error(0)
}
func (m *hMockRecordRepo) GetByID(ctx context.Context, id int64) (*model.Record, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Record); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockRecordRepo) GetAttributes(ctx context.Context, id int64) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}
func (m *hMockRecordRepo) List(ctx context.Context) ([]model.RecordSummary, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.RecordSummary); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.RecordRepository = (*hMockRecordRepo)(nil)

func newRouter(r repo.RecordRepository) http.Handler {
	logger := zap.NewNop().Sugar()
	svc := service.NewRecordService(r, logger)
	return handlers.NewHandler(svc, logger).Router
}

// newSQLiteRouter — роутер поверх настоящей SQLite во временном файле
func newSQLiteRouter(t *testing.T) http.Handler {
	t.Helper()
	db, err := repo.InitDB(filepath.Join(t.TempDir(), "data.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return newRouter(repo.NewRecordRepository(db))
}

func newMockRouter(t *testing.T) (http.Handler, *hMockRecordRepo) {
	t.Helper()
	m := &hMockRecordRepo{}
	return newRouter(m), m
}

// uploadRequest собирает multipart-запрос; attrs == nil — поле attributes не передаётся
func uploadRequest(t *testing.T, filename string, content []byte, attrs *string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	if attrs != nil {
		require.NoError(t, mw.WriteField("attributes", *attrs))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func do(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func upload(t *testing.T, h http.Handler, filename string, content []byte, attrs *string) int64 {
	t.Helper()
	rr := do(h, uploadRequest(t, filename, content, attrs))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var resp handlers.UploadResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, "File uploaded successfully", resp.Message)
	return resp.ID
}

func strPtr(s string) *string { return &s }

func itoa(id int64) string { return strconv.FormatInt(id, 10) }
