package commands

import (
	"FileKeeper/internal/config"
	"FileKeeper/internal/handlers"
	"FileKeeper/internal/repo"
	"FileKeeper/internal/service"
	"bytes"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

// withTestServer поднимает настоящий сервер на SQLite во временном каталоге
// и возвращает конфиг клиента, указывающий на него.
func withTestServer(t *testing.T) *config.Config {
	t.Helper()
	db, err := repo.InitDB(filepath.Join(t.TempDir(), "data.db"))
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	logger := zap.NewNop().Sugar()
	svc := service.NewRecordService(repo.NewRecordRepository(db), logger)
	ts := httptest.NewServer(handlers.NewHandler(svc, logger).Router)
	t.Cleanup(func() {
		ts.Close()
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return &config.Config{ServerURL: ts.URL}
}

// withOutCapture перенаправляет Out в буфер на время теста.
func withOutCapture(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	old := Out
	Out = buf
	t.Cleanup(func() { Out = old })
	return buf
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, data, 0o600); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}
