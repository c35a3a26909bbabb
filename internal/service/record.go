package service

import (
	"FileKeeper/internal/model"
	"FileKeeper/internal/repo"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RecordService инкапсулирует бизнес-логику работы с загруженными файлами.
type RecordService struct {
	repo   repo.RecordRepository
	logger *zap.SugaredLogger
}

func NewRecordService(r repo.RecordRepository, logger *zap.SugaredLogger) *RecordService {
	return &RecordService{repo: r, logger: logger}
}

// Download — запись, подготовленная к отдаче клиенту.
type Download struct {
	Record      *model.Record
	ContentType string
	FileName    string // имя вложения для Content-Disposition
	ETag        string
}

// Upload сохраняет новый файл и возвращает присвоенный id.
// attributes сохраняются как есть, без проверки JSON; значение по умолчанию
// подставляет вызывающий слой.
func (s *RecordService) Upload(ctx context.Context, filename, attributes string, data []byte) (int64, error) {
	if filename == "" {
		return 0, fmt.Errorf("%w: empty filename", ErrInvalidInput)
	}
	rec := &model.Record{
		FileName:   filename,
		Attributes: attributes,
		FileData:   data,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return 0, s.storageErr("create", err)
	}
	s.logger.Debugw("record stored", "id", rec.ID, "filename", filename, "size", len(data))
	return rec.ID, nil
}

// Download возвращает файл вместе с вычисленными заголовками ответа.
func (s *RecordService) Download(ctx context.Context, id int64) (*Download, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapErr("get", err)
	}
	return &Download{
		Record:      rec,
		ContentType: ContentTypeByName(rec.FileName),
		FileName:    DownloadName(rec.ID, rec.FileName),
		ETag:        ETag(rec.FileData),
	}, nil
}

// Attributes возвращает сохранённый текст атрибутов без изменений.
func (s *RecordService) Attributes(ctx context.Context, id int64) (string, error) {
	attrs, err := s.repo.GetAttributes(ctx, id)
	if err != nil {
		return "", s.mapErr("get attributes", err)
	}
	return attrs, nil
}

// List возвращает все записи, новые первыми.
func (s *RecordService) List(ctx context.Context) ([]model.RecordSummary, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, s.storageErr("list", err)
	}
	return list, nil
}

func (s *RecordService) mapErr(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return s.storageErr(op, err)
}

func (s *RecordService) storageErr(op string, err error) error {
	s.logger.Errorw("storage fault", "op", op, "error", err)
	return &StorageError{Op: op, Err: err}
}
