package repo

import (
	"FileKeeper/internal/model"
	"context"

	"gorm.io/gorm"
)

// RecordRepository контракт доступа к записям файлов.
// Отсутствующая запись возвращается как gorm.ErrRecordNotFound.
type RecordRepository interface {
	// Create вставляет новую запись и заполняет rec.ID и rec.UploadTime.
	Create(ctx context.Context, rec *model.Record) error

	// GetByID возвращает запись целиком, вместе с содержимым файла.
	GetByID(ctx context.Context, id int64) (*model.Record, error)

	// GetAttributes возвращает только текст атрибутов.
	GetAttributes(ctx context.Context, id int64) (string, error)

	// List возвращает краткие сведения по всем записям, новые первыми.
	List(ctx context.Context) ([]model.RecordSummary, error)
}

type recordRepo struct {
	db *gorm.DB
}

// NewRecordRepository создаёт реализацию репозитория для Record.
func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &recordRepo{db: db}
}

func (r *recordRepo) Create(ctx context.Context, rec *model.Record) error {
	// пустой файл пишем пустым blob, а не NULL
	if rec.FileData == nil {
		rec.FileData = []byte{}
	}
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recordRepo) GetByID(ctx context.Context, id int64) (*model.Record, error) {
	var rec model.Record
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&rec).Error; err != nil {
		return nil, err
	}
	if rec.FileData == nil {
		rec.FileData = []byte{}
	}
	return &rec, nil
}

func (r *recordRepo) GetAttributes(ctx context.Context, id int64) (string, error) {
	var rec model.Record
	err := r.db.WithContext(ctx).
		Select("attributes").
		Where("id = ?", id).
		Take(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.Attributes, nil
}

func (r *recordRepo) List(ctx context.Context) ([]model.RecordSummary, error) {
	var recs []model.Record
	err := r.db.WithContext(ctx).
		Select("id", "filename", "upload_time").
		Order("upload_time DESC").
		Order("id DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	res := make([]model.RecordSummary, 0, len(recs))
	for _, rec := range recs {
		res = append(res, model.RecordSummary{
			ID:         rec.ID,
			FileName:   rec.FileName,
			UploadTime: rec.UploadTime,
		})
	}
	return res, nil
}
