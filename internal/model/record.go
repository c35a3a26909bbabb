package model

import "time"

// DefaultAttributes — значение attributes, если клиент его не передал.
const DefaultAttributes = "{}"

// Record — серверная модель загруженного файла с атрибутами.
// Запись создаётся один раз и больше не изменяется.
type Record struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	FileName   string    `gorm:"column:filename;not null"`
	Attributes string    `gorm:"column:attributes;type:text"`
	FileData   []byte    `gorm:"column:file_data"`
	UploadTime time.Time `gorm:"column:upload_time;autoCreateTime;not null;index"` // время сервера (UTC), выставляет gorm
}

// TableName фиксирует имя таблицы marketplace_data.
func (Record) TableName() string { return "marketplace_data" }

// RecordSummary — строка списка файлов, без содержимого и атрибутов.
type RecordSummary struct {
	ID         int64
	FileName   string
	UploadTime time.Time
}
