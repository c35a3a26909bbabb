package repo

import (
	"FileKeeper/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRecordRepository_Create_GetByID(t *testing.T) {
	r := NewRecordRepository(newTestDB(t))
	ctx := context.Background()

	data := []byte{0x00, 0xff, 0x10, 0x00, 'h', 'i'}
	rec := &model.Record{FileName: "a.bin", Attributes: `{"k":1}`, FileData: data}
	require.NoError(t, r.Create(ctx, rec))
	assert.Equal(t, int64(1), rec.ID)
	assert.WithinDuration(t, time.Now().UTC(), rec.UploadTime, 5*time.Second)

	got, err := r.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "a.bin", got.FileName)
	assert.Equal(t, data, got.FileData)
	assert.Equal(t, `{"k":1}`, got.Attributes)
	assert.WithinDuration(t, rec.UploadTime, got.UploadTime, time.Second)
}

func TestRecordRepository_EmptyContent(t *testing.T) {
	r := NewRecordRepository(newTestDB(t))
	ctx := context.Background()

	rec := &model.Record{FileName: "empty.txt", Attributes: "{}"}
	require.NoError(t, r.Create(ctx, rec))

	got, err := r.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.FileData)
	assert.Len(t, got.FileData, 0)
}

func TestRecordRepository_NotFound(t *testing.T) {
	r := NewRecordRepository(newTestDB(t))
	ctx := context.Background()

	got, err := r.GetByID(ctx, 999)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	attrs, err := r.GetAttributes(ctx, 999)
	assert.Empty(t, attrs)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRecordRepository_GetAttributes_Verbatim(t *testing.T) {
	r := NewRecordRepository(newTestDB(t))
	ctx := context.Background()

	texts := []string{
		`{"b": 2,   "a": [1, 2]}`,
		`not json at all`,
		"",
	}
	for _, text := range texts {
		rec := &model.Record{FileName: "f", Attributes: text, FileData: []byte("x")}
		require.NoError(t, r.Create(ctx, rec))

		got, err := r.GetAttributes(ctx, rec.ID)
		require.NoError(t, err)
		assert.Equal(t, text, got)
	}
}

func TestRecordRepository_NoDeduplication(t *testing.T) {
	r := NewRecordRepository(newTestDB(t))
	ctx := context.Background()

	a := &model.Record{FileName: "same.txt", Attributes: "{}", FileData: []byte("same")}
	b := &model.Record{FileName: "same.txt", Attributes: "{}", FileData: []byte("same")}
	require.NoError(t, r.Create(ctx, a))
	require.NoError(t, r.Create(ctx, b))
	assert.NotEqual(t, a.ID, b.ID)

	for _, id := range []int64{a.ID, b.ID} {
		got, err := r.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, []byte("same"), got.FileData)
	}
}

func TestRecordRepository_List_NewestFirst(t *testing.T) {
	r := NewRecordRepository(newTestDB(t))
	ctx := context.Background()

	list, err := r.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Len(t, list, 0)

	var ids []int64
	for _, name := range []string{"one", "two", "three"} {
		rec := &model.Record{FileName: name, Attributes: "{}", FileData: []byte(name)}
		require.NoError(t, r.Create(ctx, rec))
		ids = append(ids, rec.ID)
	}

	list, err = r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, ids[2], list[0].ID)
	assert.Equal(t, "three", list[0].FileName)
	assert.Equal(t, ids[1], list[1].ID)
	assert.Equal(t, ids[0], list[2].ID)
	for i := 1; i < len(list); i++ {
		assert.False(t, list[i].UploadTime.After(list[i-1].UploadTime))
	}
}

func TestRecordRepository_List_OrdersByUploadTime(t *testing.T) {
	r := NewRecordRepository(newTestDB(t))
	ctx := context.Background()

	// явное время: более поздний id может иметь более раннее upload_time
	now := time.Now().UTC()
	fresh := &model.Record{FileName: "fresh", Attributes: "{}", FileData: []byte("1"), UploadTime: now}
	old := &model.Record{FileName: "old", Attributes: "{}", FileData: []byte("2"), UploadTime: now.Add(-time.Hour)}
	require.NoError(t, r.Create(ctx, fresh))
	require.NoError(t, r.Create(ctx, old))

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "fresh", list[0].FileName)
	assert.Equal(t, "old", list[1].FileName)
	assert.WithinDuration(t, now.Add(-time.Hour), list[1].UploadTime, time.Second)
}
