package service

import (
	"encoding/hex"
	"fmt"
	"mime"
	"path/filepath"

	"golang.org/x/crypto/blake2b"
)

// FallbackContentType отдаётся, если тип по расширению определить не удалось.
const FallbackContentType = "text/plain"

// ContentTypeByName определяет MIME-тип по расширению имени файла.
// Содержимое файла не анализируется.
func ContentTypeByName(filename string) string {
	if ct := mime.TypeByExtension(filepath.Ext(filename)); ct != "" {
		return ct
	}
	return FallbackContentType
}

// DownloadName формирует имя вложения для скачивания: "[" + id + "_" + filename.
// Непарная скобка оставлена как есть, клиенты уже на неё завязаны.
func DownloadName(id int64, filename string) string {
	return fmt.Sprintf("[%d_%s", id, filename)
}

// ETag — BLAKE2b-256 содержимого в кавычках.
func ETag(data []byte) string {
	sum := blake2b.Sum256(data)
	return `"` + hex.EncodeToString(sum[:]) + `"`
}
