package handlers

import (
	"FileKeeper/internal/middleware"
	"FileKeeper/internal/model"
	"FileKeeper/internal/service"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"
)

const uploadedMessage = "File uploaded successfully"

// RecordHandler обрабатывает загрузку, скачивание и просмотр файлов.
type RecordHandler struct {
	RecordService *service.RecordService
	Logger        *zap.SugaredLogger
}

// NewRecordHandler создаёт хендлер записей
func NewRecordHandler(recordService *service.RecordService, logger *zap.SugaredLogger) *RecordHandler {
	return &RecordHandler{RecordService: recordService, Logger: logger}
}

type UploadResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type AttributesResponse struct {
	Attributes string `json:"attributes"`
}

// FileDTO — элемент списка /files/.
type FileDTO struct {
	ID         int64  `json:"id"`
	FileName   string `json:"filename"`
	UploadTime string `json:"upload_time"`
}

type DetailResponse struct {
	Detail string `json:"detail"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Upload сохраняет файл из multipart-поля file и текст из поля attributes.
func (h *RecordHandler) Upload(w http.ResponseWriter, r *http.Request) {
	reqID, _ := middleware.GetRequestIDFromContext(r.Context())

	form, err := readUploadForm(r)
	if err != nil {
		h.Logger.Warnw("Upload: invalid multipart form", "request_id", reqID, "error", err)
		writeJSON(w, r, http.StatusBadRequest, DetailResponse{Detail: "invalid multipart form"})
		return
	}
	if !form.hasFile {
		h.Logger.Warnw("Upload: missing file", "request_id", reqID)
		writeJSON(w, r, http.StatusBadRequest, DetailResponse{Detail: "missing file"})
		return
	}

	id, err := h.RecordService.Upload(r.Context(), form.fileName, form.attributes, form.data)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrInvalidInput):
		h.Logger.Warnw("Upload: invalid input", "request_id", reqID, "error", err)
		writeJSON(w, r, http.StatusBadRequest, DetailResponse{Detail: err.Error()})
		return
	default:
		h.Logger.Errorw("Upload: service error", "request_id", reqID, "error", err)
		writeJSON(w, r, http.StatusInternalServerError, DetailResponse{Detail: err.Error()})
		return
	}

	h.Logger.Infow("Upload: stored", "request_id", reqID, "id", id, "filename", form.fileName, "size", len(form.data))
	writeJSON(w, r, http.StatusOK, UploadResponse{ID: id, Message: uploadedMessage})
}

type uploadForm struct {
	hasFile    bool
	fileName   string
	data       []byte
	attributes string
}

// readUploadForm читает multipart-поток по частям.
// Имя файла берётся из Content-Disposition без обрезки каталогов:
// multipart.Part.FileName() применяет filepath.Base, а имя хранится как прислал клиент.
func readUploadForm(r *http.Request) (*uploadForm, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		return nil, err
	}

	// поле не передано — пустой JSON-объект; переданное значение сохраняем как есть
	form := &uploadForm{attributes: model.DefaultAttributes}
	gotAttributes := false
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return form, nil
		}
		if err != nil {
			return nil, err
		}

		_, params, _ := mime.ParseMediaType(part.Header.Get("Content-Disposition"))
		fileName, isFile := params["filename"]

		switch {
		case part.FormName() == "file" && isFile && !form.hasFile:
			data, err := io.ReadAll(part)
			if err != nil {
				return nil, fmt.Errorf("read file part: %w", err)
			}
			form.hasFile = true
			form.fileName = fileName
			form.data = data
		case part.FormName() == "attributes" && !isFile && !gotAttributes:
			v, err := io.ReadAll(part)
			if err != nil {
				return nil, fmt.Errorf("read attributes: %w", err)
			}
			gotAttributes = true
			form.attributes = string(v)
		default:
			if _, err := io.Copy(io.Discard, part); err != nil {
				return nil, err
			}
		}
		_ = part.Close()
	}
}

// Download отдаёт содержимое файла как вложение.
func (h *RecordHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	d, err := h.RecordService.Download(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeJSON(w, r, http.StatusNotFound, DetailResponse{Detail: "File not found"})
			return
		}
		// текст ошибки хранилища уходит клиенту как есть
		h.Logger.Errorw("Download: service error", "id", id, "error", err)
		writeJSON(w, r, http.StatusInternalServerError, DetailResponse{Detail: err.Error()})
		return
	}

	data := d.Record.FileData
	w.Header().Set("Content-Type", d.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, d.FileName))
	w.Header().Set("ETag", d.ETag)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.Logger.Warnw("Download: write failed", "id", id, "error", err)
	}
}

// Attributes возвращает сохранённый текст атрибутов.
func (h *RecordHandler) Attributes(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	attrs, err := h.RecordService.Attributes(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeJSON(w, r, http.StatusNotFound, ErrorResponse{Error: "Data not found"})
			return
		}
		h.Logger.Errorw("Attributes: service error", "id", id, "error", err)
		writeJSON(w, r, http.StatusInternalServerError, DetailResponse{Detail: err.Error()})
		return
	}
	writeJSON(w, r, http.StatusOK, AttributesResponse{Attributes: attrs})
}

// List возвращает список всех файлов, новые первыми.
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.RecordService.List(r.Context())
	if err != nil {
		h.Logger.Errorw("List: service error", "error", err)
		writeJSON(w, r, http.StatusInternalServerError, DetailResponse{Detail: err.Error()})
		return
	}

	files := make([]FileDTO, 0, len(list))
	for _, s := range list {
		files = append(files, FileDTO{
			ID:         s.ID,
			FileName:   s.FileName,
			UploadTime: s.UploadTime.UTC().Format(time.RFC3339),
		})
	}
	writeJSON(w, r, http.StatusOK, files)
}

// parseID читает {id} из пути; нечисловой id — 422, как у валидации параметров.
func (h *RecordHandler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.Logger.Warnw("invalid id", "id", raw, "error", err)
		writeJSON(w, r, http.StatusUnprocessableEntity, DetailResponse{Detail: "invalid id: " + raw})
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}
