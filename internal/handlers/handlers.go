package handlers

import (
	"FileKeeper/internal/middleware"
	"FileKeeper/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	recordService *service.RecordService,
	logger *zap.SugaredLogger,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)

	recordHandler := NewRecordHandler(recordService, logger)

	// Record routes
	r.Post("/upload/", recordHandler.Upload)
	r.Get("/download/{id}", recordHandler.Download)
	r.Get("/attributes/{id}", recordHandler.Attributes)
	r.Get("/files/", recordHandler.List)

	// те же маршруты без завершающего слэша
	r.Post("/upload", recordHandler.Upload)
	r.Get("/files", recordHandler.List)

	return &Handler{Router: r}
}
