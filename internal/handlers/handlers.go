package handlers

import (
	"LabStore/internal/mailer"
	"LabStore/internal/middleware"
	"LabStore/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	inventoryService *service.InventoryService,
	mailSender mailer.Sender,
	logger *zap.SugaredLogger,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)

	// Handlers
	inventoryHandler := NewInventoryHandler(inventoryService, logger)
	notificationHandler := NewNotificationHandler(mailSender, logger)

	// Inventory routes
	r.Get("/api/health", inventoryHandler.Health)
	r.Get("/api/items", inventoryHandler.List)
	r.Get("/api/archived", inventoryHandler.ListArchived)
	r.Post("/api/items", inventoryHandler.Add)
	r.Post("/api/items/update", inventoryHandler.Update)
	r.Post("/api/items/archive", inventoryHandler.Archive)
	r.Post("/api/items/restore", inventoryHandler.Restore)
	r.Post("/api/items/delete", inventoryHandler.Delete)
	r.Post("/api/items/import", inventoryHandler.Import)
	r.Post("/api/items/sync", inventoryHandler.Sync)

	// Notification route
	r.Post("/send-notification", notificationHandler.Send)

	return &Handler{Router: r}
}
