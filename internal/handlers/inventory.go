package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"LabStore/internal/model"
	"LabStore/internal/service"

	"go.uber.org/zap"
)

// InventoryHandler обрабатывает CRUD учёта, архив и синхронизацию.
type InventoryHandler struct {
	Service *service.InventoryService
	Logger  *zap.SugaredLogger
}

// NewInventoryHandler создаёт хендлер учёта
func NewInventoryHandler(svc *service.InventoryService, logger *zap.SugaredLogger) *InventoryHandler {
	return &InventoryHandler{Service: svc, Logger: logger}
}

// apiResponse — единый конверт ответа: {success, message?, items?, count?}.
type apiResponse struct {
	Success  bool         `json:"success"`
	Message  string       `json:"message,omitempty"`
	Items    []model.Item `json:"items,omitempty"`
	Count    int          `json:"count,omitempty"`
	Imported int          `json:"imported,omitempty"`
	Skipped  int          `json:"skipped,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp apiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, apiResponse{Success: false, Message: msg})
}

// serviceError переводит ошибки сервиса в HTTP-статусы.
func (h *InventoryHandler) serviceError(w http.ResponseWriter, op string, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Error())
	case errors.Is(err, service.ErrDuplicate):
		writeError(w, http.StatusConflict, "An item with this unique ID already exists")
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "Item not found")
	default:
		h.Logger.Errorw(op+": service error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// Health доступность сервера
func (h *InventoryHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Message: "ok"})
}

// List активные записи, самые срочные первыми
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.ListItems(r.Context())
	if err != nil {
		h.serviceError(w, "List", err)
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Items: items, Count: len(items)})
}

// ListArchived архивные записи, последние выдачи первыми
func (h *InventoryHandler) ListArchived(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.ListArchived(r.Context())
	if err != nil {
		h.serviceError(w, "ListArchived", err)
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Items: items, Count: len(items)})
}

// Add приём новой записи
func (h *InventoryHandler) Add(w http.ResponseWriter, r *http.Request) {
	var it model.Item
	if err := json.NewDecoder(r.Body).Decode(&it); err != nil {
		h.Logger.Warnw("Add: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := h.Service.AddItem(r.Context(), &it); err != nil {
		h.serviceError(w, "Add", err)
		return
	}
	writeJSON(w, http.StatusCreated, apiResponse{Success: true, Items: []model.Item{it}})
}

// UpdateBody — частичное обновление записи по id.
type UpdateBody struct {
	ID string `json:"id"`
	service.UpdateRequest
}

// Update частичное обновление активной записи
func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body UpdateBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.Logger.Warnw("Update: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if body.ID == "" {
		writeError(w, http.StatusBadRequest, "missing id")
		return
	}
	if err := h.Service.UpdateItem(r.Context(), body.ID, body.UpdateRequest); err != nil {
		h.serviceError(w, "Update", err)
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{Success: true})
}

// ArchiveBody — перенос записи в архив с датой выдачи.
type ArchiveBody struct {
	ID         string     `json:"id"`
	PickupDate *time.Time `json:"pickupDate,omitempty"`
}

// Archive отметка о выдаче и перенос в архив
func (h *InventoryHandler) Archive(w http.ResponseWriter, r *http.Request) {
	var body ArchiveBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.Logger.Warnw("Archive: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if body.ID == "" {
		writeError(w, http.StatusBadRequest, "missing id")
		return
	}
	var pickup time.Time
	if body.PickupDate != nil {
		pickup = *body.PickupDate
	}
	it, err := h.Service.ArchiveItem(r.Context(), body.ID, pickup)
	if err != nil {
		h.serviceError(w, "Archive", err)
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Items: []model.Item{*it}})
}

type idBody struct {
	ID string `json:"id"`
}

// Restore возврат архивной записи в активные
func (h *InventoryHandler) Restore(w http.ResponseWriter, r *http.Request) {
	var body idBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ID == "" {
		writeError(w, http.StatusBadRequest, "missing id")
		return
	}
	it, err := h.Service.RestoreItem(r.Context(), body.ID)
	if err != nil {
		h.serviceError(w, "Restore", err)
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Items: []model.Item{*it}})
}

// Delete безвозвратное удаление архивной записи
func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var body idBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ID == "" {
		writeError(w, http.StatusBadRequest, "missing id")
		return
	}
	if err := h.Service.DeleteArchived(r.Context(), body.ID); err != nil {
		h.serviceError(w, "Delete", err)
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{Success: true})
}

// ImportBody — батч записей из файла.
type ImportBody struct {
	Items []model.Item `json:"items"`
}

// Import батч-добавление: невалидные и дубликаты пропускаются
func (h *InventoryHandler) Import(w http.ResponseWriter, r *http.Request) {
	var body ImportBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.Logger.Warnw("Import: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	imported, skipped, err := h.Service.ImportItems(r.Context(), body.Items)
	if err != nil {
		// часть строк уже принята: счётчики обязаны дойти до клиента,
		// иначе частичный успех выглядит как полный отказ
		h.Logger.Errorw("Import: batch interrupted", "imported", imported, "skipped", skipped, "error", err)
		writeJSON(w, http.StatusInternalServerError, apiResponse{
			Success:  false,
			Message:  "import interrupted, some rows were already applied",
			Imported: imported,
			Skipped:  skipped,
		})
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Imported: imported, Skipped: skipped})
}

// Sync замена всего состояния снапшотом клиента
func (h *InventoryHandler) Sync(w http.ResponseWriter, r *http.Request) {
	var snap model.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		h.Logger.Warnw("Sync: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := h.Service.Replace(r.Context(), &snap); err != nil {
		h.serviceError(w, "Sync", err)
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Count:   len(snap.CurrentItems) + len(snap.ArchivedItems),
	})
}
