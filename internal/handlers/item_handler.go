package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"recircleBack/internal/models"
	"recircleBack/internal/services"
)

const defaultItemImageDir = "uploads/items"

type ItemHandler struct {
	Service *services.ItemService

	// ImageDir overrides where uploaded item images land. Empty means
	// the default uploads directory.
	ImageDir string
}

func (h *ItemHandler) imageDir() string {
	if h.ImageDir != "" {
		return h.ImageDir
	}
	return defaultItemImageDir
}

// CreateItem handles POST /items. The owner is forced to the
// authenticated requester.
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		http.Error(w, "Authorization required", http.StatusUnauthorized)
		return
	}

	var req models.ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	item, err := h.Service.CreateItem(r.Context(), userID, req)
	if err != nil {
		if errs, ok := asValidationErrors(err); ok {
			writeValidationErrors(w, errs)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// GetItems handles GET /items, newest first.
func (h *ItemHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	limit, offset := paging(r)

	items, err := h.Service.GetItems(r.Context(), limit, offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *ItemHandler) GetItemByID(w http.ResponseWriter, r *http.Request) {
	id, ok := getIntParam(r, "id")
	if !ok {
		http.Error(w, "Invalid item ID", http.StatusBadRequest)
		return
	}

	item, err := h.Service.GetItemByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrItemNotFound) {
			http.Error(w, "Item not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		http.Error(w, "Authorization required", http.StatusUnauthorized)
		return
	}

	id, ok := getIntParam(r, "id")
	if !ok {
		http.Error(w, "Invalid item ID", http.StatusBadRequest)
		return
	}

	var req models.ItemUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	item, err := h.Service.UpdateItem(r.Context(), id, userID, req)
	if err != nil {
		h.writeItemError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		http.Error(w, "Authorization required", http.StatusUnauthorized)
		return
	}

	id, ok := getIntParam(r, "id")
	if !ok {
		http.Error(w, "Invalid item ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteItem(r.Context(), id, userID); err != nil {
		h.writeItemError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadItemImage handles POST /items/:id/image. The file lands in the
// local uploads directory under a fresh uuid name.
func (h *ItemHandler) UploadItemImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		http.Error(w, "Authorization required", http.StatusUnauthorized)
		return
	}

	id, ok := getIntParam(r, "id")
	if !ok {
		http.Error(w, "Invalid item ID", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Failed to get image file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if err := os.MkdirAll(h.imageDir(), 0755); err != nil {
		http.Error(w, "Failed to create image directory", http.StatusInternalServerError)
		return
	}

	filename := uuid.New().String() + filepath.Ext(header.Filename)
	savePath := filepath.Join(h.imageDir(), filename)
	publicURL := fmt.Sprintf("/images/items/%s", filename)

	dst, err := os.Create(savePath)
	if err != nil {
		http.Error(w, "Cannot save image", http.StatusInternalServerError)
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(savePath)
		http.Error(w, "Failed to write image", http.StatusInternalServerError)
		return
	}

	item, err := h.Service.AttachImage(r.Context(), id, userID, publicURL)
	if err != nil {
		// The attach failed, so the file on disk belongs to nothing.
		_ = os.Remove(savePath)
		h.writeItemError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// ServeItemImage handles GET /images/items/:filename.
func (h *ItemHandler) ServeItemImage(w http.ResponseWriter, r *http.Request) {
	filename := getParam(r, "filename")
	if filename == "" {
		http.Error(w, "filename is required", http.StatusBadRequest)
		return
	}

	imagePath := filepath.Join(h.imageDir(), filepath.Base(filename))
	if _, err := os.Stat(imagePath); os.IsNotExist(err) {
		http.Error(w, "image not found", http.StatusNotFound)
		return
	}

	switch filepath.Ext(imagePath) {
	case ".jpg", ".jpeg":
		w.Header().Set("Content-Type", "image/jpeg")
	case ".png":
		w.Header().Set("Content-Type", "image/png")
	case ".gif":
		w.Header().Set("Content-Type", "image/gif")
	default:
		w.Header().Set("Content-Type", "application/octet-stream")
	}

	http.ServeFile(w, r, imagePath)
}

func (h *ItemHandler) writeItemError(w http.ResponseWriter, err error) {
	if errs, ok := asValidationErrors(err); ok {
		writeValidationErrors(w, errs)
		return
	}
	switch {
	case errors.Is(err, models.ErrItemNotFound):
		http.Error(w, "Item not found", http.StatusNotFound)
	case errors.Is(err, models.ErrNotOwner):
		http.Error(w, "Forbidden: only the owner may modify this item", http.StatusForbidden)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
