package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"blogapi/internal/models"
	"blogapi/internal/service"
)

// CreatePostRequest deliberately has no author field: a client-supplied
// author is discarded during decoding, before validation runs.
type CreatePostRequest struct {
	Title              string `json:"title" validate:"required,max=200"`
	ContentDescription string `json:"content_description" validate:"required"`
}

type UpdatePostRequest struct {
	Title              *string `json:"title" validate:"omitempty,max=200"`
	ContentDescription *string `json:"content_description"`
}

type CreatePostResponse struct {
	models.Post
	Message string `json:"message"`
}

func (h *Handlers) ListPosts(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	posts, err := h.PostService.ListPosts(r.Context(), userID)
	if err != nil {
		WriteError(w, "Failed to get posts", http.StatusInternalServerError)
		return
	}

	WriteJSON(w, posts, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteFieldErrors(w, fieldErrors(err), http.StatusBadRequest)
		return
	}

	// author always comes from the authenticated caller
	serviceReq := service.CreatePostRequest{
		AuthorID:           userID,
		Title:              req.Title,
		ContentDescription: req.ContentDescription,
	}

	post, err := h.PostService.CreatePost(r.Context(), serviceReq)
	if err != nil {
		WriteError(w, "Failed to create post", http.StatusInternalServerError)
		return
	}

	response := CreatePostResponse{
		Post:    *post,
		Message: PostedSuccess,
	}

	WriteJSON(w, response, http.StatusCreated)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	post, err := h.PostService.GetPost(r.Context(), postID, userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			WriteError(w, PostNotFound, http.StatusNotFound)
		} else {
			WriteError(w, "Failed to get post", http.StatusInternalServerError)
		}
		return
	}

	WriteJSON(w, post, http.StatusOK)
}

// UpdatePost serves PUT (full update) and PATCH (partial update)
func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	var req UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteFieldErrors(w, fieldErrors(err), http.StatusBadRequest)
		return
	}

	// PUT requires the full field set, PATCH keeps absent fields
	if r.Method == http.MethodPut {
		missing := FieldErrors{}
		if req.Title == nil || *req.Title == "" {
			missing["title"] = []string{"title required"}
		}
		if req.ContentDescription == nil || *req.ContentDescription == "" {
			missing["content_description"] = []string{"content_description required"}
		}
		if len(missing) > 0 {
			WriteFieldErrors(w, missing, http.StatusBadRequest)
			return
		}
	}

	serviceReq := service.UpdatePostRequest{
		PostID:             postID,
		AuthorID:           userID,
		Title:              req.Title,
		ContentDescription: req.ContentDescription,
	}

	post, err := h.PostService.UpdatePost(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			WriteError(w, PostNotFound, http.StatusNotFound)
		} else {
			WriteError(w, "Failed to update post", http.StatusInternalServerError)
		}
		return
	}

	WriteJSON(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	if err := h.PostService.DeletePost(r.Context(), postID, userID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			WriteError(w, PostNotFound, http.StatusNotFound)
		} else {
			WriteError(w, "Failed to delete post", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
