package http

import (
	"net/http"

	"github.com/MKhiriev/go-card-keeper/internal/utils"
	"github.com/MKhiriev/go-card-keeper/models"
	"github.com/go-chi/chi/v5"
)

func withoutPasswords(users []models.User) []models.User {
	stripped := make([]models.User, len(users))
	for i, user := range users {
		stripped[i] = user.WithoutPassword()
	}
	return stripped
}

// getUsers lists every user, or resolves a unique key from the query string
// (GET /users?email=a@b.c).
func (h *Handler) getUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if query := queryMap(r); len(query) > 0 {
		user, err := h.services.UserService.GetUserByUniqueKey(ctx, query)
		if err != nil {
			writeError(w, r, err)
			return
		}
		utils.WriteJSON(w, user.WithoutPassword(), http.StatusOK)
		return
	}

	users, err := h.services.UserService.GetAllUsers(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, withoutPasswords(users), http.StatusOK)
}

func (h *Handler) getUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetUserByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, user.WithoutPassword(), http.StatusOK)
}

func (h *Handler) getUserByUsername(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.GetUserByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, user.WithoutPassword(), http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := decodeBody(r, &user); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.UserService.UpdateUser(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, updated.WithoutPassword(), http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	deleted, err := h.services.UserService.DeleteUser(r.Context(), payload)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, deleted, http.StatusAccepted)
}
