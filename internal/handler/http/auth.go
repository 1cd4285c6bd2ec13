package http

import (
	"net/http"

	"github.com/MKhiriev/go-card-keeper/internal/logger"
	"github.com/MKhiriev/go-card-keeper/internal/utils"
	"github.com/MKhiriev/go-card-keeper/models"
)

// register creates a user and answers 201 with the stored user and a bearer
// token in the "Authorization" header.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := decodeBody(r, &user); err != nil {
		writeError(w, r, err)
		return
	}

	registeredUser, err := h.services.UserService.AddNewUser(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", registeredUser.ID).Msg("user registered")

	w.Header().Set("Authorization", token.BearerHeader())
	utils.WriteJSON(w, registeredUser.WithoutPassword(), http.StatusCreated)
}

// login checks {"username","password"} and answers 200 with the user and a
// fresh bearer token.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.User
	if err := decodeBody(r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("username", credentials.Username).Msg("login attempt")

	foundUser, err := h.services.UserService.GetUserByCredentials(ctx, credentials.Username, credentials.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", token.BearerHeader())
	utils.WriteJSON(w, foundUser.WithoutPassword(), http.StatusOK)
}
