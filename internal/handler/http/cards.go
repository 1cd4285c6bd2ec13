package http

import (
	"net/http"

	"github.com/MKhiriev/go-card-keeper/internal/logger"
	"github.com/MKhiriev/go-card-keeper/internal/utils"
	"github.com/MKhiriev/go-card-keeper/models"
	"github.com/go-chi/chi/v5"
)

// getCards lists every card, or looks one up by unique key when the query
// string is present (GET /cards?name=Fireball).
func (h *Handler) getCards(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if query := queryMap(r); len(query) > 0 {
		card, err := h.services.CardService.GetCardByUniqueKey(ctx, query)
		if err != nil {
			writeError(w, r, err)
			return
		}
		utils.WriteJSON(w, card, http.StatusOK)
		return
	}

	cards, err := h.services.CardService.GetAllCards(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, cards, http.StatusOK)
}

func (h *Handler) getCardByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	card, err := h.services.CardService.GetCardByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, card, http.StatusOK)
}

func (h *Handler) getCardsByRarity(w http.ResponseWriter, r *http.Request) {
	cards, err := h.services.CardService.GetCardsByRarity(r.Context(), chi.URLParam(r, "rarity"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, cards, http.StatusOK)
}

func (h *Handler) getCardByName(w http.ResponseWriter, r *http.Request) {
	card, err := h.services.CardService.GetCardByName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, card, http.StatusOK)
}

func (h *Handler) addCard(w http.ResponseWriter, r *http.Request) {
	var card models.Card
	if err := decodeBody(r, &card); err != nil {
		writeError(w, r, err)
		return
	}

	saved, err := h.services.CardService.AddNewCard(r.Context(), card)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("card_id", saved.ID).Msg("card created")
	utils.WriteJSON(w, saved, http.StatusCreated)
}

func (h *Handler) updateCard(w http.ResponseWriter, r *http.Request) {
	var card models.Card
	if err := decodeBody(r, &card); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.CardService.UpdateCard(r.Context(), card)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteCard(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	deleted, err := h.services.CardService.DeleteCard(r.Context(), payload)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, deleted, http.StatusAccepted)
}
