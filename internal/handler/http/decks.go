// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-card-keeper/internal/utils"
	"github.com/MKhiriev/go-card-keeper/models"
	"github.com/go-chi/chi/v5"
)

// getDecks lists every deck. With a query string it resolves the single key
// instead; deckname lookups may match several decks, so a list is returned
// either way.
func (h *Handler) getDecks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		decks []models.Deck
		err   error
	)
	if query := queryMap(r); len(query) > 0 {
		decks, err = h.services.DeckService.GetDeckByUniqueKey(ctx, query)
	} else {
		decks, err = h.services.DeckService.GetAllDecks(ctx)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, decks, http.StatusOK)
}

func (h *Handler) getDeckByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	deck, err := h.services.DeckService.GetDeckByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, deck, http.StatusOK)
}

func (h *Handler) getDecksByAuthor(w http.ResponseWriter, r *http.Request) {
	authorID, err := pathID(r, "authorId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	decks, err := h.services.DeckService.GetDecksByAuthorID(r.Context(), authorID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, decks, http.StatusOK)
}

func (h *Handler) getDecksByName(w http.ResponseWriter, r *http.Request) {
	decks, err := h.services.DeckService.GetDecksByName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, decks, http.StatusOK)
}

func (h *Handler) addDeck(w http.ResponseWriter, r *http.Request) {
	var deck models.Deck
	if err := decodeBody(r, &deck); err != nil {
		writeError(w, r, err)
		return
	}

	saved, err := h.services.DeckService.AddNewDeck(r.Context(), deck)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, saved, http.StatusCreated)
}

func (h *Handler) updateDeck(w http.ResponseWriter, r *http.Request) {
	var deck models.Deck
	if err := decodeBody(r, &deck); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.DeckService.UpdateDeck(r.Context(), deck)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteDeck(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	deleted, err := h.services.DeckService.DeleteDeck(r.Context(), payload)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, deleted, http.StatusAccepted)
}
