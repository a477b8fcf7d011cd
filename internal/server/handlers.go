// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/playbymail/civil/cerrs"
	"github.com/playbymail/civil/domains"
	"github.com/playbymail/civil/internal/markup"
	"github.com/playbymail/civil/internal/sr"
)

const sessionCookie = "civil-session"

func (s *Server) routes() {
	s.mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	s.mux.HandleFunc("POST /api/auth/logout", s.handleLogout)

	s.mux.HandleFunc("GET /api/decks", s.authenticated(s.handleListDecks))
	s.mux.HandleFunc("POST /api/decks", s.authenticated(s.handleCreateDeck))
	s.mux.HandleFunc("GET /api/decks/{id}", s.authenticated(s.handleGetDeck))
	s.mux.HandleFunc("DELETE /api/decks/{id}", s.authenticated(s.handleDeleteDeck))

	s.mux.HandleFunc("POST /api/notes", s.authenticated(s.handleCreateNote))
	s.mux.HandleFunc("PUT /api/notes/{id}", s.authenticated(s.handleUpdateNote))
	s.mux.HandleFunc("DELETE /api/notes/{id}", s.authenticated(s.handleDeleteNote))

	s.mux.HandleFunc("GET /api/sr", s.authenticated(s.handleCardsDue))
	s.mux.HandleFunc("POST /api/sr", s.authenticated(s.handleCreateCard))
	s.mux.HandleFunc("POST /api/sr/{id}/rated", s.authenticated(s.handleCardRated))
}

// noteResponse carries a note plus its compiled element tree. When
// the markup will not parse, Elements is empty and the front end
// falls back to showing the raw content.
type noteResponse struct {
	Id       domains.ID        `json:"id"`
	DeckId   domains.ID        `json:"deck_id"`
	Kind     domains.NoteKind  `json:"kind"`
	Content  string            `json:"content"`
	Elements []*markup.Element `json:"elements,omitempty"`
}

func renderNote(note *domains.Note_t) noteResponse {
	resp := noteResponse{
		Id:      note.ID,
		DeckId:  note.DeckId,
		Kind:    note.Kind,
		Content: note.Content,
	}
	elements, err := markup.Render(note.Content, int(note.ID))
	if err != nil {
		log.Printf("render: note %d: %v\n", note.ID, err)
		return resp
	}
	resp.Elements = elements
	return resp
}

// authenticated resolves the session cookie to a user before invoking
// the wrapped handler.
func (s *Server) authenticated(next func(http.ResponseWriter, *http.Request, *domains.User_t)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil {
			jsonError(w, http.StatusUnauthorized, cerrs.ErrUnauthorized)
			return
		}
		user, err := s.store.GetSession(cookie.Value)
		if err != nil {
			jsonError(w, http.StatusUnauthorized, cerrs.ErrUnauthorized)
			return
		}
		next(w, r, user)
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, err)
		return
	}

	user, err := s.store.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		jsonError(w, http.StatusUnauthorized, cerrs.ErrInvalidCredentials)
		return
	}

	sessId, err := s.store.CreateSession(user.ID, s.sessionTTL)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sessId,
		Path:     "/",
		Expires:  time.Now().Add(s.sessionTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	jsonOK(w, map[string]any{"id": user.ID, "email": user.Email})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if user, err := s.store.GetSession(cookie.Value); err == nil {
			_ = s.store.DeleteUserSessions(user.ID)
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListDecks(w http.ResponseWriter, r *http.Request, user *domains.User_t) {
	decks, err := s.store.ListDecks(user.ID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, err)
		return
	}
	jsonOK(w, decks)
}

func (s *Server) handleCreateDeck(w http.ResponseWriter, r *http.Request, user *domains.User_t) {
	var req struct {
		Kind domains.DeckKind `json:"kind"`
		Name string           `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, err)
		return
	}

	deck, err := s.store.CreateDeck(user.ID, req.Kind, req.Name)
	if err != nil {
		jsonError(w, statusFor(err), err)
		return
	}
	jsonOK(w, deck)
}

func (s *Server) handleGetDeck(w http.ResponseWriter, r *http.Request, user *domains.User_t) {
	deckId, ok := pathID(w, r)
	if !ok {
		return
	}

	deck, err := s.store.GetDeck(user.ID, deckId)
	if err != nil {
		jsonError(w, statusFor(err), err)
		return
	}
	notes, err := s.store.ListNotesForDeck(user.ID, deckId)
	if err != nil {
		jsonError(w, statusFor(err), err)
		return
	}

	rendered := make([]noteResponse, 0, len(notes))
	for _, note := range notes {
		rendered = append(rendered, renderNote(note))
	}
	jsonOK(w, map[string]any{"deck": deck, "notes": rendered})
}

func (s *Server) handleDeleteDeck(w http.ResponseWriter, r *http.Request, user *domains.User_t) {
	deckId, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.store.DeleteDeck(user.ID, deckId); err != nil {
		jsonError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCreateNote(w http.ResponseWriter, r *http.Request, user *domains.User_t) {
	var req struct {
		DeckId  domains.ID       `json:"deck_id"`
		Kind    domains.NoteKind `json:"kind"`
		Content string           `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, err)
		return
	}
	if req.Kind == "" {
		req.Kind = domains.NoteNote
	}

	note, err := s.store.CreateNote(user.ID, req.DeckId, req.Kind, req.Content)
	if err != nil {
		jsonError(w, statusFor(err), err)
		return
	}
	jsonOK(w, renderNote(note))
}

func (s *Server) handleUpdateNote(w http.ResponseWriter, r *http.Request, user *domains.User_t) {
	noteId, ok := pathID(w, r)
	if !ok {
		return
	}
	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, err)
		return
	}

	note, err := s.store.UpdateNote(user.ID, noteId, req.Content)
	if err != nil {
		jsonError(w, statusFor(err), err)
		return
	}
	jsonOK(w, renderNote(note))
}

func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request, user *domains.User_t) {
	noteId, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.store.DeleteNote(user.ID, noteId); err != nil {
		jsonError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCreateCard(w http.ResponseWriter, r *http.Request, user *domains.User_t) {
	var req struct {
		NoteId domains.ID `json:"note_id"`
		Prompt string     `json:"prompt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, err)
		return
	}

	card, err := s.store.CreateCard(user.ID, req.NoteId, req.Prompt)
	if err != nil {
		jsonError(w, statusFor(err), err)
		return
	}
	jsonOK(w, card)
}

func (s *Server) handleCardsDue(w http.ResponseWriter, r *http.Request, user *domains.User_t) {
	cards, err := s.store.CardsDue(user.ID, time.Now())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, err)
		return
	}
	jsonOK(w, cards)
}

func (s *Server) handleCardRated(w http.ResponseWriter, r *http.Request, user *domains.User_t) {
	cardId, ok := pathID(w, r)
	if !ok {
		return
	}
	var req struct {
		Rating int `json:"rating"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, err)
		return
	}
	if req.Rating < sr.MinRating || req.Rating > sr.MaxRating {
		jsonError(w, http.StatusBadRequest, cerrs.ErrInvalidRating)
		return
	}

	card, err := s.store.CardRated(user.ID, cardId, req.Rating)
	if err != nil {
		jsonError(w, statusFor(err), err)
		return
	}
	jsonOK(w, card)
}

func pathID(w http.ResponseWriter, r *http.Request) (domains.ID, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		jsonError(w, http.StatusBadRequest, cerrs.ErrNotFound)
		return 0, false
	}
	return domains.ID(id), true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, cerrs.ErrDeckNotFound),
		errors.Is(err, cerrs.ErrNoteNotFound),
		errors.Is(err, cerrs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, cerrs.ErrDuplicateDeckName),
		errors.Is(err, cerrs.ErrDuplicateEmail):
		return http.StatusConflict
	case errors.Is(err, cerrs.ErrInvalidDeckKind),
		errors.Is(err, cerrs.ErrInvalidNoteKind),
		errors.Is(err, cerrs.ErrInvalidRating):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func jsonOK(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("api: encode: %v\n", err)
	}
}

func jsonError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
