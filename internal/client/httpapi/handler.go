package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/TracySk8/TP2/internal/client"
)

const minPasswordLen = 5

type ClientHandler struct {
	repo   client.Repository
	logger *log.Logger
}

func NewClientHandler(repo client.Repository, logger *log.Logger) *ClientHandler {
	return &ClientHandler{repo: repo, logger: logger}
}

func (h *ClientHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	c, err := h.repo.GetClient(r.Context(), id)
	if errors.Is(err, client.ErrNotFound) {
		writeError(w, http.StatusNotFound, "client not found")
		return
	}
	if err != nil {
		h.logger.Printf("get client %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, c)
}

func (h *ClientHandler) AddClient(w http.ResponseWriter, r *http.Request) {
	var reg client.Registration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if reg.Username == "" || reg.FirstName == "" || reg.LastName == "" {
		writeError(w, http.StatusBadRequest, "missing required fields")
		return
	}
	if utf8.RuneCountInString(reg.Password) < minPasswordLen {
		writeError(w, http.StatusBadRequest, "password must be at least 5 characters")
		return
	}

	salt, err := client.NewSalt()
	if err != nil {
		h.logger.Printf("add client: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	hash := client.HashPassword(reg.Password, salt)

	c, err := h.repo.CreateClient(r.Context(), reg, hash, client.EncodeSalt(salt))
	if errors.Is(err, client.ErrUsernameTaken) {
		writeError(w, http.StatusBadRequest, "username already taken")
		return
	}
	if err != nil {
		h.logger.Printf("add client: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, c)
}

// ConnectClient verifies credentials. It does not mint a session token;
// callers only learn whether the pair is valid.
func (h *ClientHandler) ConnectClient(w http.ResponseWriter, r *http.Request) {
	var creds client.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.repo.GetClientByUsername(r.Context(), creds.Username)
	if errors.Is(err, client.ErrNotFound) {
		writeError(w, http.StatusBadRequest, "unknown user")
		return
	}
	if err != nil {
		h.logger.Printf("connect client: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	stored, err := h.repo.GetPassword(r.Context(), c.ID)
	if err != nil {
		h.logger.Printf("connect client %d: %v", c.ID, err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	ok, err := client.CheckPassword(stored, creds.Password)
	if err != nil {
		h.logger.Printf("connect client %d: %v", c.ID, err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !ok {
		writeError(w, http.StatusBadRequest, "wrong password")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"clientId": c.ID})
}

func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	var c client.Client
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.repo.UpdateClient(r.Context(), c)
	if errors.Is(err, client.ErrNotFound) {
		writeError(w, http.StatusNotFound, "client not found")
		return
	}
	if err != nil {
		h.logger.Printf("update client %d: %v", c.ID, err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, c)
}

func (h *ClientHandler) GetClientStats(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	stats, err := h.repo.GetStats(r.Context(), id)
	if errors.Is(err, client.ErrNotFound) {
		writeError(w, http.StatusNotFound, "client not found")
		return
	}
	if err != nil {
		h.logger.Printf("get stats %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *ClientHandler) UpdateClientStats(w http.ResponseWriter, r *http.Request) {
	var stats client.ClientStats
	if err := json.NewDecoder(r.Body).Decode(&stats); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.repo.UpdateStats(r.Context(), stats)
	if errors.Is(err, client.ErrNotFound) {
		writeError(w, http.StatusNotFound, "client not found")
		return
	}
	if err != nil {
		h.logger.Printf("update stats %d: %v", stats.ClientID, err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *ClientHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	err := h.repo.DeleteClient(r.Context(), id)
	if errors.Is(err, client.ErrNotFound) {
		writeError(w, http.StatusNotFound, "client not found")
		return
	}
	if err != nil {
		h.logger.Printf("delete client %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"deleted": id})
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}
