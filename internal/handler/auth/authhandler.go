package authhandler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/ushnuel/next-dashboard/internal/domain"
	"github.com/ushnuel/next-dashboard/pkg/dto"
	"github.com/ushnuel/next-dashboard/pkg/logger"
)

type AuthService interface {
	Login(creds dto.Credentials) (*domain.User, string, error)
}

type AuthHandler struct {
	srv AuthService
}

func New(srv AuthService) *AuthHandler {
	return &AuthHandler{
		srv: srv,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds dto.Credentials

	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		logger.Log.Warn("error while decoding a login request")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}
	defer func(body io.ReadCloser) {
		err := body.Close()
		if err != nil {
			logger.Log.Error("error while closing request body", logger.Error(err))
			return
		}
	}(r.Body)

	user, token, err := h.srv.Login(creds)
	if err != nil {
		if errors.Is(err, domain.ErrIncorrectCredentials) {
			http.Error(w, "incorrect email or password", http.StatusUnauthorized)
			return
		}

		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.User{ID: user.ID, Email: user.Email})
	if err != nil {
		logger.Log.Error("error while encoding user to JSON", logger.Error(err))
		return
	}
}
