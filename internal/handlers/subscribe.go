package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ikyawthetpaing/webacademy/internal/logger"
	"github.com/ikyawthetpaing/webacademy/internal/models"
	"github.com/ikyawthetpaing/webacademy/internal/repository"
	"github.com/ikyawthetpaing/webacademy/internal/services"
	helpers "github.com/ikyawthetpaing/webacademy/internal/utils/helpers"

	"go.uber.org/zap"
)

type SubscribeHandler struct {
	subscribers services.SubscriberService
}

func NewSubscribeHandler(subscribers services.SubscriberService) *SubscribeHandler {
	return &SubscribeHandler{subscribers: subscribers}
}

// Subscribe godoc
// @Summary Subscribe an email address to the newsletter
// @Tags newsletter
// @Accept json
// @Produce json
// @Param body body models.SubscribeRequest true "Subscriber details"
// @Success 201 {object} map[string]string
// @Failure 400 {object} helpers.Response
// @Failure 409 {object} helpers.Response
// @Router /api/subscribe [post]
func (h *SubscribeHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req models.SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("subscribe: invalid json", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	_, err := h.subscribers.Subscribe(r.Context(), req.Name, req.Email)
	switch {
	case err == nil:
		helpers.JSON(w, http.StatusCreated, map[string]string{"message": "Subscription successful!"})
	case errors.Is(err, services.ErrInvalidEmail):
		helpers.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrAlreadySubscribed):
		helpers.Error(w, http.StatusConflict, "Email is already subscribed.")
	case errors.Is(err, services.ErrSubscriptionsUnavailable):
		helpers.Error(w, http.StatusServiceUnavailable, err.Error())
	default:
		helpers.Error(w, http.StatusInternalServerError, "subscription failed")
	}
}
