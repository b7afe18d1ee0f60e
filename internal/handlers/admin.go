package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ikyawthetpaing/webacademy/internal/config"
	"github.com/ikyawthetpaing/webacademy/internal/indexer"
	"github.com/ikyawthetpaing/webacademy/internal/logger"
	"github.com/ikyawthetpaing/webacademy/internal/models"
	"github.com/ikyawthetpaing/webacademy/internal/services"
	helpers "github.com/ikyawthetpaing/webacademy/internal/utils/helpers"

	"go.uber.org/zap"
)

type AdminHandler struct {
	cfg         *config.Config
	auth        services.AuthService
	subscribers services.SubscriberService
}

func NewAdminHandler(cfg *config.Config, auth services.AuthService, subscribers services.SubscriberService) *AdminHandler {
	return &AdminHandler{cfg: cfg, auth: auth, subscribers: subscribers}
}

// Login godoc
// @Summary Exchange the admin password for an access token
// @Tags admin
// @Accept json
// @Produce json
// @Param body body models.LoginRequest true "Admin password"
// @Success 200 {object} map[string]string
// @Failure 401 {object} helpers.Response
// @Router /api/admin/login [post]
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	token, err := h.auth.Login(r.Context(), req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			helpers.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		helpers.Error(w, http.StatusInternalServerError, "login failed")
		return
	}

	helpers.JSON(w, http.StatusOK, map[string]string{"access_token": token})
}

// Reindex godoc
// @Summary Re-run the content indexer against the content directory
// @Tags admin
// @Produce json
// @Success 200 {object} indexer.Summary
// @Failure 500 {object} helpers.Response
// @Security ApiKeyAuth
// @Router /api/admin/reindex [post]
func (h *AdminHandler) Reindex(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	log.Info("reindex requested",
		zap.String("content_dir", h.cfg.ContentDir),
		zap.String("generated_dir", h.cfg.GeneratedDir),
	)

	ix := indexer.New(h.cfg.ContentDir, h.cfg.GeneratedDir, log)
	summary, err := ix.Run()
	if err != nil {
		log.Error("reindex failed", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Info("reindex finished",
		zap.Int("posts", summary.Posts),
		zap.Int("chapters", summary.Chapters),
		zap.Int("skipped", len(summary.Skipped)),
	)
	helpers.JSON(w, http.StatusOK, summary)
}

// ListSubscribers godoc
// @Summary List newsletter subscribers
// @Tags admin
// @Produce json
// @Success 200 {array} models.Subscriber
// @Failure 503 {object} helpers.Response
// @Security ApiKeyAuth
// @Router /api/admin/subscribers [get]
func (h *AdminHandler) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	list, err := h.subscribers.List(r.Context())
	if err != nil {
		if errors.Is(err, services.ErrSubscriptionsUnavailable) {
			helpers.Error(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		helpers.Error(w, http.StatusInternalServerError, "failed to list subscribers")
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}
