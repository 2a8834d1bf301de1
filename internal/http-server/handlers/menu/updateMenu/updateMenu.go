package updateMenu

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"slotScheduler/internal/lib/api/response"
	"slotScheduler/internal/lib/logger/sl"
	"slotScheduler/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type UpdateRequest struct {
	OwnerKey    string `json:"owner_key" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Active      *bool  `json:"active" validate:"required"`
}

type UpdateResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MenuUpdater
type MenuUpdater interface {
	UpdateMenu(menuID int, ownerKey, title, description string, active bool) error
}

func New(log *slog.Logger, menus MenuUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.menu.updateMenu.New"

		log = log.With(slog.String("op", op))

		menuIdStr := chi.URLParam(r, "id")
		if menuIdStr == "" {
			log.Error("menu id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("menu id is required"))
			return
		}

		menuID, err := strconv.Atoi(menuIdStr)
		if err != nil {
			log.Error("invalid menu id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid menu id format"))
			return
		}

		log = log.With(slog.Int("menu_id", menuID))

		var req UpdateRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		err = menus.UpdateMenu(menuID, req.OwnerKey, req.Title, req.Description, *req.Active)
		if err != nil {
			log.Error("failed to update menu", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrMenuNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("menu not found"))
			case errors.Is(err, storage.ErrNotOwner):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("owner key does not match"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update menu"))
			}
			return
		}

		log.Info("menu updated")

		render.JSON(w, r, UpdateResponse{Response: response.OK()})
	}
}
