package createMenu

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"slotScheduler/internal/lib/api/response"
	"slotScheduler/internal/lib/logger/sl"
	"slotScheduler/internal/models"
	"slotScheduler/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type SlotEntry struct {
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required"`
	MaxCapacity int       `json:"max_capacity"`
}

type MenuRequest struct {
	Kind            string      `json:"kind" validate:"required,oneof=reservation adjustment"`
	Title           string      `json:"title" validate:"required"`
	Description     string      `json:"description"`
	DurationMinutes int         `json:"duration_minutes"`
	Slots           []SlotEntry `json:"slots" validate:"omitempty,dive"`
}

type MenuResponse struct {
	response.Response
	Menu     *models.Menu  `json:"menu"`
	OwnerKey string        `json:"owner_key"`
	Slots    []models.Slot `json:"slots,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MenuCreator
type MenuCreator interface {
	CreateMenu(kind, title, description string, duration int, slots []models.NewSlot) (*models.Menu, []models.Slot, error)
}

// New returns the handler that creates a menu (or an adjustment event) and,
// optionally, its first batch of slots in the same transaction. The owner key
// in the response is shown exactly once; it is required for every later
// owner-only mutation.
func New(log *slog.Logger, menus MenuCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.menu.createMenu.New"

		log = log.With(slog.String("op", op))

		var req MenuRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		slots := make([]models.NewSlot, 0, len(req.Slots))
		for _, se := range req.Slots {
			slots = append(slots, models.NewSlot{
				StartTime:   se.StartTime,
				EndTime:     se.EndTime,
				MaxCapacity: se.MaxCapacity,
			})
		}

		menu, created, err := menus.CreateMenu(req.Kind, req.Title, req.Description, req.DurationMinutes, slots)
		if err != nil {
			log.Error("failed to create menu", sl.Err(err))

			var invalidErr *storage.InvalidSlotsError
			if errors.As(err, &invalidErr) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(invalidErr.Error()))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create menu"))
			return
		}

		log.Info("menu created", slog.Int("id", menu.ID), slog.String("kind", menu.Kind))

		responseOK(w, r, menu, created)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, menu *models.Menu, slots []models.Slot) {
	render.JSON(w, r, MenuResponse{
		Response: response.OK(),
		Menu:     menu,
		OwnerKey: menu.OwnerKey,
		Slots:    slots,
	})
}
