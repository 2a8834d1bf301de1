package createSlots

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"slotScheduler/internal/lib/api/response"
	"slotScheduler/internal/lib/logger/sl"
	"slotScheduler/internal/models"
	"slotScheduler/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type SlotEntry struct {
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required"`
	MaxCapacity int       `json:"max_capacity"`
}

type SlotsRequest struct {
	OwnerKey string      `json:"owner_key" validate:"required"`
	Slots    []SlotEntry `json:"slots" validate:"required,min=1,dive"`
}

type SlotsResponse struct {
	response.Response
	Slots []models.Slot `json:"slots"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SlotsCreator
type SlotsCreator interface {
	CreateSlots(menuID int, ownerKey string, slots []models.NewSlot) ([]models.Slot, error)
}

// New returns the bulk slot creation handler. The batch is all-or-nothing:
// one invalid entry rejects every entry, and the error names the positions
// that failed.
func New(log *slog.Logger, slots SlotsCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.slot.createSlots.New"

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

		var req SlotsRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Int("slots", len(req.Slots)))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		candidates := make([]models.NewSlot, 0, len(req.Slots))
		for _, se := range req.Slots {
			candidates = append(candidates, models.NewSlot{
				StartTime:   se.StartTime,
				EndTime:     se.EndTime,
				MaxCapacity: se.MaxCapacity,
			})
		}

		created, err := slots.CreateSlots(menuID, req.OwnerKey, candidates)
		if err != nil {
			log.Error("failed to create slots", sl.Err(err))

			var invalidErr *storage.InvalidSlotsError
			switch {
			case errors.As(err, &invalidErr):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(invalidErr.Error()))
			case errors.Is(err, storage.ErrMenuNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("menu not found"))
			case errors.Is(err, storage.ErrNotOwner):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("owner key does not match"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create slots"))
			}
			return
		}

		log.Info("slots created", slog.Int("count", len(created)))

		responseOK(w, r, created)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, slots []models.Slot) {
	render.JSON(w, r, SlotsResponse{
		Response: response.OK(),
		Slots:    slots,
	})
}
