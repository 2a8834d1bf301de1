package deleteSlot

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

type DeleteRequest struct {
	OwnerKey string `json:"owner_key" validate:"required"`
}

type DeleteResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SlotDeleter
type SlotDeleter interface {
	DeleteSlot(slotID int, ownerKey string) error
}

// New returns the slot deletion handler. Deleting a slot that already has
// bookings is allowed; those bookings keep their rows and simply stop
// counting toward availability.
func New(log *slog.Logger, slots SlotDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.slot.deleteSlot.New"

		log = log.With(slog.String("op", op))

		slotIdStr := chi.URLParam(r, "id")
		if slotIdStr == "" {
			log.Error("slot id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("slot id is required"))
			return
		}

		slotID, err := strconv.Atoi(slotIdStr)
		if err != nil {
			log.Error("invalid slot id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid slot id format"))
			return
		}

		log = log.With(slog.Int("slot_id", slotID))

		var req DeleteRequest

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

		err = slots.DeleteSlot(slotID, req.OwnerKey)
		if err != nil {
			log.Error("failed to delete slot", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrSlotNotFound), errors.Is(err, storage.ErrMenuNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("slot not found"))
			case errors.Is(err, storage.ErrNotOwner):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("owner key does not match"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to delete slot"))
			}
			return
		}

		log.Info("slot deleted")

		render.JSON(w, r, DeleteResponse{Response: response.OK()})
	}
}
