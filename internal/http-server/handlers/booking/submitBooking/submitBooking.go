package submitBooking

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"slotScheduler/internal/lib/api/response"
	"slotScheduler/internal/lib/logger/sl"
	"slotScheduler/internal/models"
	"slotScheduler/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type BookingRequest struct {
	UserID     string `json:"user_id"`
	GuestName  string `json:"guest_name"`
	GuestEmail string `json:"guest_email" validate:"omitempty,email"`
}

type BookingResponse struct {
	response.Response
	Booking *models.Booking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingSubmitter
type BookingSubmitter interface {
	SubmitBooking(slotID int, holder models.Holder) (*models.Booking, error)
}

// New returns the booking submission handler. The storage layer performs the
// capacity check and the insert as one atomic unit; when the slot is full at
// commit time the caller gets 409 and must pick another slot.
func New(log *slog.Logger, bookings BookingSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.submitBooking.New"

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

		var req BookingRequest

		err = render.DecodeJSON(r.Body, &req)
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

		// Without an authenticated user a booking must identify its guest.
		if req.UserID == "" && (req.GuestName == "" || req.GuestEmail == "") {
			log.Error("guest name and email are required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("guest name and email are required"))
			return
		}

		booking, err := bookings.SubmitBooking(slotID, models.Holder{
			UserID:     req.UserID,
			GuestName:  req.GuestName,
			GuestEmail: req.GuestEmail,
		})
		if err != nil {
			log.Error("failed to submit booking", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrSlotNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("slot not found"))
			case errors.Is(err, storage.ErrSlotFull):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("no remaining capacity for this slot"))
			case errors.Is(err, storage.ErrSlotInPast):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("slot is already in the past"))
			case errors.Is(err, storage.ErrNotBookable):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("menu does not take bookings"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to submit booking"))
			}
			return
		}

		log.Info("booking created", slog.Int("booking_id", booking.ID))

		responseOK(w, r, booking)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, booking *models.Booking) {
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Booking:  booking,
	})
}
