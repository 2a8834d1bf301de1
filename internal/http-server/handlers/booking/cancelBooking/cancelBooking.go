package cancelBooking

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

type CancelRequest struct {
	OwnerKey   string `json:"owner_key"`
	UserID     string `json:"user_id"`
	GuestEmail string `json:"guest_email" validate:"omitempty,email"`
}

type CancelResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCanceller
type BookingCanceller interface {
	CancelBooking(bookingID int, actor models.Actor) error
}

// New returns the cancellation handler. Cancelling is idempotent: a booking
// that is already cancelled answers OK again without freeing capacity twice.
func New(log *slog.Logger, bookings BookingCanceller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.cancelBooking.New"

		log = log.With(slog.String("op", op))

		bookingIdStr := chi.URLParam(r, "id")
		if bookingIdStr == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		bookingID, err := strconv.Atoi(bookingIdStr)
		if err != nil {
			log.Error("invalid booking id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id format"))
			return
		}

		log = log.With(slog.Int("booking_id", bookingID))

		var req CancelRequest

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

		if req.OwnerKey == "" && req.UserID == "" && req.GuestEmail == "" {
			log.Error("cancellation needs an owner key or the holder identity")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("owner key or holder identity is required"))
			return
		}

		err = bookings.CancelBooking(bookingID, models.Actor{
			OwnerKey:   req.OwnerKey,
			UserID:     req.UserID,
			GuestEmail: req.GuestEmail,
		})
		if err != nil {
			log.Error("failed to cancel booking", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrBookingNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
			case errors.Is(err, storage.ErrNotAllowed):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("only the owner or the holder may cancel"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to cancel booking"))
			}
			return
		}

		log.Info("booking cancelled")

		render.JSON(w, r, CancelResponse{Response: response.OK()})
	}
}
