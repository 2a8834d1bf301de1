package submitResponse

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

type ResponseRequest struct {
	ParticipantName string         `json:"participant_name" validate:"required"`
	Email           string         `json:"email" validate:"omitempty,email"`
	Comment         string         `json:"comment"`
	Answers         map[int]string `json:"answers" validate:"required,min=1,dive,oneof=yes no maybe"`
}

type ResponseResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ResponseReplacer
type ResponseReplacer interface {
	ReplaceResponse(menuID int, resp models.NewResponse) error
}

// New returns the attendance submission handler. Submitting again under the
// same participant name replaces the earlier answer set, so participants can
// correct themselves.
func New(log *slog.Logger, responses ResponseReplacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.attendance.submitResponse.New"

		log = log.With(slog.String("op", op))

		menuIdStr := chi.URLParam(r, "id")
		if menuIdStr == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		menuID, err := strconv.Atoi(menuIdStr)
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int("event_id", menuID))

		var req ResponseRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.String("participant", req.ParticipantName))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		err = responses.ReplaceResponse(menuID, models.NewResponse{
			ParticipantName: req.ParticipantName,
			Email:           req.Email,
			Comment:         req.Comment,
			Answers:         req.Answers,
		})
		if err != nil {
			log.Error("failed to submit response", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrMenuNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, storage.ErrUnknownSlot):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("response references a slot outside this event"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to submit response"))
			}
			return
		}

		log.Info("response recorded", slog.String("participant", req.ParticipantName))

		render.JSON(w, r, ResponseResponse{Response: response.OK()})
	}
}
