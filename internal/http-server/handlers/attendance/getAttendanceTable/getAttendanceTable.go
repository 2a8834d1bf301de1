package getAttendanceTable

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"slotScheduler/internal/attendance"
	"slotScheduler/internal/lib/api/response"
	"slotScheduler/internal/lib/logger/sl"
	"slotScheduler/internal/models"
	"slotScheduler/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type TableResponse struct {
	response.Response
	Menu       *models.Menu                `json:"event"`
	Slots      []models.Slot               `json:"slots"`
	Responses  []models.AttendanceResponse `json:"responses"`
	Tallies    []models.SlotTally          `json:"tallies"`
	BestSlotID *int                        `json:"best_slot_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TableGetter
type TableGetter interface {
	GetAttendanceTable(menuID int) (*models.Menu, []models.Slot, []models.AttendanceResponse, error)
}

// New returns the attendance table handler: slots, every participant's
// answers, per-slot tallies and the recommended slot. Tallies and the
// recommendation are recomputed from current state on every call.
func New(log *slog.Logger, tables TableGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.attendance.getAttendanceTable.New"

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

		menu, slots, responses, err := tables.GetAttendanceTable(menuID)
		if err != nil {
			log.Error("failed to get attendance table", sl.Err(err))

			if errors.Is(err, storage.ErrMenuNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get attendance table"))
			return
		}

		tallies := attendance.BuildTallies(slots, responses)

		var bestSlotID *int
		if best, ok := attendance.SelectBest(tallies); ok {
			bestSlotID = &best
		}

		log.Info("attendance table built",
			slog.Int("slots", len(slots)),
			slog.Int("responses", len(responses)),
		)

		responseOK(w, r, menu, slots, responses, tallies, bestSlotID)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, menu *models.Menu, slots []models.Slot, responses []models.AttendanceResponse, tallies []models.SlotTally, bestSlotID *int) {
	render.JSON(w, r, TableResponse{
		Response:   response.OK(),
		Menu:       menu,
		Slots:      slots,
		Responses:  responses,
		Tallies:    tallies,
		BestSlotID: bestSlotID,
	})
}
