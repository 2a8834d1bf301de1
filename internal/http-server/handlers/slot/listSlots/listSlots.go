package listSlots

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"slotScheduler/internal/availability"
	"slotScheduler/internal/lib/api/response"
	"slotScheduler/internal/lib/logger/sl"
	"slotScheduler/internal/models"
	"slotScheduler/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// SlotView is a slot as the public listing shows it: the stored fields plus
// availability derived from the current booking count.
type SlotView struct {
	models.Slot
	availability.Availability
}

type ListResponse struct {
	response.Response
	Slots []SlotView `json:"slots"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SlotLister
type SlotLister interface {
	ListSlots(menuID int, from time.Time) ([]models.SlotCount, error)
}

// New returns the public listing handler for bookable slots. Availability is
// recomputed from current counts on every call; full slots are filtered out
// unless include_full=true.
func New(log *slog.Logger, slots SlotLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.slot.listSlots.New"

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

		from := time.Now()
		if fromStr := r.URL.Query().Get("from"); fromStr != "" {
			from, err = parseFrom(fromStr)
			if err != nil {
				log.Error("invalid from date", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid from date"))
				return
			}
		}

		includeFull := r.URL.Query().Get("include_full") == "true"

		counts, err := slots.ListSlots(menuID, from)
		if err != nil {
			log.Error("failed to list slots", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrMenuNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("menu not found"))
			case errors.Is(err, storage.ErrNotBookable):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("menu does not take bookings"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to list slots"))
			}
			return
		}

		views := make([]SlotView, 0, len(counts))
		for _, sc := range counts {
			av := availability.Compute(sc.MaxCapacity, sc.ActiveBookings)
			if !includeFull && !av.IsAvailable {
				continue
			}
			views = append(views, SlotView{
				Slot:         sc.Slot,
				Availability: av,
			})
		}

		log.Info("slots listed", slog.Int("count", len(views)))

		responseOK(w, r, views)
	}
}

func parseFrom(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func responseOK(w http.ResponseWriter, r *http.Request, slots []SlotView) {
	render.JSON(w, r, ListResponse{
		Response: response.OK(),
		Slots:    slots,
	})
}
