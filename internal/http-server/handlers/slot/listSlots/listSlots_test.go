package listSlots

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"slotScheduler/internal/http-server/handlers/slot/listSlots/mocks"
	"slotScheduler/internal/lib/logger/handlers/slogdiscard"
	"slotScheduler/internal/models"
	"slotScheduler/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListSlotsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	counts := []models.SlotCount{
		{
			Slot:           models.Slot{ID: 1, MenuID: 1, StartTime: start, EndTime: start.Add(time.Hour), MaxCapacity: 3},
			ActiveBookings: 0,
		},
		{
			Slot:           models.Slot{ID: 2, MenuID: 1, StartTime: start.Add(2 * time.Hour), EndTime: start.Add(3 * time.Hour), MaxCapacity: 2},
			ActiveBookings: 2,
		},
	}

	testCases := []struct {
		name           string
		menuID         string
		query          string
		mockSetup      func(mock *mocks.SlotLister)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
		expectedBody   string
	}{
		{
			name:   "Full slots are hidden by default",
			menuID: "1",
			mockSetup: func(m *mocks.SlotLister) {
				m.On("ListSlots", 1, mock.AnythingOfType("time.Time")).Return(counts, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"id":1`)
				assert.NotContains(t, body, `"id":2`)
				assert.Contains(t, body, `"remaining_capacity":3`)
				assert.Contains(t, body, `"is_available":true`)
			},
		},
		{
			name:   "include_full keeps full slots",
			menuID: "1",
			query:  "?include_full=true",
			mockSetup: func(m *mocks.SlotLister) {
				m.On("ListSlots", 1, mock.AnythingOfType("time.Time")).Return(counts, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"id":1`)
				assert.Contains(t, body, `"id":2`)
				assert.Contains(t, body, `"remaining_capacity":0`)
				assert.Contains(t, body, `"is_available":false`)
			},
		},
		{
			name:   "Fresh slots report their full capacity",
			menuID: "1",
			mockSetup: func(m *mocks.SlotLister) {
				m.On("ListSlots", 1, mock.AnythingOfType("time.Time")).Return(counts[:1], nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"max_capacity":3`)
				assert.Contains(t, body, `"remaining_capacity":3`)
			},
		},
		{
			name:   "Explicit from date is passed through",
			menuID: "1",
			query:  "?from=2025-06-01",
			mockSetup: func(m *mocks.SlotLister) {
				m.On("ListSlots", 1, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)).Return(counts, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
			},
		},
		{
			name:           "Invalid from date",
			menuID:         "1",
			query:          "?from=yesterday",
			mockSetup:      func(m *mocks.SlotLister) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid from date"}`,
		},
		{
			name:   "Menu not found",
			menuID: "99",
			mockSetup: func(m *mocks.SlotLister) {
				m.On("ListSlots", 99, mock.AnythingOfType("time.Time")).Return(nil, storage.ErrMenuNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"menu not found"}`,
		},
		{
			name:   "Adjustment menus are not bookable",
			menuID: "2",
			mockSetup: func(m *mocks.SlotLister) {
				m.On("ListSlots", 2, mock.AnythingOfType("time.Time")).Return(nil, storage.ErrNotBookable)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"menu does not take bookings"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockLister := mocks.NewSlotLister(t)
			tc.mockSetup(mockLister)

			handler := New(logger, mockLister)

			req, err := http.NewRequest("GET", "/menus/"+tc.menuID+"/slots"+tc.query, nil)
			require.NoError(t, err)

			router := chi.NewRouter()
			router.Get("/menus/{id}/slots", handler)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
