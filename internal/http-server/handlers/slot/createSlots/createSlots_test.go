package createSlots

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"slotScheduler/internal/http-server/handlers/slot/createSlots/mocks"
	"slotScheduler/internal/lib/logger/handlers/slogdiscard"
	"slotScheduler/internal/models"
	"slotScheduler/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func slotJSON(start, end time.Time, capacity int) string {
	return fmt.Sprintf(`{"start_time": %q, "end_time": %q, "max_capacity": %d}`,
		start.Format(time.RFC3339), end.Format(time.RFC3339), capacity)
}

func TestCreateSlotsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	start := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	end := start.Add(time.Hour)

	testCases := []struct {
		name           string
		menuID         string
		requestBody    string
		mockSetup      func(mock *mocks.SlotsCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:   "Success",
			menuID: "1",
			requestBody: fmt.Sprintf(`{"owner_key": "key-1", "slots": [%s]}`,
				slotJSON(start, end, 3)),
			mockSetup: func(m *mocks.SlotsCreator) {
				m.On("CreateSlots", 1, "key-1", mock.AnythingOfType("[]models.NewSlot")).
					Return([]models.Slot{{ID: 10, MenuID: 1, StartTime: start, EndTime: end, MaxCapacity: 3}}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"id":10`)
			},
		},
		{
			name:           "Missing owner key",
			menuID:         "1",
			requestBody:    fmt.Sprintf(`{"slots": [%s]}`, slotJSON(start, end, 3)),
			mockSetup:      func(m *mocks.SlotsCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "OwnerKey")
			},
		},
		{
			name:           "Empty batch",
			menuID:         "1",
			requestBody:    `{"owner_key": "key-1", "slots": []}`,
			mockSetup:      func(m *mocks.SlotsCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Slots")
			},
		},
		{
			name:   "One past entry rejects the whole batch",
			menuID: "1",
			requestBody: fmt.Sprintf(`{"owner_key": "key-1", "slots": [%s, %s]}`,
				slotJSON(start, end, 3),
				slotJSON(start.Add(-48*time.Hour), end.Add(-48*time.Hour), 3)),
			mockSetup: func(m *mocks.SlotsCreator) {
				m.On("CreateSlots", 1, "key-1", mock.AnythingOfType("[]models.NewSlot")).
					Return(nil, &storage.InvalidSlotsError{Indices: []int{1}})
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"slots at positions [1] must start in the future"}`,
		},
		{
			name:   "Menu not found",
			menuID: "99",
			requestBody: fmt.Sprintf(`{"owner_key": "key-1", "slots": [%s]}`,
				slotJSON(start, end, 3)),
			mockSetup: func(m *mocks.SlotsCreator) {
				m.On("CreateSlots", 99, "key-1", mock.AnythingOfType("[]models.NewSlot")).
					Return(nil, storage.ErrMenuNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"menu not found"}`,
		},
		{
			name:   "Wrong owner key",
			menuID: "1",
			requestBody: fmt.Sprintf(`{"owner_key": "wrong", "slots": [%s]}`,
				slotJSON(start, end, 3)),
			mockSetup: func(m *mocks.SlotsCreator) {
				m.On("CreateSlots", 1, "wrong", mock.AnythingOfType("[]models.NewSlot")).
					Return(nil, storage.ErrNotOwner)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"owner key does not match"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewSlotsCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req, err := http.NewRequest("POST", "/menus/"+tc.menuID+"/slots", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			router := chi.NewRouter()
			router.Post("/menus/{id}/slots", handler)

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
