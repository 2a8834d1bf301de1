package createMenu

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"slotScheduler/internal/http-server/handlers/menu/createMenu/mocks"
	"slotScheduler/internal/lib/logger/handlers/slogdiscard"
	"slotScheduler/internal/models"
	"slotScheduler/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateMenuHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(mock *mocks.MenuCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Reservation menu",
			requestBody: `{"kind": "reservation", "title": "Consultation", "duration_minutes": 30}`,
			mockSetup: func(m *mocks.MenuCreator) {
				m.On("CreateMenu", "reservation", "Consultation", "", 30, []models.NewSlot{}).
					Return(&models.Menu{ID: 1, Kind: "reservation", Title: "Consultation", DurationMinutes: 30, OwnerKey: "key-1", Active: true}, []models.Slot{}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"owner_key":"key-1"`)
				assert.Contains(t, body, `"kind":"reservation"`)
			},
		},
		{
			name:        "Adjustment event",
			requestBody: `{"kind": "adjustment", "title": "Team offsite"}`,
			mockSetup: func(m *mocks.MenuCreator) {
				m.On("CreateMenu", "adjustment", "Team offsite", "", 0, []models.NewSlot{}).
					Return(&models.Menu{ID: 2, Kind: "adjustment", Title: "Team offsite", OwnerKey: "key-2", Active: true}, []models.Slot{}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"owner_key":"key-2"`)
				assert.Contains(t, body, `"kind":"adjustment"`)
			},
		},
		{
			name:           "Unknown kind",
			requestBody:    `{"kind": "lottery", "title": "Nope"}`,
			mockSetup:      func(m *mocks.MenuCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Kind")
			},
		},
		{
			name:           "Missing title",
			requestBody:    `{"kind": "reservation"}`,
			mockSetup:      func(m *mocks.MenuCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Title")
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `not json`,
			mockSetup:      func(m *mocks.MenuCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name: "Past inline slot rejects the request",
			requestBody: `{"kind": "reservation", "title": "Consultation",
				"slots": [{"start_time": "2020-01-01T10:00:00Z", "end_time": "2020-01-01T11:00:00Z", "max_capacity": 2}]}`,
			mockSetup: func(m *mocks.MenuCreator) {
				m.On("CreateMenu", "reservation", "Consultation", "", 0, mock.AnythingOfType("[]models.NewSlot")).
					Return(nil, nil, &storage.InvalidSlotsError{Indices: []int{0}})
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"slots at positions [0] must start in the future"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewMenuCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req, err := http.NewRequest("POST", "/menus", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
