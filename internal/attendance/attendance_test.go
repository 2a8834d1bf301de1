package attendance

import (
	"testing"
	"time"

	"slotScheduler/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBuildTallies(t *testing.T) {
	t.Parallel()

	slots := []models.Slot{
		{ID: 1, StartTime: day("2025-01-10")},
		{ID: 2, StartTime: day("2025-01-12")},
	}
	responses := []models.AttendanceResponse{
		{ParticipantName: "A", Answers: map[int]string{1: models.AnswerYes, 2: models.AnswerNo}},
		{ParticipantName: "B", Answers: map[int]string{1: models.AnswerYes, 2: models.AnswerYes}},
		{ParticipantName: "C", Answers: map[int]string{1: models.AnswerMaybe, 99: models.AnswerYes}},
	}

	tallies := BuildTallies(slots, responses)

	require.Len(t, tallies, 2)

	assert.Equal(t, 1, tallies[0].SlotID)
	assert.Equal(t, 2, tallies[0].Yes)
	assert.Equal(t, 0, tallies[0].No)
	assert.Equal(t, 1, tallies[0].Maybe)
	assert.Equal(t, 3, tallies[0].Available)

	assert.Equal(t, 2, tallies[1].SlotID)
	assert.Equal(t, 1, tallies[1].Yes)
	assert.Equal(t, 1, tallies[1].No)
	assert.Equal(t, 0, tallies[1].Maybe)
	assert.Equal(t, 1, tallies[1].Available)
}

func TestBuildTalliesNoResponses(t *testing.T) {
	t.Parallel()

	slots := []models.Slot{{ID: 1, StartTime: day("2025-01-10")}}

	tallies := BuildTallies(slots, nil)

	require.Len(t, tallies, 1)
	assert.Zero(t, tallies[0].Yes)
	assert.Zero(t, tallies[0].Available)
}

func TestSelectBest(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		tallies    []models.SlotTally
		expectedID int
		expectedOK bool
	}{
		{
			name: "Most yes answers wins",
			tallies: []models.SlotTally{
				{SlotID: 1, StartTime: day("2025-01-10"), Yes: 2, Available: 2},
				{SlotID: 2, StartTime: day("2025-01-12"), Yes: 1, No: 1, Available: 1},
			},
			expectedID: 1,
			expectedOK: true,
		},
		{
			name: "Available count breaks yes tie",
			tallies: []models.SlotTally{
				{SlotID: 1, StartTime: day("2025-02-01"), Yes: 3, Available: 3},
				{SlotID: 2, StartTime: day("2025-01-20"), Yes: 3, Maybe: 1, Available: 4},
			},
			expectedID: 2,
			expectedOK: true,
		},
		{
			name: "Earlier start breaks full tie",
			tallies: []models.SlotTally{
				{SlotID: 1, StartTime: day("2025-03-05"), Yes: 2, Available: 2},
				{SlotID: 2, StartTime: day("2025-03-01"), Yes: 2, Available: 2},
			},
			expectedID: 2,
			expectedOK: true,
		},
		{
			name: "No answers at all",
			tallies: []models.SlotTally{
				{SlotID: 1, StartTime: day("2025-01-10")},
				{SlotID: 2, StartTime: day("2025-01-12")},
			},
			expectedOK: false,
		},
		{
			name:       "No slots",
			tallies:    nil,
			expectedOK: false,
		},
		{
			name: "Only no answers still recommends",
			tallies: []models.SlotTally{
				{SlotID: 1, StartTime: day("2025-01-10"), No: 2},
				{SlotID: 2, StartTime: day("2025-01-12"), No: 1},
			},
			expectedID: 1,
			expectedOK: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			id, ok := SelectBest(tc.tallies)

			assert.Equal(t, tc.expectedOK, ok)
			if tc.expectedOK {
				assert.Equal(t, tc.expectedID, id)
			}
		})
	}
}

func TestSelectBestDeterministic(t *testing.T) {
	t.Parallel()

	tallies := []models.SlotTally{
		{SlotID: 3, StartTime: day("2025-01-10"), Yes: 1, Available: 1},
		{SlotID: 1, StartTime: day("2025-01-10"), Yes: 1, Available: 1},
		{SlotID: 2, StartTime: day("2025-01-10"), Yes: 1, Available: 1},
	}

	for i := 0; i < 10; i++ {
		id, ok := SelectBest(tallies)
		require.True(t, ok)
		assert.Equal(t, 1, id)
	}
}
