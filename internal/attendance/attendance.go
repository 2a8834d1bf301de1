// Package attendance aggregates participant answers into per-slot tallies
// and picks the recommended slot. Both operations are deterministic and work
// on plain values; the caller re-runs them on every read.
package attendance

import "slotScheduler/internal/models"

// BuildTallies produces one tally per slot, in slot order. Answers pointing
// at slots not in the list (deleted since the response was filed) are
// ignored.
func BuildTallies(slots []models.Slot, responses []models.AttendanceResponse) []models.SlotTally {
	tallies := make([]models.SlotTally, 0, len(slots))
	index := make(map[int]int, len(slots))

	for i, slot := range slots {
		index[slot.ID] = i
		tallies = append(tallies, models.SlotTally{
			SlotID:    slot.ID,
			StartTime: slot.StartTime,
		})
	}

	for _, resp := range responses {
		for slotID, status := range resp.Answers {
			i, ok := index[slotID]
			if !ok {
				continue
			}
			switch status {
			case models.AnswerYes:
				tallies[i].Yes++
				tallies[i].Available++
			case models.AnswerMaybe:
				tallies[i].Maybe++
				tallies[i].Available++
			case models.AnswerNo:
				tallies[i].No++
			}
		}
	}

	return tallies
}

// SelectBest ranks tallies by yes count, then by available count (yes plus
// maybe), then by earliest start, then by lowest slot id, and returns the
// winner. The second result is false when no participant has answered
// anything, in which case there is nothing to recommend.
func SelectBest(tallies []models.SlotTally) (int, bool) {
	bestIdx := -1
	answered := false

	for i, t := range tallies {
		if t.Yes > 0 || t.No > 0 || t.Maybe > 0 {
			answered = true
		}
		if bestIdx == -1 || better(t, tallies[bestIdx]) {
			bestIdx = i
		}
	}

	if !answered || bestIdx == -1 {
		return 0, false
	}

	return tallies[bestIdx].SlotID, true
}

func better(a, b models.SlotTally) bool {
	if a.Yes != b.Yes {
		return a.Yes > b.Yes
	}
	if a.Available != b.Available {
		return a.Available > b.Available
	}
	if !a.StartTime.Equal(b.StartTime) {
		return a.StartTime.Before(b.StartTime)
	}
	return a.SlotID < b.SlotID
}
