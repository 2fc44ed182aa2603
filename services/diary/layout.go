package diary

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"overture/models"
	"overture/utils"
)

// Layout is the result of laying out one day's events: the number of
// side-by-side columns the grid needs and the events with their assigned
// column indices.
type Layout struct {
	MaxConcurrent int
	Events        []models.TimedEvent
}

// ComputeLayout assigns each event a column such that events whose slot
// ranges overlap never share one, using at most MaxConcurrent columns.
//
// Events are processed in start-time order (stable, so simultaneous
// starts keep their input order), and each takes the lowest column free
// across every slot it spans. Events with malformed slot ranges are
// skipped and logged rather than failing the whole batch; a diary page
// should survive one bad row.
func ComputeLayout(events []models.TimedEvent, totalSlots int) Layout {
	valid := make([]models.TimedEvent, 0, len(events))
	for _, ev := range events {
		if ev.StartSlot < 0 || ev.EndSlot >= totalSlots || ev.StartSlot > ev.EndSlot {
			utils.GetLogger().Warn("skipping event with invalid slot range",
				zap.String("event", ev.ID),
				zap.Int("startSlot", ev.StartSlot),
				zap.Int("endSlot", ev.EndSlot),
				zap.Int("totalSlots", totalSlots))
			continue
		}
		valid = append(valid, ev)
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Start.Before(valid[j].Start)
	})

	maxConcurrent := maxConcurrency(valid, totalSlots)
	if maxConcurrent == 0 {
		return Layout{MaxConcurrent: 0, Events: valid}
	}

	// free[slot][col] records whether a column is still open in a slot.
	free := make([][]bool, totalSlots)
	for slot := range free {
		free[slot] = make([]bool, maxConcurrent)
		for col := range free[slot] {
			free[slot][col] = true
		}
	}

	for i := range valid {
		col := firstFreeColumn(free, valid[i], maxConcurrent)
		if col < 0 {
			// maxConcurrent is the true maximum, so a free column must
			// exist; anything else is a bug in this engine.
			panic(fmt.Sprintf("diary layout: no free column for event %s [%d,%d]",
				valid[i].ID, valid[i].StartSlot, valid[i].EndSlot))
		}
		valid[i].Column = col
		for slot := valid[i].StartSlot; slot <= valid[i].EndSlot; slot++ {
			free[slot][col] = false
		}
	}

	return Layout{MaxConcurrent: maxConcurrent, Events: valid}
}

// maxConcurrency counts, per slot, how many events cover it (slot ranges
// are inclusive on both ends) and returns the maximum.
func maxConcurrency(events []models.TimedEvent, totalSlots int) int {
	counts := make([]int, totalSlots)
	for _, ev := range events {
		for slot := ev.StartSlot; slot <= ev.EndSlot; slot++ {
			counts[slot]++
		}
	}
	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	return max
}

func firstFreeColumn(free [][]bool, ev models.TimedEvent, maxConcurrent int) int {
	for col := 0; col < maxConcurrent; col++ {
		open := true
		for slot := ev.StartSlot; slot <= ev.EndSlot; slot++ {
			if !free[slot][col] {
				open = false
				break
			}
		}
		if open {
			return col
		}
	}
	return -1
}
