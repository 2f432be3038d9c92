package auction

import "time"

/*
	Статус аукциона выводится из таймстемпов при каждом чтении,
	сохранённое в монге поле может устареть. CANCELLED ставится
	только руками (продавец/админ) и время его не отменяет.
*/

type Status string

const (
	StatusUpcoming  Status = "UPCOMING"
	StatusLive      Status = "LIVE"
	StatusEnded     Status = "ENDED"
	StatusCancelled Status = "CANCELLED"
)

// Classify derives the effective auction status from the stored status and
// the auction window. Pure function: same inputs, same output, nothing persisted.
// The window is [start, end): now == start is LIVE, now == end is already ENDED.
func Classify(stored Status, start, end, now time.Time) Status {
	if stored == StatusCancelled {
		return StatusCancelled
	}
	if now.Before(start) {
		return StatusUpcoming
	}
	if now.Before(end) {
		return StatusLive
	}
	return StatusEnded
}
