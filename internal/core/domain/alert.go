package domain

import (
	"fmt"
	"math"
	"time"
)

type AlertKind int

const (
	AlertDayBefore  AlertKind = 1
	AlertHourBefore AlertKind = 2
)

func (k AlertKind) String() string {
	switch k {
	case AlertDayBefore:
		return "day-before"
	case AlertHourBefore:
		return "hour-before"
	default:
		return "unknown"
	}
}

// AlertOffsets lists how long before the due instant each alert fires.
var AlertOffsets = []struct {
	Kind   AlertKind
	Before time.Duration
}{
	{Kind: AlertDayBefore, Before: 24 * time.Hour},
	{Kind: AlertHourBefore, Before: time.Hour},
}

type Alert struct {
	ID     int64
	TaskID uint64
	Kind   AlertKind
	Title  string
	Body   string
	FireAt time.Time
}

// MaxAlertTaskID is the largest task id whose alert ids fit in an int64.
const MaxAlertTaskID = (math.MaxInt64 - 9) / 10

// AlertID maps a task and alert kind to the local alert id. Every alert id in
// the system is produced here; task ids must be positive and at most
// MaxAlertTaskID, and kinds stay below 10. Out of range ids panic rather than
// wrap into another task's ids.
func AlertID(taskID uint64, kind AlertKind) int64 {
	if taskID > MaxAlertTaskID {
		panic(fmt.Sprintf("task id %d exceeds alert id range", taskID))
	}
	return int64(taskID)*10 + int64(kind)
}

// AlertIDs returns every id a task's alerts can occupy.
func AlertIDs(taskID uint64) []int64 {
	ids := make([]int64, 0, len(AlertOffsets))
	for _, offset := range AlertOffsets {
		ids = append(ids, AlertID(taskID, offset.Kind))
	}
	return ids
}
