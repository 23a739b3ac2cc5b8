package monitor

import "time"

type Status struct {
	Storage   bool      `json:"storage"`
	Backend   string    `json:"backend"`
	TaskCount int       `json:"task_count"`
	LastCheck time.Time `json:"last_check"`
}
