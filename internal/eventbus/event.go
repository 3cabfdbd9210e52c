package eventbus

import (
	"time"
)

type EventType string

const (
	EventTypeFileProcessed EventType = "file_processed"
)

type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
	Retries   int         `json:"retries"`
}

type FileProcessedEvent struct {
	UserID    string `json:"user_id"`
	Article   string `json:"article"`
	FileName  string `json:"file_name"`
	CodeCount int    `json:"code_count"`
}
