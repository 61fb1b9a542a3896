package model

import (
	"time"

	"github.com/m-mizutani/bq2ee/pkg/domain/types"
)

// ExportRecord is a history entry of a completed table export.
type ExportRecord struct {
	ID             types.RecordID     `json:"id"`
	Table          string             `json:"table"`
	DestinationURI string             `json:"destination_uri"`
	JobID          string             `json:"job_id"`
	ObjectSize     int64              `json:"object_size"`
	Status         types.RecordStatus `json:"status"`
	CreatedAt      time.Time          `json:"created_at"`
}

// IngestionRecord is a history entry of a submitted ingestion task. It is
// keyed by the task ID so that the status can be looked up later.
type IngestionRecord struct {
	TaskID    types.TaskID        `json:"task_id"`
	AssetName string              `json:"asset_name"`
	SourceURI string              `json:"source_uri"`
	Operation types.OperationName `json:"operation"`
	Status    types.RecordStatus  `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
}

// History is the most recent exports and ingestions, newest first.
type History struct {
	Exports    []*ExportRecord    `json:"exports"`
	Ingestions []*IngestionRecord `json:"ingestions"`
}

const DefaultHistoryLimit = 20
