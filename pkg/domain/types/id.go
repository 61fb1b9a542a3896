package types

import "github.com/google/uuid"

type (
	RequestID string
	RecordID  string
)

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x RequestID) String() string { return string(x) }

func NewRecordID() RecordID {
	return RecordID(uuid.NewString())
}

func (x RecordID) String() string { return string(x) }

type RecordStatus string

const (
	RecordStatusSucceeded RecordStatus = "succeeded"
	RecordStatusSubmitted RecordStatus = "submitted"
	RecordStatusFailed    RecordStatus = "failed"
)
