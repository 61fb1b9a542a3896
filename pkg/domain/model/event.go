package model

import (
	"encoding/json"
	"time"

	"github.com/m-mizutani/bq2ee/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// StorageObjectEvent is the object resource delivered on object creation.
// Only Bucket and Name are required; the rest is kept for logging.
type StorageObjectEvent struct {
	Bucket      types.BucketName `json:"bucket"`
	Name        types.ObjectName `json:"name"`
	ContentType string           `json:"contentType,omitempty"`
	Size        string           `json:"size,omitempty"`
	Generation  string           `json:"generation,omitempty"`
	TimeCreated *time.Time       `json:"timeCreated,omitempty"`
}

func (x *StorageObjectEvent) Validate() error {
	if x.Bucket == "" {
		return goerr.Wrap(types.ErrInvalidEvent, "bucket is empty")
	}
	if x.Name == "" {
		return goerr.Wrap(types.ErrInvalidEvent, "name is empty", goerr.V("bucket", x.Bucket))
	}
	return nil
}

// SourceURI returns the gs:// URI of the created object.
func (x *StorageObjectEvent) SourceURI() (string, error) {
	return GCSURI(x.Bucket, x.Name)
}

// PubSubPushMessage is the envelope of a Pub/Sub push subscription request.
type PubSubPushMessage struct {
	Message struct {
		Data        []byte            `json:"data"`
		Attributes  map[string]string `json:"attributes"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

const (
	// PubSubEventTypeFinalize is the eventType attribute of Cloud Storage
	// Pub/Sub notifications for a created object.
	PubSubEventTypeFinalize = "OBJECT_FINALIZE"
	// CloudEventTypeFinalized is the ce-type of Eventarc object creation events.
	CloudEventTypeFinalized = "google.cloud.storage.object.v1.finalized"
)

// ValidateCloudEventType fails with types.ErrIgnoredEvent when ceType is set
// and is not an object creation. Empty ceType means a direct request.
func ValidateCloudEventType(ceType string) error {
	if ceType != "" && ceType != CloudEventTypeFinalized {
		return goerr.Wrap(types.ErrIgnoredEvent, "cloud event is not an object creation",
			goerr.V("ce-type", ceType),
		)
	}
	return nil
}

// DecodeStorageObjectEvent accepts either a bare object resource or a Pub/Sub
// push envelope carrying the object resource as message data. Notifications
// other than OBJECT_FINALIZE fail with types.ErrIgnoredEvent.
func DecodeStorageObjectEvent(body []byte) (*StorageObjectEvent, error) {
	var push PubSubPushMessage
	if err := json.Unmarshal(body, &push); err == nil {
		// Checked before data, as notifications without payload carry none.
		if et, ok := push.Message.Attributes["eventType"]; ok && et != PubSubEventTypeFinalize {
			return nil, goerr.Wrap(types.ErrIgnoredEvent, "notification is not an object creation",
				goerr.V("eventType", et),
				goerr.V("objectId", push.Message.Attributes["objectId"]),
			)
		}
		if len(push.Message.Data) > 0 {
			body = push.Message.Data
		}
	}

	var ev StorageObjectEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidEvent, "failed to decode storage event",
			goerr.V("error", err.Error()),
			goerr.V("body", string(body)),
		)
	}

	if err := ev.Validate(); err != nil {
		return nil, err
	}

	return &ev, nil
}
