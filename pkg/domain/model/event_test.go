package model_test

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/m-mizutani/bq2ee/pkg/domain/model"
	"github.com/m-mizutani/bq2ee/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestDecodeStorageObjectEvent(t *testing.T) {
	t.Run("object resource", func(t *testing.T) {
		body := []byte(`{"kind":"storage#object","bucket":"ee_export_bucket","name":"plantboundaries.csv","contentType":"text/csv","size":"1024"}`)
		ev := gt.R1(model.DecodeStorageObjectEvent(body)).NoError(t)
		gt.V(t, ev.Bucket).Equal(types.BucketName("ee_export_bucket"))
		gt.V(t, ev.Name).Equal(types.ObjectName("plantboundaries.csv"))
		gt.V(t, ev.ContentType).Equal("text/csv")
	})

	t.Run("pubsub push envelope", func(t *testing.T) {
		data := base64.StdEncoding.EncodeToString([]byte(`{"bucket":"bkt","name":"a/b.csv"}`))
		body := []byte(`{"message":{"data":"` + data + `","messageId":"1"},"subscription":"projects/p/subscriptions/s"}`)
		ev := gt.R1(model.DecodeStorageObjectEvent(body)).NoError(t)
		gt.V(t, ev.Bucket).Equal(types.BucketName("bkt"))
		gt.V(t, ev.Name).Equal(types.ObjectName("a/b.csv"))

		uri := gt.R1(ev.SourceURI()).NoError(t)
		gt.V(t, uri).Equal("gs://bkt/a/b.csv")
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := model.DecodeStorageObjectEvent([]byte(`{"bucket":"bkt"}`))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidEvent))
	})

	t.Run("broken json", func(t *testing.T) {
		_, err := model.DecodeStorageObjectEvent([]byte(`{`))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidEvent))
	})
}

func TestDecodeStorageObjectEventType(t *testing.T) {
	data := base64.StdEncoding.EncodeToString([]byte(`{"bucket":"b","name":"gone.csv"}`))
	envelope := func(attrs string) []byte {
		return []byte(`{"message":{"data":"` + data + `","attributes":` + attrs + `,"messageId":"1"},"subscription":"projects/p/subscriptions/s"}`)
	}

	testCases := map[string]struct {
		body    []byte
		ignored bool
	}{
		"finalize":          {body: envelope(`{"eventType":"OBJECT_FINALIZE","objectId":"gone.csv"}`)},
		"no event type":     {body: envelope(`{}`)},
		"delete":            {body: envelope(`{"eventType":"OBJECT_DELETE","objectId":"gone.csv"}`), ignored: true},
		"metadata update":   {body: envelope(`{"eventType":"OBJECT_METADATA_UPDATE"}`), ignored: true},
		"archive":           {body: envelope(`{"eventType":"OBJECT_ARCHIVE"}`), ignored: true},
		"delete no payload": {body: []byte(`{"message":{"attributes":{"eventType":"OBJECT_DELETE"},"messageId":"2"}}`), ignored: true},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			ev, err := model.DecodeStorageObjectEvent(tc.body)
			if tc.ignored {
				gt.True(t, errors.Is(err, types.ErrIgnoredEvent))
				gt.True(t, ev == nil)
				return
			}
			gt.NoError(t, err)
			gt.V(t, ev.Name).Equal(types.ObjectName("gone.csv"))
		})
	}
}

func TestValidateCloudEventType(t *testing.T) {
	testCases := map[string]struct {
		ceType  string
		ignored bool
	}{
		"direct request": {ceType: ""},
		"finalized":      {ceType: "google.cloud.storage.object.v1.finalized"},
		"deleted":        {ceType: "google.cloud.storage.object.v1.deleted", ignored: true},
		"archived":       {ceType: "google.cloud.storage.object.v1.archived", ignored: true},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			err := model.ValidateCloudEventType(tc.ceType)
			if tc.ignored {
				gt.True(t, errors.Is(err, types.ErrIgnoredEvent))
			} else {
				gt.NoError(t, err)
			}
		})
	}
}
