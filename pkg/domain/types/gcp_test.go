package types_test

import (
	"testing"

	"github.com/m-mizutani/bq2ee/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestServiceAccountLogValue(t *testing.T) {
	testCases := map[string]struct {
		input types.ServiceAccount
		want  string
	}{
		"hide account name": {
			input: "exporter@my-project.iam.gserviceaccount.com",
			want:  "***@my-project.iam.gserviceaccount.com",
		},
		"no domain": {
			input: "exporter",
			want:  "***",
		},
		"empty": {
			input: "",
			want:  "",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			gt.V(t, tc.input.LogValue().String()).Equal(tc.want)
		})
	}
}

func TestNewRequestID(t *testing.T) {
	a := types.NewRequestID()
	b := types.NewRequestID()
	gt.V(t, a).NotEqual(b)
	gt.V(t, len(a.String())).Equal(36)
}
