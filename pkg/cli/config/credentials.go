package config

import (
	"context"

	"github.com/m-mizutani/bq2ee/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/impersonate"
	"google.golang.org/api/option"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// clientOptions returns options that make a Google API client act as sa.
// Application default credentials are used as is when sa is empty.
func clientOptions(ctx context.Context, sa types.ServiceAccount, scopes ...string) ([]option.ClientOption, error) {
	if sa == "" {
		return nil, nil
	}

	ts, err := impersonate.CredentialsTokenSource(ctx, impersonate.CredentialsConfig{
		TargetPrincipal: sa.String(),
		Scopes:          scopes,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create impersonated token source",
			goerr.V("serviceAccount", sa),
		)
	}

	return []option.ClientOption{option.WithTokenSource(ts)}, nil
}
