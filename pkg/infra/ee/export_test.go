package ee

import "google.golang.org/api/option"

func WithoutAuthenticationForTest() []option.ClientOption {
	return []option.ClientOption{option.WithoutAuthentication()}
}

// WithEndpointForTest points the client to a fake API server.
func WithEndpointForTest(endpoint string) []option.ClientOption {
	return []option.ClientOption{
		option.WithoutAuthentication(),
		option.WithEndpoint(endpoint),
	}
}
