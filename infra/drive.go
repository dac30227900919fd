package infra

import (
	"context"

	"github.com/cockroachdb/errors"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// NewDriveService builds the Google Drive client once at startup, from the
// credential blob in the environment. The service is then injected into the
// attachment repository: nothing else in the process touches credentials.
func NewDriveService(ctx context.Context, config DriveConfig) (*drive.Service, error) {
	opts := []option.ClientOption{
		option.WithScopes(drive.DriveScope),
	}
	if config.CredentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(config.CredentialsJSON)))
	}

	service, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create drive service")
	}
	return service, nil
}
