package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

type FileFetcher struct {
	mock.Mock
}

func (f *FileFetcher) FetchFile(ctx context.Context, url string) (io.ReadCloser, error) {
	args := f.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}
