package services

import "context"

// MediaSvcFacade defines the interface to the media host: store a local file
// as a blob, get back a public URL.
type MediaSvcFacade interface {
	UploadFile(ctx context.Context, localPath string) (string, error)
}
