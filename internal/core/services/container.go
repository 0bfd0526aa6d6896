package services

import (
	"context"

	portsrepo "github.com/nairvarun/clipstream_backend/internal/core/ports/repositories"
	portssvc "github.com/nairvarun/clipstream_backend/internal/core/ports/services"
	"github.com/nairvarun/clipstream_backend/internal/platform/config"
)

// NewContainer creates the service container with properly wired dependencies:
// the token service sits on top of the user service, which sits on top of the
// repository and the media store.
func NewContainer(ctx context.Context, cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) (*portssvc.ServiceContainer, error) {
	media, err := NewMediaService(ctx, cfg)
	if err != nil {
		return nil, err
	}

	user := NewUserService(userRepo, media)
	token := NewTokenService(cfg, user)

	return &portssvc.ServiceContainer{
		User:  user,
		Token: token,
		Media: media,
	}, nil
}
