package server

import (
	"context"

	"berry_buddy/pkg/contextx"
)

// userResolver turns a bearer token into the calling user.
type userResolver interface {
	ResolveUser(ctx context.Context, token string) (contextx.User, error)
}

// Backends reports which optional backends this process was configured with.
// Routes that need a missing backend answer CONFIG_ERROR instead of failing
// on a nil client.
type Backends struct {
	Database bool
	OTP      bool
	Storage  bool
}

// Server combines the resource servers behind one router.
type Server struct {
	HealthServer
	AuthServer
	BerryServer
	VendorServer
	ProfileServer
	PriceServer
	ReviewServer
	PhotoServer

	users    userResolver
	backends Backends
}

func NewServer(
	users userResolver,
	backends Backends,
	healthServer HealthServer,
	authServer AuthServer,
	berryServer BerryServer,
	vendorServer VendorServer,
	profileServer ProfileServer,
	priceServer PriceServer,
	reviewServer ReviewServer,
	photoServer PhotoServer,
) Server {
	return Server{
		HealthServer:  healthServer,
		AuthServer:    authServer,
		BerryServer:   berryServer,
		VendorServer:  vendorServer,
		ProfileServer: profileServer,
		PriceServer:   priceServer,
		ReviewServer:  reviewServer,
		PhotoServer:   photoServer,
		users:         users,
		backends:      backends,
	}
}
