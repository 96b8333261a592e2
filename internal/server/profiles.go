package server

import (
	"context"
	"fmt"
	"net/http"

	"berry_buddy/internal/domain/entity"
	"berry_buddy/pkg/contextx"
	"berry_buddy/pkg/httpx/reply"
	"berry_buddy/pkg/httpx/req"
	"berry_buddy/pkg/lox"
	"berry_buddy/pkg/rest"
)

type profileService interface {
	Me(ctx context.Context, user contextx.UserID) (entity.Profile, error)
	UpsertMe(ctx context.Context, user contextx.UserID, upsert entity.ProfileUpsert) (entity.Profile, error)
	ListPublic(ctx context.Context, rawIDs string) ([]entity.PublicProfile, error)
}

type ProfileServer struct {
	profileService profileService
}

func NewProfileServer(profileService profileService) ProfileServer {
	return ProfileServer{
		profileService: profileService,
	}
}

func (s ProfileServer) getProfiles(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	profiles, err := s.profileService.ListPublic(ctx, r.URL.Query().Get("ids"))
	if err != nil {
		return fmt.Errorf("profileService.ListPublic: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, lox.Map(profiles, newRESTPublicProfile))

	return nil
}

func (s ProfileServer) getProfileMe(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	profile, err := s.profileService.Me(ctx, currentUser(r))
	if err != nil {
		return fmt.Errorf("profileService.Me: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTProfile(profile))

	return nil
}

func (s ProfileServer) putProfileMe(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.ProfileUpsert

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	profile, err := s.profileService.UpsertMe(ctx, currentUser(r), newDomainProfileUpsert(request))
	if err != nil {
		return fmt.Errorf("profileService.UpsertMe: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTProfile(profile))

	return nil
}
