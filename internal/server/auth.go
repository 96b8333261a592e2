package server

import (
	"context"
	"fmt"
	"net/http"

	"berry_buddy/internal/domain/entity"
	"berry_buddy/pkg/httpx/reply"
	"berry_buddy/pkg/httpx/req"
	"berry_buddy/pkg/rest"
)

type authService interface {
	StartOTP(ctx context.Context, email string, createIfMissing *bool) error
	VerifyOTP(ctx context.Context, email, token string) (entity.AuthResult, error)
}

type AuthServer struct {
	authService authService
}

func NewAuthServer(authService authService) AuthServer {
	return AuthServer{
		authService: authService,
	}
}

func (s AuthServer) postOTPStart(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.OTPStartRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	if err := s.authService.StartOTP(ctx, request.Email, request.CreateIfMissing); err != nil {
		return fmt.Errorf("authService.StartOTP: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.OTPStartResponse{
		OK:   true,
		Data: newRESTAuthSession(entity.AuthResult{}),
	})

	return nil
}

func (s AuthServer) postOTPVerify(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.OTPVerifyRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	result, err := s.authService.VerifyOTP(ctx, request.Email, request.Token)
	if err != nil {
		return fmt.Errorf("authService.VerifyOTP: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTAuthSession(result))

	return nil
}
