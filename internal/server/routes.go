package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"berry_buddy/internal/domain"
	"berry_buddy/pkg/errcodes"
	"berry_buddy/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) { //nolint:funlen
	r.NotFound(handler(notFound))
	r.MethodNotAllowed(handler(notFound))

	r.Route("/", func(r chi.Router) {
		r.Use(s.authenticate)

		r.Get("/health", handler(s.getHealth))

		r.Route("/auth/otp", func(r chi.Router) {
			r.Use(requireBackend(s.backends.OTP, domain.MessageAuthNotConfigured))

			r.Post("/start", handler(s.postOTPStart))
			r.Post("/verify", handler(s.postOTPVerify))
		})

		r.Group(func(r chi.Router) {
			r.Use(requireBackend(s.backends.Database, domain.MessageDatabaseNotConfigured))

			r.Get("/berries", handler(s.getBerries))

			r.Route("/vendors", func(r chi.Router) {
				r.Get("/", handler(s.getVendors))
				r.Get("/{id}", handler(s.getVendor))
			})

			r.Route("/profiles", func(r chi.Router) {
				r.Get("/", handler(s.getProfiles))

				// authorized zone
				r.With(requireUser).Get("/me", handler(s.getProfileMe))
				r.With(requireUser).Put("/me", handler(s.putProfileMe))
			})

			r.Route("/prices", func(r chi.Router) {
				r.Get("/", handler(s.getPrices))

				r.Group(func(r chi.Router) {
					r.Use(requireUser)

					r.Post("/", handler(s.postPrice))
					r.Patch("/{id}", handler(s.patchPrice))
					r.Delete("/{id}", handler(s.deletePrice))
				})
			})

			r.Route("/reviews", func(r chi.Router) {
				r.Get("/", handler(s.getReviews))

				r.Group(func(r chi.Router) {
					r.Use(requireUser)

					r.Post("/", handler(s.postReview))
					r.Patch("/{id}", handler(s.patchReview))
					r.Delete("/{id}", handler(s.deleteReview))
				})
			})

			r.Route("/photos", func(r chi.Router) {
				r.Get("/", handler(s.getPhotos))

				r.Group(func(r chi.Router) {
					r.Use(requireUser)

					r.Post("/", handler(s.postPhoto))
					r.With(requireBackend(s.backends.Storage, domain.MessageStorageNotConfigured)).
						Post("/upload", handler(s.postPhotoUpload))
					r.Patch("/{id}", handler(s.patchPhoto))
					r.Delete("/{id}", handler(s.deletePhoto))
				})
			})
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}

func notFound(http.ResponseWriter, *http.Request) error {
	return &domain.AppError{
		Kind:    domain.KindNotFound,
		Code:    errcodes.RouteNotFound,
		Message: domain.MessageRouteNotFound,
	}
}
