package wire

import (
	"delivery-backend/internal/adaptor"
	"delivery-backend/pkg/middleware"
	"delivery-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)
	r.Post("/reset-password", authHandler.ResetPassword)

	// Reset delivery and OTP guesses are throttled per client.
	limiter := middleware.NewRateLimiter(config.RateLimit.RequestsPerSecond, config.RateLimit.Burst, log)
	r.Group(func(r chi.Router) {
		r.Use(limiter.Handler)
		r.Post("/send-reset", authHandler.SendReset)
		r.Post("/verify-otp", authHandler.VerifyOTP)
	})
}
