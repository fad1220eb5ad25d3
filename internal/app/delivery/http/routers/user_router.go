package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/users"
	"medibook-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *users.UserController) {
	router.With(middlewares.AuthRateLimit).Post("/register", userController.Register)
	router.With(middlewares.AuthRateLimit).Post("/login", userController.Login)
	router.With(middlewares.AuthRateLimit).Post("/firebase-signin", userController.FirebaseSignin)

	router.With(middlewares.Authenticate).Get("/me", userController.GetProfile)
	router.With(middlewares.Authenticate).Put("/{"+constvars.URLParamUserID+"}", userController.UpdateUser)
	router.With(middlewares.Authenticate).Delete("/{"+constvars.URLParamUserID+"}", userController.DeleteUser)
}
