package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.requireAuth)

	mux := pat.New()

	// Users. /users/me must be registered before /users/:id, pat
	// matches patterns in registration order.
	mux.Post("/users", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Get("/users/me", authMiddleware.ThenFunc(app.userHandler.Me))
	mux.Put("/users/me", authMiddleware.ThenFunc(app.userHandler.UpdateMe))
	mux.Add("PATCH", "/users/me", authMiddleware.ThenFunc(app.userHandler.UpdateMe))
	mux.Get("/users/:id/items", standardMiddleware.ThenFunc(app.userHandler.ItemsByUser))
	mux.Get("/users/:id", authMiddleware.ThenFunc(app.userHandler.GetUserByID))
	mux.Get("/users", standardMiddleware.ThenFunc(app.userHandler.GetUsers))

	// Items: reads are open, writes require authentication.
	mux.Post("/items", authMiddleware.ThenFunc(app.itemHandler.CreateItem))
	mux.Post("/items/:id/image", authMiddleware.ThenFunc(app.itemHandler.UploadItemImage))
	mux.Get("/items/:id", standardMiddleware.ThenFunc(app.itemHandler.GetItemByID))
	mux.Put("/items/:id", authMiddleware.ThenFunc(app.itemHandler.UpdateItem))
	mux.Add("PATCH", "/items/:id", authMiddleware.ThenFunc(app.itemHandler.UpdateItem))
	mux.Del("/items/:id", authMiddleware.ThenFunc(app.itemHandler.DeleteItem))
	mux.Get("/items", standardMiddleware.ThenFunc(app.itemHandler.GetItems))
	mux.Get("/images/items/:filename", standardMiddleware.ThenFunc(app.itemHandler.ServeItemImage))

	// Auth
	mux.Post("/token", standardMiddleware.ThenFunc(app.authHandler.TokenPair))
	mux.Post("/token/refresh", standardMiddleware.ThenFunc(app.authHandler.Refresh))
	mux.Get("/test-auth", authMiddleware.ThenFunc(app.authHandler.TestAuth))
	mux.Post("/auth/login", standardMiddleware.ThenFunc(app.authHandler.SessionLogin))
	mux.Post("/auth/logout", standardMiddleware.ThenFunc(app.authHandler.SessionLogout))

	return mux
}
