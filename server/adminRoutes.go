package server

import (
	"github.com/RemoteState/petstash-server/handlers"
	"github.com/RemoteState/petstash-server/middlewares"
	"github.com/go-chi/chi"
)

func adminRoutes(r chi.Router) {
	r.Post("/register", handlers.RegisterAdmin)
	r.Post("/login", handlers.LoginAdmin)

	r.Group(func(admin chi.Router) {
		admin.Use(middlewares.AdminAuthMiddleware)

		admin.Post("/logout", handlers.LogoutAdmin)
		admin.Get("/dashboard", handlers.GetDashBoardStats)
		admin.Get("/log", handlers.GetUpdateLog)

		// category
		admin.Route("/category", func(category chi.Router) {
			category.Get("/", handlers.GetAllCategories)
			category.Post("/", handlers.CreateCategory)
			category.Get("/{id}", handlers.GetCategory)
			category.Put("/{id}", handlers.ModifyCategory)
		})

		// product
		admin.Route("/product", func(product chi.Router) {
			product.Get("/", handlers.GetAllProducts)
			product.Post("/", handlers.CreateProduct)
			product.Get("/{id}", handlers.GetProduct)
			product.Put("/{id}", handlers.ModifyProduct)
		})

		admin.Get("/inventory", handlers.GetInventory)
		admin.Put("/inventory", handlers.ReceiveInventory)
	})
}
