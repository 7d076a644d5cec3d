package server

import (
	"github.com/RemoteState/petstash-server/handlers"
	"github.com/RemoteState/petstash-server/middlewares"
	"github.com/go-chi/chi"
)

func storeRoutes(r chi.Router) {
	// public routes
	r.Get("/categories", handlers.GetActiveCategories)
	r.Get("/products", handlers.GetActiveProducts)
	r.Get("/products/{route}", handlers.GetActiveProductsByRoute)
	r.Post("/register", handlers.RegisterShopUser)
	r.Post("/login", handlers.LoginShopUser)

	// private routes- shopper only
	r.Route("/user", func(user chi.Router) {
		user.Use(middlewares.ShopperAuthMiddleware)

		user.Get("/", handlers.GetShopUser)
		user.Put("/address", handlers.UpdateShopUserAddress)
		user.Post("/logout", handlers.LogoutShopUser)

		user.Route("/cart", func(cart chi.Router) {
			cart.Get("/", handlers.GetCart)
			cart.Post("/", handlers.AddToCart)
			cart.Put("/", handlers.ModifyCart)
			cart.Delete("/", handlers.ClearCart)
			cart.Delete("/{product_id}", handlers.DeleteCartItem)
		})

		user.Route("/transaction", func(transaction chi.Router) {
			transaction.Get("/", handlers.GetTransactions)
			transaction.Post("/", handlers.CreateTransaction)
			transaction.Get("/{id}", handlers.GetTransaction)
			transaction.Get("/{id}/items", handlers.GetTransactionItems)
		})
	})
}
