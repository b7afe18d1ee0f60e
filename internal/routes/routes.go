package routes

import (
	"github.com/ikyawthetpaing/webacademy/internal/config"
	"github.com/ikyawthetpaing/webacademy/internal/handlers"
	"github.com/ikyawthetpaing/webacademy/internal/middleware"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	cfg *config.Config,
	postHandler *handlers.PostHandler,
	courseHandler *handlers.CourseHandler,
	pageHandler *handlers.PageHandler,
	subscribeHandler *handlers.SubscribeHandler,
	adminHandler *handlers.AdminHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging)
	router.Use(middleware.Recoverer)

	api := router.PathPrefix("/api").Subrouter()

	// --- Public routes ---
	api.HandleFunc("/posts", postHandler.ListPosts).Methods("GET")
	api.HandleFunc("/posts/categories", postHandler.GetCategories).Methods("GET")
	api.HandleFunc("/posts/categories/{slug}", postHandler.GetCategory).Methods("GET")
	api.HandleFunc("/posts/{slug}", postHandler.GetPost).Methods("GET")
	api.HandleFunc("/posts/{slug}/views", postHandler.RegisterView).Methods("POST")

	api.HandleFunc("/courses", courseHandler.ListCourses).Methods("GET")
	api.HandleFunc("/courses/{course}", courseHandler.GetCourse).Methods("GET")
	api.HandleFunc("/courses/{course}/chapters", courseHandler.ListChapters).Methods("GET")
	api.HandleFunc("/courses/{course}/chapter", courseHandler.GetChapter).Methods("GET")
	api.HandleFunc("/courses/{course}/chapter/{chapter}", courseHandler.GetChapter).Methods("GET")

	api.HandleFunc("/pages/{slug}", pageHandler.GetPage).Methods("GET")
	api.HandleFunc("/authors/{slug}", pageHandler.GetAuthor).Methods("GET")

	api.HandleFunc("/subscribe", subscribeHandler.Subscribe).Methods("POST")

	api.HandleFunc("/admin/login", adminHandler.Login).Methods("POST")

	// --- Admin routes (JWT) ---
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg))
	admin.HandleFunc("/reindex", adminHandler.Reindex).Methods("POST")
	admin.HandleFunc("/subscribers", adminHandler.ListSubscribers).Methods("GET")
}
