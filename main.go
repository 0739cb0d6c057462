package main

import (
	"log"
	"net/http"
	"os"

	"hollmovies-web-be/internal/assistant"
	"hollmovies-web-be/internal/auth"
	"hollmovies-web-be/internal/controller"
	"hollmovies-web-be/internal/db"
	"hollmovies-web-be/internal/email"
	"hollmovies-web-be/internal/handlers"
	"hollmovies-web-be/internal/models"
	"hollmovies-web-be/internal/payment"
	"hollmovies-web-be/internal/scheduler"
	"hollmovies-web-be/internal/session"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	db.InitDB()

	store := session.New(db.DB)
	app := controller.New(store)
	authSvc := auth.NewService(db.DB)
	ai := assistant.New(assistant.NewGeminiClient(os.Getenv("GEMINI_API_KEY")))

	// Verification completion promotes the session before the wizard comes
	// down, mirrors the upgrade into the accounts table and mails the
	// receipt.
	flow := payment.NewFlow(func(plan string) {
		app.OnPaymentSuccess()
		u := app.CurrentUser()
		if u == nil {
			return
		}
		if err := authSvc.SetRole(u.Email, models.RoleVIP); err != nil {
			log.Printf("[Payment] Failed to update account role for %s: %v", u.Email, err)
		}
		if err := email.SendVIPReceipt(u.Email, u.Name, plan); err != nil {
			log.Printf("[Payment] Failed to send receipt to %s: %v", u.Email, err)
		}
	})

	h := handlers.New(app, authSvc, flow, ai)
	r := h.Router()

	// Serve Static Files (Frontend)
	r.PathPrefix("/").Handler(http.FileServer(http.Dir("../hollmovies-web-fe/dist")))

	sched := scheduler.NewScheduler()
	sched.Start()
	defer sched.Stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server starting on port %s...", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}
