package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/example/kanastudy/internal/database"
	"github.com/example/kanastudy/internal/kana"
	"github.com/example/kanastudy/internal/progress"
	"github.com/example/kanastudy/internal/scheduler"
	"github.com/example/kanastudy/internal/ui"
	"github.com/example/kanastudy/pkg/models"
)

func main() {
	// .env is optional; environment variables take precedence anyway.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: unable to load .env file: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()

	tracker := progress.NewTracker(store)
	terminal := ui.New(os.Stdin, os.Stdout, tracker)

	fullPool := func() []models.Character {
		return append(kana.ForScript(models.ScriptHiragana), kana.ForScript(models.ScriptKatakana)...)
	}

	var reminders *scheduler.Scheduler
	if os.Getenv("ENABLE_SCHEDULER") != "false" {
		reminders = scheduler.New(tracker, fullPool, terminal)
		reminders.Start()
		log.Println("Review reminder scheduler started")
	}

	go func() {
		sig := <-sigChan
		log.Printf("Received signal: %v", sig)
		cancel()
	}()

	log.Println("Kana study started. Press Ctrl+C to stop.")
	if err := terminal.Run(ctx); err != nil && err != context.Canceled {
		log.Printf("Interface error: %v", err)
	}

	if reminders != nil {
		reminders.Stop()
	}
	log.Println("Kana study stopped")
}
