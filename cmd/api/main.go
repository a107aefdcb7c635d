package main

import (
	"context"
	"log"

	"github.com/AmitSalunkhe/jmbm-v2/config"
	"github.com/AmitSalunkhe/jmbm-v2/internal/auth"
	"github.com/AmitSalunkhe/jmbm-v2/internal/bootstrap"
	"github.com/AmitSalunkhe/jmbm-v2/internal/content/repository"
	"github.com/AmitSalunkhe/jmbm-v2/internal/daily"
	"github.com/AmitSalunkhe/jmbm-v2/internal/storage"
	"github.com/AmitSalunkhe/jmbm-v2/internal/users"
)

const serviceName = "jmbm-api"

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	rdb, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	deps := bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		Debug:       cfg.App.Environment != "production",
		Redis:       rdb,
	}

	// Firebase is optional in local development; without it the API serves
	// reads from an empty store and rejects writes.
	if cfg.Firebase.CredentialsPath != "" {
		clients, err := auth.InitializeFirebase(ctx, &cfg.Firebase)
		if err != nil {
			log.Fatalf("firebase: %v", err)
		}
		defer clients.Firestore.Close()

		deps.AuthClient = clients.Auth
		deps.Store = repository.NewFirestoreStore(clients.Firestore)
		deps.Images = storage.NewImageStore(clients.Storage, cfg.Firebase.StorageBucket)
	} else {
		log.Println("FIREBASE_CREDENTIALS_PATH not set, running without Firebase")
	}

	deps.Repo = repository.New(deps.Store)
	deps.UserRepo = users.NewRepo(deps.Store)

	gemini := daily.NewGeminiClient(cfg.Gemini.APIKey, cfg.Gemini.BaseURL)
	gen := daily.NewGeminiGenerator(gemini, cfg.Gemini.Model)
	deps.Daily = daily.NewService(rdb, gen)

	sched := daily.NewScheduler(deps.Daily)
	sched.Start()
	defer sched.Stop()

	r := bootstrap.BuildRouter(deps)

	log.Printf("%s %s listening on :%s", serviceName, cfg.App.Version, cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
