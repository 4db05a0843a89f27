package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"nlt_server_go/auth"
	"nlt_server_go/backup"
	"nlt_server_go/config"
	"nlt_server_go/controllers"
	"nlt_server_go/data"
	"nlt_server_go/middleware"
	"nlt_server_go/models"
	"nlt_server_go/storage"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := data.InitDB(conf.Server.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	auth.SetSigningKey(conf.Server.JWTSecret)

	if err := bootstrapAdmin(conf.Server.BootstrapPin); err != nil {
		log.Fatalf("failed to bootstrap admin agent: %v", err)
	}

	store, err := newObjectStore(conf)
	if err != nil {
		log.Fatalf("failed to initialize snapshot store: %v", err)
	}

	backupService := backup.NewService(data.NewRowStore(data.GetDB()), store, conf.Backup.Prefix)
	controllers.SetBackupService(backupService)

	scheduler := backup.NewScheduler(backupService, conf.Backup.Schedule)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("failed to start backup schedule: %v", err)
	}

	server := &http.Server{
		Addr:    conf.Server.Addr,
		Handler: newRouter(),
	}

	go func() {
		log.Printf("starting server on %s", conf.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	log.Print("shutting down...")
	scheduler.Stop(time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
}

func newRouter() *mux.Router {
	router := mux.NewRouter()

	// open routes
	router.HandleFunc("/api/auth/login", controllers.LoginHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/service/status", controllers.HealthCheck).Methods(http.MethodGet)

	// everything below requires a session token
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.JWTMiddleware)

	api.HandleFunc("/dashboard", controllers.GetDashboardHandler).Methods(http.MethodGet)

	api.HandleFunc("/customers", controllers.ListCustomersHandler).Methods(http.MethodGet)
	api.HandleFunc("/customers", controllers.CreateCustomerHandler).Methods(http.MethodPost)
	api.HandleFunc("/customers/{id}", controllers.GetCustomerHandler).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id}", controllers.UpdateCustomerHandler).Methods(http.MethodPut)

	api.HandleFunc("/practices", controllers.ListPracticesHandler).Methods(http.MethodGet)
	api.HandleFunc("/practices", controllers.CreatePracticeHandler).Methods(http.MethodPost)
	api.HandleFunc("/practices/{id}", controllers.GetPracticeHandler).Methods(http.MethodGet)
	api.HandleFunc("/practices/{id}", controllers.UpdatePracticeHandler).Methods(http.MethodPut)
	api.HandleFunc("/practices/{id}/advance", controllers.AdvancePracticeHandler).Methods(http.MethodPost)

	api.HandleFunc("/reminders", controllers.ListRemindersHandler).Methods(http.MethodGet)
	api.HandleFunc("/reminders", controllers.CreateReminderHandler).Methods(http.MethodPost)
	api.HandleFunc("/reminders/{id}/resolve", controllers.ResolveReminderHandler).Methods(http.MethodPost)
	api.HandleFunc("/reminders/{id}", controllers.DeleteReminderHandler).Methods(http.MethodDelete)

	api.HandleFunc("/providers", controllers.ListProvidersHandler).Methods(http.MethodGet)

	// administrator routes
	api.HandleFunc("/agents", middleware.AdminOnly(controllers.ListAgentsHandler)).Methods(http.MethodGet)
	api.HandleFunc("/agents", middleware.AdminOnly(controllers.CreateAgentHandler)).Methods(http.MethodPost)
	api.HandleFunc("/agents/{id}", middleware.AdminOnly(controllers.UpdateAgentHandler)).Methods(http.MethodPut)

	api.HandleFunc("/providers", middleware.AdminOnly(controllers.CreateProviderHandler)).Methods(http.MethodPost)
	api.HandleFunc("/providers/{id}", middleware.AdminOnly(controllers.UpdateProviderHandler)).Methods(http.MethodPut)

	api.HandleFunc("/deal-sources", middleware.AdminOnly(controllers.ListDealSourcesHandler)).Methods(http.MethodGet)

	api.HandleFunc("/backups", middleware.AdminOnly(controllers.CreateBackupHandler)).Methods(http.MethodPost)
	api.HandleFunc("/backups", middleware.AdminOnly(controllers.ListBackupsHandler)).Methods(http.MethodGet)
	api.HandleFunc("/backups/restore", middleware.AdminOnly(controllers.RestoreBackupHandler)).Methods(http.MethodPost)
	api.HandleFunc("/backups/retention/run", middleware.AdminOnly(controllers.RunRetentionHandler)).Methods(http.MethodPost)
	api.HandleFunc("/backups/{name}", middleware.AdminOnly(controllers.DownloadBackupHandler)).Methods(http.MethodGet)
	api.HandleFunc("/backups/{name}", middleware.AdminOnly(controllers.DeleteBackupHandler)).Methods(http.MethodDelete)
	api.HandleFunc("/backups/{name}/restore", middleware.AdminOnly(controllers.RestoreRemoteBackupHandler)).Methods(http.MethodPost)

	return router
}

func newObjectStore(conf config.Config) (storage.ObjectStore, error) {
	if conf.Backup.Backend == "s3" {
		return storage.NewS3Store(context.Background(), storage.S3Options{
			Bucket:    conf.S3.Bucket,
			Region:    conf.S3.Region,
			Endpoint:  conf.S3.Endpoint,
			AccessKey: conf.S3.AccessKey,
			SecretKey: conf.S3.SecretKey,
		})
	}
	return storage.NewFSStore(conf.Backup.Dir)
}

// bootstrapAdmin creates the initial admin agent on an empty database so
// the portal can be logged into at all.
func bootstrapAdmin(pin string) error {
	count, err := data.CountAgents()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	pinHash, err := data.HashPin(pin)
	if err != nil {
		return err
	}
	admin := &models.Agent{
		ID:       uuid.NewString(),
		Code:     "admin",
		Name:     "Administrator",
		PinHash:  pinHash,
		IsAdmin:  true,
		IsActive: true,
	}
	if err := data.CreateAgent(admin); err != nil {
		return err
	}
	log.Print("created initial admin agent (code: admin)")
	return nil
}
