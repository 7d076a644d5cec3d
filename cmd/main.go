package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/RemoteState/petstash-server/cronJobs"
	"github.com/RemoteState/petstash-server/database"
	"github.com/RemoteState/petstash-server/server"
	"github.com/RemoteState/petstash-server/session"
	"github.com/RemoteState/petstash-server/utils"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func connectDatabase(migrate bool) error {
	connect := database.Connect
	if migrate {
		connect = database.ConnectAndMigrate
	}
	return connect(os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_USER_NAME"),
		os.Getenv("DB_PASSWORD"),
		database.SSLModeDisable)
}

// setupSessionStore uses redis when REDIS_ADDR is set and keeps sessions in memory otherwise
func setupSessionStore(ctx context.Context) error {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		logrus.Warn("REDIS_ADDR not set, keeping sessions in memory")
		session.SessionStore = session.NewMemoryStore()
		return nil
	}
	store, err := session.NewRedisStore(ctx, redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	}))
	if err != nil {
		return err
	}
	session.SessionStore = store
	return nil
}

func serve(cmd *cobra.Command, _ []string) error {
	if err := connectDatabase(true); err != nil {
		logrus.Panicf("Failed to initialize and migrate database with error: %+v", err)
	}
	logrus.Print("migration successful!!")

	if err := setupSessionStore(cmd.Context()); err != nil {
		logrus.Panicf("Failed to connect session store with error: %+v", err)
	}

	scheduler, err := cronJobs.Start(utils.EnvInt("CART_TTL_DAYS", cronJobs.DefaultCartTTLDays))
	if err != nil {
		logrus.Error("error from cron job ", err)
	} else {
		defer scheduler.Stop()
	}

	// create server instance
	srv := server.SetupRoutes()

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		<-stop
		logrus.Info("shutting down server")
		if err := srv.Shutdown(); err != nil {
			logrus.Errorf("Failed to shutdown server gracefully with error: %+v", err)
		}
	}()

	logrus.Print("Server started at ", os.Getenv("SERVER_HOST_PORT"))
	if err := srv.Run(":" + os.Getenv("SERVER_HOST_PORT")); err != nil && err != http.ErrServerClosed {
		logrus.Panicf("Failed to run server with error: %+v", err)
	}
	return nil
}

func migrateCommand() *cobra.Command {
	var down int
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations, or roll back with --down",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := connectDatabase(down == 0); err != nil {
				return err
			}
			if down > 0 {
				if err := database.MigrateDown(down); err != nil {
					return err
				}
				logrus.Infof("rolled back %d migrations", down)
				return nil
			}
			logrus.Print("migration successful!!")
			return nil
		},
	}
	cmd.Flags().IntVar(&down, "down", 0, "number of migrations to roll back")
	return cmd
}

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file loaded, using the environment")
	}

	root := &cobra.Command{
		Use:   "petstash",
		Short: "PetStash storefront and back office API",
	}
	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE:  serve,
	})
	root.AddCommand(migrateCommand())

	if err := root.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
