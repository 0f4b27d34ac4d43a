package main

import (
	"os"

	"hospital-management/cmd/bootstrap"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "hms",
		Short:        "Hospital management web application",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate the database and start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database tables if they are absent",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bootstrap.Migrate(); err != nil {
				logrus.Errorf("Migration failed: %v", err)
				return err
			}
			return nil
		},
	}
}

func serve() error {
	app, err := bootstrap.New()
	if err != nil {
		logrus.Errorf("Failed to initialize application: %v", err)
		return err
	}
	return app.Run()
}
