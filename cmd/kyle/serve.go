package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/csiboto/kyle/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the JSON API server",
	Long:  "Start an HTTP server exposing one endpoint per assistant task plus the read-only profile.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := newAssistant(cmd.Context())
	if err != nil {
		return err
	}

	log.Printf("Profile loaded: %s", a.Profile().Identity.Name)

	srv := server.New(server.Config{Port: servePort}, a)
	return srv.Start()
}
