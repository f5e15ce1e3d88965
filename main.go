package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/9seconds/clientgeo/api"
	"github.com/9seconds/clientgeo/config"
)

const version = "0.1.0"

var (
	app = kingpin.New(
		"clientgeo",
		"Client IP and subdivision resolver backed by a local City database")

	debug = app.Flag("debug", "Run in debug mode.").
		Short('d').
		Envar("CLIENTGEO_DEBUG").
		Bool()
	configFile = app.Arg("config-path", "Path to the config.").
			Required().
			File()
)

func init() {
	app.Version(version)
	setupLogging(false)
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	setupLogging(*debug)

	conf, err := config.Parse(*configFile)
	(*configFile).Close() // nolint: errcheck

	if err != nil {
		log.Fatalf(err.Error())
	}

	lazy := makeLazyLocator(conf)

	loc, err := lazy.Get()
	if err != nil {
		log.Fatalf(err.Error())
	}
	defer loc.Close() // nolint: errcheck

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	var handler http.Handler = api.MakeServer(loc, registry)
	if conf.BasicAuthUser != "" {
		handler = withBasicAuth(handler, conf.BasicAuthUser, conf.BasicAuthPassword)
	}

	server := &http.Server{
		Addr:    conf.Listen,
		Handler: handler,
	}

	rootCtx, cancel := makeRootContext()
	defer cancel()

	go func() {
		<-rootCtx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		server.Shutdown(shutdownCtx) // nolint: errcheck
	}()

	log.WithFields(log.Fields{
		"listen":   conf.Listen,
		"database": conf.DatabasePath,
	}).Info("Start server.")

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server failed: %s", err.Error())
	}
}
