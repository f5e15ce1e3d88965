package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/9seconds/clientgeo/config"
	"github.com/9seconds/clientgeo/geodb"
	"github.com/9seconds/clientgeo/locator"
)

func makeRootContext() (context.Context, context.CancelFunc) {
	rootCtx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)

	go func() {
		for range sigChan {
			cancel()
		}
	}()

	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	return rootCtx, cancel
}

func openDatabase(path string) (locator.Database, error) {
	db, err := locator.OpenGeoDB(path)
	if err != nil {
		return nil, err
	}

	reader, ok := db.(*geodb.Reader)
	if !ok {
		return db, nil
	}

	meta := reader.Metadata()
	log.WithFields(log.Fields{
		"path":        path,
		"type":        meta.DatabaseType,
		"ip_version":  meta.IPVersion,
		"build_epoch": time.Unix(int64(meta.BuildEpoch), 0).UTC(),
	}).Info("Database is opened.")

	return db, nil
}

func makeLazyLocator(conf *config.Config) *locator.Lazy {
	return locator.NewLazy(func() (*locator.Locator, error) {
		return locator.Open(conf.DatabasePath, conf.RootDirectory, openDatabase, conf.CacheSize)
	})
}
