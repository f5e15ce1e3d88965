package main

import log "github.com/sirupsen/logrus"

func setupLogging(debug bool) {
	log.SetFormatter(&log.TextFormatter{})

	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}
