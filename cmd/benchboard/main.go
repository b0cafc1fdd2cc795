// Copyright 2025 The Benchboard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchboard runs an HTTP server for interactive benchmark report
// comparison.
//
// Usage:
//
//	benchboard [-addr address] [-config file] [-watch]
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"golang.org/x/net/context"

	_ "github.com/mattn/go-sqlite3"

	"github.com/benchboard/benchboard/app"
	"github.com/benchboard/benchboard/benchdb"
	"github.com/benchboard/benchboard/config"
	"github.com/benchboard/benchboard/report"
)

var (
	addr       = flag.String("addr", "", "serve HTTP on `address`, overriding the manifest")
	configPath = flag.String("config", "benchboard.yaml", "load manifest from `file`")
	dataDir    = flag.String("data", "", "read report files from `dir`, overriding the manifest")
	watch      = flag.Bool("watch", false, "reload reports when their files change")
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage of benchboard:
	benchboard [flags]
`)
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetPrefix("benchboard: ")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	data, err := report.Load(cfg.Sources())
	if err != nil {
		log.Fatal(err)
	}

	db, err := benchdb.Open("sqlite3", ":memory:")
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	a, err := app.New(data, db)
	if err != nil {
		log.Fatal(err)
	}
	a.RegisterOnMux(http.DefaultServeMux)
	log.Printf("loaded %d records from %d reports", len(data.Records), len(cfg.Reports))

	if *watch {
		go watchReports(cfg, a)
	}

	log.Printf("Listening on %s", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, nil))
}

// watchReports reloads the report files each time one changes. A
// reload that fails keeps the previously served data.
func watchReports(cfg *config.Config, a *app.App) {
	err := cfg.Watch(context.Background(), func() {
		data, err := report.Load(cfg.Sources())
		if err != nil {
			log.Printf("reloading reports: %v", err)
			return
		}
		if err := a.SetData(context.Background(), data); err != nil {
			log.Printf("reloading reports: %v", err)
			return
		}
		log.Printf("reloaded %d records", len(data.Records))
	})
	if err != nil && err != context.Canceled {
		log.Printf("watching reports: %v", err)
	}
}
