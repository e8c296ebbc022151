package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"concurso-hunter/internal/cache"
	"concurso-hunter/internal/config"
	"concurso-hunter/internal/listing"
	"concurso-hunter/internal/reporter"
	"concurso-hunter/internal/scheduler"
	"concurso-hunter/internal/scraper"
)

const topN = 10

func main() {
	daemon := flag.Bool("daemon", false, "keep running and refresh on the configured interval")
	flag.Parse()

	cfg := config.Load()
	log.Printf("🔧 config loaded. upstream: %s", cfg.UpstreamURL)

	fetcher := scraper.NewFetcher(cfg.UpstreamURL, time.Duration(cfg.FetchTimeoutSeconds)*time.Second)
	manager := cache.NewManager(cfg.CachePath, time.Duration(cfg.CacheTTLSeconds)*time.Second, fetcher.FetchBlocks)

	rep, err := reporter.NewTelegramReporter(cfg)
	if err != nil {
		log.Printf("⚠️ telegram reporter disabled: %v", err)
	}

	if *daemon {
		sched := scheduler.New(manager, rep, cfg.RefreshIntervalHours)
		if err := sched.Start(context.Background()); err != nil {
			log.Fatalf("❌ failed to start scheduler: %v", err)
		}
		defer sched.Stop()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		log.Println("👋 shutting down")
		return
	}

	//one-shot refresh
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	records := manager.GetRecords(ctx, true)
	if len(records) == 0 {
		log.Println("❌ refresh produced no records and no stale snapshot exists")
		_ = rep.SendError(fmt.Errorf("raspagem não retornou dados"))
		os.Exit(1)
	}

	log.Printf("✅ %d concursos abertos em cache", len(records))
	top := make([]listing.DisplayRecord, 0, topN)
	for i, rec := range records {
		if i == topN {
			break
		}
		d := rec.Display()
		top = append(top, d)
		log.Printf("  %2d. %s | %s | até %s", i+1, d.Salary, d.Region, d.Deadline)
	}

	if err := rep.SendRefreshSummary(len(records), top[:min(len(top), 5)]); err != nil {
		log.Printf("⚠️ telegram summary failed: %v", err)
	}
}
