package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"careercatalyst-engine/internal/config"
	"careercatalyst-engine/internal/events"
	"careercatalyst-engine/internal/localstore"
	"careercatalyst-engine/internal/router"
	"careercatalyst-engine/internal/scheduler"
	"careercatalyst-engine/internal/state"
	"careercatalyst-engine/internal/view"
)

func main() {
	// .env is optional; real env always wins.
	_ = godotenv.Load()

	// The config file lives in the data dir, so the env decides where to
	// bootstrap from; after the overlay the config owns the resolved dir.
	bootDir := os.Getenv("CATALYST_DATA_DIR")
	if bootDir == "" {
		bootDir = "."
	}
	if err := os.MkdirAll(bootDir, 0o755); err != nil {
		log.Fatal(err)
	}

	userCfgPath, err := config.EnsureUserConfig(bootDir)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}
	cfg, err := config.Load(userCfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	config.OverlayEnv(&cfg)
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config invalid: %v", err)
	}

	dataDir := cfg.App.DataDir
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// One session per data dir; two writers racing the same state file
	// would break last-write-wins within a session.
	lock := flock.New(filepath.Join(dataDir, "catalyst.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("lock: %v", err)
	}
	if !locked {
		log.Fatalf("another session already owns %s", dataDir)
	}
	defer func() { _ = lock.Unlock() }()

	db, err := localstore.Open(cfg.DBPath())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	if err := localstore.Migrate(db.Pool); err != nil {
		log.Fatal(err)
	}

	adapter := localstore.NewAdapter(db.Pool)
	initial, restored := adapter.Load()
	if restored {
		log.Printf("[catalyst] restored state (%d applications)", len(initial.Applications))
	} else {
		log.Printf("[catalyst] starting from defaults")
	}

	hub := events.NewHub()
	store := state.New(initial, adapter, hub)

	rt := router.New(store, view.LogRenderer{})
	rt.LiveJobsMax = cfg.LiveJobs.MaxIncrement
	rt.OnExport = func(filename, data string) {
		path := filepath.Join(dataDir, filename)
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			log.Printf("[catalyst] export write failed: %v", err)
			return
		}
		log.Printf("[catalyst] exported %s", path)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		scheduler.Every(ctx, time.Duration(cfg.Timers.LiveUpdateSeconds)*time.Second, "live", func(context.Context) error {
			rt.Dispatch(router.Event{Kind: router.KindLiveTick})
			return nil
		})
		return nil
	})

	g.Go(func() error {
		scheduler.Every(ctx, time.Duration(cfg.Timers.AutosaveSeconds)*time.Second, "autosave", func(context.Context) error {
			store.Flush()
			return nil
		})
		return nil
	})

	// Mirror hub events into the log so a headless run is observable.
	g.Go(func() error {
		ch := hub.Subscribe()
		defer hub.Unsubscribe(ch)
		for {
			select {
			case <-ctx.Done():
				return nil
			case evt := <-ch:
				log.Printf("[events] %s", evt.Encode())
			}
		}
	})

	rt.Dispatch(router.Event{Kind: router.KindSectionSwitch, Section: "dashboard"})
	log.Printf("[catalyst] running (data=%s)", dataDir)

	<-ctx.Done()
	_ = g.Wait()

	rt.Close()
	log.Printf("[catalyst] shut down cleanly")
}
