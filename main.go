package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Arty-Facts/profilecard/internal/card"
	"github.com/Arty-Facts/profilecard/internal/config"
	"github.com/Arty-Facts/profilecard/internal/export"
	"github.com/Arty-Facts/profilecard/internal/models"
	"github.com/Arty-Facts/profilecard/internal/profile"
	"github.com/Arty-Facts/profilecard/internal/render"
	"github.com/Arty-Facts/profilecard/server"
)

var (
	version = "dev"
)

//go:embed static/*
var staticFiles embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Errorf("failed to load config: %w", err))
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	source, err := newSource(cfg)
	if err != nil {
		panic(fmt.Errorf("failed to load profile: %w", err))
	}
	defer source.Close()

	cmd := "serve"
	args := os.Args[1:]
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "serve":
		serve(cfg, source)
	case "export":
		if err := runExport(cfg, source, args); err != nil {
			slog.Error("Export failed", "error", err)
			os.Exit(1)
		}
	case "version":
		fmt.Println(server.FormatBuildVersion(version))
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\nusage: profilecard [serve|export -out DIR|version]\n", cmd)
		os.Exit(2)
	}
}

func newSource(cfg config.Config) (profile.Source, error) {
	if cfg.ProfileFile == "" {
		return profile.NewStatic(models.DefaultProfile())
	}
	return profile.NewFile(cfg.ProfileFile)
}

func serve(cfg config.Config, source profile.Source) {
	srv := server.NewServer(version, cfg, http.FS(staticFiles), source)

	go srv.Start()
	defer srv.Close()

	slog.Info("Started server", slog.String("listen_addr", ":"+cfg.Port), slog.String("layout", cfg.Layout))
	si := make(chan os.Signal, 1)
	signal.Notify(si, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-si
	slog.Info("Shutting down server")
}

func runExport(cfg config.Config, source profile.Source, args []string) error {
	flags := flag.NewFlagSet("export", flag.ContinueOnError)
	out := flags.String("out", "build", "directory to write the site into")
	if err := flags.Parse(args); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	p, err := source.GetProfile(ctx)
	if err != nil {
		return err
	}

	opts := render.Options{StylesheetURL: cfg.StylesheetURL, AssetPrefix: "static/"}
	var pages []export.Page
	for _, name := range card.Layouts() {
		l, err := card.LayoutByName(name)
		if err != nil {
			return err
		}
		pages = append(pages, export.Page{
			Name:      export.PageName(name, cfg.Layout),
			Component: render.Page(p, l, opts),
		})
	}

	assets, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return err
	}
	if err := export.Site(ctx, *out, pages, assets); err != nil {
		return err
	}

	slog.Info("Exported site", slog.String("dir", *out), slog.Int("pages", len(pages)))
	return nil
}
