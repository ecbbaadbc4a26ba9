package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"house-price/internal/artifact"
	"house-price/internal/config"
	"house-price/internal/db"
	"house-price/internal/features"
	"house-price/internal/form"
	"house-price/internal/repository"
	"house-price/internal/service"
)

const (
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorReset  = "\033[0m"
)

func main() {
	publish := flag.Bool("publish", false, "tras un chequeo exitoso, registra ARTIFACT_PATH en model_artifacts")
	flag.Parse()

	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	if *publish {
		// Se publica el archivo local, así que es el archivo lo que se chequea.
		cfg.ArtifactSource = config.ArtifactSourceFile
	}

	loaded, err := artifact.LoadConfigured(ctx, cfg, zap.NewNop())
	if err != nil {
		log.Fatalf("load artifact: %v", err)
	}
	schema := loaded.Artifact.Schema()

	fmt.Printf("%s[Artifact]%s %s v%s (%s, %d columns)\n", colorCyan, colorReset,
		loaded.Artifact.Name, loaded.Artifact.Version, loaded.Artifact.Pipeline.Kind, schema.Len())
	printCoverage(os.Stdout, features.Coverage(schema))

	svc := service.NewPredictionService(zap.NewNop(), schema, loaded.Predictor, service.NewPriceFormatter(cfg.CurrencySymbol), loaded.Artifact.Name)
	estimate, err := svc.Predict(ctx, form.Defaults())
	if err != nil {
		log.Fatalf("smoke prediction failed: %v", err)
	}
	fmt.Printf("%s[Smoke]%s default form → %s\n", colorGreen, colorReset, estimate.FormattedPrice)

	if *publish {
		if err := publishArtifact(ctx, cfg); err != nil {
			log.Fatalf("publish artifact: %v", err)
		}
	}
}

func publishArtifact(ctx context.Context, cfg *config.Config) error {
	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()
	if err := db.Ping(ctx, pool); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}
	return publishChecked(ctx, os.Stdout, repository.NewPgArtifactRepository(pool), cfg.ArtifactPath, time.Now())
}

func publishChecked(ctx context.Context, out io.Writer, store artifact.RecordPublisher, path string, now time.Time) error {
	rec, err := artifact.Publish(ctx, store, path, now)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s[Published]%s %s v%s id=%s\n", colorGreen, colorReset, rec.Name, rec.Version, rec.ID)
	return nil
}

func printCoverage(out io.Writer, report features.CoverageReport) {
	fmt.Fprintf(out, "%s[Populated]%s %d: %s\n", colorGreen, colorReset, len(report.Populated), joinOrDash(report.Populated))
	fmt.Fprintf(out, "%s[Imputed]%s %d: %s\n", colorCyan, colorReset, len(report.Imputed), joinOrDash(report.Imputed))
	fmt.Fprintf(out, "%s[Dropped]%s %d: %s\n", colorYellow, colorReset, len(report.Dropped), joinOrDash(report.Dropped))
}

func joinOrDash(cols []string) string {
	if len(cols) == 0 {
		return "-"
	}
	return strings.Join(cols, ", ")
}
