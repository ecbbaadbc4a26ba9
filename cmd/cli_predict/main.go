package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"house-price/internal/artifact"
	"house-price/internal/config"
	"house-price/internal/domain"
	"house-price/internal/features"
	"house-price/internal/form"
	"house-price/internal/service"
)

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	svc, err := newPredictionService(ctx, cfg, logger)
	if err != nil {
		log.Fatal(err)
	}

	in := form.Defaults()
	for {
		fmt.Println("\n===== Housing Price Predictor =====")
		in = readInputs(reader, os.Stdout, in)
		preview := svc.Preview(in)
		fmt.Printf("Computed rooms_total = %d  •  Amenity Access Index ≈ %s\n", preview.RoomsTotal, preview.AmenityDisplay)

		fmt.Println("[P] Predecir precio")
		fmt.Println("[E] Editar de nuevo")
		fmt.Println("[S] Salir")
		fmt.Print("Selecciona una opcion: ")
		choice, err := reader.ReadString('\n')
		if err == io.EOF {
			return
		}
		switch strings.ToUpper(strings.TrimSpace(choice)) {
		case "P", "":
			estimate, err := svc.Predict(ctx, in)
			if err != nil {
				fmt.Printf("Prediccion fallida: %v\n", err)
				continue
			}
			printEstimate(os.Stdout, estimate)
		case "E":
			continue
		case "S":
			return
		default:
			fmt.Println("Opcion invalida.")
		}
	}
}

// newPredictionService carga el artefacto configurado y arma el servicio de estimación.
func newPredictionService(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*service.PredictionService, error) {
	loaded, err := artifact.LoadConfigured(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	schema := loaded.Artifact.Schema()
	service.LogCoverage(logger, schema)
	return service.NewPredictionService(logger, schema, loaded.Predictor, service.NewPriceFormatter(cfg.CurrencySymbol), loaded.Artifact.Name), nil
}

// readInputs pide cada campo mostrando el valor actual; Enter lo conserva.
func readInputs(reader *bufio.Reader, out io.Writer, current features.Inputs) features.Inputs {
	in := current
	for _, f := range form.Fields {
		prompt := fmt.Sprintf("%s [%s-%s] (%s): ", f.Label, f.Format(f.Min), f.Format(f.Max), f.Format(f.Get(in)))
		f.Set(&in, readFloatDefault(reader, out, prompt, f.Get(in)))
	}
	in.PropertyType = features.PropertyType(readChoice(reader, out, "Property type", propertyTypeLabels(), string(in.PropertyType)))
	in.SaleMethod = features.SaleMethod(readChoice(reader, out, "Sale method", saleMethodLabels(), string(in.SaleMethod)))
	return form.Clamp(in)
}

func readFloatDefault(reader *bufio.Reader, out io.Writer, prompt string, def float64) float64 {
	for {
		fmt.Fprint(out, prompt)
		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" {
			return def
		}
		v, parseErr := strconv.ParseFloat(line, 64)
		if parseErr == nil {
			return v
		}
		if err != nil {
			return def
		}
		fmt.Fprintln(out, "Numero invalido.")
	}
}

func readChoice(reader *bufio.Reader, out io.Writer, title string, labels []string, def string) string {
	fmt.Fprintf(out, "%s:\n", title)
	for i, l := range labels {
		marker := " "
		if l == def {
			marker = "*"
		}
		fmt.Fprintf(out, " %s[%d] %s\n", marker, i+1, l)
	}
	for {
		fmt.Fprint(out, "Selecciona (Enter = actual): ")
		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" {
			return def
		}
		if idx, convErr := strconv.Atoi(line); convErr == nil && idx >= 1 && idx <= len(labels) {
			return labels[idx-1]
		}
		for _, l := range labels {
			if strings.EqualFold(l, line) {
				return l
			}
		}
		if err != nil {
			return def
		}
		fmt.Fprintln(out, "Seleccion invalida.")
	}
}

func propertyTypeLabels() []string {
	labels := make([]string, 0, len(features.PropertyTypes))
	for _, p := range features.PropertyTypes {
		labels = append(labels, string(p))
	}
	return labels
}

func saleMethodLabels() []string {
	labels := make([]string, 0, len(features.SaleMethods))
	for _, m := range features.SaleMethods {
		labels = append(labels, string(m))
	}
	return labels
}

func printEstimate(out io.Writer, est domain.Estimate) {
	fmt.Fprintf(out, "\nEstimated price: %s\n", est.FormattedPrice)
	fmt.Fprintln(out, "Model input (non-missing fields):")
	width := 0
	for _, f := range est.Inputs {
		if len(f.Name) > width {
			width = len(f.Name)
		}
	}
	for _, f := range est.Inputs {
		fmt.Fprintf(out, "  %-*s  %s\n", width, f.Name, strconv.FormatFloat(f.Value, 'g', -1, 64))
	}
}
