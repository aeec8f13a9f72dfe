package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/guttosm/box-service/internal/domain/model"
	"github.com/guttosm/box-service/internal/logger"
	"github.com/guttosm/box-service/internal/packing"
	"github.com/guttosm/box-service/internal/repository"
	"github.com/guttosm/box-service/internal/service"
	"gopkg.in/yaml.v3"
)

const version = "1.0.0"

// order is the YAML order file.
//
//	site: S1
//	items:
//	  - codigo: P-1
//	    cantidad: 4
//	  - largo_mm: 300
//	    ancho_mm: 200
//	    alto_mm: 150
//	    cantidad: 2
type order struct {
	Site  string              `yaml:"site"`
	Items []model.RequestItem `yaml:"items"`
}

// validation is the output of the validate command.
type validation struct {
	Site       string `json:"site_id"`
	Items      int    `json:"items"`
	TotalUnits int    `json:"total_unidades"`
	Valid      bool   `json:"valid"`
	Error      string `json:"error,omitempty"`
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	app := kingpin.New("boxctl", "Offline box recommendations over a YAML catalog seed.")
	app.Version(version)
	app.Writer(stdout)
	app.ErrorWriter(stderr)
	app.UsageWriter(stderr)
	app.Terminate(nil)

	seedPath := app.Flag("catalog", "YAML catalog seed file.").Short('c').Envar("BOXCTL_CATALOG").Required().ExistingFile()
	site := app.Flag("site", "Site id; overrides the order file.").String()
	logLevel := app.Flag("log-level", "Log level.").Default("warn").Enum("debug", "info", "warn", "error")

	recommendCmd := app.Command("recommend", "Rank the box models that hold the whole order on their own.")
	recommendOrder := recommendCmd.Arg("order", "YAML order file.").Required().ExistingFile()

	mixCmd := app.Command("mix", "Pack the order over several box models within stock.")
	mixOrder := mixCmd.Arg("order", "YAML order file.").Required().ExistingFile()

	evaluateCmd := app.Command("evaluate", "Show every box model's fit for each item.")
	evaluateOrder := evaluateCmd.Arg("order", "YAML order file.").Required().ExistingFile()

	validateCmd := app.Command("validate", "Check an order against the seed without packing it.")
	validateOrder := validateCmd.Arg("order", "YAML order file.").Required().ExistingFile()

	command, err := app.Parse(args)
	if err != nil {
		app.Errorf("%s", err)
		return err
	}
	logger.InitWithWriter(stderr, *logLevel, true)

	seed, err := repository.LoadSeed(*seedPath)
	if err != nil {
		app.Errorf("%s", err)
		return err
	}
	catalog := service.NewCatalogService(repository.NewMemoryCatalog(seed), service.WithBackendName("seed"))
	recommender := service.NewRecommendationService(catalog)

	var orderPath string
	switch command {
	case recommendCmd.FullCommand():
		orderPath = *recommendOrder
	case mixCmd.FullCommand():
		orderPath = *mixOrder
	case evaluateCmd.FullCommand():
		orderPath = *evaluateOrder
	case validateCmd.FullCommand():
		orderPath = *validateOrder
	}

	o, err := loadOrder(orderPath)
	if err != nil {
		app.Errorf("%s", err)
		return err
	}
	siteID, err := resolveSite(*site, o.Site, seed)
	if err != nil {
		app.Errorf("%s", err)
		return err
	}

	var result interface{}
	switch command {
	case recommendCmd.FullCommand():
		result, err = recommender.Recommend(ctx, siteID, o.Items)
	case mixCmd.FullCommand():
		result, err = recommender.PackMixed(ctx, siteID, o.Items)
	case evaluateCmd.FullCommand():
		result, err = recommender.Evaluate(ctx, siteID, o.Items)
	case validateCmd.FullCommand():
		result, err = validate(ctx, recommender, siteID, o.Items)
	}
	if err != nil {
		app.Errorf("%s", err)
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func loadOrder(path string) (*order, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read order %s: %w", path, err)
	}
	var o order
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("parse order %s: %w", path, err)
	}
	return &o, nil
}

// resolveSite picks the flag, then the order file, then the only site of the seed.
func resolveSite(flag, fromOrder string, seed *repository.Seed) (string, error) {
	switch {
	case flag != "":
		return flag, nil
	case fromOrder != "":
		return fromOrder, nil
	case len(seed.Sites) == 1:
		return seed.Sites[0].ID, nil
	default:
		return "", errors.New("no site given and the seed holds more than one site; use --site")
	}
}

// validate runs the diagnostic evaluation and reports input problems as data
// instead of failing the command.
func validate(ctx context.Context, recommender service.RecommendationService, siteID string, items []model.RequestItem) (validation, error) {
	out := validation{Site: siteID, Items: len(items)}
	res, err := recommender.Evaluate(ctx, siteID, items)
	switch {
	case err == nil:
		out.Valid = true
		out.TotalUnits, _ = packing.Totals(res.Items)
	case errors.Is(err, packing.ErrInvalidInput), errors.Is(err, service.ErrProductNotFound):
		out.Error = err.Error()
	default:
		return out, err
	}
	return out, nil
}
