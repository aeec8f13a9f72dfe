package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/box-service/internal/domain/model"
	"github.com/guttosm/box-service/internal/logger"
	"github.com/guttosm/box-service/internal/metrics"
	"github.com/guttosm/box-service/internal/packing"
)

// Recommendation modes, used as metric labels and log fields.
const (
	ModeSingle   = "single"
	ModeMixed    = "mixed"
	ModeEvaluate = "evaluate"
)

// ErrProductNotFound is returned when an item only carries a product code
// and the catalog has no product with that code.
var ErrProductNotFound = errors.New("product not found")

// RecommendationService answers box recommendations for a site's current catalog.
type RecommendationService interface {
	Recommend(ctx context.Context, siteID string, items []model.RequestItem) (model.RecommendationResult, error)
	PackMixed(ctx context.Context, siteID string, items []model.RequestItem) (model.MixedResult, error)
	Evaluate(ctx context.Context, siteID string, items []model.RequestItem) (model.EvaluationResult, error)
}

// RecommendationServiceImpl implements RecommendationService.
type RecommendationServiceImpl struct {
	catalog CatalogService
}

// NewRecommendationService creates a recommendation service over a catalog service.
func NewRecommendationService(catalog CatalogService) *RecommendationServiceImpl {
	return &RecommendationServiceImpl{catalog: catalog}
}

// Recommend ranks the box models that can hold the whole order alone.
// An empty Recommendations list means no single model suffices.
func (s *RecommendationServiceImpl) Recommend(ctx context.Context, siteID string, items []model.RequestItem) (model.RecommendationResult, error) {
	start := time.Now()

	snap, resolved, err := s.prepare(ctx, siteID, items)
	if err != nil {
		metrics.RecordRecommendation(ModeSingle, time.Since(start), outcomeOf(err))
		return model.RecommendationResult{}, err
	}

	result, err := packing.RecommendItems(snap.Models, snap.Stock, resolved)
	if err != nil {
		metrics.RecordRecommendation(ModeSingle, time.Since(start), outcomeOf(err))
		return model.RecommendationResult{}, err
	}

	outcome := metrics.OutcomeSuccess
	if len(result.Recommendations) == 0 {
		outcome = metrics.OutcomeNoCompatibleModel
	} else {
		metrics.RecordBoxesPlanned(ModeSingle, result.Recommendations[0].BoxesRequired)
	}
	metrics.RecordRecommendation(ModeSingle, time.Since(start), outcome)
	s.logComputed(ctx, ModeSingle, siteID, len(resolved), len(snap.Models), start)

	return result, nil
}

// PackMixed spreads the order over several box models. Units no model can
// take are reported per item instead of failing the request.
func (s *RecommendationServiceImpl) PackMixed(ctx context.Context, siteID string, items []model.RequestItem) (model.MixedResult, error) {
	start := time.Now()

	snap, resolved, err := s.prepare(ctx, siteID, items)
	if err != nil {
		metrics.RecordRecommendation(ModeMixed, time.Since(start), outcomeOf(err))
		return model.MixedResult{}, err
	}

	result, err := packing.PackMixedItems(snap.Models, snap.Stock, resolved)
	if err != nil {
		metrics.RecordRecommendation(ModeMixed, time.Since(start), outcomeOf(err))
		return model.MixedResult{}, err
	}

	outcome := metrics.OutcomeSuccess
	if result.Mix.TotalUnmetUnits > 0 {
		outcome = metrics.OutcomePartialCoverage
	}
	metrics.RecordBoxesPlanned(ModeMixed, result.Mix.TotalBoxes)
	metrics.RecordUnmetUnits(result.Mix.TotalUnmetUnits)
	metrics.RecordRecommendation(ModeMixed, time.Since(start), outcome)
	s.logComputed(ctx, ModeMixed, siteID, len(resolved), len(snap.Models), start)

	return result, nil
}

// Evaluate reports, for every model in the snapshot, which items fit and how.
// Models without stock are included; their Stock field is zero.
func (s *RecommendationServiceImpl) Evaluate(ctx context.Context, siteID string, items []model.RequestItem) (model.EvaluationResult, error) {
	start := time.Now()

	snap, resolved, err := s.prepare(ctx, siteID, items)
	if err != nil {
		metrics.RecordRecommendation(ModeEvaluate, time.Since(start), outcomeOf(err))
		return model.EvaluationResult{}, err
	}

	normalized := packing.Normalize(resolved)
	result := model.EvaluationResult{
		Items:       normalized,
		Evaluations: packing.EvaluateAll(snap.Models, snap.Stock, normalized),
	}

	metrics.RecordRecommendation(ModeEvaluate, time.Since(start), metrics.OutcomeSuccess)
	s.logComputed(ctx, ModeEvaluate, siteID, len(resolved), len(snap.Models), start)

	return result, nil
}

// prepare resolves product codes, rejects invalid orders before touching
// stock and takes the catalog snapshot.
func (s *RecommendationServiceImpl) prepare(ctx context.Context, siteID string, items []model.RequestItem) (model.CatalogSnapshot, []model.RequestItem, error) {
	resolved, err := s.resolveProducts(ctx, siteID, items)
	if err != nil {
		return model.CatalogSnapshot{}, nil, err
	}
	if err := packing.ValidateItems(resolved); err != nil {
		return model.CatalogSnapshot{}, nil, err
	}

	snap, err := s.catalog.Snapshot(ctx, siteID)
	if err != nil {
		return model.CatalogSnapshot{}, nil, err
	}
	return snap, resolved, nil
}

// resolveProducts fills dimensions of items that carry only a product code.
// Items with any dimension set are passed through untouched.
func (s *RecommendationServiceImpl) resolveProducts(ctx context.Context, siteID string, items []model.RequestItem) ([]model.RequestItem, error) {
	var codes []string
	for _, item := range items {
		if item.Code != "" && !item.HasDimensions() {
			codes = append(codes, item.Code)
		}
	}
	if len(codes) == 0 {
		return items, nil
	}

	products, err := s.catalog.Products(ctx, siteID, codes)
	if err != nil {
		return nil, err
	}

	out := make([]model.RequestItem, len(items))
	copy(out, items)
	for i := range out {
		if out[i].Code == "" || out[i].HasDimensions() {
			continue
		}
		p, ok := products[out[i].Code]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, out[i].Code)
		}
		out[i].LengthMM = p.LengthMM
		out[i].WidthMM = p.WidthMM
		out[i].HeightMM = p.HeightMM
		if out[i].Name == "" {
			out[i].Name = p.Name
		}
	}
	return out, nil
}

func (s *RecommendationServiceImpl) logComputed(ctx context.Context, mode, siteID string, items, models int, start time.Time) {
	log := logger.Ctx(ctx, siteID)
	log.Debug().
		Str("mode", mode).
		Int("items", items).
		Int("models", models).
		Dur("elapsed", time.Since(start)).
		Msg("Recommendation computed")
}

func outcomeOf(err error) string {
	if errors.Is(err, packing.ErrInvalidInput) || errors.Is(err, ErrProductNotFound) {
		return metrics.OutcomeValidationError
	}
	return metrics.OutcomeCatalogError
}
