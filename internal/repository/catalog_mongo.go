package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/box-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StockStateAvailable marks a physical box unit that is in the warehouse and unreserved.
const StockStateAvailable = "available"

type boxModelDocument struct {
	SiteID         string `bson:"site_id"`
	model.BoxModel `bson:",inline"`
	Active         bool      `bson:"active"`
	UpdatedAt      time.Time `bson:"updated_at"`
}

type boxUnitDocument struct {
	SiteID  string `bson:"site_id"`
	ModelID string `bson:"model_id"`
	Serial  string `bson:"serial"`
	State   string `bson:"state"`
}

type productDocument struct {
	SiteID        string `bson:"site_id"`
	model.Product `bson:",inline"`
}

// MongoCatalog reads box models, box units and products from MongoDB.
type MongoCatalog struct {
	models   *mongo.Collection
	stock    *mongo.Collection
	products *mongo.Collection
}

// NewMongoCatalog creates a catalog gateway over the box_models, box_stock and products collections.
func NewMongoCatalog(db *MongoDB) *MongoCatalog {
	return &MongoCatalog{
		models:   db.BoxModels,
		stock:    db.BoxStock,
		products: db.Products,
	}
}

// FetchCompatibleModels returns the active models at a site with positive dimensions, ordered by id.
func (c *MongoCatalog) FetchCompatibleModels(ctx context.Context, siteID string) ([]model.BoxModel, error) {
	filter := bson.M{
		"site_id":     siteID,
		"active":      true,
		"frente_mm":   bson.M{"$gt": 0},
		"profundo_mm": bson.M{"$gt": 0},
		"alto_mm":     bson.M{"$gt": 0},
	}
	cursor, err := c.models.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "model_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find box models: %w", err)
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []boxModelDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode box models: %w", err)
	}

	out := make([]model.BoxModel, len(docs))
	for i, d := range docs {
		out[i] = d.BoxModel
	}
	return out, nil
}

// FetchAvailableStock counts the units of a model in the available state.
func (c *MongoCatalog) FetchAvailableStock(ctx context.Context, siteID, modelID string) (int, error) {
	n, err := c.stock.CountDocuments(ctx, bson.M{
		"site_id":  siteID,
		"model_id": modelID,
		"state":    StockStateAvailable,
	})
	if err != nil {
		return 0, fmt.Errorf("count box stock: %w", err)
	}
	return int(n), nil
}

// FetchProducts returns the products among codes known at the site.
func (c *MongoCatalog) FetchProducts(ctx context.Context, siteID string, codes []string) (map[string]model.Product, error) {
	out := make(map[string]model.Product, len(codes))
	if len(codes) == 0 {
		return out, nil
	}

	cursor, err := c.products.Find(ctx, bson.M{"site_id": siteID, "code": bson.M{"$in": codes}})
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	for _, d := range docs {
		out[d.Code] = d.Product
	}
	return out, nil
}

// Import upserts the models and products of seed and replaces the box units of
// every seeded model with Stock available units.
func (c *MongoCatalog) Import(ctx context.Context, seed *Seed) error {
	now := time.Now().UTC()
	for _, site := range seed.Sites {
		for _, m := range site.Models {
			doc := boxModelDocument{SiteID: site.ID, BoxModel: m.BoxModel, Active: m.IsActive(), UpdatedAt: now}
			_, err := c.models.ReplaceOne(ctx,
				bson.M{"site_id": site.ID, "model_id": m.ModelID},
				doc,
				options.Replace().SetUpsert(true),
			)
			if err != nil {
				return fmt.Errorf("upsert model %s/%s: %w", site.ID, m.ModelID, err)
			}
			if err := c.replaceUnits(ctx, site.ID, m.ModelID, m.Stock); err != nil {
				return err
			}
		}
		for _, p := range site.Products {
			_, err := c.products.ReplaceOne(ctx,
				bson.M{"site_id": site.ID, "code": p.Code},
				productDocument{SiteID: site.ID, Product: p},
				options.Replace().SetUpsert(true),
			)
			if err != nil {
				return fmt.Errorf("upsert product %s/%s: %w", site.ID, p.Code, err)
			}
		}
	}
	return nil
}

func (c *MongoCatalog) replaceUnits(ctx context.Context, siteID, modelID string, available int) error {
	if _, err := c.stock.DeleteMany(ctx, bson.M{"site_id": siteID, "model_id": modelID}); err != nil {
		return fmt.Errorf("clear stock %s/%s: %w", siteID, modelID, err)
	}
	if available <= 0 {
		return nil
	}

	units := make([]interface{}, available)
	for i := range units {
		units[i] = boxUnitDocument{
			SiteID:  siteID,
			ModelID: modelID,
			Serial:  fmt.Sprintf("%s-%04d", modelID, i+1),
			State:   StockStateAvailable,
		}
	}
	if _, err := c.stock.InsertMany(ctx, units); err != nil {
		return fmt.Errorf("insert stock %s/%s: %w", siteID, modelID, err)
	}
	return nil
}
