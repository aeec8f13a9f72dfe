package repository

import (
	"context"
	"fmt"

	"github.com/guttosm/box-service/internal/domain/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	selectCompatibleModels = `
SELECT model_id, name, frente_mm, profundo_mm, alto_mm
FROM box_models
WHERE site_id = $1 AND active AND frente_mm > 0 AND profundo_mm > 0 AND alto_mm > 0
ORDER BY model_id`

	countAvailableStock = `
SELECT count(*)
FROM box_stock
WHERE site_id = $1 AND model_id = $2 AND state = 'available'`

	selectProducts = `
SELECT code, name, length_mm, width_mm, height_mm
FROM products
WHERE site_id = $1 AND code = ANY($2)`
)

// PostgresCatalog reads the catalog tables of one tenant schema.
type PostgresCatalog struct {
	pool *pgxpool.Pool
}

// NewPostgresCatalog creates a catalog gateway over a pool from NewPostgresPool.
func NewPostgresCatalog(pool *pgxpool.Pool) *PostgresCatalog {
	return &PostgresCatalog{pool: pool}
}

// FetchCompatibleModels returns the active models at a site with positive dimensions, ordered by id.
func (c *PostgresCatalog) FetchCompatibleModels(ctx context.Context, siteID string) ([]model.BoxModel, error) {
	rows, err := c.pool.Query(ctx, selectCompatibleModels, siteID)
	if err != nil {
		return nil, fmt.Errorf("query box models: %w", err)
	}

	models, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.BoxModel, error) {
		var (
			m                      model.BoxModel
			frente, profundo, alto decimal.Decimal
		)
		if err := row.Scan(&m.ModelID, &m.Name, &frente, &profundo, &alto); err != nil {
			return m, err
		}
		m.FrenteMM = frente.InexactFloat64()
		m.ProfundoMM = profundo.InexactFloat64()
		m.AltoMM = alto.InexactFloat64()
		return m, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan box models: %w", err)
	}
	return models, nil
}

// FetchAvailableStock counts the units of a model in the available state.
func (c *PostgresCatalog) FetchAvailableStock(ctx context.Context, siteID, modelID string) (int, error) {
	var n int64
	if err := c.pool.QueryRow(ctx, countAvailableStock, siteID, modelID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count box stock: %w", err)
	}
	return int(n), nil
}

// FetchProducts returns the products among codes known at the site.
func (c *PostgresCatalog) FetchProducts(ctx context.Context, siteID string, codes []string) (map[string]model.Product, error) {
	out := make(map[string]model.Product, len(codes))
	if len(codes) == 0 {
		return out, nil
	}

	rows, err := c.pool.Query(ctx, selectProducts, siteID, codes)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			p                     model.Product
			length, width, height decimal.Decimal
		)
		if err := rows.Scan(&p.Code, &p.Name, &length, &width, &height); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.LengthMM = length.InexactFloat64()
		p.WidthMM = width.InexactFloat64()
		p.HeightMM = height.InexactFloat64()
		out[p.Code] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read products: %w", err)
	}
	return out, nil
}

// Import upserts the models and products of seed in one transaction and
// replaces the box units of every seeded model with Stock available units.
func (c *PostgresCatalog) Import(ctx context.Context, seed *Seed) error {
	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	batch := &pgx.Batch{}
	for _, site := range seed.Sites {
		for _, m := range site.Models {
			batch.Queue(`
INSERT INTO box_models (site_id, model_id, name, frente_mm, profundo_mm, alto_mm, active, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now())
ON CONFLICT (site_id, model_id) DO UPDATE SET
    name = EXCLUDED.name, frente_mm = EXCLUDED.frente_mm, profundo_mm = EXCLUDED.profundo_mm,
    alto_mm = EXCLUDED.alto_mm, active = EXCLUDED.active, updated_at = now()`,
				site.ID, m.ModelID, m.Name,
				decimal.NewFromFloat(m.FrenteMM), decimal.NewFromFloat(m.ProfundoMM), decimal.NewFromFloat(m.AltoMM),
				m.IsActive())
			batch.Queue(`DELETE FROM box_stock WHERE site_id = $1 AND model_id = $2`, site.ID, m.ModelID)
			batch.Queue(`
INSERT INTO box_stock (site_id, model_id, serial, state)
SELECT $1, $2, $2 || '-' || lpad(g::text, 4, '0'), 'available'
FROM generate_series(1, $3::int) AS g`,
				site.ID, m.ModelID, max(0, m.Stock))
		}
		for _, p := range site.Products {
			batch.Queue(`
INSERT INTO products (site_id, code, name, length_mm, width_mm, height_mm)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (site_id, code) DO UPDATE SET
    name = EXCLUDED.name, length_mm = EXCLUDED.length_mm,
    width_mm = EXCLUDED.width_mm, height_mm = EXCLUDED.height_mm`,
				site.ID, p.Code, p.Name,
				decimal.NewFromFloat(p.LengthMM), decimal.NewFromFloat(p.WidthMM), decimal.NewFromFloat(p.HeightMM))
		}
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("import catalog: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}
