package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"samedayramps-backend/internal/domain"
	"samedayramps-backend/internal/repository"
)

// Pricing variables are a single-row settings table; the fixed id keeps the
// upsert honest.
const pricingVariablesRowID = 1

type pricingVariablesRepository struct {
	db *sql.DB
}

func NewPricingVariablesRepository(db *sql.DB) repository.PricingVariablesRepository {
	return &pricingVariablesRepository{db: db}
}

func (r *pricingVariablesRepository) Get(ctx context.Context) (*domain.PricingVariables, error) {
	query := `SELECT warehouse_address, base_delivery_fee, delivery_fee_per_mile, base_install_fee, install_fee_per_component, rental_rate_per_ft
	          FROM pricing_variables WHERE id = $1`
	vars := &domain.PricingVariables{}
	err := r.db.QueryRowContext(ctx, query, pricingVariablesRowID).Scan(
		&vars.WarehouseAddress, &vars.BaseDeliveryFee, &vars.DeliveryFeePerMile,
		&vars.BaseInstallFee, &vars.InstallFeePerComponent, &vars.RentalRatePerFt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return vars, nil
}

func (r *pricingVariablesRepository) Save(ctx context.Context, vars *domain.PricingVariables) error {
	query := `INSERT INTO pricing_variables (id, warehouse_address, base_delivery_fee, delivery_fee_per_mile, base_install_fee, install_fee_per_component, rental_rate_per_ft, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          ON CONFLICT (id) DO UPDATE SET
	              warehouse_address = EXCLUDED.warehouse_address,
	              base_delivery_fee = EXCLUDED.base_delivery_fee,
	              delivery_fee_per_mile = EXCLUDED.delivery_fee_per_mile,
	              base_install_fee = EXCLUDED.base_install_fee,
	              install_fee_per_component = EXCLUDED.install_fee_per_component,
	              rental_rate_per_ft = EXCLUDED.rental_rate_per_ft,
	              updated_at = EXCLUDED.updated_at`
	_, err := r.db.ExecContext(ctx, query, pricingVariablesRowID,
		vars.WarehouseAddress, vars.BaseDeliveryFee, vars.DeliveryFeePerMile,
		vars.BaseInstallFee, vars.InstallFeePerComponent, vars.RentalRatePerFt, time.Now())
	return err
}
