package service

import (
	"context"
	"errors"
	"sync"

	"samedayramps-backend/internal/domain"
	"samedayramps-backend/internal/integrations/pricingengine"
	"samedayramps-backend/internal/logger"
	"samedayramps-backend/internal/repository"
)

type settingsService struct {
	varsRepo repository.PricingVariablesRepository
	engine   PricingEngine

	mu        sync.RWMutex
	warehouse string
	loaded    bool
}

func NewSettingsService(varsRepo repository.PricingVariablesRepository, engine PricingEngine) SettingsService {
	return &settingsService{
		varsRepo: varsRepo,
		engine:   engine,
	}
}

func (s *settingsService) GetPricingVariables(ctx context.Context) (*domain.PricingVariables, error) {
	return s.varsRepo.Get(ctx)
}

func (s *settingsService) SavePricingVariables(ctx context.Context, vars *domain.PricingVariables) (*domain.PricingVariables, error) {
	if err := vars.Validate(); err != nil {
		return nil, err
	}
	if err := s.varsRepo.Save(ctx, vars); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.warehouse = vars.WarehouseAddress
	s.loaded = true
	s.mu.Unlock()

	logger.Info("pricing variables updated", "warehouse_address", vars.WarehouseAddress)
	return vars, nil
}

func (s *settingsService) WarehouseAddress(ctx context.Context) (string, error) {
	s.mu.RLock()
	if s.loaded {
		addr := s.warehouse
		s.mu.RUnlock()
		return addr, nil
	}
	s.mu.RUnlock()

	vars, err := s.varsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Pricing variables not configured yet.
			return "", nil
		}
		return "", err
	}

	s.mu.Lock()
	s.warehouse = vars.WarehouseAddress
	s.loaded = true
	s.mu.Unlock()
	return vars.WarehouseAddress, nil
}

// CalculatePricing runs an ad-hoc calculation for the staff quote builder,
// without touching any stored quote.
func (s *settingsService) CalculatePricing(ctx context.Context, cfg domain.RampConfiguration, installAddress string) (*domain.PricingCalculations, error) {
	if installAddress == "" {
		return nil, domain.NewValidationError("installAddress", "is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	warehouse, err := s.WarehouseAddress(ctx)
	if err != nil {
		return nil, err
	}

	calcs, err := s.engine.Calculate(ctx, cfg, installAddress, warehouse)
	if err != nil {
		if errors.Is(err, pricingengine.ErrBadRequest) {
			return nil, domain.NewValidationError("rampConfiguration", "rejected by pricing engine")
		}
		return nil, &domain.CollaboratorError{Service: "pricing engine", Err: err}
	}
	return calcs, nil
}
