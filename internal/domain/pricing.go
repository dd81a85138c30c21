package domain

// PricingCalculations is the priced result for one quote. It is produced only
// by the external pricing engine and never computed or adjusted locally;
// TotalUpfront is the engine's function of delivery and install fees.
type PricingCalculations struct {
	DeliveryFee       float64 `json:"deliveryFee"`
	InstallFee        float64 `json:"installFee"`
	MonthlyRentalRate float64 `json:"monthlyRentalRate"`
	TotalUpfront      float64 `json:"totalUpfront"`
	Distance          float64 `json:"distance"`
	WarehouseAddress  string  `json:"warehouseAddress"`
}

// PricingVariables are the staff-tunable inputs the pricing engine works
// from. The warehouse address here is the origin for distance calculations
// and is cached by the repricer once read.
type PricingVariables struct {
	WarehouseAddress       string  `json:"warehouseAddress"`
	BaseDeliveryFee        float64 `json:"baseDeliveryFee"`
	DeliveryFeePerMile     float64 `json:"deliveryFeePerMile"`
	BaseInstallFee         float64 `json:"baseInstallFee"`
	InstallFeePerComponent float64 `json:"installFeePerComponent"`
	RentalRatePerFt        float64 `json:"rentalRatePerFt"`
}

// Validate checks the settings before they are stored.
func (v *PricingVariables) Validate() error {
	if v.WarehouseAddress == "" {
		return NewValidationError("warehouseAddress", "is required")
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"baseDeliveryFee", v.BaseDeliveryFee},
		{"deliveryFeePerMile", v.DeliveryFeePerMile},
		{"baseInstallFee", v.BaseInstallFee},
		{"installFeePerComponent", v.InstallFeePerComponent},
		{"rentalRatePerFt", v.RentalRatePerFt},
	} {
		if f.value < 0 {
			return NewValidationError(f.name, "must not be negative")
		}
	}
	return nil
}
