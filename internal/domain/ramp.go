package domain

type ComponentType string

const (
	ComponentTypeRamp    ComponentType = "ramp"
	ComponentTypeLanding ComponentType = "landing"
)

// RampComponent is one line of the bill of materials. Width is set only for
// landings.
type RampComponent struct {
	Type     ComponentType `json:"type"`
	Length   float64       `json:"length"`
	Width    *float64      `json:"width,omitempty"`
	Quantity int           `json:"quantity"`
}

func (c *RampComponent) validate() error {
	switch c.Type {
	case ComponentTypeRamp:
		if c.Width != nil {
			return NewValidationError("width", "ramps do not have a width")
		}
	case ComponentTypeLanding:
		if c.Width == nil {
			return NewValidationError("width", "landings require a width")
		}
		if *c.Width <= 0 {
			return NewValidationError("width", "must be positive")
		}
	default:
		return NewValidationError("type", "must be ramp or landing")
	}
	if c.Length <= 0 {
		return NewValidationError("length", "must be positive")
	}
	if c.Quantity < 1 {
		return NewValidationError("quantity", "must be at least 1")
	}
	return nil
}

// matches reports whether two components describe the same part and can be
// collapsed into one entry with an accumulated quantity.
func (c *RampComponent) matches(typ ComponentType, length float64, width *float64) bool {
	if c.Type != typ || c.Length != length {
		return false
	}
	if c.Width == nil || width == nil {
		return c.Width == nil && width == nil
	}
	return *c.Width == *width
}

// RampConfiguration is the bill of materials for one installation.
// TotalLength is derived: it always equals the sum of length x quantity over
// all components and is recomputed on every mutation, never set directly.
type RampConfiguration struct {
	Components  []RampComponent `json:"components"`
	TotalLength float64         `json:"totalLength"`
}

// ComponentPatch is a partial edit of one component. Nil fields are left
// unchanged.
type ComponentPatch struct {
	Type     *ComponentType
	Length   *float64
	Width    *float64
	Quantity *int
}

// AddComponent adds one unit of a part. If an entry for the same
// (type, length, width) already exists its quantity is incremented, otherwise
// a new entry with quantity 1 is appended.
func (rc *RampConfiguration) AddComponent(typ ComponentType, length float64, width *float64) error {
	candidate := RampComponent{Type: typ, Length: length, Width: width, Quantity: 1}
	if err := candidate.validate(); err != nil {
		return err
	}
	for i := range rc.Components {
		if rc.Components[i].matches(typ, length, width) {
			rc.Components[i].Quantity++
			rc.recompute()
			return nil
		}
	}
	rc.Components = append(rc.Components, candidate)
	rc.recompute()
	return nil
}

// RemoveComponent removes one unit of the entry at index; the entry itself is
// dropped when its quantity reaches zero.
func (rc *RampConfiguration) RemoveComponent(index int) error {
	if index < 0 || index >= len(rc.Components) {
		return NewValidationError("index", "component index out of range")
	}
	rc.Components[index].Quantity--
	if rc.Components[index].Quantity < 1 {
		rc.Components = append(rc.Components[:index], rc.Components[index+1:]...)
	}
	rc.recompute()
	return nil
}

// UpdateComponent applies a partial edit to the entry at index. Quantity has a
// floor of 1; the edited component is re-validated as a whole, so switching a
// component to landing without a width is rejected.
func (rc *RampConfiguration) UpdateComponent(index int, patch ComponentPatch) error {
	if index < 0 || index >= len(rc.Components) {
		return NewValidationError("index", "component index out of range")
	}
	edited := rc.Components[index]
	if patch.Type != nil {
		edited.Type = *patch.Type
		if edited.Type == ComponentTypeRamp {
			edited.Width = nil
		}
	}
	if patch.Length != nil {
		edited.Length = *patch.Length
	}
	if patch.Width != nil {
		edited.Width = patch.Width
	}
	if patch.Quantity != nil {
		edited.Quantity = *patch.Quantity
		if edited.Quantity < 1 {
			edited.Quantity = 1
		}
	}
	if err := edited.validate(); err != nil {
		return err
	}
	rc.Components[index] = edited
	rc.recompute()
	return nil
}

// Validate checks an externally supplied configuration and restores the
// TotalLength invariant; client-sent totals are never trusted.
func (rc *RampConfiguration) Validate() error {
	for i := range rc.Components {
		if err := rc.Components[i].validate(); err != nil {
			return err
		}
	}
	rc.recompute()
	return nil
}

// IsEmpty reports whether the configuration has no components yet.
func (rc *RampConfiguration) IsEmpty() bool {
	return len(rc.Components) == 0
}

func (rc *RampConfiguration) recompute() {
	var total float64
	for i := range rc.Components {
		total += rc.Components[i].Length * float64(rc.Components[i].Quantity)
	}
	rc.TotalLength = total
}
