package domain

import "time"

// Sparse update shapes, one per mutable entity. A nil field was absent from
// the payload and keeps its stored value. The same shapes back full-replace
// updates: the caller fills every field first, applying declared defaults to
// the ones a full replace may omit.
//
// Apply merges the present fields into the loaded entity and returns the
// number of fields actually written, so callers can reject a sparse update
// whose effective set came out empty. Protected fields never count: they may
// be supplied, but only with their stored value, and are then dropped from
// the write set.

// CustomerUpdate carries the mutable customer fields. Password must already
// be a digest when Apply is called; the plaintext never reaches the entity.
type CustomerUpdate struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Address  *string `json:"address"`
}

// Apply merges the present fields into c.
func (u *CustomerUpdate) Apply(c *Customer) int {
	n := 0
	if u.Name != nil {
		c.Name = *u.Name
		n++
	}
	if u.Email != nil {
		c.Email = *u.Email
		n++
	}
	if u.Password != nil {
		c.Password = *u.Password
		n++
	}
	if u.Address != nil {
		c.Address = *u.Address
		n++
	}
	return n
}

// ServiceUpdate carries the mutable service request fields. Type is
// protected: it can be echoed back unchanged but never altered, since the
// existing child repairs or items would be stranded under the wrong kind.
type ServiceUpdate struct {
	Type      *ServiceType `json:"type"`
	TotalCost *float64     `json:"total_cost"`
}

// Apply merges the present fields into s.
func (u *ServiceUpdate) Apply(s *ServiceRequest) (int, error) {
	if u.Type != nil && *u.Type != s.Type {
		return 0, BadRequest("service type cannot be changed after creation")
	}
	n := 0
	if u.TotalCost != nil {
		s.TotalCost = *u.TotalCost
		n++
	}
	return n, nil
}

// ProductUpdate carries the mutable product fields.
type ProductUpdate struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price"`
	StockQuantity *int     `json:"stock_quantity"`
}

// Apply merges the present fields into p.
func (u *ProductUpdate) Apply(p *Product) int {
	n := 0
	if u.Name != nil {
		p.Name = *u.Name
		n++
	}
	if u.Description != nil {
		p.Description = *u.Description
		n++
	}
	if u.Price != nil {
		p.Price = *u.Price
		n++
	}
	if u.StockQuantity != nil {
		p.StockQuantity = *u.StockQuantity
		n++
	}
	return n
}

// VariantUpdate carries the mutable product variant fields.
type VariantUpdate struct {
	Size          *string `json:"size"`
	Color         *string `json:"color"`
	StockQuantity *int    `json:"stock_quantity"`
}

// Apply merges the present fields into v.
func (u *VariantUpdate) Apply(v *ProductVariant) int {
	n := 0
	if u.Size != nil {
		v.Size = *u.Size
		n++
	}
	if u.Color != nil {
		v.Color = *u.Color
		n++
	}
	if u.StockQuantity != nil {
		v.StockQuantity = *u.StockQuantity
		n++
	}
	return n
}

// RepairUpdate carries the mutable repair fields. A present status runs the
// transition rules in ApplyStatus; an absent one leaves the derived
// timestamps untouched.
type RepairUpdate struct {
	Description *string       `json:"description"`
	Status      *RepairStatus `json:"status"`
}

// Apply merges the present fields into r, stamping derived timestamps
// against now.
func (u *RepairUpdate) Apply(r *Repair, now time.Time) int {
	n := 0
	if u.Description != nil {
		r.Description = *u.Description
		n++
	}
	if u.Status != nil {
		r.ApplyStatus(*u.Status, now)
		n++
	}
	return n
}

// ItemUpdate carries the mutable item request fields. ProductVariantID is
// protected: it may be echoed back unchanged but never altered after
// creation.
type ItemUpdate struct {
	ProductVariantID *uint    `json:"product_variant_id"`
	Quantity         *int     `json:"quantity"`
	UnitPrice        *float64 `json:"unit_price"`
}

// Apply merges the present fields into it.
func (u *ItemUpdate) Apply(it *ItemRequest) (int, error) {
	if u.ProductVariantID != nil && *u.ProductVariantID != it.ProductVariantID {
		return 0, BadRequest("product variant cannot be changed after creation")
	}
	n := 0
	if u.Quantity != nil {
		it.Quantity = *u.Quantity
		n++
	}
	if u.UnitPrice != nil {
		it.UnitPrice = *u.UnitPrice
		n++
	}
	return n, nil
}
