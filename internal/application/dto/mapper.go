package dto

import (
	"time"

	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/internal/domain/membership"
)

// ── Mappers entidad → DTO compartidos entre casos de uso ─────────────────────

func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		FullName:   u.FullName,
		Email:      u.Email,
		Phone:      u.Phone,
		Role:       string(u.Role),
		OutletID:   u.OutletID,
		OutletName: u.OutletName,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt,
	}
}

func ToOutletResponse(o *entity.Outlet) OutletResponse {
	return OutletResponse{
		ID:          o.ID,
		Name:        o.Name,
		Address:     o.Address,
		Phone:       o.Phone,
		ManagerName: o.ManagerName,
		IsActive:    o.IsActive,
		CreatedAt:   o.CreatedAt,
	}
}

func ToServiceResponse(s *entity.Service) ServiceResponse {
	bom := make([]BOMLineDTO, 0, len(s.BOM))
	for _, l := range s.BOM {
		bom = append(bom, BOMLineDTO(l))
	}
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		Category:        s.Category,
		CommissionRate:  s.CommissionRate,
		BOM:             bom,
		ImageURL:        s.ImageURL,
		IsActive:        s.IsActive,
		CreatedAt:       s.CreatedAt,
	}
}

// ToProductResponse item puede ser nil (producto sin control de stock).
func ToProductResponse(p *entity.Product, item *entity.InventoryItem) ProductResponse {
	out := ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		Category:      p.Category,
		InventoryID:   p.InventoryID,
		ImageURL:      p.ImageURL,
		MinStockLevel: p.MinStockLevel,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
	}
	if item != nil {
		stock := item.CurrentStock
		out.Stock = &stock
		out.Unit = item.Unit
	}
	return out
}

func ToInventoryItemResponse(it *entity.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:               it.ID,
		SKU:              it.SKU,
		Name:             it.Name,
		Category:         it.Category,
		Unit:             it.Unit,
		CurrentStock:     it.CurrentStock,
		MinStock:         it.MinStock,
		MaxStock:         it.MaxStock,
		UnitCost:         it.UnitCost,
		Supplier:         it.Supplier,
		LastPurchaseDate: it.LastPurchaseDate,
		IsLowStock:       it.IsLowStock(),
		IsActive:         it.IsActive,
		UpdatedAt:        it.UpdatedAt,
	}
}

func ToInventoryLogResponse(l *entity.InventoryLog) InventoryLogResponse {
	return InventoryLogResponse{
		ID:            l.ID,
		InventoryID:   l.InventoryID,
		InventoryName: l.InventoryName,
		ChangeAmount:  l.ChangeAmount,
		PreviousStock: l.PreviousStock,
		NewStock:      l.NewStock,
		Reason:        l.Reason,
		ReferenceID:   l.ReferenceID,
		UserID:        l.UserID,
		UserName:      l.UserName,
		CreatedAt:     l.CreatedAt,
	}
}

func ToCustomerResponse(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:            c.ID,
		Name:          c.Name,
		Phone:         c.Phone,
		Email:         c.Email,
		VehicleNumber: c.VehicleNumber,
		VehicleType:   c.VehicleType,
		TotalVisits:   c.TotalVisits,
		TotalSpending: c.TotalSpending,
		JoinDate:      c.JoinDate,
	}
}

// ToMembershipResponse deriva status y days_remaining contra now.
func ToMembershipResponse(m *entity.Membership, now time.Time) MembershipResponse {
	return MembershipResponse{
		ID:             m.ID,
		CustomerID:     m.CustomerID,
		CustomerName:   m.CustomerName,
		MembershipType: string(m.MembershipType),
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		Status:         string(membership.Status(m.EndDate, now)),
		DaysRemaining:  membership.DaysRemaining(m.EndDate, now),
		UsageCount:     m.UsageCount,
		LastUsed:       m.LastUsed,
		Price:          m.Price,
		Notes:          m.Notes,
	}
}

func ToMembershipUsageResponse(u *entity.MembershipUsage) MembershipUsageResponse {
	return MembershipUsageResponse{
		ID:          u.ID,
		ServiceID:   u.ServiceID,
		ServiceName: u.ServiceName,
		KasirID:     u.KasirID,
		KasirName:   u.KasirName,
		UsedAt:      u.UsedAt,
	}
}

func ToDenominationDTO(d *entity.CashDenomination) *CashDenominationDTO {
	if d == nil {
		return nil
	}
	v := CashDenominationDTO(*d)
	return &v
}

func (d *CashDenominationDTO) ToEntity() *entity.CashDenomination {
	if d == nil {
		return nil
	}
	v := entity.CashDenomination(*d)
	return &v
}

func ToShiftResponse(s *entity.Shift) ShiftResponse {
	return ShiftResponse{
		ID:                   s.ID,
		KasirID:              s.KasirID,
		KasirName:            s.KasirName,
		OpeningBalance:       s.OpeningBalance,
		OpeningDenominations: ToDenominationDTO(s.OpeningDenominations),
		ClosingBalance:       s.ClosingBalance,
		ClosingDenominations: ToDenominationDTO(s.ClosingDenominations),
		PettyCashTotal:       s.PettyCashTotal,
		CashDropTotal:        s.CashDropTotal,
		ExpectedBalance:      s.ExpectedBalance,
		Variance:             s.Variance,
		OpenedAt:             s.OpenedAt,
		ClosedAt:             s.ClosedAt,
		Status:               s.Status,
		Notes:                s.Notes,
	}
}

func ToPettyCashLogResponse(l *entity.PettyCashLog) PettyCashLogResponse {
	return PettyCashLogResponse{
		ID:            l.ID,
		ShiftID:       l.ShiftID,
		Amount:        l.Amount,
		Category:      l.Category,
		Description:   l.Description,
		CreatedByID:   l.CreatedByID,
		CreatedByName: l.CreatedByName,
		CreatedAt:     l.CreatedAt,
	}
}

func ToPettyCashLogResponses(logs []*entity.PettyCashLog) []PettyCashLogResponse {
	out := make([]PettyCashLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, ToPettyCashLogResponse(l))
	}
	return out
}

func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	items := make([]LineItemResponse, 0, len(t.Items))
	for _, it := range t.Items {
		items = append(items, LineItemResponse(it))
	}
	return TransactionResponse{
		ID:              t.ID,
		InvoiceNumber:   t.InvoiceNumber,
		KasirID:         t.KasirID,
		KasirName:       t.KasirName,
		CustomerID:      t.CustomerID,
		CustomerName:    t.CustomerName,
		ShiftID:         t.ShiftID,
		Items:           items,
		Subtotal:        t.Subtotal,
		Total:           t.Total,
		PaymentMethod:   string(t.PaymentMethod),
		PaymentReceived: t.PaymentReceived,
		ChangeAmount:    t.ChangeAmount,
		TotalCommission: t.TotalCommission,
		Notes:           t.Notes,
		CreatedAt:       t.CreatedAt,
	}
}

func ToTransactionResponses(txns []*entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txns))
	for _, t := range txns {
		out = append(out, ToTransactionResponse(t))
	}
	return out
}

func ToPromotionResponse(p *entity.Promotion) PromotionResponse {
	return PromotionResponse{
		ID:            p.ID,
		Code:          p.Code,
		Name:          p.Name,
		Description:   p.Description,
		PromotionType: string(p.PromotionType),
		Value:         p.Value,
		MinPurchase:   p.MinPurchase,
		MaxDiscount:   p.MaxDiscount,
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		UsageLimit:    p.UsageLimit,
		UsageCount:    p.UsageCount,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
	}
}

func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse(*e)
}

func ToPayoutResponse(p *entity.CommissionPayout) PayoutResponse {
	return PayoutResponse(*p)
}

func ToLandingConfigDTO(c *entity.LandingConfig) LandingConfigDTO {
	return LandingConfigDTO(*c)
}

func (d LandingConfigDTO) ToEntity() entity.LandingConfig {
	return entity.LandingConfig(d)
}
