package model

func ToPromotionTargetResponse(t PromotionTarget) PromotionTargetResponse {
	return PromotionTargetResponse{
		ID:               t.ID,
		ProductID:        t.ProductID,
		ProductVariantID: t.ProductVariantID,
		CategoryID:       t.CategoryID,
		BrandID:          t.BrandID,
	}
}

func ToPromotionResponse(p *Promotion) PromotionResponse {
	targets := make([]PromotionTargetResponse, 0, len(p.Targets))
	for _, t := range p.Targets {
		targets = append(targets, ToPromotionTargetResponse(t))
	}
	return PromotionResponse{
		ID:            p.ID,
		Name:          p.Name,
		PromotionType: p.PromotionType,
		Discount:      p.Discount,
		Active:        p.Active,
		Priority:      p.Priority,
		Description:   p.Description,
		StartDate:     p.StartDate.Format(DateLayout),
		EndDate:       p.EndDate.Format(DateLayout),
		Targets:       targets,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func ToPromotionResponses(promos []Promotion) []PromotionResponse {
	out := make([]PromotionResponse, 0, len(promos))
	for i := range promos {
		out = append(out, ToPromotionResponse(&promos[i]))
	}
	return out
}
