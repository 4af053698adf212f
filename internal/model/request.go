package model

type ConsolidationRequest struct {
	TenantID string         `json:"tenant_id"`
	Document *RawExtraction `json:"document"`
}

type BatchConsolidationRequest struct {
	TenantID  string           `json:"tenant_id"`
	Documents []*RawExtraction `json:"documents"`
}

type ParseNumericRequest struct {
	Values []*string `json:"values"`
}
