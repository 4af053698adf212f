package engine

import (
	"time"

	"github.com/google/uuid"

	"quote-engine/internal/insurer"
	"quote-engine/internal/jsonpatch"
	"quote-engine/internal/model"
	"quote-engine/internal/rules"
)

// Options controls policy choices of a consolidation run.
type Options struct {
	// ValidateVehicle sets the document error when the vehicle cannot be
	// identified. Plans are consolidated either way.
	ValidateVehicle bool
	Insurers        *insurer.Normalizer
}

func DefaultOptions() Options {
	return Options{ValidateVehicle: true, Insurers: insurer.Default()}
}

// Consolidate normalizes insurers, keeps the cheapest premium per
// deductible and strips inapplicable coverage from civil-liability-only
// plans. doc is modified in place and returned. A document that already
// carries an upstream error is returned untouched.
func Consolidate(doc *model.RawExtraction, opts Options) *model.RawExtraction {
	consolidate(doc, opts)
	return doc
}

func consolidate(doc *model.RawExtraction, opts Options) []model.ConsolidationMessage {
	if doc == nil {
		return nil
	}

	var msgs []model.ConsolidationMessage
	add := func(m model.ConsolidationMessage) {
		m.ID = len(msgs)
		msgs = append(msgs, m)
	}

	if doc.Error != nil {
		add(model.ConsolidationMessage{
			Level:   model.LevelCritical,
			Code:    model.CodeUpstreamError,
			Message: "Extraction failed upstream, consolidation skipped: " + *doc.Error,
		})
		return msgs
	}

	if opts.ValidateVehicle && !doc.Vehicle.Valid() {
		reason := model.ErrInsufficientVehicleData
		doc.Error = &reason
		add(model.ConsolidationMessage{
			Level:   model.LevelCritical,
			Code:    model.CodeInsufficientVehicleData,
			Message: "Vehicle make, model and year are required",
		})
	}

	pipeline := rules.Pipeline(opts.Insurers)
	for i := range doc.PolicyAnalyses {
		for _, rule := range pipeline {
			for _, m := range rule.Apply(&doc.PolicyAnalyses[i]) {
				planIndex := i
				m.PlanIndex = &planIndex
				add(m)
			}
		}
	}

	return msgs
}

// Process consolidates the request document and reports what changed.
func Process(req *model.ConsolidationRequest, opts Options) *model.ConsolidationResponse {
	start := time.Now()

	before, snapErr := jsonpatch.Snapshot(req.Document)
	msgs := consolidate(req.Document, opts)

	changes := []model.PatchOperation{}
	if snapErr == nil {
		if after, err := jsonpatch.Snapshot(req.Document); err == nil {
			changes = append(changes, jsonpatch.Diff(before, after, "")...)
		}
	}

	if msgs == nil {
		msgs = []model.ConsolidationMessage{}
	}

	outcome := model.OutcomeSuccess
	if req.Document == nil || req.Document.Error != nil {
		outcome = model.OutcomeFailure
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	return &model.ConsolidationResponse{
		ConsolidationMetadata: model.ConsolidationMetadata{
			ConsolidationID:          uuid.New().String(),
			TenantID:                 req.TenantID,
			ConsolidationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			ConsolidationCompletedAt: now.Format(time.RFC3339),
			ConsolidationDurationMs:  elapsed.Milliseconds(),
			ConsolidationOutcome:     outcome,
		},
		ConsolidationResult: model.ConsolidationResult{
			Messages: msgs,
			Document: req.Document,
			Changes:  changes,
			Summary:  Summarize(req.Document),
		},
	}
}
