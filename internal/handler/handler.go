package handler

import (
	"fmt"
	"log/slog"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"golang.org/x/time/rate"

	"quote-engine/internal/engine"
	"quote-engine/internal/model"
	"quote-engine/internal/numeric"
)

// Handler exposes the consolidation engine over HTTP.
type Handler struct {
	opts         engine.Options
	batchWorkers int
	maxBatchSize int
	log          *slog.Logger
	limiter      *rate.Limiter
}

func New(opts engine.Options, batchWorkers, maxBatchSize int, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{opts: opts, batchWorkers: batchWorkers, maxBatchSize: maxBatchSize, log: log}
}

// WithRateLimit caps accepted /v1 requests at rps per second with the
// given burst. A non-positive rps leaves requests unlimited.
func (h *Handler) WithRateLimit(rps float64, burst int) *Handler {
	if rps <= 0 {
		h.limiter = nil
		return h
	}
	h.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	return h
}

// Serve routes a request; it is the fasthttp.RequestHandler of the service.
func (h *Handler) Serve(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/healthz":
		if !ctx.IsGet() {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		ctx.SetContentType("text/plain; charset=utf-8")
		ctx.SetBodyString("ok")
	case "/v1/consolidate":
		h.post(ctx, h.consolidate)
	case "/v1/consolidate/batch":
		h.post(ctx, h.consolidateBatch)
	case "/v1/parse-numeric":
		h.post(ctx, h.parseNumeric)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (h *Handler) post(ctx *fasthttp.RequestCtx, next fasthttp.RequestHandler) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if h.limiter != nil && !h.limiter.Allow() {
		h.log.Warn("request rate limited", "path", string(ctx.Path()))
		writeError(ctx, fasthttp.StatusTooManyRequests, "Too many requests")
		return
	}
	next(ctx)
}

func (h *Handler) consolidate(ctx *fasthttp.RequestCtx) {
	var req model.ConsolidationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.log.Warn("invalid consolidation request", "error", err)
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Document == nil {
		writeError(ctx, fasthttp.StatusBadRequest, "A document is required")
		return
	}

	start := time.Now()
	resp := engine.Process(&req, h.opts)
	h.log.Info("document consolidated",
		"tenant_id", req.TenantID,
		"consolidation_id", resp.ConsolidationMetadata.ConsolidationID,
		"outcome", resp.ConsolidationMetadata.ConsolidationOutcome,
		"plans", len(req.Document.PolicyAnalyses),
		"messages", len(resp.ConsolidationResult.Messages),
		"duration", time.Since(start),
	)

	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func (h *Handler) consolidateBatch(ctx *fasthttp.RequestCtx) {
	var req model.BatchConsolidationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.log.Warn("invalid batch request", "error", err)
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(req.Documents) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "At least one document is required")
		return
	}
	if len(req.Documents) > h.maxBatchSize {
		writeError(ctx, fasthttp.StatusBadRequest, fmt.Sprintf("At most %d documents per batch", h.maxBatchSize))
		return
	}

	reqs := make([]*model.ConsolidationRequest, len(req.Documents))
	for i, doc := range req.Documents {
		if doc == nil {
			writeError(ctx, fasthttp.StatusBadRequest, fmt.Sprintf("Document %d is null", i))
			return
		}
		reqs[i] = &model.ConsolidationRequest{TenantID: req.TenantID, Document: doc}
	}

	start := time.Now()
	results := engine.ProcessBatch(reqs, h.opts, h.batchWorkers)

	var failed int
	for _, r := range results {
		if r.ConsolidationMetadata.ConsolidationOutcome != model.OutcomeSuccess {
			failed++
		}
	}
	h.log.Info("batch consolidated",
		"tenant_id", req.TenantID,
		"documents", len(results),
		"failed", failed,
		"duration", time.Since(start),
	)

	writeJSON(ctx, fasthttp.StatusOK, model.BatchConsolidationResponse{Results: results})
}

func (h *Handler) parseNumeric(ctx *fasthttp.RequestCtx) {
	var req model.ParseNumericRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	results := make([]*float64, len(req.Values))
	for i, v := range req.Values {
		results[i] = numeric.Parse(v)
	}
	writeJSON(ctx, fasthttp.StatusOK, model.ParseNumericResponse{Results: results})
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Failed to encode response")
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(b)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	b, _ := json.Marshal(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(b)
}
