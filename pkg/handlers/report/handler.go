package report

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/grafica-tools/fechamento/pkg/adapters"
	"github.com/grafica-tools/fechamento/pkg/models/api"
	"github.com/grafica-tools/fechamento/pkg/services/fechamento"
	"github.com/grafica-tools/fechamento/pkg/store/orders"
)

type Handler struct {
	source    orders.Source
	generator *fechamento.Generator
	validate  *validator.Validate
}

func NewHandler(source orders.Source, generator *fechamento.Generator) *Handler {
	return &Handler{
		source:    source,
		generator: generator,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ListReportTypes returns the registered report types.
func (h *Handler) ListReportTypes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var response api.ReportTypeList
	for _, t := range fechamento.ReportTypes() {
		response.Types = append(response.Types, string(t))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode report types")
	}
}

// GenerateFechamento runs a closing report over the upstream order
// list. Validation problems come back as 400 with a descriptive
// message; upstream failures as 502.
func (h *Handler) GenerateFechamento(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var payload api.ReportRequestPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Payload inválido: corpo JSON ilegível")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		writeError(w, http.StatusBadRequest, "Payload inválido: "+err.Error())
		return
	}

	req := adapters.MapReportPayloadApiToDomain(payload)
	if err := fechamento.Validate(req); err != nil {
		writeError(w, http.StatusBadRequest, "Payload inválido: "+err.Error())
		return
	}

	records, err := h.source.ListOrders(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list orders from upstream")
		writeError(w, http.StatusBadGateway, "falha ao consultar pedidos")
		return
	}

	report, err := h.generator.Generate(ctx, records, req)
	if err != nil {
		var verr *fechamento.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Error())
			return
		}
		logger.Error().Err(err).Msg("failed to generate report")
		writeError(w, http.StatusInternalServerError, "falha ao gerar relatório")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapReportResponseDomainToApi(*report)); err != nil {
		logger.Error().Err(err).Msg("failed to encode report")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Error: msg})
}
