package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	response "proposal_relay/internal/adapter/http/dto/response"
	"proposal_relay/internal/usecase"
	"proposal_relay/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// emptyBody is what an absent request body is relayed as.
var emptyBody = json.RawMessage(`{}`)

// ProposalHandler relays proposal payloads from the browser to the webhook.
type ProposalHandler struct {
	usecase      usecase.IProposalRelayUseCase
	maxBodyBytes int64
	logger       *zap.Logger
}

func NewProposalHandler(uc usecase.IProposalRelayUseCase, maxBodyBytes int64, logger *zap.Logger) *ProposalHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProposalHandler{usecase: uc, maxBodyBytes: maxBodyBytes, logger: logger.Named("http")}
}

// RelayProposal godoc
// @Summary      Relay a proposal
// @Description  Forwards the JSON body unchanged to the automation webhook.
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        proposal  body      object  true  "Proposal document"
// @Success      200       {object}  response.RelayResponse
// @Failure      400       {object}  response.RelayResponse
// @Failure      413       {object}  response.RelayResponse
// @Failure      500       {object}  response.RelayResponse
// @Router       /proposals [post]
func (h *ProposalHandler) RelayProposal(c *gin.Context) {
	payload, status, ok := h.readBody(c)
	if !ok {
		if status == http.StatusRequestEntityTooLarge {
			c.JSON(status, response.NewRelayBodyTooLarge())
			return
		}
		c.JSON(status, response.NewRelayInvalidBody())
		return
	}

	res, err := h.usecase.Forward(c.Request.Context(), payload)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, response.NewRelaySuccess(res.WebhookText))
	case errors.Is(err, usecase.ErrInvalidRelayPayload):
		c.JSON(http.StatusBadRequest, response.NewRelayInvalidBody())
	case errors.Is(err, usecase.ErrWebhookRejected):
		c.JSON(http.StatusInternalServerError, response.NewRelayRejected(res.WebhookText))
	default:
		h.logger.Error("relay failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.NewRelayFailure(err.Error()))
	}
}

func (h *ProposalHandler) readBody(c *gin.Context) (json.RawMessage, int, bool) {
	body := c.Request.Body
	if body == nil {
		return emptyBody, 0, true
	}
	if h.maxBodyBytes > 0 {
		body = http.MaxBytesReader(c.Writer, body, h.maxBodyBytes)
	}

	raw, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, http.StatusRequestEntityTooLarge, false
		}
		return nil, http.StatusBadRequest, false
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return emptyBody, 0, true
	}
	// Only objects and arrays are accepted at the top level.
	if (raw[0] != '{' && raw[0] != '[') || !json.Valid(raw) {
		return nil, http.StatusBadRequest, false
	}
	return raw, 0, true
}

// ListDeliveries godoc
// @Summary      List delivery attempts
// @Description  Returns the recorded relay attempts for a proposal, oldest first.
// @Tags         proposals
// @Produce      json
// @Param        proposal_id  path      string  true  "Proposal ID"
// @Success      200          {array}   response.DeliveryResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      404          {object}  pkg.HTTPError
// @Failure      500          {object}  pkg.HTTPError
// @Router       /proposals/{proposal_id}/deliveries [get]
func (h *ProposalHandler) ListDeliveries(c *gin.Context) {
	attempts, err := h.usecase.ListDeliveries(c.Request.Context(), c.Param("proposal_id"))
	if err != nil {
		appErr := mapDeliveryError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			h.logger.Error("list deliveries failed", zap.Error(err))
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDeliveryAttempts(attempts))
}

func mapDeliveryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDeliveryAuditDisabled):
		return pkg.NewDomainErrorSimple("DELIVERY_AUDIT_DISABLED", "Delivery audit is not enabled", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
