package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"proposal_relay/internal/domain/entities"
	"proposal_relay/internal/infrastructure/metrics"
	"proposal_relay/internal/infrastructure/validation"
	"proposal_relay/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RelayResult carries the upstream answer. It is filled for rejections too,
// so callers can surface WebhookText.
type RelayResult struct {
	StatusCode  int
	WebhookText string
}

// IProposalRelayUseCase forwards a client payload to the webhook untouched.
type IProposalRelayUseCase interface {
	Forward(ctx context.Context, payload json.RawMessage) (RelayResult, error)
	ListDeliveries(ctx context.Context, proposalID string) ([]entities.DeliveryAttempt, error)
}

type ProposalRelayUseCase struct {
	gateway    interfaces.IWebhookGateway
	deliveries interfaces.IDeliveryRepository
	logger     *zap.Logger
	now        func() time.Time
}

var _ IProposalRelayUseCase = (*ProposalRelayUseCase)(nil)

// NewProposalRelayUseCase wires the relay. deliveries may be nil, which
// turns the delivery audit off.
func NewProposalRelayUseCase(gateway interfaces.IWebhookGateway, deliveries interfaces.IDeliveryRepository, logger *zap.Logger) *ProposalRelayUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProposalRelayUseCase{
		gateway:    gateway,
		deliveries: deliveries,
		logger:     logger.Named("relay"),
		now:        time.Now,
	}
}

func (u *ProposalRelayUseCase) Forward(ctx context.Context, payload json.RawMessage) (RelayResult, error) {
	if !json.Valid(payload) {
		return RelayResult{}, ErrInvalidRelayPayload
	}

	proposalID := peekProposalID(payload)
	log := u.logger.With(zap.String("proposal_id", proposalID))
	log.Info("received from frontend", zap.Int("payload_len", len(payload)))

	if problems, err := validation.CheckProposalShape(payload); err != nil {
		log.Warn("proposal shape check failed", zap.Error(err))
	} else if len(problems) > 0 {
		metrics.PayloadShapeMismatches.Inc()
		log.Warn("payload does not look like a proposal; forwarding anyway", zap.Strings("problems", problems))
	}

	start := time.Now()
	status, text, err := u.gateway.Post(ctx, payload)
	metrics.WebhookDuration.WithLabelValues(string(entities.DeliveryChannelRelay)).Observe(time.Since(start).Seconds())
	if err != nil {
		log.Error("webhook call failed", zap.Error(err))
		u.record(ctx, proposalID, entities.DeliveryOutcomeUnreachable, 0)
		return RelayResult{}, fmt.Errorf("%w: %w", ErrWebhookUnreachable, err)
	}
	log.Info("webhook response", zap.Int("status", status), zap.String("webhook_text", text))

	res := RelayResult{StatusCode: status, WebhookText: text}
	if !isSuccessStatus(status) {
		u.record(ctx, proposalID, entities.DeliveryOutcomeRejected, status)
		return res, ErrWebhookRejected
	}

	u.record(ctx, proposalID, entities.DeliveryOutcomeDelivered, status)
	return res, nil
}

// record counts the attempt and, when the audit is on, stores it. Audit
// failures never change the relay outcome.
func (u *ProposalRelayUseCase) record(ctx context.Context, proposalID string, outcome entities.DeliveryOutcome, status int) {
	metrics.ProposalsForwarded.WithLabelValues(string(entities.DeliveryChannelRelay), string(outcome)).Inc()
	if u.deliveries == nil {
		return
	}

	attempt := entities.DeliveryAttempt{
		ID:             uuid.NewString(),
		ProposalID:     proposalID,
		Channel:        entities.DeliveryChannelRelay,
		Outcome:        outcome,
		UpstreamStatus: status,
		AttemptedAt:    u.now().UTC(),
	}
	// The request context may already be cancelled; the audit write gets its own deadline.
	auditCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if _, err := u.deliveries.Create(auditCtx, attempt); err != nil {
		metrics.DeliveryAuditFailures.Inc()
		u.logger.Warn("delivery audit write failed",
			zap.String("proposal_id", proposalID),
			zap.String("delivery_id", attempt.ID),
			zap.Error(err),
		)
	}
}

func (u *ProposalRelayUseCase) ListDeliveries(ctx context.Context, proposalID string) ([]entities.DeliveryAttempt, error) {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return nil, ErrInvalidProposalID
	}
	if u.deliveries == nil {
		return nil, ErrDeliveryAuditDisabled
	}
	return u.deliveries.ListByProposalID(ctx, proposalID)
}

// peekProposalID reads proposal_id for logging and audit; payloads without
// one are still relayed.
func peekProposalID(payload json.RawMessage) string {
	var probe struct {
		ProposalID any `json:"proposal_id"`
	}
	if err := json.Unmarshal(payload, &probe); err != nil {
		return ""
	}
	if s, ok := probe.ProposalID.(string); ok {
		return s
	}
	return ""
}
