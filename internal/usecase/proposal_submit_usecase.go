package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"proposal_relay/internal/domain/entities"
	"proposal_relay/internal/infrastructure/metrics"
	"proposal_relay/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Notices shown to the person who submitted the form.
const (
	NoticeSubmitted       = "Proposal submitted successfully!"
	NoticeRejected        = "Webhook rejected the data. Check console for details."
	NoticeConnectionError = "Server connection error. Check console."
)

// SubmitResult is what a submission produced. Document is always set once
// the proposal was assembled, whatever happened on the network.
type SubmitResult struct {
	ProposalID   string
	Document     string
	Delivered    bool
	StatusCode   int
	ResponseText string
	Notice       string
}

// IProposalSubmitUseCase finalizes a form and sends it to the webhook.
type IProposalSubmitUseCase interface {
	Submit(ctx context.Context, form *entities.ProposalForm) (SubmitResult, error)
}

type ProposalSubmitUseCase struct {
	gateway interfaces.IWebhookGateway
	logger  *zap.Logger
	now     func() time.Time
	suffix  func() int
}

var _ IProposalSubmitUseCase = (*ProposalSubmitUseCase)(nil)

func NewProposalSubmitUseCase(gateway interfaces.IWebhookGateway, logger *zap.Logger) *ProposalSubmitUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProposalSubmitUseCase{
		gateway: gateway,
		logger:  logger.Named("submit"),
		now:     time.Now,
		suffix:  func() int { return rand.Intn(900) + 100 },
	}
}

// Submit assigns a proposal id if the form has none, then posts the
// assembled proposal once. There is no retry; a failure is reported through
// the returned error and SubmitResult.Notice.
func (u *ProposalSubmitUseCase) Submit(ctx context.Context, form *entities.ProposalForm) (SubmitResult, error) {
	if form.ProposalID == "" {
		form.ProposalID = entities.FormatProposalID(u.now(), u.suffix())
	}
	proposal := form.Build()
	res := SubmitResult{ProposalID: proposal.ProposalID}

	pretty, err := json.MarshalIndent(proposal, "", "    ")
	if err != nil {
		return res, fmt.Errorf("encode proposal: %w", err)
	}
	res.Document = string(pretty)

	body, err := json.Marshal(proposal)
	if err != nil {
		return res, fmt.Errorf("encode proposal: %w", err)
	}

	log := u.logger.With(zap.String("proposal_id", proposal.ProposalID))
	log.Info("submit start", zap.Int("line_items", len(proposal.LineItems)))

	start := time.Now()
	status, text, err := u.gateway.Post(ctx, body)
	metrics.WebhookDuration.WithLabelValues(string(entities.DeliveryChannelDirect)).Observe(time.Since(start).Seconds())
	if err != nil {
		log.Error("webhook unreachable", zap.Error(err))
		metrics.ProposalsForwarded.WithLabelValues(string(entities.DeliveryChannelDirect), string(entities.DeliveryOutcomeUnreachable)).Inc()
		res.Notice = NoticeConnectionError
		return res, fmt.Errorf("%w: %w", ErrWebhookUnreachable, err)
	}

	res.StatusCode = status
	res.ResponseText = text
	log.Info("webhook response", zap.Int("status", status), zap.String("webhook_text", text))

	if !isSuccessStatus(status) {
		metrics.ProposalsForwarded.WithLabelValues(string(entities.DeliveryChannelDirect), string(entities.DeliveryOutcomeRejected)).Inc()
		res.Notice = NoticeRejected
		return res, ErrWebhookRejected
	}

	metrics.ProposalsForwarded.WithLabelValues(string(entities.DeliveryChannelDirect), string(entities.DeliveryOutcomeDelivered)).Inc()
	res.Delivered = true
	res.Notice = NoticeSubmitted
	return res, nil
}
