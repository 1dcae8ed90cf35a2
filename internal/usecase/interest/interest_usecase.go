package interest

import (
	"context"
	"fmt"

	"github.com/vivahsetu/matrimony-backend/internal/domain"
	"github.com/vivahsetu/matrimony-backend/internal/infrastructure/gemini"
	"github.com/vivahsetu/matrimony-backend/internal/metrics"
	"github.com/vivahsetu/matrimony-backend/internal/repository"
)

type InterestUseCase struct {
	interestRepo  repository.InterestRepository
	profileRepo   repository.ProfileRepository
	interestCache repository.InterestCache
	geminiClient  *gemini.Client
}

func NewInterestUseCase(
	interestRepo repository.InterestRepository,
	profileRepo repository.ProfileRepository,
	interestCache repository.InterestCache,
	geminiClient *gemini.Client,
) *InterestUseCase {
	return &InterestUseCase{
		interestRepo:  interestRepo,
		profileRepo:   profileRepo,
		interestCache: interestCache,
		geminiClient:  geminiClient,
	}
}

// SendInterestRequest is the send action payload.
type SendInterestRequest struct {
	ReceiverID string `json:"receiver_id" binding:"required"`
}

// SendInterestResponse reports the outcome. AlreadySent is a
// recoverable no-op, not an error.
type SendInterestResponse struct {
	Sent        bool             `json:"sent"`
	AlreadySent bool             `json:"already_sent,omitempty"`
	Mutual      bool             `json:"mutual,omitempty"`
	Notice      string           `json:"notice,omitempty"`
	Interest    *domain.Interest `json:"interest,omitempty"`
}

// SendInterest runs the side-channel action: reject self, treat a
// duplicate as an idempotent no-op with a notice, require entitlement,
// then record the interest. A pre-existing reverse interest makes the
// pair a mutual connection.
func (uc *InterestUseCase) SendInterest(ctx context.Context, senderID string, req *SendInterestRequest) (*SendInterestResponse, error) {
	if senderID == req.ReceiverID {
		metrics.InterestsTotal.WithLabelValues("self").Inc()
		return nil, domain.ErrCannotSendToSelf
	}

	existing, err := uc.interestRepo.GetByUsers(ctx, senderID, req.ReceiverID)
	if err == nil && existing != nil {
		metrics.InterestsTotal.WithLabelValues("duplicate").Inc()
		return &SendInterestResponse{
			AlreadySent: true,
			Notice:      "You have already expressed interest in this person.",
			Interest:    existing,
		}, nil
	}

	sender, err := uc.profileRepo.GetByID(ctx, senderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sender profile: %w", err)
	}
	if !sender.HasEntitlement() {
		metrics.InterestsTotal.WithLabelValues("denied").Inc()
		return nil, domain.ErrEntitlementRequired
	}

	receiver, err := uc.profileRepo.GetByID(ctx, req.ReceiverID)
	if err != nil {
		return nil, fmt.Errorf("failed to get receiver profile: %w", err)
	}

	interest := &domain.Interest{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Status:     domain.InterestPending,
	}

	resp := &SendInterestResponse{Sent: true, Notice: "Interest sent successfully!"}

	// A reverse interest already on record makes this a mutual
	// connection: accept both directions.
	reverse, err := uc.interestRepo.GetByUsers(ctx, req.ReceiverID, senderID)
	if err == nil && reverse != nil && reverse.Status != domain.InterestDeclined {
		interest.Status = domain.InterestAccepted
		if note := uc.connectionNote(ctx, sender, receiver); note != "" {
			interest.Note = &note
		}
	}

	if err := uc.interestRepo.Create(ctx, interest); err != nil {
		return nil, fmt.Errorf("failed to create interest: %w", err)
	}

	if interest.Status == domain.InterestAccepted && reverse != nil {
		if err := uc.interestRepo.UpdateStatus(ctx, reverse.ID, domain.InterestAccepted); err != nil {
			fmt.Printf("failed to accept reverse interest %s: %v\n", reverse.ID, err)
		} else {
			resp.Mutual = true
			resp.Notice = "It's mutual! You are now connected."
		}
		if uc.interestCache != nil {
			uc.interestCache.Invalidate(ctx, senderID)
			uc.interestCache.Invalidate(ctx, req.ReceiverID)
		}
	} else if uc.interestCache != nil {
		uc.interestCache.AddSentID(ctx, senderID, req.ReceiverID)
	}

	metrics.InterestsTotal.WithLabelValues("sent").Inc()
	resp.Interest = interest
	return resp, nil
}

// SentInterestIDs returns the ids this member has expressed interest
// in; the browse pipeline uses the same set to flag cards.
func (uc *InterestUseCase) SentInterestIDs(ctx context.Context, senderID string) ([]string, error) {
	if uc.interestCache != nil {
		if ids, ok := uc.interestCache.SentIDs(ctx, senderID); ok {
			return ids, nil
		}
	}
	ids, err := uc.interestRepo.SentReceiverIDs(ctx, senderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sent interests: %w", err)
	}
	if uc.interestCache != nil {
		uc.interestCache.StoreSentIDs(ctx, senderID, ids)
	}
	return ids, nil
}

func (uc *InterestUseCase) connectionNote(ctx context.Context, sender, receiver *domain.Profile) string {
	if uc.geminiClient == nil {
		return ""
	}
	var shared []string
	if domain.StringValue(sender.CurrentCity) != "" && domain.StringValue(sender.CurrentCity) == domain.StringValue(receiver.CurrentCity) {
		shared = append(shared, "same city")
	}
	if domain.StringValue(sender.MotherTongue) != "" && domain.StringValue(sender.MotherTongue) == domain.StringValue(receiver.MotherTongue) {
		shared = append(shared, "same mother tongue")
	}
	note, err := uc.geminiClient.GenerateConnectionNote(ctx, sender.Name, receiver.Name, shared)
	if err != nil {
		fmt.Printf("failed to generate connection note: %v\n", err)
		return ""
	}
	return note
}
