package http

import (
	"time"

	"strategy-shop/internal/model"
	"strategy-shop/internal/profile"
)

// --- Request DTOs ---

type saveEmailReq struct {
	Email string `json:"email" binding:"required,email,max=254"`
}

func (r saveEmailReq) validate() error { return nil }

func (r saveEmailReq) toInput() profile.SaveEmailInput {
	return profile.SaveEmailInput{Email: r.Email}
}

type updateBusinessReq struct {
	BusinessName     string `json:"business_name"     binding:"max=255"`
	BusinessType     string `json:"business_type"     binding:"max=255"`
	Revenue          string `json:"revenue"           binding:"max=100"`
	TeamSize         string `json:"team_size"         binding:"max=100"`
	BiggestChallenge string `json:"biggest_challenge" binding:"max=2000"`
}

func (r updateBusinessReq) validate() error {
	if r == (updateBusinessReq{}) {
		return errEmptyUpdate
	}
	return nil
}

func (r updateBusinessReq) toInput() profile.UpdateBusinessInput {
	return profile.UpdateBusinessInput{
		BusinessName:     r.BusinessName,
		BusinessType:     r.BusinessType,
		Revenue:          r.Revenue,
		TeamSize:         r.TeamSize,
		BiggestChallenge: r.BiggestChallenge,
	}
}

// --- Response DTOs ---

type profileResp struct {
	ID                  string    `json:"id"`
	Email               string    `json:"email,omitempty"`
	BusinessName        string    `json:"business_name,omitempty"`
	BusinessType        string    `json:"business_type,omitempty"`
	Revenue             string    `json:"revenue,omitempty"`
	TeamSize            string    `json:"team_size,omitempty"`
	BiggestChallenge    string    `json:"biggest_challenge,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	ConversationCount   int       `json:"conversation_count"`
	HasProvidedEmail    bool      `json:"has_provided_email"`
	HasCompletedProfile bool      `json:"has_completed_profile"`
}

func (h *handler) newProfileResp(p model.Profile) profileResp {
	return profileResp{
		ID:                  p.ID,
		Email:               p.Email,
		BusinessName:        p.BusinessName,
		BusinessType:        p.BusinessType,
		Revenue:             p.Revenue,
		TeamSize:            p.TeamSize,
		BiggestChallenge:    p.BiggestChallenge,
		CreatedAt:           p.CreatedAt,
		ConversationCount:   p.ConversationCount,
		HasProvidedEmail:    p.HasProvidedEmail,
		HasCompletedProfile: p.HasCompletedProfile,
	}
}

type metadataResp struct {
	UserID              string `json:"user_id"`
	ConversationCount   int    `json:"conversation_count"`
	ConversationLimit   int    `json:"conversation_limit"`
	Remaining           int    `json:"remaining"`
	HasCompletedProfile bool   `json:"has_completed_profile"`
	HasProvidedEmail    bool   `json:"has_provided_email"`
}

func (h *handler) newMetadataResp(md profile.Metadata) metadataResp {
	return metadataResp{
		UserID:              md.UserID,
		ConversationCount:   md.ConversationCount,
		ConversationLimit:   md.ConversationLimit,
		Remaining:           md.Remaining(),
		HasCompletedProfile: md.HasCompletedProfile,
		HasProvidedEmail:    md.HasProvidedEmail,
	}
}
