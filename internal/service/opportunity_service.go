package service

import (
	"context"
	"time"

	"staffmatch/internal/dto"

	"go.uber.org/zap"
)

type OpportunityService struct {
	opportunityRepo OpportunityLister
	logger          *zap.Logger
}

func NewOpportunityService(opportunityRepo OpportunityLister, logger *zap.Logger) *OpportunityService {
	return &OpportunityService{
		opportunityRepo: opportunityRepo,
		logger:          logger,
	}
}

func (s *OpportunityService) List(ctx context.Context) ([]dto.OpportunityResponse, error) {
	opps, err := s.opportunityRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.OpportunityResponse, 0, len(opps))
	for _, opp := range opps {
		item := dto.OpportunityResponse{
			ID:           opp.ID.String(),
			Details:      opp.Details,
			DepartmentID: opp.DepartmentID,
			CreatedAt:    opp.CreatedAt.Format(time.RFC3339),
		}
		if opp.UserID != nil {
			userID := opp.UserID.String()
			item.UserID = &userID
		}
		resp = append(resp, item)
	}
	return resp, nil
}
