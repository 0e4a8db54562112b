package service

import (
	"context"

	"staffmatch/internal/dto"
	"staffmatch/internal/models"

	"go.uber.org/zap"
)

// ReferenceStore is the read-only lookup surface for static reference data.
type ReferenceStore interface {
	ListOptions(ctx context.Context) ([]*models.Option, error)
	ListQueriesByOption(ctx context.Context, optionID int64) ([]*models.Query, error)
	ListDepartments(ctx context.Context) ([]*models.Department, error)
	ListDesignationsByDepartment(ctx context.Context, departmentID int64) ([]*models.Designation, error)
}

type ReferenceService struct {
	refRepo ReferenceStore
	logger  *zap.Logger
}

func NewReferenceService(refRepo ReferenceStore, logger *zap.Logger) *ReferenceService {
	return &ReferenceService{
		refRepo: refRepo,
		logger:  logger,
	}
}

func (s *ReferenceService) ListOptions(ctx context.Context) ([]dto.OptionResponse, error) {
	options, err := s.refRepo.ListOptions(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.OptionResponse, 0, len(options))
	for _, opt := range options {
		resp = append(resp, dto.OptionResponse{ID: opt.ID, Name: opt.Name})
	}
	return resp, nil
}

func (s *ReferenceService) ListQueries(ctx context.Context, optionID int64) ([]dto.QueryResponse, error) {
	queries, err := s.refRepo.ListQueriesByOption(ctx, optionID)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.QueryResponse, 0, len(queries))
	for _, q := range queries {
		resp = append(resp, dto.QueryResponse{OptionID: q.OptionID, Ask: q.Ask, OrderNum: q.OrderNum})
	}
	return resp, nil
}

func (s *ReferenceService) ListDepartments(ctx context.Context) ([]dto.DepartmentResponse, error) {
	departments, err := s.refRepo.ListDepartments(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		resp = append(resp, dto.DepartmentResponse{ID: d.ID, Name: d.Name})
	}
	return resp, nil
}

func (s *ReferenceService) ListDesignations(ctx context.Context, departmentID int64) ([]dto.DesignationResponse, error) {
	designations, err := s.refRepo.ListDesignationsByDepartment(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.DesignationResponse, 0, len(designations))
	for _, d := range designations {
		resp = append(resp, dto.DesignationResponse{ID: d.ID, DepartmentID: d.DepartmentID, Title: d.Title})
	}
	return resp, nil
}
