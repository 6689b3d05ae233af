package service

import (
	"context"
	"encoding/json"
	"fmt"

	"supportcenter/internal/actor"
	"supportcenter/internal/logger"
	"supportcenter/internal/metrics"
	"supportcenter/internal/model"
	"supportcenter/internal/repository"
)

const (
	DefaultAuditLimit = 20
	MaxAuditLimit     = 100
)

type AuditLogResponse struct {
	ID         string `json:"id"`
	ActorID    string `json:"actor_id"`
	Action     string `json:"action"`
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	Details    string `json:"details"`
	CreatedAt  string `json:"created_at"`
}

type AuditService interface {
	// Record stores an audit entry for the actor in ctx. It never fails the
	// caller: a storage error is logged and dropped.
	Record(ctx context.Context, action, entityType, entityID string, details interface{})
	ListAuditLogs(ctx context.Context, limit int) ([]AuditLogResponse, error)
}

type auditService struct {
	repo repository.AuditRepository
	log  logger.Recorder
}

// NewAuditService creates a new AuditService instance
func NewAuditService(repo repository.AuditRepository, log logger.Recorder) AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Record(ctx context.Context, action, entityType, entityID string, details interface{}) {
	entry := &model.AuditLog{
		ActorID:    actor.FromContext(ctx),
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
	}
	if details != nil {
		if raw, err := json.Marshal(details); err == nil {
			entry.Details = string(raw)
		}
	}

	if err := s.repo.Log(ctx, entry); err != nil {
		metrics.AuditEventsTotal.WithLabelValues(action, "dropped").Inc()
		s.log.Record(fmt.Sprintf("Failed to write audit entry %s %s: %v", action, entityID, err), logger.SeverityWarn)
		return
	}
	metrics.AuditEventsTotal.WithLabelValues(action, "stored").Inc()
}

// ListAuditLogs returns the newest entries, capped at MaxAuditLimit
func (s *auditService) ListAuditLogs(ctx context.Context, limit int) ([]AuditLogResponse, error) {
	if limit <= 0 {
		limit = DefaultAuditLimit
	}
	if limit > MaxAuditLimit {
		limit = MaxAuditLimit
	}

	logs, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fail(s.log, "fetch audit logs", classify("failed to fetch audit logs", err))
	}

	res := make([]AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		res = append(res, AuditLogResponse{
			ID:         l.ID.String(),
			ActorID:    l.ActorID,
			Action:     l.Action,
			EntityType: l.EntityType,
			EntityID:   l.EntityID,
			Details:    l.Details,
			CreatedAt:  l.CreatedAt.Format(timeLayout),
		})
	}
	return res, nil
}
