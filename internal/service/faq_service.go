package service

import (
	"context"
	"fmt"
	"strings"

	"supportcenter/internal/actor"
	"supportcenter/internal/logger"
	"supportcenter/internal/model"
	"supportcenter/internal/repository"
	"supportcenter/pkg/apperror"

	"github.com/google/uuid"
)

type CreateFAQRequest struct {
	Question string `json:"question" binding:"required,notblank"`
	Answer   string `json:"answer" binding:"required,notblank"`
	Category string `json:"category"`
	// CreatedBy falls back to the request actor when omitted.
	CreatedBy string `json:"created_by" binding:"omitempty,uuid"`
}

type UpdateFAQRequest struct {
	Question *string `json:"question" binding:"omitempty,notblank"`
	Answer   *string `json:"answer" binding:"omitempty,notblank"`
	Category *string `json:"category"`
}

type FAQResponse struct {
	ID        string `json:"id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Category  string `json:"category"`
	CreatedBy string `json:"created_by"`
	UpdatedBy string `json:"updated_by"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type FAQService interface {
	ListFAQs(ctx context.Context) ([]FAQResponse, error)
	// GetFAQ returns nil, nil when the FAQ does not exist.
	GetFAQ(ctx context.Context, id string) (*FAQResponse, error)
	CreateFAQ(ctx context.Context, req CreateFAQRequest) (*FAQResponse, error)
	UpdateFAQ(ctx context.Context, id string, req UpdateFAQRequest) (*FAQResponse, error)
	DeleteFAQ(ctx context.Context, id string) error
	ListByCategory(ctx context.Context, category string) ([]FAQResponse, error)
	// SearchFAQs matches keyword literally against question and answer.
	SearchFAQs(ctx context.Context, keyword string) ([]FAQResponse, error)
}

type faqService struct {
	repo  repository.FAQRepository
	tx    repository.TransactionManager
	audit AuditService
	log   logger.Recorder
}

func NewFAQService(repo repository.FAQRepository, tx repository.TransactionManager, audit AuditService, log logger.Recorder) FAQService {
	return &faqService{repo: repo, tx: tx, audit: audit, log: log}
}

func toFAQResponse(f model.FAQ) FAQResponse {
	return FAQResponse{
		ID:        f.ID.String(),
		Question:  f.Question,
		Answer:    f.Answer,
		Category:  f.Category,
		CreatedBy: f.CreatedBy.String(),
		UpdatedBy: f.UpdatedBy.String(),
		CreatedAt: f.CreatedAt.Format(timeLayout),
		UpdatedAt: f.UpdatedAt.Format(timeLayout),
	}
}

func toFAQResponses(faqs []model.FAQ) []FAQResponse {
	res := make([]FAQResponse, 0, len(faqs))
	for _, f := range faqs {
		res = append(res, toFAQResponse(f))
	}
	return res
}

// author resolves the acting user, preferring an explicit id over the one in ctx.
func author(ctx context.Context, explicit string) (uuid.UUID, error) {
	raw := strings.TrimSpace(explicit)
	if raw == "" {
		raw = actor.FromContext(ctx)
	}
	if raw == "" {
		return uuid.Nil, apperror.Validation("created_by is required")
	}
	return parseID("user", raw)
}

func (s *faqService) ListFAQs(ctx context.Context) ([]FAQResponse, error) {
	faqs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fail(s.log, "fetch FAQs", classify("failed to fetch FAQs", err))
	}
	return toFAQResponses(faqs), nil
}

func (s *faqService) GetFAQ(ctx context.Context, id string) (*FAQResponse, error) {
	faqID, err := parseID("faq", id)
	if err != nil {
		return nil, err
	}

	faq, err := s.repo.FindByID(ctx, faqID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fail(s.log, "fetch FAQ", classify("failed to fetch FAQ", err))
	}

	resp := toFAQResponse(*faq)
	return &resp, nil
}

func (s *faqService) CreateFAQ(ctx context.Context, req CreateFAQRequest) (*FAQResponse, error) {
	const op = "create FAQ"

	question := strings.TrimSpace(req.Question)
	answer := strings.TrimSpace(req.Answer)
	if question == "" || answer == "" {
		return nil, fail(s.log, op, apperror.Validation("question and answer are required"))
	}
	createdBy, err := author(ctx, req.CreatedBy)
	if err != nil {
		return nil, fail(s.log, op, err)
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = model.DefaultFAQCategory
	}

	faq := model.FAQ{
		Question:  question,
		Answer:    answer,
		Category:  category,
		CreatedBy: createdBy,
		UpdatedBy: createdBy,
	}
	if err := s.repo.Create(ctx, &faq); err != nil {
		return nil, fail(s.log, op, classify("failed to create FAQ", err))
	}

	s.log.Record(fmt.Sprintf("FAQ created with ID: %s", faq.ID), logger.SeverityInfo)
	s.audit.Record(ctx, model.ActionCreateFAQ, "faq", faq.ID.String(), map[string]string{"category": faq.Category})

	resp := toFAQResponse(faq)
	return &resp, nil
}

func (s *faqService) UpdateFAQ(ctx context.Context, id string, req UpdateFAQRequest) (*FAQResponse, error) {
	const op = "update FAQ"

	faqID, err := parseID("faq", id)
	if err != nil {
		return nil, fail(s.log, op, err)
	}
	question, answer := trimmed(req.Question), trimmed(req.Answer)
	if (question != nil && *question == "") || (answer != nil && *answer == "") {
		return nil, fail(s.log, op, apperror.Validation("question and answer must not be blank"))
	}

	var editor uuid.UUID
	if raw := actor.FromContext(ctx); raw != "" {
		if editor, err = parseID("user", raw); err != nil {
			return nil, fail(s.log, op, err)
		}
	}

	var faq *model.FAQ
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		found, err := s.repo.FindByID(txCtx, faqID)
		if err != nil {
			if isNotFound(err) {
				return apperror.NotFound("faq", faqID.String())
			}
			return classify("failed to fetch FAQ", err)
		}
		if question != nil {
			found.Question = *question
		}
		if answer != nil {
			found.Answer = *answer
		}
		if category := trimmed(req.Category); category != nil {
			if *category == "" {
				*category = model.DefaultFAQCategory
			}
			found.Category = *category
		}
		if editor != uuid.Nil {
			found.UpdatedBy = editor
		}
		if err := s.repo.Update(txCtx, found); err != nil {
			return classify("failed to update FAQ", err)
		}
		faq = found
		return nil
	})
	if err != nil {
		return nil, fail(s.log, op, err)
	}

	s.log.Record(fmt.Sprintf("FAQ updated with ID: %s", faqID), logger.SeverityInfo)
	s.audit.Record(ctx, model.ActionUpdateFAQ, "faq", faqID.String(), nil)

	resp := toFAQResponse(*faq)
	return &resp, nil
}

func (s *faqService) DeleteFAQ(ctx context.Context, id string) error {
	const op = "delete FAQ"

	faqID, err := parseID("faq", id)
	if err != nil {
		return fail(s.log, op, err)
	}
	if err := s.repo.Delete(ctx, faqID); err != nil {
		return fail(s.log, op, classify("failed to delete FAQ", err))
	}

	s.log.Record(fmt.Sprintf("FAQ deleted with ID: %s", faqID), logger.SeverityInfo)
	s.audit.Record(ctx, model.ActionDeleteFAQ, "faq", faqID.String(), nil)
	return nil
}

func (s *faqService) ListByCategory(ctx context.Context, category string) ([]FAQResponse, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, apperror.Validation("category is required")
	}

	faqs, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, fail(s.log, "fetch FAQs by category", classify("failed to fetch FAQs", err))
	}
	return toFAQResponses(faqs), nil
}

func (s *faqService) SearchFAQs(ctx context.Context, keyword string) ([]FAQResponse, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, apperror.Validation("keyword is required")
	}

	faqs, err := s.repo.Search(ctx, keyword)
	if err != nil {
		return nil, fail(s.log, "search FAQs", classify("failed to search FAQs", err))
	}
	return toFAQResponses(faqs), nil
}
