package repository

import (
	"context"
	"fmt"
	"strings"

	"supportcenter/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FAQRepository interface {
	Create(ctx context.Context, faq *model.FAQ) error
	Update(ctx context.Context, faq *model.FAQ) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.FAQ, error)
	List(ctx context.Context) ([]model.FAQ, error)
	ListByCategory(ctx context.Context, category string) ([]model.FAQ, error)
	Search(ctx context.Context, keyword string) ([]model.FAQ, error)
}

type faqRepository struct {
	db *gorm.DB
}

func NewFAQRepository(db *gorm.DB) FAQRepository {
	return &faqRepository{db: db}
}

func (r *faqRepository) Create(ctx context.Context, faq *model.FAQ) error {
	return GetDB(ctx, r.db).Create(faq).Error
}

func (r *faqRepository) Update(ctx context.Context, faq *model.FAQ) error {
	return GetDB(ctx, r.db).Save(faq).Error
}

func (r *faqRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.FAQ{}).Error
}

func (r *faqRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.FAQ, error) {
	var faq model.FAQ
	if err := GetDB(ctx, r.db).First(&faq, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &faq, nil
}

func (r *faqRepository) List(ctx context.Context) ([]model.FAQ, error) {
	faqs := make([]model.FAQ, 0)
	if err := GetDB(ctx, r.db).Order("created_at desc").Find(&faqs).Error; err != nil {
		return nil, err
	}
	return faqs, nil
}

func (r *faqRepository) ListByCategory(ctx context.Context, category string) ([]model.FAQ, error) {
	faqs := make([]model.FAQ, 0)
	if err := GetDB(ctx, r.db).Where("category = ?", category).Order("created_at desc").Find(&faqs).Error; err != nil {
		return nil, err
	}
	return faqs, nil
}

// Search matches keyword as a literal substring of the question or the
// answer. Postgres folds case for every letter; sqlite's LIKE only folds
// ASCII, so non-ASCII letters there must match exactly.
func (r *faqRepository) Search(ctx context.Context, keyword string) ([]model.FAQ, error) {
	db := GetDB(ctx, r.db)
	pattern := "%" + EscapeLike(keyword) + "%"
	faqs := make([]model.FAQ, 0)
	err := db.
		Where(fmt.Sprintf(`question %[1]s ? ESCAPE '\' OR answer %[1]s ? ESCAPE '\'`, likeOperator(db)), pattern, pattern).
		Order("created_at desc").
		Find(&faqs).Error
	if err != nil {
		return nil, err
	}
	return faqs, nil
}

func likeOperator(db *gorm.DB) string {
	if db.Dialector.Name() == "postgres" {
		return "ILIKE"
	}
	return "LIKE"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike neutralises LIKE wildcards so s only ever matches itself.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}
