package service_test

import (
	"context"
	"testing"

	"supportcenter/internal/actor"
	"supportcenter/internal/model"
	"supportcenter/internal/service"
	"supportcenter/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFAQ(t *testing.T) {
	f := newFixture(t)
	author := uuid.NewString()
	ctx := actor.WithID(context.Background(), author)

	faq, err := f.faqs.CreateFAQ(ctx, service.CreateFAQRequest{Question: "How do I sign in?", Answer: "Use your email."})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultFAQCategory, faq.Category)
	assert.Equal(t, author, faq.CreatedBy)
	assert.Equal(t, author, faq.UpdatedBy)

	explicit := uuid.NewString()
	faq, err = f.faqs.CreateFAQ(ctx, service.CreateFAQRequest{
		Question:  "Refunds?",
		Answer:    "Within 30 days.",
		Category:  "Billing",
		CreatedBy: explicit,
	})
	require.NoError(t, err)
	assert.Equal(t, explicit, faq.CreatedBy)
	assert.Equal(t, "Billing", faq.Category)
}

func TestCreateFAQRequiresAuthorAndContent(t *testing.T) {
	f := newFixture(t)

	_, err := f.faqs.CreateFAQ(context.Background(), service.CreateFAQRequest{Question: "Q", Answer: "A"})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	ctx := actor.WithID(context.Background(), uuid.NewString())
	_, err = f.faqs.CreateFAQ(ctx, service.CreateFAQRequest{Question: "  ", Answer: "A"})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	bad := actor.WithID(context.Background(), "someone")
	_, err = f.faqs.CreateFAQ(bad, service.CreateFAQRequest{Question: "Q", Answer: "A"})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestUpdateFAQTracksEditor(t *testing.T) {
	f := newFixture(t)
	author, editor := uuid.NewString(), uuid.NewString()

	faq, err := f.faqs.CreateFAQ(actor.WithID(context.Background(), author),
		service.CreateFAQRequest{Question: "Opening hours?", Answer: "9 to 5"})
	require.NoError(t, err)

	updated, err := f.faqs.UpdateFAQ(actor.WithID(context.Background(), editor), faq.ID,
		service.UpdateFAQRequest{Answer: strPtr("8 to 6")})
	require.NoError(t, err)
	assert.Equal(t, "Opening hours?", updated.Question)
	assert.Equal(t, "8 to 6", updated.Answer)
	assert.Equal(t, author, updated.CreatedBy)
	assert.Equal(t, editor, updated.UpdatedBy)

	_, err = f.faqs.UpdateFAQ(context.Background(), uuid.NewString(), service.UpdateFAQRequest{Answer: strPtr("x")})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	require.NoError(t, f.faqs.DeleteFAQ(context.Background(), faq.ID))
	got, err := f.faqs.GetFAQ(context.Background(), faq.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFAQCategoryAndSearch(t *testing.T) {
	f := newFixture(t)
	ctx := actor.WithID(context.Background(), uuid.NewString())

	for _, req := range []service.CreateFAQRequest{
		{Question: "Is shipping 100% free?", Answer: "Over $50", Category: "Shipping"},
		{Question: "Track my order", Answer: "See order_status page", Category: "Shipping"},
		{Question: "Change email", Answer: "Profile settings"},
	} {
		_, err := f.faqs.CreateFAQ(ctx, req)
		require.NoError(t, err)
	}

	all, err := f.faqs.ListFAQs(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	shipping, err := f.faqs.ListByCategory(ctx, "Shipping")
	require.NoError(t, err)
	assert.Len(t, shipping, 2)

	hits, err := f.faqs.SearchFAQs(ctx, "100%")
	require.NoError(t, err)
	assert.Len(t, hits, 1)

	hits, err = f.faqs.SearchFAQs(ctx, "_")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Track my order", hits[0].Question)

	hits, err = f.faqs.SearchFAQs(ctx, "profile")
	require.NoError(t, err)
	assert.Len(t, hits, 1)

	_, err = f.faqs.SearchFAQs(ctx, "   ")
	assert.ErrorIs(t, err, apperror.ErrValidation)
}
