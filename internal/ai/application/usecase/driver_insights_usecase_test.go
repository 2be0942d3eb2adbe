package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/application/ports/in"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/domain"
)

// fakeCatalogReader — каталог в памяти для тестов use case
type fakeCatalogReader struct {
	drivers  map[string]domain.DriverRef
	reviews  map[string][]domain.ReviewInput
	profiles []domain.DriverProfile
	cars     []domain.CarSummary
}

func (f *fakeCatalogReader) GetDriver(ctx context.Context, driverID string) (*domain.DriverRef, error) {
	d, ok := f.drivers[driverID]
	if !ok {
		return nil, domain.ErrDriverNotFound
	}
	return &d, nil
}

func (f *fakeCatalogReader) ListDriverReviews(ctx context.Context, driverID string) ([]domain.ReviewInput, error) {
	return f.reviews[driverID], nil
}

func (f *fakeCatalogReader) ListDriverProfiles(ctx context.Context) ([]domain.DriverProfile, error) {
	return f.profiles, nil
}

func (f *fakeCatalogReader) ListCarSummaries(ctx context.Context) ([]domain.CarSummary, error) {
	return f.cars, nil
}

func (f *fakeCatalogReader) ListDriverSummaries(ctx context.Context) ([]domain.DriverSummary, error) {
	return nil, nil
}

func TestDriverInsightsService_WithReviews(t *testing.T) {
	catalog := &fakeCatalogReader{
		drivers: map[string]domain.DriverRef{
			"d1": {ID: "d1", Name: "Marcus", Experience: 8},
		},
		reviews: map[string][]domain.ReviewInput{
			"d1": {
				{Rating: 5, Comment: "professional and safe"},
				{Rating: 4, Comment: "on time, friendly"},
			},
		},
	}
	svc := NewDriverInsightsService(catalog, domain.DefaultLexicon(), newTestLogger())

	output, err := svc.Execute(context.Background(), "d1")

	require.NoError(t, err)
	assert.Equal(t, "d1", output.DriverID)
	assert.Equal(t, "Marcus", output.DriverName)
	assert.False(t, output.SampleData)
	assert.Equal(t, 90, output.Insights.OverallScore)
}

func TestDriverInsightsService_SynthesizesSamplesWhenNoReviews(t *testing.T) {
	catalog := &fakeCatalogReader{
		drivers: map[string]domain.DriverRef{
			"d1": {ID: "d1", Name: "Ivan", Experience: 3},
		},
	}
	svc := NewDriverInsightsService(catalog, domain.DefaultLexicon(), newTestLogger())

	output, err := svc.Execute(context.Background(), "d1")

	require.NoError(t, err)
	assert.True(t, output.SampleData)
	// Профиль построен на трех синтетических отзывах, не на cold-start константах
	assert.Equal(t, 93, output.Insights.OverallScore)
}

func TestDriverInsightsService_DriverNotFound(t *testing.T) {
	svc := NewDriverInsightsService(&fakeCatalogReader{}, domain.DefaultLexicon(), newTestLogger())

	_, err := svc.Execute(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrDriverNotFound)
}

func TestAnalyzeReviewService_Validation(t *testing.T) {
	catalog := &fakeCatalogReader{
		drivers: map[string]domain.DriverRef{
			"d1": {ID: "d1", Name: "Marcus", Experience: 8},
		},
	}
	svc := NewAnalyzeReviewService(catalog, domain.DefaultLexicon(), newTestLogger())

	t.Run("empty review yields neutral baseline", func(t *testing.T) {
		result, err := svc.Execute(context.Background(), in.AnalyzeReviewInput{Review: "  ", DriverID: "d1"})
		require.NoError(t, err)
		assert.Equal(t, 3.0, result.SentimentScore)
		for _, skill := range domain.DefaultLexicon().SkillOrder {
			assert.Equal(t, 3.0, result.SkillAnalysis[skill])
		}
		assert.Empty(t, result.Insights)
	})

	t.Run("unknown driver rejected", func(t *testing.T) {
		_, err := svc.Execute(context.Background(), in.AnalyzeReviewInput{Review: "great ride", DriverID: "nope"})
		assert.ErrorIs(t, err, domain.ErrDriverNotFound)
	})

	t.Run("analysis carries driver identity", func(t *testing.T) {
		result, err := svc.Execute(context.Background(), in.AnalyzeReviewInput{Review: "excellent driver", DriverID: "d1"})
		require.NoError(t, err)
		assert.Equal(t, "Marcus", result.DriverName)
		assert.Greater(t, result.SentimentScore, 3.0)
	})
}

func TestRecommendationsService_UsesCatalogProfiles(t *testing.T) {
	catalog := &fakeCatalogReader{
		profiles: []domain.DriverProfile{
			{ID: "d1", Name: "Marcus", Experience: 10, Rating: 480, Specialties: []string{"City Tours"}},
			{ID: "d2", Name: "Ivan", Experience: 1, Rating: 300},
		},
	}
	svc := NewRecommendationsService(catalog, newTestLogger())

	recs, err := svc.Execute(context.Background(), in.RecommendationsInput{
		UserID:      "u1",
		Preferences: "city tours please",
	})

	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "d1", recs[0].DriverID)
	assert.Equal(t, "Specializes in City Tours", recs[0].ReasonForMatch)
}

func TestAssistantService_EmptyQueryRejected(t *testing.T) {
	svc := NewAssistantService(&fakeCatalogReader{}, newTestLogger())

	_, err := svc.Execute(context.Background(), in.AssistantInput{Query: " "})

	assert.ErrorIs(t, err, domain.ErrEmptyQuery)
}

func TestAssistantService_LoadsCarContextOnDemand(t *testing.T) {
	catalog := &fakeCatalogReader{
		cars: []domain.CarSummary{
			{ID: "c1", Name: "Aventador", Brand: "Lamborghini", Price: 1200},
			{ID: "c2", Name: "Ghost", Brand: "Rolls Royce", Price: 1150},
		},
	}
	svc := NewAssistantService(catalog, newTestLogger())

	resp, err := svc.Execute(context.Background(), in.AssistantInput{
		Query:          "what cars do you offer?",
		IncludeCarInfo: true,
	})

	require.NoError(t, err)
	assert.Contains(t, resp.Response, "2 premium vehicles")
	assert.Contains(t, resp.Response, "Lamborghini, Rolls Royce")
}
