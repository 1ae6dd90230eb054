package firestore

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/vitalbites-backend/internal/models"
	"github.com/magabrotheeeer/vitalbites-backend/internal/storage"
)

type preferencesDocData struct {
	Targets              map[string]int               `firestore:"targets"`
	HealthFocus          map[string]string            `firestore:"healthFocus"`
	DietaryRestrictions  []string                     `firestore:"dietaryRestrictions"`
	TimeAvailability     map[string]map[string]string `firestore:"timeAvailability"`
	About                string                       `firestore:"about"`
	FavoriteFoods        string                       `firestore:"favoriteFoods"`
	SampleMealPlan       string                       `firestore:"sampleMealPlan"`
	SocialMediaFavorites string                       `firestore:"socialMediaFavorites"`
	FamiliarityLevel     int                          `firestore:"familiarityLevel"`
	CulturalBackground   []string                     `firestore:"culturalBackground"`
}

// UpsertPreferences полностью перезаписывает документ предпочтений пользователя.
func (s *Storage) UpsertPreferences(ctx context.Context, userUID string, prefs models.Preferences) error {
	const op = "storage.firestore.UpsertPreferences"

	doc := preferencesDocData{
		Targets:              prefs.Targets,
		HealthFocus:          prefs.HealthFocus,
		DietaryRestrictions:  prefs.DietaryRestrictions,
		TimeAvailability:     prefs.TimeAvailability,
		About:                prefs.About,
		FavoriteFoods:        prefs.FavoriteFoods,
		SampleMealPlan:       prefs.SampleMealPlan,
		SocialMediaFavorites: prefs.SocialMediaFavorites,
		FamiliarityLevel:     prefs.FamiliarityLevel,
		CulturalBackground:   prefs.CulturalBackground,
	}
	ref := s.userRef(userUID).Collection(preferencesCollection).Doc(preferencesDoc)
	if _, err := ref.Set(ctx, doc); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetPreferences возвращает предпочтения пользователя.
// Если документа нет, возвращает storage.ErrNotFound.
func (s *Storage) GetPreferences(ctx context.Context, userUID string) (*models.Preferences, error) {
	const op = "storage.firestore.GetPreferences"

	snap, err := s.userRef(userUID).Collection(preferencesCollection).Doc(preferencesDoc).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var doc preferencesDocData
	if err = snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &models.Preferences{
		Targets:              doc.Targets,
		HealthFocus:          doc.HealthFocus,
		DietaryRestrictions:  doc.DietaryRestrictions,
		TimeAvailability:     doc.TimeAvailability,
		About:                doc.About,
		FavoriteFoods:        doc.FavoriteFoods,
		SampleMealPlan:       doc.SampleMealPlan,
		SocialMediaFavorites: doc.SocialMediaFavorites,
		FamiliarityLevel:     doc.FamiliarityLevel,
		CulturalBackground:   doc.CulturalBackground,
	}, nil
}
