// Package firestore реализует хранилище данных на основе Google Firestore.
// Данные каждого пользователя лежат в документе users/{uid} и его
// подколлекциях: preferences/settings, mealPlans/current, recipes, shoppingList.
// Контракты методов совпадают с реализацией на PostgreSQL, поэтому сервисы
// работают с обоими драйверами через одни и те же интерфейсы.
package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

const (
	usersCollection       = "users"
	preferencesCollection = "preferences"
	preferencesDoc        = "settings"
	mealPlansCollection   = "mealPlans"
	mealPlanDoc           = "current"
	recipesCollection     = "recipes"
	shoppingCollection    = "shoppingList"
)

// Storage инкапсулирует клиент Firestore.
type Storage struct {
	client *firestore.Client
}

// New создаёт клиент Firestore для указанного проекта.
// Если credentialsFile пуст, используются Application Default Credentials.
func New(ctx context.Context, projectID, credentialsFile string) (*Storage, error) {
	const op = "storage.firestore.New"

	conf := &firebase.Config{ProjectID: projectID}
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Storage{client: client}, nil
}

// Close закрывает клиент Firestore.
func (s *Storage) Close() error {
	return s.client.Close()
}

func (s *Storage) userRef(userUID string) *firestore.DocumentRef {
	return s.client.Collection(usersCollection).Doc(userUID)
}
