package quizzes

import (
	"context"
	"errors"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/Sumanraj-P/quizgenie-api/internal/models"
)

const (
	usersCollection   = "users"
	quizzesCollection = "quizzes"
)

// FirestoreStore reads quiz results from users/{user_id}/quizzes.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreClient opens a Firestore client authenticated by the given
// credentials file. An empty projectID is detected from the credentials.
// When FIRESTORE_EMULATOR_HOST is set the credentials file is not used.
func NewFirestoreClient(ctx context.Context, credentialsFile, projectID string) (*firestore.Client, error) {
	if projectID == "" {
		projectID = firestore.DetectProjectID
	}

	var opts []option.ClientOption
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}
	return client, nil
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// UserRef resolves a user id to its document reference.
func (s *FirestoreStore) UserRef(userID string) *firestore.DocumentRef {
	return s.client.Collection(usersCollection).Doc(userID)
}

func (s *FirestoreStore) ListQuizzes(ctx context.Context, userID string) ([]models.QuizDocument, error) {
	userRef := s.UserRef(userID)
	if userRef == nil {
		return nil, fmt.Errorf("invalid user id %q", userID)
	}

	iter := userRef.Collection(quizzesCollection).Documents(ctx)
	defer iter.Stop()

	var docs []models.QuizDocument
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list quizzes for %s: %w", userID, err)
		}
		docs = append(docs, models.QuizDocument{ID: snap.Ref.ID, Data: snap.Data()})
	}
	return docs, nil
}
