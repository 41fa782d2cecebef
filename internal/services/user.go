package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/users-service/internal/logger"
	"github.com/sbilibin2017/users-service/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=user.go -destination=user_mock.go -package=services

// Error variables
var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUserConflict       = errors.New("user conflicts with an existing row")
	ErrUserNotFound       = errors.New("user does not exist")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error) // Returns nil when absent
	GetByID(ctx context.Context, id int64) (*models.User, error)        // Returns nil when absent
	List(ctx context.Context) ([]models.User, error)                    // Insertion order
	ListByCreatedAtDesc(ctx context.Context) ([]models.User, error)     // Newest first
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email string) (*models.User, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// seedUsers are inserted by Seed.
var seedUsers = []struct{ username, email string }{
	{"cnych", "qikqiak@gmail.com"},
	{"chyang", "icnych@gmail.com"},
}

// UserService implements the user operations behind the HTTP handlers.
type UserService struct {
	reader      UserReader
	writer      UserWriter
	kafkaWriter KafkaWriter
}

// NewUserService creates a new UserService. kafkaWriter may be nil.
func NewUserService(reader UserReader, writer UserWriter, kafkaWriter KafkaWriter) *UserService {
	return &UserService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// Create adds a user after checking that the email is not taken yet.
// A uniqueness conflict raised by the store itself is reported as ErrUserConflict.
func (svc *UserService) Create(ctx context.Context, username, email string) (*models.User, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email", "email", email, "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("email already exists", "email", email, "user_id", existing.ID)
		return nil, ErrEmailAlreadyExists
	}

	return svc.save(ctx, username, email)
}

// Add inserts a user without the duplicate pre-check.
func (svc *UserService) Add(ctx context.Context, username, email string) (*models.User, error) {
	return svc.save(ctx, username, email)
}

func (svc *UserService) save(ctx context.Context, username, email string) (*models.User, error) {
	user, err := svc.writer.Save(ctx, username, email)
	if err != nil {
		if errors.Is(err, models.ErrUniqueViolation) {
			logger.Log.Warnw("insert rejected by unique constraint", "email", email, "err", err)
			return nil, ErrUserConflict
		}
		logger.Log.Errorw("failed to save user", "email", email, "err", err)
		return nil, err
	}

	svc.publishUserEvent(ctx, models.UserEventCreated, user)
	return user, nil
}

// Get returns the user with the given id.
func (svc *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// List returns every user in insertion order.
func (svc *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// ListRecent returns every user, newest first.
func (svc *UserService) ListRecent(ctx context.Context) ([]models.User, error) {
	users, err := svc.reader.ListByCreatedAtDesc(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list recent users", "err", err)
		return nil, err
	}
	return users, nil
}

// Seed inserts the demo users, skipping emails that already exist.
// It returns the number of users inserted.
func (svc *UserService) Seed(ctx context.Context) (int, error) {
	inserted := 0
	for _, u := range seedUsers {
		_, err := svc.Create(ctx, u.username, u.email)
		switch {
		case err == nil:
			inserted++
		case errors.Is(err, ErrEmailAlreadyExists), errors.Is(err, ErrUserConflict):
		default:
			return inserted, err
		}
	}
	return inserted, nil
}

// publishUserEvent publishes a user event to Kafka.
// Failures are logged only; the stored user is the source of truth.
func (svc *UserService) publishUserEvent(ctx context.Context, eventType string, user *models.User) {
	if svc.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "type", eventType, "user_id", user.ID)
		return
	}

	event := models.UserEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal user event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(user.ID, 10)),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish user event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("User event published to Kafka", "event_id", event.EventID, "type", eventType, "user_id", user.ID)
	}
}
