package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/greenpath/internal/client/models"
	"github.com/dmitrijs2005/greenpath/internal/client/repositories/kv"
	"github.com/dmitrijs2005/greenpath/internal/client/session"
	"github.com/dmitrijs2005/greenpath/internal/common"
	"github.com/dmitrijs2005/greenpath/internal/logging"
	"github.com/jonboulle/clockwork"
)

// KeyFeedback is the kv key holding the feedback array.
const KeyFeedback = "feedback"

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

type FeedbackForm struct {
	Name    string `json:"name" validate:"required"`
	Message string `json:"message" validate:"min=10"`
}

var feedbackMessages = map[string]string{
	"name.required": "Name is required",
	"message.min":   "Message must be at least 10 characters",
}

// FeedbackService appends to and reads the feedback log.
type FeedbackService interface {
	Submit(ctx context.Context, form FeedbackForm) (*models.Feedback, error)
	List(ctx context.Context) ([]models.Feedback, error)
}

type feedbackService struct {
	tx      kv.Transactor
	session *session.Context
	clock   clockwork.Clock
	log     logging.Logger
}

func NewFeedbackService(tx kv.Transactor, sess *session.Context, clock clockwork.Clock, log logging.Logger) FeedbackService {
	return &feedbackService{tx: tx, session: sess, clock: clock, log: log}
}

func (s *feedbackService) Submit(ctx context.Context, form FeedbackForm) (*models.Feedback, error) {
	user, ok := s.session.User()
	if !ok {
		return nil, common.ErrNoActiveUser
	}
	if err := validateForm(form, feedbackMessages); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	fb := models.Feedback{
		ID:        "fb_" + strconv.FormatInt(now.UnixMilli(), 10),
		Name:      form.Name,
		Message:   form.Message,
		Date:      now.UTC().Format(isoMillis),
		UserEmail: user.Email,
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context, repo kv.Repository) error {
		all, err := readFeedback(ctx, repo)
		if err != nil {
			return err
		}
		raw, err := json.Marshal(append(all, fb))
		if err != nil {
			return fmt.Errorf("encode feedback: %w", err)
		}
		return repo.Set(ctx, KeyFeedback, raw)
	})
	if err != nil {
		return nil, fmt.Errorf("submit feedback: %w", err)
	}

	s.log.Info(ctx, "feedback submitted", "id", fb.ID, "email", fb.UserEmail)
	return &fb, nil
}

// List returns every submitted feedback in submission order.
func (s *feedbackService) List(ctx context.Context) ([]models.Feedback, error) {
	var all []models.Feedback
	err := s.tx.WithinTx(ctx, func(ctx context.Context, repo kv.Repository) error {
		var err error
		all, err = readFeedback(ctx, repo)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return all, nil
}

func readFeedback(ctx context.Context, repo kv.Repository) ([]models.Feedback, error) {
	raw, err := repo.Get(ctx, KeyFeedback)
	if err != nil || raw == nil {
		return nil, err
	}
	var all []models.Feedback
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", common.ErrCorruptPersistedState, KeyFeedback, err)
	}
	return all, nil
}
