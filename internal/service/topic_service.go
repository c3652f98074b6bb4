// internal/service/topic_service.go
package service

import (
	"context"
	"errors"
	"time"

	"go_manabi_quest/internal/config"
	"go_manabi_quest/internal/middleware"
	"go_manabi_quest/internal/model"
	"go_manabi_quest/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TopicService interface {
	UpdateReadProgress(ctx context.Context, userID, topicID uuid.UUID, ratio float64) (*model.ReadProgressResponse, error)
	GetLessonTopics(ctx context.Context, userID, lessonID uuid.UUID) ([]*model.TopicStateResponse, error)
}

type topicService struct {
	db          *gorm.DB
	lessonRepo  repository.LessonRepository
	readRepo    repository.ReadRecordRepository
	attemptRepo repository.AttemptRepository
	xpService   XPService
	cfg         *config.Config
}

func NewTopicService(db *gorm.DB, lessonRepo repository.LessonRepository, readRepo repository.ReadRecordRepository, attemptRepo repository.AttemptRepository, xpService XPService, cfg *config.Config) TopicService {
	return &topicService{
		db:          db,
		lessonRepo:  lessonRepo,
		readRepo:    readRepo,
		attemptRepo: attemptRepo,
		xpService:   xpService,
		cfg:         cfg,
	}
}

// UpdateReadProgress はスクロール読了率を受け取り、読了レコードをupsertします。
// 読了しきい値を超えたら読了XPを付与します (台帳側で二重付与は防がれる)。
// 一度読了したトピックが未読に戻ることはありません。
func (s *topicService) UpdateReadProgress(ctx context.Context, userID, topicID uuid.UUID, ratio float64) (*model.ReadProgressResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "topic_id", topicID)

	if ratio < 0 || ratio > 1 {
		return nil, model.NewAppError("INVALID_RATIO", "読了率は0から1の範囲である必要があります。", "ratio", model.ErrInvalidInput)
	}

	if _, err := s.lessonRepo.FindTopicByID(ctx, s.db, topicID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("TOPIC_NOT_FOUND", "トピックが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to find topic", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "読了状態の更新に失敗しました。", "", err)
	}

	crossed := ratio >= s.cfg.App.ReadCompletionThreshold

	var completed bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record, err := s.readRepo.Find(ctx, tx, userID, topicID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error finding read record in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "読了状態の確認中にエラーが発生しました。", "", err)
		}

		isFound := !errors.Is(err, model.ErrNotFound)
		now := time.Now()

		if !isFound {
			newRecord := &model.ReadRecord{
				ReadID:    uuid.New(),
				UserID:    userID,
				TopicID:   topicID,
				Completed: crossed,
			}
			if crossed {
				newRecord.CompletedAt = &now
			}
			if createErr := s.readRepo.Create(ctx, tx, newRecord); createErr != nil {
				if errors.Is(createErr, model.ErrConflict) {
					// 同時upsertの競合。相手側のレコードが生きているのでそのまま成功扱い。
					logger.Warn("Concurrent read record creation detected")
					completed = crossed
					return nil
				}
				logger.Error("Error creating read record", "error", createErr)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "読了状態の作成に失敗しました。", "", createErr)
			}
			completed = newRecord.Completed
			return nil
		}

		// 既存レコード: 読了への遷移のみ反映する
		if crossed && !record.Completed {
			record.Completed = true
			record.CompletedAt = &now
			if updateErr := s.readRepo.Update(ctx, tx, record); updateErr != nil {
				logger.Error("Error updating read record", "error", updateErr)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "読了状態の更新に失敗しました。", "", updateErr)
			}
		}
		completed = record.Completed
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := &model.ReadProgressResponse{Completed: completed}

	// 読了していればXPを付与する。再トリガーは台帳側で0XPに落ちる。
	if completed {
		xpResult, err := s.xpService.AwardForRead(ctx, userID, topicID)
		if err != nil {
			logger.Error("Failed to award read XP", "error", err)
			return nil, err
		}
		resp.XP = xpResult
	}

	return resp, nil
}

// GetLessonTopics はレッスン内トピックの一覧を、アンロック状態付きで返します
func (s *topicService) GetLessonTopics(ctx context.Context, userID, lessonID uuid.UUID) ([]*model.TopicStateResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "lesson_id", lessonID)

	if _, err := s.lessonRepo.FindByID(ctx, s.db, lessonID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("LESSON_NOT_FOUND", "レッスンが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to find lesson", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "レッスンの取得に失敗しました。", "", err)
	}

	topics, err := s.lessonRepo.FindTopicsByLesson(ctx, s.db, lessonID)
	if err != nil {
		logger.Error("Failed to find topics for lesson", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "トピック一覧の取得に失敗しました。", "", err)
	}

	// レッスン内クイズの合格集合を解答ログから導出する
	quizIDs := make([]uuid.UUID, 0, len(topics))
	passingScores := make(map[uuid.UUID]int, len(topics))
	for _, t := range topics {
		if t.Quiz != nil {
			quizIDs = append(quizIDs, t.Quiz.QuizID)
			passingScores[t.Quiz.QuizID] = t.Quiz.PassingScore
		}
	}

	attempts, err := s.attemptRepo.FindByUserAndQuizzes(ctx, s.db, userID, quizIDs)
	if err != nil {
		logger.Error("Failed to find attempts for lesson", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "挑戦履歴の取得に失敗しました。", "", err)
	}

	passed := make(map[uuid.UUID]bool, len(quizIDs))
	for _, a := range attempts {
		if a.Score >= passingScores[a.QuizID] {
			passed[a.QuizID] = true
		}
	}

	states := ComputeUnlockState(topics, passed)

	responses := make([]*model.TopicStateResponse, 0, len(topics))
	for i, t := range topics {
		resp := &model.TopicStateResponse{
			TopicID:   t.TopicID,
			Title:     t.Title,
			Position:  t.Position,
			Locked:    states[i].Locked,
			Completed: states[i].Completed,
		}
		if t.Quiz != nil {
			quizID := t.Quiz.QuizID
			resp.QuizID = &quizID
		}
		responses = append(responses, resp)
	}

	return responses, nil
}
