// internal/service/quiz_service.go
package service

import (
	"context"
	"errors"

	"go_manabi_quest/internal/middleware"
	"go_manabi_quest/internal/model"
	"go_manabi_quest/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizService interface {
	GetQuiz(ctx context.Context, quizID uuid.UUID) (*model.QuizResponse, error)
	SubmitAttempt(ctx context.Context, userID, quizID uuid.UUID, req *model.SubmitAttemptRequest) (*model.AttemptResultResponse, error)
}

type quizService struct {
	db          *gorm.DB
	quizRepo    repository.QuizRepository
	attemptRepo repository.AttemptRepository
	xpService   XPService
}

func NewQuizService(db *gorm.DB, quizRepo repository.QuizRepository, attemptRepo repository.AttemptRepository, xpService XPService) QuizService {
	return &quizService{
		db:          db,
		quizRepo:    quizRepo,
		attemptRepo: attemptRepo,
		xpService:   xpService,
	}
}

// GetQuiz は出題用のクイズを返します。正解はレスポンスに含めません。
func (s *quizService) GetQuiz(ctx context.Context, quizID uuid.UUID) (*model.QuizResponse, error) {
	logger := middleware.GetLogger(ctx).With("quiz_id", quizID)

	quiz, err := s.quizRepo.FindByID(ctx, s.db, quizID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("QUIZ_NOT_FOUND", "クイズが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to find quiz", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "クイズの取得に失敗しました。", "", err)
	}

	questions := make([]model.QuizQuestionResponse, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questions = append(questions, model.QuizQuestionResponse{
			QuestionID: q.QuestionID,
			Position:   q.Position,
			Text:       q.Text,
			Choices:    q.Choices,
		})
	}

	return &model.QuizResponse{
		QuizID:       quiz.QuizID,
		TopicID:      quiz.TopicID,
		Title:        quiz.Title,
		PassingScore: quiz.PassingScore,
		Questions:    questions,
	}, nil
}

// SubmitAttempt は解答を採点し、挑戦を追記記録した上でXP付与を行います。
// 不合格でも挑戦は必ず記録されます (XPは0)。
func (s *quizService) SubmitAttempt(ctx context.Context, userID, quizID uuid.UUID, req *model.SubmitAttemptRequest) (*model.AttemptResultResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "quiz_id", quizID)

	quiz, err := s.quizRepo.FindByID(ctx, s.db, quizID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("QUIZ_NOT_FOUND", "クイズが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to find quiz for attempt", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "クイズの取得に失敗しました。", "", err)
	}

	// 設問IDのパース (不正なキーはバリデーションエラー)
	answers := make(map[uuid.UUID]string, len(req.Answers))
	for key, choice := range req.Answers {
		questionID, parseErr := uuid.Parse(key)
		if parseErr != nil {
			return nil, model.NewAppError("INVALID_ANSWERS", "解答の設問IDが不正です。", "answers", model.ErrInvalidInput)
		}
		answers[questionID] = choice
	}

	score, err := ComputeScore(quiz.Questions, answers)
	if err != nil {
		return nil, err
	}
	passed := score >= quiz.PassingScore

	attempt := &model.QuizAttempt{
		AttemptID: uuid.New(),
		UserID:    userID,
		QuizID:    quizID,
		Score:     score,
		Answers:   req.Answers,
	}
	if err := s.attemptRepo.Create(ctx, s.db, attempt); err != nil {
		logger.Error("Failed to record quiz attempt", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "挑戦の記録に失敗しました。", "", err)
	}

	xpResult, err := s.xpService.AwardForQuiz(ctx, userID, quiz.TopicID, score, passed)
	if err != nil {
		logger.Error("Failed to award quiz XP", "error", err)
		return nil, err
	}

	logger.Info("Quiz attempt recorded", "score", score, "passed", passed, "awarded_xp", xpResult.AwardedXP)
	return &model.AttemptResultResponse{
		AttemptID: attempt.AttemptID,
		Score:     score,
		Passed:    passed,
		XP:        xpResult,
	}, nil
}
