// internal/service/progress_service.go
package service

import (
	"context"
	"errors"
	"math"
	"sort"

	"go_manabi_quest/internal/config"
	"go_manabi_quest/internal/middleware"
	"go_manabi_quest/internal/model"
	"go_manabi_quest/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AggregateOptions は集計のチューニング値 (設定から渡す)
type AggregateOptions struct {
	StrongCutoff int // 平均がこの値以上で得意カテゴリ候補
	WeakCutoff   int // 平均がこの値未満で苦手カテゴリ候補
	TopK         int // 得意・苦手それぞれの最大件数
}

// Aggregate は解答ログからカテゴリ別サマリを導出する純関数です。
// meta に存在しないクイズへの挑戦は集計対象外 (削除済みクイズの残骸)。
// 統計はカテゴリ名昇順、得意は平均降順・苦手は平均昇順で、同値はカテゴリ名昇順。
func Aggregate(attempts []*model.QuizAttempt, meta map[uuid.UUID]model.QuizMeta, opts AggregateOptions) *model.ProgressSummary {
	type acc struct {
		sum    int
		count  int
		passed int
	}
	byCategory := make(map[string]*acc)

	for _, a := range attempts {
		m, ok := meta[a.QuizID]
		if !ok {
			continue
		}
		entry := byCategory[m.Category]
		if entry == nil {
			entry = &acc{}
			byCategory[m.Category] = entry
		}
		entry.sum += a.Score
		entry.count++
		if a.Score >= m.PassingScore {
			entry.passed++
		}
	}

	stats := make([]model.CategoryStat, 0, len(byCategory))
	for category, entry := range byCategory {
		stats = append(stats, model.CategoryStat{
			Category: category,
			Attempts: entry.count,
			AvgScore: int(math.Round(float64(entry.sum) / float64(entry.count))),
			PassRate: int(math.Round(float64(entry.passed) / float64(entry.count) * 100)),
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Category < stats[j].Category
	})

	strong := make([]model.CategoryStat, 0, len(stats))
	weak := make([]model.CategoryStat, 0, len(stats))
	for _, st := range stats {
		if st.AvgScore >= opts.StrongCutoff {
			strong = append(strong, st)
		}
		if st.AvgScore < opts.WeakCutoff {
			weak = append(weak, st)
		}
	}
	sort.SliceStable(strong, func(i, j int) bool {
		if strong[i].AvgScore != strong[j].AvgScore {
			return strong[i].AvgScore > strong[j].AvgScore
		}
		return strong[i].Category < strong[j].Category
	})
	sort.SliceStable(weak, func(i, j int) bool {
		if weak[i].AvgScore != weak[j].AvgScore {
			return weak[i].AvgScore < weak[j].AvgScore
		}
		return weak[i].Category < weak[j].Category
	})

	summary := &model.ProgressSummary{
		CategoryStats: stats,
		Strengths:     []string{},
		Weaknesses:    []string{},
	}
	for i, st := range strong {
		if i >= opts.TopK {
			break
		}
		summary.Strengths = append(summary.Strengths, st.Category)
	}
	for i, st := range weak {
		if i >= opts.TopK {
			break
		}
		summary.Weaknesses = append(summary.Weaknesses, st.Category)
	}
	return summary
}

type ProgressService interface {
	GetSnapshot(ctx context.Context, userID uuid.UUID) (*model.ProgressSnapshot, error)
}

type progressService struct {
	db          *gorm.DB
	userRepo    repository.UserRepository
	attemptRepo repository.AttemptRepository
	quizRepo    repository.QuizRepository
	awardRepo   repository.XPAwardRepository
	readRepo    repository.ReadRecordRepository
	cfg         *config.Config
}

func NewProgressService(db *gorm.DB, userRepo repository.UserRepository, attemptRepo repository.AttemptRepository, quizRepo repository.QuizRepository, awardRepo repository.XPAwardRepository, readRepo repository.ReadRecordRepository, cfg *config.Config) ProgressService {
	return &progressService{
		db:          db,
		userRepo:    userRepo,
		attemptRepo: attemptRepo,
		quizRepo:    quizRepo,
		awardRepo:   awardRepo,
		readRepo:    readRepo,
		cfg:         cfg,
	}
}

// GetSnapshot は進捗スナップショットをソースレコードから都度再計算して返します
func (s *progressService) GetSnapshot(ctx context.Context, userID uuid.UUID) (*model.ProgressSnapshot, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	if _, err := s.userRepo.FindByID(ctx, s.db, userID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to find user for progress snapshot", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "進捗の取得に失敗しました。", "", err)
	}

	attempts, err := s.attemptRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to load quiz attempts", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "進捗の取得に失敗しました。", "", err)
	}

	quizIDSet := make(map[uuid.UUID]struct{}, len(attempts))
	quizIDs := make([]uuid.UUID, 0, len(attempts))
	for _, a := range attempts {
		if _, ok := quizIDSet[a.QuizID]; !ok {
			quizIDSet[a.QuizID] = struct{}{}
			quizIDs = append(quizIDs, a.QuizID)
		}
	}

	meta, err := s.quizRepo.FindMetaByIDs(ctx, s.db, quizIDs)
	if err != nil {
		logger.Error("Failed to load quiz metadata", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "進捗の取得に失敗しました。", "", err)
	}

	summary := Aggregate(attempts, meta, AggregateOptions{
		StrongCutoff: s.cfg.App.StrongCutoff,
		WeakCutoff:   s.cfg.App.WeakCutoff,
		TopK:         s.cfg.App.StrengthTopK,
	})

	totalXP, err := s.awardRepo.SumByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to sum XP awards", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "進捗の取得に失敗しました。", "", err)
	}
	level, err := LevelForXP(totalXP, s.cfg.App.LevelStep)
	if err != nil {
		return nil, err
	}
	toNext, err := XPToNextLevel(totalXP, s.cfg.App.LevelStep)
	if err != nil {
		return nil, err
	}

	completedTopics, err := s.readRepo.CountCompletedByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to count completed topics", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "進捗の取得に失敗しました。", "", err)
	}

	return &model.ProgressSnapshot{
		TotalXP:         totalXP,
		Level:           level,
		XPToNext:        toNext,
		CompletedTopics: int(completedTopics),
		QuizzesTaken:    len(attempts),
		CategoryStats:   summary.CategoryStats,
		Strengths:       summary.Strengths,
		Weaknesses:      summary.Weaknesses,
	}, nil
}
