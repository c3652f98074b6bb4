// internal/service/xp_service.go
package service

import (
	"context"
	"errors"

	"go_manabi_quest/internal/config"
	"go_manabi_quest/internal/middleware"
	"go_manabi_quest/internal/model"
	"go_manabi_quest/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// XPService はXP台帳を管理します。
// 付与は (user, topic, kind) ごとに高々1回で、二重検知時は0XPの結果を返します。
type XPService interface {
	AwardForQuiz(ctx context.Context, userID, topicID uuid.UUID, score int, passed bool) (*model.XPResult, error)
	AwardForRead(ctx context.Context, userID, topicID uuid.UUID) (*model.XPResult, error)
}

type xpService struct {
	db        *gorm.DB
	userRepo  repository.UserRepository
	awardRepo repository.XPAwardRepository
	cfg       *config.Config
}

func NewXPService(db *gorm.DB, userRepo repository.UserRepository, awardRepo repository.XPAwardRepository, cfg *config.Config) XPService {
	return &xpService{
		db:        db,
		userRepo:  userRepo,
		awardRepo: awardRepo,
		cfg:       cfg,
	}
}

// AwardForQuiz はクイズ合格のXPを付与します。
// XP量は min(score * QuizXPMultiplier, QuizXPMax)。不合格は0XPですが結果は返します
// (挑戦の記録自体は QuizService 側で行われます)。
func (s *xpService) AwardForQuiz(ctx context.Context, userID, topicID uuid.UUID, score int, passed bool) (*model.XPResult, error) {
	if score < 0 || score > 100 {
		return nil, model.NewAppError("INVALID_SCORE", "スコアは0から100の範囲である必要があります。", "score", model.ErrInvalidInput)
	}

	amount := 0
	if passed {
		amount = score * s.cfg.App.QuizXPMultiplier
		if amount > s.cfg.App.QuizXPMax {
			amount = s.cfg.App.QuizXPMax
		}
	}

	return s.award(ctx, userID, topicID, model.AwardKindQuizPass, amount)
}

// AwardForRead はトピック読了の固定XPを付与します
func (s *xpService) AwardForRead(ctx context.Context, userID, topicID uuid.UUID) (*model.XPResult, error) {
	return s.award(ctx, userID, topicID, model.AwardKindTopicRead, s.cfg.App.ReadXP)
}

// award は台帳の存在確認と挿入を1トランザクションで行います。
// 同一イベントへの同時付与は台帳のユニーク制約で高々1件となり、
// 競合に敗けた側は付与済み扱い (0XP) で正常終了します。
func (s *xpService) award(ctx context.Context, userID, topicID uuid.UUID, kind model.AwardKind, amount int) (*model.XPResult, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "topic_id", topicID, "kind", string(kind))

	var res *model.XPResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.userRepo.FindByID(ctx, tx, userID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrNotFound)
			}
			logger.Error("Failed to find user for XP award", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "XP付与中にエラーが発生しました。", "", err)
		}

		prevTotal, err := s.awardRepo.SumByUser(ctx, tx, userID)
		if err != nil {
			logger.Error("Failed to sum XP awards", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "XP付与中にエラーが発生しました。", "", err)
		}

		awarded := 0
		if amount > 0 {
			exists, err := s.awardRepo.Exists(ctx, tx, userID, topicID, kind)
			if err != nil {
				logger.Error("Failed to check existing XP award", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "XP付与中にエラーが発生しました。", "", err)
			}

			if exists {
				logger.Info("XP already awarded for this event, skipping")
			} else {
				award := &model.XPAward{
					AwardID: uuid.New(),
					UserID:  userID,
					TopicID: topicID,
					Kind:    kind,
					Amount:  amount,
				}
				if createErr := s.awardRepo.Create(ctx, tx, award); createErr != nil {
					if errors.Is(createErr, model.ErrConflict) {
						// 同時付与の競合に敗けた側。イベントは既に1回付与済み。
						logger.Warn("Lost duplicate-award race, treating as already awarded")
					} else {
						logger.Error("Failed to create XP award", "error", createErr)
						return model.NewAppError("INTERNAL_SERVER_ERROR", "XP付与中にエラーが発生しました。", "", createErr)
					}
				} else {
					awarded = amount
				}
			}
		}

		newTotal := prevTotal + awarded

		prevLevel, err := LevelForXP(prevTotal, s.cfg.App.LevelStep)
		if err != nil {
			return err
		}
		newLevel, err := LevelForXP(newTotal, s.cfg.App.LevelStep)
		if err != nil {
			return err
		}
		toNext, err := XPToNextLevel(newTotal, s.cfg.App.LevelStep)
		if err != nil {
			return err
		}

		res = &model.XPResult{
			AwardedXP: awarded,
			TotalXP:   newTotal,
			Level:     newLevel,
			LeveledUp: newLevel > prevLevel,
			XPToNext:  toNext,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if res.LeveledUp {
		logger.Info("User leveled up", "level", res.Level, "total_xp", res.TotalXP)
	}
	return res, nil
}
