// internal/service/progress_service_test.go
package service

import (
	"context"
	"testing"

	"go_manabi_quest/internal/model"
	"go_manabi_quest/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func defaultAggregateOptions() AggregateOptions {
	return AggregateOptions{StrongCutoff: 80, WeakCutoff: 70, TopK: 2}
}

func Test_Aggregate(t *testing.T) {
	quizICT1 := uuid.New()
	quizICT2 := uuid.New()
	quizTourism := uuid.New()

	meta := map[uuid.UUID]model.QuizMeta{
		quizICT1:    {Category: "ICT", PassingScore: 70},
		quizICT2:    {Category: "ICT", PassingScore: 70},
		quizTourism: {Category: "Tourism", PassingScore: 70},
	}

	t.Run("正常系: カテゴリ別の平均・合格率と得意・苦手の判定", func(t *testing.T) {
		attempts := []*model.QuizAttempt{
			{QuizID: quizICT1, Score: 90},
			{QuizID: quizICT2, Score: 70},
			{QuizID: quizTourism, Score: 40},
		}

		summary := Aggregate(attempts, meta, defaultAggregateOptions())

		require.Len(t, summary.CategoryStats, 2)
		// カテゴリ名昇順
		assert.Equal(t, "ICT", summary.CategoryStats[0].Category)
		assert.Equal(t, 2, summary.CategoryStats[0].Attempts)
		assert.Equal(t, 80, summary.CategoryStats[0].AvgScore)
		assert.Equal(t, 100, summary.CategoryStats[0].PassRate)

		assert.Equal(t, "Tourism", summary.CategoryStats[1].Category)
		assert.Equal(t, 1, summary.CategoryStats[1].Attempts)
		assert.Equal(t, 40, summary.CategoryStats[1].AvgScore)
		assert.Equal(t, 0, summary.CategoryStats[1].PassRate)

		assert.Equal(t, []string{"ICT"}, summary.Strengths)
		assert.Equal(t, []string{"Tourism"}, summary.Weaknesses)
	})

	t.Run("正常系: 平均は四捨五入される", func(t *testing.T) {
		attempts := []*model.QuizAttempt{
			{QuizID: quizICT1, Score: 71},
			{QuizID: quizICT2, Score: 74},
		}

		summary := Aggregate(attempts, meta, defaultAggregateOptions())

		require.Len(t, summary.CategoryStats, 1)
		assert.Equal(t, 73, summary.CategoryStats[0].AvgScore) // 72.5 -> 73
	})

	t.Run("正常系: 得意はTopK件までで平均降順、同値はカテゴリ名昇順", func(t *testing.T) {
		quizA := uuid.New()
		quizB := uuid.New()
		quizC := uuid.New()
		manyMeta := map[uuid.UUID]model.QuizMeta{
			quizA: {Category: "Alpha", PassingScore: 70},
			quizB: {Category: "Beta", PassingScore: 70},
			quizC: {Category: "Gamma", PassingScore: 70},
		}
		attempts := []*model.QuizAttempt{
			{QuizID: quizA, Score: 90},
			{QuizID: quizB, Score: 95},
			{QuizID: quizC, Score: 90},
		}

		summary := Aggregate(attempts, manyMeta, defaultAggregateOptions())

		// Beta(95) > Alpha(90) = Gamma(90)、TopK=2 で名前順タイブレーク
		assert.Equal(t, []string{"Beta", "Alpha"}, summary.Strengths)
		assert.Empty(t, summary.Weaknesses)
	})

	t.Run("正常系: 苦手は平均昇順で悪い順", func(t *testing.T) {
		quizA := uuid.New()
		quizB := uuid.New()
		quizC := uuid.New()
		manyMeta := map[uuid.UUID]model.QuizMeta{
			quizA: {Category: "Alpha", PassingScore: 70},
			quizB: {Category: "Beta", PassingScore: 70},
			quizC: {Category: "Gamma", PassingScore: 70},
		}
		attempts := []*model.QuizAttempt{
			{QuizID: quizA, Score: 50},
			{QuizID: quizB, Score: 30},
			{QuizID: quizC, Score: 60},
		}

		summary := Aggregate(attempts, manyMeta, defaultAggregateOptions())

		assert.Equal(t, []string{"Beta", "Alpha"}, summary.Weaknesses)
		assert.Empty(t, summary.Strengths)
	})

	t.Run("正常系: 境界値 (平均80は得意、平均70は得意でも苦手でもない)", func(t *testing.T) {
		quizA := uuid.New()
		quizB := uuid.New()
		manyMeta := map[uuid.UUID]model.QuizMeta{
			quizA: {Category: "Alpha", PassingScore: 70},
			quizB: {Category: "Beta", PassingScore: 70},
		}
		attempts := []*model.QuizAttempt{
			{QuizID: quizA, Score: 80},
			{QuizID: quizB, Score: 70},
		}

		summary := Aggregate(attempts, manyMeta, defaultAggregateOptions())

		assert.Equal(t, []string{"Alpha"}, summary.Strengths)
		assert.Empty(t, summary.Weaknesses)
	})

	t.Run("正常系: メタの欠けた挑戦は集計から除外される", func(t *testing.T) {
		attempts := []*model.QuizAttempt{
			{QuizID: quizICT1, Score: 90},
			{QuizID: uuid.New(), Score: 10}, // 削除済みクイズの残骸
		}

		summary := Aggregate(attempts, meta, defaultAggregateOptions())

		require.Len(t, summary.CategoryStats, 1)
		assert.Equal(t, "ICT", summary.CategoryStats[0].Category)
		assert.Equal(t, 1, summary.CategoryStats[0].Attempts)
	})

	t.Run("正常系: 挑戦がなければ空のサマリ", func(t *testing.T) {
		summary := Aggregate(nil, meta, defaultAggregateOptions())

		assert.Empty(t, summary.CategoryStats)
		assert.Empty(t, summary.Strengths)
		assert.Empty(t, summary.Weaknesses)
	})

	t.Run("正常系: 同じ入力に対して常に同じ出力", func(t *testing.T) {
		attempts := []*model.QuizAttempt{
			{QuizID: quizICT1, Score: 90},
			{QuizID: quizICT2, Score: 70},
			{QuizID: quizTourism, Score: 40},
		}

		first := Aggregate(attempts, meta, defaultAggregateOptions())
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, Aggregate(attempts, meta, defaultAggregateOptions()))
		}
	})
}

func Test_progressService_GetSnapshot(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	testUser := &model.User{UserID: userID, Name: "taro", Email: "taro@example.com"}

	t.Run("正常系: XP・レベル・集計を組み合わせたスナップショット", func(t *testing.T) {
		db := setupTestDB()
		mockUserRepo := new(mocks.UserRepository)
		mockAttemptRepo := new(mocks.AttemptRepository)
		mockQuizRepo := new(mocks.QuizRepository)
		mockAwardRepo := new(mocks.XPAwardRepository)
		mockReadRepo := new(mocks.ReadRecordRepository)

		quizID := uuid.New()
		attempts := []*model.QuizAttempt{
			{AttemptID: uuid.New(), UserID: userID, QuizID: quizID, Score: 90},
		}
		meta := map[uuid.UUID]model.QuizMeta{
			quizID: {Category: "ICT", PassingScore: 70},
		}

		mockUserRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(testUser, nil).Once()
		mockAttemptRepo.On("FindByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(attempts, nil).Once()
		mockQuizRepo.On("FindMetaByIDs", ctx, mock.AnythingOfType("*gorm.DB"), []uuid.UUID{quizID}).
			Return(meta, nil).Once()
		mockAwardRepo.On("SumByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(1250, nil).Once()
		mockReadRepo.On("CountCompletedByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(int64(4), nil).Once()

		progressService := NewProgressService(db, mockUserRepo, mockAttemptRepo, mockQuizRepo, mockAwardRepo, mockReadRepo, testConfig())
		snapshot, err := progressService.GetSnapshot(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, 1250, snapshot.TotalXP)
		assert.Equal(t, 3, snapshot.Level)
		assert.Equal(t, 250, snapshot.XPToNext)
		assert.Equal(t, 4, snapshot.CompletedTopics)
		assert.Equal(t, 1, snapshot.QuizzesTaken)
		require.Len(t, snapshot.CategoryStats, 1)
		assert.Equal(t, "ICT", snapshot.CategoryStats[0].Category)
		assert.Equal(t, []string{"ICT"}, snapshot.Strengths)

		mockUserRepo.AssertExpectations(t)
		mockAttemptRepo.AssertExpectations(t)
		mockQuizRepo.AssertExpectations(t)
		mockAwardRepo.AssertExpectations(t)
		mockReadRepo.AssertExpectations(t)
	})

	t.Run("正常系: 挑戦がないユーザーはレベル1の空サマリ", func(t *testing.T) {
		db := setupTestDB()
		mockUserRepo := new(mocks.UserRepository)
		mockAttemptRepo := new(mocks.AttemptRepository)
		mockQuizRepo := new(mocks.QuizRepository)
		mockAwardRepo := new(mocks.XPAwardRepository)
		mockReadRepo := new(mocks.ReadRecordRepository)

		mockUserRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(testUser, nil).Once()
		mockAttemptRepo.On("FindByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return([]*model.QuizAttempt{}, nil).Once()
		mockQuizRepo.On("FindMetaByIDs", ctx, mock.AnythingOfType("*gorm.DB"), []uuid.UUID{}).
			Return(map[uuid.UUID]model.QuizMeta{}, nil).Once()
		mockAwardRepo.On("SumByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(0, nil).Once()
		mockReadRepo.On("CountCompletedByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(int64(0), nil).Once()

		progressService := NewProgressService(db, mockUserRepo, mockAttemptRepo, mockQuizRepo, mockAwardRepo, mockReadRepo, testConfig())
		snapshot, err := progressService.GetSnapshot(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, 0, snapshot.TotalXP)
		assert.Equal(t, 1, snapshot.Level)
		assert.Equal(t, 500, snapshot.XPToNext)
		assert.Equal(t, 0, snapshot.QuizzesTaken)
		assert.Empty(t, snapshot.CategoryStats)
	})

	t.Run("異常系: ユーザーが存在しない", func(t *testing.T) {
		db := setupTestDB()
		mockUserRepo := new(mocks.UserRepository)
		mockAttemptRepo := new(mocks.AttemptRepository)
		mockQuizRepo := new(mocks.QuizRepository)
		mockAwardRepo := new(mocks.XPAwardRepository)
		mockReadRepo := new(mocks.ReadRecordRepository)

		mockUserRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(nil, model.ErrNotFound).Once()

		progressService := NewProgressService(db, mockUserRepo, mockAttemptRepo, mockQuizRepo, mockAwardRepo, mockReadRepo, testConfig())
		_, err := progressService.GetSnapshot(ctx, userID)

		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
