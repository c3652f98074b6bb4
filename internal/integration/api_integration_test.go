// internal/integration/api_integration_test.go
package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"go_manabi_quest/internal/config"
	"go_manabi_quest/internal/handlers"
	"go_manabi_quest/internal/middleware"
	"go_manabi_quest/internal/model"
	"go_manabi_quest/internal/repository"
	"go_manabi_quest/internal/service"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// RUN_INTEGRATION_TESTS=1 のときだけ dockertest で PostgreSQL を起動して実行します。
var testDB *gorm.DB

func TestMain(m *testing.M) {
	if os.Getenv("RUN_INTEGRATION_TESTS") == "" {
		os.Exit(m.Run()) // 各テストは testDB == nil で Skip される
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}
	pool.MaxWait = 120 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=manabi_quest_test",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("Could not start PostgreSQL resource: %s", err)
	}

	hostPort := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("host=localhost port=%s user=user password=secret dbname=manabi_quest_test sslmode=disable TimeZone=Asia/Tokyo", hostPort)

	if err = pool.Retry(func() error {
		var errRetry error
		testDB, errRetry = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
			TranslateError: true,
		})
		if errRetry != nil {
			return errRetry
		}
		sqlDB, errRetry := testDB.DB()
		if errRetry != nil {
			testDB = nil
			return errRetry
		}
		return sqlDB.Ping()
	}); err != nil {
		if pErr := pool.Purge(resource); pErr != nil {
			log.Printf("Warning: Could not purge resource: %s", pErr)
		}
		log.Fatalf("Could not connect to PostgreSQL container: %s", err)
	}

	if err := repository.Migrate(testDB); err != nil {
		log.Fatalf("Could not migrate database: %s", err)
	}

	code := m.Run()

	if err := pool.Purge(resource); err != nil {
		log.Fatalf("Could not purge PostgreSQL resource: %s", err)
	}
	os.Exit(code)
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "integration-test-secret"
	cfg.JWT.ExpiryHours = 1
	config.ApplyAppDefaults(&cfg.App)
	return cfg
}

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()
	require.NotNil(t, testDB)

	cfg := testConfig()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	userRepo := repository.NewGormUserRepository()
	lessonRepo := repository.NewGormLessonRepository()
	quizRepo := repository.NewGormQuizRepository()
	attemptRepo := repository.NewGormAttemptRepository()
	readRepo := repository.NewGormReadRecordRepository()
	awardRepo := repository.NewGormXPAwardRepository()

	authService := service.NewAuthService(testDB, userRepo, &service.LogMailer{}, cfg)
	xpService := service.NewXPService(testDB, userRepo, awardRepo, cfg)
	quizService := service.NewQuizService(testDB, quizRepo, attemptRepo, xpService)
	topicService := service.NewTopicService(testDB, lessonRepo, readRepo, attemptRepo, xpService, cfg)
	progressService := service.NewProgressService(testDB, userRepo, attemptRepo, quizRepo, awardRepo, readRepo, cfg)

	authHandler := handlers.NewAuthHandler(authService)
	quizHandler := handlers.NewQuizHandler(quizService)
	topicHandler := handlers.NewTopicHandler(topicService)
	progressHandler := handlers.NewProgressHandler(progressService)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(chimiddleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuthMiddleware(cfg))
			r.Get("/lessons/{lesson_id}/topics", topicHandler.GetLessonTopics)
			r.Put("/topics/{topic_id}/read", topicHandler.UpdateReadProgress)
			r.Get("/quizzes/{quiz_id}", quizHandler.GetQuiz)
			r.Post("/quizzes/{quiz_id}/attempts", quizHandler.SubmitAttempt)
			r.Get("/progress", progressHandler.GetProgress)
		})
	})

	return httptest.NewServer(r)
}

// seedLesson は2トピック構成のレッスンを作成します (両方にクイズ付き)
func seedLesson(t *testing.T) (*model.Lesson, []*model.Topic) {
	t.Helper()

	lesson := &model.Lesson{LessonID: uuid.New(), Title: "ICT入門", Category: "ICT", Position: 1}
	require.NoError(t, testDB.Create(lesson).Error)

	topics := make([]*model.Topic, 0, 2)
	for i := 1; i <= 2; i++ {
		topic := &model.Topic{
			TopicID:  uuid.New(),
			LessonID: lesson.LessonID,
			Position: i,
			Title:    fmt.Sprintf("トピック%d", i),
			Body:     "本文",
		}
		require.NoError(t, testDB.Create(topic).Error)

		quiz := &model.Quiz{QuizID: uuid.New(), TopicID: topic.TopicID, Title: "確認クイズ", PassingScore: 70}
		require.NoError(t, testDB.Create(quiz).Error)
		for p := 1; p <= 2; p++ {
			question := &model.QuizQuestion{
				QuestionID:    uuid.New(),
				QuizID:        quiz.QuizID,
				Position:      p,
				Text:          "question",
				Choices:       []string{"a", "b", "c"},
				CorrectChoice: "a",
			}
			require.NoError(t, testDB.Create(question).Error)
		}
		topic.Quiz = quiz
		topics = append(topics, topic)
	}
	return lesson, topics
}

func doJSON(t *testing.T, server *httptest.Server, method, path, token string, payload any) (int, []byte) {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, server.URL+path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, buf.Bytes()
}

func TestAPI_LearningFlow(t *testing.T) {
	if testDB == nil {
		t.Skip("RUN_INTEGRATION_TESTS is not set; skipping integration test")
	}

	server := setupServer(t)
	defer server.Close()

	_, topics := seedLesson(t)
	lessonID := topics[0].LessonID

	email := fmt.Sprintf("learner-%s@example.com", uuid.NewString()[:8])

	// 1. 登録
	code, _ := doJSON(t, server, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name":     "learner",
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, code)

	// 2. ログイン
	code, body := doJSON(t, server, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, code)
	var login model.LoginResponse
	require.NoError(t, json.Unmarshal(body, &login))
	token := login.AccessToken
	require.NotEmpty(t, token)

	// 3. 初期状態: 先頭だけアンロック
	code, body = doJSON(t, server, http.MethodGet, "/api/v1/lessons/"+lessonID.String()+"/topics", token, nil)
	require.Equal(t, http.StatusOK, code)
	var states []model.TopicStateResponse
	require.NoError(t, json.Unmarshal(body, &states))
	require.Len(t, states, 2)
	assert.False(t, states[0].Locked)
	assert.True(t, states[1].Locked)

	// 4. トピック読了で読了XP
	code, body = doJSON(t, server, http.MethodPut, "/api/v1/topics/"+topics[0].TopicID.String()+"/read", token, map[string]any{"ratio": 0.95})
	require.Equal(t, http.StatusOK, code)
	var readResp model.ReadProgressResponse
	require.NoError(t, json.Unmarshal(body, &readResp))
	assert.True(t, readResp.Completed)
	require.NotNil(t, readResp.XP)
	assert.Equal(t, 50, readResp.XP.AwardedXP)

	// 読了の再送は冪等 (0XP)
	code, body = doJSON(t, server, http.MethodPut, "/api/v1/topics/"+topics[0].TopicID.String()+"/read", token, map[string]any{"ratio": 1.0})
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(body, &readResp))
	assert.Equal(t, 0, readResp.XP.AwardedXP)

	// 5. クイズ取得 (正解は含まれない)
	quizID := topics[0].Quiz.QuizID
	code, body = doJSON(t, server, http.MethodGet, "/api/v1/quizzes/"+quizID.String(), token, nil)
	require.Equal(t, http.StatusOK, code)
	var quizResp model.QuizResponse
	require.NoError(t, json.Unmarshal(body, &quizResp))
	require.Len(t, quizResp.Questions, 2)

	// 6. 全問正解で合格、XP付与
	answers := make(map[string]string)
	for _, q := range quizResp.Questions {
		answers[q.QuestionID.String()] = "a"
	}
	code, body = doJSON(t, server, http.MethodPost, "/api/v1/quizzes/"+quizID.String()+"/attempts", token, map[string]any{"answers": answers})
	require.Equal(t, http.StatusCreated, code)
	var attemptResp model.AttemptResultResponse
	require.NoError(t, json.Unmarshal(body, &attemptResp))
	assert.Equal(t, 100, attemptResp.Score)
	assert.True(t, attemptResp.Passed)
	assert.Equal(t, 200, attemptResp.XP.AwardedXP)

	// 再合格はXP 0 (冪等)
	code, body = doJSON(t, server, http.MethodPost, "/api/v1/quizzes/"+quizID.String()+"/attempts", token, map[string]any{"answers": answers})
	require.Equal(t, http.StatusCreated, code)
	require.NoError(t, json.Unmarshal(body, &attemptResp))
	assert.Equal(t, 0, attemptResp.XP.AwardedXP)

	// 7. 合格により2番目のトピックがアンロックされた
	code, body = doJSON(t, server, http.MethodGet, "/api/v1/lessons/"+lessonID.String()+"/topics", token, nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(body, &states))
	assert.True(t, states[0].Completed)
	assert.False(t, states[1].Locked)

	// 8. 進捗スナップショット
	code, body = doJSON(t, server, http.MethodGet, "/api/v1/progress", token, nil)
	require.Equal(t, http.StatusOK, code)
	var snapshot model.ProgressSnapshot
	require.NoError(t, json.Unmarshal(body, &snapshot))
	assert.Equal(t, 250, snapshot.TotalXP) // 読了50 + クイズ200
	assert.Equal(t, 1, snapshot.Level)
	assert.Equal(t, 1, snapshot.CompletedTopics)
	assert.Equal(t, 2, snapshot.QuizzesTaken)
	require.Len(t, snapshot.CategoryStats, 1)
	assert.Equal(t, "ICT", snapshot.CategoryStats[0].Category)

	// 9. 認証なしはアクセス不可
	code, _ = doJSON(t, server, http.MethodGet, "/api/v1/progress", "", nil)
	assert.Equal(t, http.StatusForbidden, code)
}
