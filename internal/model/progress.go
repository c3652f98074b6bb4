// internal/model/progress.go
package model

// CategoryStat はカテゴリごとの成績サマリ
type CategoryStat struct {
	Category string `json:"category"`
	Attempts int    `json:"attempts"`
	AvgScore int    `json:"avg_score"` // round(mean(scores))
	PassRate int    `json:"pass_rate"` // round(100 * passed / attempts)
}

// ProgressSummary は解答ログから導出したカテゴリ別サマリ (純関数 Aggregate の出力)
type ProgressSummary struct {
	CategoryStats []CategoryStat `json:"category_stats"`
	Strengths     []string       `json:"strengths"`
	Weaknesses    []string       `json:"weaknesses"`
}

// ProgressSnapshot は学習者の進捗スナップショットDTO。
// 毎回ソースレコードから再計算する導出値で、永続化しません。
type ProgressSnapshot struct {
	TotalXP         int            `json:"total_xp"`
	Level           int            `json:"level"`
	XPToNext        int            `json:"xp_to_next"`
	CompletedTopics int            `json:"completed_topics"`
	QuizzesTaken    int            `json:"quizzes_taken"`
	CategoryStats   []CategoryStat `json:"category_stats"`
	Strengths       []string       `json:"strengths"`
	Weaknesses      []string       `json:"weaknesses"`
}
