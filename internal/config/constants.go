// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "ManabiQuest"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort     = ":8080"
	DefaultLogLevel       = "info"
	DefaultJWTExpiryHours = 24
)

// 進捗エンジンの既定値。
// 値は製品要件側で調整する前提の設定項目 (config.yaml の app: セクションで上書き可能)。
const (
	DefaultPassingScore            = 70
	DefaultLevelStep               = 500
	DefaultReadXP                  = 50
	DefaultQuizXPMultiplier        = 2
	DefaultQuizXPMax               = 200
	DefaultReadCompletionThreshold = 0.9
	DefaultStrongCutoff            = 80
	DefaultWeakCutoff              = 70
	DefaultStrengthTopK            = 2
)
