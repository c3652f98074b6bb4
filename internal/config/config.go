// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type JWTConfig struct {
	SecretKey   string `mapstructure:"secret_key"`
	ExpiryHours int    `mapstructure:"expiry_hours"`
}

// AppConfig は進捗エンジンのチューニング値。
// 観測値ベースの既定値を持つ設定項目であり、コードにはハードコードしない。
type AppConfig struct {
	PassingScore            int     `mapstructure:"passing_score"`             // クイズ合格点の既定値 (%)
	LevelStep               int     `mapstructure:"level_step"`                // 1レベルに必要なXP
	ReadXP                  int     `mapstructure:"read_xp"`                   // トピック読了の固定XP
	QuizXPMultiplier        int     `mapstructure:"quiz_xp_multiplier"`        // クイズXP = score * multiplier
	QuizXPMax               int     `mapstructure:"quiz_xp_max"`               // クイズXPの上限
	ReadCompletionThreshold float64 `mapstructure:"read_completion_threshold"` // 読了とみなすスクロール率
	StrongCutoff            int     `mapstructure:"strong_cutoff"`             // 得意カテゴリの平均点下限
	WeakCutoff              int     `mapstructure:"weak_cutoff"`               // 苦手カテゴリの平均点上限 (未満)
	StrengthTopK            int     `mapstructure:"strength_top_k"`            // 得意・苦手として返す件数
}

type MailerConfig struct {
	Type string `mapstructure:"type"` // "log" | "smtp" | "ses"
}

type SMTPConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	From string `mapstructure:"from"`
}

type SESConfig struct {
	Region          string `mapstructure:"region"`
	AuthType        string `mapstructure:"auth_type"` // "static_credentials" | "iam_role"
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	From            string `mapstructure:"from"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	App      AppConfig      `mapstructure:"app"`
	Mailer   MailerConfig   `mapstructure:"mailer"`
	SMTP     SMTPConfig     `mapstructure:"smtp"`
	SES      SESConfig      `mapstructure:"ses"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 環境変数での上書き (例: APP_SERVER_PORT)
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.JWT.ExpiryHours <= 0 {
		Cfg.JWT.ExpiryHours = DefaultJWTExpiryHours
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	ApplyAppDefaults(&Cfg.App)

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Level Step: %d XP", Cfg.App.LevelStep)

	return nil
}

// ApplyAppDefaults は進捗エンジン設定の未設定項目に既定値を入れます。
// テストから素の AppConfig を組み立てる際にも使います。
func ApplyAppDefaults(app *AppConfig) {
	if app.PassingScore <= 0 || app.PassingScore > 100 {
		app.PassingScore = DefaultPassingScore
	}
	if app.LevelStep <= 0 {
		app.LevelStep = DefaultLevelStep
	}
	if app.ReadXP <= 0 {
		app.ReadXP = DefaultReadXP
	}
	if app.QuizXPMultiplier <= 0 {
		app.QuizXPMultiplier = DefaultQuizXPMultiplier
	}
	if app.QuizXPMax <= 0 {
		app.QuizXPMax = DefaultQuizXPMax
	}
	if app.ReadCompletionThreshold <= 0 || app.ReadCompletionThreshold > 1 {
		app.ReadCompletionThreshold = DefaultReadCompletionThreshold
	}
	if app.StrongCutoff <= 0 {
		app.StrongCutoff = DefaultStrongCutoff
	}
	if app.WeakCutoff <= 0 {
		app.WeakCutoff = DefaultWeakCutoff
	}
	if app.StrengthTopK <= 0 {
		app.StrengthTopK = DefaultStrengthTopK
	}
}
