package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shouni/go-utils/envutil"
)

// デフォルト値の定義
const (
	DefaultModel        = "gemini-3-pro-image-preview"
	DefaultInitialSeed  = 42
	DefaultRateInterval = 2 * time.Second
	DefaultRateBurst    = 1
	DefaultPanelLimit   = 4
)

// 環境変数名
const (
	EnvModel        = "STORYBOARD_MODEL"
	EnvInitialSeed  = "STORYBOARD_INITIAL_SEED"
	EnvRateInterval = "STORYBOARD_RATE_INTERVAL"
	EnvRateBurst    = "STORYBOARD_RATE_BURST"
	EnvPanelLimit   = "STORYBOARD_PANEL_LIMIT"
)

// Config は go-storyboard-kit の各コンポーネントを動作させるための基本設定です。
type Config struct {
	// --- Prompt Settings ---
	Model       string // 長さ制約と書式を引くモデルID。空ならモデル別の最適化を行いません
	InitialSeed int64  // キャラクターに払い出すシード系列の初期状態

	// --- Generation Settings ---
	RateInterval time.Duration // バックエンド呼び出しの最小間隔。0 以下なら無制限
	RateBurst    int
	PanelLimit   int // 同時に生成するパネル数の上限

	// --- Store Settings ---
	StoreTTL time.Duration // 0 なら期限切れになりません
}

// DefaultConfig は推奨されるデフォルト設定を返すヘルパー関数です。
func DefaultConfig() Config {
	return Config{
		Model:        DefaultModel,
		InitialSeed:  DefaultInitialSeed,
		RateInterval: DefaultRateInterval,
		RateBurst:    DefaultRateBurst,
		PanelLimit:   DefaultPanelLimit,
	}
}

// LoadConfig は環境変数から設定を読み込みます。未設定の項目は DefaultConfig の値を使います。
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	cfg.Model = getEnv(EnvModel, cfg.Model)

	seed, err := strconv.ParseInt(getEnv(EnvInitialSeed, strconv.FormatInt(cfg.InitialSeed, 10)), 10, 64)
	if err != nil {
		return cfg, fmt.Errorf("%s の値が不正です: %w", EnvInitialSeed, err)
	}
	cfg.InitialSeed = seed

	interval, err := time.ParseDuration(getEnv(EnvRateInterval, cfg.RateInterval.String()))
	if err != nil {
		return cfg, fmt.Errorf("%s の値が不正です: %w", EnvRateInterval, err)
	}
	cfg.RateInterval = interval

	if cfg.RateBurst, err = envInt(EnvRateBurst, cfg.RateBurst); err != nil {
		return cfg, err
	}
	if cfg.PanelLimit, err = envInt(EnvPanelLimit, cfg.PanelLimit); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func envInt(key string, def int) (int, error) {
	v, err := strconv.Atoi(getEnv(key, strconv.Itoa(def)))
	if err != nil {
		return def, fmt.Errorf("%s の値が不正です: %w", key, err)
	}
	return v, nil
}

// getEnv は空白だけの値も未設定として扱います。
func getEnv(key, def string) string {
	if v := strings.TrimSpace(envutil.GetEnv(key, def)); v != "" {
		return v
	}
	return def
}
