package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"lukechampine.com/frand"
)

var (
	cfgFile = "minimax2048/config.json"
	logFile = "minimax2048/minimax2048.log"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// SearchConfig は探索の設定
type SearchConfig struct {
	Depth int `json:"depth"`
}

// AutoPlayConfig は自動プレイの設定
// Seed が0なら起動ごとにランダムなseedを使う
type AutoPlayConfig struct {
	Games       int    `json:"games"`
	Workers     int    `json:"workers"`
	DelayMillis int    `json:"delay_ms"`
	Seed        uint64 `json:"seed"`
}

// Theme はTUIの配色（0xRRGGBB）
type Theme struct {
	TileColors      map[int]int32 `json:"tile_colors"`
	DefaultColor    int32         `json:"default_color"`
	EmptyColor      int32         `json:"empty_color"`
	BackgroundColor int32         `json:"background_color"`
	TextColor       int32         `json:"text_color"`
}

// LogConfig はログの設定
type LogConfig struct {
	Level string `json:"level"`
}

type Config struct {
	Search   SearchConfig   `json:"search"`
	AutoPlay AutoPlayConfig `json:"autoplay"`
	Theme    Theme          `json:"theme"`
	Log      LogConfig      `json:"log"`
}

// Load はXDGの設定ディレクトリからconfig.jsonを探し、デフォルト値に上書きする
// ファイルがなければデフォルト値を返す
func Load() (*Config, error) {
	config := Default()
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if c.Search.Depth < 1 {
		return &InvalidConfig{fmt.Sprintf("search depth must be at least 1, got %d", c.Search.Depth)}
	}
	if c.AutoPlay.Games < 1 {
		return &InvalidConfig{fmt.Sprintf("games must be at least 1, got %d", c.AutoPlay.Games)}
	}
	if c.AutoPlay.Workers < 0 {
		return &InvalidConfig{fmt.Sprintf("workers must not be negative, got %d", c.AutoPlay.Workers)}
	}
	if c.AutoPlay.DelayMillis < 0 {
		return &InvalidConfig{fmt.Sprintf("delay must not be negative, got %d", c.AutoPlay.DelayMillis)}
	}
	for tile := range c.Theme.TileColors {
		if tile < 2 || tile&(tile-1) != 0 {
			return &InvalidConfig{fmt.Sprintf("tile color key %d is not a tile value", tile)}
		}
	}
	return nil
}

// ResolveSeed は設定されたseedを返す。0ならランダムに決める
func (c *Config) ResolveSeed() uint64 {
	if c.AutoPlay.Seed != 0 {
		return c.AutoPlay.Seed
	}
	return frand.Uint64n(1<<63) + 1
}

// Save は設定をXDGの設定ディレクトリに書き出し、そのパスを返す
func (c *Config) Save() (string, error) {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	if err := saveCfgFile(absPath, c, 0o664); err != nil {
		return "", err
	}
	return absPath, nil
}

// LogFilePath はTUI実行中のログの出力先を返す
func LogFilePath() (string, error) {
	return xdg.StateFile(logFile)
}

func saveCfgFile(filePath string, a interface{}, perm os.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
