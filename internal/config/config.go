package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TasksDBPathEnv 是覆盖 SQLite 数据库文件路径的环境变量名
// （便于测试和 Docker 挂载卷）。
const TasksDBPathEnv = "TASKS_DB_PATH"

// AppInfo 对应 'app' 部分，包含应用程序的基本信息。
type AppInfo struct {
	Name        string `yaml:"name"`        // 应用程序名称
	Version     string `yaml:"version"`     // 应用程序版本
	Environment string `yaml:"environment"` // 运行环境 (例如: "development", "production")
}

// ServerConfig 定义了 HTTP 服务器的配置。
type ServerConfig struct {
	Address string `yaml:"address"` // 监听地址 (例如: ":8080")
}

// SQLiteConfig 定义了 SQLite 数据库的连接配置。
type SQLiteConfig struct {
	Path         string `yaml:"path"`         // 数据库文件路径
	MaxOpenConns int    `yaml:"maxOpenConns"` // 最大打开连接数
	MaxIdleConns int    `yaml:"maxIdleConns"` // 最大空闲连接数
}

// DatabaseConfigs 包含所有数据库的配置。
type DatabaseConfigs struct {
	SQLite SQLiteConfig `yaml:"sqlite"` // SQLite 数据库配置
}

// LoggerConfig 定义了日志记录器的配置。
type LoggerConfig struct {
	Level string `yaml:"level"` // 日志级别 (例如: "info", "debug", "warn", "error")
}

// AppConfig 是整个 YAML 文件的根结构，包含了应用程序的所有配置。
type AppConfig struct {
	App       AppInfo         `yaml:"app"`       // 应用程序信息
	Server    ServerConfig    `yaml:"server"`    // HTTP 服务器配置
	Logger    LoggerConfig    `yaml:"logger"`    // 日志记录器配置
	Databases DatabaseConfigs `yaml:"databases"` // 数据库配置
}

// Default 返回一份内置的默认配置。配置文件缺失时以它为准。
func Default() *AppConfig {
	return &AppConfig{
		App: AppInfo{
			Name:        "job_orchestrator",
			Version:     "1.0.0",
			Environment: "development",
		},
		Server: ServerConfig{
			Address: ":8080",
		},
		Logger: LoggerConfig{
			Level: "info",
		},
		Databases: DatabaseConfigs{
			SQLite: SQLiteConfig{
				Path:         "tasks.db",
				MaxOpenConns: 10,
				MaxIdleConns: 5,
			},
		},
	}
}

// LoadConfig 函数从指定路径加载并解析 YAML 配置文件。
// 配置文件不存在时返回默认配置而不是报错。
// 环境变量 TASKS_DB_PATH 始终优先于配置文件中的数据库路径
// （这是唯一一个允许从外部覆盖的配置项）。
func LoadConfig(path string) (*AppConfig, error) {
	cfg := Default()

	yamlFile, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(yamlFile, cfg); err != nil {
			return nil, fmt.Errorf("解析 YAML 文件失败: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("无法读取 YAML 文件 '%s': %w", path, err)
	}

	if override := os.Getenv(TasksDBPathEnv); override != "" {
		cfg.Databases.SQLite.Path = override
	}

	return cfg, nil
}
