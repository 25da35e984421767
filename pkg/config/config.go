// Package config 提供 TOML 配置加载、环境变量覆盖与默认值
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/novamart/storefront/pkg/logger"
)

// Config 基础配置结构
type Config struct {
	// 服务名称
	ServiceName string `mapstructure:"service_name"`
	// 环境：dev, staging, prod
	Environment string `mapstructure:"environment"`
	// HTTP 服务配置
	HTTP HTTPConfig `mapstructure:"http"`
	// 日志配置
	Logger logger.Config `mapstructure:"logger"`
	// Kafka 配置
	Kafka KafkaConfig `mapstructure:"kafka"`
	// Gemini 配置
	Gemini GeminiConfig `mapstructure:"gemini"`
	// 搜索建议配置
	Search SearchConfig `mapstructure:"search"`
	// 结算流程配置
	Checkout CheckoutConfig `mapstructure:"checkout"`
}

// HTTPConfig HTTP 服务配置
type HTTPConfig struct {
	// 监听地址
	Host string `mapstructure:"host"`
	// 监听端口
	Port int `mapstructure:"port"`
	// 读超时（秒）
	ReadTimeout int `mapstructure:"read_timeout"`
	// 写超时（秒）
	WriteTimeout int `mapstructure:"write_timeout"`
}

// KafkaConfig Kafka 配置，brokers 为空时事件与通知仅落日志
type KafkaConfig struct {
	// Broker 地址列表
	Brokers []string `mapstructure:"brokers"`
	// 事件主题
	EventTopic string `mapstructure:"event_topic"`
	// 通知主题
	NotificationTopic string `mapstructure:"notification_topic"`
	// 最大重试次数
	MaxRetries int `mapstructure:"max_retries"`
	// 重试退避（毫秒）
	RetryBackoff int `mapstructure:"retry_backoff"`
}

// GeminiConfig 文本生成服务配置
type GeminiConfig struct {
	// API Key，空值时走降级路径
	APIKey string `mapstructure:"api_key"`
	// 模型名称
	Model string `mapstructure:"model"`
	// 单次调用超时（秒）
	Timeout int `mapstructure:"timeout"`
}

// SearchConfig 搜索建议配置
type SearchConfig struct {
	// 防抖窗口（毫秒）
	DebounceMillis int `mapstructure:"debounce_millis"`
	// 触发建议的最小字符数
	MinQueryLength int `mapstructure:"min_query_length"`
	// 建议条数上限
	MaxSuggestions int `mapstructure:"max_suggestions"`
}

// CheckoutConfig 结算流程配置
type CheckoutConfig struct {
	// 模拟支付处理时长（毫秒）
	ProcessingMillis int `mapstructure:"processing_millis"`
}

// Load 从 TOML 文件加载配置，支持环境变量覆盖
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	// 配置文件缺失时退回默认值
	_ = v.ReadInConfig()

	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate 验证配置的有效性
func (c *Config) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("service_name is required")
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTP.Port)
	}
	if c.Search.MinQueryLength < 1 {
		return fmt.Errorf("invalid min_query_length: %d", c.Search.MinQueryLength)
	}
	if c.Search.MaxSuggestions < 1 {
		return fmt.Errorf("invalid max_suggestions: %d", c.Search.MaxSuggestions)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("service_name", "storefront")
	v.SetDefault("environment", "dev")

	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.read_timeout", 30)
	v.SetDefault("http.write_timeout", 30)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.file_path", "logs/app.log")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 10)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)
	v.SetDefault("logger.with_caller", false)

	v.SetDefault("kafka.event_topic", "storefront.events")
	v.SetDefault("kafka.notification_topic", "storefront.notifications")
	v.SetDefault("kafka.max_retries", 3)
	v.SetDefault("kafka.retry_backoff", 100)

	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("gemini.timeout", 10)

	v.SetDefault("search.debounce_millis", 400)
	v.SetDefault("search.min_query_length", 3)
	v.SetDefault("search.max_suggestions", 5)

	v.SetDefault("checkout.processing_millis", 2000)
}
