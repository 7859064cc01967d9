package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/wik/internal/core/domain"
	"github.com/custodia-labs/wik/internal/core/ports/driven"
	"github.com/custodia-labs/wik/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyAPIBaseURL         = "api.base_url"
	keyAPITimeout         = "api.timeout_seconds"
	keyAPIRate            = "api.requests_per_second"
	keyAPIUserAgent       = "api.user_agent"
	keySearchLimit        = "search.limit"
	keyCacheRoot          = "cache.root"
	keyCacheBackend       = "cache.backend"
	keyArticleBoilerplate = "article.boilerplate_titles"
	keyArticleTrailer     = "article.trailer_titles"
)

// settingKeys lists every settable key in display order.
var settingKeys = []string{
	keyAPIBaseURL,
	keyAPITimeout,
	keyAPIRate,
	keyAPIUserAgent,
	keySearchLimit,
	keyCacheRoot,
	keyCacheBackend,
	keyArticleBoilerplate,
	keyArticleTrailer,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		API: domain.APISettings{
			BaseURL:           strings.TrimRight(s.getString(keyAPIBaseURL, defaults.API.BaseURL), "/"),
			TimeoutSeconds:    s.getInt(keyAPITimeout, defaults.API.TimeoutSeconds),
			RequestsPerSecond: s.getFloat(keyAPIRate, defaults.API.RequestsPerSecond),
			UserAgent:         s.configStore.GetString(keyAPIUserAgent), // Empty means the client default
		},
		Search: domain.SearchSettings{
			Limit: s.getInt(keySearchLimit, defaults.Search.Limit),
		},
		Cache: domain.CacheSettings{
			Root:    s.configStore.GetString(keyCacheRoot), // Empty means the adapter default
			Backend: s.getBackend(defaults.Cache.Backend),
		},
		Article: domain.ArticleSettings{
			BoilerplateTitles: s.getStringSlice(keyArticleBoilerplate, defaults.Article.BoilerplateTitles),
			TrailerTitles:     s.getStringSlice(keyArticleTrailer, defaults.Article.TrailerTitles),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	values := []struct {
		key   string
		value any
	}{
		{keyAPIBaseURL, settings.API.BaseURL},
		{keyAPITimeout, settings.API.TimeoutSeconds},
		{keyAPIRate, settings.API.RequestsPerSecond},
		{keyAPIUserAgent, settings.API.UserAgent},
		{keySearchLimit, settings.Search.Limit},
		{keyCacheRoot, settings.Cache.Root},
		{keyCacheBackend, settings.Cache.Backend.String()},
		{keyArticleBoilerplate, settings.Article.BoilerplateTitles},
		{keyArticleTrailer, settings.Article.TrailerTitles},
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	return nil
}

// Set parses value for key and persists it.
// List keys take a comma-separated value.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)

	var parsed any
	switch key {
	case keyAPIBaseURL:
		if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
			return fmt.Errorf("%s must be an http(s) URL: %w", key, domain.ErrInvalidInput)
		}
		parsed = strings.TrimRight(value, "/")

	case keyAPIUserAgent, keyCacheRoot:
		parsed = value

	case keyAPITimeout, keySearchLimit:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s must be a positive integer: %w", key, domain.ErrInvalidInput)
		}
		parsed = n

	case keyAPIRate:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return fmt.Errorf("%s must be a positive number: %w", key, domain.ErrInvalidInput)
		}
		parsed = f

	case keyCacheBackend:
		backend := domain.CacheBackend(value)
		if !backend.IsValid() {
			return fmt.Errorf("invalid cache backend %q: %w", value, domain.ErrInvalidInput)
		}
		parsed = backend.String()

	case keyArticleBoilerplate, keyArticleTrailer:
		parsed = splitList(value)

	default:
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns every settable key in display order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	copy(keys, settingKeys)
	return keys
}

// Validate checks that current settings are usable.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if !settings.Cache.Backend.IsValid() {
		return fmt.Errorf("invalid cache backend: %s", settings.Cache.Backend)
	}
	if settings.API.TimeoutSeconds <= 0 {
		return fmt.Errorf("api timeout must be positive, got %d", settings.API.TimeoutSeconds)
	}
	if settings.API.RequestsPerSecond <= 0 {
		return fmt.Errorf("api rate must be positive, got %g", settings.API.RequestsPerSecond)
	}
	if settings.Search.Limit <= 0 {
		return fmt.Errorf("search limit must be positive, got %d", settings.Search.Limit)
	}

	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	val := s.configStore.GetFloat(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getStringSlice(key string, defaultVal []string) []string {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetStringSlice(key)
}

func (s *SettingsService) getBackend(defaultVal domain.CacheBackend) domain.CacheBackend {
	val := s.configStore.GetString(keyCacheBackend)
	if val == "" {
		return defaultVal
	}
	backend := domain.CacheBackend(val)
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}

// splitList splits a comma-separated value into trimmed, non-empty items.
func splitList(value string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
