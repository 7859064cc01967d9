package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wik/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wik/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	require.NotNil(t, settings)

	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.API.BaseURL, settings.API.BaseURL)
	assert.Equal(t, defaults.API.TimeoutSeconds, settings.API.TimeoutSeconds)
	assert.Equal(t, defaults.API.RequestsPerSecond, settings.API.RequestsPerSecond)
	assert.Equal(t, defaults.Search.Limit, settings.Search.Limit)
	assert.Equal(t, defaults.Cache.Backend, settings.Cache.Backend)
	assert.Equal(t, defaults.Article.BoilerplateTitles, settings.Article.BoilerplateTitles)
	assert.Equal(t, defaults.Article.TrailerTitles, settings.Article.TrailerTitles)
	assert.Empty(t, settings.API.UserAgent)
	assert.Empty(t, settings.Cache.Root)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("api.base_url", "https://de.wikipedia.org/")
	_ = store.Set("search.limit", 10)
	_ = store.Set("cache.backend", "sqlite")
	_ = store.Set("article.trailer_titles", []string{"Weblinks"})

	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, "https://de.wikipedia.org", settings.API.BaseURL)
	assert.Equal(t, 10, settings.Search.Limit)
	assert.Equal(t, domain.CacheBackendSQLite, settings.Cache.Backend)
	assert.Equal(t, []string{"Weblinks"}, settings.Article.TrailerTitles)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("cache.backend", "floppy")

	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings().Cache.Backend, settings.Cache.Backend)
}

func TestSettingsService_Save(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := domain.DefaultAppSettings()
	settings.API.TimeoutSeconds = 30
	settings.Cache.Backend = domain.CacheBackendMemory
	settings.Article.BoilerplateTitles = []string{"Notes"}

	err := service.Save(&settings)
	require.NoError(t, err)

	assert.Equal(t, 30, store.GetInt("api.timeout_seconds"))
	assert.Equal(t, "memory", store.GetString("cache.backend"))
	assert.Equal(t, []string{"Notes"}, store.GetStringSlice("article.boilerplate_titles"))
}

func TestSettingsService_SaveAndGet(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	original := domain.DefaultAppSettings()
	original.API.BaseURL = "https://fr.wikipedia.org"
	original.API.RequestsPerSecond = 2.5
	original.API.UserAgent = "wik-test/1.0"
	original.Search.Limit = 50
	original.Cache.Root = "/tmp/wik-cache"

	require.NoError(t, service.Save(&original))

	loaded, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, original, *loaded)
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		check func(t *testing.T, s *domain.AppSettings)
	}{
		{
			name:  "base url trims trailing slash",
			key:   "api.base_url",
			value: "https://simple.wikipedia.org/",
			check: func(t *testing.T, s *domain.AppSettings) {
				assert.Equal(t, "https://simple.wikipedia.org", s.API.BaseURL)
			},
		},
		{
			name:  "timeout",
			key:   "api.timeout_seconds",
			value: "42",
			check: func(t *testing.T, s *domain.AppSettings) {
				assert.Equal(t, 42, s.API.TimeoutSeconds)
			},
		},
		{
			name:  "fractional rate",
			key:   "api.requests_per_second",
			value: "0.5",
			check: func(t *testing.T, s *domain.AppSettings) {
				assert.InDelta(t, 0.5, s.API.RequestsPerSecond, 1e-9)
			},
		},
		{
			name:  "backend",
			key:   "cache.backend",
			value: "sqlite",
			check: func(t *testing.T, s *domain.AppSettings) {
				assert.Equal(t, domain.CacheBackendSQLite, s.Cache.Backend)
			},
		},
		{
			name:  "comma list",
			key:   "article.boilerplate_titles",
			value: " Notes, References ,, Sources",
			check: func(t *testing.T, s *domain.AppSettings) {
				assert.Equal(t, []string{"Notes", "References", "Sources"}, s.Article.BoilerplateTitles)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewSettingsService(memory.NewConfigStore())

			require.NoError(t, service.Set(tt.key, tt.value))

			settings, err := service.Get()
			require.NoError(t, err)
			tt.check(t, settings)
		})
	}
}

func TestSettingsService_Set_Rejects(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"api.base_url", "ftp://example.org"},
		{"api.timeout_seconds", "0"},
		{"api.timeout_seconds", "soon"},
		{"api.requests_per_second", "-1"},
		{"search.limit", "many"},
		{"cache.backend", "tape"},
		{"no.such.key", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			store := memory.NewConfigStore()
			service := NewSettingsService(store)

			err := service.Set(tt.key, tt.value)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			_, exists := store.Get(tt.key)
			assert.False(t, exists)
		})
	}
}

func TestSettingsService_Keys(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	keys := service.Keys()

	assert.Len(t, keys, 9)
	assert.Equal(t, "api.base_url", keys[0])
	assert.Contains(t, keys, "cache.backend")

	keys[0] = "mutated"
	assert.Equal(t, "api.base_url", service.Keys()[0])
}

func TestSettingsService_Validate(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.NoError(t, service.Validate())
}

func TestSettingsService_Validate_NegativeLimit(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("search.limit", -5)
	service := NewSettingsService(store)

	assert.Error(t, service.Validate())
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}
