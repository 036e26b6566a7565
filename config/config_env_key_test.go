package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"messenger": map[string]any{
			"pageAccessToken": "",
			"graphApiVersion": "v21.0",
		},
		"admin": map[string]any{
			"jwtSecret": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "MESSENGER_PAGEACCESSTOKEN", want: "messenger.pageAccessToken"},
		{envKey: "MESSENGER_GRAPHAPIVERSION", want: "messenger.graphApiVersion"},
		{envKey: "ADMIN_JWTSECRET", want: "admin.jwtSecret"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Admin: &AdminConfig{}}
	cfg.ApplyDefaults()

	assert.Equal(t, "https://graph.facebook.com", cfg.Messenger.GraphAPIBase)
	assert.Equal(t, "v21.0", cfg.Messenger.GraphAPIVersion)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.Model)
	assert.Equal(t, int32(1000), cfg.LLM.MaxOutputTokens)
	assert.InDelta(t, 0.2, cfg.Catalog.SimilarityThreshold, 1e-9)
	assert.Equal(t, 10, cfg.Catalog.ResultLimit)
	assert.Equal(t, 20, cfg.Order.QuantityWindow)
	assert.Len(t, cfg.Effects.Labels, 2)
	assert.Equal(t, 12*time.Hour, cfg.Admin.TokenTTL)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Catalog: &CatalogConfig{SimilarityThreshold: 0.35, ResultLimit: 5},
		Effects: &EffectsConfig{Labels: []string{"vip"}},
	}
	cfg.ApplyDefaults()

	assert.InDelta(t, 0.35, cfg.Catalog.SimilarityThreshold, 1e-9)
	assert.Equal(t, 5, cfg.Catalog.ResultLimit)
	assert.Equal(t, []string{"vip"}, cfg.Effects.Labels)
	assert.Nil(t, cfg.Admin)
}
