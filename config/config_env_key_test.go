package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode":  "disable",
			"userName": "user",
			"pool": map[string]any{
				"maxOpenConns": 5,
			},
		},
		"hash": map[string]any{
			"memoryKiB": 65536,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_USERNAME", want: "postgres.userName"},
		{envKey: "POSTGRES_POOL_MAXOPENCONNS", want: "postgres.pool.maxOpenConns"},
		{envKey: "HASH_MEMORYKIB", want: "hash.memoryKiB"},
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

func TestPostgresConfig_DSN(t *testing.T) {
	cfg := &PostgresConfig{
		Host:     "localhost",
		Port:     5432,
		UserName: "signup",
		Password: "secret",
		DBName:   "signup",
		Schema:   "public",
	}

	got := cfg.DSN()
	want := "host=localhost port=5432 user=signup password=secret dbname=signup sslmode=disable search_path=public"
	if got != want {
		t.Fatalf("DSN() = %q, want %q", got, want)
	}
}
