package preferences

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anuragpatil2882004-ui/job-traking/internal/store"
)

func TestGetAbsentReturnsNil(t *testing.T) {
	t.Parallel()

	svc := NewService(store.NewMemory())
	assert.Nil(t, svc.Get())
}

func TestGetCorruptRecordCountsAsAbsent(t *testing.T) {
	t.Parallel()

	kv := store.NewMemory()
	kv.Set(Key, "{definitely not json")

	svc := NewService(kv)
	assert.Nil(t, svc.Get())
}

func TestGetMalformedFieldsFallBackToDefaults(t *testing.T) {
	t.Parallel()

	// Present and parseable, but every field has the wrong type.
	kv := store.NewMemory()
	kv.Set(Key, `{
		"roleKeywords": 42,
		"preferredLocations": "Remote",
		"preferredMode": {"a": 1},
		"experienceLevel": [],
		"skills": null,
		"minMatchScore": "high"
	}`)

	prefs := NewService(kv).Get()
	require.NotNil(t, prefs)

	assert.Equal(t, "", prefs.RoleKeywords)
	assert.Equal(t, []string{}, prefs.PreferredLocations)
	assert.Equal(t, []string{}, prefs.PreferredMode)
	assert.Equal(t, "", prefs.ExperienceLevel)
	assert.Equal(t, "", prefs.Skills)
	assert.Equal(t, DefaultMinMatchScore, prefs.MinMatchScore)
}

func TestGetMixedRecordKeepsGoodFields(t *testing.T) {
	t.Parallel()

	kv := store.NewMemory()
	kv.Set(Key, `{
		"roleKeywords": "engineer, backend",
		"preferredLocations": ["Remote", "Berlin"],
		"preferredMode": true,
		"minMatchScore": 55
	}`)

	prefs := NewService(kv).Get()
	require.NotNil(t, prefs)

	assert.Equal(t, "engineer, backend", prefs.RoleKeywords)
	assert.Equal(t, []string{"Remote", "Berlin"}, prefs.PreferredLocations)
	assert.Equal(t, []string{}, prefs.PreferredMode)
	assert.Equal(t, 55, prefs.MinMatchScore)
}

func TestGetClampsStoredThreshold(t *testing.T) {
	t.Parallel()

	kv := store.NewMemory()
	kv.Set(Key, `{"minMatchScore": 250}`)

	prefs := NewService(kv).Get()
	require.NotNil(t, prefs)
	assert.Equal(t, 100, prefs.MinMatchScore)
}

func TestSetNormalizesBeforeWrite(t *testing.T) {
	t.Parallel()

	kv := store.NewMemory()
	svc := NewService(kv)

	ok := svc.Set(Profile{
		RoleKeywords:  "engineer",
		MinMatchScore: -10,
	})
	require.True(t, ok)

	prefs := svc.Get()
	require.NotNil(t, prefs)
	assert.Equal(t, 0, prefs.MinMatchScore)
	assert.Equal(t, []string{}, prefs.PreferredLocations)
	assert.Equal(t, []string{}, prefs.PreferredMode)
}

func TestSetRoundTrip(t *testing.T) {
	t.Parallel()

	svc := NewService(store.NewMemory())

	in := Profile{
		RoleKeywords:       "engineer, backend",
		PreferredLocations: []string{"Remote"},
		PreferredMode:      []string{"Remote", "Hybrid"},
		ExperienceLevel:    "Mid",
		Skills:             "go, sql",
		MinMatchScore:      40,
	}
	require.True(t, svc.Set(in))

	out := svc.Get()
	require.NotNil(t, out)
	assert.Equal(t, &in, out)
}

func TestTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect []string
	}{
		{
			name:   "empty input",
			input:  "",
			expect: []string{},
		},
		{
			name:   "trims and lower-cases",
			input:  " Engineer , BACKEND ",
			expect: []string{"engineer", "backend"},
		},
		{
			name:   "drops empty tokens",
			input:  "go,, ,sql",
			expect: []string{"go", "sql"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, Tokens(tt.input))
		})
	}
}
