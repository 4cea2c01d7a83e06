// Package preferences stores the user's matching profile. The profile is
// the single input that turns raw listings into scored ones; without a
// stored profile every score is 0 and the digest refuses to generate.
package preferences

import (
	"encoding/json"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/anuragpatil2882004-ui/job-traking/internal/store"
)

// Key is the store key holding the profile record.
const Key = "jobTrackerPreferences"

// DefaultMinMatchScore is the threshold applied when none was stored.
const DefaultMinMatchScore = 40

// Profile describes the user's matching criteria. RoleKeywords and
// Skills are comma-separated free text exactly as the user typed them;
// normalization into tokens happens at match time via Tokens.
type Profile struct {
	RoleKeywords       string   `json:"roleKeywords"`
	PreferredLocations []string `json:"preferredLocations"`
	PreferredMode      []string `json:"preferredMode"`
	ExperienceLevel    string   `json:"experienceLevel"`
	Skills             string   `json:"skills"`
	MinMatchScore      int      `json:"minMatchScore"`
}

// Service reads and writes the profile through a Store.
type Service struct {
	kv store.Store
}

func NewService(kv store.Store) *Service {
	return &Service{kv: kv}
}

// Get returns the stored profile, or nil when no usable record exists.
// A record that parses as a JSON object but carries wrong-typed fields
// still yields a profile: each bad field falls back to its default. A
// record that does not parse at all counts as absent.
func (s *Service) Get() *Profile {
	raw, ok := s.kv.Get(Key)
	if !ok {
		return nil
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil
	}

	return decodeLoose(fields)
}

// Set normalizes and persists the profile, reporting whether the write
// reached the store.
func (s *Service) Set(p Profile) bool {
	p.MinMatchScore = clampScore(p.MinMatchScore)
	if p.PreferredLocations == nil {
		p.PreferredLocations = []string{}
	}
	if p.PreferredMode == nil {
		p.PreferredMode = []string{}
	}

	data, err := json.Marshal(p)
	if err != nil {
		return false
	}
	return s.kv.Set(Key, string(data))
}

// decodeLoose builds a Profile from an untyped field map, substituting
// the default for any field whose stored type cannot serve.
func decodeLoose(fields map[string]any) *Profile {
	p := defaults()

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           p,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return defaults()
	}

	if err := dec.Decode(conforming(fields)); err != nil {
		return defaults()
	}

	p.MinMatchScore = clampScore(p.MinMatchScore)
	if p.PreferredLocations == nil {
		p.PreferredLocations = []string{}
	}
	if p.PreferredMode == nil {
		p.PreferredMode = []string{}
	}
	return p
}

// conforming drops fields whose JSON type does not match the schema, so
// the decoder only ever sees values it can map field-by-field.
func conforming(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for name, value := range fields {
		switch name {
		case "roleKeywords", "experienceLevel", "skills":
			if _, ok := value.(string); ok {
				out[name] = value
			}
		case "preferredLocations", "preferredMode":
			if _, ok := value.([]any); ok {
				out[name] = value
			}
		case "minMatchScore":
			if _, ok := value.(float64); ok {
				out[name] = value
			}
		}
	}
	return out
}

func defaults() *Profile {
	return &Profile{
		PreferredLocations: []string{},
		PreferredMode:      []string{},
		MinMatchScore:      DefaultMinMatchScore,
	}
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// Tokens splits comma-separated free text into trimmed, lower-cased,
// non-empty tokens. Both role keywords and skills normalize this way.
func Tokens(s string) []string {
	parts := strings.Split(s, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		token := strings.ToLower(strings.TrimSpace(part))
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
