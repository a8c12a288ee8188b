package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multipick/internal/eventbus"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, err := NewConfigServiceForPath(path).Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, []string{"Apple", "Banana", "Cherry", "Date", "Elderberry", "Fig"}, cfg.Candidates)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigServiceForPath(path)

	cfg := &Config{
		Version:        1,
		Candidates:     []string{"Go", "Rust"},
		CandidatesFile: "labels.yaml",
		Match:          "fuzzy",
		UISettings:     UISettings{ShowHelp: false, Mouse: true, AltScreen: false},
	}
	require.NoError(t, svc.Save(cfg))

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("match = \"fuzzy\"\n"), 0644))

	cfg, err := NewConfigServiceForPath(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "fuzzy", cfg.Match)
	assert.Len(t, cfg.Candidates, 6)
	assert.True(t, cfg.UISettings.Mouse)
}

func TestLoadInvalidToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("candidates = [\n"), 0644))

	_, err := NewConfigServiceForPath(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadFromPathMissing(t *testing.T) {
	_, err := NewConfigService().LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoadPublishesEvent(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	got := make(chan eventbus.DomainEvent, 1)
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) { got <- e })

	path := filepath.Join(t.TempDir(), "config.toml")
	_, err := NewConfigServiceWithBus(bus, path).Load()
	require.NoError(t, err)

	select {
	case e := <-got:
		loaded, ok := e.(eventbus.ConfigLoadedEvent)
		require.True(t, ok)
		assert.Equal(t, path, loaded.Path)
		assert.Equal(t, 6, loaded.Candidates)
		assert.Equal(t, "prefix", loaded.Match)
	case <-time.After(time.Second):
		t.Fatal("no ConfigLoadedEvent")
	}
}

func TestLoadCandidates(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fruits.yaml"), []byte("- Kiwi\n- Lime\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fruits.txt"), []byte("# fruits\nKiwi\n\n  Lime  \n"), 0644))

	tests := []struct {
		name string
		cfg  *Config
		want []string
	}{
		{
			name: "inline list",
			cfg:  &Config{Candidates: []string{"A", "B"}},
			want: []string{"A", "B"},
		},
		{
			name: "yaml file relative to base dir",
			cfg:  &Config{Candidates: []string{"ignored"}, CandidatesFile: "fruits.yaml"},
			want: []string{"Kiwi", "Lime"},
		},
		{
			name: "plain text skips blanks and comments",
			cfg:  &Config{CandidatesFile: filepath.Join(dir, "fruits.txt")},
			want: []string{"Kiwi", "Lime"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadCandidates(tt.cfg, dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadCandidatesErrors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yml"), []byte("key: value\n"), 0644))

	_, err := LoadCandidates(&Config{CandidatesFile: "bad.yml"}, dir)
	assert.Error(t, err, "a mapping is not a list")

	_, err = LoadCandidates(&Config{CandidatesFile: "missing.txt"}, dir)
	assert.Error(t, err)
}

func TestInlineCandidatesAreCopied(t *testing.T) {
	cfg := &Config{Candidates: []string{"A"}}
	got, err := LoadCandidates(cfg, "")
	require.NoError(t, err)
	got[0] = "changed"
	assert.Equal(t, "A", cfg.Candidates[0])
}
