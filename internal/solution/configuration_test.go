package solution

import (
	"testing"

	"github.com/google/uuid"
)

func TestParseConfigurationAndPlatform(t *testing.T) {
	tests := []struct {
		input    string
		expected ConfigurationAndPlatform
		ok       bool
	}{
		{input: "Debug|Any CPU", expected: ConfigurationAndPlatform{"Debug", "Any CPU"}, ok: true},
		{input: "Release|x64", expected: ConfigurationAndPlatform{"Release", "x64"}, ok: true},
		{input: " Debug | Any CPU ", expected: ConfigurationAndPlatform{"Debug", "Any CPU"}, ok: true},
		// Split happens on the last '|'.
		{input: "My|Config|x86", expected: ConfigurationAndPlatform{"My|Config", "x86"}, ok: true},
		{input: "Debug", ok: false},
		{input: "", ok: false},
		{input: "|", ok: false},
	}

	for _, tt := range tests {
		got, ok := ParseConfigurationAndPlatform(tt.input)
		if ok != tt.ok {
			t.Fatalf("ParseConfigurationAndPlatform(%q) ok = %v, expected %v", tt.input, ok, tt.ok)
		}
		if ok && got != tt.expected {
			t.Fatalf("ParseConfigurationAndPlatform(%q) = %+v, expected %+v", tt.input, got, tt.expected)
		}
	}
}

func TestConfigurationAndPlatformEqualIsCaseInsensitive(t *testing.T) {
	a := ConfigurationAndPlatform{"Debug", "Any CPU"}
	b := ConfigurationAndPlatform{"DEBUG", "any cpu"}
	if !a.Equal(b) {
		t.Fatalf("%v and %v should compare equal", a, b)
	}
	c := ConfigurationAndPlatform{"Release", "Any CPU"}
	if a.Equal(c) {
		t.Fatalf("%v and %v should not compare equal", a, c)
	}
}

func TestConfigurationMappingBuildDefault(t *testing.T) {
	m := NewConfigurationMapping()
	sol := ConfigurationAndPlatform{"Debug", "Any CPU"}
	proj := ConfigurationAndPlatform{"Debug", "x64"}

	m.set(sol, proj)
	pc, ok := m.Get(sol)
	if !ok {
		t.Fatal("expected a mapping after set")
	}
	if pc.Build {
		t.Fatal("build should default to false until a Build.0 entry flips it")
	}

	m.setBuild(sol)
	pc, _ = m.Get(sol)
	if !pc.Build || pc.Configuration != proj {
		t.Fatalf("after setBuild got %+v, expected build=true configuration=%v", pc, proj)
	}

	// Lookup is case-insensitive.
	if _, ok := m.Get(ConfigurationAndPlatform{"debug", "ANY CPU"}); !ok {
		t.Fatal("expected case-insensitive lookup to find the mapping")
	}
}

func TestConfigurationMappingBuildWithoutActiveCfg(t *testing.T) {
	m := NewConfigurationMapping()
	sol := ConfigurationAndPlatform{"Debug", "Any CPU"}
	m.setBuild(sol)
	if m.Len() != 0 {
		t.Fatal("a Build.0 entry without an ActiveCfg entry must not create a mapping")
	}
}

func TestSplitConfigurationKey(t *testing.T) {
	id := uuid.MustParse("8A1F7E63-2F42-4E9F-9C4B-50E7B7D3F8A1")

	tests := []struct {
		key    string
		suffix string
		ok     bool
		cfg    ConfigurationAndPlatform
	}{
		{key: "{8A1F7E63-2F42-4E9F-9C4B-50E7B7D3F8A1}.Debug|Any CPU.ActiveCfg", suffix: activeCfgSuffix, ok: true, cfg: ConfigurationAndPlatform{"Debug", "Any CPU"}},
		{key: "{8A1F7E63-2F42-4E9F-9C4B-50E7B7D3F8A1}.Debug|Any CPU.activecfg", suffix: activeCfgSuffix, ok: true, cfg: ConfigurationAndPlatform{"Debug", "Any CPU"}},
		{key: "{8A1F7E63-2F42-4E9F-9C4B-50E7B7D3F8A1}.Debug|Any CPU.Build.0", suffix: buildSuffix, ok: true, cfg: ConfigurationAndPlatform{"Debug", "Any CPU"}},
		// Wrong suffix for the pass.
		{key: "{8A1F7E63-2F42-4E9F-9C4B-50E7B7D3F8A1}.Debug|Any CPU.Build.0", suffix: activeCfgSuffix, ok: false},
		// Malformed id.
		{key: "{not-a-guid}.Debug|Any CPU.ActiveCfg", suffix: activeCfgSuffix, ok: false},
		// Unparseable configuration token.
		{key: "{8A1F7E63-2F42-4E9F-9C4B-50E7B7D3F8A1}.Debug.ActiveCfg", suffix: activeCfgSuffix, ok: false},
		{key: "NoDotsHere", suffix: activeCfgSuffix, ok: false},
	}

	for _, tt := range tests {
		gotID, gotCfg, ok := splitConfigurationKey(tt.key, tt.suffix)
		if ok != tt.ok {
			t.Fatalf("splitConfigurationKey(%q, %q) ok = %v, expected %v", tt.key, tt.suffix, ok, tt.ok)
		}
		if !ok {
			continue
		}
		if gotID != id {
			t.Fatalf("splitConfigurationKey(%q) id = %v, expected %v", tt.key, gotID, id)
		}
		if gotCfg != tt.cfg {
			t.Fatalf("splitConfigurationKey(%q) config = %+v, expected %+v", tt.key, gotCfg, tt.cfg)
		}
	}
}
