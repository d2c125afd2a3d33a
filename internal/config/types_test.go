// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestColorScheme_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		scheme  ColorScheme
		want    bool
		wantErr bool
	}{
		{ColorSchemeAuto, true, false},
		{ColorSchemeDark, true, false},
		{ColorSchemeLight, true, false},
		{"", false, true},
		{"invalid", false, true},
		{"DARK", false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.scheme), func(t *testing.T) {
			t.Parallel()
			isValid, errs := tt.scheme.IsValid()
			if isValid != tt.want {
				t.Errorf("ColorScheme(%q).IsValid() = %v, want %v", tt.scheme, isValid, tt.want)
			}
			if tt.wantErr {
				if len(errs) == 0 {
					t.Fatalf("ColorScheme(%q).IsValid() returned no errors, want error", tt.scheme)
				}
				if !errors.Is(errs[0], ErrInvalidColorScheme) {
					t.Errorf("error should wrap ErrInvalidColorScheme, got: %v", errs[0])
				}
			} else if len(errs) > 0 {
				t.Errorf("ColorScheme(%q).IsValid() returned unexpected errors: %v", tt.scheme, errs)
			}
		})
	}
}

func TestSourceRootPath_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path SourceRootPath
		want bool
	}{
		{"zero value valid", "", true},
		{"simple dir", "src", true},
		{"nested dir", "lib/server", true},
		{"trailing slash", "src/", true},
		{"dot segment", "./src", true},
		{"whitespace only", "   ", false},
		{"tab only", "\t", false},
		{"absolute path", "/etc/app", false},
		{"parent escape", "../outside", false},
		{"embedded parent escape", "src/../../outside", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			isValid, errs := tt.path.IsValid()
			if isValid != tt.want {
				t.Errorf("SourceRootPath(%q).IsValid() = %v, want %v", tt.path, isValid, tt.want)
			}
			if !tt.want {
				if len(errs) == 0 {
					t.Fatalf("SourceRootPath(%q).IsValid() returned no errors, want error", tt.path)
				}
				if !errors.Is(errs[0], ErrInvalidSourceRoot) {
					t.Errorf("error should wrap ErrInvalidSourceRoot, got: %v", errs[0])
				}
			}
		})
	}
}

func TestHookCommand_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cmd  HookCommand
		want bool
	}{
		{"zero value valid", "", true},
		{"simple command", "npm run lint", true},
		{"whitespace only", "   ", false},
		{"tab only", "\t\t", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			isValid, errs := tt.cmd.IsValid()
			if isValid != tt.want {
				t.Errorf("HookCommand(%q).IsValid() = %v, want %v", tt.cmd, isValid, tt.want)
			}
			if !tt.want && !errors.Is(errs[0], ErrInvalidHookCommand) {
				t.Errorf("error should wrap ErrInvalidHookCommand, got: %v", errs[0])
			}
		})
	}
}

func TestUIConfig_IsValid(t *testing.T) {
	t.Parallel()

	valid := UIConfig{ColorScheme: ColorSchemeDark, Verbose: true}
	if isValid, errs := valid.IsValid(); !isValid {
		t.Errorf("valid UIConfig reported invalid: %v", errs)
	}

	invalid := UIConfig{ColorScheme: "sepia"}
	isValid, errs := invalid.IsValid()
	if isValid {
		t.Fatal("UIConfig with bad color scheme should be invalid")
	}
	if !errors.Is(errs[0], ErrInvalidUIConfig) {
		t.Errorf("error should wrap ErrInvalidUIConfig, got: %v", errs[0])
	}
}

func TestHooksConfig_IsValid(t *testing.T) {
	t.Parallel()

	valid := HooksConfig{PostGenerate: "npm run format"}
	if isValid, errs := valid.IsValid(); !isValid {
		t.Errorf("valid HooksConfig reported invalid: %v", errs)
	}

	invalid := HooksConfig{PostGenerate: "  "}
	isValid, errs := invalid.IsValid()
	if isValid {
		t.Fatal("HooksConfig with whitespace-only command should be invalid")
	}
	if !errors.Is(errs[0], ErrInvalidHooksConfig) {
		t.Errorf("error should wrap ErrInvalidHooksConfig, got: %v", errs[0])
	}
}

func TestConfig_IsValid(t *testing.T) {
	t.Parallel()

	t.Run("defaults are valid", func(t *testing.T) {
		t.Parallel()
		if isValid, errs := DefaultConfig().IsValid(); !isValid {
			t.Errorf("DefaultConfig() reported invalid: %v", errs)
		}
	})

	t.Run("collects errors from all sections", func(t *testing.T) {
		t.Parallel()
		cfg := Config{
			SourceRoot: "/abs",
			Hooks:      HooksConfig{PostGenerate: " "},
			UI:         UIConfig{ColorScheme: "bad"},
		}
		isValid, errs := cfg.IsValid()
		if isValid {
			t.Fatal("config with three bad fields should be invalid")
		}
		if !errors.Is(errs[0], ErrInvalidConfig) {
			t.Errorf("error should wrap ErrInvalidConfig, got: %v", errs[0])
		}

		var cfgErr *InvalidConfigError
		if !errors.As(errs[0], &cfgErr) {
			t.Fatalf("error should be *InvalidConfigError, got: %T", errs[0])
		}
		if len(cfgErr.FieldErrors) != 3 {
			t.Errorf("expected 3 field errors, got %d: %v", len(cfgErr.FieldErrors), cfgErr.FieldErrors)
		}
	})
}
