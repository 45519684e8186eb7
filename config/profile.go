// Package config holds the naming contract shared by the macro source, the
// header and the generated wrapper file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Profile names the macros and types the generator matches and emits.
type Profile struct {
	// FunctionMacro is matched as NAME(fn, ...) with fn as the first argument.
	FunctionMacro string `toml:"function-macro"`

	// DualFunctionMacro is matched as NAME(a, b, fn, ...) with fn as the third argument.
	DualFunctionMacro string `toml:"gl-gles-function-macro"`

	WrapperMacro    string `toml:"wrapper-macro"`
	WrapperRetMacro string `toml:"wrapper-ret-macro"`

	// DeviceType and DeviceName form the leading argument of every wrapper.
	DeviceType string `toml:"device-type"`
	DeviceName string `toml:"device-name"`

	// Decorations are removed from a prototype's return type, in order.
	Decorations []string `toml:"decorations"`

	// Banner lines are written as // comments at the top of the output.
	Banner []string `toml:"banner"`
}

// Default returns the Pulse OpenGL backend profile.
func Default() Profile {
	return Profile{
		FunctionMacro:     "PULSE_OPENGL_FUNCTION",
		DualFunctionMacro: "PULSE_OPENGL_GL_GLES_FUNCTION",
		WrapperMacro:      "PULSE_OPENGL_WRAPPER",
		WrapperRetMacro:   "PULSE_OPENGL_WRAPPER_RET",
		DeviceType:        "PulseDevice",
		DeviceName:        "device",
		Decorations:       []string{"GL_APICALL ", " GL_APIENTRY", "GL_APIENTRY"},
		Banner: []string{
			"Copyright (C) 2025 kanel",
			`This file is part of "Pulse"`,
			"For conditions of distribution and use, see copyright notice in LICENSE",
		},
	}
}

// Load reads a TOML profile from path. Keys missing from the file keep
// their Default values; unknown keys are rejected.
func Load(path string) (Profile, error) {
	p := Default()

	md, err := toml.DecodeFile(path, &p)
	if err != nil {
		return Profile{}, fmt.Errorf("parse error in %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Profile{}, fmt.Errorf("unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	if err := p.Validate(); err != nil {
		return Profile{}, fmt.Errorf("invalid profile %s: %w", path, err)
	}

	return p, nil
}

// Validate reports every required field left empty.
func (p Profile) Validate() error {
	var errs []error

	required := []struct {
		key   string
		value string
	}{
		{"function-macro", p.FunctionMacro},
		{"gl-gles-function-macro", p.DualFunctionMacro},
		{"wrapper-macro", p.WrapperMacro},
		{"wrapper-ret-macro", p.WrapperRetMacro},
		{"device-type", p.DeviceType},
		{"device-name", p.DeviceName},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, fmt.Errorf("%s must not be empty", r.key))
		}
	}

	return errors.Join(errs...)
}
