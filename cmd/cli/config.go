// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "TTR"

// newEnvConfig reads TTR_* environment variables, with dashes in flag names
// mapped to underscores (log-level -> TTR_LOG_LEVEL).
func newEnvConfig() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	return v
}

// envName is the variable that feeds a flag.
func envName(flag string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

// applyEnv copies environment values into flags the user did not set on the
// command line. Explicit flags always win.
func applyEnv(v *viper.Viper, flagSets ...*pflag.FlagSet) error {
	for _, fs := range flagSets {
		if err := v.BindPFlags(fs); err != nil {
			return fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	var setErr error
	for _, fs := range flagSets {
		fs.VisitAll(func(f *pflag.Flag) {
			if f.Changed || !v.IsSet(f.Name) {
				return
			}
			val := fmt.Sprintf("%v", v.Get(f.Name))
			if val == "" {
				return
			}
			if err := f.Value.Set(val); err != nil && setErr == nil {
				setErr = fmt.Errorf("invalid value %q in %s: %w", val, envName(f.Name), err)
			}
		})
	}
	return setErr
}
