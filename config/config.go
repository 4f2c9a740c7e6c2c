// Copyright (C) 2022 CYBERCRYPT
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config contains the environment configuration of the harness.
package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config contains the settings the harness reads from the environment. All
// variables are prefixed with "ACVP", e.g. ACVP_LOG_LEVEL.
type Config struct {
	// LogLevel is the global log level. Accepts any level zerolog parses.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// StorePath is the bolt database file results are written to. When empty,
	// results are kept in memory and discarded when the process exits.
	StorePath string `envconfig:"STORE_PATH"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var config Config
	if err := envconfig.Process("acvp", &config); err != nil {
		return Config{}, err
	}
	return config, nil
}
