// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package config loads the optional JSON configuration file. A missing
// file is not an error; every field has a sensible default so the
// application can run with no configuration at all.
package config
