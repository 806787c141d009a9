// Package confloader provides configuration loading mechanism.
//
// This package implements a layered configuration loader on top of koanf.
//
// Features:
//
//   - Multiple Sources: defaults, YAML files, environment variables, flag maps
//   - Optional files: a missing config file can be treated as empty
//   - Type Safety: Unmarshaling into typed structs via koanf tags
//
// Priority (highest to lowest):
//
//  1. Command-line flags (WithOverrides)
//  2. Environment variables (CIPHERKIT_SECTION_KEY)
//  3. Configuration file
//  4. Default values (WithDefaults)
package confloader
