// Package config loads application configuration into a Go struct from
// layered sources.
//
// It wraps `gopkg.in/yaml.v3`, `github.com/joho/godotenv` and
// `github.com/caarlos0/env/v11`:
//
//   - The struct's current field values are the defaults.
//   - An optional YAML file (WithFile) is decoded over them. Unknown keys are
//     rejected so typos do not pass silently.
//   - Optional dotenv files (WithEnvFiles) are loaded into the process
//     environment; the default `.env` in the working directory is loaded once
//     per process if it exists.
//   - Environment variables named by `env` tags override everything else.
//     WithPrefix prepends a common prefix to every tag.
//
// # Usage
//
//	type Config struct {
//		YearStart int `yaml:"year_start" env:"YEAR_START"`
//		YearEnd   int `yaml:"year_end"   env:"YEAR_END"`
//	}
//
//	cfg := Config{YearStart: 2000, YearEnd: 2099}
//	if err := config.Load(&cfg, config.WithFile(path), config.WithPrefix("HOLOTYPE_")); err != nil {
//		log.Fatal(err)
//	}
//
// # Error Handling
//
// Errors are joined with one of the sentinels below and can be tested with
// errors.Is:
//
//   - ErrReadingFile   – a YAML or dotenv file could not be read.
//   - ErrDecodingFile  – the YAML file is malformed or has unknown keys.
//   - ErrParsingConfig – an environment variable could not be parsed.
//   - ErrNilPointer    – nil pointer passed to Load/MustLoad.
//
// Load does not validate values; call the struct's own validation afterwards.
package config
