// Package config loads configuration structs from the environment.
//
// It combines github.com/joho/godotenv for .env files with
// github.com/caarlos0/env/v11 for tag-based parsing:
//
//	type Config struct {
//		SwitchParam string `env:"MOBILE_DETECT_SWITCH_PARAM" envDefault:"device_view"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Parsed values are cached per type. A struct whose pointer implements
// Validator is validated once, before it is cached, so startup checks live
// next to the fields they check.
package config
