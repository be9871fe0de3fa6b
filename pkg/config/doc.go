// Package config loads application configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more .env files into the process environment
//     without overriding variables that are already set.
//   - Load parses the environment into any struct annotated with `env` tags.
//   - LoadPrefixed does the same with a name prefix, which lets one struct
//     describe several codecs (SIGNER_*, CIPHER_*).
//
// Failures wrap ErrLoadingEnvFile or ErrParsingConfig and can be matched with
// errors.Is. MustLoad and MustLoadEnv panic instead.
//
//	if err := config.LoadEnv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
//		log.Fatal(err)
//	}
//	signer, err := config.LoadPrefixed[codec.Config]("SIGNER_")
package config
