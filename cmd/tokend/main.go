// Command tokend serves the token API over HTTP.
//
// Configuration comes from the environment (and ./.env when present):
//
//	APP_ENV          development | staging | production
//	HTTP_ADDR        listen address, default :8080
//	SIGNER_SECRET    base64 key; enables /tokens/signer
//	CIPHER_SECRET    base64 key; enables /tokens/cipher
//
// Each codec also reads <PREFIX>MAX_AGE, <PREFIX>MAC_ALGORITHM,
// <PREFIX>AEAD_ALGORITHM and <PREFIX>KEY_INFO.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/dmitrymomot/sealkit/pkg/codec"
	"github.com/dmitrymomot/sealkit/pkg/config"
	"github.com/dmitrymomot/sealkit/pkg/httpserver"
	"github.com/dmitrymomot/sealkit/pkg/logger"
	"github.com/dmitrymomot/sealkit/pkg/tokenhttp"
)

type appConfig struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	HTTP httpserver.Config
}

var errNoCodecs = errors.New("no codec configured: set SIGNER_SECRET and/or CIPHER_SECRET")

func main() {
	if err := config.LoadEnv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg, err := config.Load[appConfig]()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, "tokend"),
		logger.WithContextExtractors(tokenhttp.RequestIDExtractor()),
	)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("tokend failed", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	codecs, err := loadCodecs()
	if err != nil {
		return err
	}

	h := tokenhttp.NewHandlers(log, codecs...)
	for _, v := range h.Variants() {
		log.Info("codec enabled", logger.Variant(v))
	}

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, tokenhttp.NewRouter(h))
}

// loadCodecs builds a codec for every variant whose secret is set.
func loadCodecs() ([]codec.Codec, error) {
	variants := []struct {
		variant codec.Variant
		prefix  string
	}{
		{codec.VariantSigner, "SIGNER_"},
		{codec.VariantCipher, "CIPHER_"},
	}

	var codecs []codec.Codec
	for _, v := range variants {
		if _, ok := os.LookupEnv(v.prefix + "SECRET"); !ok {
			continue
		}
		cfg, err := config.LoadPrefixed[codec.Config](v.prefix)
		if err != nil {
			return nil, err
		}
		c, err := codec.NewFromConfig(v.variant, cfg)
		if err != nil {
			return nil, fmt.Errorf("%s codec: %w", v.variant, err)
		}
		codecs = append(codecs, c)
	}
	if len(codecs) == 0 {
		return nil, errNoCodecs
	}
	return codecs, nil
}
