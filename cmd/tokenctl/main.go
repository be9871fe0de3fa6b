// Command tokenctl generates keys and encodes or decodes tokens from the
// command line.
//
//	tokenctl keygen [-size 32]
//	tokenctl encode -variant cipher -value '{"id":1}'
//	tokenctl decode -variant cipher -token <token>
//
// encode and decode read the key and codec settings from TOKEN_SECRET,
// TOKEN_MAX_AGE, TOKEN_MAC_ALGORITHM, TOKEN_AEAD_ALGORITHM and TOKEN_KEY_INFO.
// A value or token of "-" is read from stdin. Failures print the codec
// failure kind and exit with status 1.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/dmitrymomot/sealkit/pkg/codec"
	"github.com/dmitrymomot/sealkit/pkg/config"
)

const envPrefix = "TOKEN_"

var errUsage = errors.New("usage: tokenctl keygen|encode|decode [flags]")

func main() {
	if err := config.LoadEnv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, errUsage)
		return 2
	}

	var err error
	switch args[0] {
	case "keygen":
		err = keygen(args[1:], stdout)
	case "encode":
		err = encode(args[1:], stdin, stdout)
	case "decode":
		err = decode(args[1:], stdin, stdout)
	default:
		fmt.Fprintln(stderr, errUsage)
		return 2
	}
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 2
		}
		fmt.Fprintf(stderr, "error (%s): %v\n", codec.KindOf(err), err)
		return 1
	}
	return 0
}

func keygen(args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("keygen", flag.ContinueOnError)
	size := flags.Int("size", codec.DefaultKeySize, "key size in bytes")
	if err := flags.Parse(args); err != nil {
		return err
	}
	key, err := codec.GenerateKey(*size)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, codec.EncodeKey(key))
	return nil
}

func encode(args []string, stdin io.Reader, stdout io.Writer) error {
	flags := flag.NewFlagSet("encode", flag.ContinueOnError)
	variant := flags.String("variant", string(codec.VariantCipher), "signer or cipher")
	value := flags.String("value", "", "value to encode, - for stdin")
	if err := flags.Parse(args); err != nil {
		return err
	}
	c, err := newCodec(*variant)
	if err != nil {
		return err
	}
	in, err := readArg(*value, stdin)
	if err != nil {
		return err
	}
	token, err := c.Encode(in)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, token)
	return nil
}

func decode(args []string, stdin io.Reader, stdout io.Writer) error {
	flags := flag.NewFlagSet("decode", flag.ContinueOnError)
	variant := flags.String("variant", string(codec.VariantCipher), "signer or cipher")
	token := flags.String("token", "", "token to decode, - for stdin")
	if err := flags.Parse(args); err != nil {
		return err
	}
	c, err := newCodec(*variant)
	if err != nil {
		return err
	}
	in, err := readArg(*token, stdin)
	if err != nil {
		return err
	}
	value, err := c.Decode(string(bytes.TrimSpace(in)))
	if err != nil {
		return err
	}
	if value == nil {
		value = []byte("null")
	}
	fmt.Fprintln(stdout, string(value))
	return nil
}

func newCodec(variant string) (codec.Codec, error) {
	v, err := codec.ParseVariant(strings.ToLower(variant))
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadPrefixed[codec.Config](envPrefix)
	if err != nil {
		return nil, errors.Join(codec.ErrConfig, err)
	}
	return codec.NewFromConfig(v, cfg)
}

// readArg returns arg, or stdin with the trailing newline removed when arg is "-".
func readArg(arg string, stdin io.Reader) ([]byte, error) {
	if arg != "-" {
		return []byte(arg), nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return nil, err
	}
	return bytes.TrimRight(b, "\r\n"), nil
}
