package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fluxwire/lineproto/batch"
	"github.com/fluxwire/lineproto/format"
	"github.com/fluxwire/lineproto/line"
)

var compressionFlag string

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate line-protocol text, reporting one error per bad line",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bad := 0
		err := forEachLine(args, func(n int, text string) {
			if _, err := line.Parse(text); err != nil {
				bad++
				fmt.Fprintf(os.Stderr, "line %d: %v\n", n, err)
			}
		})
		if err != nil {
			return err
		}
		if bad > 0 {
			return fmt.Errorf("%d invalid line(s)", bad)
		}

		return nil
	},
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Parse line-protocol text and re-emit it in canonical form",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := bufio.NewWriter(os.Stdout)
		defer out.Flush()

		return forEachLineErr(args, func(n int, text string) error {
			l, err := line.Parse(text)
			if err != nil {
				return fmt.Errorf("line %d: %w", n, err)
			}
			fmt.Fprintln(out, l.String())

			return nil
		})
	},
}

var packCmd = &cobra.Command{
	Use:   "pack [file]",
	Short: "Pack line-protocol text into a compressed batch payload on stdout",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		comp, err := parseCompression(compressionFlag)
		if err != nil {
			return err
		}
		encoder, err := batch.NewEncoder(batch.WithCompression(comp))
		if err != nil {
			return err
		}

		err = forEachLineErr(args, func(n int, text string) error {
			l, err := line.Parse(text)
			if err != nil {
				return fmt.Errorf("line %d: %w", n, err)
			}
			encoder.Append(l)

			return nil
		})
		if err != nil {
			return err
		}

		payload, err := encoder.Finish()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(payload)

		return err
	},
}

var unpackCmd = &cobra.Command{
	Use:   "unpack [file]",
	Short: "Unpack a batch payload back into line-protocol text on stdout",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readAll(args)
		if err != nil {
			return err
		}
		decoder, err := batch.NewDecoder(data)
		if err != nil {
			return err
		}

		out := bufio.NewWriter(os.Stdout)
		defer out.Flush()
		for _, raw := range decoder.Raw() {
			fmt.Fprintln(out, raw)
		}

		return nil
	},
}

func init() {
	packCmd.Flags().StringVarP(&compressionFlag, "compression", "c", "zstd",
		"batch compression: none, zstd, s2, or lz4")
}

func parseCompression(name string) (format.CompressionType, error) {
	switch strings.ToLower(name) {
	case "none":
		return format.CompressionNone, nil
	case "zstd":
		return format.CompressionZstd, nil
	case "s2":
		return format.CompressionS2, nil
	case "lz4":
		return format.CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression %q", name)
	}
}

func openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 {
		return io.NopCloser(os.Stdin), nil
	}

	return os.Open(args[0])
}

func readAll(args []string) ([]byte, error) {
	in, err := openInput(args)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	return io.ReadAll(in)
}

// forEachLine calls fn for every non-empty input line with its 1-based number.
func forEachLine(args []string, fn func(int, string)) error {
	return forEachLineErr(args, func(n int, text string) error {
		fn(n, text)
		return nil
	})
}

func forEachLineErr(args []string, fn func(int, string) error) error {
	in, err := openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	n := 0
	for scanner.Scan() {
		n++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		if err := fn(n, text); err != nil {
			return err
		}
	}

	return scanner.Err()
}
