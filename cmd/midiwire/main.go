// Package main is the entry point for the midiwire CLI
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/james-see/midiwire/pkg/api"
	"github.com/james-see/midiwire/pkg/midi"
	"github.com/james-see/midiwire/pkg/tui"
	"github.com/james-see/midiwire/pkg/wire"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	outputFile string
	hexInput   bool
	jsonOutput bool
	serverPort int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "midiwire",
	Short: "Decode and encode raw MIDI 1.0 byte streams",
	Long: `midiwire is a tool for working with the raw MIDI 1.0 wire protocol:
it decodes byte captures into typed messages (handling running status and
real-time interleaving) and renders message lists back to bytes.

Examples:
  midiwire decode capture.bin
  midiwire decode --hex dump.txt
  cat capture.bin | midiwire decode -
  midiwire encode messages.json -o stream.bin
  midiwire tui
  midiwire serve --port 8080`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
}

var decodeCmd = &cobra.Command{
	Use:   "decode <input>",
	Short: "Decode a raw byte capture into MIDI messages",
	Long: `Feeds the input through the streaming parser byte by byte and prints
each completed message. Use "-" to read from stdin and --hex when the input is
a hex text dump rather than raw bytes.`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

var encodeCmd = &cobra.Command{
	Use:   "encode <input.json>",
	Short: "Render a JSON message list to a raw byte stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncode,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	RunE:  runTUI,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func init() {
	// decode command
	decodeCmd.Flags().BoolVar(&hexInput, "hex", false, "Input is hex text instead of raw bytes")
	decodeCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print messages as JSON")

	// encode command
	encodeCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file path")
	encodeCmd.Flags().BoolVar(&hexInput, "hex", false, "Print hex text instead of writing raw bytes")

	// serve command
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 8080, "Server port")

	// Add commands
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func runDecode(cmd *cobra.Command, args []string) error {
	data, err := readInput(args[0])
	if err != nil {
		return err
	}

	if hexInput {
		data, err = wire.DecodeHexText(string(data))
		if err != nil {
			return err
		}
	}

	parser := midi.NewParser()
	var records []wire.Record
	for _, b := range data {
		if msg := parser.ParseByte(b); msg != nil {
			records = append(records, wire.NewRecord(msg))
		}
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	for i, r := range records {
		fmt.Printf("%4d  %-9s %-20s %s\n", i+1, r.Bytes, r.Type, r.Description)
	}
	fmt.Printf("%d byte(s) in, %d message(s) out\n", len(data), len(records))
	return nil
}

func runEncode(cmd *cobra.Command, args []string) error {
	data, err := readInput(args[0])
	if err != nil {
		return err
	}

	var specs []wire.Spec
	if err := json.Unmarshal(data, &specs); err != nil {
		return fmt.Errorf("parsing message list: %w", err)
	}

	var out []byte
	buf := make([]byte, 3)
	for i, spec := range specs {
		msg, err := spec.Message()
		if err != nil {
			return fmt.Errorf("message %d: %w", i, err)
		}
		n, err := midi.Render(msg, buf)
		if err != nil {
			return fmt.Errorf("message %d: %w", i, err)
		}
		out = append(out, buf[:n]...)
	}

	if hexInput {
		fmt.Printf("% 02X\n", out)
		return nil
	}

	output := outputFile
	if output == "" {
		base := strings.TrimSuffix(args[0], filepath.Ext(args[0]))
		output = base + ".bin"
	}

	if err := os.WriteFile(output, out, 0644); err != nil {
		return err
	}

	fmt.Printf("Wrote %d byte(s) (%d message(s)) to %s\n", len(out), len(specs), output)
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	return tui.Run()
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Printf("Starting API server on port %d...\n", serverPort)
	return api.StartServer(serverPort)
}
