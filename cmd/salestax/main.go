package main

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/zombor/salestax/internal/console"
	"github.com/zombor/salestax/internal/receipt"
	"github.com/zombor/salestax/internal/scanning"
)

//go:embed VERSION.txt
var versionFile string

var version = strings.TrimSpace(versionFile)

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "--version" || arg == "-version" || arg == "-v" {
			fmt.Println(version)
			os.Exit(0)
		}
	}

	fs := ff.NewFlagSet("salestax")
	var (
		inputPath   = fs.StringLong("input", "", "Batch file of bills separated by 'done' lines (default: interactive stdin)")
		scanPath    = fs.StringLong("scan", "", "Photo or PDF of a shopping list to transcribe into one bill")
		exempt      = fs.StringLong("exempt", strings.Join(receipt.DefaultExemptKeywords(), ","), "Comma-separated tax-exempt keywords")
		logLevel    = fs.StringLong("log-level", "info", "Log level: debug, info, warn or error")
		scannerType = fs.StringLong("scanner", "gemini", "Scanner type: 'gemini' or 'ollama'")
		geminiKey   = fs.StringLong("gemini-key", "", "Google Gemini API key (or set GEMINI_API_KEY env var)")
		geminiModel = fs.StringLong("gemini-model", "gemini-2.5-pro", "Google Gemini model name")
		ollamaURL   = fs.StringLong("ollama-url", "http://localhost:11434", "Ollama API base URL")
		ollamaModel = fs.StringLong("ollama-model", "llava", "Ollama vision model name (e.g., llava, qwen2-vl)")
		showVersion = fs.BoolLong("version", "Show version information")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("SALESTAX"),
	); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid log level %q\n", *logLevel)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	classifier := receipt.NewKeywordClassifier(strings.Split(*exempt, ","))
	slog.Debug("Exempt keywords", "keywords", classifier.Keywords())
	service := receipt.NewServiceWithDeps(classifier, receipt.NewRateCalculator())
	session := console.NewSession(service, os.Stdin, os.Stdout)

	switch {
	case *scanPath != "":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		scanner, err := newScanner(ctx, *scannerType, *geminiKey, *geminiModel, *ollamaURL, *ollamaModel)
		if err != nil {
			slog.Error("Failed to initialize scanner", "error", err)
			os.Exit(1)
		}
		defer scanner.Close()

		lines, err := scanFile(ctx, scanner, *scanPath)
		if err != nil {
			slog.Error("Failed to scan bill", "file", *scanPath, "error", err)
			os.Exit(1)
		}
		slog.Info("Scanned bill", "file", *scanPath, "lines", len(lines))
		if err := session.Bill(lines); err != nil {
			slog.Error("Failed to print receipt", "error", err)
			os.Exit(1)
		}

	case *inputPath != "":
		f, err := os.Open(*inputPath)
		if err != nil {
			slog.Error("Failed to open input", "file", *inputPath, "error", err)
			os.Exit(1)
		}
		defer f.Close()

		slog.Info("Reading bills", "file", *inputPath)
		if err := console.NewSession(service, f, os.Stdout).Batch(); err != nil {
			slog.Error("Failed to process bills", "error", err)
			os.Exit(1)
		}

	default:
		if err := session.Interactive(); err != nil {
			slog.Error("Session failed", "error", err)
			os.Exit(1)
		}
	}
}

// newScanner initializes the scanner selected on the command line
func newScanner(ctx context.Context, scannerType, geminiKey, geminiModel, ollamaURL, ollamaModel string) (scanning.Scanner, error) {
	switch scannerType {
	case "gemini":
		apiKey := geminiKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		slog.Info("Initializing Gemini scanner...", "model", geminiModel)
		return scanning.NewGemini(ctx, apiKey, geminiModel)
	case "ollama":
		slog.Info("Initializing Ollama scanner...", "url", ollamaURL, "model", ollamaModel)
		return scanning.NewOllama(ollamaURL, ollamaModel)
	default:
		return nil, fmt.Errorf("invalid scanner type %q: want gemini or ollama", scannerType)
	}
}

// scanFile reads a photo or PDF and transcribes its purchase lines
func scanFile(ctx context.Context, scanner scanning.Scanner, path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()
	return scanner.ScanLines(ctx, data, contentType)
}
