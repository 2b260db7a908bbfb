package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/orizon-lang/orizon-reduce/internal/lexer"
	"github.com/orizon-lang/orizon-reduce/internal/parser"
	"github.com/orizon-lang/orizon-reduce/internal/testrunner/fuzz"
	"github.com/orizon-lang/orizon-reduce/internal/testrunner/reduce"
)

// orizon-reduce-triage replays a single saved crash or hang against a
// target and reports whether it still reproduces and, if a prior
// fuzz_bitmap snapshot is given, whether it still exposes novel
// (position, hit-count class) pairs relative to that snapshot (spec.md
// §4.5's admitCrash/admitTimeout dedup, run standalone against one input
// instead of inline during a session).
func main() {
	var (
		in          string
		logPath     string
		lineNum     int
		out         string
		seed        int64
		lang        string
		budget      time.Duration
		targetKind  string
		mapSize     int
		bitmapPath  string
		execTimeout time.Duration
	)

	flag.StringVar(&in, "in", "", "input file to triage")
	flag.StringVar(&logPath, "log", "", "optional crashes log to read from instead of -in")
	flag.IntVar(&lineNum, "line", 0, "1-based line number in -log to triage (default=last non-empty line)")
	flag.StringVar(&out, "out", "", "optional minimized output path")
	flag.Int64Var(&seed, "seed", 0, "random seed (0=time)")
	flag.StringVar(&lang, "lang", "en", "message language (ja|en)")
	flag.DurationVar(&budget, "budget", 3*time.Second, "minimization time budget")
	flag.StringVar(&targetKind, "target", "parser", "target selector (noop|parser|parser-lax|lexer)")
	flag.IntVar(&mapSize, "map-size", 1<<16, "trace bitmap size")
	flag.StringVar(&bitmapPath, "bitmap", "", "optional fuzz_bitmap snapshot to check novelty against")
	flag.DurationVar(&execTimeout, "exec-timeout", time.Second, "execution timeout")
	flag.Parse()

	L := getLocale(lang)

	b := loadInput(L, in, logPath, lineNum)

	target, err := selectTarget(targetKind)
	if err != nil {
		fatal(L, err)
	}

	trace := reduce.BuildTrace(b, mapSize)

	done := make(chan error, 1)
	go func() { done <- callTargetSafe(target, b) }()

	var execErr error
	var timedOut bool

	select {
	case execErr = <-done:
	case <-time.After(execTimeout):
		timedOut = true
	}

	switch {
	case timedOut:
		fmt.Println(L.hung())
	case execErr != nil:
		fmt.Println(L.crashed(execErr.Error()))
	default:
		fmt.Println(L.ok())
	}

	if bitmapPath != "" && (timedOut || execErr != nil) {
		reportNovelty(L, bitmapPath, trace, mapSize)
	}

	if (timedOut || execErr != nil) && out != "" {
		min := fuzz.Minimize(seed, b, target, budget)
		if err := os.WriteFile(out, min, 0o644); err != nil {
			fatal(L, fmt.Errorf("failed to write output: %w", err))
		}

		fmt.Println(L.minDone(out))
	}
}

// reportNovelty bucketizes and simplifies a copy of the raw trace the way
// admitCrash/admitTimeout would, compares it against a persisted virgin
// snapshot and reports whether this input would still have been admitted.
func reportNovelty(L locale, bitmapPath string, trace []byte, mapSize int) {
	virgin, err := reduce.ReadBitmapFile(bitmapPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", L.bitmapReadFailed(), err)

		return
	}

	if len(virgin) != mapSize {
		fmt.Fprintf(os.Stderr, "%s: expected %d bytes, got %d\n", L.bitmapReadFailed(), mapSize, len(virgin))

		return
	}

	rs := reduce.NewReductionState(mapSize)
	copy(rs.VirginCrash, virgin)

	simplified := append([]byte(nil), trace...)
	reduce.Bucketize(simplified)
	reduce.Simplify(simplified)

	if rs.ClassifyNovelty(simplified, rs.VirginCrash) {
		fmt.Println(L.stillNovel())
	} else {
		fmt.Println(L.notNovel())
	}
}

func callTargetSafe(t fuzz.Target, data []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return t(data)
}

func selectTarget(kind string) (fuzz.Target, error) {
	switch strings.ToLower(kind) {
	case "noop":
		return func(data []byte) error { return nil }, nil
	case "parser":
		return func(data []byte) error {
			lx := lexer.NewWithFilename(string(data), "triage_input.oriz")
			ps := parser.NewParser(lx, "triage_input.oriz")

			_, errs := ps.Parse()
			if len(errs) > 0 {
				return fmt.Errorf("parse failed: %v", errs[0])
			}

			return nil
		}, nil
	case "parser-lax":
		return func(data []byte) error {
			lx := lexer.NewWithFilename(string(data), "triage_input_lax.oriz")
			ps := parser.NewParser(lx, "triage_input_lax.oriz")
			_, _ = ps.Parse()

			return nil
		}, nil
	case "lexer":
		return func(data []byte) error {
			lx := lexer.NewWithFilename(string(data), "triage_lex.oriz")

			for {
				tok := lx.NextToken()
				if tok.Type == lexer.TokenError {
					return fmt.Errorf("lexer error token: %q", tok.Literal)
				}

				if tok.Type == lexer.TokenEOF {
					break
				}
			}

			return nil
		}, nil
	default:
		return nil, fmt.Errorf("unknown target %q", kind)
	}
}

// loadInput reads the bytes to triage, either from -in directly or from a
// tab-separated crash-log line (ts \t 0xHEX \t msg), auto-decoding a bare
// hex payload either way.
func loadInput(L locale, in, logPath string, lineNum int) []byte {
	var b []byte

	if logPath != "" {
		lb, err := os.ReadFile(logPath)
		if err != nil {
			fatal(L, fmt.Errorf("failed to read log: %w", err))
		}

		lines := strings.Split(string(lb), "\n")
		pick := -1

		if lineNum > 0 {
			if lineNum-1 < len(lines) {
				pick = lineNum - 1
			}
		} else {
			for i := len(lines) - 1; i >= 0; i-- {
				if strings.TrimSpace(lines[i]) != "" {
					pick = i

					break
				}
			}
		}

		if pick < 0 {
			fatal(L, fmt.Errorf("no usable lines in log"))
		}

		b = []byte(strings.TrimSpace(lines[pick]))
	} else {
		if in == "" {
			fatal(L, fmt.Errorf("-in or -log is required"))
		}

		var err error

		b, err = os.ReadFile(in)
		if err != nil {
			fatal(L, fmt.Errorf("failed to read input: %w", err))
		}
	}

	return decodeIfHexOrLogLine(b)
}

// decodeIfHexOrLogLine auto-detects a tab-separated crash-log line or a
// bare hex payload and decodes it to raw bytes; anything else passes
// through unchanged.
func decodeIfHexOrLogLine(b []byte) []byte {
	s := strings.TrimSpace(string(b))
	if s == "" {
		return b
	}

	h := s

	if strings.Contains(s, "\t") {
		parts := strings.SplitN(s, "\t", 3)
		if len(parts) < 2 {
			return b
		}

		h = parts[1]
	}

	if strings.HasPrefix(h, "0x") || strings.HasPrefix(h, "0X") {
		h = h[2:]
	}

	if dec, err := hex.DecodeString(h); err == nil && len(dec) > 0 {
		return dec
	}

	return b
}

type locale struct {
	ok               func() string
	crashed          func(msg string) string
	hung             func() string
	minDone          func(path string) string
	stillNovel       func() string
	notNovel         func() string
	bitmapReadFailed func() string
}

func getLocale(lang string) locale {
	switch strings.ToLower(lang) {
	case "ja", "jp", "japanese":
		return locale{
			ok:               func() string { return "再現に失敗（問題なし）" },
			crashed:          func(msg string) string { return "再現成功（クラッシュ）: " + msg },
			hung:             func() string { return "再現成功（ハング）" },
			minDone:          func(p string) string { return "最小化完了: " + p },
			stillNovel:       func() string { return "このビットマップに対して依然として新規" },
			notNovel:         func() string { return "このビットマップに対して新規ではない" },
			bitmapReadFailed: func() string { return "ビットマップの読み込みに失敗しました" },
		}
	default:
		return locale{
			ok:               func() string { return "Reproduction failed (no issue)" },
			crashed:          func(msg string) string { return "Reproduced (crash): " + msg },
			hung:             func() string { return "Reproduced (hang)" },
			minDone:          func(p string) string { return "Minimized written: " + p },
			stillNovel:       func() string { return "still novel against this bitmap" },
			notNovel:         func() string { return "not novel against this bitmap" },
			bitmapReadFailed: func() string { return "failed to read bitmap" },
		}
	}
}

func fatal(L locale, err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
