package main

import (
	"crypto/tls"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/orizon-lang/orizon-reduce/internal/lexer"
	"github.com/orizon-lang/orizon-reduce/internal/parser"
	"github.com/orizon-lang/orizon-reduce/internal/testrunner/fuzz"
	"github.com/orizon-lang/orizon-reduce/internal/testrunner/reduce"
)

func main() {
	var (
		out           string
		corpusPath    string
		corpusDir     string
		targetKind    string
		lang          string
		seed          int64
		mapSize       int
		dur           time.Duration
		execTimeout   time.Duration
		hangTimeout   time.Duration
		nearMiss      float64
		frequencyAwar bool
		syncDir       string
		sessionName   string
		telemetryURL  string
		verbose       bool
		maxExecs      uint64
	)

	flag.StringVar(&out, "out", "out", "output directory (queue/, crashes/, hangs/ are created under it)")
	flag.StringVar(&corpusPath, "corpus", "", "optional corpus file (one input per line, hex or raw)")
	flag.StringVar(&corpusDir, "corpus-dir", "", "optional corpus directory (each file is a seed)")
	flag.StringVar(&targetKind, "target", "parser", "target selector (noop|parser|parser-lax|lexer)")
	flag.StringVar(&lang, "lang", "en", "message language (ja|en)")
	flag.Int64Var(&seed, "seed", 0, "random seed (0=time)")
	flag.IntVar(&mapSize, "map-size", 1<<16, "trace bitmap size")
	flag.DurationVar(&dur, "duration", 10*time.Second, "reduction session duration")
	flag.DurationVar(&execTimeout, "exec-timeout", time.Second, "per-execution timeout")
	flag.DurationVar(&hangTimeout, "hang-timeout", 5*time.Second, "generous re-run timeout before confirming a hang")
	flag.Float64Var(&nearMiss, "near-miss-margin", 0.5, "near-miss acceptance margin (fraction of global_min_hit_count)")
	flag.BoolVar(&frequencyAwar, "frequency-aware", false, "enable the n_fuzz path-frequency table")
	flag.StringVar(&syncDir, "sync-dir", "", "parent directory containing peer session directories to splice from")
	flag.StringVar(&sessionName, "session-name", "", "this session's own directory name under -sync-dir (required with -sync-dir)")
	flag.StringVar(&telemetryURL, "telemetry", "", "optional HTTP/3 endpoint to push session summaries to")
	flag.BoolVar(&verbose, "verbose", false, "log every admission decision")
	flag.Uint64Var(&maxExecs, "max-execs", 0, "stop after this many executions (0=unlimited)")
	flag.Parse()

	// Session.fatal panics on fatal-class errors; report them and exit 1.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, r)
			os.Exit(1)
		}
	}()

	L := getLocale(lang)

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	target, err := selectTarget(targetKind)
	if err != nil {
		fatal(L, err)
	}

	corpus := loadCorpus(L, corpusPath, corpusDir)
	if len(corpus) == 0 {
		corpus = [][]byte{[]byte("seed")}
	}

	sess := reduce.NewSession(out, mapSize, seed)
	sess.ExecTimeout = execTimeout
	sess.HangTimeout = hangTimeout
	sess.State.NearMissMargin = nearMiss
	sess.State.FrequencyAware = frequencyAwar
	sess.Verbose = verbose
	sess.CommandLine = strings.Join(os.Args, " ")

	if verbose {
		sess.Logger = newStderrLogger()
	}

	var telemetry *reduce.TelemetryClient
	if telemetryURL != "" {
		telemetry = reduce.NewTelemetryClient(telemetryURL, 2*time.Second, &tls.Config{})
		defer telemetry.Close()
	}

	var watcher *reduce.SyncWatcher
	if syncDir != "" {
		watcher = attachSyncWatcher(L, syncDir, sessionName)
		defer watcher.Close()
	}

	sess.Rerun = func(input []byte, timeout time.Duration) reduce.ExecResult {
		return execute(target, input, mapSize, timeout)
	}

	r := rand.New(rand.NewSource(seed))
	mutate := fuzz.DefaultMutator()

	deadline := time.Now().Add(dur)
	var execs uint64

	for time.Now().Before(deadline) {
		if maxExecs > 0 && execs >= maxExecs {
			break
		}

		if watcher != nil {
			drainSyncCandidates(sess, watcher, target, mapSize, execTimeout)
		}

		parentIdx := r.Intn(len(corpus))
		parent := corpus[parentIdx]

		input := mutate(r, parent)
		sess.CurrentEntryID = uint64(parentIdx)

		res := execute(target, input, mapSize, execTimeout)
		execs++

		stage := reduce.StageInfo{Name: "havoc", CurByte: -1, Rep: int(execs)}
		donor := reduce.Donor{SplicedID: -1}

		kept, err := sess.SaveIfInteresting(input, res, stage, donor)
		if err != nil {
			fatal(L, err)
		}

		if kept && len(corpus) < 1<<20 {
			corpus = append(corpus, input)
		}
	}

	if telemetry != nil {
		if err := telemetry.Push(reduce.SummaryOf(sess.State)); err != nil && verbose {
			fmt.Fprintf(os.Stderr, "telemetry push failed: %v\n", err)
		}
	}

	fmt.Println(L.done(execs, sess.State.QueuedPaths, sess.State.UniqueCrashes, sess.State.UniqueTmouts))
}

// execute runs target against input under timeout, converting a panic or
// a timeout into the appropriate Fault the way the out-of-scope
// forkserver's FSRV_RUN_* result would.
func execute(target fuzz.Target, input []byte, mapSize int, timeout time.Duration) reduce.ExecResult {
	trace := reduce.BuildTrace(input, mapSize)

	done := make(chan error, 1)

	go func() {
		done <- callTargetSafe(target, input)
	}()

	select {
	case err := <-done:
		if err != nil {
			return reduce.ExecResult{Fault: reduce.FaultCrash, Trace: trace, HitCount: reduce.CurHitCount(trace), Sig: 6}
		}

		return reduce.ExecResult{Fault: reduce.FaultOK, Trace: trace, HitCount: reduce.CurHitCount(trace)}
	case <-time.After(timeout):
		return reduce.ExecResult{Fault: reduce.FaultTimeout, Trace: trace, HitCount: reduce.CurHitCount(trace)}
	}
}

// callTargetSafe recovers a panicking target as a crash error rather than
// letting it take the whole session down, the reduction-core analogue of
// the mutation fuzzer's own panic-to-error conversion.
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
			lx := lexer.NewWithFilename(string(data), "reduce_input.oriz")
			ps := parser.NewParser(lx, "reduce_input.oriz")

			_, errs := ps.Parse()
			if len(errs) > 0 {
				return fmt.Errorf("parse failed: %v", errs[0])
			}

			return nil
		}, nil
	case "parser-lax":
		return func(data []byte) error {
			lx := lexer.NewWithFilename(string(data), "reduce_input_lax.oriz")
			ps := parser.NewParser(lx, "reduce_input_lax.oriz")
			_, _ = ps.Parse()

			return nil
		}, nil
	case "lexer":
		return func(data []byte) error {
			lx := lexer.NewWithFilename(string(data), "reduce_lex.oriz")

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

func loadCorpus(L locale, corpusPath, corpusDir string) [][]byte {
	var corpus [][]byte

	if corpusPath != "" {
		b, err := os.ReadFile(corpusPath)
		if err != nil {
			fatal(L, fmt.Errorf("failed to read corpus: %w", err))
		}

		for _, line := range strings.Split(string(b), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			l := line
			if strings.HasPrefix(l, "0x") || strings.HasPrefix(l, "0X") {
				l = l[2:]
			}

			if decoded, errh := hex.DecodeString(l); errh == nil && len(decoded) > 0 {
				corpus = append(corpus, decoded)
			} else {
				corpus = append(corpus, []byte(line))
			}
		}
	}

	if corpusDir != "" {
		entries, err := os.ReadDir(corpusDir)
		if err != nil {
			fatal(L, fmt.Errorf("failed to read corpus dir: %w", err))
		}

		for _, e := range entries {
			if e.IsDir() {
				continue
			}

			b, err := os.ReadFile(filepath.Join(corpusDir, e.Name()))
			if err == nil && len(b) > 0 {
				corpus = append(corpus, b)
			}
		}
	}

	return corpus
}

func attachSyncWatcher(L locale, syncDir, sessionName string) *reduce.SyncWatcher {
	if sessionName == "" {
		fatal(L, fmt.Errorf("-sync-dir requires -session-name"))
	}

	w, err := reduce.NewSyncWatcher()
	if err != nil {
		fatal(L, fmt.Errorf("failed to start sync watcher: %w", err))
	}

	entries, err := os.ReadDir(syncDir)
	if err != nil {
		fatal(L, fmt.Errorf("failed to read sync dir: %w", err))
	}

	for _, e := range entries {
		if !e.IsDir() || e.Name() == sessionName {
			continue
		}

		peerQueue := filepath.Join(syncDir, e.Name(), "queue")
		if _, err := os.Stat(peerQueue); err != nil {
			continue
		}

		if err := w.AddPeer(e.Name(), peerQueue); err != nil {
			fmt.Fprintf(os.Stderr, "sync: failed to watch peer %s: %v\n", e.Name(), err)
		}
	}

	return w
}

func drainSyncCandidates(sess *reduce.Session, w *reduce.SyncWatcher, target fuzz.Target, mapSize int, timeout time.Duration) {
	for {
		select {
		case cand := <-w.Candidates():
			res := execute(target, cand.Input, mapSize, timeout)
			stage := reduce.StageInfo{Name: "sync", CurByte: -1, Rep: 0}

			if _, err := sess.SaveIfInteresting(cand.Input, res, stage, cand.AsDonor()); err != nil {
				fmt.Fprintf(os.Stderr, "sync admit failed: %v\n", err)
			}
		case err := <-w.Errors():
			fmt.Fprintf(os.Stderr, "sync watch error: %v\n", err)
		default:
			return
		}
	}
}

type locale struct {
	done func(execs, queued, crashes, hangs uint64) string
}

func getLocale(lang string) locale {
	switch strings.ToLower(lang) {
	case "ja", "jp", "japanese":
		return locale{
			done: func(execs, queued, crashes, hangs uint64) string {
				return fmt.Sprintf("削減セッション終了: 実行=%d キュー=%d クラッシュ=%d ハング=%d", execs, queued, crashes, hangs)
			},
		}
	default:
		return locale{
			done: func(execs, queued, crashes, hangs uint64) string {
				return fmt.Sprintf("reduction session finished: execs=%d queued=%d crashes=%d hangs=%d", execs, queued, crashes, hangs)
			},
		}
	}
}

func fatal(L locale, err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func newStderrLogger() *log.Logger {
	return log.New(os.Stderr, "", log.LstdFlags)
}
