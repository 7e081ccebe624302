package main

import (
	"bufio"
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/analytics"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/brief"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/catalog"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/logger"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/matching"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/orchestrator"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/partner"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/progress"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/transcript"
)

// #region main
func main() {
	unitID := envOr("COACH_UNIT", "unit2")
	dbPath := envOr("COACH_DB", "coach.db")
	model := envOr("COACH_MODEL", "gemini-1.5-flash")
	apiKey := os.Getenv("GEMINI_API_KEY")
	catalogPath := os.Getenv("COACH_CATALOG")

	lg, err := logger.New(envOr("COACH_LOG_MODE", "dev"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer lg.Sync()

	cat, err := loadCatalog(catalogPath)
	if err != nil {
		lg.Fatal("load catalog", "path", catalogPath, "err", err)
	}
	unit, err := cat.GetUnit(unitID)
	if err != nil {
		lg.Fatal("unknown unit", "unit", unitID, "err", err)
	}

	engine := orchestrator.NewEngine(cat, orchestrator.DefaultConfig())
	farewell := brief.DefaultFarewellConfig()
	producer := progress.NewProducer(progress.DefaultProducerConfig())

	var gen partner.Engine
	if apiKey != "" {
		config := partner.DefaultConfig()
		config.APIKey = apiKey
		config.Model = model
		gen = partner.NewGemini(config)
	} else {
		lg.Warn("GEMINI_API_KEY not set, using scripted partner")
		gen = partner.NewScript()
	}

	store, err := analytics.NewStore(dbPath, analytics.ConfigFromEnv())
	if err != nil {
		lg.Fatal("open analytics store", "db", dbPath, "err", err)
	}
	defer store.Close()

	sessionID, err := store.StartSession(unitID, envOr("COACH_USER", "anonymous"))
	if err != nil {
		lg.Fatal("start session", "err", err)
	}
	if err := store.Record(sessionID, analytics.EventSessionStart, map[string]string{"unit_id": unitID}); err != nil {
		lg.Warn("record session start", "err", err)
	}

	fmt.Printf("Language partner ready. Unit: %s (%s)\n", unit.Title, unitID)
	fmt.Println("Say 再见 or bye to end the session. Type 'match' (or 'match pinyin') for a vocabulary round.")

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	opening := brief.Opening(unit, rng.Int())
	fmt.Printf("\n%s\n\n", opening)

	ts := transcript.Transcript{{Role: transcript.RolePartner, Text: opening}}
	scanner := bufio.NewScanner(os.Stdin)
	turnNum := 0
	var matchMissed []string
	matchSize := 0

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		msg := strings.TrimSpace(scanner.Text())
		if msg == "" {
			continue
		}

		if rest, ok := strings.CutPrefix(msg, "match"); ok && (rest == "" || strings.HasPrefix(rest, " ")) {
			mode := matching.ParseMode(strings.TrimSpace(rest))
			matchMissed, matchSize = runMatchingRound(lg, store, sessionID, unit, mode, rng, scanner,
				matching.SelectionConfig{Size: matchSize, Missed: matchMissed})
			continue
		}
		turnNum++

		if brief.IsFarewell(msg, farewell) {
			ts = append(ts, transcript.Turn{Role: transcript.RoleStudent, Text: msg})
			fmt.Printf("\n%s\n", farewell.Reply)
			break
		}

		directive, analysis, err := engine.Analyze(unitID, append(ts, transcript.Turn{Role: transcript.RoleStudent, Text: msg}))
		if err != nil {
			lg.Error("build directive", "err", err)
			continue
		}

		instructions := brief.RenderBrief(unit, directive)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		reply, err := gen.Generate(ctx, instructions, ts, msg)
		cancel()
		if err != nil {
			lg.Error("generate reply", "turn", turnNum, "err", err)
			continue
		}

		ts = append(ts,
			transcript.Turn{Role: transcript.RoleStudent, Text: msg},
			transcript.Turn{Role: transcript.RolePartner, Text: reply},
		)
		fmt.Printf("\n%s\n\n", reply)

		err = store.Record(sessionID, analytics.EventRoleplayTurn, map[string]any{
			"turn":       turnNum,
			"text":       analytics.TruncateText(msg),
			"next_index": directive.NextIndex,
			"covered":    len(directive.CoveredIndices),
			"prohibited": directive.Prohibited,
			"fallback":   directive.FallbackFired,
		})
		if err != nil {
			lg.Warn("record turn", "err", err)
		}
		lg.Debug("turn analyzed",
			"turn", turnNum,
			"covered", len(analysis.Coverage.CoveredIndices),
			"remaining", len(directive.Remaining),
			"prohibited", directive.Prohibited,
		)
	}

	printFeedback(lg, engine, producer, gen, store, sessionID, unit, unitID, ts)

	if err := store.Record(sessionID, analytics.EventSessionEnd, map[string]int{"turns": turnNum}); err != nil {
		lg.Warn("record session end", "err", err)
	}
	if err := store.EndSession(sessionID); err != nil {
		lg.Warn("end session", "err", err)
	}
}

// #endregion main

// #region feedback

// printFeedback computes session stats and asks the partner engine for
// closing feedback in English.
func printFeedback(lg *logger.Logger, engine *orchestrator.Engine, producer *progress.Producer,
	gen partner.Engine, store *analytics.Store, sessionID string,
	unit catalog.Unit, unitID string, ts transcript.Transcript) {

	_, analysis, err := engine.Analyze(unitID, ts)
	if err != nil {
		lg.Error("final analysis", "err", err)
		return
	}
	stats := producer.Produce(unit, ts, analysis.Coverage, analysis.Resolved)
	fmt.Printf("\nSession summary: %d/%d questions covered, %d of your turns were questions.\n",
		stats.CoveredCount, stats.TotalQuestions, stats.StudentQuestions)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	feedback, err := gen.Generate(ctx, progress.FeedbackBrief(unit, stats), ts, "请用英文给我反馈。")
	cancel()
	if err != nil {
		lg.Warn("feedback generation", "err", err)
		return
	}
	fmt.Printf("\n%s\n", feedback)

	err = store.Record(sessionID, analytics.EventFeedback, map[string]any{
		"covered_count":  stats.CoveredCount,
		"coverage_ratio": stats.CoverageRatio,
		"student_turns":  stats.StudentTurns,
		"vocab_used":     stats.VocabUsed,
	})
	if err != nil {
		lg.Warn("record feedback", "err", err)
	}
}

// #endregion feedback

// #region matching

// runMatchingRound deals one vocabulary round, reads the student's pairs
// from the scanner, grades them, and returns the misses and next round
// size to carry into the next round.
func runMatchingRound(lg *logger.Logger, store *analytics.Store, sessionID string,
	unit catalog.Unit, mode matching.Mode, rng *rand.Rand, scanner *bufio.Scanner,
	config matching.SelectionConfig) ([]string, int) {

	round := matching.Deal(unit, config, rng)
	if len(round.Left) == 0 {
		fmt.Println("No vocabulary available for this unit.")
		return config.Missed, config.Size
	}

	fmt.Printf("\nMatching round (%s). Answer like: 1C 2A 3B\n", mode)
	for i, card := range round.Left {
		right := round.Right[i]
		value := right.English
		if mode == matching.ModePinyin {
			value = right.Pinyin
		}
		fmt.Printf("  %2d. %-6s    %c. %s\n", i+1, card.Hanzi, 'A'+i, value)
	}

	fmt.Print("match> ")
	if !scanner.Scan() {
		return config.Missed, config.Size
	}
	pairs := parsePairs(scanner.Text(), round, mode)
	if len(pairs) == 0 {
		fmt.Println("No valid pairs entered; round skipped.")
		return config.Missed, config.Size
	}

	result, err := matching.Grade(unit, pairs, mode)
	if err != nil {
		lg.Error("grade round", "err", err)
		return config.Missed, config.Size
	}

	fmt.Printf("\n%s\n", result.Feedback)
	for _, item := range result.Incorrect {
		fmt.Printf("  %s: you chose %q, expected %q", item.Hanzi, item.Chosen, item.Expected)
		if item.PinyinDisplay != "" {
			fmt.Printf(" [%s]", item.PinyinDisplay)
		}
		fmt.Println()
		for _, tip := range item.AssociationTips {
			fmt.Printf("    tip: %s\n", tip)
		}
		if item.Sample != nil {
			fmt.Printf("    e.g. %s (%s) %s\n", item.Sample.Chinese, item.Sample.Pinyin, item.Sample.English)
		}
	}

	err = store.Record(sessionID, analytics.EventMatchingAttempt, map[string]any{
		"mode":      string(mode),
		"pairs":     len(pairs),
		"accuracy":  result.Accuracy,
		"missed":    result.Missed,
		"next_size": result.NextSize,
	})
	if err != nil {
		lg.Warn("record matching attempt", "err", err)
	}
	return result.Missed, result.NextSize
}

// parsePairs reads answer tokens like 1C or 2a against the dealt round.
// Malformed tokens and out-of-range references are skipped.
func parsePairs(input string, round matching.Round, mode matching.Mode) []matching.Pair {
	var pairs []matching.Pair
	for _, tok := range strings.Fields(strings.ToUpper(strings.TrimSpace(input))) {
		if len(tok) < 2 {
			continue
		}
		letter := tok[len(tok)-1]
		num, err := strconv.Atoi(tok[:len(tok)-1])
		if err != nil {
			continue
		}
		li, ri := num-1, int(letter-'A')
		if li < 0 || li >= len(round.Left) || ri < 0 || ri >= len(round.Right) {
			continue
		}
		chosen := round.Right[ri].English
		if mode == matching.ModePinyin {
			chosen = round.Right[ri].Pinyin
		}
		pairs = append(pairs, matching.Pair{Hanzi: round.Left[li].Hanzi, Chosen: chosen})
	}
	return pairs
}

// #endregion matching

// #region helpers

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.DefaultCatalog(), nil
	}
	return catalog.LoadCatalog(path)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
