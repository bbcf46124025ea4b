package scene

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dragon-math/internal/config"
	"github.com/vovakirdan/dragon-math/internal/core"
	"github.com/vovakirdan/dragon-math/internal/games/dragonmath"
	"github.com/vovakirdan/dragon-math/internal/leaderboard"
	"github.com/vovakirdan/dragon-math/internal/locale"
)

func press(g *dragonmath.Game, events ...core.InputEvent) {
	in := core.NewInputFrame()
	for _, ev := range events {
		in.Push(ev)
	}
	g.Step(in)
}

func hasText(sc Scene, s string) bool {
	for _, t := range sc.Texts {
		if t.S == s {
			return true
		}
	}
	return false
}

func TestBuildStartScreen(t *testing.T) {
	g := dragonmath.New(config.DefaultConfig(), nil, nil)
	en := locale.MustGet("en")

	sc := Build(g.Frame(), en)

	if sc.Backdrop != BackdropStart {
		t.Errorf("Backdrop = %v, expected %v", sc.Backdrop, BackdropStart)
	}
	if !hasText(sc, en.Title) || !hasText(sc, en.Tagline) {
		t.Error("start screen is missing title or tagline")
	}
	for _, line := range en.Instructions {
		if !hasText(sc, line) {
			t.Errorf("start screen is missing instruction %q", line)
		}
	}
	if len(sc.Buttons) != 2 {
		t.Fatalf("len(Buttons) = %d, expected 2", len(sc.Buttons))
	}
	if sc.Buttons[0].Rect != g.StartButton() || sc.Buttons[0].Label != en.Start {
		t.Errorf("Buttons[0] = %+v, expected the start button", sc.Buttons[0])
	}
	if sc.Knight != nil || len(sc.Dragons) != 0 {
		t.Error("start screen should not draw sprites")
	}
}

func TestBuildPlayingHUD(t *testing.T) {
	g := dragonmath.New(config.DefaultConfig(), nil, nil)
	hu := locale.MustGet("hu")
	press(g, core.Key(core.InputEnter))
	press(g, core.Char('4'), core.Char('2'))

	f := g.Frame()
	sc := Build(f, hu)

	if sc.Backdrop != BackdropStage || sc.Stage != 0 {
		t.Errorf("Backdrop, Stage = %v, %d, expected stage backdrop 0", sc.Backdrop, sc.Stage)
	}
	if sc.Knight == nil {
		t.Fatal("Knight = nil while playing")
	}
	if len(sc.Dragons) != len(f.Dragons) {
		t.Errorf("len(Dragons) = %d, expected %d", len(sc.Dragons), len(f.Dragons))
	}
	for _, want := range []string{hu.Question(f.Question), hu.Answer("42"), hu.Score(0), hu.Stage(0, 3)} {
		if !hasText(sc, want) {
			t.Errorf("HUD is missing %q", want)
		}
	}
	if hasText(sc, hu.SelectFirst) {
		t.Error("error line shown before any failed submit")
	}

	press(g, core.Key(core.InputEnter))
	if sc := Build(g.Frame(), hu); !hasText(sc, hu.SelectFirst) {
		t.Error("error line missing after submit without selection")
	}
}

func TestBuildMuteLabel(t *testing.T) {
	g := dragonmath.New(config.DefaultConfig(), nil, nil)
	en := locale.MustGet("en")

	press(g, core.Key(core.InputToggleMute))
	sc := Build(g.Frame(), en)

	last := sc.Buttons[len(sc.Buttons)-1]
	if last.Label != en.Unmute {
		t.Errorf("mute button label = %q, expected %q", last.Label, en.Unmute)
	}
	if last.Rect != g.MuteButton() {
		t.Errorf("mute button rect = %v, expected %v", last.Rect, g.MuteButton())
	}
}

func TestBuildScoreScreen(t *testing.T) {
	en := locale.MustGet("en")
	f := dragonmath.Frame{
		Mode:   dragonmath.ModeScoreDisplay,
		Width:  800,
		Height: 600,
		Score:  180,
		Ranking: leaderboard.Ranking{Entries: []leaderboard.Record{
			{Name: "Ann", Score: 180},
			{Name: "Bob", Score: 90},
		}},
	}

	sc := Build(f, en)

	if sc.Backdrop != BackdropVictory {
		t.Errorf("Backdrop = %v, expected %v", sc.Backdrop, BackdropVictory)
	}
	if !hasText(sc, "VICTORY! Score: 180") {
		t.Error("score screen is missing the headline")
	}
	if !hasText(sc, en.Place(1, "Ann", 180)) || !hasText(sc, en.Place(2, "Bob", 90)) {
		t.Error("score screen is missing ranking rows")
	}
	if len(sc.Buttons) != 0 {
		t.Errorf("len(Buttons) = %d, expected 0", len(sc.Buttons))
	}

	f.Ranking = leaderboard.Ranking{NoScores: true}
	if sc := Build(f, en); !hasText(sc, en.NoScores) {
		t.Error("empty ranking should show the no-scores line")
	}
}

func TestLogNotices(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	LogNotices(logger, []core.Notice{
		{Kind: core.NoticeVictory, Detail: "score 180"},
		{Kind: core.NoticeCommitFailed, Detail: "Ann", Err: errors.New("disk full")},
	})

	out := buf.String()
	for _, want := range []string{"victory", "score 180", "cannot save score", "disk full"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %q", out, want)
		}
	}

	LogNotices(nil, []core.Notice{{Kind: core.NoticeVictory}})
}
