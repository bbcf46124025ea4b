package dragonmath

import (
	"strconv"
	"testing"

	"github.com/vovakirdan/dragon-math/internal/config"
	"github.com/vovakirdan/dragon-math/internal/core"
	"github.com/vovakirdan/dragon-math/internal/leaderboard"
)

// fakeAudio records every request.
type fakeAudio struct {
	plays map[core.SoundID]int
	stops int
	muted bool
}

func newFakeAudio() *fakeAudio {
	return &fakeAudio{plays: make(map[core.SoundID]int)}
}

func (a *fakeAudio) Play(id core.SoundID) { a.plays[id]++ }
func (a *fakeAudio) StopMusic()           { a.stops++ }
func (a *fakeAudio) SetMuted(m bool)      { a.muted = m }

// fakeBoard is an in-memory Board.
type fakeBoard struct {
	records []leaderboard.Record
	commits int
	err     error
}

func (b *fakeBoard) Commit(name string, score int) error {
	b.commits++
	if b.err != nil {
		return b.err
	}
	b.records = append(b.records, leaderboard.Record{Name: name, Score: score})
	return nil
}

func (b *fakeBoard) Top(n int) leaderboard.Ranking {
	top := leaderboard.Rank(b.records, n)
	return leaderboard.Ranking{Entries: top, NoScores: len(top) == 0}
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 800, ScreenH: 600, TickRate: 33, Seed: seed}
}

func newTestGame(t *testing.T, seed int64) (*Game, *fakeAudio, *fakeBoard) {
	t.Helper()
	audio := newFakeAudio()
	board := &fakeBoard{}
	g := New(config.DefaultConfig(), audio, board)
	g.Reset(testRuntime(seed))
	return g, audio, board
}

func frameOf(events ...core.InputEvent) core.InputFrame {
	in := core.NewInputFrame()
	for _, ev := range events {
		in.Push(ev)
	}
	return in
}

func idle(g *Game) core.StepResult {
	return g.Step(core.NewInputFrame())
}

func startPlaying(t *testing.T, g *Game) {
	t.Helper()
	g.Step(frameOf(core.Key(core.InputEnter)))
	if g.Mode() != ModePlaying {
		t.Fatalf("Mode() = %v after Enter on start screen, expected playing", g.Mode())
	}
}

// selectDragon makes sure one dragon is selected by clicking the topmost
// live dragon.
func selectDragon(t *testing.T, g *Game) {
	t.Helper()
	if g.s.Dragons.AnySelected() {
		return
	}
	dragons := g.s.Dragons.All()
	for i := len(dragons) - 1; i >= 0; i-- {
		if dragons[i].Exploding() {
			continue
		}
		x, y := dragons[i].Rect.Center()
		g.Step(frameOf(core.Click(x, y)))
		if !g.s.Dragons.AnySelected() {
			t.Fatalf("click at (%d, %d) did not select a dragon", x, y)
		}
		return
	}
	t.Fatal("no live dragon to select")
}

// submit types answer and presses Enter in one tick.
func submit(g *Game, answer string) core.StepResult {
	in := core.NewInputFrame()
	for _, r := range answer {
		in.Push(core.Char(r))
	}
	in.Push(core.Key(core.InputEnter))
	return g.Step(in)
}

func correctAnswer(g *Game) string {
	return strconv.Itoa(g.s.Challenge.Result)
}

func wrongAnswer(g *Game) string {
	return strconv.Itoa(g.s.Challenge.Result + 1)
}

func countNotices(res core.StepResult, kind core.NoticeKind) int {
	n := 0
	for _, nt := range res.Notices {
		if nt.Kind == kind {
			n++
		}
	}
	return n
}
