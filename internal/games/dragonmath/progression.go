package dragonmath

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/vovakirdan/dragon-math/internal/core"
)

// submitAnswer handles Enter while playing.
func (g *Game) submitAnswer() {
	if len(g.s.Answer) == 0 {
		return
	}
	if !g.s.Dragons.AnySelected() {
		g.s.ErrorTicks = g.cfg.Timing.ErrorTicks
		return
	}

	value, err := strconv.Atoi(string(g.s.Answer))
	if err != nil {
		// Not a number yet ("-", "3-"); keep the buffer for editing.
		return
	}

	if g.s.Challenge.Check(value) {
		g.answerCorrect()
	} else {
		g.answerWrong()
	}
	g.s.Challenge = g.newChallenge()
	g.s.Answer = g.s.Answer[:0]
}

func (g *Game) answerCorrect() {
	g.s.Score += g.cfg.Progression.CorrectPoints
	reachedFar := g.s.Knight.Advance(g.cfg.Progression.Step)
	g.s.Dragons.ExplodeSelected()

	if !reachedFar {
		return
	}
	if g.s.Stage >= g.cfg.Progression.Stages-1 {
		g.enterVictory()
		return
	}

	g.s.Stage++
	g.notify(core.NoticeStageCleared, fmt.Sprintf("stage %d", g.s.Stage), nil)
	g.populate()
	g.s.Knight.Restart()
}

func (g *Game) answerWrong() {
	g.s.Score -= g.cfg.Progression.WrongPenalty
	g.s.Knight.Retreat(g.cfg.Progression.Step)

	x, y, ok := g.placer.Place(g.s.Dragons.LiveRects())
	g.s.Dragons.Spawn(x, y, !ok)
}

func (g *Game) enterVictory() {
	g.setMode(ModeNameEntry)
	if !g.s.VictoryPlayed {
		g.audio.StopMusic()
		g.audio.Play(core.SoundVictory)
		g.s.VictoryPlayed = true
	}
	g.notify(core.NoticeVictory, fmt.Sprintf("score %d", g.s.Score), nil)
}

// typeName appends r to the name if it can be stored in a ledger line.
func (g *Game) typeName(r rune) {
	if !unicode.IsPrint(r) || len(g.s.Name) >= g.cfg.Leaderboard.MaxNameLength {
		return
	}
	// The ledger separator is ": ", so a space may not follow a colon.
	if r == ' ' && len(g.s.Name) > 0 && g.s.Name[len(g.s.Name)-1] == ':' {
		return
	}
	g.s.Name = append(g.s.Name, r)
}

// commitName records the run once and moves to the score screen.
func (g *Game) commitName() {
	name := strings.TrimSpace(string(g.s.Name))
	if name == "" {
		return
	}

	if !g.s.Committed {
		g.s.Committed = true
		if err := g.board.Commit(name, g.s.Score); err != nil {
			g.notify(core.NoticeCommitFailed, name, err)
		} else {
			g.notify(core.NoticeRecordCommitted, fmt.Sprintf("%s: %d", name, g.s.Score), nil)
		}
	}

	g.s.Ranking = g.board.Top(g.cfg.Leaderboard.TopN)
	g.s.DisplayTicks = g.cfg.ScoreDisplayTicks(g.rt.TickRate)
	g.setMode(ModeScoreDisplay)
}
