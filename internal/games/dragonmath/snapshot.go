package dragonmath

// Snapshot contains the game state as primitives for comparison and
// debugging. Dragons are flattened as 6 ints each:
// Handle, X, Y, Anim, Explosion, Flags.
type Snapshot struct {
	Tick       uint64
	Mode       string
	Score      int
	Stage      int
	Answer     string
	Name       string
	Question   string
	Result     int
	KnightX    float64
	Milestone  int
	Near, Far  int
	ErrorTicks int
	Victory    bool
	Committed  bool
	Muted      bool

	DragonCount int
	LiveDragons int
	DragonData  []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	dragons := g.s.Dragons.All()
	near, far := g.s.Knight.Bounds()
	data := make([]int, 0, len(dragons)*6)
	for _, d := range dragons {
		data = append(data, int(d.Handle), d.Rect.X, d.Rect.Y, d.Anim, d.Explosion, int(d.Flags))
	}

	return Snapshot{
		Tick:        g.s.Tick,
		Mode:        g.s.Mode.String(),
		Score:       g.s.Score,
		Stage:       g.s.Stage,
		Answer:      string(g.s.Answer),
		Name:        string(g.s.Name),
		Question:    g.s.Challenge.String(),
		Result:      g.s.Challenge.Result,
		KnightX:     g.s.Knight.X,
		Milestone:   g.s.Knight.Milestone,
		Near:        near,
		Far:         far,
		ErrorTicks:  g.s.ErrorTicks,
		Victory:     g.s.VictoryPlayed,
		Committed:   g.s.Committed,
		Muted:       g.muted,
		DragonCount: g.s.Dragons.Len(),
		LiveDragons: g.s.Dragons.Live(),
		DragonData:  data,
	}
}
