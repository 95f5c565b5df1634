package game

// Snapshot is the consistent, read-only view of the world exposed for
// rendering. Entity slices are copied; the tile grid is shared by
// reference because it is immutable once generated and replaced wholesale
// on level advance.
type Snapshot struct {
	Grid     *Grid
	MapCols  int
	MapRows  int
	TileSize float64
	FloorRow int

	Player    Actor
	Enemies   []Enemy
	Decor     []DecorItem
	Gate      Gate
	Particles []Particle

	CameraX float64
	Score   int
	Level   int
	Status  Status
	Paused  bool

	DeadTime float64
	WinTime  float64
}

// Snapshot captures the current world state. Callers must hold the
// simulation lock; the Loop wraps this for concurrent consumers.
func (g *Game) Snapshot() Snapshot {
	w := g.world

	enemies := make([]Enemy, len(w.Enemies))
	copy(enemies, w.Enemies)

	decor := make([]DecorItem, len(w.Decor))
	copy(decor, w.Decor)

	particles := make([]Particle, len(w.Particles))
	copy(particles, w.Particles)

	return Snapshot{
		Grid:     w.Grid,
		MapCols:  w.Grid.Cols(),
		MapRows:  w.Grid.Rows(),
		TileSize: w.Grid.TileSize(),
		FloorRow: w.FloorRow,

		Player:    w.Player,
		Enemies:   enemies,
		Decor:     decor,
		Gate:      w.Gate,
		Particles: particles,

		CameraX: w.CameraX,
		Score:   g.score,
		Level:   g.level,
		Status:  g.status,
		Paused:  g.paused,

		DeadTime: g.deadTime,
		WinTime:  g.winTime,
	}
}
