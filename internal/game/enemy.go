package game

// stepEnemies advances every enemy by one tick: fixed horizontal patrol,
// direction reversal at platform edges, a constant downward settle with
// the same floor-snap rule as the player, and destruction with a particle
// burst once an enemy falls past the floor margin.
//
// Removal happens by descending index so iteration stays stable while
// the slice shrinks.
func (g *Game) stepEnemies(dt float64) {
	w := g.world
	cfg := g.cfg
	ts := cfg.Physics.TileSize

	for i := len(w.Enemies) - 1; i >= 0; i-- {
		e := &w.Enemies[i]
		e.Phase += dt * 4

		// Reverse before walking off a platform edge: probe the cell
		// just ahead of the leading edge, one step below the feet.
		if e.Footing == Grounded {
			var aheadX float64
			if e.Vel.X > 0 {
				aheadX = e.Pos.X + e.Width + ts*0.25
			} else {
				aheadX = e.Pos.X - ts*0.25
			}
			if !w.Grid.SolidAt(aheadX, e.Pos.Y+e.Height+ts*0.5) {
				e.Vel.X = -e.Vel.X
			}
		}

		e.Pos.X += e.Vel.X * ts * dt

		// Constant settle instead of accelerating gravity.
		resolveVertical(w.Grid, &e.Actor, cfg.Enemy.SettleSpeed*ts*dt)

		// Fallen past the floor margin: destroy with a burst.
		if e.Pos.Y > (float64(w.FloorRow)+cfg.Map.PitMargin)*ts {
			g.spawnBurst(e.Bounds().Center(), burstEnemyFall)
			w.Enemies = append(w.Enemies[:i], w.Enemies[i+1:]...)
		}
	}
}
