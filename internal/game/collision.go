package game

// Rules parameterize collision evaluation for a mode.
type Rules struct {
	Bounds         Bounds
	SideWallsFatal bool
}

// Outcome is the result of one collision evaluation.
type Outcome struct {
	Collided  bool
	Boundary  bool  // The collision was with the playfield edge
	Scored    int   // Obstacles passed this evaluation
	Collected []int // IDs of pickups touched
}

// Evaluate tests the entity against the playfield edges, every block of
// every obstacle and every pickup.
//
// Obstacles are updated in place: an obstacle whose trailing edge has
// passed the entity is marked Scored and counted once. Leaving the top or
// bottom of the playfield is always fatal.
func Evaluate(e Entity, obstacles []Obstacle, pickups []Pickup, r Rules) Outcome {
	var out Outcome

	if e.Pos.Y <= 0 || e.Pos.Y >= r.Bounds.H {
		out.Collided = true
		out.Boundary = true
	}
	box := e.Box()
	if r.SideWallsFatal && (box.X <= 0 || box.Right() >= r.Bounds.W) {
		out.Collided = true
		out.Boundary = true
	}

	for i := range obstacles {
		o := &obstacles[i]
		for _, b := range o.Blocks() {
			if box.Overlaps(b) {
				out.Collided = true
				break
			}
		}
		if !o.Scored && o.Passed(e) {
			o.Scored = true
			out.Scored++
		}
	}

	body := e.Circle()
	for _, p := range pickups {
		if body.Overlaps(p.Body.Circle()) {
			out.Collected = append(out.Collected, p.ID)
		}
	}

	return out
}
