package system

// Simulation is the loop's per-frame update: entity movement followed by
// the game rules.
type Simulation struct {
	State *GameState
}

func (s *Simulation) Update(dt float64) error {
	if err := Update(s.State, dt); err != nil {
		return err
	}
	Resolve(s.State)
	return nil
}
