package game

// Phase is a stage of the scripted mission.
type Phase int

const (
	PhaseAscent Phase = iota
	PhaseOrbitInsertion
	PhaseStageSeparation
	PhasePayload
	PhaseLandBooster
	PhaseLandShip
	PhaseDocking
)

// ObjectiveType tells the HUD how to present a phase.
type ObjectiveType int

const (
	ObjectiveLocation ObjectiveType = iota
	ObjectiveInteract
	ObjectiveAnimation
)

func (t ObjectiveType) String() string {
	switch t {
	case ObjectiveLocation:
		return "location"
	case ObjectiveInteract:
		return "interact"
	case ObjectiveAnimation:
		return "animation"
	default:
		return "unknown"
	}
}

type phaseInfo struct {
	name string
	text string
	kind ObjectiveType
	x, y float64
}

var phases = map[Phase]phaseInfo{
	PhaseAscent:          {"space", "Exit the atmosphere", ObjectiveLocation, 0, SpaceAltitude},
	PhaseOrbitInsertion:  {"correct position", "Move into the correct position", ObjectiveLocation, orbitTargetX, orbitTargetY},
	PhaseStageSeparation: {"Stage separation", "Initiate stage separation (press e)", ObjectiveInteract, 0, 0},
	PhasePayload:         {"Starlink satellites", "Release the starlink satellites (press e)", ObjectiveInteract, 0, 0},
	PhaseLandBooster:     {"landing pad", "Land the bottom half of the Starship (c to catch Starship)", ObjectiveLocation, landingTargetX, landingTargetY},
	PhaseLandShip:        {"landing pad", "Land the top half of the Starship (c to catch Starship)", ObjectiveLocation, landingTargetX, landingTargetY},
	PhaseDocking:         {"docking", "", ObjectiveAnimation, 0, 0},
}

// String returns the phase name shown next to the distance readout.
func (p Phase) String() string {
	if info, ok := phases[p]; ok {
		return info.name
	}
	return "unknown"
}

// Objective is the current mission goal. Controller is the ship that
// receives player input, nil while input is suspended.
type Objective struct {
	Phase      Phase
	Text       string
	X, Y       float64
	Type       ObjectiveType
	Controller *Ship
}

// enter switches to p and loads its text, type and target.
// The controller is left to the caller.
func (o *Objective) enter(p Phase) {
	info := phases[p]
	o.Phase = p
	o.Text = info.text
	o.Type = info.kind
	o.X = info.x
	o.Y = info.y
}
