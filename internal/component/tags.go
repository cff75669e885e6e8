package component

import "antsiege/internal/ecs"

const (
	CTagDefender ecs.ComponentType = 8
	CTagAttacker ecs.ComponentType = 9
)

// TagDefender marks stationary colony units (all ant kinds).
type TagDefender struct{}

func (TagDefender) Type() ecs.ComponentType { return CTagDefender }

// TagAttacker marks mobile hostile units (bees).
type TagAttacker struct{}

func (TagAttacker) Type() ecs.ComponentType { return CTagAttacker }
