package models

import "time"

type ScalingAction string

const (
	ScalingActionScaleUp   ScalingAction = "scaleup"
	ScalingActionScaleDown ScalingAction = "scaledown"
	ScalingActionNone      ScalingAction = "noaction"
)

type ScalingDecision struct {
	Action    ScalingAction `json:"action"`
	Reasons   []string      `json:"reasons"`
	Timestamp int64         `json:"timestamp"`
}

// CooldownState records when each scaling direction last succeeded. It is
// written only on a completed scale action and read before every decision.
type CooldownState struct {
	LastScaleUp   time.Time
	LastScaleDown time.Time
}

func (c *CooldownState) ScaleUpAllowed(now time.Time, cooldown time.Duration) bool {
	return c.LastScaleUp.IsZero() || !now.Before(c.LastScaleUp.Add(cooldown))
}

func (c *CooldownState) ScaleDownAllowed(now time.Time, cooldown time.Duration) bool {
	return c.LastScaleDown.IsZero() || !now.Before(c.LastScaleDown.Add(cooldown))
}
