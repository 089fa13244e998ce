package model

import "github.com/botfut/botfut/constant"

// MaskRequest carries one keystroke (or paste) for a masked input.
type MaskRequest struct {
	Kind  constant.MaskKind `json:"-"`
	Input string            `json:"input"`
}

// MaskResponse is what the input should display and the canonical value it stands for.
type MaskResponse struct {
	Kind     constant.MaskKind `json:"kind"`
	Display  string            `json:"display"`
	Value    string            `json:"value"`
	Cents    *int64            `json:"cents,omitempty"`
	Complete bool              `json:"complete"`
}
