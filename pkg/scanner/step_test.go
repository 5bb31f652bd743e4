package scanner

import (
	"testing"

	"github.com/aretw0/byteflip/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestStep(t *testing.T) {
	tests := []struct {
		name  string
		state domain.RegionState
		line  string
		want  Transition
	}{
		{
			name:  "inactive plain line",
			state: domain.StateInactive,
			line:  "0x01,\n",
			want:  Transition{Next: domain.StateInactive},
		},
		{
			name:  "inactive start tag",
			state: domain.StateInactive,
			line:  "// byteflip-begin\n",
			want:  Transition{Next: domain.StateActive, Opened: true},
		},
		{
			name:  "start tag line with literals is not transformed",
			state: domain.StateInactive,
			line:  "{ 0x01, // byteflip-begin\n",
			want:  Transition{Next: domain.StateActive, Opened: true},
		},
		{
			name:  "inactive end tag is ignored",
			state: domain.StateInactive,
			line:  "// byteflip-end\n",
			want:  Transition{Next: domain.StateInactive},
		},
		{
			name:  "active plain line",
			state: domain.StateActive,
			line:  "0x01,\n",
			want:  Transition{Transform: true, Next: domain.StateActive},
		},
		{
			name:  "active nested start tag still transforms",
			state: domain.StateActive,
			line:  "// byteflip-begin\n",
			want:  Transition{Transform: true, Next: domain.StateActive},
		},
		{
			name:  "active end tag",
			state: domain.StateActive,
			line:  "0x01 }; // byteflip-end\n",
			want:  Transition{Next: domain.StateInactive, Closed: true},
		},
		{
			name:  "active end and start on one line reopens",
			state: domain.StateActive,
			line:  "// byteflip-end byteflip-begin\n",
			want:  Transition{Next: domain.StateActive, Closed: true, Opened: true},
		},
		{
			name:  "inactive line with both tags opens",
			state: domain.StateInactive,
			line:  "// byteflip-end byteflip-begin\n",
			want:  Transition{Next: domain.StateActive, Opened: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Step(tt.state, tt.line))
		})
	}
}
