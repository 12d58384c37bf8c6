package videos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDurationSeconds(t *testing.T) {
	tests := []struct {
		name string
		iso  string
		want int
	}{
		{name: "hours minutes seconds", iso: "PT1H5M3S", want: 3903},
		{name: "seconds only", iso: "PT45S", want: 45},
		{name: "minutes only", iso: "PT2M", want: 120},
		{name: "filter boundary", iso: "PT3M0S", want: 180},
		{name: "hours only", iso: "PT2H", want: 7200},
		{name: "empty string", iso: "", want: 0},
		{name: "malformed", iso: "three minutes", want: 0},
		{name: "missing designator", iso: "1H5M", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DurationSeconds(tt.iso))
		})
	}
}
