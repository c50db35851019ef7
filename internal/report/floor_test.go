package report

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloorLabel(t *testing.T) {
	assert.Equal(t, "3º Andar", FloorLabel(203))
	assert.Equal(t, "2º Andar", FloorLabel(105))
	assert.Equal(t, "2º Andar", FloorLabel(122))
	assert.Equal(t, "6º Andar", FloorLabel(516))
}

func TestFloorLabelShiftsByHundreds(t *testing.T) {
	for _, room := range []int{101, 203, 350} {
		base := room / 100
		for k := 0; k <= 4; k++ {
			want := fmt.Sprintf("%dº Andar", base+1+k)
			assert.Equal(t, want, FloorLabel(room+100*k))
		}
	}
}

func TestFloorLabelTotalOverIntegers(t *testing.T) {
	// Out-of-range rooms still get a well-defined label.
	assert.Equal(t, "1º Andar", FloorLabel(0))
	assert.Equal(t, "1º Andar", FloorLabel(99))
	assert.Equal(t, "11º Andar", FloorLabel(1001))
	assert.NotPanics(t, func() { FloorLabel(-203) })
}
