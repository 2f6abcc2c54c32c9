package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/platformcore/internal/domain/entity"
	"github.com/younwookim/platformcore/internal/infrastructure/config"
)

func TestGroundSensor_Sense(t *testing.T) {
	tests := []struct {
		name         string
		floor        bool
		ceiling      bool
		offset       float64
		wantDistance float64
	}{
		{name: "floor only", floor: true, offset: 4, wantDistance: 7},
		{name: "ceiling only", ceiling: true, offset: 4, wantDistance: 7},
		{name: "no offset", offset: 0, wantDistance: 11},
		{name: "offset past half height clamps", offset: 20, wantDistance: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := &fakeWorld{floor: tt.floor, ceiling: tt.ceiling}
			sensor := NewGroundSensor(world)
			cfg := config.CollisionConfig{GroundCheckOffset: tt.offset, PlayerLayer: 1, Mask: 0b1110}

			floor, ceiling := sensor.Sense(createTestBody(), cfg)

			assert.Equal(t, tt.floor, floor)
			assert.Equal(t, tt.ceiling, ceiling)
			for _, call := range world.calls {
				assert.Equal(t, tt.wantDistance, call.distance)
				assert.Equal(t, uint32(0b1110), call.mask)
				assert.Equal(t, 7.0, call.radius)
			}
			assert.Equal(t, Down, world.calls[0].dir)
			assert.Equal(t, entity.Vec2{Y: 1}, world.calls[1].dir)
		})
	}
}
