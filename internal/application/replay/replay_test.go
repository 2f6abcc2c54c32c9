package replay

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/platformcore/internal/application/system"
)

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version:  Version,
		Stage:    "test",
		TickRate: 60,
		Frames: []FrameInput{
			{F: 0, L: true},
			{F: 1, R: true, JP: true},
			{F: 2},
		},
	}

	replayer := NewReplayer(data)

	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Left)
	assert.False(t, input.Right)

	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.False(t, input.Left)
	assert.True(t, input.Right)
	assert.True(t, input.JumpPressed)

	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, system.InputState{}, input)

	_, ok = replayer.GetInput()
	assert.False(t, ok)
}

func TestReplayer_ReturnsCorrectInputState(t *testing.T) {
	data := ReplayData{
		Frames: []FrameInput{
			{F: 0, L: true, R: true, U: true, D: true, JP: true, JR: true, Dsh: true},
		},
	}

	input, ok := NewReplayer(data).GetInput()

	require.True(t, ok)
	assert.Equal(t, system.InputState{
		Left:         true,
		Right:        true,
		Up:           true,
		Down:         true,
		JumpPressed:  true,
		JumpReleased: true,
		Dash:         true,
	}, input)
}

func TestReplayer_Position(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(5))

	assert.Equal(t, 0, replayer.CurrentFrame())
	assert.Equal(t, 5, replayer.TotalFrames())
	assert.Equal(t, 60, replayer.TickRate())
	assert.Equal(t, "test", replayer.Stage())

	replayer.GetInput()
	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 3, replayer.CurrentFrame())

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())
	_, ok := replayer.GetInput()
	assert.True(t, ok)
}

func TestCreateTestReplayData(t *testing.T) {
	data := CreateTestReplayData(60)

	assert.Equal(t, Version, data.Version)
	assert.Equal(t, "test", data.Stage)
	require.Len(t, data.Frames, 60)
	for i, frame := range data.Frames {
		assert.Equal(t, i, frame.F, "frame number mismatch at index %d", i)
	}
}

func TestRecorder(t *testing.T) {
	t.Run("records frames in order", func(t *testing.T) {
		r := NewRecorder("demo", 60)

		r.RecordFrame(system.InputState{Right: true})
		r.RecordFrame(system.InputState{Right: true, JumpPressed: true})
		r.RecordFrame(system.InputState{Dash: true, Up: true})

		data := r.Data()
		assert.Equal(t, Version, data.Version)
		assert.Equal(t, "demo", data.Stage)
		assert.Equal(t, 60, data.TickRate)
		assert.Equal(t, []FrameInput{
			{F: 0, R: true},
			{F: 1, R: true, JP: true},
			{F: 2, U: true, Dsh: true},
		}, data.Frames)
	})

	t.Run("stop ignores further frames", func(t *testing.T) {
		r := NewRecorder("demo", 60)
		r.RecordFrame(system.InputState{})

		r.Stop()
		r.RecordFrame(system.InputState{})

		assert.False(t, r.IsRecording())
		assert.Equal(t, 1, r.FrameCount())
	})

	t.Run("save refuses an empty recording", func(t *testing.T) {
		r := NewRecorder("demo", 60)

		err := r.Save(filepath.Join(t.TempDir(), "empty.json"))

		assert.ErrorContains(t, err, "no frames")
	})
}

func TestRecorderAndReplayer(t *testing.T) {
	inputs := []system.InputState{
		{Right: true},
		{Right: true, JumpPressed: true},
		{Right: true},
		{JumpReleased: true},
		{Left: true, Dash: true},
	}

	r := NewRecorder("demo", 60)
	for _, in := range inputs {
		r.RecordFrame(in)
	}

	path := filepath.Join(t.TempDir(), "replay.json")
	require.NoError(t, r.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", data.Stage)

	replayer := NewReplayer(*data)
	for i, want := range inputs {
		got, ok := replayer.GetInput()
		require.True(t, ok)
		assert.Equal(t, want, got, "frame %d", i)
	}
	_, ok := replayer.GetInput()
	assert.False(t, ok)
}

func TestLoadReplay_Errors(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to open file")
}

func TestGenerateFilename(t *testing.T) {
	name := GenerateFilename()

	assert.Regexp(t, `^replay_\d{8}_\d{6}\.json$`, name)
}
