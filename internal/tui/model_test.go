package tui

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	corebrief "github.com/colonyops/citeview/internal/core/brief"
	"github.com/colonyops/citeview/internal/core/config"
	briefview "github.com/colonyops/citeview/internal/tui/views/brief"
	"github.com/colonyops/citeview/pkg/executil"
	"github.com/colonyops/citeview/pkg/tuitest"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	b, err := corebrief.Sample()
	require.NoError(t, err)

	cfg := config.DefaultConfig()
	m := New(Options{Brief: b, Config: &cfg, Piper: &executil.RecordingPiper{}, Build: BuildInfo{Version: "v0.1.0"}})
	updated, _ := m.Update(tuitest.WindowSize(140, 40))
	return updated.(Model)
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func TestModel_Header(t *testing.T) {
	m := newTestModel(t)

	out := tuitest.StripANSI(m.Render())
	assert.Contains(t, out, "citeview v0.1.0")
	assert.Contains(t, out, "6 of 7 citations verified")
	assert.Contains(t, out, "warnings")
}

func TestModel_HelpOverlay(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(m, tuitest.KeyPress('?'))
	require.Equal(t, stateShowingHelp, m.State())
	assert.Contains(t, tuitest.StripANSI(m.Render()), "Keyboard Shortcuts")

	// Keys do not reach the brief while help is open.
	m, _ = update(m, tuitest.KeyPress('j'))
	assert.Equal(t, briefview.StateIdle, m.BriefView().Controller().State())

	m, _ = update(m, tuitest.KeyEsc())
	assert.Equal(t, stateNormal, m.State())
}

func TestModel_InfoDialog(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(m, tuitest.KeyPress('i'))
	require.Equal(t, stateShowingInfo, m.State())

	out := tuitest.StripANSI(m.Render())
	assert.Contains(t, out, "Brief Info")
	assert.Contains(t, out, "6 of 7")
	assert.Contains(t, out, "Citations c7")

	m, _ = update(m, tuitest.KeyDown())
	assert.Equal(t, briefview.StateIdle, m.BriefView().Controller().State(), "scrolling the dialog does not navigate")

	m, _ = update(m, tuitest.KeyPress('i'))
	assert.Equal(t, stateNormal, m.State())
}

func TestModel_OverlaysBlockMouse(t *testing.T) {
	for name, k := range map[string]rune{"help": '?', "info": 'i'} {
		t.Run(name, func(t *testing.T) {
			m := newTestModel(t)
			layout := m.BriefView().Layout()
			var r briefview.Region
			for _, region := range layout.Regions {
				if layout.Tags[region.Ref.Tag].UnitActivatable(region.Ref.Unit) {
					r = region
					break
				}
			}
			require.NotZero(t, r.X1)
			click := tuitest.LeftClick(r.X0, r.Line+1)

			m, _ = update(m, tuitest.KeyPress(k))
			require.NotEqual(t, stateNormal, m.State())

			m, _ = update(m, click)
			m, _ = update(m, tea.MouseWheelMsg{Button: tea.MouseWheelDown})
			assert.NotEqual(t, stateNormal, m.State())
			assert.Equal(t, briefview.StateIdle, m.BriefView().Controller().State())

			m, _ = update(m, tuitest.KeyEsc())
			require.Equal(t, stateNormal, m.State())

			m, _ = update(m, click)
			assert.Equal(t, layout.Tags[r.Ref.Tag].Citation.ID, m.BriefView().Controller().SelectedID())
		})
	}
}

func TestModel_Quit(t *testing.T) {
	t.Run("q quits", func(t *testing.T) {
		m := newTestModel(t)
		m, cmd := update(m, tuitest.KeyPress('q'))
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.Empty(t, m.Render())
	})

	t.Run("q is typed while searching", func(t *testing.T) {
		m := newTestModel(t)
		m, _ = update(m, tuitest.KeyPress('/'))
		require.True(t, m.BriefView().IsCapturingInput())

		m, _ = update(m, tuitest.KeyPress('q'))
		assert.NotEmpty(t, m.Render())
		assert.True(t, m.BriefView().IsCapturingInput())
	})

	t.Run("ctrl+c always quits", func(t *testing.T) {
		m := newTestModel(t)
		m, _ = update(m, tuitest.KeyPress('/'))
		_, cmd := update(m, tuitest.KeyCtrl('c'))
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	})
}

func TestModel_Reload(t *testing.T) {
	m := newTestModel(t)

	b, err := corebrief.Sample()
	require.NoError(t, err)
	b.Title = "Amended Opposition"

	m, _ = update(m, briefChangedMsg{brief: b})
	assert.Equal(t, "Reloaded Amended Opposition", m.BriefView().Status())

	m, _ = update(m, briefChangedMsg{err: errors.New("invalid brief: title is required")})
	assert.Equal(t, "Reload failed: invalid brief: title is required", m.BriefView().Status())
}

func TestModel_ForwardsNavigation(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(m, tuitest.KeyPress('j'))
	assert.NotNil(t, cmd)
	assert.Equal(t, "c1", m.BriefView().Controller().SelectedID())
}
