package cli

import (
	"math/rand"
	"testing"

	"saarthi/internal/domain"
	"saarthi/internal/intelligence"
	"saarthi/internal/market"
	"saarthi/internal/repository"
	"saarthi/internal/session"
	"saarthi/internal/teatest"
	"saarthi/internal/testutil"
)

// testApp builds an App against in-memory SQLite with deterministic
// services: a nil LLM client (fixture quotes and canned support) and a
// seeded market feed.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	return &App{
		Machine: session.NewMachine(
			repository.NewSQLitePreferenceRepo(database),
			repository.NewSQLiteWalletRepo(database, uow),
		),
		Transport: intelligence.NewTransportService(nil),
		Support:   intelligence.NewSupportService(nil),
		Market:    market.NewService(rand.NewSource(1)),
	}
}

// TestDriver wraps teatest.Driver with appModel inspection helpers.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver constructs the appModel, sets terminal size and drains
// Init(). The app starts on the login screen.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// ── High-level helpers ───────────────────────────────────────────────────────

// LoginAs selects the given role on the login screen.
func (d *TestDriver) LoginAs(role domain.Role) {
	d.T.Helper()
	d.Send(activateRoleMsg{role: role})
}

// CompleteSetup submits the profile form via the session message, the same
// payload the form emits on completion.
func (d *TestDriver) CompleteSetup(prefs domain.Preferences) {
	d.T.Helper()
	d.Send(prefsCompletedMsg{prefs: prefs})
}

// SkipSetup skips profile setup, as ctrl+s does on the setup screen.
func (d *TestDriver) SkipSetup() {
	d.T.Helper()
	d.Send(prefsSkippedMsg{})
}

// OpenMenuItem moves the home cursor to index and presses enter.
func (d *TestDriver) OpenMenuItem(index int) {
	d.T.Helper()
	for i := 0; i < index; i++ {
		d.PressDown()
	}
	d.PressEnter()
}

// ── appModel inspection ──────────────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// ViewStackIDs returns the ViewIDs of all views on the stack, bottom to top.
func (d *TestDriver) ViewStackIDs() []ViewID {
	m := d.appModel()
	ids := make([]ViewID, len(m.viewStack))
	for i, v := range m.viewStack {
		ids[i] = v.ID()
	}
	return ids
}

// Session returns the machine's current snapshot.
func (d *TestDriver) Session() session.State {
	return d.appModel().state.App.Machine.State()
}

// IsQuitting reports whether the app has signaled a quit, from either the
// model flag or a tea.QuitMsg caught by the driver.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// LastErr returns the store failure shown in the status area, if any.
func (d *TestDriver) LastErr() string {
	return d.appModel().lastErr
}
