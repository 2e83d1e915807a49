package coordinator

import (
	"testing"

	"github.com/automatex/texvers/internal/common"
	"github.com/automatex/texvers/internal/config"
	"github.com/automatex/texvers/internal/datastore"
	"github.com/automatex/texvers/internal/differ"
	"github.com/automatex/texvers/internal/models"
	"github.com/automatex/texvers/internal/validator"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingPresenter captures ShowDebugPanel calls.
type recordingPresenter struct {
	calls []bool
}

func (rp *recordingPresenter) ShowDebugPanel(hasLastVersion bool) {
	rp.calls = append(rp.calls, hasLastVersion)
}

// recordingViewer captures what the coordinator hands to the display.
type recordingViewer struct {
	displayedDiff   []models.DiffLine
	highlighted     []models.DiffLine
	navigationSet   bool
	oldContentShown string
	newContentShown string
}

func (rv *recordingViewer) DisplaySideBySide(oldContent, newContent string, diffLines []models.DiffLine) {
	rv.oldContentShown = oldContent
	rv.newContentShown = newContent
	rv.displayedDiff = diffLines
}

func (rv *recordingViewer) HighlightCritical(diffLines []models.DiffLine) {
	rv.highlighted = diffLines
}

func (rv *recordingViewer) SetNavigationCallback(onGotoLine func(lineNumber int)) {
	rv.navigationSet = true
}

func newTestCoordinator(t *testing.T, presenter models.DebugPresenter, viewer models.DiffViewer) *Coordinator {
	t.Helper()

	storageCfg := config.NewDefaultStorageConfig()
	storageCfg.RootDir = t.TempDir()
	store, err := datastore.NewFileVersionStore(storageCfg, zerolog.Nop())
	require.NoError(t, err)

	coord, err := NewCoordinatorBuilder().
		WithLogger(zerolog.Nop()).
		WithVersionStore(store).
		WithDiffGenerator(differ.NewDiffEngine(config.NewDefaultDiffConfig(), zerolog.Nop())).
		WithValidator(validator.NewStructuralValidator(config.NewDefaultValidatorConfig(), zerolog.Nop())).
		WithPresenter(presenter).
		WithDiffViewer(viewer).
		Build()
	require.NoError(t, err)
	return coord
}

func TestBuild_RequiresStoreAndDiffGenerator(t *testing.T) {
	_, err := NewCoordinatorBuilder().
		WithDiffGenerator(differ.NewDiffEngine(config.NewDefaultDiffConfig(), zerolog.Nop())).
		Build()
	assert.Error(t, err)

	storageCfg := config.NewDefaultStorageConfig()
	storageCfg.RootDir = t.TempDir()
	store, err := datastore.NewFileVersionStore(storageCfg, zerolog.Nop())
	require.NoError(t, err)

	_, err = NewCoordinatorBuilder().WithVersionStore(store).Build()
	assert.Error(t, err)
}

func TestCompileEditSummaryRoundTrip(t *testing.T) {
	viewer := &recordingViewer{}
	presenter := &recordingPresenter{}
	coord := newTestCoordinator(t, presenter, viewer)
	docPath := "/home/user/thesis.tex"
	compiled := "\\documentclass{article}\n\\begin{document}\nHello.\n\\end{document}\n"

	coord.SetCurrentDocument(docPath, compiled)
	require.Equal(t, []bool{false}, presenter.calls)

	require.NoError(t, coord.StoreSuccessfulCompilation(docPath, compiled))

	// Before any edit the summary reports no changes.
	summary, err := coord.GetQuickDiffSummary()
	require.NoError(t, err)
	assert.False(t, summary.HasChanges)
	assert.Equal(t, 0, summary.CriticalChangeCount)

	// Edit the document: one prose change, one structural addition.
	edited := "\\documentclass{article}\n\\begin{document}\nHello there.\n\\section{New}\n\\end{document}\n"
	coord.SetCurrentDocument(docPath, edited)
	assert.Equal(t, []bool{false, true}, presenter.calls)

	summary, err = coord.GetQuickDiffSummary()
	require.NoError(t, err)
	assert.True(t, summary.HasChanges)
	assert.Equal(t, 1, summary.CriticalChangeCount)
	assert.False(t, summary.LastVersionTimestamp.IsZero())
}

func TestShowDiffWithLastVersion_FeedsViewer(t *testing.T) {
	viewer := &recordingViewer{}
	coord := newTestCoordinator(t, nil, viewer)
	docPath := "/home/user/main.tex"
	original := "line one\nline two\n"

	coord.SetCurrentDocument(docPath, original)
	require.NoError(t, coord.StoreSuccessfulCompilation(docPath, original))

	edited := "line one\nline two\n\\begin{figure}\n"
	coord.SetCurrentDocument(docPath, edited)
	coord.SetNavigationCallback(func(lineNumber int) {})

	require.NoError(t, coord.ShowDiffWithLastVersion())

	assert.Equal(t, original, viewer.oldContentShown)
	assert.Equal(t, edited, viewer.newContentShown)
	assert.NotEmpty(t, viewer.displayedDiff)
	assert.NotEmpty(t, viewer.highlighted)
	assert.True(t, viewer.navigationSet)
}

func TestShowDiffWithLastVersion_DistinctFailureReasons(t *testing.T) {
	// No document tracked yet.
	coord := newTestCoordinator(t, nil, &recordingViewer{})
	assert.ErrorIs(t, coord.ShowDiffWithLastVersion(), common.ErrNoDocument)

	// Document tracked but no viewer registered.
	noViewer := newTestCoordinator(t, nil, nil)
	noViewer.SetCurrentDocument("/home/user/main.tex", "content\n")
	err := noViewer.ShowDiffWithLastVersion()
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrNoDocument)
	assert.NotErrorIs(t, err, common.ErrNoPriorVersion)

	// Viewer present but nothing stored yet.
	coord.SetCurrentDocument("/home/user/main.tex", "content\n")
	assert.ErrorIs(t, coord.ShowDiffWithLastVersion(), common.ErrNoPriorVersion)
}

func TestGetQuickDiffSummary_SentinelOutcomes(t *testing.T) {
	coord := newTestCoordinator(t, nil, nil)

	_, err := coord.GetQuickDiffSummary()
	assert.ErrorIs(t, err, common.ErrNoDocument)

	coord.SetCurrentDocument("/home/user/main.tex", "content\n")
	_, err = coord.GetQuickDiffSummary()
	assert.ErrorIs(t, err, common.ErrNoPriorVersion)
}

func TestStoreSuccessfulCompilation_RequiresDocument(t *testing.T) {
	coord := newTestCoordinator(t, nil, nil)

	err := coord.StoreSuccessfulCompilation("/home/user/main.tex", "content\n")
	assert.ErrorIs(t, err, common.ErrNoDocument)
}

func TestStoreSuccessfulCompilation_AppliesRetention(t *testing.T) {
	coord := newTestCoordinator(t, nil, nil)
	docPath := "/home/user/main.tex"

	coord.SetCurrentDocument(docPath, "v0\n")
	for i := 0; i < DefaultKeepCount+3; i++ {
		content := "version\n" + string(rune('a'+i)) + "\n"
		require.NoError(t, coord.StoreSuccessfulCompilation(docPath, content))
	}

	history, err := coord.GetVersionHistory(100)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(history), DefaultKeepCount+1)
}

func TestValidateCurrentDocument(t *testing.T) {
	coord := newTestCoordinator(t, nil, nil)

	// Nil without a tracked document.
	assert.Nil(t, coord.ValidateCurrentDocument())

	coord.SetCurrentDocument("/home/user/main.tex", "\\begin{itemize}\n")
	findings := coord.ValidateCurrentDocument()
	require.NotEmpty(t, findings)
	assert.Equal(t, "unclosed_environment", findings[0].Kind)
}

func TestGetVersionHistory_EmptyWithoutDocument(t *testing.T) {
	coord := newTestCoordinator(t, nil, nil)

	history, err := coord.GetVersionHistory(10)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestForceCleanupVersions(t *testing.T) {
	coord := newTestCoordinator(t, nil, nil)

	// No-op without a document.
	removed, err := coord.ForceCleanupVersions(1)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)

	docPath := "/home/user/main.tex"
	coord.SetCurrentDocument(docPath, "a\n")
	require.NoError(t, coord.StoreSuccessfulCompilation(docPath, "a\n"))
	require.NoError(t, coord.StoreSuccessfulCompilation(docPath, "b\n"))
	require.NoError(t, coord.StoreSuccessfulCompilation(docPath, "c\n"))

	removed, err = coord.ForceCleanupVersions(1)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
}

func TestNilSinksAreSafe(t *testing.T) {
	coord := newTestCoordinator(t, nil, nil)
	docPath := "/home/user/main.tex"

	// No presenter, no viewer, no navigation callback: nothing panics.
	coord.SetCurrentDocument(docPath, "content\n")
	require.NoError(t, coord.StoreSuccessfulCompilation(docPath, "content\n"))

	summary, err := coord.GetQuickDiffSummary()
	require.NoError(t, err)
	assert.False(t, summary.HasChanges)
}
